package response_models

import "gemquest/internal/models/db_models"

// PaymentMethodResponse exposes only the masked view of a stored card.
type PaymentMethodResponse struct {
	ID             string `json:"id"`
	UserID         string `json:"userId"`
	LastFour       string `json:"lastFour"`
	ExpiryMonth    int    `json:"expiryMonth"`
	ExpiryYear     int    `json:"expiryYear"`
	CardholderName string `json:"cardholderName"`
	IsDefault      bool   `json:"isDefault"`
}

func ToPaymentMethodResponse(m *db_models.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		ID:             m.ID.String(),
		UserID:         m.UserID.String(),
		LastFour:       m.LastFour,
		ExpiryMonth:    m.ExpiryMonth,
		ExpiryYear:     m.ExpiryYear,
		CardholderName: m.CardholderName,
		IsDefault:      m.IsDefault,
	}
}

type PayoutResponse struct {
	Success       bool                         `json:"success"`
	Transaction   db_models.PaymentTransaction `json:"transaction"`
	ChildGems     int                          `json:"childGems"`
	AlreadyExists bool                         `json:"alreadyExists,omitempty"`
}
