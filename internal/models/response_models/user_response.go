package response_models

import "gemquest/internal/models/db_models"

type ParentResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	NumberOfTokens int     `json:"numberOfTokens"`
	GiftCardAmount float64 `json:"giftCardAmount"`
	CreatedAt      int64   `json:"createdAt"`
}

func ToParentResponse(p *db_models.Parent) ParentResponse {
	return ParentResponse{
		ID:             p.ID.String(),
		Name:           p.Name,
		Email:          p.Email,
		NumberOfTokens: p.NumberOfTokens,
		GiftCardAmount: p.GiftCardAmount,
		CreatedAt:      p.CreatedAt,
	}
}

type AuthResponse struct {
	AccessToken  string         `json:"accessToken"`
	RefreshToken string         `json:"refreshToken"`
	User         ParentResponse `json:"user"`
}
