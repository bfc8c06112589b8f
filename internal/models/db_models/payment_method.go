package db_models

import "github.com/google/uuid"

type PaymentMethod struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;index" json:"userId"`

	// Card number and CVV are AES-GCM encrypted before they hit the
	// database; only the payout path ever decrypts them.
	CardNumberEnc string `gorm:"column:card_number_enc" json:"-"`
	CvvEnc        string `gorm:"column:cvv_enc" json:"-"`
	LastFour      string `gorm:"size:4" json:"lastFour"`

	ExpiryMonth    int    `json:"expiryMonth"`
	ExpiryYear     int    `json:"expiryYear"`
	CardholderName string `json:"cardholderName"`
	BillingAddress string `json:"billingAddress"`
	IsDefault      bool   `gorm:"index" json:"isDefault"`
}
