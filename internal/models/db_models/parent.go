package db_models

type Parent struct {
	BaseModel
	Name         string `json:"name"`
	Email        string `gorm:"unique" json:"email"`
	PasswordHash string `json:"-"`
	PinHash      string `json:"-"`
	// Reward goal: how many gems a child should collect before a payout,
	// and the gift card amount (in dollars) that goal is worth.
	NumberOfTokens int     `json:"numberOfTokens"`
	GiftCardAmount float64 `json:"giftCardAmount"`

	Children       []Child         `gorm:"foreignKey:ParentID" json:"children,omitempty"`
	PaymentMethods []PaymentMethod `gorm:"foreignKey:UserID" json:"-"`
}
