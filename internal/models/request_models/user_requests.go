package request_models

type SignUpRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Pin      string `json:"pin" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type TokenConfigRequest struct {
	UserID         string  `json:"userId" binding:"required,uuid"`
	NumberOfTokens int     `json:"numberOfTokens" binding:"required,gt=0"`
	GiftCardAmount float64 `json:"giftCardAmount" binding:"required,gt=0"`
}

type FamilySetupRequest struct {
	UserID   string   `json:"userId" binding:"required,uuid"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Pin      string   `json:"pin"`
	Children []string `json:"children"`
}

type ValidatePinRequest struct {
	UserID string `json:"userId" binding:"required,uuid"`
	Pin    string `json:"pin" binding:"required"`
}

type ChildGemsRequest struct {
	ChildID string `json:"childId" binding:"required,uuid"`
	// Signed delta: positive values credit, negative values debit.
	GemsToAdd int `json:"gemsToAdd"`
}
