package request_models

type CreatePaymentMethodRequest struct {
	UserID         string `json:"userId" binding:"required,uuid"`
	CardNumber     string `json:"cardNumber" binding:"required"`
	Cvv            string `json:"cvv" binding:"required"`
	ExpiryMonth    int    `json:"expiryMonth" binding:"required,min=1,max=12"`
	ExpiryYear     int    `json:"expiryYear" binding:"required"`
	CardholderName string `json:"cardholderName" binding:"required"`
	BillingAddress string `json:"billingAddress"`
}

type TriggerPayoutRequest struct {
	ParentID string  `json:"parentId" binding:"required,uuid"`
	ChildID  string  `json:"childId" binding:"required,uuid"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	// Optional: a repeated key returns the already-recorded transaction
	// instead of charging the provider a second time.
	IdempotencyKey string `json:"idempotencyKey"`
}

type PullFundsRequest struct {
	UserID string  `json:"userId" binding:"required,uuid"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
	CardID string  `json:"cardId" binding:"required,uuid"`
	Pin    string  `json:"pin" binding:"required"`
}
