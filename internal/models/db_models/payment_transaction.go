package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TransactionType string

const (
	TxnTypePullFunds TransactionType = "pull_funds"
	TxnTypePushFunds TransactionType = "push_funds"
)

type TransactionStatus string

const (
	TxnStatusPending   TransactionStatus = "pending"
	TxnStatusCompleted TransactionStatus = "completed"
	TxnStatusFailed    TransactionStatus = "failed"
)

// PaymentTransaction is an append-only ledger row; one is written for
// every payout attempt, successful or not.
type PaymentTransaction struct {
	BaseModel
	UserID          uuid.UUID  `gorm:"type:uuid;index" json:"userId"`
	PaymentMethodID uuid.UUID  `gorm:"type:uuid;index" json:"paymentMethodId"`
	ChildID         *uuid.UUID `gorm:"type:uuid;index" json:"childId,omitempty"`

	Amount float64           `json:"amount"`
	Type   TransactionType   `gorm:"index" json:"type"`
	Status TransactionStatus `gorm:"index" json:"status"`

	TraceNumber           string `gorm:"index" json:"traceNumber"`
	ExternalTransactionID string `json:"externalTransactionId"`
	IdempotencyKey        string `gorm:"index:idx_payment_transactions_idem,unique,where:idempotency_key <> ''" json:"idempotencyKey,omitempty"`

	// Raw provider payloads and failure reasons.
	ProviderResponse datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"providerResponse,omitempty"`
}
