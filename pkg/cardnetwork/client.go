// Package cardnetwork talks to a Visa Direct style funds-transfer API.
// The payout flow is the only caller; it is the one place in the system
// that ever sees a decrypted card number.
package cardnetwork

import (
	"context"
	"encoding/json"
)

type FundsRequest struct {
	Amount         float64 `json:"amount"`
	Currency       string  `json:"transactionCurrencyCode"`
	CardNumber     string  `json:"recipientPrimaryAccountNumber"`
	Cvv            string  `json:"cardCvv2Value"`
	ExpiryMonth    int     `json:"cardExpiryMonth"`
	ExpiryYear     int     `json:"cardExpiryYear"`
	CardholderName string  `json:"cardholderName"`

	// Caller-generated reference carried through to the ledger row.
	TraceNumber string `json:"retrievalReferenceNumber"`
}

type FundsResponse struct {
	TransactionID string `json:"transactionIdentifier"`
	ActionCode    string `json:"actionCode"`
	Approved      bool   `json:"approved"`

	// Full provider payload, persisted verbatim on the transaction row.
	Raw json.RawMessage `json:"-"`
}

type Client interface {
	PullFunds(ctx context.Context, req FundsRequest) (*FundsResponse, error)
	PushFunds(ctx context.Context, req FundsRequest) (*FundsResponse, error)
}
