package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"gemquest/internal/models/db_models"
	"gemquest/internal/models/request_models"
	"gemquest/internal/models/response_models"
	"gemquest/internal/repositories"
	"gemquest/pkg/cardnetwork"
	"gemquest/pkg/utils"
)

type PayoutServiceInterface interface {
	TriggerPayout(ctx context.Context, request request_models.TriggerPayoutRequest) (*response_models.PayoutResponse, error)
	PullFunds(ctx context.Context, request request_models.PullFundsRequest) (*response_models.PayoutResponse, error)
	ListTransactions(ctx context.Context, userID string) ([]db_models.PaymentTransaction, error)
	GetTransaction(ctx context.Context, transactionID string) (*db_models.PaymentTransaction, error)
}

type PayoutService struct {
	parentRepo repositories.ParentRepository
	childRepo  repositories.ChildRepository
	methodRepo repositories.PaymentMethodRepository
	txnRepo    repositories.PaymentTransactionRepository
	network    cardnetwork.Client
	cipher     *utils.CardCipher
}

func NewPayoutService(
	parentRepo repositories.ParentRepository,
	childRepo repositories.ChildRepository,
	methodRepo repositories.PaymentMethodRepository,
	txnRepo repositories.PaymentTransactionRepository,
	network cardnetwork.Client,
	cipher *utils.CardCipher,
) PayoutServiceInterface {
	return &PayoutService{
		parentRepo: parentRepo,
		childRepo:  childRepo,
		methodRepo: methodRepo,
		txnRepo:    txnRepo,
		network:    network,
		cipher:     cipher,
	}
}

// TriggerPayout pushes the configured amount to the parent's default
// card once the child has a positive gem balance. A ledger row is
// written for every attempt; the gem reset only happens together with
// the row being marked completed.
func (s *PayoutService) TriggerPayout(ctx context.Context, request request_models.TriggerPayoutRequest) (*response_models.PayoutResponse, error) {
	if request.IdempotencyKey != "" {
		existing, err := s.txnRepo.FindByIdempotencyKey(ctx, request.ParentID, request.IdempotencyKey)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if existing != nil {
			return s.existingPayoutResponse(ctx, request.ChildID, existing), nil
		}
	}

	parent, err := s.parentRepo.FindByID(ctx, request.ParentID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if parent == nil {
		return nil, utils.ErrParentNotFound
	}

	child, err := s.childRepo.FindByID(ctx, request.ChildID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if child == nil {
		return nil, utils.ErrChildNotFound
	}
	if child.ParentID != parent.ID {
		return nil, utils.ErrChildNotOwned
	}

	method, err := s.methodRepo.FindDefaultByUser(ctx, request.ParentID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if method == nil {
		return nil, utils.ErrNoDefaultPaymentMethod
	}

	// The only business guard: the child must have earned something.
	// Checked before any provider traffic.
	if child.Gems <= 0 {
		return nil, utils.ErrNoGemsEarned
	}

	txn := &db_models.PaymentTransaction{
		UserID:          parent.ID,
		PaymentMethodID: method.ID,
		ChildID:         &child.ID,
		Amount:          request.Amount,
		Type:            db_models.TxnTypePushFunds,
		Status:          db_models.TxnStatusPending,
		TraceNumber:     uuid.New().String(),
		IdempotencyKey:  request.IdempotencyKey,
	}
	if err := s.txnRepo.Insert(ctx, txn); err != nil {
		// A concurrent retry with the same key can slip past the lookup
		// above; the partial unique index catches it here.
		if request.IdempotencyKey != "" && errors.Is(err, gorm.ErrDuplicatedKey) {
			existing, ferr := s.txnRepo.FindByIdempotencyKey(ctx, request.ParentID, request.IdempotencyKey)
			if ferr == nil && existing != nil {
				return s.existingPayoutResponse(ctx, request.ChildID, existing), nil
			}
		}
		return nil, utils.ErrDatabaseError
	}

	resp, callErr := s.callNetwork(ctx, method, txn, request.Amount, false)
	if callErr != nil || !resp.Approved {
		failed := s.markFailed(ctx, txn, resp, callErr)
		return &response_models.PayoutResponse{
			Success:     false,
			Transaction: *failed,
			ChildGems:   child.Gems,
		}, nil
	}

	completed, err := s.txnRepo.FinalizeSuccess(ctx, txn.ID.String(), child.ID.String(), resp.TransactionID, datatypes.JSON(resp.Raw))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.PayoutResponse{
		Success:     true,
		Transaction: *completed,
		ChildGems:   0,
	}, nil
}

func (s *PayoutService) existingPayoutResponse(ctx context.Context, childID string, existing *db_models.PaymentTransaction) *response_models.PayoutResponse {
	child, _ := s.childRepo.FindByID(ctx, childID)
	gems := 0
	if child != nil {
		gems = child.Gems
	}
	return &response_models.PayoutResponse{
		Success:       existing.Status == db_models.TxnStatusCompleted,
		Transaction:   *existing,
		ChildGems:     gems,
		AlreadyExists: true,
	}
}

// PullFunds charges one of the parent's own cards after a PIN check.
// No gem movement is involved.
func (s *PayoutService) PullFunds(ctx context.Context, request request_models.PullFundsRequest) (*response_models.PayoutResponse, error) {
	parent, err := s.parentRepo.FindByID(ctx, request.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if parent == nil {
		return nil, utils.ErrParentNotFound
	}

	if !utils.ComparePin(parent.PinHash, request.Pin) {
		return nil, utils.ErrInvalidPin
	}

	method, err := s.methodRepo.FindByID(ctx, request.CardID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if method == nil || method.UserID != parent.ID {
		return nil, utils.ErrPaymentMethodNotFound
	}

	txn := &db_models.PaymentTransaction{
		UserID:          parent.ID,
		PaymentMethodID: method.ID,
		Amount:          request.Amount,
		Type:            db_models.TxnTypePullFunds,
		Status:          db_models.TxnStatusPending,
		TraceNumber:     uuid.New().String(),
	}
	if err := s.txnRepo.Insert(ctx, txn); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp, callErr := s.callNetwork(ctx, method, txn, request.Amount, true)
	if callErr != nil || !resp.Approved {
		failed := s.markFailed(ctx, txn, resp, callErr)
		return &response_models.PayoutResponse{
			Success:     false,
			Transaction: *failed,
		}, nil
	}

	completed, err := s.txnRepo.FinalizeSuccess(ctx, txn.ID.String(), "", resp.TransactionID, datatypes.JSON(resp.Raw))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.PayoutResponse{
		Success:     true,
		Transaction: *completed,
	}, nil
}

func (s *PayoutService) callNetwork(ctx context.Context, method *db_models.PaymentMethod, txn *db_models.PaymentTransaction, amount float64, pull bool) (*cardnetwork.FundsResponse, error) {
	cardNumber, err := s.cipher.Decrypt(method.CardNumberEnc)
	if err != nil {
		return nil, err
	}
	cvv, err := s.cipher.Decrypt(method.CvvEnc)
	if err != nil {
		return nil, err
	}

	req := cardnetwork.FundsRequest{
		Amount:         amount,
		Currency:       "USD",
		CardNumber:     cardNumber,
		Cvv:            cvv,
		ExpiryMonth:    method.ExpiryMonth,
		ExpiryYear:     method.ExpiryYear,
		CardholderName: method.CardholderName,
		TraceNumber:    txn.TraceNumber,
	}

	if pull {
		return s.network.PullFunds(ctx, req)
	}
	return s.network.PushFunds(ctx, req)
}

// markFailed writes the failure outcome to the ledger on a best-effort
// basis; the original row is returned if even that write fails.
func (s *PayoutService) markFailed(ctx context.Context, txn *db_models.PaymentTransaction, resp *cardnetwork.FundsResponse, callErr error) *db_models.PaymentTransaction {
	var payload datatypes.JSON
	if resp != nil && len(resp.Raw) > 0 {
		payload = datatypes.JSON(resp.Raw)
	} else if callErr != nil {
		payload = datatypes.JSON(`{"error":` + jsonQuote(callErr.Error()) + `}`)
	}

	failed, err := s.txnRepo.MarkFailed(ctx, txn.ID.String(), payload)
	if err != nil {
		log.Printf("Error recording failed transaction %s: %v", txn.ID, err)
		txn.Status = db_models.TxnStatusFailed
		return txn
	}
	if callErr != nil {
		log.Printf("Card network call failed for transaction %s: %v", txn.ID, callErr)
	}
	return failed
}

func jsonQuote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func (s *PayoutService) ListTransactions(ctx context.Context, userID string) ([]db_models.PaymentTransaction, error) {
	txns, err := s.txnRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return txns, nil
}

func (s *PayoutService) GetTransaction(ctx context.Context, transactionID string) (*db_models.PaymentTransaction, error) {
	txn, err := s.txnRepo.FindByID(ctx, transactionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if txn == nil {
		return nil, utils.ErrTransactionNotFound
	}
	return txn, nil
}
