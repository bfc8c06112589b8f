package repositories

import (
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"gemquest/internal/models/db_models"
)

type PaymentTransactionRepository interface {
	Insert(ctx context.Context, txn *db_models.PaymentTransaction) error
	FindByID(ctx context.Context, id string) (*db_models.PaymentTransaction, error)
	ListByUser(ctx context.Context, userID string) ([]db_models.PaymentTransaction, error)
	FindByIdempotencyKey(ctx context.Context, userID, key string) (*db_models.PaymentTransaction, error)

	// FinalizeSuccess marks the transaction completed and zeroes the
	// child's gem counter in one transaction.
	FinalizeSuccess(ctx context.Context, txnID string, childID string, externalID string, response datatypes.JSON) (*db_models.PaymentTransaction, error)
	MarkFailed(ctx context.Context, txnID string, response datatypes.JSON) (*db_models.PaymentTransaction, error)
}

type paymentTransactionRepository struct {
	db *gorm.DB
}

func NewPaymentTransactionRepository(db *gorm.DB) PaymentTransactionRepository {
	return &paymentTransactionRepository{db: db}
}

func (r *paymentTransactionRepository) Insert(ctx context.Context, txn *db_models.PaymentTransaction) error {
	return r.db.WithContext(ctx).Create(txn).Error
}

func (r *paymentTransactionRepository) FindByID(ctx context.Context, id string) (*db_models.PaymentTransaction, error) {
	var txn db_models.PaymentTransaction
	err := r.db.WithContext(ctx).First(&txn, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &txn, nil
}

func (r *paymentTransactionRepository) ListByUser(ctx context.Context, userID string) ([]db_models.PaymentTransaction, error) {
	var txns []db_models.PaymentTransaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&txns).Error
	if err != nil {
		return nil, err
	}
	return txns, nil
}

func (r *paymentTransactionRepository) FindByIdempotencyKey(ctx context.Context, userID, key string) (*db_models.PaymentTransaction, error) {
	var txn db_models.PaymentTransaction
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND idempotency_key = ?", userID, key).
		First(&txn).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &txn, nil
}

func (r *paymentTransactionRepository) FinalizeSuccess(ctx context.Context, txnID string, childID string, externalID string, response datatypes.JSON) (*db_models.PaymentTransaction, error) {
	var txn db_models.PaymentTransaction
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&txn, "id = ?", txnID).Error; err != nil {
			return err
		}
		if err := tx.Model(&txn).Updates(map[string]interface{}{
			"status":                  db_models.TxnStatusCompleted,
			"external_transaction_id": externalID,
			"provider_response":       response,
		}).Error; err != nil {
			return err
		}

		if childID == "" {
			return nil
		}
		return tx.Model(&db_models.Child{}).
			Where("id = ?", childID).
			Update("gems", 0).Error
	})

	if err != nil {
		return nil, err
	}
	return &txn, nil
}

func (r *paymentTransactionRepository) MarkFailed(ctx context.Context, txnID string, response datatypes.JSON) (*db_models.PaymentTransaction, error) {
	var txn db_models.PaymentTransaction
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&txn, "id = ?", txnID).Error; err != nil {
			return err
		}
		return tx.Model(&txn).Updates(map[string]interface{}{
			"status":            db_models.TxnStatusFailed,
			"provider_response": response,
		}).Error
	})

	if err != nil {
		return nil, err
	}
	return &txn, nil
}
