package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gemquest/internal/models/db_models"
)

type PaymentMethodRepository interface {
	// Insert stores the method; the user's first method becomes the
	// default automatically.
	Insert(ctx context.Context, method *db_models.PaymentMethod) error
	FindByID(ctx context.Context, id string) (*db_models.PaymentMethod, error)
	ListByUser(ctx context.Context, userID string) ([]db_models.PaymentMethod, error)
	FindDefaultByUser(ctx context.Context, userID string) (*db_models.PaymentMethod, error)

	// SetDefault unsets any previous default and promotes the given
	// method inside one transaction, keeping "exactly one default"
	// true even under concurrent requests.
	SetDefault(ctx context.Context, userID, methodID string) error
	Delete(ctx context.Context, id string) error
}

type paymentMethodRepository struct {
	db *gorm.DB
}

func NewPaymentMethodRepository(db *gorm.DB) PaymentMethodRepository {
	return &paymentMethodRepository{db: db}
}

func (r *paymentMethodRepository) Insert(ctx context.Context, method *db_models.PaymentMethod) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&db_models.PaymentMethod{}).
			Where("user_id = ? AND is_default = TRUE", method.UserID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			method.IsDefault = true
		}
		return tx.Create(method).Error
	})
}

func (r *paymentMethodRepository) FindByID(ctx context.Context, id string) (*db_models.PaymentMethod, error) {
	var method db_models.PaymentMethod
	err := r.db.WithContext(ctx).First(&method, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &method, nil
}

func (r *paymentMethodRepository) ListByUser(ctx context.Context, userID string) ([]db_models.PaymentMethod, error) {
	var methods []db_models.PaymentMethod
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC, created_at ASC").
		Find(&methods).Error
	if err != nil {
		return nil, err
	}
	return methods, nil
}

func (r *paymentMethodRepository) FindDefaultByUser(ctx context.Context, userID string) (*db_models.PaymentMethod, error) {
	var method db_models.PaymentMethod
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_default = TRUE", userID).
		First(&method).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &method, nil
}

func (r *paymentMethodRepository) SetDefault(ctx context.Context, userID, methodID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var method db_models.PaymentMethod
		if err := tx.First(&method, "id = ? AND user_id = ?", methodID, userID).Error; err != nil {
			return err
		}

		if err := tx.Model(&db_models.PaymentMethod{}).
			Where("user_id = ? AND is_default = TRUE", userID).
			Update("is_default", false).Error; err != nil {
			return err
		}

		return tx.Model(&method).Update("is_default", true).Error
	})
}

func (r *paymentMethodRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&db_models.PaymentMethod{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
