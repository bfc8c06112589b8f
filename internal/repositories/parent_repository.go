package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gemquest/internal/models/db_models"
)

type ParentRepository interface {
	Insert(ctx context.Context, parent *db_models.Parent) error
	FindByID(ctx context.Context, id string) (*db_models.Parent, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Parent, error)
	Update(ctx context.Context, parent *db_models.Parent) error
	UpdateTokenConfig(ctx context.Context, id string, numberOfTokens int, giftCardAmount float64) (*db_models.Parent, error)
}

type parentRepository struct {
	db *gorm.DB
}

func NewParentRepository(db *gorm.DB) ParentRepository {
	return &parentRepository{db: db}
}

func (r *parentRepository) Insert(ctx context.Context, parent *db_models.Parent) error {
	return r.db.WithContext(ctx).Create(parent).Error
}

func (r *parentRepository) FindByID(ctx context.Context, id string) (*db_models.Parent, error) {
	var parent db_models.Parent
	err := r.db.WithContext(ctx).First(&parent, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &parent, nil
}

func (r *parentRepository) FindByEmail(ctx context.Context, email string) (*db_models.Parent, error) {
	var parent db_models.Parent
	err := r.db.WithContext(ctx).First(&parent, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &parent, nil
}

func (r *parentRepository) Update(ctx context.Context, parent *db_models.Parent) error {
	return r.db.WithContext(ctx).Save(parent).Error
}

func (r *parentRepository) UpdateTokenConfig(ctx context.Context, id string, numberOfTokens int, giftCardAmount float64) (*db_models.Parent, error) {
	var parent db_models.Parent
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&parent, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Model(&parent).Updates(map[string]interface{}{
			"number_of_tokens": numberOfTokens,
			"gift_card_amount": giftCardAmount,
		}).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &parent, nil
}
