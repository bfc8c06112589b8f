package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gemquest/internal/models/db_models"
)

type ChildRepository interface {
	Insert(ctx context.Context, child *db_models.Child) error
	FindByID(ctx context.Context, id string) (*db_models.Child, error)
	ListByParent(ctx context.Context, parentID string) ([]db_models.Child, error)

	// AddGems applies a signed delta to the child's gem counter and
	// returns the updated row.
	AddGems(ctx context.Context, childID string, delta int) (*db_models.Child, error)
}

type childRepository struct {
	db *gorm.DB
}

func NewChildRepository(db *gorm.DB) ChildRepository {
	return &childRepository{db: db}
}

func (r *childRepository) Insert(ctx context.Context, child *db_models.Child) error {
	return r.db.WithContext(ctx).Create(child).Error
}

func (r *childRepository) FindByID(ctx context.Context, id string) (*db_models.Child, error) {
	var child db_models.Child
	err := r.db.WithContext(ctx).First(&child, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &child, nil
}

func (r *childRepository) ListByParent(ctx context.Context, parentID string) ([]db_models.Child, error) {
	var children []db_models.Child
	err := r.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("created_at ASC").
		Find(&children).Error
	if err != nil {
		return nil, err
	}
	return children, nil
}

func (r *childRepository) AddGems(ctx context.Context, childID string, delta int) (*db_models.Child, error) {
	var child db_models.Child
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&child, "id = ?", childID).Error; err != nil {
			return err
		}
		if err := tx.Model(&child).
			Update("gems", gorm.Expr("gems + ?", delta)).Error; err != nil {
			return err
		}
		return tx.First(&child, "id = ?", childID).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &child, nil
}
