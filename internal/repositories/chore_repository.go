package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gemquest/internal/models/db_models"
)

type ChoreRepository interface {
	Insert(ctx context.Context, chore *db_models.Chore) error
	FindByID(ctx context.Context, id string) (*db_models.Chore, error)
	ListByChild(ctx context.Context, childID string) ([]db_models.Chore, error)
	ListByParent(ctx context.Context, parentID string) ([]db_models.Chore, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*db_models.Chore, error)
	Delete(ctx context.Context, id string) error

	// CompleteTx marks the chore completed and credits the child's gem
	// counter by the chore's gem value in a single transaction, so a
	// crash can never leave a completed chore with no gems credited.
	CompleteTx(ctx context.Context, id string, fields map[string]interface{}) (*db_models.Chore, error)
}

type choreRepository struct {
	db *gorm.DB
}

func NewChoreRepository(db *gorm.DB) ChoreRepository {
	return &choreRepository{db: db}
}

func (r *choreRepository) Insert(ctx context.Context, chore *db_models.Chore) error {
	return r.db.WithContext(ctx).Create(chore).Error
}

func (r *choreRepository) FindByID(ctx context.Context, id string) (*db_models.Chore, error) {
	var chore db_models.Chore
	err := r.db.WithContext(ctx).First(&chore, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &chore, nil
}

func (r *choreRepository) ListByChild(ctx context.Context, childID string) ([]db_models.Chore, error) {
	var chores []db_models.Chore
	err := r.db.WithContext(ctx).
		Where("child_id = ?", childID).
		Order("created_at DESC").
		Find(&chores).Error
	if err != nil {
		return nil, err
	}
	return chores, nil
}

func (r *choreRepository) ListByParent(ctx context.Context, parentID string) ([]db_models.Chore, error) {
	var chores []db_models.Chore
	err := r.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("created_at DESC").
		Find(&chores).Error
	if err != nil {
		return nil, err
	}
	return chores, nil
}

func (r *choreRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*db_models.Chore, error) {
	var chore db_models.Chore
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&chore, "id = ?", id).Error; err != nil {
			return err
		}
		if len(fields) == 0 {
			return nil
		}
		if err := tx.Model(&chore).Updates(fields).Error; err != nil {
			return err
		}
		return tx.First(&chore, "id = ?", id).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &chore, nil
}

func (r *choreRepository) CompleteTx(ctx context.Context, id string, fields map[string]interface{}) (*db_models.Chore, error) {
	var chore db_models.Chore
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&chore, "id = ?", id).Error; err != nil {
			return err
		}

		fields["status"] = db_models.ChoreStatusCompleted
		if err := tx.Model(&chore).Updates(fields).Error; err != nil {
			return err
		}
		if err := tx.First(&chore, "id = ?", id).Error; err != nil {
			return err
		}

		return tx.Model(&db_models.Child{}).
			Where("id = ?", chore.ChildID).
			Update("gems", gorm.Expr("gems + ?", chore.Gems)).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &chore, nil
}

func (r *choreRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&db_models.Chore{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
