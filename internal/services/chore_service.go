package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gemquest/internal/models/db_models"
	"gemquest/internal/models/request_models"
	"gemquest/internal/repositories"
	"gemquest/pkg/utils"
)

type ChoreServiceInterface interface {
	CreateChore(ctx context.Context, request request_models.CreateChoreRequest) (*db_models.Chore, error)
	GetChoresByChild(ctx context.Context, childID string) ([]db_models.Chore, error)
	GetChoresByParent(ctx context.Context, parentID string) ([]db_models.Chore, error)
	UpdateChore(ctx context.Context, choreID string, request request_models.UpdateChoreRequest) (*db_models.Chore, error)
	DeleteChore(ctx context.Context, choreID string) error
}

type ChoreService struct {
	choreRepo repositories.ChoreRepository
	childRepo repositories.ChildRepository
}

func NewChoreService(choreRepo repositories.ChoreRepository, childRepo repositories.ChildRepository) ChoreServiceInterface {
	return &ChoreService{
		choreRepo: choreRepo,
		childRepo: childRepo,
	}
}

func (s *ChoreService) CreateChore(ctx context.Context, request request_models.CreateChoreRequest) (*db_models.Chore, error) {
	if request.Gems < 0 {
		return nil, utils.ErrNegativeGems
	}

	child, err := s.childRepo.FindByID(ctx, request.ChildID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if child == nil {
		return nil, utils.ErrChildNotFound
	}
	if child.ParentID.String() != request.ParentID {
		return nil, utils.ErrChildNotOwned
	}

	parentID, err := uuid.Parse(request.ParentID)
	if err != nil {
		return nil, utils.ErrParentNotFound
	}

	chore := &db_models.Chore{
		Name:        request.Name,
		Description: request.Description,
		Gems:        request.Gems,
		Location:    request.Location,
		ChildID:     child.ID,
		ParentID:    parentID,
		Status:      db_models.ChoreStatusNotStarted,
	}

	if err := s.choreRepo.Insert(ctx, chore); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return chore, nil
}

func (s *ChoreService) GetChoresByChild(ctx context.Context, childID string) ([]db_models.Chore, error) {
	chores, err := s.choreRepo.ListByChild(ctx, childID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return chores, nil
}

func (s *ChoreService) GetChoresByParent(ctx context.Context, parentID string) ([]db_models.Chore, error) {
	chores, err := s.choreRepo.ListByParent(ctx, parentID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return chores, nil
}

// UpdateChore applies a partial update. Status changes are validated
// against the lifecycle edges; the move into completed also credits the
// child's gems, atomically with the status write.
func (s *ChoreService) UpdateChore(ctx context.Context, choreID string, request request_models.UpdateChoreRequest) (*db_models.Chore, error) {
	chore, err := s.choreRepo.FindByID(ctx, choreID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if chore == nil {
		return nil, utils.ErrChoreNotFound
	}

	fields := map[string]interface{}{}
	if request.Name != nil {
		fields["name"] = *request.Name
	}
	if request.Description != nil {
		fields["description"] = *request.Description
	}
	if request.Location != nil {
		fields["location"] = *request.Location
	}
	if request.Gems != nil {
		if *request.Gems < 0 {
			return nil, utils.ErrNegativeGems
		}
		fields["gems"] = *request.Gems
	}

	if request.Status == nil {
		updated, err := s.choreRepo.UpdateFields(ctx, choreID, fields)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if updated == nil {
			return nil, utils.ErrChoreNotFound
		}
		return updated, nil
	}

	next := db_models.ChoreStatus(*request.Status)
	if !next.Valid() {
		return nil, utils.ErrInvalidStatus
	}
	if next != chore.Status && !chore.Status.CanTransitionTo(next) {
		return nil, utils.ErrIllegalTransition
	}

	if next == db_models.ChoreStatusCompleted && chore.Status != db_models.ChoreStatusCompleted {
		updated, err := s.choreRepo.CompleteTx(ctx, choreID, fields)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if updated == nil {
			return nil, utils.ErrChoreNotFound
		}
		return updated, nil
	}

	fields["status"] = next
	updated, err := s.choreRepo.UpdateFields(ctx, choreID, fields)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if updated == nil {
		return nil, utils.ErrChoreNotFound
	}
	return updated, nil
}

func (s *ChoreService) DeleteChore(ctx context.Context, choreID string) error {
	if err := s.choreRepo.Delete(ctx, choreID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrChoreNotFound
		}
		return utils.ErrDatabaseError
	}
	return nil
}
