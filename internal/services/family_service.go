package services

import (
	"context"

	"gemquest/internal/models/db_models"
	"gemquest/internal/models/request_models"
	"gemquest/internal/models/response_models"
	"gemquest/internal/repositories"
	"gemquest/pkg/utils"
)

type FamilyServiceInterface interface {
	UpdateTokenConfig(ctx context.Context, request request_models.TokenConfigRequest) (*response_models.ParentResponse, error)
	FamilySetup(ctx context.Context, request request_models.FamilySetupRequest) (*response_models.FamilyResponse, error)
	GetFamily(ctx context.Context, userID string) (*response_models.FamilyResponse, error)
	AddChildGems(ctx context.Context, request request_models.ChildGemsRequest) (*db_models.Child, error)
}

type FamilyService struct {
	parentRepo repositories.ParentRepository
	childRepo  repositories.ChildRepository
}

func NewFamilyService(parentRepo repositories.ParentRepository, childRepo repositories.ChildRepository) FamilyServiceInterface {
	return &FamilyService{
		parentRepo: parentRepo,
		childRepo:  childRepo,
	}
}

func (f *FamilyService) UpdateTokenConfig(ctx context.Context, request request_models.TokenConfigRequest) (*response_models.ParentResponse, error) {
	parent, err := f.parentRepo.UpdateTokenConfig(ctx, request.UserID, request.NumberOfTokens, request.GiftCardAmount)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if parent == nil {
		return nil, utils.ErrParentNotFound
	}

	resp := response_models.ToParentResponse(parent)
	return &resp, nil
}

func (f *FamilyService) FamilySetup(ctx context.Context, request request_models.FamilySetupRequest) (*response_models.FamilyResponse, error) {
	parent, err := f.parentRepo.FindByID(ctx, request.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if parent == nil {
		return nil, utils.ErrParentNotFound
	}

	if request.Email != "" {
		parent.Email = request.Email
	}
	if request.Password != "" {
		hash, err := utils.HashPassword(request.Password)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		parent.PasswordHash = hash
	}
	if request.Pin != "" {
		hash, err := utils.HashPin(request.Pin)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		parent.PinHash = hash
	}

	if err := f.parentRepo.Update(ctx, parent); err != nil {
		return nil, utils.ErrDatabaseError
	}

	for _, name := range request.Children {
		if name == "" {
			continue
		}
		child := &db_models.Child{
			Name:     name,
			ParentID: parent.ID,
		}
		if err := f.childRepo.Insert(ctx, child); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	return f.GetFamily(ctx, request.UserID)
}

func (f *FamilyService) GetFamily(ctx context.Context, userID string) (*response_models.FamilyResponse, error) {
	parent, err := f.parentRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if parent == nil {
		return nil, utils.ErrParentNotFound
	}

	children, err := f.childRepo.ListByParent(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.FamilyResponse{
		Parent:   response_models.ToParentResponse(parent),
		Children: children,
	}, nil
}

// AddChildGems applies the signed delta as-is. Debits below zero are
// accepted; the payout guard is where balances actually matter.
func (f *FamilyService) AddChildGems(ctx context.Context, request request_models.ChildGemsRequest) (*db_models.Child, error) {
	child, err := f.childRepo.AddGems(ctx, request.ChildID, request.GemsToAdd)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if child == nil {
		return nil, utils.ErrChildNotFound
	}
	return child, nil
}
