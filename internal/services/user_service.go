package services

import (
	"context"
	"log"

	"gemquest/internal/models/db_models"
	"gemquest/internal/models/request_models"
	"gemquest/internal/models/response_models"
	"gemquest/internal/repositories"
	"gemquest/pkg/memcache"
	"gemquest/pkg/utils"
)

type UserServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.AuthResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, refreshToken string) error
	ValidatePin(ctx context.Context, userID string, pin string) (bool, error)
}

type UserService struct {
	parentRepo repositories.ParentRepository
	sessions   memcache.SessionStore
}

func NewUserService(parentRepo repositories.ParentRepository, sessions memcache.SessionStore) UserServiceInterface {
	return &UserService{
		parentRepo: parentRepo,
		sessions:   sessions,
	}
}

func (u *UserService) Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.AuthResponse, error) {
	existing, err := u.parentRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	passwordHash, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	pinHash, err := utils.HashPin(request.Pin)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	parent := &db_models.Parent{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: passwordHash,
		PinHash:      pinHash,
	}

	if err := u.parentRepo.Insert(ctx, parent); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return u.issueTokens(parent)
}

func (u *UserService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error) {
	parent, err := u.parentRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if parent == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(parent.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return u.issueTokens(parent)
}

func (u *UserService) issueTokens(parent *db_models.Parent) (*response_models.AuthResponse, error) {
	accessToken, err := utils.CreateAccessToken(parent.ID)
	if err != nil {
		log.Printf("Error creating access token: %v", err)
		return nil, utils.ErrInvalidCredentials
	}

	refreshToken, sessionID, err := utils.CreateRefreshToken(parent.ID)
	if err != nil {
		log.Printf("Error creating refresh token: %v", err)
		return nil, utils.ErrInvalidCredentials
	}
	u.sessions.Set(sessionID, parent.ID.String(), utils.RefreshTokenTTL)

	return &response_models.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         response_models.ToParentResponse(parent),
	}, nil
}

func (u *UserService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := utils.ValidateToken(refreshToken)
	if err != nil || claims.Kind != utils.TokenKindRefresh {
		return "", utils.ErrInvalidRefresh
	}

	// The JWT may verify, but the session must also still be live.
	userID, ok := u.sessions.Peek(claims.ID)
	if !ok || userID != claims.UserID {
		return "", utils.ErrInvalidRefresh
	}

	parent, err := u.parentRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if parent == nil {
		return "", utils.ErrInvalidRefresh
	}

	accessToken, err := utils.CreateAccessToken(parent.ID)
	if err != nil {
		return "", utils.ErrInvalidRefresh
	}
	return accessToken, nil
}

// Logout revokes the refresh session carried by the token, so it can
// no longer mint access tokens.
func (u *UserService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := utils.ValidateToken(refreshToken)
	if err != nil || claims.Kind != utils.TokenKindRefresh {
		return utils.ErrInvalidRefresh
	}
	u.sessions.Revoke(claims.ID)
	return nil
}

// ValidatePin never distinguishes "wrong pin" from "no such parent";
// both come back as a plain false.
func (u *UserService) ValidatePin(ctx context.Context, userID string, pin string) (bool, error) {
	parent, err := u.parentRepo.FindByID(ctx, userID)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	if parent == nil {
		return false, nil
	}
	return utils.ComparePin(parent.PinHash, pin), nil
}
