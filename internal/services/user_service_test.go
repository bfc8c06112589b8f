package services

import (
	"context"
	"errors"
	"testing"

	"gemquest/internal/models/request_models"
	"gemquest/pkg/memcache"
	"gemquest/pkg/utils"
)

func setupUserTest(t *testing.T) (UserServiceInterface, *fakeParentRepo, memcache.SessionStore) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	parentRepo := newFakeParentRepo()
	sessions := memcache.NewRefreshSessions()
	return NewUserService(parentRepo, sessions), parentRepo, sessions
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _, _ := setupUserTest(t)

	signUp := request_models.SignUpRequest{
		Name:     "Dana",
		Email:    "dana@example.com",
		Pin:      "1234",
		Password: "hunter22",
	}
	auth, err := svc.Register(context.Background(), signUp)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if auth.AccessToken == "" || auth.RefreshToken == "" {
		t.Fatal("expected both tokens to be issued")
	}
	if auth.User.Email != signUp.Email {
		t.Errorf("user email = %q, want %q", auth.User.Email, signUp.Email)
	}

	login, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    signUp.Email,
		Password: signUp.Password,
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if login.User.ID != auth.User.ID {
		t.Error("login returned a different user")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := setupUserTest(t)

	req := request_models.SignUpRequest{
		Name:     "Dana",
		Email:    "dana@example.com",
		Pin:      "1234",
		Password: "hunter22",
	}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(context.Background(), req); !errors.Is(err, utils.ErrEmailAlreadyExists) {
		t.Errorf("err = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := setupUserTest(t)

	if _, err := svc.Register(context.Background(), request_models.SignUpRequest{
		Name: "Dana", Email: "dana@example.com", Pin: "1234", Password: "hunter22",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "dana@example.com",
		Password: "wrong",
	})
	if !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _ := setupUserTest(t)

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "hunter22",
	})
	if !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRefreshAccessToken(t *testing.T) {
	svc, _, _ := setupUserTest(t)

	auth, err := svc.Register(context.Background(), request_models.SignUpRequest{
		Name: "Dana", Email: "dana@example.com", Pin: "1234", Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	access, err := svc.RefreshAccessToken(context.Background(), auth.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	claims, err := utils.ValidateToken(access)
	if err != nil {
		t.Fatalf("validate refreshed access token: %v", err)
	}
	if claims.Kind != utils.TokenKindAccess {
		t.Errorf("token kind = %q, want access", claims.Kind)
	}
	if claims.UserID != auth.User.ID {
		t.Errorf("token user = %q, want %q", claims.UserID, auth.User.ID)
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _, _ := setupUserTest(t)

	auth, err := svc.Register(context.Background(), request_models.SignUpRequest{
		Name: "Dana", Email: "dana@example.com", Pin: "1234", Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	// An access token is a valid JWT but the wrong kind.
	if _, err := svc.RefreshAccessToken(context.Background(), auth.AccessToken); !errors.Is(err, utils.ErrInvalidRefresh) {
		t.Errorf("err = %v, want ErrInvalidRefresh", err)
	}
}

func TestRefreshAfterRevocation(t *testing.T) {
	svc, _, sessions := setupUserTest(t)

	auth, err := svc.Register(context.Background(), request_models.SignUpRequest{
		Name: "Dana", Email: "dana@example.com", Pin: "1234", Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	claims, err := utils.ValidateToken(auth.RefreshToken)
	if err != nil {
		t.Fatalf("validate refresh token: %v", err)
	}
	sessions.Revoke(claims.ID)

	if _, err := svc.RefreshAccessToken(context.Background(), auth.RefreshToken); !errors.Is(err, utils.ErrInvalidRefresh) {
		t.Errorf("err = %v, want ErrInvalidRefresh", err)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, _, _ := setupUserTest(t)

	auth, err := svc.Register(context.Background(), request_models.SignUpRequest{
		Name: "Dana", Email: "dana@example.com", Pin: "1234", Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.Logout(context.Background(), auth.RefreshToken); err != nil {
		t.Fatalf("logout: %v", err)
	}

	if _, err := svc.RefreshAccessToken(context.Background(), auth.RefreshToken); !errors.Is(err, utils.ErrInvalidRefresh) {
		t.Errorf("refresh after logout err = %v, want ErrInvalidRefresh", err)
	}
}

func TestLogoutRejectsAccessToken(t *testing.T) {
	svc, _, _ := setupUserTest(t)

	auth, err := svc.Register(context.Background(), request_models.SignUpRequest{
		Name: "Dana", Email: "dana@example.com", Pin: "1234", Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.Logout(context.Background(), auth.AccessToken); !errors.Is(err, utils.ErrInvalidRefresh) {
		t.Errorf("err = %v, want ErrInvalidRefresh", err)
	}
}

func TestValidatePin(t *testing.T) {
	svc, _, _ := setupUserTest(t)

	auth, err := svc.Register(context.Background(), request_models.SignUpRequest{
		Name: "Dana", Email: "dana@example.com", Pin: "1234", Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	ok, err := svc.ValidatePin(context.Background(), auth.User.ID, "1234")
	if err != nil {
		t.Fatalf("validate pin: %v", err)
	}
	if !ok {
		t.Error("correct pin rejected")
	}

	ok, err = svc.ValidatePin(context.Background(), auth.User.ID, "0000")
	if err != nil {
		t.Fatalf("validate wrong pin: %v", err)
	}
	if ok {
		t.Error("wrong pin accepted")
	}
}

func TestValidatePinUnknownParent(t *testing.T) {
	svc, _, _ := setupUserTest(t)

	ok, err := svc.ValidatePin(context.Background(), "7c9a0d3e-0000-0000-0000-000000000000", "1234")
	if err != nil {
		t.Fatalf("validate pin: %v", err)
	}
	if ok {
		t.Error("unknown parent validated as true")
	}
}
