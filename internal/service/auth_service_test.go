package service

import (
	"context"
	"testing"
	"time"

	"github.com/spec-kit/itsm-backoffice/internal/config"
	"github.com/spec-kit/itsm-backoffice/internal/domain"
)

func newTestAuthService(repo *fakeUserRepo) *AuthService {
	svc := NewAuthService(config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 30,
		// Minimum bcrypt cost keeps the suite fast.
		BcryptCost: 4,
	}, repo)
	svc.Now = func() time.Time { return time.Date(2026, 7, 15, 8, 0, 0, 0, time.UTC) }
	svc.NewID = func() string { return "user-1" }
	return svc
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	result, err := svc.Register(context.Background(), RegisterInput{
		Email:    "  Admin@Example.COM ",
		Password: "hunter2",
		Name:     "Alex",
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if result.User.Email != "admin@example.com" {
		t.Errorf("email = %q, want lowercased", result.User.Email)
	}
	if result.Token == "" {
		t.Error("no token issued")
	}
	if result.User.PasswordHash == "hunter2" {
		t.Error("password stored in plaintext")
	}

	login, err := svc.Login(context.Background(), "admin@example.com", "hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if login.User.ID != result.User.ID {
		t.Errorf("login user = %q, want %q", login.User.ID, result.User.ID)
	}

	claims, err := svc.TokenManager().ParseToken(login.Token)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if claims.UserID != result.User.ID || claims.Role != domain.RoleAdmin {
		t.Errorf("claims = %+v", claims)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	input := RegisterInput{Email: "a@b.com", Password: "pw", Name: "A", Role: domain.RoleClient}
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first register: %v", err)
	}
	svc.NewID = func() string { return "user-2" }
	_, err := svc.Register(context.Background(), input)
	assertDomainCode(t, err, "CONFLICT")
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.com", Password: "pw", Name: "A", Role: domain.Role("owner")})
	assertDomainCode(t, err, "VALIDATION_FAILED")

	_, err = svc.Register(context.Background(), RegisterInput{Email: "", Password: "pw", Name: "A", Role: domain.RoleClient})
	assertDomainCode(t, err, "VALIDATION_FAILED")
}

func TestLoginInvalidCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	if _, err := svc.Register(context.Background(), RegisterInput{
		Email: "a@b.com", Password: "correct", Name: "A", Role: domain.RoleClient,
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := svc.Login(context.Background(), "a@b.com", "wrong")
	assertDomainCode(t, err, "UNAUTHORIZED")

	_, err = svc.Login(context.Background(), "nobody@b.com", "whatever")
	assertDomainCode(t, err, "UNAUTHORIZED")
}
