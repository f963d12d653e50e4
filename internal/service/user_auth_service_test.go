package service

import (
	"errors"
	"testing"

	"github.com/stride-next/internal/config"
	"github.com/stride-next/internal/repository"
)

func newUserAuthServiceForTest(t *testing.T, name string) *UserAuthService {
	t.Helper()
	db := newTestDB(t, name)
	cfg := &config.Config{
		UserJWT: config.JWTConfig{
			SecretKey:   "test-secret-key-with-enough-length-0001",
			ExpireHours: 1,
		},
		Security: config.SecurityConfig{
			PasswordPolicy: config.PasswordPolicyConfig{
				MinLength:     8,
				RequireLower:  true,
				RequireNumber: true,
			},
		},
	}
	return NewUserAuthService(cfg, repository.NewUserRepository(db))
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newUserAuthServiceForTest(t, "auth_register")

	user, token, _, err := svc.Register("Runner@Example.com", "stride-pass1", "Jamie", "Lee")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Email != "runner@example.com" {
		t.Fatalf("expected normalized email, got %s", user.Email)
	}
	if token == "" {
		t.Fatalf("expected token on register")
	}

	claims, err := svc.ParseUserJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != user.Email {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	if _, _, _, err := svc.Login("runner@example.com", "stride-pass1"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, _, _, err := svc.Login("runner@example.com", "wrong-pass1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newUserAuthServiceForTest(t, "auth_dup")

	if _, _, _, err := svc.Register("dup@example.com", "stride-pass1", "", ""); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, _, _, err := svc.Register("dup@example.com", "stride-pass1", "", ""); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestRegisterWeakPassword(t *testing.T) {
	svc := newUserAuthServiceForTest(t, "auth_weak")

	if _, _, _, err := svc.Register("weak@example.com", "short1", "", ""); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword for short password, got %v", err)
	}
	if _, _, _, err := svc.Register("weak@example.com", "nodigitshere", "", ""); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword for password without digits, got %v", err)
	}
}

func TestRegisterInvalidEmail(t *testing.T) {
	svc := newUserAuthServiceForTest(t, "auth_email")

	if _, _, _, err := svc.Register("not-an-email", "stride-pass1", "", ""); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	svc := newUserAuthServiceForTest(t, "auth_profile")

	user, _, _, err := svc.Register("profile@example.com", "stride-pass1", "Old", "Name")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	first := "New"
	updated, err := svc.UpdateProfile(user.ID, &first, nil)
	if err != nil {
		t.Fatalf("update profile failed: %v", err)
	}
	if updated.FirstName != "New" || updated.LastName != "Name" {
		t.Fatalf("unexpected profile after update: %s %s", updated.FirstName, updated.LastName)
	}
}
