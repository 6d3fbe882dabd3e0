package service

import (
	"context"
	"errors"
	"testing"

	"dept-tracker-be/internal/config"
	"dept-tracker-be/internal/dto"
	"dept-tracker-be/internal/pkg/apperrors"
	"dept-tracker-be/internal/repository/failover"
	"dept-tracker-be/internal/repository/memory"

	"github.com/gofiber/fiber/v2"
)

func newAuthServiceForTest(t *testing.T) IAuthService {
	t.Helper()

	gateway := failover.NewUserGateway(nil, memory.NewUserStore(), nil)
	return NewAuthService(gateway, config.AuthConfig{
		JwtSecret:     "test-secret",
		TokenTTLHours: 1,
	})
}

func TestAuthServiceRegisterAndLogin(t *testing.T) {
	svc := newAuthServiceForTest(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, &dto.RegisterRequest{
		FullName: "Ayse Yilmaz",
		Username: "ayilmaz",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if registered.Role != "staff" {
		t.Errorf("Role = %q, want default %q", registered.Role, "staff")
	}

	res, err := svc.Login(ctx, &dto.LoginRequest{
		Username: "ayilmaz",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if res.Token == "" {
		t.Error("Login returned empty token")
	}
	if res.User.Username != "ayilmaz" {
		t.Errorf("User.Username = %q, want %q", res.User.Username, "ayilmaz")
	}
}

func TestAuthServiceLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthServiceForTest(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, &dto.RegisterRequest{
		FullName: "Ayse Yilmaz",
		Username: "ayilmaz",
		Password: "correct-horse",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	tests := []struct {
		name string
		req  dto.LoginRequest
	}{
		{name: "wrong password", req: dto.LoginRequest{Username: "ayilmaz", Password: "wrong"}},
		{name: "unknown user", req: dto.LoginRequest{Username: "nobody", Password: "correct-horse"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, &tt.req)
			var fe *fiber.Error
			if !errors.As(err, &fe) || fe.Code != fiber.StatusUnauthorized {
				t.Errorf("Login error = %v, want 401 fiber.Error", err)
			}
		})
	}
}

func TestAuthServiceRegisterValidation(t *testing.T) {
	svc := newAuthServiceForTest(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, &dto.RegisterRequest{
		FullName: "Ayse Yilmaz",
		Username: "ayilmaz",
		Password: "correct-horse",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	t.Run("duplicate username", func(t *testing.T) {
		_, err := svc.Register(ctx, &dto.RegisterRequest{
			FullName: "Baska Biri",
			Username: "ayilmaz",
			Password: "another-pass",
		})
		if !apperrors.IsValidation(err) {
			t.Errorf("Register error = %v, want ValidationError", err)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := svc.Register(ctx, &dto.RegisterRequest{
			FullName: "Baska Biri",
			Username: "bbiri",
			Password: "another-pass",
			Role:     "superuser",
		})
		if !apperrors.IsValidation(err) {
			t.Errorf("Register error = %v, want ValidationError", err)
		}
	})
}
