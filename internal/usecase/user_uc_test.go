//go:build !integration

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"academic-hub/internal/domain"
	"academic-hub/internal/domain/model"
	"academic-hub/internal/usecase"
)

func TestUserUseCase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("should register a new student", func(t *testing.T) {
		// --- Arrange ---
		users := NewMockUserRepo()
		uc := usecase.NewUserUseCase(users, NewMockTxManager(), newTestLogger())

		// --- Act ---
		user, err := uc.Register(ctx, "jane@uni.ac.ke", "s3cret-pw", "UoN", "2")

		// --- Assert ---
		if err != nil {
			t.Fatalf("expected no error, but got: %v", err)
		}
		if user.Role != model.RoleStudent {
			t.Errorf("expected role student, got %s", user.Role)
		}
		if user.PasswordHash == "s3cret-pw" {
			t.Error("password must not be stored in plain text")
		}
		if user.HasActiveSubscription(user.RegisteredAt) {
			t.Error("new accounts must start without a subscription")
		}
	})

	t.Run("should reject a duplicate email", func(t *testing.T) {
		users := NewMockUserRepo()
		uc := usecase.NewUserUseCase(users, NewMockTxManager(), newTestLogger())

		if _, err := uc.Register(ctx, "jane@uni.ac.ke", "s3cret-pw", "", ""); err != nil {
			t.Fatalf("first registration failed: %v", err)
		}
		_, err := uc.Register(ctx, "jane@uni.ac.ke", "another-pw", "", "")
		if !errors.Is(err, domain.ErrAlreadyExists) {
			t.Fatalf("expected ErrAlreadyExists, got: %v", err)
		}
	})

	t.Run("should reject a short password", func(t *testing.T) {
		uc := usecase.NewUserUseCase(NewMockUserRepo(), NewMockTxManager(), newTestLogger())

		_, err := uc.Register(ctx, "jane@uni.ac.ke", "short", "", "")
		if !errors.Is(err, domain.ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got: %v", err)
		}
	})
}

func TestUserUseCase_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("should authenticate with the right password", func(t *testing.T) {
		users := NewMockUserRepo()
		uc := usecase.NewUserUseCase(users, NewMockTxManager(), newTestLogger())
		registered, err := uc.Register(ctx, "jane@uni.ac.ke", "s3cret-pw", "", "")
		if err != nil {
			t.Fatalf("registration failed: %v", err)
		}

		user, err := uc.Authenticate(ctx, "jane@uni.ac.ke", "s3cret-pw")
		if err != nil {
			t.Fatalf("expected no error, but got: %v", err)
		}
		if user.ID != registered.ID {
			t.Errorf("expected user %s, got %s", registered.ID, user.ID)
		}
	})

	t.Run("should reject a wrong password", func(t *testing.T) {
		users := NewMockUserRepo()
		uc := usecase.NewUserUseCase(users, NewMockTxManager(), newTestLogger())
		if _, err := uc.Register(ctx, "jane@uni.ac.ke", "s3cret-pw", "", ""); err != nil {
			t.Fatalf("registration failed: %v", err)
		}

		_, err := uc.Authenticate(ctx, "jane@uni.ac.ke", "wrong-pw")
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got: %v", err)
		}
	})

	t.Run("should not reveal whether the email exists", func(t *testing.T) {
		uc := usecase.NewUserUseCase(NewMockUserRepo(), NewMockTxManager(), newTestLogger())

		_, err := uc.Authenticate(ctx, "nobody@uni.ac.ke", "whatever-pw")
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got: %v", err)
		}
	})
}

func TestUserUseCase_PromoteToAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("should promote an existing student", func(t *testing.T) {
		users := NewMockUserRepo()
		uc := usecase.NewUserUseCase(users, NewMockTxManager(), newTestLogger())
		user, err := uc.Register(ctx, "jane@uni.ac.ke", "s3cret-pw", "", "")
		if err != nil {
			t.Fatalf("registration failed: %v", err)
		}

		if err := uc.PromoteToAdmin(ctx, user.ID); err != nil {
			t.Fatalf("expected no error, but got: %v", err)
		}
		stored, _ := uc.GetByID(ctx, user.ID)
		if !stored.IsAdmin() {
			t.Error("expected user to be admin after promotion")
		}
	})

	t.Run("should fail for an unknown user", func(t *testing.T) {
		uc := usecase.NewUserUseCase(NewMockUserRepo(), NewMockTxManager(), newTestLogger())
		if err := uc.PromoteToAdmin(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got: %v", err)
		}
	})
}
