package repository

import (
	"context"
	"time"

	"academic-hub/internal/domain/model"
)

// -----------------------------
// Users
// -----------------------------

type UserRepository interface {
	Save(ctx context.Context, tx Tx, u *model.User) error
	FindByID(ctx context.Context, tx Tx, id string) (*model.User, error)
	FindByEmail(ctx context.Context, tx Tx, email string) (*model.User, error)
	List(ctx context.Context, tx Tx, offset, limit int) ([]*model.User, error)
	CountUsers(ctx context.Context, tx Tx) (int, error)
	CountActiveSubscriptions(ctx context.Context, tx Tx, now time.Time) (int, error)

	// SetRole changes a user's role (admin promotion).
	SetRole(ctx context.Context, tx Tx, id string, role model.UserRole) error

	// ExtendSubscription sets subscription_expiry to now + months and returns
	// the new expiry. The window resets forward from the moment of activation;
	// back-to-back activations do not stack.
	ExtendSubscription(ctx context.Context, tx Tx, id string, months int) (time.Time, error)

	// CountLapsedBetween counts users whose subscription expired inside the
	// half-open window (from, to].
	CountLapsedBetween(ctx context.Context, tx Tx, from, to time.Time) (int, error)
}
