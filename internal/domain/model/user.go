package model

import (
	"time"

	"academic-hub/internal/domain"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleAdmin   UserRole = "admin"
)

// User is a domain entity representing a registered student or admin.
// Subscription state is an attribute of the user, not a separate aggregate:
// a user is active iff SubscriptionExpiry is non-nil and strictly in the future.
type User struct {
	ID                 string
	Email              string
	PasswordHash       string
	School             string
	Year               string
	Role               UserRole
	SubscriptionExpiry *time.Time
	RegisteredAt       time.Time
	LastActiveAt       time.Time
}

func NewUser(id, email, passwordHash, school, year string) (*User, error) {
	if id == "" {
		id = uuid.NewString()
	}
	if email == "" || passwordHash == "" {
		return nil, domain.ErrInvalidArgument
	}
	now := time.Now()
	return &User{
		ID:           id,
		Email:        email,
		PasswordHash: passwordHash,
		School:       school,
		Year:         year,
		Role:         RoleStudent,
		RegisteredAt: now,
		LastActiveAt: now,
	}, nil
}

// HasActiveSubscription reports whether the paid window covers the given instant.
func (u *User) HasActiveSubscription(now time.Time) bool {
	return u != nil && u.SubscriptionExpiry != nil && u.SubscriptionExpiry.After(now)
}

func (u *User) IsZero() bool  { return u == nil || u.ID == "" }
func (u *User) IsAdmin() bool { return u != nil && u.Role == RoleAdmin }
func (u *User) Touch()        { u.LastActiveAt = time.Now() }
