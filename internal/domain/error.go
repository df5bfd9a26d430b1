package domain

import (
	"errors"
	"fmt"
)

var (
	// Common domain errors
	ErrNotFound             = errors.New("entity not found")
	ErrAlreadyExists        = errors.New("entity already exists")
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrNoActiveSubscription = errors.New("no active subscription")
	ErrForbidden            = errors.New("operation not permitted")

	// Payment verification errors (closed set, each user-presentable)
	ErrMessageTooShort      = errors.New("confirmation message too short to contain a transaction")
	ErrReferenceNotFound    = errors.New("no transaction code found in message")
	ErrReferenceAlreadyUsed = errors.New("transaction code already used")

	// Infra-level errors surfaced as generic "try again" failures
	ErrOperationFailed    = errors.New("storage operation failed")
	ErrReadDatabaseRow    = errors.New("failed to read database row")
	ErrInvalidExecContext = errors.New("invalid executor context")
)

// AmountBelowMinimumError rejects a confirmation whose detected amount is
// positive but under the configured minimum. It carries the detected amount
// so callers can show it to the user.
type AmountBelowMinimumError struct {
	DetectedCents int64
	MinimumCents  int64
}

func (e *AmountBelowMinimumError) Error() string {
	return fmt.Sprintf("detected amount KES %.2f is below the required minimum of KES %.2f",
		float64(e.DetectedCents)/100, float64(e.MinimumCents)/100)
}
