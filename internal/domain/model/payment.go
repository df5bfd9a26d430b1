package model

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type PaymentStatus string

// Only accepted submissions ever produce a record, so "success" is the sole
// status written by the verification flow. The column keeps the wider shape
// for administrative imports.
const (
	PaymentStatusSuccess PaymentStatus = "success"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// PaymentRecord is one accepted activation transaction in the append-only
// ledger. Records are created exactly once at verification time and never
// mutated; Reference is globally unique and is the sole replay protection.
type PaymentRecord struct {
	ID          string        // ULID, sortable by creation time
	UserID      string        // submitting user
	UserEmail   string        // denormalized contact address at time of payment
	AmountCents int64         // KES stored in cents (integer), to avoid float errors
	Reference   string        // extracted 10-char transaction code, uppercase
	Channel     string        // free-text payment channel description
	Status      PaymentStatus // always "success" for verified records
	CreatedAt   time.Time
}

// NewPaymentRecord builds the ledger row for an accepted confirmation.
func NewPaymentRecord(userID, userEmail, reference string, amountCents int64) *PaymentRecord {
	return &PaymentRecord{
		ID:          ulid.Make().String(),
		UserID:      userID,
		UserEmail:   userEmail,
		AmountCents: amountCents,
		Reference:   reference,
		Channel:     "Direct Transfer",
		Status:      PaymentStatusSuccess,
		CreatedAt:   time.Now(),
	}
}
