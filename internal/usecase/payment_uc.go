// File: internal/usecase/payment_uc.go
package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/rs/zerolog"

	"academic-hub/internal/domain"
	"academic-hub/internal/domain/model"
	"academic-hub/internal/domain/ports/repository"
	"academic-hub/internal/infra/logging"
)

// Compile-time check
var _ PaymentUseCase = (*paymentUC)(nil)

// VerificationResult is what a successful activation reports back to the user.
type VerificationResult struct {
	Reference           string
	AmountCreditedCents int64
	SubscriptionExpiry  time.Time
}

type PaymentUseCase interface {
	// VerifyAndActivate parses a pasted M-Pesa confirmation message, rejects
	// replays and under-payments, and on success appends a ledger record and
	// extends the user's subscription window in a single transaction.
	VerifyAndActivate(ctx context.Context, message, userID, userEmail string) (*VerificationResult, error)
	// History returns the user's accepted payments, newest first.
	History(ctx context.Context, userID string) ([]*model.PaymentRecord, error)
	// SumByPeriod totals revenue for "week" | "month" | "year" (used by stats).
	SumByPeriod(ctx context.Context, period string) (int64, error)
}

type paymentUC struct {
	payments repository.PaymentRepository
	users    repository.UserRepository
	tm       repository.TransactionManager

	minAmountCents int64
	months         int

	log *zerolog.Logger
}

func NewPaymentUseCase(payments repository.PaymentRepository, users repository.UserRepository, tm repository.TransactionManager, minAmountCents int64, months int, logger *zerolog.Logger) *paymentUC {
	if minAmountCents <= 0 {
		minAmountCents = 5000
	}
	if months <= 0 {
		months = 4
	}
	return &paymentUC{
		payments:       payments,
		users:          users,
		tm:             tm,
		minAmountCents: minAmountCents,
		months:         months,
		log:            logger,
	}
}

func (u *paymentUC) VerifyAndActivate(ctx context.Context, message, userID, userEmail string) (*VerificationResult, error) {
	defer logging.TraceDuration(u.log, "PaymentUC.VerifyAndActivate")()

	if userID == "" {
		return nil, domain.ErrInvalidArgument
	}

	// Pure validation first; no mutation happens until every check passes.
	conf, err := model.ParseMpesaConfirmation(message)
	if err != nil {
		return nil, err
	}

	// A detected zero amount means "not determinable" and does not block;
	// a positive amount under the minimum does.
	if conf.AmountCents > 0 && conf.AmountCents < u.minAmountCents {
		return nil, &domain.AmountBelowMinimumError{
			DetectedCents: conf.AmountCents,
			MinimumCents:  u.minAmountCents,
		}
	}

	// Early replay check for a precise error. The unique index on reference is
	// what actually closes the race when two submissions carry the same code.
	used, err := u.payments.ExistsByReference(ctx, repository.NoTX, conf.Reference)
	if err != nil {
		return nil, err
	}
	if used {
		return nil, domain.ErrReferenceAlreadyUsed
	}

	credited := conf.AmountCents
	if credited < u.minAmountCents {
		credited = u.minAmountCents
	}
	record := model.NewPaymentRecord(userID, userEmail, conf.Reference, credited)

	// Ledger append and subscription extension commit together: no state where
	// the payment is recorded but the user is not activated, or vice versa.
	var newExpiry time.Time
	err = u.tm.WithTx(ctx, pgx.TxOptions{}, func(ctx context.Context, tx repository.Tx) error {
		if err := u.payments.Append(ctx, tx, record); err != nil {
			return err
		}
		exp, err := u.users.ExtendSubscription(ctx, tx, userID, u.months)
		if err != nil {
			return err
		}
		newExpiry = exp
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrReferenceAlreadyUsed) {
			// Lost the race against a concurrent submission of the same code.
			return nil, domain.ErrReferenceAlreadyUsed
		}
		u.log.Error().Err(err).Str("reference", conf.Reference).Msg("activation commit failed")
		return nil, domain.ErrOperationFailed
	}

	u.log.Info().
		Str("reference", record.Reference).
		Int64("amount_cents", record.AmountCents).
		Time("subscription_expiry", newExpiry).
		Msg("payment verified, subscription activated")

	return &VerificationResult{
		Reference:           record.Reference,
		AmountCreditedCents: record.AmountCents,
		SubscriptionExpiry:  newExpiry,
	}, nil
}

func (u *paymentUC) History(ctx context.Context, userID string) ([]*model.PaymentRecord, error) {
	defer logging.TraceDuration(u.log, "PaymentUC.History")()
	return u.payments.ListByUser(ctx, repository.NoTX, userID)
}

func (u *paymentUC) SumByPeriod(ctx context.Context, period string) (int64, error) {
	return u.payments.SumByPeriod(ctx, repository.NoTX, period)
}
