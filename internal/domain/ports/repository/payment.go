package repository

import (
	"context"

	"academic-hub/internal/domain/model"
)

// -----------------------------
// Payment ledger
// -----------------------------

// PaymentRepository is the append-only ledger of accepted activation
// transactions. The backing store must enforce reference uniqueness with a
// unique index; ExistsByReference alone leaves a check-then-act window when
// two submissions race on the same code.
type PaymentRepository interface {
	Append(ctx context.Context, tx Tx, p *model.PaymentRecord) error
	ExistsByReference(ctx context.Context, tx Tx, reference string) (bool, error)
	ListByUser(ctx context.Context, tx Tx, userID string) ([]*model.PaymentRecord, error)
	SumByPeriod(ctx context.Context, tx Tx, period string) (int64, error)
}
