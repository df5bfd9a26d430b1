package usecase

import (
	"context"

	"github.com/rs/zerolog"
)

// Compile-time check
var _ StatsUseCase = (*statsUC)(nil)

type StatsUseCase interface {
	Totals(ctx context.Context) (users int, activeSubs int, materials int, err error)
	Revenue(ctx context.Context) (week int64, month int64, year int64, err error)
}

type statsUC struct {
	users     UserUseCase
	materials MaterialUseCase
	payments  PaymentUseCase

	log *zerolog.Logger
}

func NewStatsUseCase(users UserUseCase, materials MaterialUseCase, payments PaymentUseCase, logger *zerolog.Logger) *statsUC {
	return &statsUC{users: users, materials: materials, payments: payments, log: logger}
}

func (s *statsUC) Totals(ctx context.Context) (int, int, int, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return 0, 0, 0, err
	}
	active, err := s.users.CountActiveSubscriptions(ctx)
	if err != nil {
		return 0, 0, 0, err
	}
	materials, err := s.materials.Count(ctx)
	if err != nil {
		return 0, 0, 0, err
	}
	return users, active, materials, nil
}

func (s *statsUC) Revenue(ctx context.Context) (int64, int64, int64, error) {
	w, err := s.payments.SumByPeriod(ctx, "week")
	if err != nil {
		return 0, 0, 0, err
	}
	m, err := s.payments.SumByPeriod(ctx, "month")
	if err != nil {
		return 0, 0, 0, err
	}
	y, err := s.payments.SumByPeriod(ctx, "year")
	if err != nil {
		return 0, 0, 0, err
	}
	return w, m, y, nil
}
