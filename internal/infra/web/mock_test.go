//go:build !integration

package web

import (
	"context"
	"time"

	"academic-hub/internal/domain/model"
	"academic-hub/internal/usecase"
)

// --- Mock use cases ---
// The interfaces are embedded for forward compatibility; only the methods a
// test exercises are overridden via the func fields.

type mockUserUC struct {
	usecase.UserUseCase
	RegisterFunc     func(ctx context.Context, email, password, school, year string) (*model.User, error)
	AuthenticateFunc func(ctx context.Context, email, password string) (*model.User, error)
	GetByIDFunc      func(ctx context.Context, id string) (*model.User, error)
}

func (m *mockUserUC) Register(ctx context.Context, email, password, school, year string) (*model.User, error) {
	return m.RegisterFunc(ctx, email, password, school, year)
}

func (m *mockUserUC) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	return m.AuthenticateFunc(ctx, email, password)
}

func (m *mockUserUC) GetByID(ctx context.Context, id string) (*model.User, error) {
	return m.GetByIDFunc(ctx, id)
}

type mockPaymentUC struct {
	usecase.PaymentUseCase
	VerifyAndActivateFunc func(ctx context.Context, message, userID, userEmail string) (*usecase.VerificationResult, error)
	HistoryFunc           func(ctx context.Context, userID string) ([]*model.PaymentRecord, error)
}

func (m *mockPaymentUC) VerifyAndActivate(ctx context.Context, message, userID, userEmail string) (*usecase.VerificationResult, error) {
	return m.VerifyAndActivateFunc(ctx, message, userID, userEmail)
}

func (m *mockPaymentUC) History(ctx context.Context, userID string) ([]*model.PaymentRecord, error) {
	return m.HistoryFunc(ctx, userID)
}

type mockStatsUC struct {
	usecase.StatsUseCase
	TotalsFunc  func(ctx context.Context) (int, int, int, error)
	RevenueFunc func(ctx context.Context) (int64, int64, int64, error)
}

func (m *mockStatsUC) Totals(ctx context.Context) (int, int, int, error) {
	return m.TotalsFunc(ctx)
}

func (m *mockStatsUC) Revenue(ctx context.Context) (int64, int64, int64, error) {
	return m.RevenueFunc(ctx)
}

// testUser builds a student with an optional active window.
func testUser(id, email string, role model.UserRole, active bool) *model.User {
	u := &model.User{
		ID:           id,
		Email:        email,
		Role:         role,
		RegisteredAt: time.Now(),
	}
	if active {
		expiry := time.Now().AddDate(0, 4, 0)
		u.SubscriptionExpiry = &expiry
	}
	return u
}
