//go:build !integration

package usecase_test

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/rs/zerolog"

	"academic-hub/internal/domain"
	"academic-hub/internal/domain/model"
	"academic-hub/internal/domain/ports/adapter"
	"academic-hub/internal/domain/ports/repository"
)

// ---- Mock UserRepository ----

type MockUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User // by id

	SaveFunc               func(ctx context.Context, tx repository.Tx, u *model.User) error
	ExtendSubscriptionFunc func(ctx context.Context, tx repository.Tx, id string, months int) (time.Time, error)
}

var _ repository.UserRepository = (*MockUserRepo)(nil)

func NewMockUserRepo() *MockUserRepo {
	return &MockUserRepo{users: map[string]*model.User{}}
}

func (r *MockUserRepo) Save(ctx context.Context, tx repository.Tx, u *model.User) error {
	if r.SaveFunc != nil {
		return r.SaveFunc(ctx, tx, u)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *MockUserRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *MockUserRepo) FindByEmail(ctx context.Context, tx repository.Tx, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *MockUserRepo) List(ctx context.Context, tx repository.Tx, offset, limit int) ([]*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.User
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *MockUserRepo) CountUsers(ctx context.Context, tx repository.Tx) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users), nil
}

func (r *MockUserRepo) CountActiveSubscriptions(ctx context.Context, tx repository.Tx, now time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, u := range r.users {
		if u.HasActiveSubscription(now) {
			n++
		}
	}
	return n, nil
}

func (r *MockUserRepo) SetRole(ctx context.Context, tx repository.Tx, id string, role model.UserRole) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.Role = role
	return nil
}

func (r *MockUserRepo) ExtendSubscription(ctx context.Context, tx repository.Tx, id string, months int) (time.Time, error) {
	if r.ExtendSubscriptionFunc != nil {
		return r.ExtendSubscriptionFunc(ctx, tx, id, months)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return time.Time{}, domain.ErrNotFound
	}
	expiry := time.Now().AddDate(0, months, 0)
	u.SubscriptionExpiry = &expiry
	return expiry, nil
}

func (r *MockUserRepo) CountLapsedBetween(ctx context.Context, tx repository.Tx, from, to time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, u := range r.users {
		if u.SubscriptionExpiry != nil && u.SubscriptionExpiry.After(from) && !u.SubscriptionExpiry.After(to) {
			n++
		}
	}
	return n, nil
}

// ---- Mock PaymentRepository ----

type MockPaymentRepo struct {
	mu    sync.Mutex
	data  map[string]*model.PaymentRecord // by id
	byRef map[string]string               // reference -> id

	AppendFunc            func(ctx context.Context, tx repository.Tx, p *model.PaymentRecord) error
	ExistsByReferenceFunc func(ctx context.Context, tx repository.Tx, reference string) (bool, error)
	SumByPeriodFunc       func(ctx context.Context, tx repository.Tx, period string) (int64, error)
}

var _ repository.PaymentRepository = (*MockPaymentRepo)(nil)

func NewMockPaymentRepo() *MockPaymentRepo {
	return &MockPaymentRepo{data: map[string]*model.PaymentRecord{}, byRef: map[string]string{}}
}

func (r *MockPaymentRepo) Append(ctx context.Context, tx repository.Tx, p *model.PaymentRecord) error {
	if r.AppendFunc != nil {
		return r.AppendFunc(ctx, tx, p)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, used := r.byRef[p.Reference]; used {
		return domain.ErrReferenceAlreadyUsed
	}
	cp := *p
	r.data[p.ID] = &cp
	r.byRef[p.Reference] = p.ID
	return nil
}

func (r *MockPaymentRepo) ExistsByReference(ctx context.Context, tx repository.Tx, reference string) (bool, error) {
	if r.ExistsByReferenceFunc != nil {
		return r.ExistsByReferenceFunc(ctx, tx, reference)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.byRef[reference]
	return ok, nil
}

func (r *MockPaymentRepo) ListByUser(ctx context.Context, tx repository.Tx, userID string) ([]*model.PaymentRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.PaymentRecord
	for _, p := range r.data {
		if p.UserID == userID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *MockPaymentRepo) SumByPeriod(ctx context.Context, tx repository.Tx, period string) (int64, error) {
	if r.SumByPeriodFunc != nil {
		return r.SumByPeriodFunc(ctx, tx, period)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var sum int64
	for _, p := range r.data {
		sum += p.AmountCents
	}
	return sum, nil
}

// ---- Mock MaterialRepository ----

type MockMaterialRepo struct {
	mu   sync.Mutex
	data map[string]*model.StudyMaterial
}

var _ repository.MaterialRepository = (*MockMaterialRepo)(nil)

func NewMockMaterialRepo() *MockMaterialRepo {
	return &MockMaterialRepo{data: map[string]*model.StudyMaterial{}}
}

func (r *MockMaterialRepo) Save(ctx context.Context, tx repository.Tx, m *model.StudyMaterial) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *m
	r.data[m.ID] = &cp
	return nil
}

func (r *MockMaterialRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.StudyMaterial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.data[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *MockMaterialRepo) ListAll(ctx context.Context, tx repository.Tx) ([]*model.StudyMaterial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.StudyMaterial
	for _, m := range r.data {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (r *MockMaterialRepo) Search(ctx context.Context, tx repository.Tx, query string) ([]*model.StudyMaterial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q := strings.ToLower(query)
	var out []*model.StudyMaterial
	for _, m := range r.data {
		if strings.Contains(strings.ToLower(m.Title), q) || strings.Contains(strings.ToLower(m.School), q) {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *MockMaterialRepo) Delete(ctx context.Context, tx repository.Tx, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.data, id)
	return nil
}

func (r *MockMaterialRepo) CountMaterials(ctx context.Context, tx repository.Tx) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.data), nil
}

// ---- Mock FavoriteRepository ----

type MockFavoriteRepo struct {
	mu        sync.Mutex
	favs      map[string]map[string]bool // userID -> materialID set
	materials *MockMaterialRepo
}

var _ repository.FavoriteRepository = (*MockFavoriteRepo)(nil)

func NewMockFavoriteRepo(materials *MockMaterialRepo) *MockFavoriteRepo {
	return &MockFavoriteRepo{favs: map[string]map[string]bool{}, materials: materials}
}

func (r *MockFavoriteRepo) Add(ctx context.Context, tx repository.Tx, userID, materialID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.favs[userID] == nil {
		r.favs[userID] = map[string]bool{}
	}
	r.favs[userID][materialID] = true
	return nil
}

func (r *MockFavoriteRepo) Remove(ctx context.Context, tx repository.Tx, userID, materialID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.favs[userID], materialID)
	return nil
}

func (r *MockFavoriteRepo) ListByUser(ctx context.Context, tx repository.Tx, userID string) ([]*model.StudyMaterial, error) {
	r.mu.Lock()
	ids := make([]string, 0, len(r.favs[userID]))
	for id := range r.favs[userID] {
		ids = append(ids, id)
	}
	r.mu.Unlock()

	var out []*model.StudyMaterial
	for _, id := range ids {
		m, err := r.materials.FindByID(ctx, tx, id)
		if err == nil {
			out = append(out, m)
		}
	}
	return out, nil
}

// ---- Mock RatingRepository ----

type MockRatingRepo struct {
	mu    sync.Mutex
	votes map[string]map[string]int // materialID -> userID -> stars
}

var _ repository.RatingRepository = (*MockRatingRepo)(nil)

func NewMockRatingRepo() *MockRatingRepo {
	return &MockRatingRepo{votes: map[string]map[string]int{}}
}

func (r *MockRatingRepo) Save(ctx context.Context, tx repository.Tx, rating *model.Rating) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.votes[rating.MaterialID] == nil {
		r.votes[rating.MaterialID] = map[string]int{}
	}
	r.votes[rating.MaterialID][rating.UserID] = rating.Stars
	return nil
}

func (r *MockRatingRepo) Average(ctx context.Context, tx repository.Tx, materialID string) (float64, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	votes := r.votes[materialID]
	if len(votes) == 0 {
		return 0, 0, nil
	}
	sum := 0
	for _, s := range votes {
		sum += s
	}
	return float64(sum) / float64(len(votes)), len(votes), nil
}

// ---- Mock UniversityRepository ----

type MockUniversityRepo struct {
	mu   sync.Mutex
	data map[string]*model.University
}

var _ repository.UniversityRepository = (*MockUniversityRepo)(nil)

func NewMockUniversityRepo() *MockUniversityRepo {
	return &MockUniversityRepo{data: map[string]*model.University{}}
}

func (r *MockUniversityRepo) Save(ctx context.Context, tx repository.Tx, u *model.University) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	r.data[u.ID] = &cp
	return nil
}

func (r *MockUniversityRepo) ListAll(ctx context.Context, tx repository.Tx) ([]*model.University, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.University
	for _, u := range r.data {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

// ---- Mock TaskRepository ----

type MockTaskRepo struct {
	mu   sync.Mutex
	data map[string]*model.StudyTask
}

var _ repository.TaskRepository = (*MockTaskRepo)(nil)

func NewMockTaskRepo() *MockTaskRepo {
	return &MockTaskRepo{data: map[string]*model.StudyTask{}}
}

func (r *MockTaskRepo) Save(ctx context.Context, tx repository.Tx, t *model.StudyTask) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	r.data[t.ID] = &cp
	return nil
}

func (r *MockTaskRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.StudyTask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.data[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *MockTaskRepo) ListByUser(ctx context.Context, tx repository.Tx, userID string) ([]*model.StudyTask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.StudyTask
	for _, t := range r.data {
		if t.UserID == userID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *MockTaskRepo) Delete(ctx context.Context, tx repository.Tx, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.data, id)
	return nil
}

// ---- Mock TransactionManager ----

type MockTxManager struct {
	WithTxFunc func(ctx context.Context, txOpt pgx.TxOptions, fn func(ctx context.Context, tx repository.Tx) error) error
}

var _ repository.TransactionManager = (*MockTxManager)(nil)

func NewMockTxManager() *MockTxManager {
	return &MockTxManager{}
}

// WithTx runs the function immediately without a real transaction. Assign
// WithTxFunc to observe or fail the transactional path in a specific test.
func (m *MockTxManager) WithTx(ctx context.Context, txOpt pgx.TxOptions, fn func(ctx context.Context, tx repository.Tx) error) error {
	if m.WithTxFunc != nil {
		return m.WithTxFunc(ctx, txOpt, fn)
	}
	return fn(ctx, repository.NoTX)
}

// ---- Mock AIServiceAdapter ----

type MockAIAdapter struct {
	ChatWithUsageFunc func(ctx context.Context, model string, messages []adapter.Message) (string, adapter.Usage, error)
	LastMessages      []adapter.Message
}

var _ adapter.AIServiceAdapter = (*MockAIAdapter)(nil)

func (a *MockAIAdapter) ListModels(ctx context.Context) ([]string, error) {
	return []string{"mock-model"}, nil
}

func (a *MockAIAdapter) GetModelInfo(model string) (adapter.ModelInfo, error) {
	return adapter.ModelInfo{Name: "mock-model"}, nil
}

func (a *MockAIAdapter) CountTokens(ctx context.Context, model string, messages []adapter.Message) (int, error) {
	return len(messages), nil
}

func (a *MockAIAdapter) Chat(ctx context.Context, model string, messages []adapter.Message) (string, error) {
	reply, _, err := a.ChatWithUsage(ctx, model, messages)
	return reply, err
}

func (a *MockAIAdapter) ChatWithUsage(ctx context.Context, model string, messages []adapter.Message) (string, adapter.Usage, error) {
	a.LastMessages = messages
	if a.ChatWithUsageFunc != nil {
		return a.ChatWithUsageFunc(ctx, model, messages)
	}
	return "mock reply", adapter.Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15}, nil
}

// newTestLogger creates a silent zerolog.Logger so test output stays clean.
func newTestLogger() *zerolog.Logger {
	logger := zerolog.New(io.Discard)
	return &logger
}
