//go:build !integration

package web

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"academic-hub/internal/domain"
	"academic-hub/internal/domain/model"
	"academic-hub/internal/usecase"
)

func newTestAuth(t *testing.T) *Auth {
	t.Helper()
	auth, err := NewAuth("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("auth setup: %v", err)
	}
	return auth
}

func newTestServer(auth *Auth, userUC usecase.UserUseCase, payUC usecase.PaymentUseCase, statsUC usecase.StatsUseCase) *Server {
	logger := zerolog.New(io.Discard)
	return NewServer(auth, nil, userUC, payUC, nil, nil, nil, nil, nil, nil, statsUC, &logger)
}

func doJSON(t *testing.T, handler http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestPaymentVerifyEndpoint(t *testing.T) {
	auth := newTestAuth(t)
	student := testUser("user-1", "jane@uni.ac.ke", model.RoleStudent, false)
	token, _ := auth.IssueToken(student)

	userUC := &mockUserUC{
		GetByIDFunc: func(ctx context.Context, id string) (*model.User, error) {
			return student, nil
		},
	}

	t.Run("should return the activation result on success", func(t *testing.T) {
		expiry := time.Now().AddDate(0, 4, 0).UTC()
		payUC := &mockPaymentUC{
			VerifyAndActivateFunc: func(ctx context.Context, message, userID, userEmail string) (*usecase.VerificationResult, error) {
				if userID != "user-1" || userEmail != "jane@uni.ac.ke" {
					t.Errorf("wrong identity forwarded: %s / %s", userID, userEmail)
				}
				return &usecase.VerificationResult{
					Reference:           "QCH7X2M9PL",
					AmountCreditedCents: 5000,
					SubscriptionExpiry:  expiry,
				}, nil
			},
		}
		srv := newTestServer(auth, userUC, payUC, nil)

		rec := doJSON(t, srv.Routes(), http.MethodPost, "/api/v1/payments/verify", token,
			map[string]string{"message": "QCH7X2M9PL Confirmed. Ksh 50.00 sent to Academic Hub"})

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		var resp struct {
			Reference           string `json:"reference"`
			AmountCreditedCents int64  `json:"amount_credited_cents"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Reference != "QCH7X2M9PL" || resp.AmountCreditedCents != 5000 {
			t.Errorf("unexpected response: %+v", resp)
		}
	})

	t.Run("should map a replay to 409", func(t *testing.T) {
		payUC := &mockPaymentUC{
			VerifyAndActivateFunc: func(ctx context.Context, message, userID, userEmail string) (*usecase.VerificationResult, error) {
				return nil, domain.ErrReferenceAlreadyUsed
			},
		}
		srv := newTestServer(auth, userUC, payUC, nil)

		rec := doJSON(t, srv.Routes(), http.MethodPost, "/api/v1/payments/verify", token,
			map[string]string{"message": "QCH7X2M9PL Confirmed."})
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
	})

	t.Run("should map an under-payment to 422", func(t *testing.T) {
		payUC := &mockPaymentUC{
			VerifyAndActivateFunc: func(ctx context.Context, message, userID, userEmail string) (*usecase.VerificationResult, error) {
				return nil, &domain.AmountBelowMinimumError{DetectedCents: 3000, MinimumCents: 5000}
			},
		}
		srv := newTestServer(auth, userUC, payUC, nil)

		rec := doJSON(t, srv.Routes(), http.MethodPost, "/api/v1/payments/verify", token,
			map[string]string{"message": "QCH7X2M9PL Confirmed. Ksh 30.00"})
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
	})

	t.Run("should map a missing reference to 422", func(t *testing.T) {
		payUC := &mockPaymentUC{
			VerifyAndActivateFunc: func(ctx context.Context, message, userID, userEmail string) (*usecase.VerificationResult, error) {
				return nil, domain.ErrReferenceNotFound
			},
		}
		srv := newTestServer(auth, userUC, payUC, nil)

		rec := doJSON(t, srv.Routes(), http.MethodPost, "/api/v1/payments/verify", token,
			map[string]string{"message": "no code in here"})
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
	})

	t.Run("should reject a request without a token", func(t *testing.T) {
		srv := newTestServer(auth, userUC, &mockPaymentUC{}, nil)
		rec := doJSON(t, srv.Routes(), http.MethodPost, "/api/v1/payments/verify", "",
			map[string]string{"message": "QCH7X2M9PL"})
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func TestAuthEndpoints(t *testing.T) {
	auth := newTestAuth(t)

	t.Run("should register and hand back a token", func(t *testing.T) {
		userUC := &mockUserUC{
			RegisterFunc: func(ctx context.Context, email, password, school, year string) (*model.User, error) {
				return testUser("user-1", email, model.RoleStudent, false), nil
			},
		}
		srv := newTestServer(auth, userUC, nil, nil)

		rec := doJSON(t, srv.Routes(), http.MethodPost, "/api/v1/auth/register", "",
			map[string]string{"email": "jane@uni.ac.ke", "password": "s3cret-pw"})

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		var resp struct {
			Token string `json:"token"`
			User  struct {
				Email string `json:"email"`
			} `json:"user"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Token == "" {
			t.Error("expected a session token")
		}
		if resp.User.Email != "jane@uni.ac.ke" {
			t.Errorf("unexpected user payload: %+v", resp.User)
		}
	})

	t.Run("should map a duplicate registration to 409", func(t *testing.T) {
		userUC := &mockUserUC{
			RegisterFunc: func(ctx context.Context, email, password, school, year string) (*model.User, error) {
				return nil, domain.ErrAlreadyExists
			},
		}
		srv := newTestServer(auth, userUC, nil, nil)

		rec := doJSON(t, srv.Routes(), http.MethodPost, "/api/v1/auth/register", "",
			map[string]string{"email": "jane@uni.ac.ke", "password": "s3cret-pw"})
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
	})

	t.Run("should reject bad credentials with 401", func(t *testing.T) {
		userUC := &mockUserUC{
			AuthenticateFunc: func(ctx context.Context, email, password string) (*model.User, error) {
				return nil, domain.ErrInvalidCredentials
			},
		}
		srv := newTestServer(auth, userUC, nil, nil)

		rec := doJSON(t, srv.Routes(), http.MethodPost, "/api/v1/auth/login", "",
			map[string]string{"email": "jane@uni.ac.ke", "password": "wrong"})
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("should never echo the password hash", func(t *testing.T) {
		userUC := &mockUserUC{
			AuthenticateFunc: func(ctx context.Context, email, password string) (*model.User, error) {
				u := testUser("user-1", email, model.RoleStudent, true)
				u.PasswordHash = "$2a$10$super-secret-hash"
				return u, nil
			},
		}
		srv := newTestServer(auth, userUC, nil, nil)

		rec := doJSON(t, srv.Routes(), http.MethodPost, "/api/v1/auth/login", "",
			map[string]string{"email": "jane@uni.ac.ke", "password": "s3cret-pw"})
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if bytes.Contains(rec.Body.Bytes(), []byte("super-secret-hash")) {
			t.Error("response leaked the password hash")
		}
	})
}

func TestAdminGate(t *testing.T) {
	auth := newTestAuth(t)
	statsUC := &mockStatsUC{
		TotalsFunc: func(ctx context.Context) (int, int, int, error) {
			return 12, 5, 30, nil
		},
		RevenueFunc: func(ctx context.Context) (int64, int64, int64, error) {
			return 10000, 40000, 480000, nil
		},
	}

	t.Run("should serve stats to an admin", func(t *testing.T) {
		admin := testUser("admin-1", "admin@hub.ac.ke", model.RoleAdmin, false)
		token, _ := auth.IssueToken(admin)
		srv := newTestServer(auth, nil, nil, statsUC)

		rec := doJSON(t, srv.Routes(), http.MethodGet, "/api/v1/admin/stats", token, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		var resp struct {
			TotalUsers int `json:"total_users"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.TotalUsers != 12 {
			t.Errorf("expected 12 users, got %d", resp.TotalUsers)
		}
	})

	t.Run("should refuse a student with 403", func(t *testing.T) {
		student := testUser("user-1", "jane@uni.ac.ke", model.RoleStudent, true)
		token, _ := auth.IssueToken(student)
		srv := newTestServer(auth, nil, nil, statsUC)

		rec := doJSON(t, srv.Routes(), http.MethodGet, "/api/v1/admin/stats", token, nil)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})

	t.Run("should refuse a forged token", func(t *testing.T) {
		otherAuth, _ := NewAuth("other-secret", time.Hour)
		token, _ := otherAuth.IssueToken(testUser("admin-1", "admin@hub.ac.ke", model.RoleAdmin, false))
		srv := newTestServer(auth, nil, nil, statsUC)

		rec := doJSON(t, srv.Routes(), http.MethodGet, "/api/v1/admin/stats", token, nil)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}
