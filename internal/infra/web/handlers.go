package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"academic-hub/internal/domain"
	"academic-hub/internal/domain/model"
	"academic-hub/internal/domain/ports/adapter"
	"academic-hub/internal/infra/metrics"
	"academic-hub/internal/usecase"
)

// ---------------------------------------------------------------------------
// JSON plumbing
// ---------------------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// ---------------------------------------------------------------------------
// Response views. Domain entities carry no JSON tags so the wire shape is an
// explicit choice here, and the password hash can never leak by accident.
// ---------------------------------------------------------------------------

type userView struct {
	ID                 string     `json:"id"`
	Email              string     `json:"email"`
	School             string     `json:"school,omitempty"`
	Year               string     `json:"year,omitempty"`
	Role               string     `json:"role"`
	SubscriptionExpiry *time.Time `json:"subscription_expiry,omitempty"`
	SubscriptionActive bool       `json:"subscription_active"`
	RegisteredAt       time.Time  `json:"registered_at"`
}

func toUserView(u *model.User) userView {
	return userView{
		ID:                 u.ID,
		Email:              u.Email,
		School:             u.School,
		Year:               u.Year,
		Role:               string(u.Role),
		SubscriptionExpiry: u.SubscriptionExpiry,
		SubscriptionActive: u.HasActiveSubscription(time.Now()),
		RegisteredAt:       u.RegisteredAt,
	}
}

type materialView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	FileURL     string    `json:"file_url"`
	School      string    `json:"school,omitempty"`
	Year        string    `json:"year,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toMaterialView(m *model.StudyMaterial) materialView {
	return materialView{
		ID:          m.ID,
		Title:       m.Title,
		Type:        string(m.Type),
		FileURL:     m.FileURL,
		School:      m.School,
		Year:        m.Year,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

func toMaterialViews(ms []*model.StudyMaterial) []materialView {
	out := make([]materialView, 0, len(ms))
	for _, m := range ms {
		out = append(out, toMaterialView(m))
	}
	return out
}

type taskView struct {
	ID      string     `json:"id"`
	Type    string     `json:"type"`
	Title   string     `json:"title"`
	Content string     `json:"content,omitempty"`
	Date    *time.Time `json:"date,omitempty"`
}

func toTaskView(t *model.StudyTask) taskView {
	return taskView{ID: t.ID, Type: string(t.Type), Title: t.Title, Content: t.Content, Date: t.Date}
}

type paymentView struct {
	ID          string    `json:"id"`
	Reference   string    `json:"reference"`
	AmountCents int64     `json:"amount_cents"`
	Channel     string    `json:"channel"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func toPaymentView(p *model.PaymentRecord) paymentView {
	return paymentView{
		ID:          p.ID,
		Reference:   p.Reference,
		AmountCents: p.AmountCents,
		Channel:     p.Channel,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// Auth
// ---------------------------------------------------------------------------

func registerHandler(userUC usecase.UserUseCase, auth *Auth) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
			School   string `json:"school"`
			Year     string `json:"year"`
		}
		if !decodeBody(w, r, &req) {
			return
		}

		user, err := userUC.Register(r.Context(), req.Email, req.Password, req.School, req.Year)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrAlreadyExists):
				writeError(w, http.StatusConflict, "email already registered")
			case errors.Is(err, domain.ErrInvalidArgument):
				writeError(w, http.StatusBadRequest, "email and password are required")
			default:
				writeError(w, http.StatusInternalServerError, "registration failed")
			}
			return
		}

		token, err := auth.IssueToken(user)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "registration failed")
			return
		}
		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"token": token,
			"user":  toUserView(user),
		})
	}
}

func loginHandler(userUC usecase.UserUseCase, auth *Auth) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if !decodeBody(w, r, &req) {
			return
		}

		user, err := userUC.Authenticate(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrNotFound) {
				writeError(w, http.StatusUnauthorized, "invalid email or password")
				return
			}
			writeError(w, http.StatusInternalServerError, "login failed")
			return
		}

		token, err := auth.IssueToken(user)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "login failed")
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"token": token,
			"user":  toUserView(user),
		})
	}
}

func meHandler(userUC usecase.UserUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := userUC.GetByID(r.Context(), userIDFromContext(r.Context()))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeError(w, http.StatusNotFound, "user not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to load profile")
			return
		}
		writeJSON(w, http.StatusOK, toUserView(user))
	}
}

// ---------------------------------------------------------------------------
// Payments
// ---------------------------------------------------------------------------

func paymentVerifyHandler(paymentUC usecase.PaymentUseCase, userUC usecase.UserUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		var req struct {
			Message string `json:"message"`
		}
		if !decodeBody(w, r, &req) {
			return
		}

		ctx := r.Context()
		userID := userIDFromContext(ctx)
		user, err := userUC.GetByID(ctx, userID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "verification failed")
			return
		}

		res, err := paymentUC.VerifyAndActivate(ctx, req.Message, userID, user.Email)
		if err != nil {
			reason, status, msg := classifyVerifyError(err)
			metrics.IncPaymentVerify("fail", reason)
			metrics.ObservePaymentVerify("fail", time.Since(start))
			writeError(w, status, msg)
			return
		}

		metrics.IncPaymentVerify("ok", "")
		metrics.ObservePaymentVerify("ok", time.Since(start))
		metrics.AddPaymentCredited(res.AmountCreditedCents)
		metrics.IncSubscriptionsActivated()

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"reference":             res.Reference,
			"amount_credited_cents": res.AmountCreditedCents,
			"subscription_expiry":   res.SubscriptionExpiry,
		})
	}
}

func classifyVerifyError(err error) (reason string, status int, msg string) {
	var below *domain.AmountBelowMinimumError
	switch {
	case errors.Is(err, domain.ErrMessageTooShort):
		return "too_short", http.StatusUnprocessableEntity,
			"message is too short to be a valid M-Pesa confirmation"
	case errors.Is(err, domain.ErrReferenceNotFound):
		return "no_reference", http.StatusUnprocessableEntity,
			"no transaction code found in the message"
	case errors.As(err, &below):
		return "below_minimum", http.StatusUnprocessableEntity, below.Error()
	case errors.Is(err, domain.ErrReferenceAlreadyUsed):
		return "replay", http.StatusConflict,
			"this transaction code has already been used"
	case errors.Is(err, domain.ErrOperationFailed):
		return "storage", http.StatusInternalServerError, "verification failed"
	default:
		return "unknown", http.StatusInternalServerError, "verification failed"
	}
}

func paymentHistoryHandler(paymentUC usecase.PaymentUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := paymentUC.History(r.Context(), userIDFromContext(r.Context()))
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to list payments")
			return
		}
		out := make([]paymentView, 0, len(records))
		for _, p := range records {
			out = append(out, toPaymentView(p))
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"data": out})
	}
}

// ---------------------------------------------------------------------------
// Materials
// ---------------------------------------------------------------------------

func materialsListHandler(materialUC usecase.MaterialUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ms, err := materialUC.List(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to list materials")
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"data": toMaterialViews(ms)})
	}
}

func materialGetHandler(materialUC usecase.MaterialUseCase, ratingUC usecase.RatingUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		m, err := materialUC.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeError(w, http.StatusNotFound, "material not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to get material")
			return
		}
		summary, err := ratingUC.Summary(r.Context(), id)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to get material")
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"material": toMaterialView(m),
			"rating":   summary,
		})
	}
}

func materialCreateHandler(materialUC usecase.MaterialUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Title       string `json:"title"`
			Type        string `json:"type"`
			FileURL     string `json:"file_url"`
			School      string `json:"school"`
			Year        string `json:"year"`
			Description string `json:"description"`
		}
		if !decodeBody(w, r, &req) {
			return
		}

		m, err := materialUC.Create(r.Context(), req.Title, model.MaterialType(req.Type),
			req.FileURL, req.School, req.Year, req.Description, userIDFromContext(r.Context()))
		if err != nil {
			if errors.Is(err, domain.ErrInvalidArgument) {
				writeError(w, http.StatusBadRequest, "title, type and file_url are required")
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to create material")
			return
		}
		writeJSON(w, http.StatusCreated, toMaterialView(m))
	}
}

func materialUpdateHandler(materialUC usecase.MaterialUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		m, err := materialUC.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeError(w, http.StatusNotFound, "material not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to update material")
			return
		}

		var req struct {
			Title       *string `json:"title"`
			Type        *string `json:"type"`
			FileURL     *string `json:"file_url"`
			School      *string `json:"school"`
			Year        *string `json:"year"`
			Description *string `json:"description"`
		}
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Title != nil {
			m.Title = *req.Title
		}
		if req.Type != nil {
			m.Type = model.MaterialType(*req.Type)
		}
		if req.FileURL != nil {
			m.FileURL = *req.FileURL
		}
		if req.School != nil {
			m.School = *req.School
		}
		if req.Year != nil {
			m.Year = *req.Year
		}
		if req.Description != nil {
			m.Description = *req.Description
		}

		if err := materialUC.Update(r.Context(), m); err != nil {
			if errors.Is(err, domain.ErrInvalidArgument) {
				writeError(w, http.StatusBadRequest, "invalid material fields")
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to update material")
			return
		}
		writeJSON(w, http.StatusOK, toMaterialView(m))
	}
}

func materialDeleteHandler(materialUC usecase.MaterialUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := materialUC.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeError(w, http.StatusNotFound, "material not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to delete material")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ---------------------------------------------------------------------------
// Favorites and ratings
// ---------------------------------------------------------------------------

func favoriteAddHandler(favUC usecase.FavoriteUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := favUC.Add(r.Context(), userIDFromContext(r.Context()), chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeError(w, http.StatusNotFound, "material not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to add favorite")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func favoriteRemoveHandler(favUC usecase.FavoriteUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := favUC.Remove(r.Context(), userIDFromContext(r.Context()), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to remove favorite")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func favoritesListHandler(favUC usecase.FavoriteUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ms, err := favUC.List(r.Context(), userIDFromContext(r.Context()))
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to list favorites")
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"data": toMaterialViews(ms)})
	}
}

func ratingPutHandler(ratingUC usecase.RatingUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Stars int `json:"stars"`
		}
		if !decodeBody(w, r, &req) {
			return
		}
		err := ratingUC.Rate(r.Context(), userIDFromContext(r.Context()), chi.URLParam(r, "id"), req.Stars)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidArgument):
				writeError(w, http.StatusBadRequest, "stars must be between 1 and 5")
			case errors.Is(err, domain.ErrNotFound):
				writeError(w, http.StatusNotFound, "material not found")
			default:
				writeError(w, http.StatusInternalServerError, "failed to save rating")
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func ratingGetHandler(ratingUC usecase.RatingUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := ratingUC.Summary(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to get rating")
			return
		}
		writeJSON(w, http.StatusOK, summary)
	}
}

// ---------------------------------------------------------------------------
// Study tasks
// ---------------------------------------------------------------------------

func tasksListHandler(taskUC usecase.TaskUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tasks, err := taskUC.List(r.Context(), userIDFromContext(r.Context()))
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to list tasks")
			return
		}
		out := make([]taskView, 0, len(tasks))
		for _, t := range tasks {
			out = append(out, toTaskView(t))
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"data": out})
	}
}

func taskCreateHandler(taskUC usecase.TaskUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Type    string     `json:"type"`
			Title   string     `json:"title"`
			Content string     `json:"content"`
			Date    *time.Time `json:"date"`
		}
		if !decodeBody(w, r, &req) {
			return
		}
		t, err := taskUC.Add(r.Context(), userIDFromContext(r.Context()),
			model.TaskType(req.Type), req.Title, req.Content, req.Date)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidArgument) {
				writeError(w, http.StatusBadRequest, "type and title are required")
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to create task")
			return
		}
		writeJSON(w, http.StatusCreated, toTaskView(t))
	}
}

func taskUpdateHandler(taskUC usecase.TaskUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Type    string     `json:"type"`
			Title   string     `json:"title"`
			Content string     `json:"content"`
			Date    *time.Time `json:"date"`
		}
		if !decodeBody(w, r, &req) {
			return
		}
		userID := userIDFromContext(r.Context())
		task := &model.StudyTask{
			ID:      chi.URLParam(r, "id"),
			UserID:  userID,
			Type:    model.TaskType(req.Type),
			Title:   req.Title,
			Content: req.Content,
			Date:    req.Date,
		}
		if err := taskUC.Update(r.Context(), userID, task); err != nil {
			switch {
			case errors.Is(err, domain.ErrNotFound):
				writeError(w, http.StatusNotFound, "task not found")
			case errors.Is(err, domain.ErrForbidden):
				writeError(w, http.StatusForbidden, "not your task")
			case errors.Is(err, domain.ErrInvalidArgument):
				writeError(w, http.StatusBadRequest, "invalid task fields")
			default:
				writeError(w, http.StatusInternalServerError, "failed to update task")
			}
			return
		}
		writeJSON(w, http.StatusOK, toTaskView(task))
	}
}

func taskDeleteHandler(taskUC usecase.TaskUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFromContext(r.Context())
		if err := taskUC.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
			switch {
			case errors.Is(err, domain.ErrNotFound):
				writeError(w, http.StatusNotFound, "task not found")
			case errors.Is(err, domain.ErrForbidden):
				writeError(w, http.StatusForbidden, "not your task")
			default:
				writeError(w, http.StatusInternalServerError, "failed to delete task")
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ---------------------------------------------------------------------------
// AI tutor
// ---------------------------------------------------------------------------

func tutorAskHandler(tutorUC usecase.TutorUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Question string            `json:"question"`
			History  []adapter.Message `json:"history"`
		}
		if !decodeBody(w, r, &req) {
			return
		}
		answer, err := tutorUC.Ask(r.Context(), userIDFromContext(r.Context()), req.Question, req.History)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrNoActiveSubscription):
				writeError(w, http.StatusPaymentRequired, "an active subscription is required for the tutor")
			case errors.Is(err, domain.ErrInvalidArgument):
				writeError(w, http.StatusBadRequest, "question is required")
			default:
				writeError(w, http.StatusBadGateway, "tutor is unavailable, try again later")
			}
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"answer": answer})
	}
}

func tutorModelsHandler(tutorUC usecase.TutorUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		models, err := tutorUC.ListModels(r.Context())
		if err != nil {
			writeError(w, http.StatusBadGateway, "failed to list models")
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"data": models})
	}
}

// ---------------------------------------------------------------------------
// Universities
// ---------------------------------------------------------------------------

func universitiesListHandler(uniUC usecase.UniversityUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		unis, err := uniUC.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to list universities")
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"data": unis})
	}
}

func universityCreateHandler(uniUC usecase.UniversityUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name     string `json:"name"`
			Location string `json:"location"`
		}
		if !decodeBody(w, r, &req) {
			return
		}
		uni, err := uniUC.Add(r.Context(), req.Name, req.Location)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidArgument) {
				writeError(w, http.StatusBadRequest, "name is required")
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to create university")
			return
		}
		writeJSON(w, http.StatusCreated, uni)
	}
}

// ---------------------------------------------------------------------------
// Admin
// ---------------------------------------------------------------------------

func statsHandler(statsUC usecase.StatsUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		users, activeSubs, materials, err := statsUC.Totals(ctx)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to get totals")
			return
		}
		week, month, year, err := statsUC.Revenue(ctx)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to get revenue")
			return
		}

		response := struct {
			TotalUsers          int `json:"total_users"`
			ActiveSubscriptions int `json:"active_subscriptions"`
			TotalMaterials      int `json:"total_materials"`
			Revenue             struct {
				Week  int64 `json:"week"`
				Month int64 `json:"month"`
				Year  int64 `json:"year"`
			} `json:"revenue_cents"`
		}{
			TotalUsers:          users,
			ActiveSubscriptions: activeSubs,
			TotalMaterials:      materials,
		}
		response.Revenue.Week = week
		response.Revenue.Month = month
		response.Revenue.Year = year

		writeJSON(w, http.StatusOK, response)
	}
}

func usersListHandler(userUC usecase.UserUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		if limit <= 0 {
			limit = 50
		}
		if offset < 0 {
			offset = 0
		}

		users, err := userUC.List(r.Context(), offset, limit)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to list users")
			return
		}
		total, err := userUC.Count(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to count users")
			return
		}

		out := make([]userView, 0, len(users))
		for _, u := range users {
			out = append(out, toUserView(u))
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"data":   out,
			"total":  total,
			"limit":  limit,
			"offset": offset,
		})
	}
}

func userGetHandler(userUC usecase.UserUseCase, paymentUC usecase.PaymentUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := userUC.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeError(w, http.StatusNotFound, "user not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to get user")
			return
		}

		payments, err := paymentUC.History(r.Context(), user.ID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to get user payments")
			return
		}
		pv := make([]paymentView, 0, len(payments))
		for _, p := range payments {
			pv = append(pv, toPaymentView(p))
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"user":     toUserView(user),
			"payments": pv,
		})
	}
}

func userPromoteHandler(userUC usecase.UserUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := userUC.PromoteToAdmin(r.Context(), chi.URLParam(r, "id")); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeError(w, http.StatusNotFound, "user not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to promote user")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
