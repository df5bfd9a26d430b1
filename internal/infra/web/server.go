package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	red "academic-hub/internal/infra/redis"
	"academic-hub/internal/usecase"
)

// Server owns the HTTP surface: public auth endpoints, the student API and
// the admin API, all under /api/v1.
type Server struct {
	auth    *Auth
	limiter *red.RateLimiter
	userUC  usecase.UserUseCase
	payUC   usecase.PaymentUseCase
	matUC   usecase.MaterialUseCase
	favUC   usecase.FavoriteUseCase
	rateUC  usecase.RatingUseCase
	taskUC  usecase.TaskUseCase
	tutorUC usecase.TutorUseCase
	uniUC   usecase.UniversityUseCase
	statsUC usecase.StatsUseCase
	log     *zerolog.Logger
}

func NewServer(
	auth *Auth,
	limiter *red.RateLimiter,
	userUC usecase.UserUseCase,
	payUC usecase.PaymentUseCase,
	matUC usecase.MaterialUseCase,
	favUC usecase.FavoriteUseCase,
	rateUC usecase.RatingUseCase,
	taskUC usecase.TaskUseCase,
	tutorUC usecase.TutorUseCase,
	uniUC usecase.UniversityUseCase,
	statsUC usecase.StatsUseCase,
	logger *zerolog.Logger,
) *Server {
	return &Server{
		auth:    auth,
		limiter: limiter,
		userUC:  userUC,
		payUC:   payUC,
		matUC:   matUC,
		favUC:   favUC,
		rateUC:  rateUC,
		taskUC:  taskUC,
		tutorUC: tutorUC,
		uniUC:   uniUC,
		statsUC: statsUC,
		log:     logger,
	}
}

// Routes builds the full router. Cross-cutting middleware wraps everything;
// auth applies per group.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(func(next http.Handler) http.Handler {
		return Chain(next, TraceID(), RequestLog(s.log), Recover(s.log), Timeout(30*time.Second))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		// Public
		r.Post("/auth/register", registerHandler(s.userUC, s.auth))
		r.Post("/auth/login", loginHandler(s.userUC, s.auth))
		r.Get("/universities", universitiesListHandler(s.uniUC))

		// Authenticated student surface
		r.Group(func(r chi.Router) {
			r.Use(s.auth.RequireAuth)

			r.Get("/me", meHandler(s.userUC))

			r.Group(func(r chi.Router) {
				// A tight window on verification blunts brute-force probing
				// of transaction codes.
				r.Use(RateLimit(s.limiter, "payments", 10, time.Minute))
				r.Post("/payments/verify", paymentVerifyHandler(s.payUC, s.userUC))
			})
			r.Get("/payments", paymentHistoryHandler(s.payUC))

			r.Get("/materials", materialsListHandler(s.matUC))
			r.Get("/materials/{id}", materialGetHandler(s.matUC, s.rateUC))
			r.Put("/materials/{id}/favorite", favoriteAddHandler(s.favUC))
			r.Delete("/materials/{id}/favorite", favoriteRemoveHandler(s.favUC))
			r.Get("/favorites", favoritesListHandler(s.favUC))
			r.Put("/materials/{id}/rating", ratingPutHandler(s.rateUC))
			r.Get("/materials/{id}/rating", ratingGetHandler(s.rateUC))

			r.Get("/tasks", tasksListHandler(s.taskUC))
			r.Post("/tasks", taskCreateHandler(s.taskUC))
			r.Put("/tasks/{id}", taskUpdateHandler(s.taskUC))
			r.Delete("/tasks/{id}", taskDeleteHandler(s.taskUC))

			r.Group(func(r chi.Router) {
				r.Use(RateLimit(s.limiter, "tutor", 20, time.Minute))
				r.Post("/tutor/ask", tutorAskHandler(s.tutorUC))
			})
			r.Get("/tutor/models", tutorModelsHandler(s.tutorUC))
		})

		// Admin surface
		r.Route("/admin", func(r chi.Router) {
			r.Use(s.auth.RequireAuth, s.auth.RequireAdmin)

			r.Get("/stats", statsHandler(s.statsUC))
			r.Get("/users", usersListHandler(s.userUC))
			r.Get("/users/{id}", userGetHandler(s.userUC, s.payUC))
			r.Post("/users/{id}/promote", userPromoteHandler(s.userUC))

			r.Post("/materials", materialCreateHandler(s.matUC))
			r.Put("/materials/{id}", materialUpdateHandler(s.matUC))
			r.Delete("/materials/{id}", materialDeleteHandler(s.matUC))

			r.Post("/universities", universityCreateHandler(s.uniUC))
		})
	})

	return r
}
