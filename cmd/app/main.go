package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"academic-hub/internal/config"
	"academic-hub/internal/domain/ports/adapter"
	aiAdapters "academic-hub/internal/infra/adapters/ai"
	pg "academic-hub/internal/infra/db/postgres"
	"academic-hub/internal/infra/logging"
	"academic-hub/internal/infra/metrics"
	red "academic-hub/internal/infra/redis"
	"academic-hub/internal/infra/sched"
	"academic-hub/internal/infra/web"
	"academic-hub/internal/usecase"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---- CLI flags ----
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	devMode := flag.Bool("dev", false, "enable developer mode (bypass the tutor subscription gate)")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, *devMode)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	if cfg.Runtime.Dev {
		logger.Warn().Msg("developer mode enabled")
	}

	metrics.MustRegister()

	// ---- Postgres ----
	pool, err := pg.NewPgxPool(ctx, cfg.Database.URL, cfg.Database.MaxConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("postgres connect failed")
	}
	defer pool.Close()
	txManager := pg.NewTxManager(pool)

	// ---- Redis ----
	redisClient, err := red.NewClient(ctx, &cfg.Redis)
	if err != nil {
		logger.Fatal().Err(err).Msg("redis connect failed")
	}
	defer redisClient.Close()
	rateLimiter := red.NewRateLimiter(redisClient)

	// ---- Repositories ----
	userRepo := pg.NewUserRepo(pool)
	paymentRepo := pg.NewPaymentRepo(pool)
	materialRepo := pg.NewMaterialRepoCacheDecorator(pg.NewMaterialRepo(pool), redisClient, cfg.Redis.TTL)
	favoriteRepo := pg.NewFavoriteRepo(pool)
	ratingRepo := pg.NewRatingRepo(pool)
	universityRepo := pg.NewUniversityRepo(pool)
	taskRepo := pg.NewTaskRepo(pool)

	// ---- AI adapter (Gemini -> OpenAI -> offline stub) ----
	var ai adapter.AIServiceAdapter
	switch {
	case cfg.AI.GeminiKey != "":
		ai, err = aiAdapters.NewGeminiAdapter(ctx, cfg.AI.GeminiKey, cfg.AI.GeminiURL, cfg.AI.DefaultModel, cfg.AI.MaxOutputTokens)
		if err != nil {
			logger.Fatal().Err(err).Msg("gemini adapter init failed")
		}
		logger.Info().Str("model", cfg.AI.DefaultModel).Msg("AI adapter: Gemini")
	case cfg.AI.OpenAIKey != "":
		ai, err = aiAdapters.NewOpenAIAdapter(cfg.AI.OpenAIKey, cfg.AI.DefaultModel, cfg.AI.MaxOutputTokens)
		if err != nil {
			logger.Fatal().Err(err).Msg("openai adapter init failed")
		}
		logger.Info().Str("model", cfg.AI.DefaultModel).Msg("AI adapter: OpenAI")
	default:
		ai = aiAdapters.NewNoopAIAdapter()
		logger.Warn().Msg("no AI provider configured; tutor runs against the offline stub")
	}
	ai = aiAdapters.NewLimitedAI(ai, cfg.AI.ConcurrentLimit)

	// ---- Use cases ----
	userUC := usecase.NewUserUseCase(userRepo, txManager, logger)
	paymentUC := usecase.NewPaymentUseCase(paymentRepo, userRepo, txManager, cfg.Payment.MinAmountCents, cfg.Payment.SubscriptionMonths, logger)
	materialUC := usecase.NewMaterialUseCase(materialRepo, logger)
	favoriteUC := usecase.NewFavoriteUseCase(favoriteRepo, materialRepo, logger)
	ratingUC := usecase.NewRatingUseCase(ratingRepo, materialRepo, logger)
	universityUC := usecase.NewUniversityUseCase(universityRepo, logger)
	taskUC := usecase.NewTaskUseCase(taskRepo, logger)
	tutorUC := usecase.NewTutorUseCase(userRepo, ai, cfg.AI.DefaultModel, cfg.Runtime.Dev, logger)
	statsUC := usecase.NewStatsUseCase(userUC, materialUC, paymentUC, logger)

	// ---- HTTP server ----
	auth, err := web.NewAuth(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		logger.Fatal().Err(err).Msg("auth init failed")
	}
	srv := web.NewServer(auth, rateLimiter, userUC, paymentUC, materialUC, favoriteUC, ratingUC, taskUC, tutorUC, universityUC, statsUC, logger)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info().Str("addr", server.Addr).Msg("http server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("http server error")
		}
	}()

	// ---- Expiry sweep ----
	worker := sched.NewExpiryWorker(cfg.Scheduler.ExpirySweepInterval, userRepo, logger)
	go func() { _ = worker.Run(ctx) }()

	// ---- Graceful shutdown ----
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	logger.Info().Msg("shutdown requested")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http shutdown error")
	}
}
