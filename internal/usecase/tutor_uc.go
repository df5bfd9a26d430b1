package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"academic-hub/internal/domain"
	"academic-hub/internal/domain/ports/adapter"
	"academic-hub/internal/domain/ports/repository"
	"academic-hub/internal/infra/logging"
	"academic-hub/internal/infra/metrics"
)

// Compile-time check
var _ TutorUseCase = (*tutorUC)(nil)

const tutorSystemPrompt = "You are a patient university study tutor. Answer with short, " +
	"exam-oriented explanations and point the student to the relevant topic when unsure."

// TutorUseCase is the subscription-gated AI tutor.
type TutorUseCase interface {
	Ask(ctx context.Context, userID, question string, history []adapter.Message) (string, error)
	ListModels(ctx context.Context) ([]string, error)
}

type tutorUC struct {
	users   repository.UserRepository
	ai      adapter.AIServiceAdapter
	model   string
	devMode bool
	log     *zerolog.Logger
}

func NewTutorUseCase(users repository.UserRepository, ai adapter.AIServiceAdapter, model string, devMode bool, logger *zerolog.Logger) *tutorUC {
	return &tutorUC{users: users, ai: ai, model: model, devMode: devMode, log: logger}
}

func (t *tutorUC) Ask(ctx context.Context, userID, question string, history []adapter.Message) (string, error) {
	defer logging.TraceDuration(t.log, "TutorUC.Ask")()

	question = strings.TrimSpace(question)
	if question == "" {
		return "", domain.ErrInvalidArgument
	}

	// Tutor access is part of the paid window. Dev mode bypasses the gate.
	if !t.devMode {
		user, err := t.users.FindByID(ctx, repository.NoTX, userID)
		if err != nil {
			return "", err
		}
		if !user.HasActiveSubscription(time.Now()) {
			return "", domain.ErrNoActiveSubscription
		}
	}

	msgs := make([]adapter.Message, 0, len(history)+2)
	msgs = append(msgs, adapter.Message{Role: "system", Content: tutorSystemPrompt})
	msgs = append(msgs, history...)
	msgs = append(msgs, adapter.Message{Role: "user", Content: question})

	start := time.Now()
	reply, usage, err := t.ai.ChatWithUsage(ctx, t.model, msgs)
	metrics.ObserveAICall(t.model, time.Since(start), err == nil)
	if err != nil {
		t.log.Error().Err(err).Str("model", t.model).Msg("tutor chat failed")
		return "", err
	}
	metrics.AddAITokens(t.model, usage.PromptTokens, usage.CompletionTokens)

	return reply, nil
}

func (t *tutorUC) ListModels(ctx context.Context) ([]string, error) {
	return t.ai.ListModels(ctx)
}
