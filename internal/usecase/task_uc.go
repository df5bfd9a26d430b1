package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"academic-hub/internal/domain"
	"academic-hub/internal/domain/model"
	"academic-hub/internal/domain/ports/repository"
)

// Compile-time check
var _ TaskUseCase = (*taskUC)(nil)

// TaskUseCase manages a user's personal study log.
type TaskUseCase interface {
	Add(ctx context.Context, userID string, typ model.TaskType, title, content string, date *time.Time) (*model.StudyTask, error)
	Update(ctx context.Context, userID string, task *model.StudyTask) error
	List(ctx context.Context, userID string) ([]*model.StudyTask, error)
	Delete(ctx context.Context, userID, taskID string) error
}

type taskUC struct {
	tasks repository.TaskRepository
	log   *zerolog.Logger
}

func NewTaskUseCase(tasks repository.TaskRepository, logger *zerolog.Logger) *taskUC {
	return &taskUC{tasks: tasks, log: logger}
}

func (u *taskUC) Add(ctx context.Context, userID string, typ model.TaskType, title, content string, date *time.Time) (*model.StudyTask, error) {
	t, err := model.NewStudyTask("", userID, typ, title, content, date)
	if err != nil {
		return nil, err
	}
	if err := u.tasks.Save(ctx, repository.NoTX, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Update saves changes after checking the task belongs to the caller.
func (u *taskUC) Update(ctx context.Context, userID string, task *model.StudyTask) error {
	existing, err := u.tasks.FindByID(ctx, repository.NoTX, task.ID)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return domain.ErrForbidden
	}
	task.UserID = userID
	return u.tasks.Save(ctx, repository.NoTX, task)
}

func (u *taskUC) List(ctx context.Context, userID string) ([]*model.StudyTask, error) {
	return u.tasks.ListByUser(ctx, repository.NoTX, userID)
}

func (u *taskUC) Delete(ctx context.Context, userID, taskID string) error {
	existing, err := u.tasks.FindByID(ctx, repository.NoTX, taskID)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return domain.ErrForbidden
	}
	return u.tasks.Delete(ctx, repository.NoTX, taskID)
}
