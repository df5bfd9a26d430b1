package repository

import (
	"context"

	"academic-hub/internal/domain/model"
)

type TaskRepository interface {
	Save(ctx context.Context, tx Tx, t *model.StudyTask) error
	FindByID(ctx context.Context, tx Tx, id string) (*model.StudyTask, error)
	ListByUser(ctx context.Context, tx Tx, userID string) ([]*model.StudyTask, error)
	Delete(ctx context.Context, tx Tx, id string) error
}
