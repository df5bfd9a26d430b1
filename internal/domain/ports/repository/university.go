package repository

import (
	"context"

	"academic-hub/internal/domain/model"
)

type UniversityRepository interface {
	Save(ctx context.Context, tx Tx, u *model.University) error
	ListAll(ctx context.Context, tx Tx) ([]*model.University, error)
}
