package postgres

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"

	"academic-hub/internal/domain"
	"academic-hub/internal/domain/model"
	"academic-hub/internal/domain/ports/repository"
)

var _ repository.RatingRepository = (*ratingRepo)(nil)

type ratingRepo struct{ pool *pgxpool.Pool }

func NewRatingRepo(pool *pgxpool.Pool) *ratingRepo {
	return &ratingRepo{pool: pool}
}

func (r *ratingRepo) Save(ctx context.Context, tx repository.Tx, rating *model.Rating) error {
	const q = `
INSERT INTO ratings (user_id, material_id, stars, created_at) VALUES ($1,$2,$3,$4)
ON CONFLICT (user_id, material_id) DO UPDATE SET stars=$3, created_at=$4;`

	_, err := execSQL(ctx, r.pool, tx, q, rating.UserID, rating.MaterialID, rating.Stars, rating.CreatedAt)
	if err != nil {
		if err == domain.ErrInvalidArgument || err == domain.ErrInvalidExecContext {
			return err
		}
		return domain.ErrOperationFailed
	}
	return nil
}

func (r *ratingRepo) Average(ctx context.Context, tx repository.Tx, materialID string) (float64, int, error) {
	const q = `SELECT COALESCE(AVG(stars),0), COUNT(*) FROM ratings WHERE material_id=$1;`
	row, err := pickRow(ctx, r.pool, tx, q, materialID)
	if err != nil {
		return 0, 0, err
	}
	var avg float64
	var count int
	if err := row.Scan(&avg, &count); err != nil {
		return 0, 0, domain.ErrReadDatabaseRow
	}
	return avg, count, nil
}
