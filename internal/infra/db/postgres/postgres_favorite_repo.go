package postgres

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"

	"academic-hub/internal/domain"
	"academic-hub/internal/domain/model"
	"academic-hub/internal/domain/ports/repository"
)

var _ repository.FavoriteRepository = (*favoriteRepo)(nil)

type favoriteRepo struct{ pool *pgxpool.Pool }

func NewFavoriteRepo(pool *pgxpool.Pool) *favoriteRepo {
	return &favoriteRepo{pool: pool}
}

func (r *favoriteRepo) Add(ctx context.Context, tx repository.Tx, userID, materialID string) error {
	const q = `INSERT INTO favorites (user_id, material_id) VALUES ($1,$2) ON CONFLICT DO NOTHING;`
	_, err := execSQL(ctx, r.pool, tx, q, userID, materialID)
	if err != nil {
		if err == domain.ErrInvalidArgument || err == domain.ErrInvalidExecContext {
			return err
		}
		return domain.ErrOperationFailed
	}
	return nil
}

func (r *favoriteRepo) Remove(ctx context.Context, tx repository.Tx, userID, materialID string) error {
	cmd, err := execSQL(ctx, r.pool, tx, `DELETE FROM favorites WHERE user_id=$1 AND material_id=$2;`, userID, materialID)
	if err != nil {
		if err == domain.ErrInvalidArgument || err == domain.ErrInvalidExecContext {
			return err
		}
		return domain.ErrOperationFailed
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *favoriteRepo) ListByUser(ctx context.Context, tx repository.Tx, userID string) ([]*model.StudyMaterial, error) {
	const q = `
SELECT m.id, m.title, m.type, m.file_url, m.school, m.year, m.description, m.uploaded_by, m.created_at
FROM favorites f JOIN materials m ON m.id = f.material_id
WHERE f.user_id=$1
ORDER BY m.created_at DESC;`
	rows, err := queryRows(ctx, r.pool, tx, q, userID)
	if err != nil {
		switch err {
		case domain.ErrInvalidArgument, domain.ErrInvalidExecContext:
			return nil, err
		default:
			return nil, domain.ErrOperationFailed
		}
	}
	defer rows.Close()

	var out []*model.StudyMaterial
	for rows.Next() {
		m := new(model.StudyMaterial)
		if err := rows.Scan(&m.ID, &m.Title, &m.Type, &m.FileURL, &m.School, &m.Year, &m.Description, &m.UploadedBy, &m.CreatedAt); err != nil {
			return nil, domain.ErrReadDatabaseRow
		}
		out = append(out, m)
	}
	return out, nil
}
