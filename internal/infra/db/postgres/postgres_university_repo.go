package postgres

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"

	"academic-hub/internal/domain"
	"academic-hub/internal/domain/model"
	"academic-hub/internal/domain/ports/repository"
)

var _ repository.UniversityRepository = (*universityRepo)(nil)

type universityRepo struct{ pool *pgxpool.Pool }

func NewUniversityRepo(pool *pgxpool.Pool) *universityRepo {
	return &universityRepo{pool: pool}
}

func (r *universityRepo) Save(ctx context.Context, tx repository.Tx, u *model.University) error {
	const q = `
INSERT INTO universities (id, name, location) VALUES ($1,$2,$3)
ON CONFLICT (id) DO UPDATE SET name=$2, location=$3;`

	_, err := execSQL(ctx, r.pool, tx, q, u.ID, u.Name, u.Location)
	if err != nil {
		if err == domain.ErrInvalidArgument || err == domain.ErrInvalidExecContext {
			return err
		}
		return domain.ErrOperationFailed
	}
	return nil
}

func (r *universityRepo) ListAll(ctx context.Context, tx repository.Tx) ([]*model.University, error) {
	rows, err := queryRows(ctx, r.pool, tx, `SELECT id, name, location FROM universities ORDER BY name;`)
	if err != nil {
		switch err {
		case domain.ErrInvalidArgument, domain.ErrInvalidExecContext:
			return nil, err
		default:
			return nil, domain.ErrOperationFailed
		}
	}
	defer rows.Close()

	var out []*model.University
	for rows.Next() {
		u := new(model.University)
		if err := rows.Scan(&u.ID, &u.Name, &u.Location); err != nil {
			return nil, domain.ErrReadDatabaseRow
		}
		out = append(out, u)
	}
	return out, nil
}
