package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"academic-hub/internal/domain"
	"academic-hub/internal/domain/model"
	"academic-hub/internal/domain/ports/repository"
)

var _ repository.MaterialRepository = (*materialRepo)(nil)

type materialRepo struct{ pool *pgxpool.Pool }

func NewMaterialRepo(pool *pgxpool.Pool) *materialRepo {
	return &materialRepo{pool: pool}
}

const materialColumns = `id, title, type, file_url, school, year, description, uploaded_by, created_at`

func (r *materialRepo) Save(ctx context.Context, tx repository.Tx, m *model.StudyMaterial) error {
	const q = `
INSERT INTO materials (
  id, title, type, file_url, school, year, description, uploaded_by, created_at
) VALUES (
  $1,$2,$3,$4,$5,$6,$7,$8,$9
) ON CONFLICT (id) DO UPDATE SET
  title=$2, type=$3, file_url=$4, school=$5, year=$6, description=$7;`

	_, err := execSQL(ctx, r.pool, tx, q, m.ID, m.Title, m.Type, m.FileURL, m.School, m.Year, m.Description, m.UploadedBy, m.CreatedAt)
	if err != nil {
		if err == domain.ErrInvalidArgument || err == domain.ErrInvalidExecContext {
			return err
		}
		return domain.ErrOperationFailed
	}
	return nil
}

func (r *materialRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.StudyMaterial, error) {
	row, err := pickRow(ctx, r.pool, tx, `SELECT `+materialColumns+` FROM materials WHERE id=$1;`, id)
	if err != nil {
		return nil, err
	}

	m := &model.StudyMaterial{}
	if err := row.Scan(&m.ID, &m.Title, &m.Type, &m.FileURL, &m.School, &m.Year, &m.Description, &m.UploadedBy, &m.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrReadDatabaseRow
	}
	return m, nil
}

func (r *materialRepo) ListAll(ctx context.Context, tx repository.Tx) ([]*model.StudyMaterial, error) {
	const q = `SELECT ` + materialColumns + ` FROM materials ORDER BY created_at DESC;`
	return r.scanList(ctx, tx, q)
}

func (r *materialRepo) Search(ctx context.Context, tx repository.Tx, query string) ([]*model.StudyMaterial, error) {
	const q = `SELECT ` + materialColumns + ` FROM materials
WHERE title ILIKE '%' || $1 || '%' OR school ILIKE '%' || $1 || '%'
ORDER BY created_at DESC;`
	return r.scanList(ctx, tx, q, query)
}

func (r *materialRepo) scanList(ctx context.Context, tx repository.Tx, q string, args ...interface{}) ([]*model.StudyMaterial, error) {
	rows, err := queryRows(ctx, r.pool, tx, q, args...)
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

func (r *materialRepo) Delete(ctx context.Context, tx repository.Tx, id string) error {
	cmd, err := execSQL(ctx, r.pool, tx, `DELETE FROM materials WHERE id=$1;`, id)
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

func (r *materialRepo) CountMaterials(ctx context.Context, tx repository.Tx) (int, error) {
	row, err := pickRow(ctx, r.pool, tx, `SELECT COUNT(*) FROM materials;`)
	if err != nil {
		return 0, err
	}
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, domain.ErrReadDatabaseRow
	}
	return n, nil
}
