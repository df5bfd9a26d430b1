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

var _ repository.TaskRepository = (*taskRepo)(nil)

type taskRepo struct{ pool *pgxpool.Pool }

func NewTaskRepo(pool *pgxpool.Pool) *taskRepo {
	return &taskRepo{pool: pool}
}

func (r *taskRepo) Save(ctx context.Context, tx repository.Tx, t *model.StudyTask) error {
	const q = `
INSERT INTO tasks (id, user_id, type, title, content, date) VALUES ($1,$2,$3,$4,$5,$6)
ON CONFLICT (id) DO UPDATE SET type=$3, title=$4, content=$5, date=$6;`

	_, err := execSQL(ctx, r.pool, tx, q, t.ID, t.UserID, t.Type, t.Title, t.Content, t.Date)
	if err != nil {
		if err == domain.ErrInvalidArgument || err == domain.ErrInvalidExecContext {
			return err
		}
		return domain.ErrOperationFailed
	}
	return nil
}

func (r *taskRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.StudyTask, error) {
	row, err := pickRow(ctx, r.pool, tx, `SELECT id, user_id, type, title, content, date FROM tasks WHERE id=$1;`, id)
	if err != nil {
		return nil, err
	}

	t := &model.StudyTask{}
	if err := row.Scan(&t.ID, &t.UserID, &t.Type, &t.Title, &t.Content, &t.Date); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrReadDatabaseRow
	}
	return t, nil
}

func (r *taskRepo) ListByUser(ctx context.Context, tx repository.Tx, userID string) ([]*model.StudyTask, error) {
	rows, err := queryRows(ctx, r.pool, tx, `SELECT id, user_id, type, title, content, date FROM tasks WHERE user_id=$1 ORDER BY date NULLS LAST, title;`, userID)
	if err != nil {
		switch err {
		case domain.ErrInvalidArgument, domain.ErrInvalidExecContext:
			return nil, err
		default:
			return nil, domain.ErrOperationFailed
		}
	}
	defer rows.Close()

	var out []*model.StudyTask
	for rows.Next() {
		t := new(model.StudyTask)
		if err := rows.Scan(&t.ID, &t.UserID, &t.Type, &t.Title, &t.Content, &t.Date); err != nil {
			return nil, domain.ErrReadDatabaseRow
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *taskRepo) Delete(ctx context.Context, tx repository.Tx, id string) error {
	cmd, err := execSQL(ctx, r.pool, tx, `DELETE FROM tasks WHERE id=$1;`, id)
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
