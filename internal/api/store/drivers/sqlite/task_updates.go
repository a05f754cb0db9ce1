package sqlite

import (
	"context"

	"github.com/offmenu/offmenu/internal/api/domain"
	"github.com/offmenu/offmenu/internal/api/store"
)

type taskUpdatesRepo struct {
	db dbtx
}

func (r *taskUpdatesRepo) CreateTaskUpdate(ctx context.Context, u domain.TaskUpdate) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO task_updates (id, task_id, user_id, content, status)
		 VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.TaskID, u.UserID, u.Content, u.Status)
	return err
}

func (r *taskUpdatesRepo) GetTaskUpdateByID(ctx context.Context, id string) (domain.TaskUpdate, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, task_id, user_id, content, status, created_at, updated_at
		 FROM task_updates WHERE id = ?`, id)

	var u domain.TaskUpdate
	err := row.Scan(&u.ID, &u.TaskID, &u.UserID, &u.Content, &u.Status,
		&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.TaskUpdate{}, mapNotFound(err)
	}
	return u, nil
}

func (r *taskUpdatesRepo) HasPendingUpdate(ctx context.Context, taskID string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM task_updates WHERE task_id = ? AND status = ?`,
		taskID, domain.UpdateWaiting).Scan(&n)
	return n > 0, err
}

func (r *taskUpdatesRepo) ResolveTaskUpdate(ctx context.Context, updateID, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE task_updates SET status = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND status = ?`,
		status, updateID, domain.UpdateWaiting)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}
