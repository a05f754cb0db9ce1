package sqlite

import (
	"context"

	"github.com/offmenu/offmenu/internal/api/domain"
)

type taskCommentsRepo struct {
	db dbtx
}

func (r *taskCommentsRepo) CreateTaskComment(ctx context.Context, c domain.TaskComment) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO task_comments (id, task_id, user_id, content)
		 VALUES (?, ?, ?, ?)`,
		c.ID, c.TaskID, c.UserID, c.Content)
	return err
}

func (r *taskCommentsRepo) ListTaskComments(ctx context.Context, taskID string) ([]domain.TaskComment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, task_id, user_id, content, created_at
		 FROM task_comments WHERE task_id = ?
		 ORDER BY created_at`, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.TaskComment
	for rows.Next() {
		var c domain.TaskComment
		if err := rows.Scan(&c.ID, &c.TaskID, &c.UserID, &c.Content, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *taskCommentsRepo) CountTaskComments(ctx context.Context, taskID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM task_comments WHERE task_id = ?`, taskID).Scan(&n)
	return n, err
}
