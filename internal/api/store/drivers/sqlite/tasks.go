package sqlite

import (
	"context"
	"database/sql"

	"github.com/offmenu/offmenu/internal/api/domain"
)

type tasksRepo struct {
	db dbtx
}

const taskColumns = `id, project_id, title, description, status,
	assignee_id, position, created_at, updated_at`

func (r *tasksRepo) GetTaskByID(ctx context.Context, id string) (domain.Task, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	return scanTask(row)
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (id, project_id, title, description, status, assignee_id, position)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.ProjectID, t.Title, t.Description, t.Status,
		mapStringNull(t.AssigneeID), t.Position)
	return err
}

func (r *tasksRepo) ListTasksForProject(ctx context.Context, projectID string) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks
		 WHERE project_id = ?
		 ORDER BY status, position`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

func (r *tasksRepo) ListTasksByStatus(ctx context.Context, projectID, status string) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks
		 WHERE project_id = ? AND status = ?
		 ORDER BY position`, projectID, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

func (r *tasksRepo) UpdateTaskPlacement(ctx context.Context, taskID, status string, position int) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET status = ?, position = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`, status, position, taskID)
	return err
}

func (r *tasksRepo) SetTaskStatus(ctx context.Context, taskID, status string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET status = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`, status, taskID)
	return err
}

func (r *tasksRepo) DeleteTask(ctx context.Context, taskID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, taskID)
	return err
}

func scanTask(row rowScanner) (domain.Task, error) {
	var t domain.Task
	var assignee sql.NullString
	err := row.Scan(&t.ID, &t.ProjectID, &t.Title, &t.Description,
		&t.Status, &assignee, &t.Position, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	t.AssigneeID = mapNullString(assignee)
	return t, nil
}

func collectTasks(rows *sql.Rows) ([]domain.Task, error) {
	var out []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
