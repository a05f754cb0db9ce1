package sqlite

import (
	"context"

	"github.com/offmenu/offmenu/internal/api/domain"
)

type projectsRepo struct {
	db dbtx
}

func (r *projectsRepo) GetProjectByID(ctx context.Context, id string) (domain.Project, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, description, created_at, updated_at
		 FROM projects WHERE id = ?`, id)

	var p domain.Project
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Project{}, mapNotFound(err)
	}
	return p, nil
}

func (r *projectsRepo) CreateProject(ctx context.Context, p domain.Project) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (id, name, description) VALUES (?, ?, ?)`,
		p.ID, p.Name, p.Description)
	return err
}

func (r *projectsRepo) ListProjectsForUser(ctx context.Context, userID string) ([]domain.ProjectWithRole, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT p.id, p.name, p.description, p.created_at, p.updated_at, m.role
		 FROM projects p
		 JOIN project_members m ON m.project_id = p.id
		 WHERE m.user_id = ?
		 ORDER BY p.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ProjectWithRole
	for rows.Next() {
		var p domain.ProjectWithRole
		if err := rows.Scan(&p.ID, &p.Name, &p.Description,
			&p.CreatedAt, &p.UpdatedAt, &p.MemberRole); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
