package sqlite

import (
	"context"

	"github.com/offmenu/offmenu/internal/api/domain"
	"github.com/offmenu/offmenu/internal/api/store"
)

type membershipsRepo struct {
	db dbtx
}

func (r *membershipsRepo) GetMembership(ctx context.Context, projectID, userID string) (domain.Membership, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, project_id, user_id, role, created_at
		 FROM project_members WHERE project_id = ? AND user_id = ?`,
		projectID, userID)

	var m domain.Membership
	err := row.Scan(&m.ID, &m.ProjectID, &m.UserID, &m.Role, &m.CreatedAt)
	if err != nil {
		return domain.Membership{}, mapNotFound(err)
	}
	return m, nil
}

func (r *membershipsRepo) CreateMembership(ctx context.Context, m domain.Membership) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO project_members (id, project_id, user_id, role)
		 VALUES (?, ?, ?, ?)`,
		m.ID, m.ProjectID, m.UserID, m.Role)
	if isUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	return err
}

// CreateMembershipIfAbsent is the atomic conditional insert backing
// invite redemption: ON CONFLICT DO NOTHING collapses the
// check-then-act race into a single statement, and RowsAffected tells
// the caller whether this call created the row or lost the race.
func (r *membershipsRepo) CreateMembershipIfAbsent(ctx context.Context, m domain.Membership) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO project_members (id, project_id, user_id, role)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (project_id, user_id) DO NOTHING`,
		m.ID, m.ProjectID, m.UserID, m.Role)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *membershipsRepo) ListMembershipsForUser(ctx context.Context, userID string) ([]domain.Membership, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, project_id, user_id, role, created_at
		 FROM project_members WHERE user_id = ?
		 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Membership
	for rows.Next() {
		var m domain.Membership
		if err := rows.Scan(&m.ID, &m.ProjectID, &m.UserID, &m.Role, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
