package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/offmenu/offmenu/internal/api/domain"
	"github.com/offmenu/offmenu/internal/api/store"
)

type inviteTokensRepo struct {
	db dbtx
}

const inviteColumns = `id, token_hash, project_id, role, created_by,
	expires_at, used_at, used_by, voided_at, created_at, updated_at`

func (r *inviteTokensRepo) CreateInviteToken(ctx context.Context, inv domain.InviteToken) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO invite_tokens (id, token_hash, project_id, role, created_by, expires_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.TokenHash, inv.ProjectID, inv.Role, inv.CreatedBy, inv.ExpiresAt.UTC())
	if isUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *inviteTokensRepo) GetInviteTokenByID(ctx context.Context, id string) (domain.InviteToken, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+inviteColumns+` FROM invite_tokens WHERE id = ?`, id)
	return scanInvite(row)
}

// GetRedeemableInviteByTokenHash is the single filtered read the
// redemption protocol leans on: absent, expired, used, and voided rows
// all fall outside the filter, so every miss is one indistinguishable
// ErrNotFound.
func (r *inviteTokensRepo) GetRedeemableInviteByTokenHash(ctx context.Context, hash string) (domain.InviteToken, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+inviteColumns+` FROM invite_tokens
		 WHERE token_hash = ?
		   AND used_at IS NULL
		   AND voided_at IS NULL
		   AND expires_at > ?`,
		hash, time.Now().UTC())
	return scanInvite(row)
}

func (r *inviteTokensRepo) MarkInviteUsed(ctx context.Context, inviteID, usedByUserID string) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`UPDATE invite_tokens
		 SET used_at = ?, used_by = ?, updated_at = ?
		 WHERE id = ? AND used_at IS NULL`,
		now, usedByUserID, now, inviteID)
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

func (r *inviteTokensRepo) VoidInvite(ctx context.Context, inviteID string) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`UPDATE invite_tokens
		 SET voided_at = ?, updated_at = ?
		 WHERE id = ? AND used_at IS NULL AND voided_at IS NULL`,
		now, now, inviteID)
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

func (r *inviteTokensRepo) DeleteExpiredInviteTokens(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM invite_tokens
		 WHERE expires_at <= ? AND used_at IS NULL`,
		time.Now().UTC())
	return err
}

func scanInvite(row rowScanner) (domain.InviteToken, error) {
	var inv domain.InviteToken
	var usedAt, voidedAt sql.NullTime
	var usedBy sql.NullString

	err := row.Scan(&inv.ID, &inv.TokenHash, &inv.ProjectID, &inv.Role,
		&inv.CreatedBy, &inv.ExpiresAt, &usedAt, &usedBy, &voidedAt,
		&inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return domain.InviteToken{}, mapNotFound(err)
	}

	inv.UsedAt = mapNullTimePtr(usedAt)
	inv.UsedBy = mapNullString(usedBy)
	inv.VoidedAt = mapNullTimePtr(voidedAt)
	return inv, nil
}
