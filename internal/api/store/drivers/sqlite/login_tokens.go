package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/offmenu/offmenu/internal/api/domain"
	"github.com/offmenu/offmenu/internal/api/store"
)

type loginTokensRepo struct {
	db dbtx
}

func (r *loginTokensRepo) CreateLoginToken(ctx context.Context, t domain.LoginToken) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO login_tokens (id, token_hash, user_id, redirect, expires_at)
		 VALUES (?, ?, ?, ?, ?)`,
		t.ID, t.TokenHash, t.UserID, t.Redirect, t.ExpiresAt.UTC())
	return err
}

func (r *loginTokensRepo) GetLoginTokenByID(ctx context.Context, id string) (domain.LoginToken, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, token_hash, user_id, redirect, expires_at, used_at, created_at
		 FROM login_tokens
		 WHERE id = ? AND used_at IS NULL AND expires_at > ?`,
		id, time.Now().UTC())

	var t domain.LoginToken
	var usedAt sql.NullTime
	if err := row.Scan(&t.ID, &t.TokenHash, &t.UserID, &t.Redirect,
		&t.ExpiresAt, &usedAt, &t.CreatedAt); err != nil {
		return domain.LoginToken{}, mapNotFound(err)
	}
	t.UsedAt = mapNullTimePtr(usedAt)
	return t, nil
}

// ConsumeLoginToken is the consume-once gate for magic links: the
// conditional UPDATE only matches an unused, unexpired row, so a
// concurrent second redemption sees zero rows affected.
func (r *loginTokensRepo) ConsumeLoginToken(ctx context.Context, id string) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`UPDATE login_tokens SET used_at = ?
		 WHERE id = ? AND used_at IS NULL AND expires_at > ?`,
		now, id, now)
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

func (r *loginTokensRepo) DeleteExpiredLoginTokens(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM login_tokens WHERE expires_at <= ?`,
		time.Now().UTC())
	return err
}
