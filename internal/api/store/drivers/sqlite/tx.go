package sqlite

import (
	"context"
	"database/sql"

	"github.com/offmenu/offmenu/internal/api/store"
)

type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{tx: tx}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // outer DB stays open; caller commits/rolls back

// Ping is a no-op for transactions; the connection already exists.
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) ApplyMigrations() error { return nil } // migrations run before any tx starts

func (t *txStore) Users() store.Users               { return &usersRepo{db: t.tx} }
func (t *txStore) LoginTokens() store.LoginTokens   { return &loginTokensRepo{db: t.tx} }
func (t *txStore) Projects() store.Projects         { return &projectsRepo{db: t.tx} }
func (t *txStore) Memberships() store.Memberships   { return &membershipsRepo{db: t.tx} }
func (t *txStore) InviteTokens() store.InviteTokens { return &inviteTokensRepo{db: t.tx} }
func (t *txStore) Tasks() store.Tasks               { return &tasksRepo{db: t.tx} }
func (t *txStore) TaskComments() store.TaskComments { return &taskCommentsRepo{db: t.tx} }
func (t *txStore) TaskUpdates() store.TaskUpdates   { return &taskUpdatesRepo{db: t.tx} }
