package store

import (
	"context"
	"errors"

	"github.com/offmenu/offmenu/internal/api/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for
// now) implement this. It exposes sub-repositories to keep concerns
// tidy and testable.
type Store interface {
	Users() Users
	LoginTokens() LoginTokens
	Projects() Projects
	Memberships() Memberships
	InviteTokens() InviteTokens
	Tasks() Tasks
	TaskComments() TaskComments
	TaskUpdates() TaskUpdates

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error
	// the transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during magic-link sign-in.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	CreateUser(ctx context.Context, u domain.User) error
}

type LoginTokens interface {
	// CreateLoginToken stores a new magic-link token record
	// (token_hash is the argon2id hash of the link's secret half).
	CreateLoginToken(ctx context.Context, t domain.LoginToken) error

	// GetLoginTokenByID fetches an unexpired, unused token by id.
	GetLoginTokenByID(ctx context.Context, id string) (domain.LoginToken, error)

	// ConsumeLoginToken atomically marks an unused, unexpired token as
	// used. Returns ErrNotFound if no such token exists, it has
	// expired, or it was already consumed.
	ConsumeLoginToken(ctx context.Context, id string) error

	// DeleteExpiredLoginTokens is housekeeping.
	DeleteExpiredLoginTokens(ctx context.Context) error
}

type Projects interface {
	// GetProjectByID fetches a project by id.
	GetProjectByID(ctx context.Context, id string) (domain.Project, error)

	// CreateProject inserts a new project.
	CreateProject(ctx context.Context, p domain.Project) error

	// ListProjectsForUser returns every project the user is a member
	// of, paired with their role, newest first.
	ListProjectsForUser(ctx context.Context, userID string) ([]domain.ProjectWithRole, error)
}

type Memberships interface {
	// GetMembership fetches the membership for a (project, user) pair.
	GetMembership(ctx context.Context, projectID, userID string) (domain.Membership, error)

	// CreateMembership inserts a membership unconditionally and fails
	// with ErrAlreadyExists on a (project_id, user_id) conflict.
	CreateMembership(ctx context.Context, m domain.Membership) error

	// CreateMembershipIfAbsent inserts a membership unless one already
	// exists for the (project_id, user_id) pair. Returns true when a
	// row was inserted and false when the pair already had one.
	CreateMembershipIfAbsent(ctx context.Context, m domain.Membership) (bool, error)

	// ListMembershipsForUser returns the user's memberships.
	ListMembershipsForUser(ctx context.Context, userID string) ([]domain.Membership, error)
}

type InviteTokens interface {
	// CreateInviteToken writes a new invite (token_hash is the sha256
	// fingerprint of the opaque invite token).
	CreateInviteToken(ctx context.Context, inv domain.InviteToken) error

	// GetInviteTokenByID fetches an invite regardless of state.
	GetInviteTokenByID(ctx context.Context, id string) (domain.InviteToken, error)

	// GetRedeemableInviteByTokenHash returns an invite by hash only if
	// it is unused, unvoided, and unexpired. Absent, expired, used, and
	// voided all collapse into ErrNotFound so callers cannot tell them
	// apart.
	GetRedeemableInviteByTokenHash(ctx context.Context, hash string) (domain.InviteToken, error)

	// MarkInviteUsed sets used_at/used_by on an unused invite.
	MarkInviteUsed(ctx context.Context, inviteID, usedByUserID string) error

	// VoidInvite sets voided_at on an unused, unvoided invite. Returns
	// ErrNotFound when the invite is missing or no longer voidable.
	VoidInvite(ctx context.Context, inviteID string) error

	// DeleteExpiredInviteTokens removes expired unused invites
	// (housekeeping).
	DeleteExpiredInviteTokens(ctx context.Context) error
}

type Tasks interface {
	GetTaskByID(ctx context.Context, id string) (domain.Task, error)

	// CreateTask inserts a task at the given position.
	CreateTask(ctx context.Context, t domain.Task) error

	// ListTasksForProject returns all tasks ordered by status then
	// position.
	ListTasksForProject(ctx context.Context, projectID string) ([]domain.Task, error)

	// ListTasksByStatus returns one column ordered by position.
	ListTasksByStatus(ctx context.Context, projectID, status string) ([]domain.Task, error)

	// UpdateTaskPlacement moves a task to a status and position and
	// bumps updated_at.
	UpdateTaskPlacement(ctx context.Context, taskID, status string, position int) error

	// SetTaskStatus changes only the status (used by update approval).
	SetTaskStatus(ctx context.Context, taskID, status string) error

	// DeleteTask removes a task; comments and updates cascade.
	DeleteTask(ctx context.Context, taskID string) error
}

type TaskComments interface {
	CreateTaskComment(ctx context.Context, c domain.TaskComment) error
	ListTaskComments(ctx context.Context, taskID string) ([]domain.TaskComment, error)
	CountTaskComments(ctx context.Context, taskID string) (int, error)
}

type TaskUpdates interface {
	CreateTaskUpdate(ctx context.Context, u domain.TaskUpdate) error
	GetTaskUpdateByID(ctx context.Context, id string) (domain.TaskUpdate, error)

	// HasPendingUpdate reports whether the task has an update still
	// waiting for review.
	HasPendingUpdate(ctx context.Context, taskID string) (bool, error)

	// ResolveTaskUpdate moves a waiting update to approved/declined.
	// Returns ErrNotFound when the update is missing or already
	// resolved.
	ResolveTaskUpdate(ctx context.Context, updateID, status string) error
}
