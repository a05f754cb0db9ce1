package domain

import "time"

// Membership records that a user holds a role within a project. The
// (ProjectID, UserID) pair is unique; a user has at most one role per
// project. Memberships are created by invite redemption (or a direct
// invite path) and never mutated afterwards.
type Membership struct {
	ID        string
	ProjectID string
	UserID    string
	Role      string
	CreatedAt time.Time
}
