package domain

import "time"

// Role names a member can hold within a project.
const (
	RoleAdmin    = "admin"
	RoleDesigner = "designer"
)

// ValidRole reports whether role is one of the grantable project roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleDesigner
}

// InviteToken is a single-use credential granting a role in a project.
// A token is redeemable iff UsedAt and VoidedAt are nil and ExpiresAt is
// in the future. Redeemability only ever moves one way: once a token
// stops being redeemable it never becomes redeemable again.
type InviteToken struct {
	ID        string
	TokenHash string
	ProjectID string
	Role      string // role granted on redemption
	CreatedBy string
	ExpiresAt time.Time
	UsedAt    *time.Time // set exactly once, on first successful consumption
	UsedBy    string     // empty until consumed
	VoidedAt  *time.Time // set by revocation; permanent
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RedemptionOutcome tags the result of a successful invite redemption.
type RedemptionOutcome string

const (
	OutcomeJoined        RedemptionOutcome = "joined"
	OutcomeAlreadyMember RedemptionOutcome = "already_member"
)

// RedemptionResult is the transient result handed back to the caller of
// InviteService.Redeem. It is never persisted.
type RedemptionResult struct {
	Outcome     RedemptionOutcome
	ProjectID   string
	ProjectName string // best-effort, may be empty
	Role        string
	Membership  *Membership // set on Joined
}
