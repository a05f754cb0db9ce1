package dashsdk

import "time"

// ErrorResponse is the API's error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MagicLinkRequest asks the API to email a sign-in link.
type MagicLinkRequest struct {
	Email    string `json:"email"`
	Redirect string `json:"redirect,omitempty"`
}

// MagicLinkResponse acknowledges a magic-link request. The message is
// the same whether or not the email maps to an account.
type MagicLinkResponse struct {
	Message string `json:"message"`
}

// VerifyRequest exchanges a magic-link token for a session.
type VerifyRequest struct {
	Token string `json:"token"`
}

// VerifyResponse carries the session token issued for a verified link.
type VerifyResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	User        User   `json:"user"`
}

// User is the caller profile returned by /v1/userinfo and /v1/auth/verify.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
}

// Membership ties a user to a project with a role.
type Membership struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// MembershipsResponse lists the caller's memberships.
type MembershipsResponse struct {
	Memberships []Membership `json:"memberships"`
}

// Project is a project summary with the caller's role in it.
type Project struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateProjectRequest names a new project. The caller becomes its
// first admin.
type CreateProjectRequest struct {
	Name string `json:"name"`
}

// ProjectsResponse lists the caller's projects.
type ProjectsResponse struct {
	Projects []Project `json:"projects"`
}

// MintInviteRequest creates an invite token for a project.
type MintInviteRequest struct {
	ProjectID string     `json:"project_id"`
	Role      string     `json:"role"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// MintInviteResponse returns the raw invite token. This is the only
// time the token is visible; the API stores a fingerprint.
type MintInviteResponse struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	ProjectID string    `json:"project_id"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RedeemInviteRequest redeems an invite token for the caller.
type RedeemInviteRequest struct {
	Token string `json:"token"`
}

// Messages the API uses on successful redemptions. The envelope is the
// same for both outcomes, so clients key off the message.
const (
	MessageJoined        = "Successfully joined project"
	MessageAlreadyMember = "Already a member of this project"
)

// RedeemInviteResponse is the success envelope for a redemption.
// Success is true for both fresh joins and already-a-member outcomes;
// the message distinguishes them.
type RedeemInviteResponse struct {
	Success     bool        `json:"success"`
	Message     string      `json:"message"`
	ProjectID   string      `json:"project_id"`
	ProjectName string      `json:"project_name,omitempty"`
	Role        string      `json:"role"`
	Membership  *Membership `json:"membership,omitempty"`
}
