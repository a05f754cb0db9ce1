package domain

import "time"

// User is an account identified by email. There are no passwords;
// sign-in happens through single-use magic-link tokens.
type User struct {
	ID        string
	Email     string
	FullName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LoginToken is a single-use magic-link credential. Like invite tokens,
// only the fingerprint of the raw token is stored.
type LoginToken struct {
	ID        string
	TokenHash string
	UserID    string
	Redirect  string // post-login destination carried through the email link
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}
