package service

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/offmenu/offmenu/internal/api/domain"
	"github.com/offmenu/offmenu/internal/api/store"
	"github.com/offmenu/offmenu/pkg/cryptox"
	"github.com/offmenu/offmenu/pkg/idx"
	"github.com/offmenu/offmenu/pkg/jwtx"
	"github.com/offmenu/offmenu/pkg/slogx"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrLoginTokenInvalid covers malformed, unknown, expired, and
	// already-used magic-link tokens alike.
	ErrLoginTokenInvalid = errors.New("login token is not valid")

	ErrUserNotFound = errors.New("user not found")
)

// LoginTokenTTL is how long a magic link stays redeemable.
const LoginTokenTTL = 30 * time.Minute

// Mailer delivers a magic link to an address. The default implementation
// just logs the link; actual email delivery lives behind this interface.
type Mailer interface {
	SendMagicLink(ctx context.Context, email, link string) error
}

// LogMailer logs the sign-in link instead of sending it. Dev default.
type LogMailer struct{}

func (LogMailer) SendMagicLink(ctx context.Context, email, link string) error {
	slogx.FromContext(ctx).Info("magic link issued",
		slog.String("email", email),
		slog.String("link", link),
	)
	return nil
}

// AccessService handles magic-link sign-in and session issuance.
type AccessService struct {
	Store  store.Store
	Mailer Mailer
	Signer *jwtx.Signer

	// BaseURL is the frontend origin the magic link points at.
	BaseURL string

	// Issuer/Audience stamped into session claims.
	Issuer   string
	Audience []string

	// SessionTTL defaults to jwtx.DefaultSessionTTL when zero.
	SessionTTL time.Duration
}

// RequestMagicLink upserts the account for the address and emails it a
// single-use sign-in link. The redirect travels through the link as-is,
// so an invite token embedded there survives the round trip.
func (s *AccessService) RequestMagicLink(ctx context.Context, email, redirect string) error {
	log := slogx.FromContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}

	// 1. Upsert the user. First sign-in creates the account.
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		user = domain.User{
			ID:    idx.New().String(),
			Email: email,
		}
		if err := s.Store.Users().CreateUser(ctx, user); err != nil {
			log.Error("failed to create user", slog.Any("error", err))
			return err
		}
		log.Info("user created", slog.String("user_id", user.ID))
	} else if err != nil {
		log.Error("failed to fetch user", slog.Any("error", err))
		return err
	}

	// 2. Mint the token as "id.secret". The id gives us a direct row
	// lookup; only the argon2id hash of the secret is stored.
	secret, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate login secret", slog.Any("error", err))
		return err
	}
	secretHash, err := cryptox.HashSecret(secret)
	if err != nil {
		log.Error("failed to hash login secret", slog.Any("error", err))
		return err
	}

	token := domain.LoginToken{
		ID:        idx.New().String(),
		TokenHash: secretHash,
		UserID:    user.ID,
		Redirect:  redirect,
		ExpiresAt: time.Now().UTC().Add(LoginTokenTTL),
	}
	if err := s.Store.LoginTokens().CreateLoginToken(ctx, token); err != nil {
		log.Error("failed to store login token", slog.Any("error", err))
		return err
	}

	// 3. Hand the link to the mailer. The redirect is escaped so an
	// invite token riding in it survives the query string intact.
	link := s.BaseURL + "/auth/verify?token=" + token.ID + "." + secret
	if redirect != "" {
		link += "&redirect=" + url.QueryEscape(redirect)
	}
	if err := s.Mailer.SendMagicLink(ctx, email, link); err != nil {
		log.Error("failed to send magic link", slog.Any("error", err))
		return err
	}

	log.Debug("magic link requested",
		slog.String("user_id", user.ID),
		slog.String("login_token_id", token.ID),
	)
	return nil
}

// RedeemMagicLink consumes a magic-link token and issues a session JWT.
// The consume is a conditional update, so a link clicked twice signs in
// exactly once.
func (s *AccessService) RedeemMagicLink(ctx context.Context, rawToken string) (string, domain.User, error) {
	log := slogx.FromContext(ctx)

	id, secret, ok := strings.Cut(rawToken, ".")
	if !ok || id == "" || secret == "" {
		return "", domain.User{}, ErrLoginTokenInvalid
	}

	// 1. Look up the token. Expired and used rows don't come back.
	token, err := s.Store.LoginTokens().GetLoginTokenByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("magic link redemption with unknown or spent token")
			return "", domain.User{}, ErrLoginTokenInvalid
		}
		log.Error("failed to fetch login token", slog.Any("error", err))
		return "", domain.User{}, err
	}

	// 2. Verify the secret against its stored hash.
	if err := cryptox.VerifySecret(secret, token.TokenHash); err != nil {
		log.Warn("magic link redemption with wrong secret",
			slog.String("login_token_id", token.ID),
		)
		return "", domain.User{}, ErrLoginTokenInvalid
	}

	// 3. Consume it. Losing this race to another request means the
	// link was already spent.
	if err := s.Store.LoginTokens().ConsumeLoginToken(ctx, token.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("magic link already consumed",
				slog.String("login_token_id", token.ID),
			)
			return "", domain.User{}, ErrLoginTokenInvalid
		}
		log.Error("failed to consume login token", slog.Any("error", err))
		return "", domain.User{}, err
	}

	user, err := s.Store.Users().GetUserByID(ctx, token.UserID)
	if err != nil {
		log.Error("failed to fetch user for session", slog.Any("error", err))
		return "", domain.User{}, err
	}

	// 4. Issue the session token.
	ttl := s.SessionTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}
	claims := jwtx.NewSessionClaims(
		user.ID, user.Email, user.FullName,
		ttl, s.Issuer, s.Audience, time.Now().UTC(),
	)
	session, err := s.Signer.Sign(claims)
	if err != nil {
		log.Error("failed to sign session token", slog.Any("error", err))
		return "", domain.User{}, err
	}

	log.Info("magic link redeemed",
		slog.String("user_id", user.ID),
		slog.String("login_token_id", token.ID),
	)
	return session, user, nil
}

// GetUser returns the profile for a user id.
func (s *AccessService) GetUser(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

// SessionTTLSeconds reports the session lifetime for token responses.
func (s *AccessService) SessionTTLSeconds() int {
	ttl := s.SessionTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}
	return int(ttl / time.Second)
}
