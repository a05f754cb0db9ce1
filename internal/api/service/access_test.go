package service

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/offmenu/offmenu/internal/api/store"
	"github.com/offmenu/offmenu/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

// captureMailer records the last link instead of delivering it.
type captureMailer struct {
	email string
	link  string
	sent  int
}

func (m *captureMailer) SendMagicLink(_ context.Context, email, link string) error {
	m.email = email
	m.link = link
	m.sent++
	return nil
}

func newAccessService(t *testing.T, st store.Store) (*AccessService, *captureMailer, *jwtx.Verifier) {
	t.Helper()

	signer, err := jwtx.GenerateSigner("test-key")
	require.NoError(t, err)

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(signer))

	svc := &AccessService{
		Store:    st,
		Mailer:   &captureMailer{},
		Signer:   signer,
		BaseURL:  "http://localhost:3000",
		Issuer:   "offmenu-api",
		Audience: []string{"offmenu"},
	}
	mailer := svc.Mailer.(*captureMailer)
	return svc, mailer, jwtx.NewVerifier(keys, "offmenu-api", []string{"offmenu"})
}

// linkToken pulls the raw "id.secret" token out of a captured link.
func linkToken(t *testing.T, link string) string {
	t.Helper()

	u, err := url.Parse(link)
	require.NoError(t, err)
	token := u.Query().Get("token")
	require.NotEmpty(t, token)
	return token
}

func TestRequestMagicLink(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()
	svc, mailer, _ := newAccessService(t, st)

	t.Run("first sign-in creates the account", func(t *testing.T) {
		require.NoError(t, svc.RequestMagicLink(ctx, "  New@Example.COM ", ""))

		user, err := st.Users().GetUserByEmail(ctx, "new@example.com")
		require.NoError(t, err)
		require.Equal(t, "new@example.com", user.Email)
		require.Equal(t, "new@example.com", mailer.email)
		require.Contains(t, mailer.link, "http://localhost:3000/auth/verify?token=")
	})

	t.Run("second request reuses the account", func(t *testing.T) {
		require.NoError(t, svc.RequestMagicLink(ctx, "new@example.com", ""))
		require.NoError(t, svc.RequestMagicLink(ctx, "new@example.com", ""))

		// The argon2id hash, not the secret, is what lands in the row.
		token := linkToken(t, mailer.link)
		id, secret, _ := strings.Cut(token, ".")
		stored, err := st.LoginTokens().GetLoginTokenByID(ctx, id)
		require.NoError(t, err)
		require.NotContains(t, stored.TokenHash, secret)
		require.True(t, strings.HasPrefix(stored.TokenHash, "$argon2id$"))
	})

	t.Run("redirect survives the link", func(t *testing.T) {
		// Query metacharacters in the redirect must not clip the
		// invite token it carries.
		redirect := "/join?invite_token=abc123&source=email#top"
		require.NoError(t, svc.RequestMagicLink(ctx, "new@example.com", redirect))

		u, err := url.Parse(mailer.link)
		require.NoError(t, err)
		require.Equal(t, redirect, u.Query().Get("redirect"))
		require.NotEmpty(t, u.Query().Get("token"))

		id, _, _ := strings.Cut(linkToken(t, mailer.link), ".")
		stored, err := st.LoginTokens().GetLoginTokenByID(ctx, id)
		require.NoError(t, err)
		require.Equal(t, redirect, stored.Redirect)
	})

	t.Run("bad addresses rejected", func(t *testing.T) {
		require.ErrorIs(t, svc.RequestMagicLink(ctx, "", ""), ErrInvalidEmail)
		require.ErrorIs(t, svc.RequestMagicLink(ctx, "not-an-address", ""), ErrInvalidEmail)
	})
}

func TestRedeemMagicLink(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	issueLink := func(t *testing.T) (*AccessService, *jwtx.Verifier, string) {
		st := newTestStore(t)
		svc, mailer, verifier := newAccessService(t, st)
		require.NoError(t, svc.RequestMagicLink(ctx, "signin@example.com", ""))
		return svc, verifier, linkToken(t, mailer.link)
	}

	t.Run("issues a verifiable session", func(t *testing.T) {
		svc, verifier, token := issueLink(t)

		session, user, err := svc.RedeemMagicLink(ctx, token)
		require.NoError(t, err)
		require.Equal(t, "signin@example.com", user.Email)

		claims, err := verifier.Verify(session)
		require.NoError(t, err)
		require.Equal(t, user.ID, claims.Subject)
		require.Equal(t, "signin@example.com", claims.Email)
	})

	t.Run("a link signs in exactly once", func(t *testing.T) {
		svc, _, token := issueLink(t)

		_, _, err := svc.RedeemMagicLink(ctx, token)
		require.NoError(t, err)

		_, _, err = svc.RedeemMagicLink(ctx, token)
		require.ErrorIs(t, err, ErrLoginTokenInvalid)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		svc, _, token := issueLink(t)

		id, _, ok := strings.Cut(token, ".")
		require.True(t, ok)

		_, _, err := svc.RedeemMagicLink(ctx, id+".wrong-secret")
		require.ErrorIs(t, err, ErrLoginTokenInvalid)

		// The real link still works: a bad guess must not consume it.
		_, _, err = svc.RedeemMagicLink(ctx, token)
		require.NoError(t, err)
	})

	t.Run("malformed and unknown tokens rejected", func(t *testing.T) {
		svc, _, _ := issueLink(t)

		for _, raw := range []string{"", "no-separator", ".starts-with-dot", "ends-with-dot.", "unknown-id.some-secret"} {
			_, _, err := svc.RedeemMagicLink(ctx, raw)
			require.ErrorIs(t, err, ErrLoginTokenInvalid, "token %q", raw)
		}
	})
}

func TestSessionTTLSeconds(t *testing.T) {
	t.Parallel()

	svc := &AccessService{}
	require.Equal(t, int(jwtx.DefaultSessionTTL.Seconds()), svc.SessionTTLSeconds())
}
