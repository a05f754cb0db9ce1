package jwtx

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func newTestVerifier(t *testing.T, signer *Signer, issuer string, aud []string) *Verifier {
	t.Helper()

	keys := NewKeySet()
	require.NoError(t, keys.AddSigner(signer))
	return NewVerifier(keys, issuer, aud)
}

func TestSignAndVerify(t *testing.T) {
	t.Parallel()

	signer, err := GenerateSigner("test-key")
	require.NoError(t, err)
	require.NoError(t, signer.Validate())

	verifier := newTestVerifier(t, signer, "offmenu-api", []string{"offmenu"})

	claims := NewSessionClaims(
		"user-1", "user@example.com", "Test User",
		time.Hour, "offmenu-api", []string{"offmenu"}, time.Now().UTC(),
	)
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	parsed, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", parsed.Subject)
	require.Equal(t, "user@example.com", parsed.Email)
	require.Equal(t, "Test User", parsed.FullName)
	require.NotEmpty(t, parsed.ID, "jti should be stamped")
}

func TestVerifyRejections(t *testing.T) {
	t.Parallel()

	signer, err := GenerateSigner("test-key")
	require.NoError(t, err)
	verifier := newTestVerifier(t, signer, "offmenu-api", []string{"offmenu"})

	sign := func(t *testing.T, claims Claims) string {
		t.Helper()
		token, err := signer.Sign(claims)
		require.NoError(t, err)
		return token
	}

	t.Run("wrong issuer", func(t *testing.T) {
		token := sign(t, NewSessionClaims(
			"user-1", "user@example.com", "",
			time.Hour, "someone-else", []string{"offmenu"}, time.Now().UTC(),
		))
		_, err := verifier.Verify(token)
		require.ErrorIs(t, err, ErrIssuer)
	})

	t.Run("wrong audience", func(t *testing.T) {
		token := sign(t, NewSessionClaims(
			"user-1", "user@example.com", "",
			time.Hour, "offmenu-api", []string{"other-app"}, time.Now().UTC(),
		))
		_, err := verifier.Verify(token)
		require.ErrorIs(t, err, ErrAudience)
	})

	t.Run("expired", func(t *testing.T) {
		token := sign(t, NewSessionClaims(
			"user-1", "user@example.com", "",
			time.Hour, "offmenu-api", []string{"offmenu"}, time.Now().UTC().Add(-2*time.Hour),
		))
		_, err := verifier.Verify(token)
		require.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("unknown signing key", func(t *testing.T) {
		other, err := GenerateSigner("rotated-away")
		require.NoError(t, err)
		token, err := other.Sign(NewSessionClaims(
			"user-1", "user@example.com", "",
			time.Hour, "offmenu-api", []string{"offmenu"}, time.Now().UTC(),
		))
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.ErrorIs(t, err, ErrUnknownKID)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := verifier.Verify("not.a.jwt")
		require.Error(t, err)
	})
}

func TestPublicJWKSRoundTrip(t *testing.T) {
	t.Parallel()

	signer, err := GenerateSigner("session-1")
	require.NoError(t, err)

	// Publish the JWKS the way /.well-known/jwks.json would, then load
	// it into a second key set as a remote consumer.
	source := NewKeySet()
	require.NoError(t, source.AddSigner(signer))
	published := source.PublicJWKS()
	require.Len(t, published.Keys, 1)
	require.Equal(t, "OKP", published.Keys[0].Kty)
	require.Equal(t, "session-1", published.Keys[0].Kid)

	remote := NewKeySet()
	for _, jwk := range published.Keys {
		require.NoError(t, remote.AddJWK(jwk))
	}
	require.True(t, remote.IsReady())

	token, err := signer.Sign(NewSessionClaims(
		"user-1", "user@example.com", "",
		time.Hour, "offmenu-api", []string{"offmenu"}, time.Now().UTC(),
	))
	require.NoError(t, err)

	_, err = NewVerifier(remote, "offmenu-api", []string{"offmenu"}).Verify(token)
	require.NoError(t, err)
}
