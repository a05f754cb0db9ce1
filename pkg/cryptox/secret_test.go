package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashSecretRoundTrip(t *testing.T) {
	t.Parallel()

	secret, err := GenerateToken(TokenSize256)
	require.NoError(t, err)

	hash, err := HashSecret(secret)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))
	require.NotContains(t, hash, secret)

	require.NoError(t, VerifySecret(secret, hash))
	require.Error(t, VerifySecret("wrong-secret", hash))
}

func TestHashSecretIsSalted(t *testing.T) {
	t.Parallel()

	a, err := HashSecret("same-secret")
	require.NoError(t, err)
	b, err := HashSecret("same-secret")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestVerifySecretMalformedHash(t *testing.T) {
	t.Parallel()

	for _, encoded := range []string{
		"",
		"plainly-not-a-hash",
		"$argon2id$v=19$m=19456,t=2,p=1$short",
		"$bcrypt$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
	} {
		require.Error(t, VerifySecret("secret", encoded), "hash %q", encoded)
	}
}

func TestFingerprintToken(t *testing.T) {
	t.Parallel()

	fp := FingerprintToken("some-token")
	require.Equal(t, fp, FingerprintToken("some-token"))
	require.NotEqual(t, fp, FingerprintToken("other-token"))
	require.NotContains(t, fp, "some-token")
}
