package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestHealthEndpoints checks the liveness and readiness probes of a
// freshly started container.
func TestHealthEndpoints(t *testing.T) {
	baseURL, _ := setupAPIContainer(t)

	for _, path := range []string{"/livez", "/readyz"} {
		resp, err := http.Get(baseURL + path)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, "%s should report healthy", path)
		_ = resp.Body.Close()
	}
}

// TestJWKSEndpoint checks the service publishes at least one Ed25519
// verification key.
func TestJWKSEndpoint(t *testing.T) {
	baseURL, _ := setupAPIContainer(t)

	resp, err := http.Get(baseURL + "/.well-known/jwks.json")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var jwks struct {
		Keys []struct {
			Kty string `json:"kty"`
			Crv string `json:"crv"`
			Kid string `json:"kid"`
			X   string `json:"x"`
		} `json:"keys"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&jwks))
	require.NotEmpty(t, jwks.Keys, "JWKS should contain at least one key")
	require.Equal(t, "OKP", jwks.Keys[0].Kty)
	require.Equal(t, "Ed25519", jwks.Keys[0].Crv)
	require.NotEmpty(t, jwks.Keys[0].X)
}
