package api_test

import (
	"testing"

	"github.com/offmenu/offmenu/pkg/dashsdk"
	"github.com/stretchr/testify/require"
)

// TestMagicLinkRateLimit hammers the magic-link endpoint past its
// per-IP budget and expects the API to start pushing back.
func TestMagicLinkRateLimit(t *testing.T) {
	baseURL, _ := setupAPIContainer(t)
	client := dashsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	limited := false
	for i := 0; i < 10; i++ {
		_, err := client.RequestMagicLink(ctx, dashsdk.MagicLinkRequest{Email: "spam@example.com"})
		if err == nil {
			continue
		}

		var apiErr *dashsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, 429, apiErr.StatusCode)
		require.Equal(t, dashsdk.ErrorCodeRateLimitExceeded, apiErr.Code)
		limited = true
		break
	}
	require.True(t, limited, "10 rapid requests should trip the per-IP limit")
}
