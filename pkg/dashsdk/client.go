package dashsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the OffMenu dashboard API. It provides
// access to unauthenticated operations and can create authenticated
// Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new dashboard API client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// RequestMagicLink asks the API to email a sign-in link. An invite
// token carried in the redirect survives the round trip untouched.
func (c *SDKClient) RequestMagicLink(ctx context.Context, req MagicLinkRequest) (*MagicLinkResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/auth/magic-link", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var out MagicLinkResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Verify exchanges a magic-link token for an authenticated Session.
func (c *SDKClient) Verify(ctx context.Context, token string) (*Session, error) {
	body, err := json.Marshal(VerifyRequest{Token: token})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/auth/verify", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var out VerifyResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return c.NewSessionFromToken(out.AccessToken, out.User), nil
}

// NewSessionFromToken creates a Session from an existing session token,
// e.g. one restored from browser storage.
func (c *SDKClient) NewSessionFromToken(accessToken string, user User) *Session {
	return &Session{
		client:      c,
		accessToken: accessToken,
		user:        user,
	}
}
