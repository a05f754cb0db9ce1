package dashsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Session is an authenticated handle on the dashboard API.
type Session struct {
	client      *SDKClient
	accessToken string
	user        User
}

// User returns the profile the session was created with.
func (s *Session) User() User {
	return s.user
}

// RedeemInvite redeems an invite token for the signed-in user. A
// successful response covers both fresh joins and the case where the
// user already belonged to the project.
func (s *Session) RedeemInvite(ctx context.Context, token string) (*RedeemInviteResponse, error) {
	body, err := json.Marshal(RedeemInviteRequest{Token: token})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/invites/redeem", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var out RedeemInviteResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// MintInvite creates a new invite token. The caller must be an admin of
// the target project.
func (s *Session) MintInvite(ctx context.Context, req MintInviteRequest) (*MintInviteResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/invites/mint", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var out MintInviteResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// VoidInvite revokes an unredeemed invite token.
func (s *Session) VoidInvite(ctx context.Context, inviteID string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/invites/"+inviteID+"/void", nil, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// ListMemberships returns the caller's project memberships.
func (s *Session) ListMemberships(ctx context.Context) ([]Membership, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/memberships", nil, nil)
	if err != nil {
		return nil, err
	}

	var out MembershipsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Memberships, nil
}

// CreateProject creates a project with the caller as its first admin.
func (s *Session) CreateProject(ctx context.Context, name string) (*Project, error) {
	body, err := json.Marshal(CreateProjectRequest{Name: name})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/projects", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var out Project
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListProjects returns the caller's projects with their role in each.
func (s *Session) ListProjects(ctx context.Context) ([]Project, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/projects", nil, nil)
	if err != nil {
		return nil, err
	}

	var out ProjectsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Projects, nil
}
