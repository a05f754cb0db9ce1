package dashsdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// flowHarness wires a SignInFlow against a stub API, recording every
// transition and navigation.
type flowHarness struct {
	flow        *SignInFlow
	session     *Session
	transitions []State
	destination string
	slept       time.Duration
}

func newFlowHarness(srv *httptest.Server) *flowHarness {
	h := &flowHarness{flow: NewSignInFlow()}
	h.flow.Notify = func(s State) { h.transitions = append(h.transitions, s) }
	h.flow.Navigate = func(path string) { h.destination = path }
	h.flow.Sleep = func(_ context.Context, d time.Duration) { h.slept = d }

	client := NewSDKClient(srv.URL)
	h.session = client.NewSessionFromToken("test-token", User{ID: "user-1", Email: "user@example.com"})
	return h
}

func redeemStub(t *testing.T, calls *atomic.Int64, status int, body any) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST /v1/invites/redeem", r.Method+" "+r.URL.Path)
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		calls.Add(1)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		require.NoError(t, json.NewEncoder(w).Encode(body))
	}))
}

func TestSignInFlowJoins(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	srv := redeemStub(t, &calls, http.StatusOK, RedeemInviteResponse{
		Success:     true,
		Message:     MessageJoined,
		ProjectID:   "proj-1",
		ProjectName: "Menu Redesign",
		Role:        "designer",
	})
	defer srv.Close()

	h := newFlowHarness(srv)
	state, err := h.flow.Authenticated(context.Background(), h.session, "some-invite")
	require.NoError(t, err)

	require.Equal(t, StateJoined, state)
	require.Equal(t, []State{StateVerifying, StateJoined}, h.transitions)
	require.Equal(t, MessageJoined, h.flow.Message())
	require.Equal(t, "/projects/proj-1", h.destination)
	require.Equal(t, DefaultDisplayDelay, h.slept)
}

func TestSignInFlowAlreadyMember(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	srv := redeemStub(t, &calls, http.StatusOK, RedeemInviteResponse{
		Success:   true,
		Message:   MessageAlreadyMember,
		ProjectID: "proj-1",
		Role:      "admin",
	})
	defer srv.Close()

	h := newFlowHarness(srv)
	state, err := h.flow.Authenticated(context.Background(), h.session, "some-invite")
	require.NoError(t, err)

	require.Equal(t, StateAlreadyMember, state)
	require.Equal(t, []State{StateVerifying, StateAlreadyMember}, h.transitions)
	require.Equal(t, "/projects/proj-1", h.destination)
}

func TestSignInFlowRejected(t *testing.T) {
	t.Parallel()

	t.Run("server rejection surfaces the details", func(t *testing.T) {
		var calls atomic.Int64
		srv := redeemStub(t, &calls, http.StatusBadRequest, ErrorResponse{
			Error:   ErrorCodeInvalidInvite,
			Details: "Invalid or expired invite token",
		})
		defer srv.Close()

		h := newFlowHarness(srv)
		state, err := h.flow.Authenticated(context.Background(), h.session, "bad-invite")
		require.Error(t, err)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, ErrorCodeInvalidInvite, apiErr.Code)

		require.Equal(t, StateRejected, state)
		require.Equal(t, "Invalid or expired invite token", h.flow.Message())
		require.Empty(t, h.destination, "a rejected flow must not navigate")
	})

	t.Run("200 without an explicit success is rejected", func(t *testing.T) {
		var calls atomic.Int64
		srv := redeemStub(t, &calls, http.StatusOK, RedeemInviteResponse{
			Success: false,
		})
		defer srv.Close()

		h := newFlowHarness(srv)
		state, err := h.flow.Authenticated(context.Background(), h.session, "some-invite")
		require.Error(t, err)
		require.Equal(t, StateRejected, state)
		require.Equal(t, "could not verify invite", h.flow.Message())
		require.Empty(t, h.destination)
	})

	t.Run("200 without a project id is rejected", func(t *testing.T) {
		var calls atomic.Int64
		srv := redeemStub(t, &calls, http.StatusOK, RedeemInviteResponse{
			Success: true,
			Message: MessageJoined,
		})
		defer srv.Close()

		h := newFlowHarness(srv)
		state, err := h.flow.Authenticated(context.Background(), h.session, "some-invite")
		require.Error(t, err)
		require.Equal(t, StateRejected, state)
		require.Empty(t, h.destination, "no project to navigate to")
	})

	t.Run("non-json 200 body is rejected", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("<html>gateway error</html>"))
		}))
		defer srv.Close()

		h := newFlowHarness(srv)
		state, err := h.flow.Authenticated(context.Background(), h.session, "some-invite")
		require.Error(t, err)
		require.Equal(t, StateRejected, state)
		require.Equal(t, "could not verify invite", h.flow.Message())
		require.Empty(t, h.destination)
	})

	t.Run("transport failure gets a generic message", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		h := newFlowHarness(srv)
		srv.Close() // connection refused from here on

		state, err := h.flow.Authenticated(context.Background(), h.session, "some-invite")
		require.Error(t, err)
		require.Equal(t, StateRejected, state)
		require.Equal(t, "could not verify invite", h.flow.Message())
	})
}

func TestSignInFlowWithoutInvite(t *testing.T) {
	t.Parallel()

	memberships := func(t *testing.T, list []Membership) *httptest.Server {
		t.Helper()
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "GET /v1/memberships", r.Method+" "+r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			require.NoError(t, json.NewEncoder(w).Encode(MembershipsResponse{Memberships: list}))
		}))
	}

	t.Run("existing member lands on the project list", func(t *testing.T) {
		srv := memberships(t, []Membership{{ID: "m-1", ProjectID: "proj-1", Role: "designer"}})
		defer srv.Close()

		h := newFlowHarness(srv)
		state, err := h.flow.Authenticated(context.Background(), h.session, "")
		require.NoError(t, err)
		require.Equal(t, StateMemberHome, state)
		require.Equal(t, "/projects", h.destination)
	})

	t.Run("fresh account waits for an invite", func(t *testing.T) {
		srv := memberships(t, nil)
		defer srv.Close()

		h := newFlowHarness(srv)
		state, err := h.flow.Authenticated(context.Background(), h.session, "")
		require.NoError(t, err)
		require.Equal(t, StateAwaitingInvite, state)
		require.Empty(t, h.destination)
	})
}

func TestSignInFlowAbandonedWait(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	srv := redeemStub(t, &calls, http.StatusOK, RedeemInviteResponse{
		Success:   true,
		Message:   MessageJoined,
		ProjectID: "proj-1",
		Role:      "designer",
	})
	defer srv.Close()

	h := newFlowHarness(srv)
	ctx, cancel := context.WithCancel(context.Background())
	// The caller walks away mid display delay.
	h.flow.Sleep = func(context.Context, time.Duration) { cancel() }

	state, err := h.flow.Authenticated(ctx, h.session, "some-invite")
	require.NoError(t, err)
	require.Equal(t, StateJoined, state, "the outcome stands even if the wait is abandoned")
	require.Empty(t, h.destination, "an abandoned wait must not navigate")
}

func TestSignInFlowRunsOnce(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	srv := redeemStub(t, &calls, http.StatusOK, RedeemInviteResponse{
		Success:   true,
		Message:   MessageJoined,
		ProjectID: "proj-1",
		Role:      "designer",
	})
	defer srv.Close()

	h := newFlowHarness(srv)
	ctx := context.Background()

	first, err := h.flow.Authenticated(ctx, h.session, "some-invite")
	require.NoError(t, err)
	require.Equal(t, StateJoined, first)

	// Auth listeners fire repeatedly; only the first call may redeem.
	again, err := h.flow.Authenticated(ctx, h.session, "some-invite")
	require.NoError(t, err)
	require.Equal(t, StateJoined, again)
	require.EqualValues(t, 1, calls.Load())
	require.Equal(t, []State{StateVerifying, StateJoined}, h.transitions)
}
