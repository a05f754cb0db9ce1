package dashsdk

import (
	"context"
	"errors"
	"sync"
	"time"
)

// State is a step in the post-authentication landing sequence.
type State string

const (
	// StateIdle is the state before any auth event has been handled.
	StateIdle State = "idle"

	// StateVerifying means an invite token is being redeemed.
	StateVerifying State = "verifying"

	// StateJoined means the invite granted a fresh membership.
	StateJoined State = "joined"

	// StateAlreadyMember means the invite pointed at a project the user
	// already belonged to.
	StateAlreadyMember State = "already_member"

	// StateRejected means the invite could not be redeemed. The flow
	// does not distinguish why: expired, used, voided, unknown tokens
	// and transport failures all land here.
	StateRejected State = "rejected"

	// StateMemberHome means no invite token was carried through sign-in
	// and the user already has at least one membership.
	StateMemberHome State = "member_home"

	// StateAwaitingInvite means no invite token was carried and the
	// user has no memberships yet. Nothing to show them.
	StateAwaitingInvite State = "awaiting_invite"
)

// DefaultDisplayDelay is how long a terminal success state stays on
// screen before the flow navigates away.
const DefaultDisplayDelay = 1500 * time.Millisecond

// SignInFlow drives the landing sequence after a user authenticates:
// redeem a pending invite token if the sign-in redirect carried one,
// otherwise route by memberships. A flow handles exactly one auth
// event; repeated Authenticated calls replay the recorded outcome
// rather than redeeming the token again.
type SignInFlow struct {
	// Notify is called on every state transition. Optional.
	Notify func(State)

	// Navigate is called with the destination path once the flow
	// decides where the user lands. Optional.
	Navigate func(string)

	// DisplayDelay is how long a success state is shown before
	// navigating. Zero means DefaultDisplayDelay.
	DisplayDelay time.Duration

	// Sleep is the delay implementation. Tests inject a no-op.
	Sleep func(context.Context, time.Duration)

	mu      sync.Mutex
	state   State
	started bool
	message string
}

// NewSignInFlow returns a flow in the Idle state.
func NewSignInFlow() *SignInFlow {
	return &SignInFlow{state: StateIdle}
}

// CurrentState returns the flow's current state.
func (f *SignInFlow) CurrentState() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Message returns the text that accompanied the terminal state, such as
// the server's rejection reason.
func (f *SignInFlow) Message() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.message
}

// Authenticated handles a completed sign-in. inviteToken is the token
// carried through the sign-in redirect, or empty if there was none.
// The first call runs the sequence; later calls (auth state listeners
// tend to fire more than once) return the recorded state without
// touching the API again.
func (f *SignInFlow) Authenticated(ctx context.Context, session *Session, inviteToken string) (State, error) {
	f.mu.Lock()
	if f.started {
		state := f.state
		f.mu.Unlock()
		return state, nil
	}
	f.started = true
	f.mu.Unlock()

	if inviteToken != "" {
		return f.redeem(ctx, session, inviteToken)
	}
	return f.routeByMemberships(ctx, session)
}

func (f *SignInFlow) redeem(ctx context.Context, session *Session, inviteToken string) (State, error) {
	f.transition(StateVerifying, "")

	resp, err := session.RedeemInvite(ctx, inviteToken)
	if err != nil {
		// Server rejections carry an error code worth surfacing;
		// transport and decode failures get a generic message.
		var apiErr *APIError
		msg := "could not verify invite"
		if errors.As(err, &apiErr) && apiErr.Details != "" {
			msg = apiErr.Details
		}
		f.transition(StateRejected, msg)
		return StateRejected, err
	}

	// A 200 alone is not an outcome: the body must carry an explicit
	// success and a project to land on.
	if !resp.Success || resp.ProjectID == "" {
		f.transition(StateRejected, "could not verify invite")
		return StateRejected, errors.New("dashsdk: redemption response missing success or project id")
	}

	state := StateJoined
	if resp.Message == MessageAlreadyMember {
		state = StateAlreadyMember
	}
	f.transition(state, resp.Message)

	// Let the user read the outcome before moving them along. An
	// abandoned wait keeps the state but skips the navigation.
	f.sleep(ctx, f.displayDelay())
	if ctx.Err() != nil {
		return state, nil
	}
	f.navigate("/projects/" + resp.ProjectID)

	return state, nil
}

func (f *SignInFlow) routeByMemberships(ctx context.Context, session *Session) (State, error) {
	memberships, err := session.ListMemberships(ctx)
	if err != nil {
		f.transition(StateRejected, "could not load memberships")
		return StateRejected, err
	}

	if len(memberships) == 0 {
		f.transition(StateAwaitingInvite, "")
		return StateAwaitingInvite, nil
	}

	f.transition(StateMemberHome, "")
	f.navigate("/projects")
	return StateMemberHome, nil
}

func (f *SignInFlow) transition(next State, message string) {
	f.mu.Lock()
	f.state = next
	f.message = message
	notify := f.Notify
	f.mu.Unlock()

	if notify != nil {
		notify(next)
	}
}

func (f *SignInFlow) navigate(path string) {
	if f.Navigate != nil {
		f.Navigate(path)
	}
}

func (f *SignInFlow) displayDelay() time.Duration {
	if f.DisplayDelay > 0 {
		return f.DisplayDelay
	}
	return DefaultDisplayDelay
}

func (f *SignInFlow) sleep(ctx context.Context, d time.Duration) {
	if f.Sleep != nil {
		f.Sleep(ctx, d)
		return
	}

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
