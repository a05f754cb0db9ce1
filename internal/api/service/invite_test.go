package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/offmenu/offmenu/internal/api/domain"
	"github.com/offmenu/offmenu/internal/api/store"
	"github.com/offmenu/offmenu/pkg/cryptox"
	"github.com/offmenu/offmenu/pkg/idx"
	"github.com/stretchr/testify/require"
)

// mintInvite seeds an admin-created invite and returns the raw token.
func mintInvite(t *testing.T, st store.Store, projectID, adminID, role string) (domain.InviteToken, string) {
	t.Helper()

	svc := &InviteService{Store: st}
	invite, token, err := svc.Mint(context.Background(), adminID, projectID, role, time.Time{})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	return invite, token
}

func TestMint(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()
	svc := &InviteService{Store: st}

	admin := seedUser(t, st, "admin@example.com")
	designer := seedUser(t, st, "designer@example.com")
	outsider := seedUser(t, st, "outsider@example.com")
	project := seedProject(t, st, "Menu Redesign")
	seedMembership(t, st, project.ID, admin.ID, domain.RoleAdmin)
	seedMembership(t, st, project.ID, designer.ID, domain.RoleDesigner)

	t.Run("admin mints with default expiry", func(t *testing.T) {
		invite, token, err := svc.Mint(ctx, admin.ID, project.ID, domain.RoleDesigner, time.Time{})
		require.NoError(t, err)
		require.NotEmpty(t, token)
		require.NotEqual(t, token, invite.TokenHash)
		require.WithinDuration(t, time.Now().Add(DefaultInviteTTL), invite.ExpiresAt, time.Minute)
	})

	t.Run("designer cannot mint", func(t *testing.T) {
		_, _, err := svc.Mint(ctx, designer.ID, project.ID, domain.RoleDesigner, time.Time{})
		require.ErrorIs(t, err, ErrNotProjectAdmin)
	})

	t.Run("non-member cannot mint", func(t *testing.T) {
		_, _, err := svc.Mint(ctx, outsider.ID, project.ID, domain.RoleDesigner, time.Time{})
		require.ErrorIs(t, err, ErrNotProjectAdmin)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		_, _, err := svc.Mint(ctx, admin.ID, project.ID, "owner", time.Time{})
		require.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("past expiry rejected", func(t *testing.T) {
		_, _, err := svc.Mint(ctx, admin.ID, project.ID, domain.RoleDesigner, time.Now().Add(-time.Hour))
		require.ErrorIs(t, err, ErrInvalidInviteRequest)
	})
}

func TestRedeem(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	setup := func(t *testing.T) (store.Store, *InviteService, domain.User, domain.Project) {
		st := newTestStore(t)
		admin := seedUser(t, st, "admin@example.com")
		project := seedProject(t, st, "Menu Redesign")
		seedMembership(t, st, project.ID, admin.ID, domain.RoleAdmin)
		return st, &InviteService{Store: st}, admin, project
	}

	t.Run("new user joins with invite role", func(t *testing.T) {
		st, svc, admin, project := setup(t)
		invitee := seedUser(t, st, "invitee@example.com")
		invite, token := mintInvite(t, st, project.ID, admin.ID, domain.RoleDesigner)

		result, err := svc.Redeem(ctx, invitee.ID, token)
		require.NoError(t, err)
		require.Equal(t, domain.OutcomeJoined, result.Outcome)
		require.Equal(t, project.ID, result.ProjectID)
		require.Equal(t, "Menu Redesign", result.ProjectName)
		require.Equal(t, domain.RoleDesigner, result.Role)
		require.NotNil(t, result.Membership)
		require.Equal(t, invitee.ID, result.Membership.UserID)

		// Token consumed and attributed
		stored, err := st.InviteTokens().GetInviteTokenByID(ctx, invite.ID)
		require.NoError(t, err)
		require.NotNil(t, stored.UsedAt)
		require.Equal(t, invitee.ID, stored.UsedBy)
	})

	t.Run("second user is rejected after token is spent", func(t *testing.T) {
		st, svc, admin, project := setup(t)
		first := seedUser(t, st, "first@example.com")
		second := seedUser(t, st, "second@example.com")
		_, token := mintInvite(t, st, project.ID, admin.ID, domain.RoleDesigner)

		_, err := svc.Redeem(ctx, first.ID, token)
		require.NoError(t, err)

		_, err = svc.Redeem(ctx, second.ID, token)
		require.ErrorIs(t, err, ErrTokenNotRedeemable)

		_, err = st.Memberships().GetMembership(ctx, project.ID, second.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("same user twice keeps one membership", func(t *testing.T) {
		st, svc, admin, project := setup(t)
		invitee := seedUser(t, st, "invitee@example.com")
		_, tokenA := mintInvite(t, st, project.ID, admin.ID, domain.RoleDesigner)
		_, tokenB := mintInvite(t, st, project.ID, admin.ID, domain.RoleDesigner)

		first, err := svc.Redeem(ctx, invitee.ID, tokenA)
		require.NoError(t, err)
		require.Equal(t, domain.OutcomeJoined, first.Outcome)

		second, err := svc.Redeem(ctx, invitee.ID, tokenB)
		require.NoError(t, err)
		require.Equal(t, domain.OutcomeAlreadyMember, second.Outcome)

		memberships, err := st.Memberships().ListMembershipsForUser(ctx, invitee.ID)
		require.NoError(t, err)
		require.Len(t, memberships, 1)
	})

	t.Run("already-member reports existing role not invite role", func(t *testing.T) {
		st, svc, admin, project := setup(t)
		invite, token := mintInvite(t, st, project.ID, admin.ID, domain.RoleDesigner)

		// The admin redeems a designer invite to their own project.
		result, err := svc.Redeem(ctx, admin.ID, token)
		require.NoError(t, err)
		require.Equal(t, domain.OutcomeAlreadyMember, result.Outcome)
		require.Equal(t, domain.RoleAdmin, result.Role)

		// The token is still consumed.
		stored, err := st.InviteTokens().GetInviteTokenByID(ctx, invite.ID)
		require.NoError(t, err)
		require.NotNil(t, stored.UsedAt)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		st, svc, admin, project := setup(t)
		invitee := seedUser(t, st, "invitee@example.com")
		token := seedExpiredInvite(t, st, project.ID, admin.ID)

		_, err := svc.Redeem(ctx, invitee.ID, token)
		require.ErrorIs(t, err, ErrTokenNotRedeemable)
	})

	t.Run("voided token rejected even before expiry", func(t *testing.T) {
		st, svc, admin, project := setup(t)
		invitee := seedUser(t, st, "invitee@example.com")
		invite, token := mintInvite(t, st, project.ID, admin.ID, domain.RoleDesigner)

		require.NoError(t, st.InviteTokens().VoidInvite(ctx, invite.ID))

		_, err := svc.Redeem(ctx, invitee.ID, token)
		require.ErrorIs(t, err, ErrTokenNotRedeemable)
	})

	t.Run("unknown token rejected", func(t *testing.T) {
		st, svc, _, _ := setup(t)
		invitee := seedUser(t, st, "invitee@example.com")

		_, err := svc.Redeem(ctx, invitee.ID, "no-such-token")
		require.ErrorIs(t, err, ErrTokenNotRedeemable)
	})

	t.Run("missing input rejected", func(t *testing.T) {
		_, svc, admin, _ := setup(t)

		_, err := svc.Redeem(ctx, admin.ID, "")
		require.ErrorIs(t, err, ErrInvalidInviteRequest)

		_, err = svc.Redeem(ctx, "", "some-token")
		require.ErrorIs(t, err, ErrInvalidInviteRequest)
	})

	t.Run("mark-used failure still reports joined", func(t *testing.T) {
		st, _, admin, project := setup(t)
		invitee := seedUser(t, st, "invitee@example.com")
		_, token := mintInvite(t, st, project.ID, admin.ID, domain.RoleDesigner)

		svc := &InviteService{Store: &markUsedFailingStore{Store: st}}

		result, err := svc.Redeem(ctx, invitee.ID, token)
		require.NoError(t, err)
		require.Equal(t, domain.OutcomeJoined, result.Outcome)

		// Membership is durable even though the token stayed live.
		_, err = st.Memberships().GetMembership(ctx, project.ID, invitee.ID)
		require.NoError(t, err)
	})
}

func TestVoid(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()
	svc := &InviteService{Store: st}

	admin := seedUser(t, st, "admin@example.com")
	designer := seedUser(t, st, "designer@example.com")
	project := seedProject(t, st, "Menu Redesign")
	seedMembership(t, st, project.ID, admin.ID, domain.RoleAdmin)
	seedMembership(t, st, project.ID, designer.ID, domain.RoleDesigner)

	t.Run("admin voids an unredeemed invite", func(t *testing.T) {
		invite, token := mintInvite(t, st, project.ID, admin.ID, domain.RoleDesigner)
		require.NoError(t, svc.Void(ctx, admin.ID, invite.ID))

		// Voided tokens no longer redeem.
		_, err := svc.Redeem(ctx, designer.ID, token)
		require.ErrorIs(t, err, ErrTokenNotRedeemable)
	})

	t.Run("voiding twice fails", func(t *testing.T) {
		invite, _ := mintInvite(t, st, project.ID, admin.ID, domain.RoleDesigner)
		require.NoError(t, svc.Void(ctx, admin.ID, invite.ID))
		require.ErrorIs(t, svc.Void(ctx, admin.ID, invite.ID), ErrInviteNotFound)
	})

	t.Run("used invites cannot be voided", func(t *testing.T) {
		invitee := seedUser(t, st, "late-void@example.com")
		invite, token := mintInvite(t, st, project.ID, admin.ID, domain.RoleDesigner)

		_, err := svc.Redeem(ctx, invitee.ID, token)
		require.NoError(t, err)

		require.ErrorIs(t, svc.Void(ctx, admin.ID, invite.ID), ErrInviteNotFound)
	})

	t.Run("designer cannot void", func(t *testing.T) {
		invite, _ := mintInvite(t, st, project.ID, admin.ID, domain.RoleDesigner)
		require.ErrorIs(t, svc.Void(ctx, designer.ID, invite.ID), ErrNotProjectAdmin)
	})
}

// seedExpiredInvite writes an invite whose expiry already passed,
// bypassing the service's expiry validation, and returns its raw token.
func seedExpiredInvite(t *testing.T, st store.Store, projectID, adminID string) string {
	t.Helper()

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	require.NoError(t, err)

	inv := domain.InviteToken{
		ID:        idx.New().String(),
		TokenHash: cryptox.FingerprintToken(token),
		ProjectID: projectID,
		Role:      domain.RoleDesigner,
		CreatedBy: adminID,
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, st.InviteTokens().CreateInviteToken(context.Background(), inv))
	return token
}

// markUsedFailingStore wraps a Store so MarkInviteUsed always fails,
// simulating a crash between the membership grant and the token update.
type markUsedFailingStore struct {
	store.Store
}

func (s *markUsedFailingStore) InviteTokens() store.InviteTokens {
	return &markUsedFailingInvites{InviteTokens: s.Store.InviteTokens()}
}

type markUsedFailingInvites struct {
	store.InviteTokens
}

func (*markUsedFailingInvites) MarkInviteUsed(context.Context, string, string) error {
	return errors.New("simulated write failure")
}
