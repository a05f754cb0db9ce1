package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/offmenu/offmenu/internal/api/domain"
	"github.com/offmenu/offmenu/internal/api/store"
	"github.com/offmenu/offmenu/pkg/cryptox"
	"github.com/offmenu/offmenu/pkg/idx"
	"github.com/offmenu/offmenu/pkg/slogx"
)

var (
	ErrInvalidInviteRequest = errors.New("invalid invite request")
	ErrInvalidRole          = errors.New("invalid role")
	ErrNotProjectAdmin      = errors.New("caller is not a project admin")
	ErrInviteNotFound       = errors.New("invite not found")

	// ErrTokenNotRedeemable deliberately covers every failure cause:
	// unknown token, expired, already used, voided. Callers get one
	// rejection and learn nothing about which it was.
	ErrTokenNotRedeemable = errors.New("invite token is not redeemable")

	// ErrMembershipCreateFailed means the grant itself failed. The
	// token was not consumed and stays redeemable.
	ErrMembershipCreateFailed = errors.New("failed to create membership")
)

// DefaultInviteTTL is the invite lifetime when the minter doesn't pick one.
const DefaultInviteTTL = 7 * 24 * time.Hour

type InviteService struct {
	Store store.Store
}

// Mint creates a new invite token for a project. The raw token is
// returned exactly once; only its fingerprint is stored.
func (s *InviteService) Mint(
	ctx context.Context,
	callerID string,
	projectID string,
	role string,
	expiresAt time.Time,
) (domain.InviteToken, string, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate role
	if !domain.ValidRole(role) {
		log.Warn("attempted to mint invite with invalid role",
			slog.String("role", role),
		)
		return domain.InviteToken{}, "", ErrInvalidRole
	}

	// 2. Only project admins can invite
	caller, err := s.Store.Memberships().GetMembership(ctx, projectID, callerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("non-member attempted to mint invite",
				slog.String("project_id", projectID),
				slog.String("caller_id", callerID),
			)
			return domain.InviteToken{}, "", ErrNotProjectAdmin
		}
		log.Error("failed to fetch caller membership", slog.Any("error", err))
		return domain.InviteToken{}, "", err
	}
	if caller.Role != domain.RoleAdmin {
		log.Warn("non-admin attempted to mint invite",
			slog.String("project_id", projectID),
			slog.String("caller_id", callerID),
			slog.String("caller_role", caller.Role),
		)
		return domain.InviteToken{}, "", ErrNotProjectAdmin
	}

	// 3. Default and validate expiry
	if expiresAt.IsZero() {
		expiresAt = time.Now().UTC().Add(DefaultInviteTTL)
	}
	if expiresAt.Before(time.Now()) {
		log.Warn("attempted to mint invite with past expiry",
			slog.String("project_id", projectID),
			slog.Time("expires_at", expiresAt),
		)
		return domain.InviteToken{}, "", ErrInvalidInviteRequest
	}

	// 4. Generate random token and store its fingerprint
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate invite token", slog.Any("error", err))
		return domain.InviteToken{}, "", err
	}

	invite := domain.InviteToken{
		ID:        idx.New().String(),
		TokenHash: cryptox.FingerprintToken(token),
		ProjectID: projectID,
		Role:      role,
		CreatedBy: callerID,
		ExpiresAt: expiresAt.UTC(),
	}

	if err := s.Store.InviteTokens().CreateInviteToken(ctx, invite); err != nil {
		log.Error("failed to create invite",
			slog.String("invite_id", invite.ID),
			slog.Any("error", err),
		)
		return domain.InviteToken{}, "", err
	}

	log.Debug("invite created",
		slog.String("invite_id", invite.ID),
		slog.String("project_id", projectID),
		slog.String("role", role),
		slog.Time("expires_at", invite.ExpiresAt),
	)

	// 5. Return the raw token (not the fingerprint)
	return invite, token, nil
}

// Redeem grants the caller membership in the project an invite token
// points at. The grant is the commit point: marking the token used
// happens after the membership row is durable, so a crash in between
// burns an invite slot rather than locking a user out.
func (s *InviteService) Redeem(
	ctx context.Context,
	userID string,
	token string,
) (domain.RedemptionResult, error) {
	log := slogx.FromContext(ctx)

	if userID == "" || token == "" {
		log.Warn("invite redemption missing required fields")
		return domain.RedemptionResult{}, ErrInvalidInviteRequest
	}

	// 1. Single filtered lookup. The query excludes used, voided, and
	// expired tokens, so every failure cause collapses into one miss.
	fingerprint := cryptox.FingerprintToken(token)
	invite, err := s.Store.InviteTokens().GetRedeemableInviteByTokenHash(ctx, fingerprint)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("invite redemption attempted with non-redeemable token",
				slog.String("user_id", userID),
			)
			return domain.RedemptionResult{}, ErrTokenNotRedeemable
		}
		log.Error("failed to fetch invite", slog.Any("error", err))
		return domain.RedemptionResult{}, err
	}

	// 2. Already a member? Consume the token and report their existing
	// role, which may differ from what the invite carries.
	existing, err := s.Store.Memberships().GetMembership(ctx, invite.ProjectID, userID)
	if err == nil {
		return s.finishAlreadyMember(ctx, invite, existing)
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check existing membership", slog.Any("error", err))
		return domain.RedemptionResult{}, err
	}

	// 3. Grant membership. The insert is conditional on the unique
	// (project_id, user_id) pair, so a concurrent redemption by the
	// same user degrades to the already-member path.
	membership := domain.Membership{
		ID:        idx.New().String(),
		ProjectID: invite.ProjectID,
		UserID:    userID,
		Role:      invite.Role,
		CreatedAt: time.Now().UTC(),
	}
	inserted, err := s.Store.Memberships().CreateMembershipIfAbsent(ctx, membership)
	if err != nil {
		log.Error("failed to create membership",
			slog.String("invite_id", invite.ID),
			slog.String("project_id", invite.ProjectID),
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return domain.RedemptionResult{}, ErrMembershipCreateFailed
	}
	if !inserted {
		existing, err := s.Store.Memberships().GetMembership(ctx, invite.ProjectID, userID)
		if err != nil {
			log.Error("membership insert lost race and re-read failed", slog.Any("error", err))
			return domain.RedemptionResult{}, ErrMembershipCreateFailed
		}
		return s.finishAlreadyMember(ctx, invite, existing)
	}

	// 4. Mark the token used now that the membership is durable. A
	// failure here leaves a granted membership and a live token; log
	// it loudly but don't take the success away from the user.
	if err := s.Store.InviteTokens().MarkInviteUsed(ctx, invite.ID, userID); err != nil {
		log.Error("invite_mark_used_failed",
			slog.String("invite_id", invite.ID),
			slog.String("project_id", invite.ProjectID),
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
	}

	log.Info("invite redeemed",
		slog.String("invite_id", invite.ID),
		slog.String("project_id", invite.ProjectID),
		slog.String("user_id", userID),
		slog.String("role", invite.Role),
	)

	return domain.RedemptionResult{
		Outcome:     domain.OutcomeJoined,
		ProjectID:   invite.ProjectID,
		ProjectName: s.projectName(ctx, invite.ProjectID),
		Role:        invite.Role,
		Membership:  &membership,
	}, nil
}

// finishAlreadyMember consumes the token for a user who already belongs
// to the project. Idempotent: re-marking an already-used token is a
// no-op the store reports as not-found, which we swallow.
func (s *InviteService) finishAlreadyMember(
	ctx context.Context,
	invite domain.InviteToken,
	existing domain.Membership,
) (domain.RedemptionResult, error) {
	log := slogx.FromContext(ctx)

	if err := s.Store.InviteTokens().MarkInviteUsed(ctx, invite.ID, existing.UserID); err != nil &&
		!errors.Is(err, store.ErrNotFound) {
		log.Error("invite_mark_used_failed",
			slog.String("invite_id", invite.ID),
			slog.String("project_id", invite.ProjectID),
			slog.String("user_id", existing.UserID),
			slog.Any("error", err),
		)
	}

	log.Info("invite redeemed by existing member",
		slog.String("invite_id", invite.ID),
		slog.String("project_id", invite.ProjectID),
		slog.String("user_id", existing.UserID),
	)

	return domain.RedemptionResult{
		Outcome:     domain.OutcomeAlreadyMember,
		ProjectID:   invite.ProjectID,
		ProjectName: s.projectName(ctx, invite.ProjectID),
		Role:        existing.Role,
		Membership:  &existing,
	}, nil
}

// Void revokes an unredeemed invite. Used tokens are already spent and
// stay that way.
func (s *InviteService) Void(ctx context.Context, callerID, inviteID string) error {
	log := slogx.FromContext(ctx)

	invite, err := s.Store.InviteTokens().GetInviteTokenByID(ctx, inviteID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInviteNotFound
		}
		log.Error("failed to fetch invite", slog.Any("error", err))
		return err
	}

	caller, err := s.Store.Memberships().GetMembership(ctx, invite.ProjectID, callerID)
	if err != nil || caller.Role != domain.RoleAdmin {
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			log.Error("failed to fetch caller membership", slog.Any("error", err))
			return err
		}
		log.Warn("non-admin attempted to void invite",
			slog.String("invite_id", inviteID),
			slog.String("caller_id", callerID),
		)
		return ErrNotProjectAdmin
	}

	if err := s.Store.InviteTokens().VoidInvite(ctx, inviteID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Already used or already voided.
			return ErrInviteNotFound
		}
		log.Error("failed to void invite", slog.Any("error", err))
		return err
	}

	log.Info("invite voided",
		slog.String("invite_id", inviteID),
		slog.String("project_id", invite.ProjectID),
		slog.String("caller_id", callerID),
	)
	return nil
}

// projectName is best-effort enrichment. A miss leaves the name empty
// and never fails the redemption.
func (s *InviteService) projectName(ctx context.Context, projectID string) string {
	project, err := s.Store.Projects().GetProjectByID(ctx, projectID)
	if err != nil {
		slogx.FromContext(ctx).Warn("failed to enrich project name",
			slog.String("project_id", projectID),
			slog.Any("error", err),
		)
		return ""
	}
	return project.Name
}
