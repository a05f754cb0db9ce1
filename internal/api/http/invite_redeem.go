package http

import (
	"errors"
	"net/http"

	"github.com/offmenu/offmenu/internal/api/domain"
	"github.com/offmenu/offmenu/internal/api/service"
	"github.com/offmenu/offmenu/pkg/dashsdk"
	"github.com/offmenu/offmenu/pkg/httpx"
	"github.com/offmenu/offmenu/pkg/slogx"
)

type InviteRedeemHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Redeem Invitation Endpoint
//	@Description	Redeem an invite token for the authenticated user. Succeeds for
//	@Description	fresh joins and for users who already belong to the project; the
//	@Description	message distinguishes the two. Every rejection looks the same
//	@Description	regardless of whether the token was unknown, expired, used, or voided.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dashsdk.RedeemInviteRequest		true	"Invite token"
//	@Success		200		{object}	dashsdk.RedeemInviteResponse	"success, message, project_id, project_name, role, membership"
//	@Failure		400		{object}	dashsdk.ErrorResponse			"error, details"
//	@Failure		401		{object}	dashsdk.ErrorResponse			"error, details"
//	@Failure		500		{object}	dashsdk.ErrorResponse			"error, details"
//	@Router			/v1/invites/redeem [post].
func (h *InviteRedeemHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req dashsdk.RedeemInviteRequest
	if !readJSON(w, r, &req) {
		return
	}
	if req.Token == "" {
		writeError(w, http.StatusBadRequest, dashsdk.ErrorCodeInvalidRequest, "token is required")
		return
	}

	result, err := h.InviteService.Redeem(ctx, httpx.UserIDFromCtx(ctx), req.Token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTokenNotRedeemable):
			writeError(w, http.StatusBadRequest, dashsdk.ErrorCodeInvalidInvite, "Invalid or expired invite token")
		case errors.Is(err, service.ErrInvalidInviteRequest):
			writeError(w, http.StatusBadRequest, dashsdk.ErrorCodeInvalidRequest, "Invalid invite redemption parameters")
		default:
			// Covers ErrMembershipCreateFailed and storage errors. The
			// token was not consumed; the user can retry.
			log.Error("failed to redeem invite", "err", err)
			writeError(w, http.StatusInternalServerError, dashsdk.ErrorCodeServerError, "Failed to redeem invite")
		}
		return
	}

	message := dashsdk.MessageJoined
	if result.Outcome == domain.OutcomeAlreadyMember {
		message = dashsdk.MessageAlreadyMember
	}

	response := dashsdk.RedeemInviteResponse{
		Success:     true,
		Message:     message,
		ProjectID:   result.ProjectID,
		ProjectName: result.ProjectName,
		Role:        result.Role,
	}
	if result.Membership != nil {
		m := toMembership(*result.Membership)
		response.Membership = &m
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}
