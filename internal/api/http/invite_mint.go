package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/offmenu/offmenu/internal/api/service"
	"github.com/offmenu/offmenu/pkg/dashsdk"
	"github.com/offmenu/offmenu/pkg/httpx"
	"github.com/offmenu/offmenu/pkg/slogx"
)

type InviteMintHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Mint Invitation Endpoint
//	@Description	Create an invite token for a project. Caller must hold the admin
//	@Description	role in the project. The raw token is returned exactly once.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dashsdk.MintInviteRequest	true	"Project, role, optional expiry"
//	@Success		200		{object}	dashsdk.MintInviteResponse	"id, token, project_id, role, expires_at"
//	@Failure		400		{object}	dashsdk.ErrorResponse		"error, details"
//	@Failure		401		{object}	dashsdk.ErrorResponse		"error, details"
//	@Failure		403		{object}	dashsdk.ErrorResponse		"error, details"
//	@Failure		500		{object}	dashsdk.ErrorResponse		"error, details"
//	@Router			/v1/invites/mint [post].
func (h *InviteMintHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req dashsdk.MintInviteRequest
	if !readJSON(w, r, &req) {
		return
	}
	if req.ProjectID == "" {
		writeError(w, http.StatusBadRequest, dashsdk.ErrorCodeInvalidRequest, "project_id is required")
		return
	}
	if req.Role == "" {
		writeError(w, http.StatusBadRequest, dashsdk.ErrorCodeInvalidRequest, "role is required")
		return
	}

	var expiresAt time.Time
	if req.ExpiresAt != nil {
		expiresAt = *req.ExpiresAt
	}

	invite, token, err := h.InviteService.Mint(ctx, httpx.UserIDFromCtx(ctx), req.ProjectID, req.Role, expiresAt)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole):
			writeError(w, http.StatusBadRequest, dashsdk.ErrorCodeInvalidRequest, "role must be admin or designer")
		case errors.Is(err, service.ErrInvalidInviteRequest):
			writeError(w, http.StatusBadRequest, dashsdk.ErrorCodeInvalidRequest, "expiry must be in the future")
		case errors.Is(err, service.ErrNotProjectAdmin):
			writeError(w, http.StatusForbidden, dashsdk.ErrorCodeForbidden, "only project admins can mint invites")
		default:
			log.Error("failed to mint invite", "err", err)
			writeError(w, http.StatusInternalServerError, dashsdk.ErrorCodeServerError, "failed to mint invite")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, dashsdk.MintInviteResponse{
		ID:        invite.ID,
		Token:     token,
		ProjectID: invite.ProjectID,
		Role:      invite.Role,
		ExpiresAt: invite.ExpiresAt,
	})
}
