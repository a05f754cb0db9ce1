package http

import (
	"errors"
	"net/http"

	"github.com/offmenu/offmenu/internal/api/service"
	"github.com/offmenu/offmenu/pkg/dashsdk"
	"github.com/offmenu/offmenu/pkg/httpx"
	"github.com/offmenu/offmenu/pkg/slogx"
)

type InviteVoidHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Void Invitation Endpoint
//	@Description	Revoke an unredeemed invite token. Voiding an already-used or
//	@Description	already-voided token is rejected.
//	@Tags			Invitations
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Invite ID"
//	@Success		204	"invite voided"
//	@Failure		401	{object}	dashsdk.ErrorResponse	"error, details"
//	@Failure		403	{object}	dashsdk.ErrorResponse	"error, details"
//	@Failure		404	{object}	dashsdk.ErrorResponse	"error, details"
//	@Failure		500	{object}	dashsdk.ErrorResponse	"error, details"
//	@Router			/v1/invites/{id}/void [post].
func (h *InviteVoidHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	err := h.InviteService.Void(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInviteNotFound):
			writeError(w, http.StatusNotFound, dashsdk.ErrorCodeNotFound, "invite not found or no longer voidable")
		case errors.Is(err, service.ErrNotProjectAdmin):
			writeError(w, http.StatusForbidden, dashsdk.ErrorCodeForbidden, "only project admins can void invites")
		default:
			log.Error("failed to void invite", "err", err)
			writeError(w, http.StatusInternalServerError, dashsdk.ErrorCodeServerError, "failed to void invite")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
