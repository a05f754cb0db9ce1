package http

import (
	"errors"
	"net/http"

	"github.com/offmenu/offmenu/internal/api/service"
	"github.com/offmenu/offmenu/pkg/dashsdk"
	"github.com/offmenu/offmenu/pkg/httpx"
	"github.com/offmenu/offmenu/pkg/slogx"
)

type MagicLinkHandler struct {
	AccessService *service.AccessService
}

// ServeHTTP godoc
//
//	@Summary		Request Magic Link Endpoint
//	@Description	Email a single-use sign-in link to an address. First sign-in creates the account.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dashsdk.MagicLinkRequest	true	"Email and optional post-login redirect"
//	@Success		200		{object}	dashsdk.MagicLinkResponse	"message"
//	@Failure		400		{object}	dashsdk.ErrorResponse		"error, details"
//	@Failure		500		{object}	dashsdk.ErrorResponse		"error, details"
//	@Router			/v1/auth/magic-link [post].
func (h *MagicLinkHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req dashsdk.MagicLinkRequest
	if !readJSON(w, r, &req) {
		return
	}

	if err := h.AccessService.RequestMagicLink(ctx, req.Email, req.Redirect); err != nil {
		if errors.Is(err, service.ErrInvalidEmail) {
			writeError(w, http.StatusBadRequest, dashsdk.ErrorCodeInvalidRequest, "a valid email is required")
			return
		}
		log.Error("failed to issue magic link", "err", err)
		writeError(w, http.StatusInternalServerError, dashsdk.ErrorCodeServerError, "failed to issue magic link")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, dashsdk.MagicLinkResponse{
		Message: "If that address has an account, a sign-in link is on its way",
	})
}

type VerifyHandler struct {
	AccessService *service.AccessService
}

// ServeHTTP godoc
//
//	@Summary		Verify Magic Link Endpoint
//	@Description	Exchange a magic-link token for a session JWT. Tokens are single-use.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dashsdk.VerifyRequest	true	"Magic-link token"
//	@Success		200		{object}	dashsdk.VerifyResponse	"access_token, token_type, expires_in, user"
//	@Failure		400		{object}	dashsdk.ErrorResponse	"error, details"
//	@Failure		500		{object}	dashsdk.ErrorResponse	"error, details"
//	@Router			/v1/auth/verify [post].
func (h *VerifyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req dashsdk.VerifyRequest
	if !readJSON(w, r, &req) {
		return
	}
	if req.Token == "" {
		writeError(w, http.StatusBadRequest, dashsdk.ErrorCodeInvalidRequest, "token is required")
		return
	}

	session, user, err := h.AccessService.RedeemMagicLink(ctx, req.Token)
	if err != nil {
		if errors.Is(err, service.ErrLoginTokenInvalid) {
			// One response for unknown, expired, and spent links.
			writeError(w, http.StatusBadRequest, dashsdk.ErrorCodeInvalidToken, "sign-in link is invalid or expired")
			return
		}
		log.Error("failed to redeem magic link", "err", err)
		writeError(w, http.StatusInternalServerError, dashsdk.ErrorCodeServerError, "failed to verify sign-in link")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, dashsdk.VerifyResponse{
		AccessToken: session,
		TokenType:   "Bearer",
		ExpiresIn:   h.AccessService.SessionTTLSeconds(),
		User:        toUser(user),
	})
}

type UserinfoHandler struct {
	AccessService *service.AccessService
}

// ServeHTTP godoc
//
//	@Summary		Userinfo Endpoint
//	@Description	Return the authenticated caller's profile.
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dashsdk.User			"id, email, full_name"
//	@Failure		401	{object}	dashsdk.ErrorResponse	"error, details"
//	@Router			/v1/userinfo [get].
func (h *UserinfoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, err := h.AccessService.GetUser(ctx, httpx.UserIDFromCtx(ctx))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeError(w, http.StatusUnauthorized, dashsdk.ErrorCodeInvalidToken, "account no longer exists")
			return
		}
		log.Error("failed to fetch userinfo", "err", err)
		writeError(w, http.StatusInternalServerError, dashsdk.ErrorCodeServerError, "failed to fetch profile")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUser(user))
}
