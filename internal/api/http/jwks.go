package http

import (
	"net/http"

	"github.com/offmenu/offmenu/pkg/httpx"
	"github.com/offmenu/offmenu/pkg/jwtx"
)

type JWKSHandler struct {
	Keys *jwtx.KeySet
}

// ServeHTTP godoc
//
//	@Summary		JWKS Endpoint
//	@Description	Public keys for verifying session tokens, in JWKS format.
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	jwtx.JWKS	"keys"
//	@Router			/.well-known/jwks.json [get].
func (h *JWKSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.Keys.PublicJWKS())
}
