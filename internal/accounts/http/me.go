package http

import (
	"net/http"

	"github.com/solara-app/accounts/pkg/accountsdk"
	"github.com/solara-app/accounts/pkg/httpx"
)

// MeHandler serves the profile of the authenticated account. It relies on
// requireSession to have already loaded the account into the context.
type MeHandler struct{}

// ServeHTTP godoc
//
//	@Summary		Current Account Endpoint
//	@Description	Returns the profile of the account the session token belongs to
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	accountsdk.Profile			"id, first_name, last_name, email, phone, created_at"
//	@Failure		401	{object}	accountsdk.ErrorResponse	"invalid_token"
//	@Failure		500	{object}	accountsdk.ErrorResponse	"server_error"
//	@Router			/v1/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		accountsdk.ErrInvalidToken.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, profileOf(user))
}
