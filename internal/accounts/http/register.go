package http

import (
	"encoding/json"
	"net/http"

	"github.com/solara-app/accounts/internal/accounts/service"
	"github.com/solara-app/accounts/pkg/accountsdk"
	"github.com/solara-app/accounts/pkg/httpx"
	"github.com/solara-app/accounts/pkg/slogx"
)

type RegisterHandler struct {
	AuthService *service.AuthService
	Dev         bool
}

// ServeHTTP godoc
//
//	@Summary		Register Endpoint
//	@Description	Create a new account and return a session token for it
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		accountsdk.RegisterRequest	true	"Registration fields"
//	@Success		201		{object}	accountsdk.AuthResponse		"token, token_type, expires_in, profile fields"
//	@Failure		400		{object}	accountsdk.ErrorResponse	"validation_error"
//	@Failure		409		{object}	accountsdk.ErrorResponse	"duplicate_account"
//	@Failure		500		{object}	accountsdk.ErrorResponse	"server_error"
//	@Router			/v1/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req accountsdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		accountsdk.ErrInvalidJSONBody.WriteError(w)
		return
	}

	sess, err := h.AuthService.Register(ctx, service.RegisterParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
	})
	if err != nil {
		writeServiceError(w, log, h.Dev, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, authResponse(sess))
}
