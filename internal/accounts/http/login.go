package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/solara-app/accounts/internal/accounts/domain"
	"github.com/solara-app/accounts/internal/accounts/service"
	"github.com/solara-app/accounts/pkg/accountsdk"
	"github.com/solara-app/accounts/pkg/httpx"
	"github.com/solara-app/accounts/pkg/slogx"
)

type LoginHandler struct {
	AuthService *service.AuthService
	Dev         bool
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Authenticate with email and password, returning a session token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		accountsdk.LoginRequest		true	"Login credentials"
//	@Success		200		{object}	accountsdk.AuthResponse		"token, token_type, expires_in, profile fields"
//	@Failure		401		{object}	accountsdk.ErrorResponse	"invalid_credentials"
//	@Failure		500		{object}	accountsdk.ErrorResponse	"server_error"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req accountsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		accountsdk.ErrInvalidJSONBody.WriteError(w)
		return
	}

	sess, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, log, h.Dev, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, authResponse(sess))
}

// authResponse flattens a session into the wire shape shared by register and
// login.
func authResponse(sess *domain.Session) accountsdk.AuthResponse {
	return accountsdk.AuthResponse{
		Token:     sess.Token,
		TokenType: "Bearer",
		ExpiresIn: int64(time.Until(sess.ExpiresAt).Seconds()),
		Profile:   profileOf(sess.User),
	}
}

func profileOf(u domain.User) accountsdk.Profile {
	return accountsdk.Profile{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}
