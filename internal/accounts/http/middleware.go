package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/solara-app/accounts/internal/accounts/domain"
	"github.com/solara-app/accounts/internal/accounts/service"
	"github.com/solara-app/accounts/pkg/accountsdk"
	"github.com/solara-app/accounts/pkg/httpx"
	"github.com/solara-app/accounts/pkg/slogx"
)

type ctxKey string

const ctxKeyUser ctxKey = "session_user"

// userFromContext returns the account loaded by requireSession.
func userFromContext(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(ctxKeyUser).(domain.User)
	return u, ok
}

// requireSession extracts the bearer token, verifies it and loads the
// account it belongs to. The user lands in the request context along with
// the user ID for per-user rate limiting. All token failures return
// invalid_token; only store failures surface as server errors.
func requireSession(auth *service.AuthService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, ok := bearerToken(r)
			if !ok {
				accountsdk.ErrInvalidToken.WriteError(w)
				return
			}

			user, err := auth.Verify(ctx, token)
			if err != nil {
				if errors.Is(err, service.ErrInvalidToken) {
					accountsdk.ErrInvalidToken.WriteError(w)
					return
				}
				slogx.FromContext(ctx).Error("session verification failed", "err", err)
				accountsdk.ErrServerError.WriteError(w)
				return
			}

			ctx = context.WithValue(ctx, ctxKeyUser, user)
			ctx = context.WithValue(ctx, httpx.CtxKeyUserID, user.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken pulls the token out of the Authorization header.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	const prefix = "bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
