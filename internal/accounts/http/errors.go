package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/solara-app/accounts/internal/accounts/service"
	"github.com/solara-app/accounts/pkg/accountsdk"
)

// writeServiceError maps a service-layer error onto the wire taxonomy.
// Unexpected errors become server_error; the underlying message is only
// exposed when dev is set so production responses never leak internals.
func writeServiceError(w http.ResponseWriter, log *slog.Logger, dev bool, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		accountsdk.NewAPIError(
			http.StatusBadRequest,
			accountsdk.ErrorCodeValidation,
			ve.Field+": "+ve.Reason,
		).WriteError(w)
	case errors.Is(err, service.ErrValidation):
		accountsdk.ErrValidation.WriteError(w)
	case errors.Is(err, service.ErrDuplicateAccount):
		accountsdk.ErrDuplicateAccount.WriteError(w)
	case errors.Is(err, service.ErrInvalidCredentials):
		accountsdk.ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, service.ErrInvalidToken):
		accountsdk.ErrInvalidToken.WriteError(w)
	default:
		log.Error("request failed", "err", err)
		if dev {
			accountsdk.NewAPIError(
				http.StatusInternalServerError,
				accountsdk.ErrorCodeServerError,
				err.Error(),
			).WriteError(w)
			return
		}
		accountsdk.ErrServerError.WriteError(w)
	}
}
