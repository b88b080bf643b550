package httpx

import "context"

type ctxKey string

// CtxKeyUserID carries the authenticated account ID. Set by the server's
// session middleware and read by the per-user rate limiter.
const CtxKeyUserID ctxKey = "user_id"

// UserIDFromContext returns the authenticated account ID, or "" when the
// request is unauthenticated.
func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}
