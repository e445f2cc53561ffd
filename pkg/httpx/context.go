package httpx

import "context"

type ctxKey string

const (
	CtxKeyUsername ctxKey = "username"
	CtxKeyRole     ctxKey = "role"
	CtxKeyTimezone ctxKey = "timezone"
)

// UsernameFromContext returns the authenticated username, or "" when the
// request was not authenticated.
func UsernameFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUsername).(string); ok {
		return v
	}
	return ""
}

// RoleFromContext returns the authenticated user's role, or "".
func RoleFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyRole).(string); ok {
		return v
	}
	return ""
}

// TimezoneFromContext returns the authenticated user's IANA timezone, or "".
func TimezoneFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyTimezone).(string); ok {
		return v
	}
	return ""
}
