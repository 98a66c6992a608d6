package middleware

import (
	"context"
	"net/http"
	"strconv"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// UserIDKey is the context key for the authenticated user ID
const UserIDKey ContextKey = "user_id"

// DevUserMiddleware resolves the caller from the X-User-ID header (DEV
// ONLY). Real authentication lives outside this service; until it is wired
// in, requests without the header act as user 1.
func DevUserMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if raw := r.Header.Get("X-User-ID"); raw != "" {
			if userID, err := strconv.ParseInt(raw, 10, 64); err == nil && userID > 0 {
				ctx := context.WithValue(r.Context(), UserIDKey, userID)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
		}

		ctx := context.WithValue(r.Context(), UserIDKey, int64(1))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID extracts the user ID from the request context
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDKey).(int64)
	return userID, ok
}
