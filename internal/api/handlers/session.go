package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
)

// Session keys, following the authenticatedUserID convention.
const (
	sessionUserIDKey = "authenticatedUserID"
	sessionOpenIDKey = "userOpenID"
	sessionRoleKey   = "userRole"
)

type contextKey string

const userIDContextKey = contextKey("userID")

// NewSessionManager builds the cookie session manager. The default
// in-memory store is enough here: sessions only carry the user id and are
// re-established on login.
func NewSessionManager(lifetime time.Duration) *scs.SessionManager {
	manager := scs.New()
	manager.Lifetime = lifetime
	manager.Cookie.HttpOnly = true
	manager.Cookie.SameSite = http.SameSiteLaxMode
	return manager
}

// RequireUser guards user-scoped procedures: no session means 401, and a
// valid session puts the user id on the request context.
func RequireUser(manager *scs.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := manager.GetInt(r.Context(), sessionUserIDKey)
			if id == 0 {
				writeError(w, http.StatusUnauthorized, "unauthenticated", "sign in required", nil)
				return
			}

			ctx := context.WithValue(r.Context(), userIDContextKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func userID(r *http.Request) int {
	id, _ := r.Context().Value(userIDContextKey).(int)
	return id
}
