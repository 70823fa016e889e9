package middleware

import (
	"net/http"
	"strings"

	"github.com/lumina-reserve/backend/internal/auth"
)

// AdminTokenHeader carries the token returned by the admin login
const AdminTokenHeader = "X-Admin-Token"

// AdminToken extracts the admin session token from the request.
// A bearer Authorization header is accepted as well.
func AdminToken(r *http.Request) string {
	if token := strings.TrimSpace(r.Header.Get(AdminTokenHeader)); token != "" {
		return token
	}
	if bearer, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
		return strings.TrimSpace(bearer)
	}
	return ""
}

// RequireAdmin only lets requests through for an unlocked admin session
func RequireAdmin(sessions *auth.Sessions) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := AdminToken(r)

			if token == "" {
				http.Error(w, "Unauthorized: admin token required", http.StatusUnauthorized)
				return
			}

			session, err := sessions.Get(token)
			if err != nil {
				http.Error(w, "Unauthorized: unknown admin session", http.StatusUnauthorized)
				return
			}

			if session.State() != auth.Unlocked {
				http.Error(w, "Forbidden: admin session is locked", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
