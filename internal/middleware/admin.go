package middleware

import (
	"net/http"

	"kabakeh-backend/internal/auth"
)

// AdminAuth gates a route group behind the admin session cookie. A missing
// signing secret answers 500 (the server is not set up), anything short of a
// valid signature answers 401 — never an empty result set.
func AdminAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				respondError(w, http.StatusInternalServerError, "ADMIN_SECRET not configured")
				return
			}

			cookie, err := r.Cookie(auth.CookieName)
			if err != nil || !auth.VerifyToken(secret, cookie.Value) {
				respondError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"error":"` + message + `"}`))
}
