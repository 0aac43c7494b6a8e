package middleware

import (
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/fitdash/fitdash/internal/session"
)

// RouteGuard redirects based on cookie presence alone: /app pages
// need the auth token cookie, the login and register pages bounce an
// already-authenticated visitor back to the app. No backend call is
// made here, an expired token gets caught by the first 401 from the
// API instead.
func RouteGuard() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hasToken := false
			if c, err := r.Cookie(session.CookieToken); err == nil && c.Value != "" {
				hasToken = true
			}

			switch {
			case strings.HasPrefix(r.URL.Path, "/app") && !hasToken:
				log.Tracef("route guard: %s without session, to login", r.URL.Path)
				http.Redirect(w, r, "/login", http.StatusSeeOther)
			case (r.URL.Path == "/login" || r.URL.Path == "/register") && hasToken && r.Method == http.MethodGet:
				http.Redirect(w, r, "/app", http.StatusSeeOther)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}
