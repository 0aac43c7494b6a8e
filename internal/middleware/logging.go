package middleware

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/fitdash/fitdash/pkg"
)

func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userIP, err := pkg.ReadUserIP(r)
			if err != nil {
				userIP = r.RemoteAddr
			}
			log.Tracef(
				" ====> request [%s] path: [%s] [ip: %s] [id: %s]",
				r.Method, r.URL.Path, userIP, RequestIDFromContext(r.Context()),
			)
			next.ServeHTTP(w, r)
		})
	}
}
