package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS builds the cross-origin policy from the configured allow-list. The
// session cookie requires credentials, and credentials cannot be combined
// with a wildcard origin, so a wildcard entry disables them.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		// same-origin deployment: the SPA is served by this process
		return func(next http.Handler) http.Handler { return next }
	}
	wildcard := false
	for _, o := range allowedOrigins {
		if o == "*" {
			wildcard = true
			break
		}
	}
	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: !wildcard,
	})
	return c.Handler
}
