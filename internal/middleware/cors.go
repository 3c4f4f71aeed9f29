package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

const corsMaxAge = 300

// ConfigureCORS wraps handler so that read-only cross-origin requests from
// allowedOrigins pass. No origins means any origin.
func ConfigureCORS(handler http.Handler, allowedOrigins ...string) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	corsConfig := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         corsMaxAge,
	})

	return corsConfig.Handler(handler)
}
