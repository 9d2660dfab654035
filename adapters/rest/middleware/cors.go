package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS lets a browser client on another origin send the identity headers.
func CORS(origins []string, identityHeaders ...string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: append([]string{"Accept", "Content-Type", HeaderRequestID}, identityHeaders...),
		ExposedHeaders: []string{HeaderRequestID},
		MaxAge:         300,
	})
}
