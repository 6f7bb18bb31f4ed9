package middlewares

import (
	"net/http"

	"agrochat/agrochat/config"
)

// APIKeyMiddleware gates a router behind the single shared static key.
// Requests without a matching X-API-Key never reach the provider or the
// store.
func APIKeyMiddleware(cfg config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("X-API-Key")
			if key == "" || key != cfg.MasterAPIKey {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error": "invalid API key"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
