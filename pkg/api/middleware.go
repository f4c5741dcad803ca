package api

import "net/http"

// requireAPIKey guards the versioned routes behind a shared key carried
// in the X-API-Key header. The /metrics endpoint is mounted outside the
// guard so scrapers stay unauthenticated.
func requireAPIKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch got := r.Header.Get("X-API-Key"); {
			case got == "":
				writeError(w, http.StatusUnauthorized, "X-API-Key header required")
			case got != key:
				writeError(w, http.StatusUnauthorized, "API key not recognized")
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}
