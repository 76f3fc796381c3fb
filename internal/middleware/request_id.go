package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestID assigns an ID to every request that arrives without one. The ID
// lives on the request header, where error envelopes read it, and is echoed
// on the response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
			r.Header.Set("X-Request-ID", id)
		}
		w.Header().Set("X-Request-ID", id)

		next.ServeHTTP(w, r)
	})
}
