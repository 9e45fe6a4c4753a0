package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-internal-auth/internal/logger"
)

// withLogging writes one access log entry per request using the request
// scoped logger, so entries carry the trace id.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.statusOrDefault()).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
