package middleware

import (
	"net/http"
	"time"

	"github.com/openforum-dev/forumapi/shared/logger"
	"github.com/openforum-dev/forumapi/shared/middleware/metrics"
)

// RequestLogger logs one line per request once the handler returns.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := metrics.NewResponseWriter(w)
		next.ServeHTTP(wrapped, r)

		log := logger.Component("http")
		attrs := []any{
			"method", r.Method,
			"route", metrics.RoutePattern(r),
			"status", wrapped.StatusCode,
			"duration", time.Since(start),
		}
		if wrapped.StatusCode >= http.StatusInternalServerError {
			log.Error("request", attrs...)
			return
		}
		log.Info("request", attrs...)
	})
}
