package middleware

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/emiliopalmerini/themestudio/internal/metrics"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// Observe records Prometheus request metrics and writes an access log line.
// The route label is the matched ServeMux pattern.
func Observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		elapsed := time.Since(start)
		metrics.HTTPRequestsTotal.WithLabelValues(strconv.Itoa(rec.status), route).Inc()
		metrics.HTTPRequestDurationSeconds.WithLabelValues(route).Observe(elapsed.Seconds())

		log.Printf("%s %s %d %s id=%s", r.Method, r.URL.Path, rec.status, elapsed.Round(time.Microsecond), GetRequestID(r))
	})
}
