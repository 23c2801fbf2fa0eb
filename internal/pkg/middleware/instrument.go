package middleware

import (
	"net/http"
	"strconv"
	"time"

	"partshub/internal/pkg/logger"
	"partshub/internal/pkg/metrics"
)

// statusRecorder captura o status escrito pelo handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// Instrument conta requisições e latência por padrão de rota e loga cada requisição.
// O rótulo "handler" é o padrão do ServeMux (r.Pattern), não a URL crua.
func Instrument(m *metrics.ServerMetrics, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			handler := r.Pattern
			if handler == "" {
				handler = "unmatched"
			}
			elapsed := time.Since(start)
			m.Requests.WithLabelValues(handler, strconv.Itoa(rec.status)).Inc()
			m.LatencyMS.WithLabelValues(handler).Observe(float64(elapsed.Milliseconds()))

			log.Debug("requisição atendida", map[string]interface{}{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      rec.status,
				"duration_ms": elapsed.Milliseconds(),
			})
		})
	}
}
