package middleware

import (
	"net/http"
	"time"

	"petclinic/internal/platform/logger"
	"petclinic/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// AccessLog deja un logger con request_id en el contexto, y al terminar
// loguea el request y lo registra en métricas (si m != nil).
// Debe ir después de RequestID.
func AccessLog(base logger.Logger, m *metrics.Metrics) func(http.Handler) http.Handler {
	if base == nil {
		base = logger.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			l := base.With(logger.Fields{"request_id": GetRequestID(r.Context())})

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(logger.WithContext(r.Context(), l)))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			elapsed := time.Since(start)

			route := ""
			if rc := chi.RouteContext(r.Context()); rc != nil {
				route = rc.RoutePattern()
			}
			if m != nil {
				m.Observe(r.Method, route, status, elapsed)
			}

			fields := logger.Fields{
				"method": r.Method,
				"path":   r.URL.Path,
				"route":  route,
				"status": status,
				"bytes":  ww.BytesWritten(),
				"ms":     elapsed.Milliseconds(),
			}
			if status >= http.StatusInternalServerError {
				l.Warn("request", fields)
				return
			}
			l.Debug("request", fields)
		})
	}
}
