package middleware

import (
	"net/http"
	"time"

	"contentgate/internal/platform/logger"
	pnet "contentgate/internal/platform/net"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// AccessLogOptions configures the zerolog access log
type AccessLogOptions struct {
	// Slow marks requests taking >= Slow as warn level, 0 disables slow marking
	Slow time.Duration

	// Log overrides the request logger; nil uses logger.C
	Log *logger.Logger
}

// AccessLogZerolog writes one line per request: status, elapsed, route and bytes.
// 5xx logs at error level. Mount after RequestID so the line carries request_id
func AccessLogZerolog(opt AccessLogOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			elapsed := time.Since(start)
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			reqID := pnet.RequestID(r.Context())
			log := opt.Log
			if log == nil {
				log = logger.C(logger.WithRequest(r.Context(), reqID, ""))
			} else if reqID != "" {
				l := log.With().Str("request_id", reqID).Logger()
				log = &l
			}

			var evt *zerolog.Event
			switch {
			case status >= http.StatusInternalServerError:
				evt = log.Error()
			case opt.Slow > 0 && elapsed >= opt.Slow:
				evt = log.Warn().Bool("slow", true)
			default:
				evt = log.Info()
			}
			if rc := chi.RouteContext(r.Context()); rc != nil {
				if p := rc.RoutePattern(); p != "" {
					evt = evt.Str("route", p)
				}
			}
			evt.Int("status", status).
				Dur("elapsed", elapsed).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("ip", clientIP(r)).
				Int("bytes", ww.BytesWritten()).
				Msg("request done")
		})
	}
}
