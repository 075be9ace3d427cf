package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	phttp "contentgate/internal/platform/net/http"
	"contentgate/internal/platform/net/middleware"
	"contentgate/internal/platform/ratelimit"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	CORSOrigins []string
	Timeout     time.Duration
	SlowLog     time.Duration
}

// CommonStack returns the root middleware slice, outermost first
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.SlowLog}),

		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/ping"),
		middleware.StripSlashes(),
		middleware.Timeout(o.Timeout),
	}
}

// Auth wires the auth middleware to the platform JSON writer
func Auth(p middleware.AuthPort) func(http.Handler) http.Handler {
	return middleware.Auth(p, phttp.JSON)
}

// RateLimit wires the limiter middleware to the platform JSON writer
func RateLimit(l ratelimit.Limiter, scope string, limit int) func(http.Handler) http.Handler {
	return middleware.RateLimit(l, scope, limit, phttp.JSON)
}
