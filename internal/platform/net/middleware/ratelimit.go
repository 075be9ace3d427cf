package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	perr "contentgate/internal/platform/errors"
	pnet "contentgate/internal/platform/net"
	"contentgate/internal/platform/ratelimit"
)

// RateLimit allows limit requests per window per client IP
// scope separates counters so one route group can run a tighter budget
func RateLimit(l ratelimit.Limiter, scope string, limit int, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if l == nil || limit <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d := l.Allow(r.Context(), scope+":"+clientIP(r), limit)

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(d.ResetAt.Unix(), 10))

			if !d.Allowed {
				retry := int(time.Until(d.ResetAt).Seconds()) + 1
				if retry < 1 {
					retry = 1
				}
				h.Set("Retry-After", strconv.Itoa(retry))
				status, body := pnet.Error(perr.TooManyRequestsf("rate limit exceeded"), pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP reads RemoteAddr, which RealIP has already rewritten when proxied
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
