package middleware

import (
	"net/http"

	"contentgate/internal/platform/logger"
	pnet "contentgate/internal/platform/net"
)

// AuthPort is implemented by the token verifier
type AuthPort interface {
	// Parse returns the authenticated subject or an error
	Parse(r *http.Request) (subject string, err error)
}

// Auth rejects requests the port cannot authenticate; a nil port passes through
func Auth(p AuthPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			sub, err := p.Parse(r)
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			ctx := pnet.WithSubject(r.Context(), sub)
			ctx = logger.WithRequest(ctx, pnet.RequestID(ctx), sub)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
