package httpkit

import (
	"net/http"
	"strings"

	perrs "contentgate/internal/platform/errors"
	pnet "contentgate/internal/platform/net"
)

// MsgMissingBearer is returned whenever no usable bearer credential is present
const MsgMissingBearer = "Missing bearer token"

// Subject returns the authenticated token subject from the request context
func Subject(r *http.Request) (string, error) {
	sub := pnet.Subject(r.Context())
	if sub == "" {
		return "", perrs.Unauthorizedf(MsgMissingBearer)
	}
	return sub, nil
}

// MustSubject returns the subject or panics
// only use on routes protected by the auth middleware
func MustSubject(r *http.Request) string {
	sub, err := Subject(r)
	if err != nil {
		panic(err)
	}
	return sub
}

// JWT returns the raw bearer token from the Authorization header
func JWT(r *http.Request) (string, error) {
	authz := r.Header.Get("Authorization")
	if strings.TrimSpace(authz) == "" {
		return "", perrs.Unauthorizedf(MsgMissingBearer)
	}
	// case-insensitive Bearer prefix (don't trim the whole header first)
	const prefix = "bearer "
	if len(authz) < len(prefix) || strings.ToLower(authz[:len(prefix)]) != prefix {
		return "", perrs.Unauthorizedf(MsgMissingBearer)
	}
	raw := strings.TrimSpace(authz[len(prefix):])
	if raw == "" {
		return "", perrs.Unauthorizedf(MsgMissingBearer)
	}
	return raw, nil
}
