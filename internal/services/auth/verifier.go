package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"contentgate/internal/modkit/httpkit"
	"contentgate/internal/platform/config"
	perr "contentgate/internal/platform/errors"
	ptime "contentgate/internal/platform/time"
)

// Failure messages surfaced in the 401 envelope
const (
	MsgUnknownKID   = "Unknown key id"
	MsgTokenExpired = "Token expired"
	MsgInvalidToken = "Invalid token"
)

var errUnknownKID = errors.New("unknown kid")

// Claims are the verified token claims
type Claims struct {
	Subject   string    `json:"sub"`
	Issuer    string    `json:"iss"`
	Audience  []string  `json:"aud"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
	KID       string    `json:"-"`
}

// Options configures a Verifier
type Options struct {
	Keys       Keyring
	DefaultKID string
	Issuer     string
	Audience   string
	Clock      ptime.Clock
}

// Verifier checks bearer tokens against the keyring
type Verifier struct {
	keys   Keyring
	kid    string
	parser *jwt.Parser
}

// New builds a Verifier; empty issuer/audience fall back to the defaults
func New(o Options) *Verifier {
	if o.DefaultKID == "" {
		o.DefaultKID = DefaultKID
	}
	if o.Issuer == "" {
		o.Issuer = DefaultIssuer
	}
	if o.Audience == "" {
		o.Audience = DefaultAudience
	}
	if o.Clock == nil {
		o.Clock = ptime.System
	}
	clock := o.Clock
	return &Verifier{
		keys: o.Keys,
		kid:  o.DefaultKID,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(o.Issuer),
			jwt.WithAudience(o.Audience),
			jwt.WithExpirationRequired(),
			jwt.WithTimeFunc(func() time.Time { return clock.Now() }),
		),
	}
}

// FromConfig reads JWT_KID, JWT_SECRET_V1, JWT_SECRET_V0, JWT_ISS and JWT_AUD
func FromConfig(cfg config.Conf) *Verifier {
	ring, kid := KeyringFromConfig(cfg)
	return New(Options{
		Keys:       ring,
		DefaultKID: kid,
		Issuer:     cfg.MayString("JWT_ISS", DefaultIssuer),
		Audience:   cfg.MayString("JWT_AUD", DefaultAudience),
	})
}

// Verify checks the signature, issuer, audience and expiry of raw
func (v *Verifier) Verify(raw string) (Claims, error) {
	var kid string
	var rc jwt.RegisteredClaims
	_, err := v.parser.ParseWithClaims(raw, &rc, func(t *jwt.Token) (any, error) {
		kid = v.kid
		if h, ok := t.Header["kid"].(string); ok && h != "" {
			kid = h
		}
		secret, ok := v.keys.Secret(kid)
		if !ok {
			return nil, errUnknownKID
		}
		return secret, nil
	})
	switch {
	case err == nil:
	case errors.Is(err, errUnknownKID):
		return Claims{}, perr.Unauthorizedf(MsgUnknownKID)
	case errors.Is(err, jwt.ErrTokenInvalidIssuer), errors.Is(err, jwt.ErrTokenInvalidAudience):
		return Claims{}, perr.Wrap(err, perr.ErrorCodeUnauthorized, MsgInvalidToken)
	case errors.Is(err, jwt.ErrTokenExpired):
		return Claims{}, perr.Unauthorizedf(MsgTokenExpired)
	default:
		return Claims{}, perr.Wrap(err, perr.ErrorCodeUnauthorized, MsgInvalidToken)
	}
	if rc.Subject == "" {
		return Claims{}, perr.Unauthorizedf(MsgInvalidToken)
	}

	c := Claims{Subject: rc.Subject, Issuer: rc.Issuer, Audience: rc.Audience, KID: kid}
	if rc.IssuedAt != nil {
		c.IssuedAt = rc.IssuedAt.Time
	}
	if rc.ExpiresAt != nil {
		c.ExpiresAt = rc.ExpiresAt.Time
	}
	return c, nil
}

// Parse implements middleware.AuthPort
func (v *Verifier) Parse(r *http.Request) (string, error) {
	raw, err := httpkit.JWT(r)
	if err != nil {
		return "", err
	}
	c, err := v.Verify(raw)
	if err != nil {
		return "", err
	}
	return c.Subject, nil
}
