// Package authtest mints HS256 tokens for tests
package authtest

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the knobs tests turn
type Claims struct {
	Subject  string
	Issuer   string
	Audience string
	KID      string
	Issued   time.Time
	TTL      time.Duration
}

// Token signs c with secret; zero fields get the gateway defaults
func Token(t testing.TB, secret string, c Claims) string {
	t.Helper()
	if c.Issuer == "" {
		c.Issuer = "ur4more-gateway"
	}
	if c.Audience == "" {
		c.Audience = "ur4more-apps"
	}
	if c.Issued.IsZero() {
		c.Issued = time.Now()
	}
	if c.TTL == 0 {
		c.TTL = time.Hour
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   c.Subject,
		Issuer:    c.Issuer,
		Audience:  jwt.ClaimStrings{c.Audience},
		IssuedAt:  jwt.NewNumericDate(c.Issued),
		ExpiresAt: jwt.NewNumericDate(c.Issued.Add(c.TTL)),
	})
	if c.KID != "" {
		tok.Header["kid"] = c.KID
	}
	s, err := tok.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

// Bearer is Token formatted as an Authorization header value
func Bearer(t testing.TB, secret string, c Claims) string {
	t.Helper()
	return "Bearer " + Token(t, secret, c)
}
