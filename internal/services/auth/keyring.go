// Package auth verifies the HS256 bearer tokens minted by the app gateway
package auth

import (
	"strings"

	"contentgate/internal/platform/config"
)

// Defaults for the JWT_* variables
const (
	DefaultKID      = "v1"
	DefaultSecret   = "dev-secret-change-me"
	DefaultIssuer   = "ur4more-gateway"
	DefaultAudience = "ur4more-apps"

	// PreviousKID names the rotated-out secret read from JWT_SECRET_V0
	PreviousKID = "v0"
)

// Keyring maps a key id to its HMAC secret
type Keyring map[string][]byte

// KeyringFromConfig holds the current key under JWT_KID and, when JWT_SECRET_V0 is set,
// the previous key under "v0". The current key wins if both share a kid.
func KeyringFromConfig(cfg config.Conf) (Keyring, string) {
	kid := strings.TrimSpace(cfg.MayString("JWT_KID", DefaultKID))
	if kid == "" {
		kid = DefaultKID
	}
	ring := Keyring{}
	if old := cfg.MayString("JWT_SECRET_V0", ""); old != "" {
		ring[PreviousKID] = []byte(old)
	}
	ring[kid] = []byte(cfg.MayString("JWT_SECRET_V1", DefaultSecret))
	return ring, kid
}

// Secret returns the key for kid
func (k Keyring) Secret(kid string) ([]byte, bool) {
	s, ok := k[kid]
	return s, ok && len(s) > 0
}
