package helpers

import (
	"crypto/rand"
	"encoding/base64"
)

// NewSessionToken returns an unguessable opaque bearer token built
// from n bytes of crypto/rand, base64url encoded without padding.
// 32 bytes gives 256 bits of entropy.
func NewSessionToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
