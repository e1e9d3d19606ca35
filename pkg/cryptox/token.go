package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// SecretSize256 provides 256 bits of entropy, the minimum for HS256 keys.
const SecretSize256 = 32

// RandomBytes returns size bytes from the system CSPRNG.
func RandomBytes(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("secret size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return buf, nil
}

// DecodeSecret accepts either an unpadded base64url secret of at least
// SecretSize256 bytes or a raw passphrase and returns the key bytes to sign
// with.
func DecodeSecret(s string) []byte {
	if b, err := base64.RawURLEncoding.DecodeString(s); err == nil && len(b) >= SecretSize256 {
		return b
	}
	return []byte(s)
}
