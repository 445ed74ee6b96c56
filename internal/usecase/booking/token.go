package booking

import (
	"crypto/rand"
	"encoding/base64"
)

// newCancelToken mints the opaque capability embedded in cancellation links.
func newCancelToken() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
