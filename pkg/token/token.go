package token

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
)

// Generate returns a crypto-secure random string of length n
// The random string is contains the following characters:
// ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_
func Generate(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("token length must be greater than zero")
	}

	// base64 increases size by ~33%
	b := make([]byte, n*3/4+1)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(b)[0:n], nil
}

// Equal compares two tokens in constant time
func Equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
