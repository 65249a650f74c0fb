package token

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// Size is the number of random bytes in a session token (256 bits).
const Size = 32

// Generate returns a new opaque session token: Size bytes from crypto/rand,
// hex encoded.
func Generate() (string, error) {
	b := make([]byte, Size)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrGenerate, err)
	}
	return hex.EncodeToString(b), nil
}

// LookupKey derives the server-side identity of a token: the lowercase hex
// SHA-256 digest of its bytes. The result is always 64 characters long.
func LookupKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
