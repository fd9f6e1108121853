package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"github.com/pkg/errors"
	"golang.org/x/crypto/pbkdf2"
)

const (
	hashIterations = 10000
	hashKeyLength  = 30
	saltLength     = 16
)

// GenerateHash derives a PBKDF2-SHA256 hash for a password with a fresh
// random salt. Both return values are hex encoded for storage.
func GenerateHash(plain string) (hashed string, salt string, err error) {
	rawSalt := make([]byte, saltLength)
	if _, err := rand.Read(rawSalt); err != nil {
		return "", "", errors.Wrap(err, "generating password salt")
	}
	key := pbkdf2.Key([]byte(plain), rawSalt, hashIterations, hashKeyLength, sha256.New)
	return hex.EncodeToString(key), hex.EncodeToString(rawSalt), nil
}

// CheckHash verifies a password against a stored hash and its salt.
func CheckHash(plain, hashed, salt string) bool {
	rawSalt, err := hex.DecodeString(salt)
	if err != nil {
		return false
	}
	stored, err := hex.DecodeString(hashed)
	if err != nil {
		return false
	}
	key := pbkdf2.Key([]byte(plain), rawSalt, hashIterations, hashKeyLength, sha256.New)
	return subtle.ConstantTimeCompare(key, stored) == 1
}
