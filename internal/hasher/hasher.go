// Package hasher derives and verifies password credentials using scrypt.
// Stored form is "<derived-hex>.<salt-hex>".
package hasher

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// scrypt parameters. Changing these invalidates every stored credential,
// so they are fixed rather than configurable.
const (
	scryptN = 32768
	scryptR = 8
	scryptP = 1

	saltLen = 16
	keyLen  = 64
)

// ErrMalformedHash reports a stored credential that cannot be parsed
// (missing separator or non-hex content). Verification against such a
// value is a hard error, never a silent false.
var ErrMalformedHash = errors.New("malformed stored password hash")

// Hash derives a verifier for password with a fresh random salt.
func Hash(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}

	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return "", fmt.Errorf("derive key: %w", err)
	}

	return hex.EncodeToString(key) + "." + hex.EncodeToString(salt), nil
}

// Verify re-derives a key from password and the salt recovered from stored
// and compares it to the stored key in constant time. A mismatch returns
// (false, nil); an unparseable stored value returns ErrMalformedHash.
func Verify(password, stored string) (bool, error) {
	storedKey, salt, err := decode(stored)
	if err != nil {
		return false, err
	}

	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return false, fmt.Errorf("derive key: %w", err)
	}

	return subtle.ConstantTimeCompare(key, storedKey) == 1, nil
}

// decode splits stored into its derived-key and salt components.
func decode(stored string) (key, salt []byte, err error) {
	keyHex, saltHex, ok := strings.Cut(stored, ".")
	if !ok || keyHex == "" || saltHex == "" {
		return nil, nil, fmt.Errorf("%w: missing separator", ErrMalformedHash)
	}
	key, err = hex.DecodeString(keyHex)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: derived key: %v", ErrMalformedHash, err)
	}
	salt, err = hex.DecodeString(saltHex)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: salt: %v", ErrMalformedHash, err)
	}
	return key, salt, nil
}
