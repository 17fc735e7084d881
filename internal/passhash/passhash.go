// Package passhash derives and verifies password hashes with
// PBKDF2-HMAC-SHA256. The encoded form is self-describing:
//
//	pbkdf2_sha256$ITERATIONS$B64(SALT)$B64(KEY)
//
// with unpadded URL-safe base64, so the iteration count can be raised
// without invalidating stored hashes.
package passhash

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/minjongk/teamauth/internal/common"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// Tag identifies the algorithm in the encoded form.
	Tag = "pbkdf2_sha256"

	// DefaultIterations is the PBKDF2 cost for newly created hashes.
	DefaultIterations = 200_000

	saltBytes = 16
	keyBytes  = 32
)

// Hasher hashes and verifies passwords. The zero value is not usable; use
// New.
type Hasher struct {
	iterations int
}

// New returns a Hasher with the given PBKDF2 iteration count. Non-positive
// values fall back to DefaultIterations.
func New(iterations int) *Hasher {
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	return &Hasher{iterations: iterations}
}

// Hash derives an encoded hash from password using a fresh random salt.
// Two calls with the same password produce different encodings.
func (h *Hasher) Hash(password string) string {
	salt := common.GenerateRandByteArray(saltBytes)
	dk := pbkdf2.Key([]byte(password), salt, h.iterations, keyBytes, sha256.New)
	return fmt.Sprintf("%s$%d$%s$%s", Tag, h.iterations, b64(salt), b64(dk))
}

// Verify reports whether password matches the encoded hash. Any malformed
// encoding yields false; parse failures are indistinguishable from a wrong
// password. The derived key is recomputed with the iteration count and key
// length stored in the encoding and compared in constant time.
func (h *Hasher) Verify(password, encoded string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 4 || parts[0] != Tag {
		return false
	}

	iterations, err := strconv.Atoi(parts[1])
	if err != nil || iterations <= 0 {
		return false
	}

	salt, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		return false
	}

	expected, err := base64.RawURLEncoding.DecodeString(parts[3])
	if err != nil || len(expected) == 0 {
		return false
	}

	dk := pbkdf2.Key([]byte(password), salt, iterations, len(expected), sha256.New)
	ok := subtle.ConstantTimeCompare(dk, expected) == 1
	common.WipeByteArray(dk)
	return ok
}

func b64(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}
