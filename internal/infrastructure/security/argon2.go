// Package security implements password hashing and verification.
package security

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/ufernand853/seguros-main-sub000/internal/application/ports"
)

// Argon2Params configure the Argon2id derivation.
type Argon2Params struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultArgon2Params returns OWASP-recommended defaults for Argon2id
// with the 64-byte key the stored credential format expects.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Memory:      64 * 1024, // 64 MiB
		Iterations:  3,
		Parallelism: 2,
		SaltLength:  16,
		KeyLength:   64,
	}
}

// Argon2Hasher implements ports.PasswordHasher. Credentials are stored
// as "salt:hash", both hex-encoded, with a fresh random salt per Hash call.
type Argon2Hasher struct {
	params Argon2Params
}

func NewArgon2Hasher(params Argon2Params) *Argon2Hasher {
	return &Argon2Hasher{params: params}
}

func (h *Argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	hash := h.derive([]byte(password), salt)
	return fmt.Sprintf("%s:%s", hex.EncodeToString(salt), hex.EncodeToString(hash)), nil
}

// Verify recomputes the derivation and compares in constant time.
// Malformed stored credentials (missing delimiter, bad hex, wrong lengths)
// verify as false rather than erroring.
func (h *Argon2Hasher) Verify(password, encoded string) bool {
	saltHex, hashHex, ok := strings.Cut(encoded, ":")
	if !ok {
		return false
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil || uint32(len(salt)) != h.params.SaltLength {
		return false
	}
	expected, err := hex.DecodeString(hashHex)
	if err != nil || uint32(len(expected)) != h.params.KeyLength {
		return false
	}
	got := h.derive([]byte(password), salt)
	return subtle.ConstantTimeCompare(got, expected) == 1
}

func (h *Argon2Hasher) derive(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, h.params.Iterations, h.params.Memory, h.params.Parallelism, h.params.KeyLength)
}

var _ ports.PasswordHasher = (*Argon2Hasher)(nil)
