package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams() Argon2Params {
	// Low-cost parameters so the suite stays fast; format is unaffected.
	return Argon2Params{Memory: 8 * 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 64}
}

func TestHashFormatAndUniqueSalt(t *testing.T) {
	t.Parallel()
	h := NewArgon2Hasher(testParams())

	enc, err := h.Hash("Demo1234")
	require.NoError(t, err)

	salt, hash, ok := strings.Cut(enc, ":")
	require.True(t, ok, "credential must be salt:hash")
	assert.Len(t, salt, 32, "16-byte salt hex-encoded")
	assert.Len(t, hash, 128, "64-byte hash hex-encoded")

	enc2, err := h.Hash("Demo1234")
	require.NoError(t, err)
	assert.NotEqual(t, enc, enc2, "each Hash call must draw a fresh salt")
}

func TestVerify(t *testing.T) {
	t.Parallel()
	h := NewArgon2Hasher(testParams())

	enc, err := h.Hash("Demo1234")
	require.NoError(t, err)

	assert.True(t, h.Verify("Demo1234", enc))
	assert.False(t, h.Verify("demo1234", enc))
	assert.False(t, h.Verify("", enc))
}

func TestVerifyMalformedCredential(t *testing.T) {
	t.Parallel()
	h := NewArgon2Hasher(testParams())

	for _, enc := range []string{
		"",
		"no-delimiter",
		"deadbeef:",                     // hash too short
		":deadbeef",                     // salt too short
		"zzzz:deadbeef",                 // invalid hex salt
		strings.Repeat("ab", 16) + ":zz", // invalid hex hash
		strings.Repeat("ab", 8) + ":" + strings.Repeat("cd", 64), // salt wrong length
	} {
		assert.False(t, h.Verify("Demo1234", enc), "malformed %q must verify false", enc)
	}
}
