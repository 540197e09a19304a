package security

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndVerify(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("longpassword123")
	require.NoError(t, err)
	assert.NotEqual(t, "longpassword123", hash)

	assert.True(t, h.Verify("longpassword123", hash))
	assert.False(t, h.Verify("wrong", hash))
}

func TestHasher_SaltsEachHash(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	a, err := h.Hash("same-password")
	require.NoError(t, err)
	b, err := h.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestHasher_LongPasswordUsesFirst72Bytes(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)
	long := strings.Repeat("a", 100)

	hash, err := h.Hash(long)
	require.NoError(t, err)

	assert.True(t, h.Verify(long, hash))
	assert.True(t, h.Verify(strings.Repeat("a", 72)+"different tail", hash))
	assert.False(t, h.Verify(strings.Repeat("a", 71), hash))
}

func TestHasher_RejectsEmptyPassword(t *testing.T) {
	_, err := NewHasher(bcrypt.MinCost).Hash("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestHasher_MalformedHashIsMismatch(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	assert.False(t, h.Verify("anything", ""))
	assert.False(t, h.Verify("anything", "not-a-bcrypt-hash"))
}

func TestNewHasher_OutOfRangeCost(t *testing.T) {
	h := NewHasher(99)
	hash, err := h.Hash("pw")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, DefaultPasswordCost, cost)
}

func TestGenerateOpaqueToken(t *testing.T) {
	tok, err := GenerateOpaqueToken(DefaultTokenBytes)
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(tok)
	require.NoError(t, err)
	assert.Len(t, raw, DefaultTokenBytes)

	other, err := GenerateOpaqueToken(0)
	require.NoError(t, err)
	assert.NotEqual(t, tok, other)
}

func TestHashToken(t *testing.T) {
	// sha256("abc")
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", HashToken("abc"))
	assert.Equal(t, HashToken("token"), HashToken("token"))
	assert.NotEqual(t, HashToken("token"), HashToken("token2"))
	assert.Len(t, HashToken(""), 64)
}
