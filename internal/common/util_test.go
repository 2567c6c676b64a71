package common

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeRandHexString(t *testing.T) {
	for _, n := range []int{0, 1, 32} {
		s, err := MakeRandHexString(n)
		require.NoError(t, err)
		assert.Len(t, s, 2*n)

		raw, err := hex.DecodeString(s)
		require.NoError(t, err)
		assert.Len(t, raw, n)
	}
}

func TestMakeRandHexString_RefreshTokensDiffer(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 64; i++ {
		s, err := MakeRandHexString(32)
		require.NoError(t, err)
		require.False(t, seen[s], "duplicate token after %d draws", i)
		seen[s] = true
	}
}

func TestGenerateRandByteArray(t *testing.T) {
	salt := GenerateRandByteArray(16)
	assert.Len(t, salt, 16)
	assert.NotEqual(t, salt, GenerateRandByteArray(16))
	assert.Empty(t, GenerateRandByteArray(0))
}

func TestWipeByteArray(t *testing.T) {
	pw := []byte("hunter2")
	WipeByteArray(pw)
	assert.Equal(t, make([]byte, 7), pw)

	assert.NotPanics(t, func() { WipeByteArray(nil) })
}
