package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_SaltedPerCall(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("hunter22")
	require.NoError(t, err)

	second, err := HashPassword("hunter22")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "two hashes of the same password must differ")
}

func TestVerifyPassword(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("correct horse")
	require.NoError(t, err)

	ok, err := VerifyPassword("correct horse", digest)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("wrong horse", digest)
	require.NoError(t, err)
	assert.False(t, ok, "wrong password must verify false, not error")
}

func TestVerifyPassword_MalformedDigest(t *testing.T) {
	t.Parallel()

	_, err := VerifyPassword("anything", "not-an-encoded-digest")
	assert.Error(t, err)
}
