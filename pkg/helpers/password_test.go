package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", hash)
	require.NotContains(t, hash, "s3cret")

	require.True(t, CompareHashAndPassword(hash, "s3cret"))
	require.False(t, CompareHashAndPassword(hash, "s3cret "))
	require.False(t, CompareHashAndPassword(hash, "other"))
}

func TestHashPassword_SaltUniqueness(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("same-password")
	require.NoError(t, err)
	h2, err := HashPassword("same-password")
	require.NoError(t, err)

	require.NotEqual(t, h1, h2)
	require.True(t, CompareHashAndPassword(h1, "same-password"))
	require.True(t, CompareHashAndPassword(h2, "same-password"))
}

func TestCompareHashAndPassword_MalformedDigest(t *testing.T) {
	t.Parallel()

	require.False(t, CompareHashAndPassword("", "anything"))
	require.False(t, CompareHashAndPassword("not-a-bcrypt-digest", "anything"))
	require.False(t, CompareHashAndPassword("$2a$zz$broken", "anything"))
}
