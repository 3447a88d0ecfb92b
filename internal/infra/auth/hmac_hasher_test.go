package auth

import (
	"testing"

	domainerrors "linkup/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHMACHasher_Hash_Shape(t *testing.T) {
	hasher := NewHMACHasher()

	hash, salt, err := hasher.Hash("Password123!")
	require.NoError(t, err)

	assert.Len(t, hash, 64)
	assert.Len(t, salt, 128)
}

func TestHMACHasher_Hash_SaltIsFreshPerCall(t *testing.T) {
	hasher := NewHMACHasher()

	hash1, salt1, err := hasher.Hash("Password123!")
	require.NoError(t, err)
	hash2, salt2, err := hasher.Hash("Password123!")
	require.NoError(t, err)

	// Same password, different salt, therefore different hash.
	assert.NotEqual(t, salt1, salt2)
	assert.NotEqual(t, hash1, hash2)
}

func TestHMACHasher_Hash_RejectsBlankPassword(t *testing.T) {
	hasher := NewHMACHasher()

	for _, password := range []string{"", "   ", "\t\n"} {
		hash, salt, err := hasher.Hash(password)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
		assert.Nil(t, hash)
		assert.Nil(t, salt)
	}
}

func TestHMACHasher_Verify_RoundTrip(t *testing.T) {
	hasher := NewHMACHasher()

	hash, salt, err := hasher.Hash("Password123!")
	require.NoError(t, err)

	match, err := hasher.Verify("Password123!", hash, salt)
	require.NoError(t, err)
	assert.True(t, match)
}

func TestHMACHasher_Verify_WrongPassword(t *testing.T) {
	hasher := NewHMACHasher()

	hash, salt, err := hasher.Hash("Password123!")
	require.NoError(t, err)

	match, err := hasher.Verify("Password123?", hash, salt)
	require.NoError(t, err)
	assert.False(t, match)
}

func TestHMACHasher_Verify_RejectsBlankPassword(t *testing.T) {
	hasher := NewHMACHasher()

	hash, salt, err := hasher.Hash("Password123!")
	require.NoError(t, err)

	match, err := hasher.Verify(" ", hash, salt)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
	assert.False(t, match)
}

func TestHMACHasher_Verify_RejectsMalformedStoredCredential(t *testing.T) {
	hasher := NewHMACHasher()

	hash, salt, err := hasher.Hash("Password123!")
	require.NoError(t, err)

	tests := []struct {
		name string
		hash []byte
		salt []byte
	}{
		{"hash too short", hash[:63], salt},
		{"hash too long", append(append([]byte{}, hash...), 0x00), salt},
		{"salt too short", hash, salt[:127]},
		{"salt too long", hash, append(append([]byte{}, salt...), 0x00)},
		{"empty hash", nil, salt},
		{"empty salt", hash, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, err := hasher.Verify("Password123!", tt.hash, tt.salt)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrMalformedCredential))
			assert.False(t, match)
		})
	}
}
