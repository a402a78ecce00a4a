package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_BuiltinsRegistered(t *testing.T) {
	for _, id := range []string{"aes-256-cbc", "aes-192-cbc", "aes-128-cbc"} {
		assert.True(t, IsRegistered(id), "expected %s to be registered", id)
	}
	assert.False(t, IsRegistered("rot13"))
	assert.False(t, IsRegistered(""))
}

func TestRegistry_LookupReturnsKeyLen(t *testing.T) {
	tests := []struct {
		id     string
		keyLen int
	}{
		{"aes-256-cbc", 32},
		{"aes-192-cbc", 24},
		{"aes-128-cbc", 16},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			a, ok := Lookup(tt.id)
			require.True(t, ok)
			assert.Equal(t, tt.id, a.ID)
			assert.Equal(t, tt.keyLen, a.KeyLen)
			assert.NotEmpty(t, a.Description)
		})
	}
}

func TestRegistry_ListRegisteredSorted(t *testing.T) {
	algs := ListRegistered()
	require.GreaterOrEqual(t, len(algs), 3)

	for i := 1; i < len(algs); i++ {
		assert.Less(t, algs[i-1].ID, algs[i].ID, "list must be sorted by ID")
	}
}

func TestRegistry_RegisterCustom(t *testing.T) {
	Register(Algorithm{ID: "test-cipher", Description: "test only", KeyLen: 32})

	a, ok := Lookup("test-cipher")
	require.True(t, ok)
	assert.Equal(t, "test only", a.Description)
}
