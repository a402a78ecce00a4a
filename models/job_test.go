package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMode_Inverse(t *testing.T) {
	assert.Equal(t, Decrypt, Encrypt.Inverse())
	assert.Equal(t, Encrypt, Decrypt.Inverse())
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "encrypt", Encrypt.String())
	assert.Equal(t, "decrypt", Decrypt.String())
	assert.Equal(t, "unknown", Mode(0).String())
}

func TestCredentials_Equal(t *testing.T) {
	base := Credentials{Passphrase: "secret", Iterations: 10000}

	assert.True(t, base.Equal(Credentials{Passphrase: "secret", Iterations: 10000}))
	assert.False(t, base.Equal(Credentials{Passphrase: "Secret", Iterations: 10000}))
	assert.False(t, base.Equal(Credentials{Passphrase: "secret", Iterations: 10001}))
	assert.False(t, base.Equal(Credentials{}))
}
