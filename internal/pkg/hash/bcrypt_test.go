package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHashVerify(t *testing.T) {
	h := NewBcrypt(4, "")

	hashed, err := h.Hash("Str0ngPass!")
	require.NoError(t, err)

	assert.True(t, h.Verify(string(hashed), "Str0ngPass!"))
	assert.False(t, h.Verify(string(hashed), "WrongPass1!"))
}

func TestBcryptPepper(t *testing.T) {
	peppered := NewBcrypt(4, "pepper")
	plain := NewBcrypt(4, "")

	hashed, err := peppered.Hash("Str0ngPass!")
	require.NoError(t, err)

	assert.True(t, peppered.Verify(string(hashed), "Str0ngPass!"))
	assert.False(t, plain.Verify(string(hashed), "Str0ngPass!"))
}
