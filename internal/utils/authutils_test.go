package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndValidateToken(t *testing.T) {
	secret := []byte("test-secret")

	token, err := SignToken(secret, 42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	data, err := ValidateToken(secret, token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, data.UserID)
	assert.Positive(t, data.Exp)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := SignToken([]byte("test-secret"), 42)
	require.NoError(t, err)

	_, err = ValidateToken([]byte("other-secret"), token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken([]byte("test-secret"), "not.a.token")
	assert.Error(t, err)
}

func TestSanitize(t *testing.T) {
	desc := "  padded  "
	req := struct {
		Name string
		Desc *string
		Tags []string
		Num  int
	}{
		Name: "  ana  ",
		Desc: &desc,
		Tags: []string{" a ", "b "},
		Num:  3,
	}

	Sanitize(&req)

	assert.Equal(t, "ana", req.Name)
	assert.Equal(t, "padded", *req.Desc)
	assert.Equal(t, []string{"a", "b"}, req.Tags)
	assert.Equal(t, 3, req.Num)
}

func TestSanitizeNilPointer(t *testing.T) {
	req := struct {
		Desc *string
	}{}

	assert.NotPanics(t, func() { Sanitize(&req) })
	assert.Nil(t, req.Desc)
}
