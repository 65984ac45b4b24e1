package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "unit-test-secret"

func TestGenerateAndParse(t *testing.T) {
	token, err := Generate(secret, "sdts.mails@gmail.com", "donor-breeze", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := Parse(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "sdts.mails@gmail.com", email)
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := Generate(secret, "sdts.mails@gmail.com", "donor-breeze", 60)
	require.NoError(t, err)

	_, err = Parse("another-secret", token)
	assert.Error(t, err)
}

func TestParse_ExpiredToken(t *testing.T) {
	token, err := Generate(secret, "sdts.mails@gmail.com", "donor-breeze", -1)
	require.NoError(t, err)

	_, err = Parse(secret, token)
	assert.Error(t, err)
}

func TestParse_Garbage(t *testing.T) {
	_, err := Parse(secret, "not.a.token")
	assert.Error(t, err)
}

func TestGenerate_EmptySecret(t *testing.T) {
	_, err := Generate("", "sdts.mails@gmail.com", "donor-breeze", 60)
	assert.Error(t, err)
}
