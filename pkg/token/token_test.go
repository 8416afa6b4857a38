package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndSubject(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	tok, err := Generate("admin", secret)
	require.NoError(t, err)

	subject, err := Subject(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)
}

func TestSubject_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := Generate("admin", []byte("right-secret"))
	require.NoError(t, err)

	_, err = Subject(tok, []byte("wrong-secret"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestSubject_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)

	_, err = Subject(tok, secret)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestSubject_Malformed(t *testing.T) {
	t.Parallel()

	_, err := Subject("not.a.jwt", []byte("k"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestSubject_MissingSubject(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)

	_, err = Subject(tok, secret)
	assert.ErrorIs(t, err, ErrInvalid)
}
