package jwt_test

import (
	"testing"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rationshop-api/pkg/jwt"
)

const secret = "test-secret"

func TestGenerateParse_RoundTrip(t *testing.T) {
	in := jwt.Session{UserID: "u1", Username: "ravi", Role: "manager", ShopID: "s1"}
	tok, err := jwt.Generate(secret, in, "rationshop", 5)
	require.NoError(t, err)

	out, err := jwt.Parse(secret, "rationshop", tok)
	require.NoError(t, err)
	assert.Equal(t, in, *out)
}

func TestParse_Rejects(t *testing.T) {
	tok, err := jwt.Generate(secret, jwt.Session{UserID: "u1", Role: "admin"}, "rationshop", 5)
	require.NoError(t, err)

	_, err = jwt.Parse("other-secret", "rationshop", tok)
	assert.Error(t, err, "wrong secret")

	_, err = jwt.Parse(secret, "someone-else", tok)
	assert.Error(t, err, "wrong issuer")

	expired, err := jwt.Generate(secret, jwt.Session{UserID: "u1", Role: "admin"}, "rationshop", -1)
	require.NoError(t, err)
	_, err = jwt.Parse(secret, "rationshop", expired)
	assert.ErrorIs(t, err, gojwt.ErrTokenExpired)

	_, err = jwt.Parse(secret, "", "not-a-token")
	assert.Error(t, err)
}

func TestEmptySecret(t *testing.T) {
	_, err := jwt.Generate("", jwt.Session{UserID: "u1"}, "", 5)
	assert.ErrorIs(t, err, jwt.ErrEmptySecret)
	_, err = jwt.Parse("", "", "x")
	assert.ErrorIs(t, err, jwt.ErrEmptySecret)
}
