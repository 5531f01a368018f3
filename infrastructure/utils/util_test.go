package utils_test

import (
	"testing"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"videotube/infrastructure/utils"
)

func TestGenerateToken(t *testing.T) {
	secretKey := "test-secret"

	tokenString, err := utils.GenerateToken(map[string]interface{}{
		"userName": "gopher",
		"iss":      "abc123",
	}, secretKey)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secretKey), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, "gopher", claims["userName"])
	assert.Equal(t, "abc123", claims["iss"])
}

func TestGenerateToken_WrongKeyRejected(t *testing.T) {
	tokenString, err := utils.GenerateToken(map[string]interface{}{"iss": "abc123"}, "secret-one")
	require.NoError(t, err)

	_, err = jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret-two"), nil
	})
	assert.Error(t, err)
}

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := utils.HashPassword("hunter2hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", hashed)

	assert.True(t, utils.CheckPassword(hashed, "hunter2hunter2"))
	assert.False(t, utils.CheckPassword(hashed, "hunter3hunter3"))
}
