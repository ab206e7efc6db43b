package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/config"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/models"
)

func TestGenerateJWTUsesConfiguredSecretAndDuration(t *testing.T) {
	svc := NewAuthService(config.JWTConfig{
		Secret:        "configured-secret",
		TokenDuration: 2 * time.Hour,
	})
	user := models.User{
		ID:             "user-1",
		OrganizationID: "org-1",
		Email:          "alice@example.com",
	}

	tokenStr, err := svc.GenerateJWT(user)
	require.NoError(t, err)

	token, err := jwt.Parse(tokenStr, func(*jwt.Token) (interface{}, error) {
		return []byte("configured-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "org-1", claims["organization_id"])
	assert.Equal(t, "alice@example.com", claims["email"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), exp.Time, time.Minute)
}

func TestGenerateJWTRejectedByWrongSecret(t *testing.T) {
	svc := NewAuthService(config.JWTConfig{Secret: "configured-secret", TokenDuration: time.Hour})

	tokenStr, err := svc.GenerateJWT(models.User{ID: "user-1", OrganizationID: "org-1"})
	require.NoError(t, err)

	_, err = jwt.Parse(tokenStr, func(*jwt.Token) (interface{}, error) {
		return []byte("some-other-secret"), nil
	})
	assert.Error(t, err)
}
