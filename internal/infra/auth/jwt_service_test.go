package auth

import (
	"testing"
	"time"

	"relay/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newAuthTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL: 15 * time.Minute,
			LoginKeyTTL:    30 * 24 * time.Hour,
		},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newAuthTestConfig())
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	userID := uuid.New()

	accessToken, err := jwtService.GenerateToken(userID, "dovahkiin")
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	claims, err := jwtService.ValidateToken(accessToken)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "dovahkiin", claims.UserName)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newAuthTestConfig())
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	jwtService, err := NewJWTService(newAuthTestConfig())
	assert.NoError(t, err)

	otherCfg := newAuthTestConfig()
	otherCfg.SecretKey.Access = "a_completely_different_secret_key_for_testing"
	otherService, err := NewJWTService(otherCfg)
	assert.NoError(t, err)

	token, err := jwtService.GenerateToken(uuid.New(), "dovahkiin")
	assert.NoError(t, err)

	claims, err := otherService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_MissingSecret(t *testing.T) {
	jwtService, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, jwtService)
}

func TestJWTService_LoginKeys(t *testing.T) {
	jwtService, err := NewJWTService(newAuthTestConfig())
	assert.NoError(t, err)

	first, err := jwtService.GenerateLoginKey()
	assert.NoError(t, err)
	assert.NotEmpty(t, first)

	second, err := jwtService.GenerateLoginKey()
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)

	// The stored digest never equals the plaintext key and is stable.
	assert.NotEqual(t, first, jwtService.HashKey(first))
	assert.Equal(t, jwtService.HashKey(first), jwtService.HashKey(first))

	assert.Equal(t, 30*24*time.Hour, jwtService.GetLoginKeyDuration())
}
