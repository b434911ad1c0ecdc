package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veritasbank/veritas/internal/pkg/models"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "veritas",
		},
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testConfig()

	token, expiresAt, err := GenerateToken("auth0|user-1", cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	claims, err := ValidateToken(token, cfg.JWT.Secret)
	require.NoError(t, err)

	userID, err := ExtractUserID(claims)
	require.NoError(t, err)
	assert.Equal(t, "auth0|user-1", userID)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := testConfig()

	token, _, err := GenerateToken("auth0|user-1", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.Error(t, err)
}

func TestExtractUserID_MissingClaim(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.Secret = "s"

	token, _, err := GenerateToken("", cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(token, "s")
	require.NoError(t, err)

	_, err = ExtractUserID(claims)
	assert.Error(t, err)
}
