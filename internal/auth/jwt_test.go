package auth

import (
	"testing"
	"time"

	"github.com/SeakMengs/NorthwindSite/internal/config"
	"github.com/SeakMengs/NorthwindSite/internal/constant"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWT_SECRET:      "test-secret",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	}
}

// Perform token generation and verify the generated token to ensure VerifyJwtToken is correct
func TestJWT(t *testing.T) {
	jwtService := NewJwt(testAuthConfig(), nil)
	payload := JWTPayload{ID: "admin-1", Email: "admin@northwind.dev", Name: "Admin"}

	refreshToken, accessToken, err := jwtService.GenerateRefreshAndAccessToken(payload)
	require.NoError(t, err)

	refresh, err := jwtService.VerifyJwtToken(*refreshToken)
	require.NoError(t, err)
	assert.Equal(t, constant.JWT_TYPE_REFRESH, refresh.Type)
	assert.Equal(t, payload, refresh.User)

	access, err := jwtService.VerifyJwtToken(*accessToken)
	require.NoError(t, err)
	assert.Equal(t, constant.JWT_TYPE_ACCESS, access.Type)
	assert.Equal(t, "admin-1", access.Subject)
}

func TestJWTRejects(t *testing.T) {
	payload := JWTPayload{ID: "admin-1", Email: "admin@northwind.dev"}

	t.Run("other secret", func(t *testing.T) {
		_, accessToken, err := NewJwt(testAuthConfig(), nil).GenerateRefreshAndAccessToken(payload)
		require.NoError(t, err)

		other := testAuthConfig()
		other.JWT_SECRET = "another-secret"
		_, err = NewJwt(other, nil).VerifyJwtToken(*accessToken)
		assert.ErrorIs(t, err, jwt.ErrSignatureInvalid)
	})

	t.Run("expired", func(t *testing.T) {
		cfg := testAuthConfig()
		cfg.AccessTokenTTL = -time.Minute
		j := NewJwt(cfg, nil)

		_, accessToken, err := j.GenerateRefreshAndAccessToken(payload)
		require.NoError(t, err)

		_, err = j.VerifyJwtToken(*accessToken)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("missing secret", func(t *testing.T) {
		_, _, err := NewJwt(config.AuthConfig{}, nil).GenerateRefreshAndAccessToken(payload)
		assert.ErrorIs(t, err, ErrMissingSecret)
	})
}
