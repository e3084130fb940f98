package auth

import (
	"errors"
	"time"

	"github.com/SeakMengs/NorthwindSite/internal/config"
	"github.com/SeakMengs/NorthwindSite/internal/constant"
	"github.com/SeakMengs/NorthwindSite/internal/util"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

var ErrMissingSecret = errors.New("jwt secret is not configured")

type JWT struct {
	logger          *zap.SugaredLogger
	jwtSecret       string
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

type JWTInterface interface {
	GenerateRefreshAndAccessToken(payload JWTPayload) (*string, *string, error)
	VerifyJwtToken(token string) (*JWTClaims, error)
}

func NewJwt(cfg config.AuthConfig, logger *zap.SugaredLogger) *JWT {
	// For unit test
	if logger == nil {
		logger = util.NewNopLogger()
	}

	return &JWT{
		jwtSecret:       cfg.JWT_SECRET,
		accessTokenTTL:  cfg.AccessTokenTTL,
		refreshTokenTTL: cfg.RefreshTokenTTL,
		logger:          logger,
	}
}

// Identifies the admin a token was issued to.
type JWTPayload struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type JWTClaims struct {
	User JWTPayload `json:"user"`
	// constant.JWT_TYPE_ACCESS or constant.JWT_TYPE_REFRESH
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// Return refreshToken, accessToken, error
func (j JWT) GenerateRefreshAndAccessToken(payload JWTPayload) (*string, *string, error) {
	j.logger.Debugf("Generate refresh and access token for admin: %s", payload.ID)

	if j.jwtSecret == "" {
		return nil, nil, ErrMissingSecret
	}

	now := time.Now()

	refreshToken, err := j.sign(payload, constant.JWT_TYPE_REFRESH, now, j.refreshTokenTTL)
	if err != nil {
		return nil, nil, err
	}

	accessToken, err := j.sign(payload, constant.JWT_TYPE_ACCESS, now, j.accessTokenTTL)
	if err != nil {
		return nil, nil, err
	}

	return &refreshToken, &accessToken, nil
}

func (j JWT) sign(payload JWTPayload, tokenType string, now time.Time, ttl time.Duration) (string, error) {
	claims := JWTClaims{
		User: payload,
		Type: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   payload.ID,
			Issuer:    util.GetAppSlug(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(j.jwtSecret))
}

func (j JWT) VerifyJwtToken(token string) (*JWTClaims, error) {
	if j.jwtSecret == "" {
		return nil, ErrMissingSecret
	}

	claims := &JWTClaims{}
	parsedToken, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(j.jwtSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(util.GetAppSlug()))
	if err != nil {
		j.logger.Debugf("Failed to verify jwt token. Error: %v", err)
		return nil, err
	}

	if !parsedToken.Valid {
		j.logger.Debug("Jwt token is not valid")
		return nil, errors.New("jwt token is not valid")
	}

	if claims.User.ID == "" {
		return nil, errors.New("invalid token: user field is missing or malformed")
	}

	return claims, nil
}
