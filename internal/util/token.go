package util

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
)

// Read Authorization header from the request and return the token type and token
func ReadAuthorizationHeader(ctx *gin.Context) (string, string, error) {
	header := ctx.GetHeader("Authorization")
	if header == "" {
		return "", "", errors.New("no authorization header specified")
	}

	tokenType, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found {
		return "", "", errors.New("wrong authorization header format")
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", "", errors.New("token is empty")
	}

	return strings.ToUpper(tokenType), token, nil
}

func readTokenOfType(ctx *gin.Context, expected string) (string, error) {
	tokenType, token, err := ReadAuthorizationHeader(ctx)
	if err != nil {
		return "", err
	}

	if !strings.EqualFold(tokenType, expected) {
		return "", errors.New("invalid token type; expected '" + expected + "'")
	}

	return token, nil
}

// Admin access token: "Authorization: Bearer <token>"
func ReadBearerToken(ctx *gin.Context) (string, error) {
	return readTokenOfType(ctx, "Bearer")
}

// Admin refresh token: "Authorization: Refresh <token>"
func ReadRefreshToken(ctx *gin.Context) (string, error) {
	return readTokenOfType(ctx, "Refresh")
}
