package util

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenContext(header string) *gin.Context {
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest("GET", "/", nil)
	if header != "" {
		ctx.Request.Header.Set("Authorization", header)
	}
	return ctx
}

func TestReadBearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	token, err := ReadBearerToken(newTokenContext("Bearer abc.def"))
	require.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	token, err = ReadBearerToken(newTokenContext("bearer   abc"))
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	_, err = ReadBearerToken(newTokenContext(""))
	assert.Error(t, err)

	_, err = ReadBearerToken(newTokenContext("Bearer"))
	assert.Error(t, err)

	_, err = ReadBearerToken(newTokenContext("Refresh abc"))
	assert.Error(t, err)
}

func TestReadRefreshToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	token, err := ReadRefreshToken(newTokenContext("Refresh r-1"))
	require.NoError(t, err)
	assert.Equal(t, "r-1", token)

	_, err = ReadRefreshToken(newTokenContext("Bearer r-1"))
	assert.Error(t, err)
}
