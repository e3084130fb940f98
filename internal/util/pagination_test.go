package util

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalPage(t *testing.T) {
	assert.Equal(t, 1, CalculateTotalPage(0, 10))
	assert.Equal(t, 1, CalculateTotalPage(10, 10))
	assert.Equal(t, 2, CalculateTotalPage(11, 10))
	assert.Equal(t, 3, CalculateTotalPage(41, 0))
}

func TestReadPagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		query        string
		wantPage     uint
		wantPageSize uint
	}{
		{"", 1, 20},
		{"?page=3&pageSize=5", 3, 5},
		{"?page=-1&pageSize=abc", 1, 20},
		{"?pageSize=1000", 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
			ctx.Request = httptest.NewRequest("GET", "/"+tt.query, nil)

			page, pageSize := ReadPagination(ctx)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPageSize, pageSize)
		})
	}
}
