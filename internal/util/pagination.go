package util

import (
	"strconv"

	"github.com/SeakMengs/NorthwindSite/internal/constant"
	"github.com/gin-gonic/gin"
)

func CalculateTotalPage(totalItems int64, pageSize uint) int {
	if pageSize <= 0 {
		pageSize = constant.DefaultPageSize
	}
	if totalItems == 0 {
		return 1
	}
	totalPage := int(totalItems / int64(pageSize))
	if totalItems%int64(pageSize) != 0 {
		totalPage++
	}
	return totalPage
}

// Read ?page=&pageSize= with sane bounds. Page is 1-based.
func ReadPagination(ctx *gin.Context) (page uint, pageSize uint) {
	page, pageSize = 1, constant.DefaultPageSize

	if p, err := strconv.Atoi(ctx.Query("page")); err == nil && p > 0 {
		page = uint(p)
	}
	if ps, err := strconv.Atoi(ctx.Query("pageSize")); err == nil && ps > 0 {
		pageSize = uint(min(ps, constant.MaxPageSize))
	}

	return page, pageSize
}
