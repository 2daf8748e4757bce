package shared

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ParsePagination 解析分页参数。
// page 非数字或小于 1 时为 1；pageSize 缺失或非数字时取默认值，否则限制在 [1, maxPageSize]。
func ParsePagination(c *gin.Context, defaultPageSize, maxPageSize int) (int, int) {
	return NormalizePagination(c.Query("page"), c.Query("pageSize"), defaultPageSize, maxPageSize)
}

// NormalizePagination 归一化分页参数。
func NormalizePagination(rawPage, rawPageSize string, defaultPageSize, maxPageSize int) (int, int) {
	if maxPageSize <= 0 {
		maxPageSize = 100
	}
	if defaultPageSize <= 0 {
		defaultPageSize = 10
	}
	if defaultPageSize > maxPageSize {
		defaultPageSize = maxPageSize
	}

	page, err := strconv.Atoi(strings.TrimSpace(rawPage))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(strings.TrimSpace(rawPageSize))
	if err != nil {
		pageSize = defaultPageSize
	}
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}
