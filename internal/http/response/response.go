package response

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	HeaderCacheControl = "Cache-Control"
	HeaderTotalCount   = "X-Total-Count"
)

// ErrorBody 错误响应结构
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON 成功响应，直接输出数据本身
func JSON(c *gin.Context, data interface{}) {
	c.JSON(CodeOK, data)
}

// JSONWithCache 成功响应并设置客户端缓存时间
func JSONWithCache(c *gin.Context, maxAgeSeconds int, data interface{}) {
	SetMaxAge(c, maxAgeSeconds)
	c.JSON(CodeOK, data)
}

// SetMaxAge 设置 Cache-Control: max-age
func SetMaxAge(c *gin.Context, maxAgeSeconds int) {
	if maxAgeSeconds < 0 {
		maxAgeSeconds = 0
	}
	c.Header(HeaderCacheControl, "max-age="+strconv.Itoa(maxAgeSeconds))
}

// SetTotalCount 设置总数响应头
func SetTotalCount(c *gin.Context, total int64) {
	c.Header(HeaderTotalCount, strconv.FormatInt(total, 10))
}

// Error 错误响应，HTTP 状态码即错误码
func Error(c *gin.Context, statusCode int, msg string) {
	c.AbortWithStatusJSON(statusCode, ErrorBody{Error: msg})
}

// Internal 500响应
func Internal(c *gin.Context, msg string) {
	Error(c, CodeInternal, msg)
}
