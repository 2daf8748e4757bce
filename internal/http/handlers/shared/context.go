package shared

import (
	"net/http"

	"github.com/comunidades/feed-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

const RequestIDKey = "request_id"

// RequireGET 仅允许 GET 请求，其余方法返回 405。
func RequireGET(c *gin.Context) bool {
	if c.Request.Method == http.MethodGet {
		return true
	}
	RespondError(c, response.CodeMethodNotAllowed, "error.method_not_allowed", nil)
	return false
}

// RequestID 读取当前请求 ID。
func RequestID(c *gin.Context) string {
	if c == nil {
		return ""
	}
	value, ok := c.Get(RequestIDKey)
	if !ok {
		return ""
	}
	if id, ok := value.(string); ok {
		return id
	}
	return ""
}
