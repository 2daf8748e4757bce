package shared

import (
	"github.com/comunidades/feed-api/internal/http/response"
	"github.com/comunidades/feed-api/internal/i18n"
	"github.com/comunidades/feed-api/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog 提供携带 request_id 的日志实例。
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if id := RequestID(c); id != "" {
		return logger.SW("request_id", id)
	}
	return logger.S()
}

// RespondError 返回国际化错误响应，并在有原始错误时记录日志。
func RespondError(c *gin.Context, code int, key string, err error) {
	msg := i18n.T(i18n.ResolveLocale(c), key)
	RespondErrorWithMsg(c, code, msg, err)
}

// RespondErrorWithMsg 返回自定义消息错误响应，并在有原始错误时记录日志。
func RespondErrorWithMsg(c *gin.Context, code int, msg string, err error) {
	appErr := response.WrapError(code, msg, err)
	if err != nil {
		RequestLog(c).Errorw("handler_error",
			"code", appErr.Code,
			"message", appErr.Message,
			"path", c.Request.URL.Path,
			"error", err,
		)
	}
	response.Abort(c, appErr)
}
