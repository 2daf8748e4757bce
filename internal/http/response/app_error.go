package response

import "github.com/gin-gonic/gin"

// AppError 接口错误：HTTP 状态码、对外消息与内部原因
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Body 对外错误体，不暴露内部原因
func (e *AppError) Body() ErrorBody {
	return ErrorBody{Error: e.Message}
}

// WrapError 包装错误，非错误状态码按 500 处理
func WrapError(code int, message string, err error) *AppError {
	if code < CodeBadRequest {
		code = CodeInternal
	}
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Abort 输出错误响应并终止后续处理
func Abort(c *gin.Context, appErr *AppError) {
	if appErr == nil {
		appErr = WrapError(CodeInternal, "", nil)
	}
	c.AbortWithStatusJSON(appErr.Code, appErr.Body())
}
