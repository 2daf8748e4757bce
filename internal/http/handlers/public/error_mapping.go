package public

import (
	"errors"

	"github.com/comunidades/feed-api/internal/http/response"
	"github.com/comunidades/feed-api/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

// respondWithMappedError 命中规则时返回对应的国际化消息；
// 未命中时按 500 返回，消息为底层错误原文。
func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondErrorWithMsg(c, response.CodeInternal, err.Error(), err)
}

var postLookupErrorRules = []mappedHandlerError{
	{target: service.ErrPostIDRequired, code: response.CodeBadRequest, key: "error.post_id_required"},
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.post_not_found"},
}

func respondFeedError(c *gin.Context, err error) {
	respondWithMappedError(c, err, nil)
}

func respondPostLookupError(c *gin.Context, err error) {
	respondWithMappedError(c, err, postLookupErrorRules)
}

func respondComunidadeError(c *gin.Context, err error) {
	respondWithMappedError(c, err, nil)
}
