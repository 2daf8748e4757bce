package public

import (
	"github.com/comunidades/feed-api/internal/http/handlers/shared"
	"github.com/comunidades/feed-api/internal/http/response"
	"github.com/comunidades/feed-api/internal/service"

	"github.com/gin-gonic/gin"
)

// GetFeed 分页获取帖子动态
// GET /functions/v1/get-postagem?page=&pageSize=&comunidade_id=&usuario_id=&q=
func (h *Handler) GetFeed(c *gin.Context) {
	if !requireGET(c) {
		return
	}
	page, pageSize := shared.ParsePagination(c, h.Config.Feed.DefaultPageSize, h.Config.Feed.MaxPageSize)

	result, err := h.PostService.ListFeed(c.Request.Context(), service.FeedQuery{
		Page:         page,
		PageSize:     pageSize,
		ComunidadeID: c.Query("comunidade_id"),
		UsuarioID:    c.Query("usuario_id"),
		Search:       c.Query("q"),
	})
	if err != nil {
		respondFeedError(c, err)
		return
	}

	response.SetTotalCount(c, result.Total)
	response.JSONWithCache(c, h.Config.Feed.CacheMaxAgeSeconds, result)
}
