package public

import (
	"github.com/comunidades/feed-api/internal/http/handlers/shared"
	"github.com/comunidades/feed-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetComunidades 获取社区列表，返回裸数组
// GET /functions/v1/get-comunidades?page=&pageSize=
func (h *Handler) GetComunidades(c *gin.Context) {
	if !requireGET(c) {
		return
	}
	page, pageSize := shared.ParsePagination(c, h.Config.Feed.DefaultPageSize, h.Config.Feed.MaxPageSize)

	items, total, err := h.ComunidadeService.List(c.Request.Context(), page, pageSize)
	if err != nil {
		respondComunidadeError(c, err)
		return
	}
	response.SetTotalCount(c, total)
	response.JSONWithCache(c, h.Config.Feed.ComunidadeCacheMaxAgeSeconds, items)
}
