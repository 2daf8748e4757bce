package public

import (
	"strings"

	"github.com/comunidades/feed-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetPost 根据 id 获取帖子详情
// GET /functions/v1/get-post?id=<uuid>
func (h *Handler) GetPost(c *gin.Context) {
	if !requireGET(c) {
		return
	}
	id := strings.TrimSpace(c.Query("id"))
	if id == "" {
		respondError(c, response.CodeBadRequest, "error.post_id_required", nil)
		return
	}

	post, err := h.PostService.GetPost(c.Request.Context(), id)
	if err != nil {
		respondPostLookupError(c, err)
		return
	}
	response.JSONWithCache(c, h.Config.Feed.PostCacheMaxAgeSeconds, post)
}
