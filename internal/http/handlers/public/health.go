package public

import (
	"github.com/comunidades/feed-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// Healthz 存活检查
func (h *Handler) Healthz(c *gin.Context) {
	response.JSON(c, gin.H{"status": "ok", "store": h.Config.Store.Driver})
}
