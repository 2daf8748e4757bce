package public

import "github.com/comunidades/feed-api/internal/provider"

// Handler 公开接口处理器入口
// 说明：所有接口只读、无需鉴权。
type Handler struct {
	*provider.Container
}

// New 创建公开接口处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
