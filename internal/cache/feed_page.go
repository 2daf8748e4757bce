package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// FeedPageKey 动态列表缓存键的组成部分
type FeedPageKey struct {
	Page         int
	PageSize     int
	ComunidadeID string
	UsuarioID    string
	Search       string
}

// String 生成缓存键，搜索词做摘要避免键过长
func (k FeedPageKey) String() string {
	search := strings.TrimSpace(k.Search)
	if search != "" {
		sum := sha1.Sum([]byte(strings.ToLower(search)))
		search = hex.EncodeToString(sum[:8])
	}
	return fmt.Sprintf("feed:page:%d:%d:c=%s:u=%s:q=%s",
		k.Page, k.PageSize,
		strings.TrimSpace(k.ComunidadeID),
		strings.TrimSpace(k.UsuarioID),
		search,
	)
}

// GetFeedPage 读取动态列表缓存
func GetFeedPage(ctx context.Context, key FeedPageKey, dest interface{}) (bool, error) {
	return GetJSON(ctx, key.String(), dest)
}

// SetFeedPage 写入动态列表缓存，ttl 非正数时不写入
func SetFeedPage(ctx context.Context, key FeedPageKey, value interface{}, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return SetJSON(ctx, key.String(), value, ttl)
}
