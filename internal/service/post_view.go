package service

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/comunidades/feed-api/internal/logger"
	"github.com/comunidades/feed-api/internal/models"

	"github.com/jinzhu/copier"
)

const (
	// SnippetMaxLength 摘要最大字符数（含省略号）
	SnippetMaxLength = 160
	snippetEllipsis  = "..."
)

// PostSummary 列表中的帖子投影
type PostSummary struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	BannerURL    *string   `json:"bannerUrl"`
	BannerIsGif  bool      `json:"bannerIsGif"`
	Snippet      *string   `json:"snippet"`
	UsuarioID    *string   `json:"usuarioId"`
	ComunidadeID *string   `json:"comunidadeId"`
	CreatedAt    time.Time `json:"createdAt"`
	Username     *string   `json:"username"`
	Usericon     *string   `json:"usericon"`
}

// PostDetail 单个帖子投影，包含完整正文
type PostDetail struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	BannerURL    *string   `json:"bannerUrl"`
	BannerIsGif  bool      `json:"bannerIsGif"`
	HTML         *string   `json:"html"`
	Plain        *string   `json:"plain"`
	UsuarioID    *string   `json:"usuarioId"`
	ComunidadeID *string   `json:"comunidadeId"`
	CreatedAt    time.Time `json:"createdAt"`
	Username     *string   `json:"username"`
	Usericon     *string   `json:"usericon"`
}

// FeedPage 分页信封
type FeedPage struct {
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	Total      int64         `json:"total"`
	TotalPages int           `json:"totalPages"`
	Items      []PostSummary `json:"items"`
}

// NewPostSummary 将帖子记录投影为列表项
func NewPostSummary(post *models.Post) PostSummary {
	var summary PostSummary
	if post == nil {
		return summary
	}
	copyProjection(&summary, post)
	summary.Snippet = BuildSnippet(post.PlainText)
	summary.Username, summary.Usericon = authorFields(post.Usuario)
	return summary
}

// NewPostDetail 将帖子记录投影为详情
func NewPostDetail(post *models.Post) *PostDetail {
	if post == nil {
		return nil
	}
	detail := &PostDetail{}
	copyProjection(detail, post)
	detail.HTML = post.HTMLContent
	detail.Plain = post.PlainText
	detail.Username, detail.Usericon = authorFields(post.Usuario)
	return detail
}

// NewPostSummaries 批量投影
func NewPostSummaries(posts []models.Post) []PostSummary {
	items := make([]PostSummary, 0, len(posts))
	for i := range posts {
		items = append(items, NewPostSummary(&posts[i]))
	}
	return items
}

// copyProjection 复制同名字段，失败时记录日志，其余字段由调用方补齐
func copyProjection(to, from interface{}) bool {
	if err := copier.Copy(to, from); err != nil {
		logger.Warnw("projection_copy_failed",
			"to", fmt.Sprintf("%T", to),
			"from", fmt.Sprintf("%T", from),
			"error", err,
		)
		return false
	}
	return true
}

// authorFields 作者缺失时两个字段均为 nil
func authorFields(author *models.Usuario) (*string, *string) {
	if author == nil {
		return nil, nil
	}
	return author.Username, author.Usericon
}

// BuildSnippet 生成摘要：超过 160 字符时保留前 157 字符并追加省略号
func BuildSnippet(plain *string) *string {
	if plain == nil {
		return nil
	}
	text := *plain
	if utf8.RuneCountInString(text) <= SnippetMaxLength {
		return &text
	}
	keep := SnippetMaxLength - utf8.RuneCountInString(snippetEllipsis)
	runes := []rune(text)
	snippet := string(runes[:keep]) + snippetEllipsis
	return &snippet
}

// TotalPages 计算总页数，至少为 1
func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 1
	}
	pages := (total + int64(pageSize) - 1) / int64(pageSize)
	if pages < 1 {
		return 1
	}
	return int(pages)
}
