package repository

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/comunidades/feed-api/internal/models"

	"github.com/goccy/go-json"
)

const (
	postgrestFeedSelect   = "id,usuario_id,comunidade_id,title,banner_url,banner_is_gif,plain_text,created_at,usuarios:usuario_id(username,usericon)"
	postgrestDetailSelect = "id,usuario_id,comunidade_id,title,banner_url,banner_is_gif,html_content,plain_text,created_at,usuarios:usuario_id(username,usericon)"
	postgrestPostOrder    = "created_at.desc,id.asc"
)

// PostgRESTPostRepository 基于 REST 网关的帖子仓库
type PostgRESTPostRepository struct {
	client *PostgRESTClient
}

// NewPostgRESTPostRepository 创建帖子仓库
func NewPostgRESTPostRepository(client *PostgRESTClient) *PostgRESTPostRepository {
	return &PostgRESTPostRepository{client: client}
}

// List 帖子列表
func (r *PostgRESTPostRepository) List(ctx context.Context, filter PostListFilter) ([]models.Post, int64, error) {
	params := url.Values{
		"select": {postgrestFeedSelect},
		"order":  {postgrestPostOrder},
	}
	if filter.PageSize > 0 {
		params["offset"] = []string{strconv.Itoa(pageOffset(filter.Page, filter.PageSize))}
		params["limit"] = []string{strconv.Itoa(filter.PageSize)}
	}
	if comunidadeID := strings.TrimSpace(filter.ComunidadeID); comunidadeID != "" {
		params["comunidade_id"] = []string{eqFilter(comunidadeID)}
	}
	if usuarioID := strings.TrimSpace(filter.UsuarioID); usuarioID != "" {
		params["usuario_id"] = []string{eqFilter(usuarioID)}
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		params["or"] = []string{ilikeAnyFilter([]string{"title", "plain_text"}, search)}
	}

	result, err := r.client.selectRows(ctx, "posts", params, true)
	if err != nil {
		return nil, 0, err
	}
	var posts []models.Post
	if err := json.Unmarshal(result.body, &posts); err != nil {
		return nil, 0, wrapStoreError("decode posts", err)
	}
	total := result.total
	if total < 0 {
		total = int64(pageOffset(filter.Page, filter.PageSize) + len(posts))
	}
	return posts, total, nil
}

// GetByID 根据 ID 获取帖子，不存在时返回 nil
func (r *PostgRESTPostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	params := url.Values{
		"select": {postgrestDetailSelect},
		"id":     {eqFilter(id)},
		"limit":  {"1"},
	}
	result, err := r.client.selectRows(ctx, "posts", params, false)
	if err != nil {
		return nil, err
	}
	var posts []models.Post
	if err := json.Unmarshal(result.body, &posts); err != nil {
		return nil, wrapStoreError("decode post", err)
	}
	if len(posts) == 0 {
		return nil, nil
	}
	return &posts[0], nil
}
