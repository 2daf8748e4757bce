package repository

import (
	"context"
	"net/url"
	"strconv"

	"github.com/comunidades/feed-api/internal/models"

	"github.com/goccy/go-json"
)

const postgrestComunidadeSelect = "id,nome,descricao,icon_url,banner_url,created_at"

// PostgRESTComunidadeRepository 基于 REST 网关的社区仓库
type PostgRESTComunidadeRepository struct {
	client *PostgRESTClient
}

// NewPostgRESTComunidadeRepository 创建社区仓库
func NewPostgRESTComunidadeRepository(client *PostgRESTClient) *PostgRESTComunidadeRepository {
	return &PostgRESTComunidadeRepository{client: client}
}

// List 社区列表
func (r *PostgRESTComunidadeRepository) List(ctx context.Context, filter ComunidadeListFilter) ([]models.Comunidade, int64, error) {
	params := url.Values{
		"select": {postgrestComunidadeSelect},
		"order":  {"nome.asc,id.asc"},
	}
	if filter.PageSize > 0 {
		params["offset"] = []string{strconv.Itoa(pageOffset(filter.Page, filter.PageSize))}
		params["limit"] = []string{strconv.Itoa(filter.PageSize)}
	}
	result, err := r.client.selectRows(ctx, "comunidades", params, true)
	if err != nil {
		return nil, 0, err
	}
	var comunidades []models.Comunidade
	if err := json.Unmarshal(result.body, &comunidades); err != nil {
		return nil, 0, wrapStoreError("decode comunidades", err)
	}
	total := result.total
	if total < 0 {
		total = int64(pageOffset(filter.Page, filter.PageSize) + len(comunidades))
	}
	return comunidades, total, nil
}
