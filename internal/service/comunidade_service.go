package service

import (
	"context"
	"time"

	"github.com/comunidades/feed-api/internal/models"
	"github.com/comunidades/feed-api/internal/repository"
)

// ComunidadeView 社区列表项
type ComunidadeView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	ImageURL    *string   `json:"imageUrl"`
	Banner      *string   `json:"banner"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ComunidadeService 社区业务服务
type ComunidadeService struct {
	repo repository.ComunidadeRepository
}

// NewComunidadeService 创建社区服务
func NewComunidadeService(repo repository.ComunidadeRepository) *ComunidadeService {
	return &ComunidadeService{repo: repo}
}

// List 获取社区列表
func (s *ComunidadeService) List(ctx context.Context, page, pageSize int) ([]ComunidadeView, int64, error) {
	comunidades, total, err := s.repo.List(ctx, repository.ComunidadeListFilter{
		Page:     NormalizePage(page),
		PageSize: ClampPageSize(pageSize, MaxPageSize),
	})
	if err != nil {
		return nil, 0, err
	}
	items := make([]ComunidadeView, 0, len(comunidades))
	for i := range comunidades {
		items = append(items, NewComunidadeView(&comunidades[i]))
	}
	return items, total, nil
}

// NewComunidadeView 投影社区记录
func NewComunidadeView(comunidade *models.Comunidade) ComunidadeView {
	var view ComunidadeView
	if comunidade == nil {
		return view
	}
	copyProjection(&view, comunidade)
	view.Title = comunidade.Nome
	view.Description = comunidade.Descricao
	view.ImageURL = comunidade.IconURL
	view.Banner = comunidade.BannerURL
	return view
}
