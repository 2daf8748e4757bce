package repository

import (
	"context"

	"github.com/comunidades/feed-api/internal/models"

	"gorm.io/gorm"
)

// ComunidadeRepository 社区数据访问接口
type ComunidadeRepository interface {
	List(ctx context.Context, filter ComunidadeListFilter) ([]models.Comunidade, int64, error)
}

// GormComunidadeRepository GORM 实现
type GormComunidadeRepository struct {
	db *gorm.DB
}

// NewComunidadeRepository 创建社区仓库
func NewComunidadeRepository(db *gorm.DB) *GormComunidadeRepository {
	return &GormComunidadeRepository{db: db}
}

// List 社区列表，按名称升序
func (r *GormComunidadeRepository) List(ctx context.Context, filter ComunidadeListFilter) ([]models.Comunidade, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Comunidade{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapStoreError("count comunidades", err)
	}

	var comunidades []models.Comunidade
	if err := applyPagination(query, filter.Page, filter.PageSize).Order("nome ASC").Order("id ASC").Find(&comunidades).Error; err != nil {
		return nil, 0, wrapStoreError("list comunidades", err)
	}
	return comunidades, total, nil
}
