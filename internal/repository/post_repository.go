package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/comunidades/feed-api/internal/models"

	"gorm.io/gorm"
)

// feedColumns 列表查询字段，不包含富文本正文
var feedColumns = []string{
	"id", "usuario_id", "comunidade_id", "title",
	"banner_url", "banner_is_gif", "plain_text", "created_at",
}

// PostRepository 帖子数据访问接口
type PostRepository interface {
	List(ctx context.Context, filter PostListFilter) ([]models.Post, int64, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
}

// GormPostRepository GORM 实现
type GormPostRepository struct {
	db *gorm.DB
}

// NewPostRepository 创建帖子仓库
func NewPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

// List 帖子列表，按创建时间倒序并以 id 作为次级排序
func (r *GormPostRepository) List(ctx context.Context, filter PostListFilter) ([]models.Post, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Post{})

	if comunidadeID := strings.TrimSpace(filter.ComunidadeID); comunidadeID != "" {
		query = query.Where("comunidade_id = ?", comunidadeID)
	}
	if usuarioID := strings.TrimSpace(filter.UsuarioID); usuarioID != "" {
		query = query.Where("usuario_id = ?", usuarioID)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		condition, argCount := buildLikeCondition(r.db, []string{"title", "plain_text"})
		query = query.Where(condition, repeatLikeArgs(containsPattern(search), argCount)...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapStoreError("count posts", err)
	}

	var posts []models.Post
	err := applyPagination(query, filter.Page, filter.PageSize).
		Select(feedColumns).
		Preload("Usuario", selectAuthorColumns).
		Order("created_at DESC").
		Order("id ASC").
		Find(&posts).Error
	if err != nil {
		return nil, 0, wrapStoreError("list posts", err)
	}
	return posts, total, nil
}

// GetByID 根据 ID 获取帖子，不存在时返回 nil
func (r *GormPostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Preload("Usuario", selectAuthorColumns).
		Where("id = ?", id).
		Limit(1).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrapStoreError("get post", err)
	}
	return &post, nil
}

func selectAuthorColumns(db *gorm.DB) *gorm.DB {
	return db.Select("id", "username", "usericon")
}
