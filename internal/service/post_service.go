package service

import (
	"context"
	"strings"
	"time"

	"github.com/comunidades/feed-api/internal/cache"
	"github.com/comunidades/feed-api/internal/logger"
	"github.com/comunidades/feed-api/internal/repository"
)

// FeedQuery 动态列表查询参数
type FeedQuery struct {
	Page         int
	PageSize     int
	ComunidadeID string
	UsuarioID    string
	Search       string
}

// Normalize 归一化分页并去除过滤条件两端空白
func (q FeedQuery) Normalize() FeedQuery {
	q.Page = NormalizePage(q.Page)
	q.PageSize = ClampPageSize(q.PageSize, MaxPageSize)
	q.ComunidadeID = strings.TrimSpace(q.ComunidadeID)
	q.UsuarioID = strings.TrimSpace(q.UsuarioID)
	q.Search = strings.TrimSpace(q.Search)
	return q
}

func (q FeedQuery) cacheKey() cache.FeedPageKey {
	return cache.FeedPageKey{
		Page:         q.Page,
		PageSize:     q.PageSize,
		ComunidadeID: q.ComunidadeID,
		UsuarioID:    q.UsuarioID,
		Search:       q.Search,
	}
}

// PostService 帖子业务服务
type PostService struct {
	repo     repository.PostRepository
	cacheTTL time.Duration
}

// NewPostService 创建帖子服务，cacheTTL 为 0 时不使用列表缓存
func NewPostService(repo repository.PostRepository, cacheTTL time.Duration) *PostService {
	return &PostService{repo: repo, cacheTTL: cacheTTL}
}

// ListFeed 获取动态列表
func (s *PostService) ListFeed(ctx context.Context, query FeedQuery) (*FeedPage, error) {
	query = query.Normalize()
	useCache := s.cacheTTL > 0 && cache.Enabled()

	if useCache {
		var cached FeedPage
		hit, err := cache.GetFeedPage(ctx, query.cacheKey(), &cached)
		if err != nil {
			logger.Warnw("feed_cache_get_failed", "key", query.cacheKey().String(), "error", err)
		} else if hit {
			return &cached, nil
		}
	}

	posts, total, err := s.repo.List(ctx, repository.PostListFilter{
		Page:         query.Page,
		PageSize:     query.PageSize,
		ComunidadeID: query.ComunidadeID,
		UsuarioID:    query.UsuarioID,
		Search:       query.Search,
	})
	if err != nil {
		return nil, err
	}

	page := &FeedPage{
		Page:       query.Page,
		PageSize:   query.PageSize,
		Total:      total,
		TotalPages: TotalPages(total, query.PageSize),
		Items:      NewPostSummaries(posts),
	}

	if useCache {
		if err := cache.SetFeedPage(ctx, query.cacheKey(), page, s.cacheTTL); err != nil {
			logger.Warnw("feed_cache_set_failed", "key", query.cacheKey().String(), "error", err)
		}
	}
	return page, nil
}

// GetPost 获取单个帖子详情
func (s *PostService) GetPost(ctx context.Context, id string) (*PostDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrPostIDRequired
	}
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return NewPostDetail(post), nil
}
