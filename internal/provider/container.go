package provider

import (
	"fmt"
	"time"

	"github.com/comunidades/feed-api/internal/cache"
	"github.com/comunidades/feed-api/internal/config"
	"github.com/comunidades/feed-api/internal/logger"
	"github.com/comunidades/feed-api/internal/models"
	"github.com/comunidades/feed-api/internal/repository"
	"github.com/comunidades/feed-api/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config

	// Repositories
	PostRepo       repository.PostRepository
	ComunidadeRepo repository.ComunidadeRepository

	// Services
	PostService       *service.PostService
	ComunidadeService *service.ComunidadeService
}

// NewContainer 初始化容器，按 store.driver 选择存储实现
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	c := &Container{Config: cfg}

	// 1. 初始化 Repositories
	if err := c.initRepositories(); err != nil {
		return nil, err
	}

	// 2. 初始化 Services
	c.initServices()
	return c, nil
}

// NewContainerWithRepositories 使用已有仓库创建容器
func NewContainerWithRepositories(cfg *config.Config, postRepo repository.PostRepository, comunidadeRepo repository.ComunidadeRepository) *Container {
	c := &Container{
		Config:         cfg,
		PostRepo:       postRepo,
		ComunidadeRepo: comunidadeRepo,
	}
	c.initServices()
	return c
}

func (c *Container) initRepositories() error {
	switch c.Config.Store.Driver {
	case config.StoreDriverSQL:
		db := models.DB
		if db == nil {
			return fmt.Errorf("database not initialized for store driver %q", c.Config.Store.Driver)
		}
		c.PostRepo = repository.NewPostRepository(db)
		c.ComunidadeRepo = repository.NewComunidadeRepository(db)
	case config.StoreDriverPostgREST, "":
		client := repository.NewPostgRESTClient(repository.PostgRESTOptions{
			BaseURL:    c.Config.Store.URL,
			Credential: c.Config.Store.Credential(),
			Schema:     c.Config.Store.Schema,
			Timeout:    time.Duration(c.Config.Store.TimeoutMS) * time.Millisecond,
		})
		c.PostRepo = repository.NewPostgRESTPostRepository(client)
		c.ComunidadeRepo = repository.NewPostgRESTComunidadeRepository(client)
	default:
		return fmt.Errorf("unsupported store driver: %s", c.Config.Store.Driver)
	}
	logger.Infow("provider_store_ready", "driver", c.Config.Store.Driver)
	return nil
}

func (c *Container) initServices() {
	var feedCacheTTL time.Duration
	if c.Config.Redis.Enabled {
		feedCacheTTL = time.Duration(c.Config.Feed.CacheMaxAgeSeconds) * time.Second
	}
	c.PostService = service.NewPostService(c.PostRepo, feedCacheTTL)
	c.ComunidadeService = service.NewComunidadeService(c.ComunidadeRepo)
}
