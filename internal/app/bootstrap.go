package app

import (
	"errors"
	"net"

	"github.com/comunidades/feed-api/internal/cache"
	"github.com/comunidades/feed-api/internal/config"
	"github.com/comunidades/feed-api/internal/provider"
	"github.com/comunidades/feed-api/internal/router"
)

// BuildRunner 构建服务运行器
func BuildRunner(cfg *config.Config) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	container, err := provider.NewContainer(cfg)
	if err != nil {
		return nil, err
	}

	engine := router.SetupRouter(cfg, container)
	return NewRunner(NewHTTPService(listenAddr(cfg), engine)), nil
}

// Run 应用启动入口
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}

	runner, err := BuildRunner(opts.Config)
	if err != nil {
		return err
	}
	defer func() {
		if err := cache.Close(); err != nil {
			opts.Logger.Warnw("app_close_redis_failed", "error", err)
		}
	}()

	opts.Logger.Infow("app_start",
		"addr", listenAddr(opts.Config),
		"store", opts.Config.Store.Driver,
		"redis", opts.Config.Redis.Enabled,
	)
	return RunWithOptions(runner, opts)
}

func listenAddr(cfg *config.Config) string {
	return net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
}
