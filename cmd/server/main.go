package main

import (
	"fmt"

	"github.com/comunidades/feed-api/internal/app"
	"github.com/comunidades/feed-api/internal/config"
	"github.com/comunidades/feed-api/internal/logger"
	"github.com/comunidades/feed-api/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ansiReset     = "\033[0m"
	ansiBold      = "\033[1m"
	ansiDim       = "\033[2m"
	ansiGreen     = "\033[32m"
	ansiCyan      = "\033[36m"
	ansiBrightMag = "\033[95m"
)

func main() {
	printStartupBanner()

	// 加载配置
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	defer logger.Sync()
	stdLog := logger.StdLogger()

	// 存储连接信息缺失时拒绝启动
	if err := cfg.Validate(); err != nil {
		stdLog.Fatalf("配置校验失败: %v", err)
	}

	if cfg.Store.Driver == config.StoreDriverSQL {
		// 初始化数据库
		if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
			MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
			MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
			ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
			ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
		}, cfg.Server.Mode == "debug"); err != nil {
			stdLog.Fatalf("数据库初始化失败: %v", err)
		}

		// 自动迁移数据库表
		if err := models.AutoMigrate(nil); err != nil {
			stdLog.Fatalf("数据库迁移失败: %v", err)
		}
	}

	// 设置 Gin 模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: app.DefaultSignals(),
	}); err != nil {
		stdLog.Fatalf("服务运行失败: %v", err)
	}
}

func printStartupBanner() {
	fmt.Println(ansiBrightMag + "╔══════════════════════════════════════════════════╗" + ansiReset)
	fmt.Println(ansiBrightMag + "║              Comunidades Feed API                ║" + ansiReset)
	fmt.Println(ansiBrightMag + "╚══════════════════════════════════════════════════╝" + ansiReset)
	fmt.Println(ansiCyan + "  GET /functions/v1/get-postagem    feed paginado" + ansiReset)
	fmt.Println(ansiCyan + "  GET /functions/v1/get-post        post por id" + ansiReset)
	fmt.Println(ansiCyan + "  GET /functions/v1/get-comunidades comunidades" + ansiReset)
	fmt.Println(ansiGreen + ansiBold + "store: postgrest | sql" + ansiReset)
	fmt.Println(ansiDim + "--------------------------------------------------" + ansiReset)
}
