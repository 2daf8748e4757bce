package router

import (
	"github.com/comunidades/feed-api/internal/config"
	publichandlers "github.com/comunidades/feed-api/internal/http/handlers/public"
	"github.com/comunidades/feed-api/internal/http/handlers/shared"
	"github.com/comunidades/feed-api/internal/http/response"
	"github.com/comunidades/feed-api/internal/logger"
	"github.com/comunidades/feed-api/internal/provider"

	"github.com/gin-gonic/gin"
)

// FunctionsPrefix 与托管函数保持一致的路径前缀
const FunctionsPrefix = "/functions/v1"

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()
	r.HandleMethodNotAllowed = false

	publicHandler := publichandlers.New(c)

	// 中间件
	r.Use(RequestIDMiddleware())
	r.Use(CORSMiddleware(cfg.CORS))
	r.Use(LoggerMiddleware(log))
	r.Use(RecoveryMiddleware())

	r.GET("/healthz", publicHandler.Healthz)

	// 方法校验交给处理器，非 GET 返回 405
	functions := r.Group(FunctionsPrefix)
	{
		functions.Any("/get-postagem", publicHandler.GetFeed)
		functions.Any("/get-post", publicHandler.GetPost)
		functions.Any("/get-uni-post", publicHandler.GetPost)
		functions.Any("/get-comunidades", publicHandler.GetComunidades)
	}

	r.NoRoute(func(ctx *gin.Context) {
		shared.RespondError(ctx, response.CodeNotFound, "error.not_found", nil)
	})

	return r
}
