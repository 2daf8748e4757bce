package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/comunidades/feed-api/internal/logger"
)

const defaultReadHeaderTimeout = 10 * time.Second

// HTTPService HTTP 服务封装
type HTTPService struct {
	name   string
	server *http.Server
}

// NewHTTPService 创建 HTTP 服务
func NewHTTPService(addr string, handler http.Handler) *HTTPService {
	return &HTTPService{
		name: "http",
		server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
			ErrorLog:          logger.StdLogger(),
		},
	}
}

// Name 服务名称
func (s *HTTPService) Name() string {
	if s == nil || s.name == "" {
		return "http"
	}
	return s.name
}

// Addr 监听地址
func (s *HTTPService) Addr() string {
	if s == nil || s.server == nil {
		return ""
	}
	return s.server.Addr
}

// Start 启动服务，阻塞直到服务关闭
func (s *HTTPService) Start(ctx context.Context) error {
	if s == nil || s.server == nil {
		return errors.New("http server not initialized")
	}
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop 优雅关闭，等待进行中的请求完成
func (s *HTTPService) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
