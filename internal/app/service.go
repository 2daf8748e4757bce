package app

import (
	"context"
	"errors"
	"os/signal"
	"time"

	"go.uber.org/zap"
)

// Service 由 Runner 托管的长驻服务
type Service interface {
	Name() string
	// Start 阻塞运行，ctx 结束或服务失败时返回
	Start(ctx context.Context) error
	// Stop 在 ctx 截止前完成优雅关闭
	Stop(ctx context.Context) error
}

// Runner 服务运行器
type Runner struct {
	services []Service
}

// NewRunner 创建服务运行器，nil 服务会被忽略
func NewRunner(services ...Service) *Runner {
	kept := make([]Service, 0, len(services))
	for _, svc := range services {
		if svc != nil {
			kept = append(kept, svc)
		}
	}
	return &Runner{services: kept}
}

// RunWithOptions 按 Options 监听退出信号并运行
func RunWithOptions(runner *Runner, opts Options) error {
	if runner == nil {
		return errors.New("runner is nil")
	}
	opts = normalizeOptions(opts)
	ctx := context.Background()
	if len(opts.Signals) > 0 {
		var stop context.CancelFunc
		ctx, stop = signal.NotifyContext(ctx, opts.Signals...)
		defer stop()
	}
	return runner.Run(ctx, opts.ShutdownTimeout, opts.Logger)
}

// Run 并发启动全部服务，首个服务退出或 ctx 结束后统一停止
func (r *Runner) Run(ctx context.Context, stopTimeout time.Duration, log *zap.SugaredLogger) error {
	if r == nil || len(r.services) == 0 {
		return errors.New("no services to run")
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	exited := r.startAll(ctx, log)

	var runErr error
	select {
	case <-ctx.Done():
		runErr = ctx.Err()
		log.Infow("runner_shutdown", "reason", "signal")
	case runErr = <-exited:
		log.Infow("runner_shutdown", "reason", "service_exit", "error", runErr)
	}
	cancel()

	r.stopAll(stopTimeout, log)
	if errors.Is(runErr, context.Canceled) {
		return nil
	}
	return runErr
}

func (r *Runner) startAll(ctx context.Context, log *zap.SugaredLogger) <-chan error {
	exited := make(chan error, len(r.services))
	for _, svc := range r.services {
		go func() {
			log.Infow("service_start", "service", svc.Name())
			err := svc.Start(ctx)
			log.Infow("service_exit", "service", svc.Name(), "error", err)
			exited <- err
		}()
	}
	return exited
}

func (r *Runner) stopAll(timeout time.Duration, log *zap.SugaredLogger) {
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	for _, svc := range r.services {
		if err := svc.Stop(ctx); err != nil {
			log.Errorw("service_stop_failed", "service", svc.Name(), "error", err)
		}
	}
}
