package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"avdportal/pkg/server"
)

type App struct {
	name    string
	servers []server.Server
}

type Option func(a *App)

func NewApp(opts ...Option) *App {
	a := &App{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func WithServer(servers ...server.Server) Option {
	return func(a *App) {
		a.servers = servers
	}
}

func WithName(name string) Option {
	return func(a *App) {
		a.name = name
	}
}

func (a *App) Run(ctx context.Context) error {
	var cancel context.CancelFunc
	ctx, cancel = context.WithCancel(ctx)
	defer cancel()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	for _, srv := range a.servers {
		go func(srv server.Server) {
			err := srv.Start(ctx)
			if err != nil {
				log.Printf("%s: server start err: %v", a.name, err)
			}
		}(srv)
	}

	select {
	case <-signals:
		// 收到退出信号
		log.Printf("%s: received termination signal", a.name)
	case <-ctx.Done():
		// 上下文被取消
		log.Printf("%s: context canceled", a.name)
	}

	// 优雅关闭
	for _, srv := range a.servers {
		err := srv.Stop(ctx)
		if err != nil {
			log.Printf("%s: server stop err: %v", a.name, err)
		}
	}

	return nil
}
