package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/avc-dev/movies-api/internal/config"
	"go.uber.org/zap"
)

// App представляет приложение movies API
type App struct {
	config *config.Config
	logger *zap.Logger
	router http.Handler
}

// New создает новый экземпляр приложения
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	h, err := initDependencies(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		config: cfg,
		logger: logger,
		router: newRouter(h, logger, cfg),
	}, nil
}

// newLogger создает production логгер с уровнем из конфигурации
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel)

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return logger, nil
}

// Run загружает конфигурацию и запускает приложение до получения SIGINT или SIGTERM
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	app, err := New(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize application", zap.Error(err))
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return app.start(ctx)
}
