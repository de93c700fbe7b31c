package app

import (
	"fmt"

	"github.com/avc-dev/movies-api/internal/config"
	"github.com/avc-dev/movies-api/internal/handler"
	"github.com/avc-dev/movies-api/internal/repository"
	"github.com/avc-dev/movies-api/internal/service"
	"github.com/avc-dev/movies-api/internal/store"
	"github.com/avc-dev/movies-api/internal/usecase"
	"github.com/avc-dev/movies-api/internal/validation"
	"go.uber.org/zap"
)

// initDependencies инициализирует все зависимости приложения
func initDependencies(cfg *config.Config, logger *zap.Logger) (*handler.Handler, error) {
	validator := validation.New()

	storage, err := initStorage(cfg, validator, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	repo := repository.New(storage)
	movieService := service.NewMovieService(repo, cfg)
	movieUsecase := usecase.NewMovieUsecase(repo, movieService, validator, logger)
	h := handler.New(movieUsecase, logger)

	return h, nil
}

// initStorage создает хранилище в памяти и загружает в него seed-файл
func initStorage(cfg *config.Config, validator store.RecordValidator, logger *zap.Logger) (*store.Store, error) {
	fileStorage := store.NewFileStorage(cfg.SeedFilePath)

	storage, err := store.NewSeededStore(fileStorage, validator)
	if err != nil {
		return nil, err
	}

	if storage.Len() == 0 {
		logger.Warn("Seed file is missing or empty, starting with empty collection",
			zap.String("path", cfg.SeedFilePath),
		)
		return storage, nil
	}

	logger.Info("Movies loaded",
		zap.String("path", cfg.SeedFilePath),
		zap.Int("count", storage.Len()),
	)

	return storage, nil
}
