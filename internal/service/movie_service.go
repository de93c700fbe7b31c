package service

import (
	"errors"
	"fmt"

	"github.com/avc-dev/movies-api/internal/config"
	"github.com/avc-dev/movies-api/internal/model"
	"github.com/avc-dev/movies-api/internal/store"
)

// MovieService содержит бизнес-логику создания фильмов
type MovieService struct {
	repo        MovieWriter
	idGenerator Generator
	cfg         *config.Config
}

// NewMovieService создает новый экземпляр MovieService
func NewMovieService(repo MovieWriter, cfg *config.Config) *MovieService {
	return &MovieService{
		repo:        repo,
		idGenerator: NewUUIDGenerator(),
		cfg:         cfg,
	}
}

// CreateMovie присваивает фильму новый идентификатор и сохраняет его.
// Идентификатор из входных данных игнорируется.
func (s *MovieService) CreateMovie(movie model.Movie) (model.Movie, error) {
	for attempt := 0; attempt < s.cfg.Retry.MaxAttempts; attempt++ {
		id := s.idGenerator.GenerateID()
		if !s.repo.IsIDUnique(id) {
			continue
		}

		movie.ID = id
		err := s.repo.CreateMovie(movie)
		if err == nil {
			return movie, nil
		}
		// Идентификатор мог занять параллельный запрос между проверкой и записью
		if errors.Is(err, store.ErrAlreadyExists) {
			continue
		}

		return model.Movie{}, fmt.Errorf("failed to create movie: %w", err)
	}

	return model.Movie{}, fmt.Errorf("failed to generate unique id after %d attempts: %w", s.cfg.Retry.MaxAttempts, ErrMaxRetriesExceeded)
}
