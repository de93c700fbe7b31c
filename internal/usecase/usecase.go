package usecase

import (
	"github.com/avc-dev/movies-api/internal/model"
	"go.uber.org/zap"
)

// MovieRepository определяет интерфейс для работы с хранилищем фильмов
type MovieRepository interface {
	ListMovies(genre string) []model.Movie
	GetMovieByID(id string) (model.Movie, error)
	Exists(id string) (bool, error)
	UpdateMovie(id string, patch model.MoviePatch) (model.Movie, error)
	DeleteMovie(id string) error
}

// MovieService определяет интерфейс сервиса создания фильмов
type MovieService interface {
	CreateMovie(movie model.Movie) (model.Movie, error)
}

// MovieValidator проверяет тела запросов на создание и изменение фильма
type MovieValidator interface {
	ValidateMovie(payload []byte) (model.Movie, error)
	ValidatePartialMovie(payload []byte) (model.MoviePatch, error)
}

// MovieUsecase содержит бизнес-логику для работы с фильмами
type MovieUsecase struct {
	repo      MovieRepository
	service   MovieService
	validator MovieValidator
	logger    *zap.Logger
}

// NewMovieUsecase создает новый экземпляр MovieUsecase
func NewMovieUsecase(repo MovieRepository, service MovieService, validator MovieValidator, logger *zap.Logger) *MovieUsecase {
	return &MovieUsecase{
		repo:      repo,
		service:   service,
		validator: validator,
		logger:    logger,
	}
}
