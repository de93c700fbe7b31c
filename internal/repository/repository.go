package repository

import (
	"github.com/avc-dev/movies-api/internal/model"
)

type Store interface {
	List(genre string) []model.Movie
	Read(id string) (model.Movie, error)
	Append(movie model.Movie) error
	Update(id string, patch model.MoviePatch) (model.Movie, error)
	Delete(id string) error
	IsIDUnique(id string) bool
}

type Repository struct {
	underlying Store
}

func New(underlying Store) *Repository {
	return &Repository{underlying}
}

func (r Repository) IsIDUnique(id string) bool {
	return r.underlying.IsIDUnique(id)
}

// ListMovies возвращает фильмы в порядке хранения, genre пустой строкой отключает фильтр
func (r Repository) ListMovies(genre string) []model.Movie {
	return r.underlying.List(genre)
}
