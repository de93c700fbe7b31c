package usecase

import (
	"github.com/avc-dev/movies-api/internal/model"
)

// ListMovies возвращает все фильмы или только фильмы указанного жанра.
// Фильтром считается только непустой genre; значение сравнивается как есть.
func (u *MovieUsecase) ListMovies(genre string) []model.Movie {
	return u.repo.ListMovies(genre)
}
