package usecase

import (
	"errors"
	"fmt"

	"github.com/avc-dev/movies-api/internal/store"
)

var (
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrMovieNotFound      = errors.New("movie not found")
)

// wrapStoreError приводит ошибку хранилища к ошибке уровня usecase
func wrapStoreError(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrMovieNotFound, err)
	}
	return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
}
