package repository

import (
	"fmt"

	"github.com/avc-dev/movies-api/internal/model"
)

func (r Repository) CreateMovie(movie model.Movie) error {
	if err := r.underlying.Append(movie); err != nil {
		return fmt.Errorf("failed to create movie: %w", err)
	}

	return nil
}
