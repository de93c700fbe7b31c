package repository

import (
	"fmt"

	"github.com/avc-dev/movies-api/internal/model"
)

func (r Repository) UpdateMovie(id string, patch model.MoviePatch) (model.Movie, error) {
	movie, err := r.underlying.Update(id, patch)
	if err != nil {
		return model.Movie{}, fmt.Errorf("failed to update movie: %w", err)
	}

	return movie, nil
}
