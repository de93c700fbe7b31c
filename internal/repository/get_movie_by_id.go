package repository

import (
	"fmt"

	"github.com/avc-dev/movies-api/internal/model"
)

func (r Repository) GetMovieByID(id string) (model.Movie, error) {
	movie, err := r.underlying.Read(id)

	if err != nil {
		return model.Movie{}, fmt.Errorf("failed to get movie by id: %w", err)
	}

	return movie, nil
}
