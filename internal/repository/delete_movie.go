package repository

import "fmt"

func (r Repository) DeleteMovie(id string) error {
	if err := r.underlying.Delete(id); err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}

	return nil
}
