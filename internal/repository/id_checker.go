package repository

import (
	"errors"
	"fmt"

	"github.com/avc-dev/movies-api/internal/store"
)

// Exists проверяет существование фильма в хранилище
// Возвращает ошибку только в случае проблем с хранилищем (не "not found")
func (r *Repository) Exists(id string) (bool, error) {
	_, err := r.underlying.Read(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check movie existence: %w", err)
	}

	return true, nil
}
