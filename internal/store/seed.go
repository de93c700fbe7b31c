package store

import (
	"fmt"

	"github.com/avc-dev/movies-api/internal/model"
)

// RecordValidator проверяет запись seed-файла по полной схеме фильма
type RecordValidator interface {
	ValidateStoredMovie(payload []byte) (model.Movie, error)
}

// NewSeededStore создаёт Store и загружает в него данные из seed-файла.
// Любая невалидная запись или повтор идентификатора прерывает загрузку целиком.
func NewSeededStore(fileStorage *FileStorage, validator RecordValidator) (*Store, error) {
	records, err := fileStorage.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load seed file %s: %w", fileStorage.Path(), err)
	}

	movies := make([]model.Movie, 0, len(records))
	for i, record := range records {
		movie, err := validator.ValidateStoredMovie(record)
		if err != nil {
			return nil, fmt.Errorf("invalid seed record #%d: %w", i, err)
		}
		movies = append(movies, movie)
	}

	store := NewStore()
	if err := store.InitializeWith(movies); err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	return store, nil
}
