package store

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/avc-dev/movies-api/internal/model"
)

var (
	ErrNotFound      = errors.New("movie not found")
	ErrAlreadyExists = errors.New("movie already exists")
)

// Store хранит коллекцию фильмов в памяти в порядке добавления.
// Все методы возвращают копии, поэтому вызывающий код не может изменить коллекцию в обход Store.
type Store struct {
	movies []model.Movie
	mutex  sync.RWMutex
}

func NewStore() *Store {
	return &Store{
		movies: make([]model.Movie, 0),
	}
}

// InitializeWith заменяет содержимое хранилища начальным набором данных.
// Используется для загрузки seed-файла; идентификаторы должны быть уникальны.
func (s *Store) InitializeWith(movies []model.Movie) error {
	seen := make(map[string]struct{}, len(movies))
	data := make([]model.Movie, 0, len(movies))

	for _, movie := range movies {
		if _, exists := seen[movie.ID]; exists {
			return fmt.Errorf("id %s: %w", movie.ID, ErrAlreadyExists)
		}
		seen[movie.ID] = struct{}{}
		data = append(data, movie.Clone())
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.movies = data

	return nil
}

// List возвращает фильмы в порядке хранения.
// Непустой genre оставляет только фильмы с этим жанром (без учета регистра).
func (s *Store) List(genre string) []model.Movie {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	result := make([]model.Movie, 0, len(s.movies))
	for _, movie := range s.movies {
		if genre != "" && !movie.HasGenre(genre) {
			continue
		}
		result = append(result, movie.Clone())
	}

	return result
}

func (s *Store) Read(id string) (model.Movie, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return model.Movie{}, fmt.Errorf("id %s: %w", id, ErrNotFound)
	}

	return s.movies[idx].Clone(), nil
}

// IsIDUnique проверяет, что идентификатор еще не занят
func (s *Store) IsIDUnique(id string) bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.indexOf(id) < 0
}

// Append добавляет фильм в конец коллекции
func (s *Store) Append(movie model.Movie) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	// Проверяем существование напрямую, без вызова IsIDUnique (чтобы избежать повторной блокировки)
	if s.indexOf(movie.ID) >= 0 {
		return fmt.Errorf("id %s: %w", movie.ID, ErrAlreadyExists)
	}

	s.movies = append(s.movies, movie.Clone())

	return nil
}

// Update накладывает patch на существующий фильм и сохраняет результат на той же позиции
func (s *Store) Update(id string, patch model.MoviePatch) (model.Movie, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return model.Movie{}, fmt.Errorf("id %s: %w", id, ErrNotFound)
	}

	updated := s.movies[idx].Apply(patch)
	s.movies[idx] = updated

	return updated.Clone(), nil
}

// Delete удаляет фильм, сохраняя порядок остальных
func (s *Store) Delete(id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("id %s: %w", id, ErrNotFound)
	}

	s.movies = slices.Delete(s.movies, idx, idx+1)

	return nil
}

// Len возвращает количество фильмов в коллекции
func (s *Store) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return len(s.movies)
}

// indexOf выполняет линейный поиск; вызывающий код должен держать блокировку
func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.movies, func(m model.Movie) bool {
		return m.ID == id
	})
}
