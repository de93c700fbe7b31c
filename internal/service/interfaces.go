package service

import "github.com/avc-dev/movies-api/internal/model"

// MovieWriter определяет методы хранилища, нужные для создания фильма
type MovieWriter interface {
	// IsIDUnique сообщает, свободен ли идентификатор
	IsIDUnique(id string) bool
	// CreateMovie сохраняет фильм в конец коллекции
	// Возвращает ошибку если идентификатор уже занят
	CreateMovie(movie model.Movie) error
}

// Generator генерирует кандидатов в идентификаторы фильмов
type Generator interface {
	GenerateID() string
}
