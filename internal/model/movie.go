package model

import (
	"slices"
	"strings"
)

// Genre жанр фильма из фиксированного перечисления
type Genre string

const (
	GenreCrime     Genre = "Crime"
	GenreAction    Genre = "Action"
	GenreAdventure Genre = "Adventure"
	GenreComedy    Genre = "Comedy"
	GenreDrama     Genre = "Drama"
	GenreFantasy   Genre = "Fantasy"
	GenreHorror    Genre = "Horror"
	GenreMystery   Genre = "Mystery"
	GenreThriller  Genre = "Thriller"
	GenreSciFi     Genre = "Sci-Fi"
)

// Genres возвращает все допустимые жанры в каноническом порядке
func Genres() []Genre {
	return []Genre{
		GenreCrime, GenreAction, GenreAdventure, GenreComedy, GenreDrama,
		GenreFantasy, GenreHorror, GenreMystery, GenreThriller, GenreSciFi,
	}
}

func (g Genre) String() string {
	return string(g)
}

// Movie представляет запись фильма в коллекции
type Movie struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Year     int      `json:"year"`
	Director string   `json:"director"`
	Duration int      `json:"duration"`
	Rate     *float64 `json:"rate,omitempty"`
	Poster   string   `json:"poster"`
	Genre    []Genre  `json:"genre"`
}

// MoviePatch содержит только присланные клиентом поля; nil означает "поле не передано"
type MoviePatch struct {
	Title    *string
	Year     *int
	Director *string
	Duration *int
	Rate     *float64
	Poster   *string
	Genre    []Genre
}

// HasGenre проверяет, содержит ли фильм жанр без учёта регистра
func (m Movie) HasGenre(genre string) bool {
	return slices.ContainsFunc(m.Genre, func(g Genre) bool {
		return strings.EqualFold(string(g), genre)
	})
}

// Clone возвращает копию фильма, не разделяющую память с оригиналом
func (m Movie) Clone() Movie {
	clone := m
	clone.Genre = slices.Clone(m.Genre)
	if m.Rate != nil {
		rate := *m.Rate
		clone.Rate = &rate
	}
	return clone
}

// Apply накладывает частичное обновление поверх фильма.
// Поля, отсутствующие в patch, остаются без изменений; ID не меняется никогда.
func (m Movie) Apply(patch MoviePatch) Movie {
	updated := m.Clone()

	if patch.Title != nil {
		updated.Title = *patch.Title
	}
	if patch.Year != nil {
		updated.Year = *patch.Year
	}
	if patch.Director != nil {
		updated.Director = *patch.Director
	}
	if patch.Duration != nil {
		updated.Duration = *patch.Duration
	}
	if patch.Rate != nil {
		rate := *patch.Rate
		updated.Rate = &rate
	}
	if patch.Poster != nil {
		updated.Poster = *patch.Poster
	}
	if patch.Genre != nil {
		updated.Genre = slices.Clone(patch.Genre)
	}

	return updated
}
