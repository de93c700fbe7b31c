package repository

import (
	"testing"

	"github.com/avc-dev/movies-api/internal/model"
	"github.com/avc-dev/movies-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepository(t *testing.T) *Repository {
	t.Helper()

	s := store.NewStore()
	require.NoError(t, s.InitializeWith([]model.Movie{
		{ID: "1", Title: "Inception", Genre: []model.Genre{model.GenreAction}},
		{ID: "2", Title: "Heat", Genre: []model.Genre{model.GenreCrime}},
	}))

	return New(s)
}

func TestRepository_ListMovies(t *testing.T) {
	repo := newRepository(t)

	assert.Len(t, repo.ListMovies(""), 2)
	assert.Len(t, repo.ListMovies("crime"), 1)
	assert.Empty(t, repo.ListMovies("Drama"))
}

func TestRepository_GetMovieByID(t *testing.T) {
	repo := newRepository(t)

	movie, err := repo.GetMovieByID("2")
	require.NoError(t, err)
	assert.Equal(t, "Heat", movie.Title)

	_, err = repo.GetMovieByID("missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Contains(t, err.Error(), "failed to get movie by id")
}

func TestRepository_CreateMovie(t *testing.T) {
	repo := newRepository(t)

	require.NoError(t, repo.CreateMovie(model.Movie{ID: "3", Title: "Alien"}))
	assert.False(t, repo.IsIDUnique("3"))

	err := repo.CreateMovie(model.Movie{ID: "3", Title: "Aliens"})
	assert.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestRepository_UpdateMovie(t *testing.T) {
	repo := newRepository(t)
	title := "Heat (1995)"

	movie, err := repo.UpdateMovie("2", model.MoviePatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, movie.Title)

	_, err = repo.UpdateMovie("missing", model.MoviePatch{Title: &title})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRepository_DeleteMovie(t *testing.T) {
	repo := newRepository(t)

	require.NoError(t, repo.DeleteMovie("1"))
	assert.True(t, repo.IsIDUnique("1"))

	err := repo.DeleteMovie("1")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRepository_Exists(t *testing.T) {
	repo := newRepository(t)

	exists, err := repo.Exists("1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists("missing")
	require.NoError(t, err)
	assert.False(t, exists)
}
