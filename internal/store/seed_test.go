package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/avc-dev/movies-api/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeed(t *testing.T, content string) *FileStorage {
	t.Helper()

	filePath := filepath.Join(t.TempDir(), "movies.json")
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))

	return NewFileStorage(filePath)
}

func TestNewSeededStore_Success(t *testing.T) {
	// Arrange
	fs := writeSeed(t, `[
		{"id": "1", "title": "Inception", "year": 2010, "director": "Christopher Nolan", "duration": 148,
		 "poster": "https://example.com/inception.jpg", "genre": ["Action", "Sci-Fi"], "rate": 8.8},
		{"id": "2", "title": "The Matrix", "year": 1999, "director": "Lana Wachowski", "duration": 136,
		 "poster": "https://example.com/matrix.jpg", "genre": ["Action", "Sci-Fi"]}
	]`)

	// Act
	store, err := NewSeededStore(fs, validation.New())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, store.Len())

	movie, err := store.Read("1")
	require.NoError(t, err)
	assert.Equal(t, "Inception", movie.Title)
	assert.Equal(t, 8.8, *movie.Rate)

	assert.Equal(t, []string{"1", "2"}, ids(store.List("ACTION")))
	assert.Empty(t, store.List("Horror"))
}

func TestNewSeededStore_MissingFile(t *testing.T) {
	fs := NewFileStorage(filepath.Join(t.TempDir(), "absent.json"))

	store, err := NewSeededStore(fs, validation.New())

	require.NoError(t, err)
	assert.Equal(t, 0, store.Len())
}

func TestNewSeededStore_InvalidRecord(t *testing.T) {
	fs := writeSeed(t, `[{"id": "1", "title": "No poster", "year": 2010, "director": "x", "duration": 1, "genre": ["Drama"]}]`)

	_, err := NewSeededStore(fs, validation.New())

	var validationErr *validation.Error
	require.ErrorAs(t, err, &validationErr)
	assert.True(t, validationErr.HasField("poster"))
}

func TestNewSeededStore_DuplicateID(t *testing.T) {
	record := `{"id": "1", "title": "A", "year": 2010, "director": "x", "duration": 1, "poster": "https://a.io/p.jpg", "genre": ["Drama"]}`
	fs := writeSeed(t, "["+record+","+record+"]")

	_, err := NewSeededStore(fs, validation.New())

	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestNewSeededStore_MalformedFile(t *testing.T) {
	fs := writeSeed(t, `not json`)

	_, err := NewSeededStore(fs, validation.New())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load seed file")
}
