package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avc-dev/movies-api/internal/mocks"
	"github.com/avc-dev/movies-api/internal/model"
	"github.com/avc-dev/movies-api/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const createPayload = `{"title":"Arrival","year":2016,"director":"Denis Villeneuve","duration":116,"poster":"https://example.com/arrival.jpg","genre":["Drama","Sci-Fi"]}`

// TestCreateMovie_Success проверяет успешное создание фильма
func TestCreateMovie_Success(t *testing.T) {
	// Arrange
	mockUsecase := mocks.NewMockMovieUsecase(t)
	created := model.Movie{
		ID:       "6f1c2b9a-6a2e-4b7a-9d51-0c9e8f7a6b5c",
		Title:    "Arrival",
		Year:     2016,
		Director: "Denis Villeneuve",
		Duration: 116,
		Poster:   "https://example.com/arrival.jpg",
		Genre:    []model.Genre{model.GenreDrama, model.GenreSciFi},
	}

	mockUsecase.EXPECT().
		CreateMovie([]byte(createPayload)).
		Return(created, nil).
		Once()

	handler := New(mockUsecase, zap.NewNop())
	req := newRequest(http.MethodPost, "/movies", "", jsonBody(createPayload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	// Act
	handler.CreateMovie(w, req)

	// Assert
	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var response model.Movie
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	assert.Equal(t, created, response)
	assert.Nil(t, response.Rate, "rate must be omitted when not provided")
}

// TestCreateMovie_ValidationError проверяет формат ответа с нарушениями валидации
func TestCreateMovie_ValidationError(t *testing.T) {
	// Arrange
	mockUsecase := mocks.NewMockMovieUsecase(t)
	validationErr := &validation.Error{Issues: []validation.FieldError{
		{Field: "poster", Message: "Poster must be a valid URL"},
		{Field: "genre", Message: "Movie genre is required"},
	}}

	mockUsecase.EXPECT().
		CreateMovie(mock.Anything).
		Return(model.Movie{}, validationErr).
		Once()

	handler := New(mockUsecase, zap.NewNop())
	w := httptest.NewRecorder()

	// Act
	handler.CreateMovie(w, newRequest(http.MethodPost, "/movies", "", jsonBody(`{"poster":"not-a-url"}`)))

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": [
		{"field": "poster", "message": "Poster must be a valid URL"},
		{"field": "genre", "message": "Movie genre is required"}
	]}`, w.Body.String())
}

// TestCreateMovie_BodyTooLarge проверяет ограничение на размер тела запроса
func TestCreateMovie_BodyTooLarge(t *testing.T) {
	// Arrange
	mockUsecase := mocks.NewMockMovieUsecase(t)
	handler := New(mockUsecase, zap.NewNop())

	body := `{"title":"` + strings.Repeat("a", MaxBodySize) + `"}`
	w := httptest.NewRecorder()

	// Act
	handler.CreateMovie(w, newRequest(http.MethodPost, "/movies", "", bytes.NewBufferString(body)))

	// Assert
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.JSONEq(t, `{"error": "Request body too large"}`, w.Body.String())
}
