package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/avc-dev/movies-api/internal/model"
	"github.com/avc-dev/movies-api/internal/usecase"
	"github.com/avc-dev/movies-api/internal/validation"
	"go.uber.org/zap"
)

// MaxBodySize ограничение на размер тела запроса
const MaxBodySize = 100 << 10

const (
	msgMovieNotFound   = "Movie not found"
	msgMovieDeleted    = "Movie deleted"
	msgBodyTooLarge    = "Request body too large"
	msgBodyUnreadable  = "Failed to read request body"
	msgInternalFailure = "Internal server error"
)

// MovieUsecase определяет интерфейс бизнес-логики, которую вызывают обработчики
type MovieUsecase interface {
	ListMovies(genre string) []model.Movie
	GetMovie(id string) (model.Movie, error)
	CreateMovie(payload []byte) (model.Movie, error)
	UpdateMovie(id string, payload []byte) (model.Movie, error)
	DeleteMovie(id string) error
}

// ErrorResponse тело ответа с ошибкой.
// Для ошибок валидации Error содержит массив нарушений, для остальных строку.
type ErrorResponse struct {
	Error any `json:"error"`
}

// MessageResponse тело ответа на удаление
type MessageResponse struct {
	Message string `json:"message"`
}

// Handler обрабатывает HTTP запросы к коллекции фильмов
type Handler struct {
	usecase MovieUsecase
	logger  *zap.Logger
}

// New создает новый Handler
func New(usecase MovieUsecase, logger *zap.Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// writeJSON сериализует value в тело ответа с указанным статусом
func (h *Handler) writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(value); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

// readBody читает тело запроса с ограничением по размеру.
// При ошибке ответ уже записан, и обработчик должен просто вернуться.
func (h *Handler) readBody(w http.ResponseWriter, req *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, req.Body, MaxBodySize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.logger.Warn("request body too large",
				zap.Int64("limit", tooLarge.Limit),
				zap.String("remote_addr", req.RemoteAddr),
			)
			h.writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: msgBodyTooLarge})
			return nil, false
		}

		h.logger.Warn("failed to read request body",
			zap.Error(err),
			zap.String("remote_addr", req.RemoteAddr),
		)
		h.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgBodyUnreadable})
		return nil, false
	}

	return body, true
}

// handleError переводит ошибку usecase в HTTP ответ
func (h *Handler) handleError(w http.ResponseWriter, err error) {
	var validationErr *validation.Error

	switch {
	case errors.As(err, &validationErr):
		h.logger.Debug("validation failed", zap.Error(err))
		h.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: validationErr})
	case errors.Is(err, usecase.ErrMovieNotFound):
		h.writeJSON(w, http.StatusNotFound, ErrorResponse{Error: msgMovieNotFound})
	default:
		h.logger.Error("request failed", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: msgInternalFailure})
	}
}
