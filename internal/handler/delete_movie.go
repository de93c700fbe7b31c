package handler

import (
	"errors"
	"net/http"

	"github.com/avc-dev/movies-api/internal/usecase"
	"github.com/go-chi/chi/v5"
)

// DeleteMovie обрабатывает DELETE /movies/{id}.
// В отличие от остальных маршрутов, ответ "не найден" приходит в поле message.
func (h *Handler) DeleteMovie(w http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")

	err := h.usecase.DeleteMovie(id)
	if errors.Is(err, usecase.ErrMovieNotFound) {
		h.writeJSON(w, http.StatusNotFound, MessageResponse{Message: msgMovieNotFound})
		return
	}
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, MessageResponse{Message: msgMovieDeleted})
}
