package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetMovie обрабатывает GET /movies/{id}
func (h *Handler) GetMovie(w http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")

	movie, err := h.usecase.GetMovie(id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, movie)
}
