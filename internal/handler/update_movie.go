package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// UpdateMovie обрабатывает PATCH /movies/{id}
func (h *Handler) UpdateMovie(w http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")

	body, ok := h.readBody(w, req)
	if !ok {
		return
	}

	movie, err := h.usecase.UpdateMovie(id, body)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, movie)
}
