package handler

import (
	"net/http"
)

// CreateMovie обрабатывает POST /movies
func (h *Handler) CreateMovie(w http.ResponseWriter, req *http.Request) {
	body, ok := h.readBody(w, req)
	if !ok {
		return
	}

	movie, err := h.usecase.CreateMovie(body)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, movie)
}
