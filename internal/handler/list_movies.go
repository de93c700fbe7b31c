package handler

import (
	"net/http"
)

// ListMovies обрабатывает GET /movies с необязательным параметром genre
func (h *Handler) ListMovies(w http.ResponseWriter, req *http.Request) {
	genre := req.URL.Query().Get("genre")

	movies := h.usecase.ListMovies(genre)

	h.writeJSON(w, http.StatusOK, movies)
}
