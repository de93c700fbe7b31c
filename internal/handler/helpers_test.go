package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"
)

// newRequest создает запрос с chi контекстом, содержащим параметр id
func newRequest(method, target, id string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}
	return req
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

func ptr[T any](v T) *T {
	return &v
}
