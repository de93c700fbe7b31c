package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avc-dev/movies-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var testOrigins = config.OriginList{"http://localhost:8080", "http://localhost:1234", "https://movies.com"}

func TestCORS_Handler(t *testing.T) {
	tests := []struct {
		name                string
		method              string
		origin              string
		requestMethod       string
		expectedStatus      int
		expectedAllowOrigin string
		reachesHandler      bool
	}{
		{
			name:           "no origin passes through",
			method:         http.MethodGet,
			expectedStatus: http.StatusOK,
			reachesHandler: true,
		},
		{
			name:                "allowed origin echoed",
			method:              http.MethodGet,
			origin:              "https://movies.com",
			expectedStatus:      http.StatusOK,
			expectedAllowOrigin: "https://movies.com",
			reachesHandler:      true,
		},
		{
			name:                "allowed origin on delete",
			method:              http.MethodDelete,
			origin:              "http://localhost:1234",
			expectedStatus:      http.StatusOK,
			expectedAllowOrigin: "http://localhost:1234",
			reachesHandler:      true,
		},
		{
			name:           "unknown origin rejected",
			method:         http.MethodGet,
			origin:         "https://evil.example",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "origin match is exact",
			method:         http.MethodGet,
			origin:         "https://movies.com:443",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:                "preflight from allowed origin",
			method:              http.MethodOptions,
			origin:              "http://localhost:8080",
			requestMethod:       http.MethodPatch,
			expectedStatus:      http.StatusNoContent,
			expectedAllowOrigin: "http://localhost:8080",
		},
		{
			name:           "options without origin",
			method:         http.MethodOptions,
			expectedStatus: http.StatusNoContent,
		},
		{
			name:                "options from allowed origin without request method",
			method:              http.MethodOptions,
			origin:              "https://movies.com",
			expectedStatus:      http.StatusNoContent,
			expectedAllowOrigin: "https://movies.com",
		},
		{
			name:           "preflight from unknown origin",
			method:         http.MethodOptions,
			origin:         "https://evil.example",
			requestMethod:  http.MethodPatch,
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			reached := false
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				reached = true
				w.WriteHeader(http.StatusOK)
			})
			wrappedHandler := NewCORS(testOrigins, zap.NewNop()).Handler(handler)

			req := httptest.NewRequest(tt.method, "/movies", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.requestMethod != "" {
				req.Header.Set("Access-Control-Request-Method", tt.requestMethod)
			}
			rec := httptest.NewRecorder()

			// Act
			wrappedHandler.ServeHTTP(rec, req)

			// Assert
			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedAllowOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.reachesHandler, reached)
			assert.Contains(t, rec.Header().Values("Vary"), "Origin")
		})
	}
}

func TestCORS_RejectionBody(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called")
	})
	wrappedHandler := NewCORS(testOrigins, zap.NewNop()).Handler(handler)

	req := httptest.NewRequest(http.MethodPost, "/movies", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()

	wrappedHandler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Not allowed by CORS\n", rec.Body.String())
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Preflight(t *testing.T) {
	// Arrange
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("preflight must not reach handler")
	})
	wrappedHandler := NewCORS(testOrigins, zap.NewNop()).Handler(handler)

	req := httptest.NewRequest(http.MethodOptions, "/movies/42", nil)
	req.Header.Set("Origin", "https://movies.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rec := httptest.NewRecorder()

	// Act
	wrappedHandler.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, AllowedMethods, rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))
	assert.Empty(t, rec.Body.String())
}

func TestCORS_IsAllowed(t *testing.T) {
	allowed := config.OriginList{"https://movies.com"}
	cors := NewCORS(allowed, zap.NewNop())

	// Изменение исходного среза не влияет на middleware
	allowed[0] = "https://changed.example"

	assert.True(t, cors.IsAllowed(""))
	assert.True(t, cors.IsAllowed("https://movies.com"))
	assert.False(t, cors.IsAllowed("https://changed.example"))
}

func TestCORS_LogsRejection(t *testing.T) {
	observedZapCore, observedLogs := observer.New(zapcore.WarnLevel)
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	wrappedHandler := NewCORS(testOrigins, zap.New(observedZapCore)).Handler(handler)

	req := httptest.NewRequest(http.MethodGet, "/movies", nil)
	req.Header.Set("Origin", "https://evil.example")
	wrappedHandler.ServeHTTP(httptest.NewRecorder(), req)

	entries := observedLogs.FilterMessage("CORS origin rejected").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "https://evil.example", entries[0].ContextMap()["origin"])
}
