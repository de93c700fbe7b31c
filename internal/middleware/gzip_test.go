package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// compressString сжимает строку с помощью gzip
func compressString(t *testing.T, s string) []byte {
	t.Helper()

	var buf bytes.Buffer
	gzipWriter := gzip.NewWriter(&buf)
	_, err := gzipWriter.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, gzipWriter.Close())

	return buf.Bytes()
}

// decompressBytes распаковывает данные gzip
func decompressBytes(t *testing.T, data []byte) string {
	t.Helper()

	reader, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer reader.Close()

	result, err := io.ReadAll(reader)
	require.NoError(t, err)

	return string(result)
}

func TestGzip_CompressResponse(t *testing.T) {
	const movies = `[{"id":"1","title":"Heat","genre":["Crime"]}]`

	tests := []struct {
		name           string
		method         string
		status         int
		contentType    string
		acceptEncoding string
		body           string
		shouldCompress bool
	}{
		{
			name:           "compress JSON response",
			method:         http.MethodGet,
			status:         http.StatusOK,
			contentType:    "application/json",
			acceptEncoding: "gzip",
			body:           movies,
			shouldCompress: true,
		},
		{
			name:           "compress JSON with charset",
			method:         http.MethodGet,
			status:         http.StatusOK,
			contentType:    "application/json; charset=utf-8",
			acceptEncoding: "gzip, deflate, br",
			body:           movies,
			shouldCompress: true,
		},
		{
			name:           "compress JSON error response",
			method:         http.MethodPost,
			status:         http.StatusBadRequest,
			contentType:    "application/json",
			acceptEncoding: "gzip",
			body:           `{"error":[{"field":"title","message":"Movie title is required"}]}`,
			shouldCompress: true,
		},
		{
			name:           "do not compress without Accept-Encoding",
			method:         http.MethodGet,
			status:         http.StatusOK,
			contentType:    "application/json",
			body:           movies,
			shouldCompress: false,
		},
		{
			name:           "do not compress text/plain",
			method:         http.MethodGet,
			status:         http.StatusForbidden,
			contentType:    "text/plain; charset=utf-8",
			acceptEncoding: "gzip",
			body:           "Not allowed by CORS",
			shouldCompress: false,
		},
		{
			name:           "do not compress no content",
			method:         http.MethodOptions,
			status:         http.StatusNoContent,
			contentType:    "application/json",
			acceptEncoding: "gzip",
			body:           "",
			shouldCompress: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			wrappedHandler := NewGzip(zaptest.NewLogger(t)).Handler(handler)

			req := httptest.NewRequest(tt.method, "/movies", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rec := httptest.NewRecorder()

			// Act
			wrappedHandler.ServeHTTP(rec, req)

			// Assert
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Header().Values("Vary"), "Accept-Encoding")

			if tt.shouldCompress {
				assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.body, decompressBytes(t, rec.Body.Bytes()))
				return
			}

			assert.Empty(t, rec.Header().Get("Content-Encoding"))
			assert.Equal(t, tt.body, rec.Body.String())
		})
	}
}

func TestGzip_CustomContentTypes(t *testing.T) {
	g := NewGzip(zap.NewNop(), "text/plain", "TEXT/HTML")

	assert.True(t, g.compressible("text/plain; charset=utf-8"))
	assert.True(t, g.compressible("text/html"))
	assert.False(t, g.compressible("application/json"))
}

func TestGzip_DefaultContentTypes(t *testing.T) {
	tests := []struct {
		contentType string
		expected    bool
	}{
		{"application/json", true},
		{"application/json; charset=utf-8", true},
		{"APPLICATION/JSON", true},
		{"text/html", false},
		{"text/plain", false},
		{"image/png", false},
		{"", false},
	}

	g := NewGzip(zap.NewNop())

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			assert.Equal(t, tt.expected, g.compressible(tt.contentType))
		})
	}
}

func TestGzip_DecompressRequest(t *testing.T) {
	const payload = `{"title":"Heat","year":1995}`

	tests := []struct {
		name            string
		body            []byte
		contentEncoding string
		expectedStatus  int
	}{
		{
			name:            "decompress gzip request",
			body:            compressString(t, payload),
			contentEncoding: "gzip",
			expectedStatus:  http.StatusOK,
		},
		{
			name:           "pass through plain request",
			body:           []byte(payload),
			expectedStatus: http.StatusOK,
		},
		{
			name:            "reject invalid gzip data",
			body:            []byte("not gzip data"),
			contentEncoding: "gzip",
			expectedStatus:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			var receivedBody string
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				body, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				receivedBody = string(body)
				w.WriteHeader(http.StatusOK)
			})
			wrappedHandler := NewGzip(zaptest.NewLogger(t)).Handler(handler)

			req := httptest.NewRequest(http.MethodPost, "/movies", bytes.NewReader(tt.body))
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}
			rec := httptest.NewRecorder()

			// Act
			wrappedHandler.ServeHTTP(rec, req)

			// Assert
			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, payload, receivedBody)
			}
		})
	}
}

func TestGzip_LogsDecompressionError(t *testing.T) {
	// Arrange
	observedZapCore, observedLogs := observer.New(zapcore.ErrorLevel)
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	wrappedHandler := NewGzip(zap.New(observedZapCore)).Handler(handler)

	req := httptest.NewRequest(http.MethodPost, "/movies", strings.NewReader("invalid gzip data"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	// Act
	wrappedHandler.ServeHTTP(rec, req)

	// Assert
	entries := observedLogs.FilterMessage("Failed to decompress request body").All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].ContextMap(), "error")
}
