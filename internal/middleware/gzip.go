package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// DefaultCompressibleTypes типы ответов, которые сжимаются, если не указано иное
var DefaultCompressibleTypes = []string{"application/json"}

// compressReader распаковывает тело запроса и закрывает оба потока
type compressReader struct {
	r          io.ReadCloser
	gzipReader *gzip.Reader
}

func newCompressReader(r io.ReadCloser) (*compressReader, error) {
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}

	return &compressReader{
		r:          r,
		gzipReader: gzipReader,
	}, nil
}

func (c *compressReader) Read(p []byte) (n int, err error) {
	return c.gzipReader.Read(p)
}

func (c *compressReader) Close() error {
	if err := c.gzipReader.Close(); err != nil {
		return err
	}
	return c.r.Close()
}

// mediaType отбрасывает параметры: "application/json; charset=utf-8" -> "application/json"
func mediaType(contentType string) string {
	return strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
}

// bodyAllowed сообщает, может ли ответ с таким статусом нести тело
func bodyAllowed(method string, status int) bool {
	if method == http.MethodHead {
		return false
	}
	return status != http.StatusNoContent && status != http.StatusNotModified
}

// gzipResponseWriter решает о сжатии в момент записи заголовков
type gzipResponseWriter struct {
	http.ResponseWriter
	gzip        *Gzip
	method      string
	gzipWriter  *gzip.Writer
	wroteHeader bool
	compressing bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	if bodyAllowed(w.method, statusCode) && w.gzip.compressible(w.Header().Get("Content-Type")) {
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length")
		w.gzipWriter = gzip.NewWriter(w.ResponseWriter)
		w.compressing = true
	}

	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}

	if w.compressing {
		return w.gzipWriter.Write(data)
	}

	return w.ResponseWriter.Write(data)
}

func (w *gzipResponseWriter) Close() error {
	if w.compressing {
		return w.gzipWriter.Close()
	}
	return nil
}

// Gzip распаковывает входящие gzip тела и сжимает ответы поддерживаемых типов
type Gzip struct {
	logger *zap.Logger
	types  map[string]struct{}
}

// NewGzip создает middleware сжатия; без contentTypes используются DefaultCompressibleTypes
func NewGzip(logger *zap.Logger, contentTypes ...string) *Gzip {
	if len(contentTypes) == 0 {
		contentTypes = DefaultCompressibleTypes
	}

	types := make(map[string]struct{}, len(contentTypes))
	for _, ct := range contentTypes {
		types[mediaType(ct)] = struct{}{}
	}

	return &Gzip{
		logger: logger,
		types:  types,
	}
}

func (g *Gzip) compressible(contentType string) bool {
	_, ok := g.types[mediaType(contentType)]
	return ok
}

// Handler оборачивает next
func (g *Gzip) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			cr, err := newCompressReader(r.Body)
			if err != nil {
				g.logger.Error("Failed to decompress request body",
					zap.Error(err),
					zap.String("uri", r.RequestURI),
					zap.String("method", r.Method),
					zap.String("remote_addr", r.RemoteAddr),
				)
				http.Error(w, "Failed to decompress request body", http.StatusBadRequest)
				return
			}
			defer func() {
				if err := cr.Close(); err != nil {
					g.logger.Warn("Failed to close compress reader",
						zap.Error(err),
						zap.String("uri", r.RequestURI),
					)
				}
			}()
			r.Body = cr
			r.Header.Del("Content-Encoding")
			r.ContentLength = -1
		}

		w.Header().Add("Vary", "Accept-Encoding")

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		gw := &gzipResponseWriter{
			ResponseWriter: w,
			gzip:           g,
			method:         r.Method,
		}
		defer func() {
			if err := gw.Close(); err != nil {
				g.logger.Error("Failed to close gzip writer",
					zap.Error(err),
					zap.String("uri", r.RequestURI),
				)
			}
		}()

		next.ServeHTTP(gw, r)
	})
}
