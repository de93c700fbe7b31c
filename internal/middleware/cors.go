package middleware

import (
	"net/http"
	"slices"

	"github.com/avc-dev/movies-api/internal/config"
	"go.uber.org/zap"
)

// AllowedMethods значение Access-Control-Allow-Methods в ответе на preflight
const AllowedMethods = "GET,HEAD,PUT,PATCH,POST,DELETE"

// CORS пропускает запросы без Origin и запросы от origin из списка разрешенных.
// Остальные запросы получают 403 и до обработчиков не доходят.
// Любой OPTIONS от допустимого клиента считается preflight и получает 204.
type CORS struct {
	allowed config.OriginList
	logger  *zap.Logger
}

// NewCORS создает CORS middleware с заданным списком origin
func NewCORS(allowed config.OriginList, logger *zap.Logger) *CORS {
	return &CORS{
		allowed: slices.Clone(allowed),
		logger:  logger,
	}
}

// IsAllowed сообщает, разрешен ли origin; пустой origin разрешен всегда
func (c *CORS) IsAllowed(origin string) bool {
	return origin == "" || c.allowed.Contains(origin)
}

// Handler оборачивает next
func (c *CORS) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		w.Header().Add("Vary", "Origin")

		if !c.IsAllowed(origin) {
			c.logger.Warn("CORS origin rejected",
				zap.String("origin", origin),
				zap.String("method", r.Method),
				zap.String("uri", r.RequestURI),
			)
			http.Error(w, "Not allowed by CORS", http.StatusForbidden)
			return
		}

		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		}

		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", AllowedMethods)
			if headers := r.Header.Get("Access-Control-Request-Headers"); headers != "" {
				w.Header().Set("Access-Control-Allow-Headers", headers)
				w.Header().Add("Vary", "Access-Control-Request-Headers")
			}
			w.Header().Set("Content-Length", "0")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
