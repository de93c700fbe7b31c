package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// clientIdleTTL время, после которого неактивный клиент забывается
const clientIdleTTL = 3 * time.Minute

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter ограничивает частоту запросов отдельно для каждого IP-адреса
type RateLimiter struct {
	rps     rate.Limit
	burst   int
	logger  *zap.Logger
	now     func() time.Time

	mu        sync.Mutex
	clients   map[string]*client
	lastSweep time.Time
}

// NewRateLimiter создает ограничитель; rps <= 0 отключает ограничение
func NewRateLimiter(rps float64, burst int, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{
		rps:     rate.Limit(rps),
		burst:   burst,
		logger:  logger,
		now:     time.Now,
		clients: make(map[string]*client),
	}
}

// Enabled сообщает, включено ли ограничение
func (l *RateLimiter) Enabled() bool {
	return l.rps > 0
}

// allow расходует токен клиента ip
func (l *RateLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	c, ok := l.clients[ip]
	if !ok {
		c = &client{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.clients[ip] = c
	}
	c.lastSeen = now

	return c.limiter.AllowN(now, 1)
}

// sweep забывает неактивных клиентов не чаще одного раза за clientIdleTTL.
// Вызывается под l.mu.
func (l *RateLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < clientIdleTTL {
		return
	}
	l.lastSweep = now

	for key, c := range l.clients {
		if now.Sub(c.lastSeen) > clientIdleTTL {
			delete(l.clients, key)
		}
	}
}

// Handler оборачивает next
func (l *RateLimiter) Handler(next http.Handler) http.Handler {
	if !l.Enabled() {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !l.allow(ip) {
			l.logger.Warn("rate limit exceeded",
				zap.String("remote_addr", r.RemoteAddr),
				zap.String("uri", r.RequestURI),
			)
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Rate limit exceeded"})
			return
		}

		next.ServeHTTP(w, r)
	})
}
