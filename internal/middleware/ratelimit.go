package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"thrivecms/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// visitorTTL — через сколько неактивности запись по IP вычищается из карты.
const visitorTTL = time.Hour

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type ipLimiters struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rps      rate.Limit
	burst    int
}

func newIPLimiters(rps rate.Limit, burst int) *ipLimiters {
	return &ipLimiters{
		visitors: make(map[string]*visitor),
		rps:      rps,
		burst:    burst,
	}
}

func (l *ipLimiters) limiterFor(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v.limiter
}

// sweep удаляет записи, не видевшие запросов дольше ttl.
func (l *ipLimiters) sweep(ttl time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	removed := 0
	cutoff := time.Now().Add(-ttl)
	for ip, v := range l.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(l.visitors, ip)
			removed++
		}
	}
	return removed
}

func (l *ipLimiters) startSweeper() {
	go func() {
		ticker := time.NewTicker(visitorTTL)
		defer ticker.Stop()
		for range ticker.C {
			if n := l.sweep(visitorTTL); n > 0 {
				logger.Log.Info("Очистка лимитеров по IP", zap.Int("удалено", n))
			}
		}
	}()
}

// RateLimit ограничивает частоту запросов по IP. Мы сами деградируем
// под 429 от контент-бэкенда, так что и свою админку ведём так же.
// Неактивные IP периодически вычищаются, чтобы карта не росла бесконечно.
func RateLimit(rps rate.Limit, burst int) func(http.Handler) http.Handler {
	limiters := newIPLimiters(rps, burst)
	limiters.startSweeper()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			if !limiters.limiterFor(ip).Allow() {
				logger.Log.Warn("Превышен лимит запросов",
					zap.String("ip", ip), zap.String("path", r.URL.Path))
				w.Header().Set("Retry-After", time.Now().Add(time.Second).Format(http.TimeFormat))
				http.Error(w, "Слишком много запросов", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
