package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimit_BurstExceeded(t *testing.T) {
	handler := RateLimit(1, 2)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func() int {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/services", nil)
		req.RemoteAddr = "10.0.0.1:55000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := do(); code != http.StatusOK {
		t.Fatalf("первый запрос: ожидался 200, получен %d", code)
	}
	if code := do(); code != http.StatusOK {
		t.Fatalf("второй запрос: ожидался 200, получен %d", code)
	}
	if code := do(); code != http.StatusTooManyRequests {
		t.Errorf("третий запрос: ожидался 429, получен %d", code)
	}
}

func TestRateLimit_PerIPIsolation(t *testing.T) {
	handler := RateLimit(1, 1)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/services", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	do("10.0.0.1:55000")
	if code := do("10.0.0.1:55000"); code != http.StatusTooManyRequests {
		t.Fatalf("исчерпанный IP: ожидался 429, получен %d", code)
	}
	if code := do("10.0.0.2:55000"); code != http.StatusOK {
		t.Errorf("другой IP не должен упираться в чужой лимит, получен %d", code)
	}
}

func TestIPLimiters_SweepRemovesIdle(t *testing.T) {
	l := newIPLimiters(1, 1)

	l.limiterFor("10.0.0.1")
	l.limiterFor("10.0.0.2")

	l.mu.Lock()
	l.visitors["10.0.0.1"].lastSeen = time.Now().Add(-2 * time.Hour)
	l.mu.Unlock()

	if removed := l.sweep(time.Hour); removed != 1 {
		t.Fatalf("ожидалось удаление одной записи, удалено %d", removed)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.visitors["10.0.0.1"]; ok {
		t.Error("простаивающий IP должен быть вычищен")
	}
	if _, ok := l.visitors["10.0.0.2"]; !ok {
		t.Error("активный IP не должен вычищаться")
	}
}

func TestIPLimiters_SameIPSharesLimiter(t *testing.T) {
	l := newIPLimiters(1, 1)

	if l.limiterFor("10.0.0.1") != l.limiterFor("10.0.0.1") {
		t.Error("повторный запрос с того же IP должен получать тот же лимитер")
	}
}
