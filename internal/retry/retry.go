package retry

import (
	"math/rand"
	"time"
)

const (
	DefaultMaxRetries = 3
	DefaultBaseDelay  = 2 * time.Second

	// Верхняя граница джиттера, чтобы клиенты не били в бэкенд синхронно.
	maxJitter = 500 * time.Millisecond
)

// Policy решает, повторять ли запрос после 429 и с какой задержкой.
// Применяется ТОЛЬКО к rate-limit; любые другие ошибки терминальны.
type Policy struct {
	MaxRetries int
	BaseDelay  time.Duration

	// подменяется в тестах
	jitter func() time.Duration
}

func NewPolicy(maxRetries int, baseDelay time.Duration) *Policy {
	if maxRetries < 0 {
		maxRetries = DefaultMaxRetries
	}
	if baseDelay <= 0 {
		baseDelay = DefaultBaseDelay
	}
	return &Policy{
		MaxRetries: maxRetries,
		BaseDelay:  baseDelay,
		jitter: func() time.Duration {
			return time.Duration(rand.Int63n(int64(maxJitter)))
		},
	}
}

// ShouldRetry: attempt — число УЖЕ сделанных повторов (с нуля).
func (p *Policy) ShouldRetry(attempt int) bool {
	return attempt < p.MaxRetries
}

// Delay = base * 2^attempt + jitter. Монотонно не убывает по attempt.
func (p *Policy) Delay(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	d := p.BaseDelay << uint(attempt)
	return d + p.jitter()
}
