// Package syncer — единственный источник истины о жизненном цикле
// фетча одной коллекции: кэш, ретраи по 429, нормализация и публикация
// результата в контент-документ.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"thrivecms/internal/cache"
	"thrivecms/internal/contentapi"
	"thrivecms/internal/logger"
	"thrivecms/internal/retry"

	"go.uber.org/zap"
)

type ListFunc[T any] func(ctx context.Context) ([]T, error)

// State — то, что видят хендлеры: данные, флаг загрузки, текст ошибки.
type State[T any] struct {
	Data    []T    `json:"data"`
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

type Options[T any] struct {
	Name   string
	Store  *cache.Store[T]
	Policy *retry.Policy
	TTL    time.Duration
	List   ListFunc[T]

	// Normalize приводит сырой ответ к каноничному виду
	// (например, относительные пути картинок — к абсолютным URL).
	Normalize func([]T) []T

	// Merge публикует коллекцию в агрегат. Вызывается после каждой
	// успешной записи в кэш.
	Merge func([]T)
}

type Collection[T any] struct {
	name      string
	store     *cache.Store[T]
	policy    *retry.Policy
	ttl       time.Duration
	list      ListFunc[T]
	normalize func([]T) []T
	merge     func([]T)

	mu       sync.Mutex
	loading  bool
	lastErr  string
	attempts int

	// подменяется в тестах
	sleep func(ctx context.Context, d time.Duration) error
}

func New[T any](opts Options[T]) *Collection[T] {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}
	policy := opts.Policy
	if policy == nil {
		policy = retry.NewPolicy(retry.DefaultMaxRetries, retry.DefaultBaseDelay)
	}
	return &Collection[T]{
		name:      opts.Name,
		store:     opts.Store,
		policy:    policy,
		ttl:       ttl,
		list:      opts.List,
		normalize: opts.Normalize,
		merge:     opts.Merge,
		sleep:     sleepCtx,
	}
}

// Fetch обновляет коллекцию. Без force свежий кэш означает ноль сетевых
// вызовов. Параллельный Fetch той же коллекции подавляется: пока один
// запрос в полёте, второй просто возвращается — итоговое состояние
// всегда отражает один целостный ответ.
func (c *Collection[T]) Fetch(ctx context.Context, force bool) {
	c.mu.Lock()
	if !force && c.store.IsFresh(time.Now(), c.ttl) {
		c.mu.Unlock()
		return
	}
	if c.loading {
		c.mu.Unlock()
		return
	}
	c.loading = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.loading = false
		c.mu.Unlock()
	}()

	for {
		items, err := c.list(ctx)
		if err == nil {
			if c.normalize != nil {
				items = c.normalize(items)
			}
			c.store.Set(ctx, items)

			c.mu.Lock()
			c.lastErr = ""
			c.attempts = 0
			c.mu.Unlock()

			if c.merge != nil {
				c.merge(items)
			}
			logger.Log.Debug("Коллекция обновлена",
				zap.String("collection", c.name),
				zap.Int("count", len(items)),
			)
			return
		}

		if errors.Is(err, contentapi.ErrRateLimited) {
			c.mu.Lock()
			attempt := c.attempts
			c.mu.Unlock()

			if c.policy.ShouldRetry(attempt) {
				delay := c.policy.Delay(attempt)

				c.mu.Lock()
				c.attempts++
				c.mu.Unlock()

				logger.Log.Warn("Бэкенд ограничил частоту, повтор",
					zap.String("collection", c.name),
					zap.Int("attempt", attempt+1),
					zap.Duration("delay", delay),
				)
				if err := c.sleep(ctx, delay); err != nil {
					c.setError(fmt.Sprintf("обновление %s прервано: %v", c.name, err))
					return
				}
				continue
			}
		}

		// терминальная ошибка: кэш не трогаем, устаревшие данные остаются видимы
		c.setError(fmt.Sprintf("не удалось получить %s: %v", c.name, err))
		logger.Log.Error("Ошибка обновления коллекции",
			zap.String("collection", c.name),
			zap.Error(err),
		)
		return
	}
}

// Retry безусловно сбрасывает счётчик попыток и ошибку, затем форсирует фетч.
func (c *Collection[T]) Retry(ctx context.Context) {
	c.mu.Lock()
	c.attempts = 0
	c.lastErr = ""
	c.mu.Unlock()

	c.Fetch(ctx, true)
}

func (c *Collection[T]) setError(msg string) {
	c.mu.Lock()
	c.lastErr = msg
	c.mu.Unlock()
}

// Items — текущее содержимое кэша; до первого фетча — пустой список.
func (c *Collection[T]) Items() []T {
	items, _, ok := c.store.Get()
	if !ok {
		return []T{}
	}
	return items
}

func (c *Collection[T]) State() State[T] {
	c.mu.Lock()
	loading, lastErr := c.loading, c.lastErr
	c.mu.Unlock()

	return State[T]{
		Data:    c.Items(),
		Loading: loading,
		Error:   lastErr,
	}
}

// Publish — единственный путь локальной мутации списка: контроллер
// кладёт оптимистичный (или откатанный) список в кэш и в агрегат.
func (c *Collection[T]) Publish(ctx context.Context, items []T) {
	c.store.Set(ctx, items)
	if c.merge != nil {
		c.merge(items)
	}
}

// WarmStart поднимает офлайн-снимок и, если он есть, публикует его
// в агрегат. Данные считаются протухшими — первый Fetch уйдёт в сеть.
func (c *Collection[T]) WarmStart(ctx context.Context) {
	if !c.store.WarmStart(ctx) {
		return
	}
	if c.merge != nil {
		c.merge(c.Items())
	}
	logger.Log.Info("Коллекция поднята из снапшота", zap.String("collection", c.name))
}

func (c *Collection[T]) Name() string {
	return c.name
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
