// Package cache хранит последний успешно полученный список одной коллекции
// плюс момент последнего успешного фетча. Вытеснения нет — только полная
// замена содержимого.
package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"thrivecms/internal/snapshot"
)

// DefaultTTL — окно свежести кэша коллекций.
const DefaultTTL = 5 * time.Minute

// Store — кэш одной коллекции. Каждым Store владеет ровно один
// syncer.Collection; между коллекциями ничего не разделяется.
type Store[T any] struct {
	mu        sync.RWMutex
	key       string
	items     []T
	fetchedAt time.Time
	hasData   bool

	// опциональный write-through; nil — снапшоты выключены
	through snapshot.Store
}

func NewStore[T any](key string, through snapshot.Store) *Store[T] {
	return &Store[T]{key: key, through: through}
}

// Get возвращает копию списка и время последнего успешного фетча.
// ok=false, если фетча ещё не было.
func (s *Store[T]) Get() (items []T, fetchedAt time.Time, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.hasData {
		return nil, time.Time{}, false
	}
	cp := make([]T, len(s.items))
	copy(cp, s.items)
	return cp, s.fetchedAt, true
}

// Set полностью заменяет содержимое и ставит отметку времени.
// Снимок пишется best-effort: ошибка write-through не видна вызывающему.
func (s *Store[T]) Set(ctx context.Context, items []T) {
	cp := make([]T, len(items))
	copy(cp, items)

	s.mu.Lock()
	s.items = cp
	s.fetchedAt = time.Now()
	s.hasData = true
	s.mu.Unlock()

	if s.through != nil {
		if data, err := json.Marshal(cp); err == nil {
			_ = s.through.Save(ctx, s.key, data)
		}
	}
}

// IsFresh: был ли успешный фетч и прошло ли с него меньше ttl.
func (s *Store[T]) IsFresh(now time.Time, ttl time.Duration) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.hasData {
		return false
	}
	return now.Sub(s.fetchedAt) < ttl
}

// WarmStart поднимает последний снимок из write-through слоя.
// Отметка времени НЕ ставится: данные видимы, но считаются протухшими,
// чтобы первый же Fetch ушёл в сеть.
func (s *Store[T]) WarmStart(ctx context.Context) bool {
	if s.through == nil {
		return false
	}

	data, err := s.through.Load(ctx, s.key)
	if err != nil {
		return false
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hasData {
		// сетевые данные уже есть — снимок опоздал
		return false
	}
	s.items = items
	s.hasData = true
	return true
}

// Key — имя коллекции (ключ снапшота).
func (s *Store[T]) Key() string {
	return s.key
}
