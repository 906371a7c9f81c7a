// Package snapshot — опциональный write-through слой за кэшем коллекций.
// Хранит непрозрачные JSON-снимки "коллекция -> байты". Это best-effort
// офлайн-кэш, НЕ источник истины: истина всегда за контент-бэкендом.
package snapshot

import (
	"context"
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("snapshot not found")

// Store — хранилище снимков. Все реализации потокобезопасны.
// Снимки только перезаписываются целиком, отдельного удаления нет.
type Store interface {
	Save(ctx context.Context, key string, data []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
	Close() error
}

type Config struct {
	Backend  string // none|redis|postgres
	RedisURL string
	DSN      string
	Prefix   string
}

// New собирает хранилище по конфигу. Для "none" возвращает nil —
// вызывающий код обязан это учитывать (снапшоты выключены).
func New(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Backend {
	case "", "none":
		return nil, nil
	case "redis":
		return newRedisStore(ctx, cfg.RedisURL, cfg.Prefix)
	case "postgres":
		return newPostgresStore(ctx, cfg.DSN)
	default:
		return nil, fmt.Errorf("неизвестный бэкенд снапшотов: %q", cfg.Backend)
	}
}
