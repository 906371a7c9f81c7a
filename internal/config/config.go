package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	JWTSecret string

	// Удалённый контент-бэкенд
	ContentAPIURL   string
	ContentAPIToken string
	AssetBaseURL    string

	// Кэш и ретраи
	CacheTTL       string
	MaxRetries     string
	RetryBaseDelay string
	HTTPTimeout    string

	// Снапшоты (write-through за кэшем)
	SnapshotBackend string // none|redis|postgres
	RedisURL        string

	DbHost    string
	DbPort    string
	DbUser    string
	DbPass    string
	DbName    string
	DbSSLMode string

	RefreshInterval string

	Log      string
	LogLevel string
	Env      string // dev|prod
}

// LoadConfig загружает .env, читает переменные окружения и выставляет дефолты.
// Ничего не логирует — чтобы не создавать зависимость от logger.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	def := func(v, d string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return d
		}
		return v
	}

	cfg := &Config{
		Port: def(os.Getenv("PORT"), "8080"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		ContentAPIURL:   def(os.Getenv("CONTENT_API_URL"), "http://127.0.0.1:8000"),
		ContentAPIToken: os.Getenv("CONTENT_API_TOKEN"),
		AssetBaseURL:    def(os.Getenv("ASSET_BASE_URL"), "http://127.0.0.1:8000/storage"),

		CacheTTL:       def(os.Getenv("CACHE_TTL"), "5m"),
		MaxRetries:     def(os.Getenv("MAX_RETRIES"), "3"),
		RetryBaseDelay: def(os.Getenv("RETRY_BASE_DELAY"), "2s"),
		HTTPTimeout:    def(os.Getenv("HTTP_TIMEOUT"), "5s"),

		SnapshotBackend: strings.ToLower(def(os.Getenv("SNAPSHOT_BACKEND"), "none")),
		RedisURL:        def(os.Getenv("REDIS_URL"), "redis://localhost:6379/0"),

		DbHost:    os.Getenv("DB_HOST"),
		DbPort:    def(os.Getenv("DB_PORT"), "5432"),
		DbUser:    os.Getenv("DB_USER"),
		DbPass:    os.Getenv("DB_PASSWORD"),
		DbName:    os.Getenv("DB_NAME"),
		DbSSLMode: def(os.Getenv("DB_SSLMODE"), "disable"),

		RefreshInterval: def(os.Getenv("REFRESH_INTERVAL"), "10m"),

		Log:      os.Getenv("LOG"),
		LogLevel: strings.ToLower(def(os.Getenv("LOGLEVEL"), "info")),
		Env:      strings.ToLower(def(os.Getenv("ENV"), "prod")),
	}

	return cfg, nil
}

// Validate возвращает предупреждения и фатальную ошибку (если критично).
func (c *Config) Validate() (warnings []string, err error) {
	// Критично: без адреса контент-бэкенда работать нечем
	if strings.TrimSpace(c.ContentAPIURL) == "" {
		return nil, fmt.Errorf("CONTENT_API_URL is empty")
	}

	if strings.TrimSpace(c.ContentAPIToken) == "" {
		warnings = append(warnings, "CONTENT_API_TOKEN пуст — админские операции бэкенд отклонит")
	}

	if strings.TrimSpace(c.JWTSecret) == "" {
		warnings = append(warnings, "JWT_SECRET is empty")
	}

	if c.SnapshotBackend == "postgres" && (c.DbHost == "" || c.DbUser == "" || c.DbName == "") {
		warnings = append(warnings, "SNAPSHOT_BACKEND=postgres, но DB_HOST/DB_USER/DB_NAME не заданы")
	}

	if c.Port == "" {
		warnings = append(warnings, "PORT is empty, using default 8080")
	}

	return warnings, nil
}

// CacheTTLDuration — TTL кэша коллекций (по умолчанию 5 минут).
func (c *Config) CacheTTLDuration() time.Duration {
	return c.parseDuration(c.CacheTTL, 5*time.Minute)
}

// RetryBaseDelayDuration — базовая задержка экспоненциального бэкоффа.
func (c *Config) RetryBaseDelayDuration() time.Duration {
	return c.parseDuration(c.RetryBaseDelay, 2*time.Second)
}

// HTTPTimeoutDuration — таймаут одного запроса к контент-бэкенду.
func (c *Config) HTTPTimeoutDuration() time.Duration {
	return c.parseDuration(c.HTTPTimeout, 5*time.Second)
}

// RefreshIntervalDuration — период фонового обновления контента.
func (c *Config) RefreshIntervalDuration() time.Duration {
	return c.parseDuration(c.RefreshInterval, 10*time.Minute)
}

func (c *Config) MaxRetriesInt() int {
	n, err := strconv.Atoi(strings.TrimSpace(c.MaxRetries))
	if err != nil || n < 0 {
		return 3
	}
	return n
}

func (c *Config) parseDuration(v string, d time.Duration) time.Duration {
	parsed, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil || parsed <= 0 {
		return d
	}
	return parsed
}

// GetDSN — полная DSN (с паролем)
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbPass, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

// GetDSNSafe — DSN без пароля (для логов)
func (c *Config) GetDSNSafe() string {
	return fmt.Sprintf(
		"postgres://%s:***@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}
