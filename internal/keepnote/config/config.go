// Package config содержит конфигурацию сервиса keepnote.
package config

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	pkgconfig "keepnote/pkg/config"
	"keepnote/pkg/logger"
)

// ServiceName - имя сервиса в логах.
const ServiceName = "keepnote"

// Константы сообщений конфигурации.
const (
	LogConfigSummary    = "keepnote configuration"
	ErrFailedLoadConfig = "failed to load keepnote configuration"
	ErrInvalidConfig    = "invalid keepnote configuration"
)

// Config представляет полную конфигурацию сервиса.
type Config struct {
	HTTP     HTTPConfig
	Logging  LoggingConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Session  SessionConfig
	Shutdown ShutdownConfig
}

// Load загружает конфигурацию из окружения и необязательных env-файлов.
func Load(ctx context.Context, envFiles ...string) (*Config, error) {
	cfg, err := pkgconfig.Load[Config](ctx, ServiceName, envFiles...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrInvalidConfig, err)
	}

	logger.Log(ctx).Info(ctx, LogConfigSummary,
		zap.String("http_address", cfg.HTTP.GetAddress()),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode),
		zap.String("postgres_host", cfg.Postgres.Host),
		zap.String("postgres_db", cfg.Postgres.Database),
		zap.String("redis_address", cfg.Redis.GetAddress()),
		zap.Duration("session_ttl", cfg.Session.TTL),
		zap.Duration("shutdown_timeout", cfg.Shutdown.GetTimeout()))

	return cfg, nil
}

// Validate проверяет значения, для которых нет разумных умолчаний.
func (c *Config) Validate() error {
	return c.Session.Validate()
}
