package config

import (
	"net"
	"strconv"
	"time"

	"keepnote/pkg/db/redis"
)

// RedisConfig представляет конфигурацию для Redis.
type RedisConfig struct {
	Host            string        `env:"KEEPNOTE_REDIS_HOST" env-default:"localhost"`
	Port            int           `env:"KEEPNOTE_REDIS_PORT" env-default:"6379"`
	Password        string        `env:"KEEPNOTE_REDIS_PASSWORD" env-default:""`
	DB              int           `env:"KEEPNOTE_REDIS_DB" env-default:"0"`
	ConnectTimeout  time.Duration `env:"KEEPNOTE_REDIS_CONNECT_TIMEOUT" env-default:"5s"`
	ReadTimeout     time.Duration `env:"KEEPNOTE_REDIS_READ_TIMEOUT" env-default:"3s"`
	WriteTimeout    time.Duration `env:"KEEPNOTE_REDIS_WRITE_TIMEOUT" env-default:"3s"`
	PoolSize        int           `env:"KEEPNOTE_REDIS_POOL_SIZE" env-default:"10"`
	MinIdle         int           `env:"KEEPNOTE_REDIS_MIN_IDLE" env-default:"2"`
	IdleTimeout     time.Duration `env:"KEEPNOTE_REDIS_IDLE_TIMEOUT" env-default:"5m"`
	MaxConnLifetime time.Duration `env:"KEEPNOTE_REDIS_MAX_CONN_LIFETIME" env-default:"1h"`
	CacheTTL        time.Duration `env:"KEEPNOTE_REDIS_CACHE_TTL" env-default:"15m"`
}

// GetAddress возвращает адрес Redis.
func (c *RedisConfig) GetAddress() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ClientConfig преобразует настройки в конфигурацию клиента.
func (c *RedisConfig) ClientConfig() *redis.Config {
	return &redis.Config{
		Host:            c.Host,
		Port:            c.Port,
		Password:        c.Password,
		DB:              c.DB,
		PoolSize:        c.PoolSize,
		MinIdle:         c.MinIdle,
		DialTimeout:     c.ConnectTimeout,
		ReadTimeout:     c.ReadTimeout,
		WriteTimeout:    c.WriteTimeout,
		ConnMaxIdleTime: c.IdleTimeout,
		ConnMaxLifetime: c.MaxConnLifetime,
	}
}
