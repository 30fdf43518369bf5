// Package redis создает и проверяет клиентов Redis.
package redis

import (
	"net"
	"strconv"
	"time"
)

// Значения по умолчанию, синхронизированы с тегами env-default конфигурации сервиса.
const (
	DefaultHost         = "localhost"
	DefaultPort         = 6379
	DefaultPoolSize     = 10
	DefaultDialTimeout  = 5 * time.Second
	DefaultReadTimeout  = 3 * time.Second
	DefaultWriteTimeout = 3 * time.Second
)

// Config содержит настройки подключения к Redis.
type Config struct {
	Host            string
	Port            int
	Password        string
	DB              int
	PoolSize        int
	MinIdle         int
	DialTimeout     time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ConnMaxIdleTime time.Duration
	ConnMaxLifetime time.Duration
}

// DefaultConfig возвращает конфигурацию Redis по умолчанию.
func DefaultConfig() *Config {
	return &Config{
		Host:         DefaultHost,
		Port:         DefaultPort,
		PoolSize:     DefaultPoolSize,
		DialTimeout:  DefaultDialTimeout,
		ReadTimeout:  DefaultReadTimeout,
		WriteTimeout: DefaultWriteTimeout,
	}
}

// Address возвращает адрес в формате host:port.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
