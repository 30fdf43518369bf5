package config

import (
	"net"
	"strconv"
	"time"
)

// HTTPConfig представляет конфигурацию HTTP сервера.
type HTTPConfig struct {
	Host         string        `env:"KEEPNOTE_HTTP_HOST" env-default:"0.0.0.0"`
	Port         int           `env:"KEEPNOTE_HTTP_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `env:"KEEPNOTE_HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout time.Duration `env:"KEEPNOTE_HTTP_WRITE_TIMEOUT" env-default:"10s"`
	CORSOrigins  []string      `env:"KEEPNOTE_HTTP_CORS_ORIGINS" env-default:"*" env-separator:","`
}

// GetAddress возвращает адрес HTTP сервера.
func (c *HTTPConfig) GetAddress() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
