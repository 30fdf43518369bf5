package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"keepnote/pkg/db/postgres"
)

// PostgresConfig содержит настройки подключения к базе данных.
type PostgresConfig struct {
	Host            string        `env:"KEEPNOTE_POSTGRES_HOST" env-default:"localhost"`
	Port            int           `env:"KEEPNOTE_POSTGRES_PORT" env-default:"5432"`
	User            string        `env:"KEEPNOTE_POSTGRES_USER" env-default:"postgres"`
	Password        string        `env:"KEEPNOTE_POSTGRES_PASSWORD" env-default:"postgres"`
	Database        string        `env:"KEEPNOTE_POSTGRES_DB" env-default:"keepnote"`
	SSLMode         string        `env:"KEEPNOTE_POSTGRES_SSLMODE" env-default:"disable"`
	MinConn         int32         `env:"KEEPNOTE_POSTGRES_MIN_CONN" env-default:"1"`
	MaxConn         int32         `env:"KEEPNOTE_POSTGRES_MAX_CONN" env-default:"10"`
	MaxConnLifetime time.Duration `env:"KEEPNOTE_POSTGRES_MAX_CONN_LIFETIME" env-default:"1h"`
	MigrationsPath  string        `env:"KEEPNOTE_POSTGRES_MIGRATIONS_PATH" env-default:"migrations/keepnote"`
}

// GetConnectionURL возвращает URL подключения, пригодный и для pgx, и для golang-migrate.
func (p *PostgresConfig) GetConnectionURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     net.JoinHostPort(p.Host, strconv.Itoa(p.Port)),
		Path:     "/" + p.Database,
		RawQuery: fmt.Sprintf("sslmode=%s", url.QueryEscape(p.SSLMode)),
	}
	return u.String()
}

// PoolOptions возвращает параметры пула pgx.
func (p *PostgresConfig) PoolOptions() postgres.Options {
	return postgres.Options{
		DSN:             p.GetConnectionURL(),
		MinConns:        p.MinConn,
		MaxConns:        p.MaxConn,
		MaxConnLifetime: p.MaxConnLifetime,
	}
}
