package config

import (
	"errors"
	"time"
)

// ErrSessionSecretTooShort возвращается, когда секрет подписи короче 32 байт.
var ErrSessionSecretTooShort = errors.New("session secret must be at least 32 bytes")

const minSecretLength = 32

// SessionConfig настраивает cookie сессии и подпись токена.
type SessionConfig struct {
	Secret       string        `env:"KEEPNOTE_SESSION_SECRET" env-required:"true"`
	TTL          time.Duration `env:"KEEPNOTE_SESSION_TTL" env-default:"24h"`
	CookieName   string        `env:"KEEPNOTE_SESSION_COOKIE" env-default:"session_id"`
	CookieSecure bool          `env:"KEEPNOTE_SESSION_COOKIE_SECURE" env-default:"false"`
}

// Validate проверяет длину секрета.
func (c *SessionConfig) Validate() error {
	if len(c.Secret) < minSecretLength {
		return ErrSessionSecretTooShort
	}
	return nil
}
