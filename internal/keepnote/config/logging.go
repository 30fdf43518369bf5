package config

import (
	"strings"

	"keepnote/pkg/logger"
)

// LoggingConfig представляет конфигурацию логирования.
type LoggingConfig struct {
	Level string `env:"KEEPNOTE_LOGGER_LEVEL" env-default:"info"`
	Mode  string `env:"KEEPNOTE_LOGGER_MODE" env-default:"production"`
}

// GetEnvironment возвращает режим работы logger.
func (c *LoggingConfig) GetEnvironment() logger.Environment {
	if strings.EqualFold(c.Mode, string(logger.Development)) {
		return logger.Development
	}
	return logger.Production
}
