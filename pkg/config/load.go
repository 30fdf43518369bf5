// Package config загружает конфигурацию сервисов из переменных окружения.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"keepnote/pkg/logger"
)

const (
	msgLoadingConfiguration = "loading configuration"
	msgConfigurationLoaded  = "configuration loaded successfully"
	msgEnvFileLoaded        = "environment file loaded"
	msgEnvFileSkipped       = "environment file not found, using process environment"

	errFailedLoadEnvFile       = "failed to load environment file"
	errFailedLoadConfiguration = "failed to load configuration"

	attrService = "service"
	attrPath    = "path"
)

// Load читает необязательные env-файлы и заполняет T по тегам env/env-default.
// Переменные процесса имеют приоритет над значениями из файлов.
func Load[T any](ctx context.Context, serviceName string, envFiles ...string) (*T, error) {
	log := logger.Log(ctx).With(zap.String(attrService, serviceName))
	log.Info(ctx, msgLoadingConfiguration)

	for _, path := range envFiles {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Debug(ctx, msgEnvFileSkipped, zap.String(attrPath, path))
				continue
			}
			log.Error(ctx, errFailedLoadEnvFile, zap.String(attrPath, path), zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errFailedLoadEnvFile, err)
		}
		log.Info(ctx, msgEnvFileLoaded, zap.String(attrPath, path))
	}

	var cfg T
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Error(ctx, errFailedLoadConfiguration, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errFailedLoadConfiguration, err)
	}

	log.Info(ctx, msgConfigurationLoaded)
	return &cfg, nil
}
