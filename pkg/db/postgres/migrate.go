package postgres

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"

	"keepnote/pkg/logger"
)

// Константы для сообщений об ошибках миграций.
const (
	ErrResolveMigrationsPath   = "failed to resolve migrations path"
	ErrCreateMigrationInstance = "failed to create migration instance"
	ErrApplyMigrations         = "failed to apply migrations"
)

const fileScheme = "file://"

// FileSourceURL превращает каталог с миграциями в URL источника golang-migrate.
func FileSourceURL(dir string) (string, error) {
	if strings.HasPrefix(dir, fileScheme) {
		return dir, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrResolveMigrationsPath, err)
	}
	return fileScheme + filepath.ToSlash(abs), nil
}

// MigrateDSN применяет миграции из каталога dir к базе по URL dsn.
func MigrateDSN(ctx context.Context, dsn string, dir string) error {
	log := logger.Log(ctx)

	source, err := FileSourceURL(dir)
	if err != nil {
		log.Error(ctx, ErrResolveMigrationsPath, zap.Error(err), zap.String("path", dir))
		return err
	}

	m, err := migrate.New(source, dsn)
	if err != nil {
		log.Error(ctx, ErrCreateMigrationInstance, zap.Error(err), zap.String("path", source))
		return fmt.Errorf("%s: %w", ErrCreateMigrationInstance, err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			log.Warn(ctx, "failed to close migration instance", zap.NamedError("source", srcErr), zap.NamedError("database", dbErr))
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Error(ctx, ErrApplyMigrations, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrApplyMigrations, err)
	}

	log.Info(ctx, LogMigrationsApplied, zap.String("path", source))
	return nil
}
