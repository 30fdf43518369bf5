// Package db готовит базу keepnote к работе: применяет миграции и открывает пул соединений.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"keepnote/internal/keepnote/config"
	"keepnote/pkg/db/postgres"
	"keepnote/pkg/logger"
)

// Константы для сообщений логгера.
const (
	LogDBInitializing    = "initializing keepnote database"
	LogDBInitialized     = "keepnote database initialized successfully"
	LogMigrationStarting = "starting keepnote database migrations"
)

// Константы для сообщений об ошибках.
const (
	ErrDBMigrations = "failed to apply keepnote database migrations"
	ErrDBConnection = "failed to connect to keepnote database"
)

// DB представляет соединение с базой данных keepnote.
type DB struct {
	database *postgres.Database
}

// New применяет миграции и только затем открывает пул соединений.
func New(ctx context.Context, cfg *config.PostgresConfig) (*DB, error) {
	log := logger.Log(ctx)

	log.Info(ctx, LogDBInitializing,
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Database),
		zap.Int32("min_conn", cfg.MinConn),
		zap.Int32("max_conn", cfg.MaxConn))

	log.Info(ctx, LogMigrationStarting, zap.String("migrations_path", cfg.MigrationsPath))
	if err := postgres.MigrateDSN(ctx, cfg.GetConnectionURL(), cfg.MigrationsPath); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDBMigrations, err)
	}

	database, err := postgres.New(ctx, cfg.PoolOptions())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDBConnection, err)
	}

	log.Info(ctx, LogDBInitialized)
	return &DB{database: database}, nil
}

// Close закрывает пул соединений.
func (db *DB) Close(ctx context.Context) {
	db.database.Close(ctx)
}

// Pool возвращает пул соединений с базой данных.
func (db *DB) Pool() *pgxpool.Pool {
	return db.database.Pool()
}
