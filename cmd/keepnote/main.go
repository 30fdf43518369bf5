package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"keepnote/internal/keepnote/adapters/cache"
	"keepnote/internal/keepnote/adapters/postgres"
	"keepnote/internal/keepnote/adapters/redis"
	"keepnote/internal/keepnote/adapters/services"
	"keepnote/internal/keepnote/app"
	httpServer "keepnote/internal/keepnote/app/http"
	"keepnote/internal/keepnote/config"
	"keepnote/internal/keepnote/db"
	"keepnote/internal/keepnote/resilience"
	redisclient "keepnote/pkg/db/redis"
	"keepnote/pkg/logger"
	"keepnote/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "KEEPNOTE_LOGGER_MODE"
	EnvLoggerLevel = "KEEPNOTE_LOGGER_LEVEL"
	EnvFile        = ".env"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrInitDatabase         = "failed to initialize database"
	ErrCreateRedisClient    = "failed to create Redis client"
	ErrStartHTTPServer      = "failed to start HTTP server"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "keepnote service started"
	LogServiceShutdownDone = "keepnote service shutdown complete"
	LogInitDatabase        = "initializing database"
	LogInitRedis           = "initializing Redis"
	LogInitServices        = "initializing services"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
	LogStoppingHTTP        = "stopping HTTP server"
	LogClosingRedis        = "closing Redis connection"
	LogClosingDatabase     = "closing database connection"
)

const userCacheBreaker = "user-cache"

func main() {
	env := logger.Development
	if strings.EqualFold(os.Getenv(EnvLoggerMode), string(logger.Production)) {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx, EnvFile)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(cfg.Logging.GetEnvironment())),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogInitDatabase)
		database, err := db.New(ctx, &cfg.Postgres)
		if err != nil {
			log.Error(ctx, ErrInitDatabase, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitRedis)
		rdb, err := redisclient.NewClient(ctx, cfg.Redis.ClientConfig())
		if err != nil {
			log.Error(ctx, ErrCreateRedisClient, zap.Error(err))
			database.Close(ctx)
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitServices)
		repos := postgres.NewRepositoryFactory(database.Pool())
		users := cache.NewUserRepository(
			repos.UserRepository(),
			cache.NewRedisCache(rdb, cfg.Redis.CacheTTL),
			resilience.NewServiceResilience(userCacheBreaker),
			cfg.Redis.CacheTTL,
		)
		passwords := services.NewBcrypt(0)
		sessionStore := redis.NewSessionStore(rdb, cfg.Session.TTL)

		svc := httpServer.Services{
			Users: app.NewUserUseCase(users, sessionStore, passwords),
			// Проверка пароля всегда читает базу, минуя кэш профилей.
			Auth: app.NewAuthUseCase(
				repos.UserRepository(),
				sessionStore,
				passwords,
				services.NewJWT(cfg.Session.Secret),
			),
			Categories: app.NewCategoryUseCase(repos.CategoryRepository()),
			Notes: app.NewNoteUseCase(
				repos.NoteRepository(), repos.CategoryRepository(), repos.ReminderRepository()),
			Reminders: app.NewReminderUseCase(repos.ReminderRepository()),
		}

		log.Info(ctx, LogInitHTTPServer)
		server := fiber.New(fiber.Config{
			AppName:      config.ServiceName,
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
		})

		httpServer.SetupRouter(server, svc, httpServer.Options{
			Cookie: httpServer.CookieConfig{
				Name:   cfg.Session.CookieName,
				Secure: cfg.Session.CookieSecure,
			},
			CORSOrigins: cfg.HTTP.CORSOrigins,
		})

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := server.Listen(cfg.HTTP.GetAddress(), fiber.ListenConfig{DisableStartupMessage: true}); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			}
		}()

		shutdown.Wait(ctx, cfg.Shutdown.GetTimeout(),
			// Остановка HTTP сервера.
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				return server.ShutdownWithContext(ctx)
			},
			// Закрытие Redis соединения.
			func(ctx context.Context) error {
				log.Info(ctx, LogClosingRedis)
				return rdb.Close()
			},
			// Закрытие пула базы данных.
			func(ctx context.Context) error {
				log.Info(ctx, LogClosingDatabase)
				database.Close(ctx)
				return nil
			},
		)

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
