package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"keepnote/pkg/logger"
)

// Константы для логирования.
const (
	LogRequestStarted   = "request started"
	LogRequestCompleted = "request completed"
	LogRequestFailed    = "request failed"
)

// NewLoggerMiddleware создает новое промежуточное ПО для логирования HTTP запросов.
// Logger с полями запроса кладется в контекст, и последующие записи обработчиков их наследуют.
func NewLoggerMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		start := time.Now()

		log := logger.Log(ctx.Context()).With(
			zap.String("path", ctx.Path()),
			zap.String("method", ctx.Method()),
			zap.String("ip", ctx.IP()),
		)
		requestCtx := logger.NewContext(ctx.Context(), log)
		ctx.SetContext(requestCtx)

		log.Debug(requestCtx, LogRequestStarted)

		err := ctx.Next()

		logFields := []zap.Field{
			zap.Int("status", ctx.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
		}

		if err != nil {
			log.Error(requestCtx, LogRequestFailed, append(logFields, zap.Error(err))...)
			return fmt.Errorf("request processing error: %w", err)
		}

		log.Info(requestCtx, LogRequestCompleted, logFields...)
		return nil
	}
}
