package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"keepnote/pkg/logger"
)

const LogServerPanic = "server panic"

// NewRecoveryMiddleware создает новое промежуточное ПО для восстановления после паники.
// Клиент получает 500 без тела.
func NewRecoveryMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()

		defer func() {
			if r := recover(); r != nil {
				logger.Log(requestCtx).Error(requestCtx, LogServerPanic,
					zap.String("error", fmt.Sprintf("%v", r)),
					zap.String("stack", string(debug.Stack())),
				)

				ctx.Response().ResetBody()
				ctx.Status(fiber.StatusInternalServerError)
			}
		}()

		return ctx.Next()
	}
}
