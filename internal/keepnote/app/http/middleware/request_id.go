// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"github.com/gofiber/fiber/v3"

	"keepnote/pkg/logger"
)

// HeaderRequestID - заголовок с идентификатором запроса.
const HeaderRequestID = "X-Request-ID"

// NewRequestIDMiddleware берет идентификатор запроса из заголовка или генерирует новый,
// кладет его в контекст запроса и возвращает клиенту.
func NewRequestIDMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestID := ctx.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}

		ctx.SetContext(logger.NewRequestIDContext(ctx.Context(), requestID))
		ctx.Set(HeaderRequestID, requestID)

		return ctx.Next()
	}
}
