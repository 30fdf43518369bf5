package middleware

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"keepnote/internal/keepnote/domain/entities"
	"keepnote/pkg/logger"
)

const (
	LogSessionRejected   = "session cookie rejected"
	LogSessionResolveErr = "failed to resolve session"
)

type sessionKeyType struct{}

var sessionKey = sessionKeyType{}

// SessionResolver восстанавливает сессию по значению cookie.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*entities.Session, error)
}

// NewSessionMiddleware разрешает cookie сессии и кладет сессию в Locals запроса.
// Запрос без действующей сессии не отклоняется здесь: решение принимает обработчик.
func NewSessionMiddleware(resolver SessionResolver, cookieName string) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		token := ctx.Cookies(cookieName)
		if token == "" {
			return ctx.Next()
		}

		requestCtx := ctx.Context()
		session, err := resolver.Resolve(requestCtx, token)
		switch {
		case err == nil:
			ctx.Locals(sessionKey, session)
		case errors.Is(err, entities.ErrUnauthenticated):
			logger.Log(requestCtx).Debug(requestCtx, LogSessionRejected, zap.Error(err))
		default:
			logger.Log(requestCtx).Warn(requestCtx, LogSessionResolveErr, zap.Error(err))
		}

		return ctx.Next()
	}
}

// SessionFrom возвращает сессию текущего запроса или nil.
func SessionFrom(ctx fiber.Ctx) *entities.Session {
	session, ok := ctx.Locals(sessionKey).(*entities.Session)
	if !ok {
		return nil
	}
	return session
}
