package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"keepnote/internal/keepnote/app/dto"
	"keepnote/internal/keepnote/app/http/middleware"
	"keepnote/internal/keepnote/domain/entities"
	"keepnote/internal/keepnote/ports/api"
	"keepnote/pkg/logger"
)

const (
	LogLogoutWithoutSession = "logout requested without session"
	LogSessionAlreadyClosed = "session already closed before logout"
)

var errNoSessionToClose = fmt.Errorf("no session to close: %w", entities.ErrInvalidInput)

// CookieConfig описывает cookie сессии.
type CookieConfig struct {
	Name   string
	Secure bool
}

// AuthHandler обрабатывает вход и выход.
type AuthHandler struct {
	auth   api.AuthService
	cookie CookieConfig
}

// NewAuthHandler создает новый экземпляр обработчика авторизации.
func NewAuthHandler(auth api.AuthService, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{auth: auth, cookie: cookie}
}

// Login проверяет учетные данные, выставляет cookie сессии и возвращает пользователя.
func (h *AuthHandler) Login(ctx fiber.Ctx) error {
	var req dto.LoginRequest
	if err := bindJSON(ctx, &req); err != nil {
		return respond(ctx, OutcomeOK, nil, err)
	}

	result, err := h.auth.Login(ctx.Context(), req.UserID, req.Password)
	if err != nil {
		return respond(ctx, OutcomeOK, nil, err)
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    result.Token,
		Path:     "/",
		Expires:  result.Session.ExpiresAt,
		Secure:   h.cookie.Secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return respond(ctx, OutcomeOK, result.User, nil)
}

// Logout закрывает текущую сессию. Запрос без сессии получает 400.
// Сессия, истекшая между проверкой и удалением, считается закрытой.
func (h *AuthHandler) Logout(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()

	session := middleware.SessionFrom(ctx)
	if session == nil {
		logger.Log(requestCtx).Debug(requestCtx, LogLogoutWithoutSession)
		return respond(ctx, OutcomeOK, nil, errNoSessionToClose)
	}

	err := h.auth.Logout(requestCtx, session.ID)
	switch {
	case errors.Is(err, entities.ErrSessionNotFound):
		logger.Log(requestCtx).Debug(requestCtx, LogSessionAlreadyClosed, zap.String("session_id", session.ID))
	case err != nil:
		return respond(ctx, OutcomeOK, nil, err)
	}

	clearSessionCookie(ctx, h.cookie)
	return respond(ctx, OutcomeOK, nil, nil)
}

// clearSessionCookie просит клиента удалить cookie сессии.
func clearSessionCookie(ctx fiber.Ctx, cookie CookieConfig) {
	ctx.Cookie(&fiber.Cookie{
		Name:     cookie.Name,
		Path:     "/",
		Expires:  time.Unix(0, 0),
		Secure:   cookie.Secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
