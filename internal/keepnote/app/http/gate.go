package http

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"keepnote/internal/keepnote/app/http/middleware"
	"keepnote/internal/keepnote/domain/entities"
	"keepnote/pkg/logger"
)

// Outcome - вид успешного результата операции.
type Outcome int

// Виды успешного результата.
const (
	OutcomeOK Outcome = iota
	OutcomeCreated
)

const (
	LogUnexpectedError = "unexpected error while serving request"
	LogSendResponse    = "failed to send response"

	errParsePathID = "parsing path id"
	errBindBody    = "binding request body"
)

// RequireSession возвращает идентификатор вошедшего пользователя или ErrUnauthenticated.
func RequireSession(session *entities.Session) (string, error) {
	userID, ok := session.LoggedInUser()
	if !ok {
		return "", entities.ErrUnauthenticated
	}
	return userID, nil
}

// Classify сопоставляет результат операции HTTP статусу.
func Classify(outcome Outcome, err error) int {
	switch {
	case err == nil && outcome == OutcomeCreated:
		return fiber.StatusCreated
	case err == nil:
		return fiber.StatusOK
	case errors.Is(err, entities.ErrUnauthenticated):
		return fiber.StatusUnauthorized
	case errors.Is(err, entities.ErrAlreadyExists):
		return fiber.StatusConflict
	case errors.Is(err, entities.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, entities.ErrInvalidInput):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// respond отправляет статус результата. Тело есть только у успешных ответов.
func respond(ctx fiber.Ctx, outcome Outcome, body any, err error) error {
	status := Classify(outcome, err)
	requestCtx := ctx.Context()

	if status == fiber.StatusInternalServerError {
		logger.Log(requestCtx).Error(requestCtx, LogUnexpectedError, zap.Error(err))
	}

	if err != nil || body == nil {
		ctx.Status(status)
		return nil
	}
	if sendErr := ctx.Status(status).JSON(body); sendErr != nil {
		logger.Log(requestCtx).Error(requestCtx, LogSendResponse, zap.Error(sendErr))
		return fmt.Errorf("%s: %w", LogSendResponse, sendErr)
	}
	return nil
}

// invoke проверяет сессию и только затем выполняет единственный вызов сервиса.
func invoke[T any](ctx fiber.Ctx, outcome Outcome, call func(ctx context.Context, userID string) (T, error)) error {
	userID, err := RequireSession(middleware.SessionFrom(ctx))
	if err != nil {
		return respond(ctx, outcome, nil, err)
	}

	result, err := call(ctx.Context(), userID)
	if err != nil {
		return respond(ctx, outcome, nil, err)
	}
	return respond(ctx, outcome, result, nil)
}

// invokeStatus - вариант invoke для операций без тела ответа.
func invokeStatus(ctx fiber.Ctx, call func(ctx context.Context, userID string) error) error {
	userID, err := RequireSession(middleware.SessionFrom(ctx))
	if err != nil {
		return respond(ctx, OutcomeOK, nil, err)
	}
	return respond(ctx, OutcomeOK, nil, call(ctx.Context(), userID))
}

func pathID(ctx fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s: %w", errParsePathID, entities.ErrInvalidID)
	}
	return id, nil
}

func bindJSON(ctx fiber.Ctx, out any) error {
	if err := ctx.Bind().WithoutAutoHandling().JSON(out); err != nil {
		return fmt.Errorf("%s: %w: %w", errBindBody, entities.ErrInvalidInput, err)
	}
	return nil
}

// emptyIfNil гарантирует JSON массив вместо null.
func emptyIfNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
