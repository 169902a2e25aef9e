package serverutils

import (
	"errors"

	"notegraph-be/internal/pkg/apperror"
	"notegraph-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler turns every error returned by a handler into a {error}
// response. Domain sentinels decide the status; anything unknown is a 500.
func ErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		code := StatusFor(err)
		message := err.Error()

		if code >= fiber.StatusInternalServerError {
			log.Error("HTTP", "Unhandled request error", map[string]interface{}{
				"error":  err.Error(),
				"method": ctx.Method(),
				"path":   ctx.Path(),
			})
			message = "Internal server error"
		}

		return ctx.Status(code).JSON(ErrorResponse(code, message))
	}
}

func StatusFor(err error) int {
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	case errors.Is(err, apperror.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidIdentifier),
		errors.Is(err, apperror.ErrInvalidEdge),
		errors.Is(err, apperror.ErrInvalidRequest):
		return fiber.StatusBadRequest
	case errors.Is(err, apperror.ErrConflict):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
