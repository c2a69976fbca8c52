package serverutils

import (
	"errors"

	"nutrition-assistant-be/internal/pkg/apperr"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps service errors onto the response envelope.
// Services surface apperr sentinels unchanged; everything unrecognized is a
// 500 with a generic message.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fiberErr *fiber.Error

		switch {
		case errors.Is(err, apperr.ErrValidation):
			code = fiber.StatusBadRequest
			message = err.Error()
		case errors.Is(err, apperr.ErrUnauthorized):
			code = fiber.StatusUnauthorized
			message = err.Error()
		case errors.Is(err, apperr.ErrNotFound):
			code = fiber.StatusNotFound
			message = err.Error()
		case errors.Is(err, apperr.ErrBackendUnavailable):
			code = fiber.StatusServiceUnavailable
			message = err.Error()
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
			message = fiberErr.Message
		}

		return ctx.Status(code).JSON(fiber.Map{
			"success": false,
			"code":    code,
			"message": message,
		})
	}
}
