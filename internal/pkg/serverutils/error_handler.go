package serverutils

import (
	"errors"

	"roadmap-be/internal/pkg/apperror"
	"roadmap-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware renders errors returned by handlers as BaseResponse envelopes.
// Anything that is neither a fiber nor an app error is reported as an internal error.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		appErr, ok := apperror.As(err)
		if !ok {
			appErr = apperror.Internal(err)
		}

		switch {
		case len(appErr.Fields) > 0:
			return ctx.Status(appErr.Code).JSON(ValidationErrorResponse(appErr.Fields))
		case appErr.Code >= fiber.StatusInternalServerError:
			log.Error("http", "request failed", map[string]interface{}{
				"error":  err,
				"path":   ctx.Path(),
				"method": ctx.Method(),
			})
		}
		return ctx.Status(appErr.Code).JSON(ErrorResponse(appErr.Code, appErr.Message))
	}
}
