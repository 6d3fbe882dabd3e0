package serverutils

import (
	"errors"

	"dept-tracker-be/internal/pkg/apperrors"
	"dept-tracker-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps the error taxonomy onto HTTP statuses. Callers
// always receive the structured envelope, never a raw error payload.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var ve *apperrors.ValidationError
		if errors.As(err, &ve) {
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(fiber.StatusBadRequest, ve.Message))
		}

		var nf *apperrors.NotFoundError
		if errors.As(err, &nf) {
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(fiber.StatusNotFound, nf.Error()))
		}

		var ue *apperrors.UpstreamError
		if errors.As(err, &ue) {
			log.Warn("http", "request failed upstream", map[string]interface{}{
				"path":  ctx.Path(),
				"error": ue.Error(),
			})
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse(fiber.StatusServiceUnavailable, "backing store unavailable"))
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			return ctx.Status(fe.Code).JSON(ErrorResponse(fe.Code, fe.Message))
		}

		log.Error("http", "unexpected error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, "internal server error"))
	}
}
