package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware translates handler errors into JSON error bodies.
// AppErrors keep their status and message; everything else is a generic 500.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *AppError
		if errors.As(err, &appErr) {
			return ctx.Status(appErr.Status).JSON(fiber.Map{"error": appErr.Message})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
}
