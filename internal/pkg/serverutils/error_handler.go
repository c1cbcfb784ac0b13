// FILE: internal/pkg/serverutils/error_handler.go
package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware turns errors that escape controllers (body parse
// failures, validation errors) into the shared envelope.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
		}

		return ctx.Status(code).JSON(ErrorResponse(code, err.Error()))
	}
}
