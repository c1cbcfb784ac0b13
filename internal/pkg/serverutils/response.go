// FILE: internal/pkg/serverutils/response.go
// Shared success/error envelope for every JSON response.
package serverutils

import (
	"feature-prefs-be/internal/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
)

type Response[T any] struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Code:    fiber.StatusOK,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, message string) Response[any] {
	return Response[any]{
		Success: false,
		Code:    code,
		Message: message,
	}
}

// StatusForError maps the service error taxonomy onto HTTP status codes.
func StatusForError(err error) int {
	switch apperrors.KindOf(err) {
	case apperrors.KindNotFound:
		return fiber.StatusNotFound
	case apperrors.KindConstraintViolation:
		return fiber.StatusInternalServerError
	case apperrors.KindTransactionFailure:
		return fiber.StatusInternalServerError
	case apperrors.KindStoreUnavailable:
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusInternalServerError
}
