// FILE: internal/pkg/serverutils/validator.go
package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest checks a DTO against its validate tags. Shape validation
// lives here, at the transport layer; services receive well-formed input.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, fmt.Sprintf("field '%s' failed on '%s'", fe.Field(), fe.Tag()))
	}
	return fiber.NewError(fiber.StatusUnprocessableEntity, strings.Join(messages, "; "))
}
