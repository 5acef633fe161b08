package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// AppError is a typed application error carrying the HTTP status it maps
// to. Non-2xx responses always carry a JSON {"error": string} body.
type AppError struct {
	Status  int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewValidationError(message string) *AppError {
	return &AppError{Status: fiber.StatusBadRequest, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Status: fiber.StatusNotFound, Message: message}
}

func NewGatewayError(message string) *AppError {
	return &AppError{Status: fiber.StatusBadGateway, Message: message}
}

func NewConflictError(message string) *AppError {
	return &AppError{Status: fiber.StatusConflict, Message: message}
}

// ErrorHandlerMiddleware converts returned errors into the JSON error
// contract. Unknown errors become an opaque 500 so internals never leak.
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

		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}
