package serverutils

import "github.com/gofiber/fiber/v2"

// AppError is the boundary error type. Handlers return it and the error
// middleware maps it to a status and a plain JSON body; anything else
// degrades to a generic 500 so store internals never reach the client.
type AppError struct {
	Status  int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Status: fiber.StatusNotFound, Message: message}
}

func NewInternalError(message string) *AppError {
	return &AppError{Status: fiber.StatusInternalServerError, Message: message}
}
