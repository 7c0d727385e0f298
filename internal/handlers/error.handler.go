package handlers

import (
	"errors"

	"stillpoint/internal/apperror"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is the top-level translation from domain errors to HTTP
// responses. Anything outside the taxonomy becomes an opaque 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := fiber.StatusInternalServerError
		switch {
		case errors.Is(appErr.Err, apperror.ErrValidation):
			status = fiber.StatusBadRequest
		case errors.Is(appErr.Err, apperror.ErrUnauthorized):
			status = fiber.StatusUnauthorized
		case errors.Is(appErr.Err, apperror.ErrNotFound):
			status = fiber.StatusNotFound
		case errors.Is(appErr.Err, apperror.ErrConflict):
			status = fiber.StatusConflict
		}

		body := fiber.Map{"message": appErr.Message}
		if appErr.Field != "" {
			body["field"] = appErr.Field
		}
		return c.Status(status).JSON(body)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"message": fiberErr.Message})
	}

	logger.New("handlers").
		TraceFromContext(c.UserContext()).
		Er("unhandled error", err, "path", c.Path())

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal server error",
	})
}
