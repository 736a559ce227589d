package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"room-rental-app/dto/res"
	"room-rental-app/usecase"
)

// writeError maps the usecase error taxonomy onto HTTP. Validation failures
// carry per-field detail; everything else keeps the backend's message with a
// generic fallback so a failed operation stays retryable rather than fatal.
func writeError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make(map[string]string, len(validationErrors))
		for _, fieldError := range validationErrors {
			fields[fieldError.Field()] = fieldError.Tag()
		}
		return c.Status(fiber.StatusBadRequest).JSON(res.ErrorResponse{
			Status:     fiber.ErrBadRequest.Message,
			StatusCode: fiber.StatusBadRequest,
			Error:      fields,
		})
	}

	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(res.ErrorResponse{
			Status:     fiber.ErrUnauthorized.Message,
			StatusCode: fiber.StatusUnauthorized,
			Error:      err.Error(),
		})
	case errors.Is(err, usecase.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(res.ErrorResponse{
			Status:     fiber.ErrForbidden.Message,
			StatusCode: fiber.StatusForbidden,
			Error:      err.Error(),
		})
	case errors.Is(err, usecase.ErrTooManyImages):
		return c.Status(fiber.StatusBadRequest).JSON(res.ErrorResponse{
			Status:     fiber.ErrBadRequest.Message,
			StatusCode: fiber.StatusBadRequest,
			Error:      err.Error(),
		})
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(res.ErrorResponse{
			Status:     fiber.ErrNotFound.Message,
			StatusCode: fiber.StatusNotFound,
			Error:      "record not found",
		})
	}

	message := err.Error()
	if message == "" {
		message = "something went wrong, please try again"
	}
	return c.Status(fiber.StatusInternalServerError).JSON(res.ErrorResponse{
		Status:     fiber.ErrInternalServerError.Message,
		StatusCode: fiber.StatusInternalServerError,
		Error:      message,
	})
}

func currentUserID(c *fiber.Ctx) string {
	userID, _ := c.Locals("user_id").(string)
	return userID
}
