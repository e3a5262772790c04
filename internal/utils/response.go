package utils

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/greenloop/plantcare/internal/types"
)

// ErrorResponse sends a standard error response envelope
func ErrorResponse(c *fiber.Ctx, message string, status int, kind string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":    status,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      kind,
	})
}

// AppErrorResponse maps a service error to a response. AppError kinds carry
// their own status; anything else is an internal error with the operation
// name as the type so the failure region is identifiable client-side.
func AppErrorResponse(c *fiber.Ctx, err error, operation string) error {
	var appErr *types.AppError
	if errors.As(err, &appErr) {
		return ErrorResponse(c, appErr.Message, appErr.Code, appErr.Kind)
	}
	return ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, operation)
}

// DeleteSuccessResponse sends a success response for deletions
func DeleteSuccessResponse(c *fiber.Ctx, affectedRows int64) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":      "Success",
		"ok":           true,
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
		"affectedRows": affectedRows,
	})
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Ok        bool   `json:"ok"`
	Timestamp string `json:"timestamp"`
	URL       string `json:"url"`
	Type      string `json:"type,omitempty"`
}

// DeleteSuccessResponseStruct defines the schema for deletion success responses
type DeleteSuccessResponseStruct struct {
	Message      string `json:"message"`
	Ok           bool   `json:"ok"`
	Timestamp    string `json:"timestamp"`
	AffectedRows int64  `json:"affectedRows"`
}
