package httperrors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse represents the standardized error response format
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// HandleServiceError translates a service or repository error into a JSON response.
func HandleServiceError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}
	status, body := Render(err)
	return c.Status(status).JSON(body)
}

// Render maps err to its HTTP status and response body.
func Render(err error) (int, ErrorResponse) {
	var badRequest *BadRequestError
	var notFound *NotFoundError
	var unauthorized *UnauthorizedError
	var fiberErr *fiber.Error

	switch {
	case errors.As(err, &badRequest):
		var details interface{} = badRequest.Messages
		if len(badRequest.Messages) == 1 {
			details = badRequest.Messages[0]
		}
		return http.StatusBadRequest, ErrorResponse{Code: CodeBadRequest, Message: badRequest.Error(), Details: details}
	case errors.As(err, &notFound):
		return http.StatusNotFound, ErrorResponse{Code: CodeNotFound, Message: notFound.Error()}
	case errors.As(err, &unauthorized):
		return http.StatusUnauthorized, ErrorResponse{Code: CodeUnauthorized, Message: unauthorized.Error()}
	case errors.Is(err, ErrDatabaseOperation):
		return http.StatusServiceUnavailable, ErrorResponse{Code: CodeDatabaseError, Message: err.Error()}
	case errors.As(err, &fiberErr):
		return fiberErr.Code, ErrorResponse{Code: http.StatusText(fiberErr.Code), Message: fiberErr.Message}
	default:
		return http.StatusInternalServerError, ErrorResponse{Code: CodeInternalError, Message: "An unexpected error occurred", Details: err.Error()}
	}
}

// HandleValidationError writes a 400 response for request validation failures.
func HandleValidationError(c *fiber.Ctx, messages ...string) error {
	return HandleServiceError(c, NewBadRequest(messages...))
}

// HandleUnauthorized writes a 401 response.
func HandleUnauthorized(c *fiber.Ctx, message string) error {
	return HandleServiceError(c, NewUnauthorized(message))
}
