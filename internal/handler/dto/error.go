package dto

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mtlprog/timecalc/internal/domain"
)

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error code and message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewErrorResponse creates a new error response.
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// MapDomainError maps domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code string, message string) {
	message = err.Error()

	switch {
	// Todo errors
	case errors.Is(err, domain.ErrTodoNotFound):
		return http.StatusNotFound, "TODO_NOT_FOUND", message
	case errors.Is(err, domain.ErrTodoAlreadyFinished):
		return http.StatusConflict, "TODO_ALREADY_FINISHED", message

	// Calculator errors
	case errors.Is(err, domain.ErrCalculatorNotFound):
		return http.StatusNotFound, "CALCULATOR_NOT_FOUND", message

	// Validation errors
	case errors.Is(err, domain.ErrEmptyDescription):
		return http.StatusUnprocessableEntity, "VALIDATION_ERROR", message
	case errors.Is(err, domain.ErrInvalidUnit):
		return http.StatusUnprocessableEntity, "VALIDATION_ERROR", message
	case errors.Is(err, domain.ErrInvalidDuration):
		return http.StatusUnprocessableEntity, "VALIDATION_ERROR", message

	default:
		slog.Error("unmapped domain error returned to client",
			"error", err,
			"error_type", fmt.Sprintf("%T", err),
		)
		return http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error"
	}
}
