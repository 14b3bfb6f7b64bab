package domain

import "errors"

// Domain-specific errors for business logic validation.
var (
	// Todo errors
	ErrTodoNotFound        = errors.New("todo not found")
	ErrTodoAlreadyFinished = errors.New("todo already finished")
	ErrEmptyDescription    = errors.New("description is required")

	// Calculator errors
	ErrCalculatorNotFound = errors.New("calculator not found")
	ErrInvalidUnit        = errors.New("invalid duration unit")

	// Validation errors
	ErrInvalidDuration = errors.New("invalid duration")
)
