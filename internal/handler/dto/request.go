package dto

// CreateTodoRequest represents the request body for POST /todos.
type CreateTodoRequest struct {
	Description string `json:"description"`
}

// CombineTodosRequest represents the request body for POST /todos/combine.
type CombineTodosRequest struct {
	IDs []string `json:"ids"`
}

// PressDigitsRequest represents the request body for POST /calculators/:id/digits.
type PressDigitsRequest struct {
	Digits string `json:"digits"`
}

// SumDurationsRequest represents the request body for POST /durations/sum.
type SumDurationsRequest struct {
	Durations []string `json:"durations"`
}
