package dto

import (
	"time"

	"github.com/mtlprog/timecalc/internal/domain"
	"github.com/mtlprog/timecalc/internal/service"
)

// DurationResponse renders a duration as text and as its fields.
type DurationResponse struct {
	Text    string `json:"text" example:"2d 5h 9m"`
	Days    int    `json:"days" example:"2"`
	Hours   int    `json:"hours" example:"5"`
	Minutes int    `json:"minutes" example:"9"`
}

// TodoResponse represents a todo with its elapsed time.
type TodoResponse struct {
	ID          string           `json:"id"`
	Description string           `json:"description"`
	Finished    bool             `json:"finished"`
	StartedAt   time.Time        `json:"started_at"`
	FinishedAt  *time.Time       `json:"finished_at"`
	Elapsed     DurationResponse `json:"elapsed"`
}

// TodosListResponse represents the response for GET /todos.
type TodosListResponse struct {
	Todos []TodoResponse `json:"todos"`
	Total int            `json:"total"`
}

// CombinedTodosResponse is the combined duration of a todo selection.
type CombinedTodosResponse struct {
	Duration     DurationResponse `json:"duration"`
	Descriptions []string         `json:"descriptions"`
}

// TodoSummaryResponse represents the response for GET /todos/summary.
type TodoSummaryResponse struct {
	Total           int              `json:"total"`
	Open            int              `json:"open"`
	Finished        int              `json:"finished"`
	TotalElapsed    DurationResponse `json:"total_elapsed"`
	FinishedElapsed DurationResponse `json:"finished_elapsed"`
}

// CalculatorResponse represents a calculator session.
type CalculatorResponse struct {
	ID          string           `json:"id"`
	Input       string           `json:"input"`
	Current     DurationResponse `json:"current"`
	Accumulator DurationResponse `json:"accumulator"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// SumDurationsResponse represents the response for POST /durations/sum.
type SumDurationsResponse struct {
	Total DurationResponse `json:"total"`
}

// ToDurationResponse converts domain.Duration to DurationResponse.
func ToDurationResponse(d domain.Duration) DurationResponse {
	return DurationResponse{
		Text:    d.String(),
		Days:    d.Days,
		Hours:   d.Hours,
		Minutes: d.Minutes,
	}
}

// ToTodoResponse converts a service.TodoView to TodoResponse.
func ToTodoResponse(view service.TodoView) TodoResponse {
	return TodoResponse{
		ID:          view.Todo.ID,
		Description: view.Todo.Description,
		Finished:    view.Todo.IsFinished(),
		StartedAt:   view.Todo.StartedAt,
		FinishedAt:  view.Todo.FinishedAt,
		Elapsed:     ToDurationResponse(view.Elapsed),
	}
}

// ToCombinedTodosResponse converts a combined selection.
func ToCombinedTodosResponse(result domain.Timed[[]string]) CombinedTodosResponse {
	return CombinedTodosResponse{
		Duration:     ToDurationResponse(result.Duration),
		Descriptions: result.Value,
	}
}

// ToTodoSummaryResponse converts service.TodoSummary to TodoSummaryResponse.
func ToTodoSummaryResponse(summary *service.TodoSummary) TodoSummaryResponse {
	return TodoSummaryResponse{
		Total:           summary.Total,
		Open:            summary.Open,
		Finished:        summary.Finished,
		TotalElapsed:    ToDurationResponse(summary.TotalElapsed),
		FinishedElapsed: ToDurationResponse(summary.FinishedElapsed),
	}
}

// ToCalculatorResponse converts domain.Calculator to CalculatorResponse.
func ToCalculatorResponse(c *domain.Calculator) CalculatorResponse {
	return CalculatorResponse{
		ID:          c.ID,
		Input:       c.Input,
		Current:     ToDurationResponse(c.Current),
		Accumulator: ToDurationResponse(c.Accumulator),
		UpdatedAt:   c.UpdatedAt,
	}
}
