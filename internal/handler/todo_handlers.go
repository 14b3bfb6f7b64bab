package handler

import (
	"net/http"

	"github.com/mtlprog/timecalc/internal/handler/dto"
	"github.com/mtlprog/timecalc/internal/service"
)

// handleListTodos lists all todos with their elapsed time.
// @Summary List todos
// @Description List all todos ordered by start time, with elapsed time computed now
// @Tags todos
// @Produce json
// @Success 200 {object} dto.TodosListResponse
// @Router /todos [get]
func (h *Handler) handleListTodos(w http.ResponseWriter, r *http.Request) {
	views, err := h.todoService.ListTodos(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	response := dto.TodosListResponse{
		Todos: make([]dto.TodoResponse, len(views)),
		Total: len(views),
	}
	for i, view := range views {
		response.Todos[i] = dto.ToTodoResponse(view)
	}

	respondJSON(w, http.StatusOK, response)
}

// handleCreateTodo starts a new todo.
// @Summary Create a todo
// @Description Creates a todo whose elapsed time starts now
// @Tags todos
// @Accept json
// @Produce json
// @Param request body dto.CreateTodoRequest true "Todo creation request"
// @Success 201 {object} dto.TodoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /todos [post]
func (h *Handler) handleCreateTodo(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTodoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	view, err := h.todoService.AddTodo(r.Context(), req.Description)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.ToTodoResponse(*view))
}

// handleGetTodo returns a single todo.
// @Summary Get a todo
// @Tags todos
// @Produce json
// @Param id path string true "Todo ID"
// @Success 200 {object} dto.TodoResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /todos/{id} [get]
func (h *Handler) handleGetTodo(w http.ResponseWriter, r *http.Request) {
	todoID, ok := extractID(w, r)
	if !ok {
		return
	}

	view, err := h.todoService.GetTodo(r.Context(), todoID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToTodoResponse(*view))
}

// handleDeleteTodo removes a todo.
// @Summary Delete a todo
// @Tags todos
// @Param id path string true "Todo ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /todos/{id} [delete]
func (h *Handler) handleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	todoID, ok := extractID(w, r)
	if !ok {
		return
	}

	if err := h.todoService.DeleteTodo(r.Context(), todoID); err != nil {
		respondDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleFinishTodo stops a todo's clock.
// @Summary Finish a todo
// @Tags todos
// @Produce json
// @Param id path string true "Todo ID"
// @Success 200 {object} dto.TodoResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /todos/{id}/finish [post]
func (h *Handler) handleFinishTodo(w http.ResponseWriter, r *http.Request) {
	todoID, ok := extractID(w, r)
	if !ok {
		return
	}

	view, err := h.todoService.FinishTodo(r.Context(), todoID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToTodoResponse(*view))
}

// handleCombineTodos sums the elapsed time of a selection of todos.
// @Summary Combine todos
// @Description Returns the total elapsed time and the descriptions of the selected todos, in selection order
// @Tags todos
// @Accept json
// @Produce json
// @Param request body dto.CombineTodosRequest true "Selected todo IDs"
// @Success 200 {object} dto.CombinedTodosResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /todos/combine [post]
func (h *Handler) handleCombineTodos(w http.ResponseWriter, r *http.Request) {
	var req dto.CombineTodosRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.todoService.CombineTodos(r.Context(), req.IDs)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToCombinedTodosResponse(result))
}

// handleTodoSummary returns todo counts and elapsed totals.
// @Summary Todo summary
// @Tags todos
// @Produce json
// @Success 200 {object} dto.TodoSummaryResponse
// @Router /todos/summary [get]
func (h *Handler) handleTodoSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.todoService.Summary(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToTodoSummaryResponse(summary))
}

// handleSumDurations adds up durations given as text.
// @Summary Sum durations
// @Description Parses durations like "1d 2h 30m" and returns their normalized sum
// @Tags durations
// @Accept json
// @Produce json
// @Param request body dto.SumDurationsRequest true "Durations"
// @Success 200 {object} dto.SumDurationsResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /durations/sum [post]
func (h *Handler) handleSumDurations(w http.ResponseWriter, r *http.Request) {
	var req dto.SumDurationsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	total, err := service.SumDurations(req.Durations)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.SumDurationsResponse{Total: dto.ToDurationResponse(total)})
}
