package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	_ "github.com/mtlprog/timecalc/docs" // Import generated docs
	"github.com/mtlprog/timecalc/internal/handler/dto"
	"github.com/mtlprog/timecalc/internal/middleware"
	"github.com/mtlprog/timecalc/internal/service"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	todoService       *service.TodoService
	calculatorService *service.CalculatorService
}

// New creates a new Handler instance with all dependencies.
func New(todoService *service.TodoService, calculatorService *service.CalculatorService) *Handler {
	return &Handler{
		todoService:       todoService,
		calculatorService: calculatorService,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Health check
	mux.HandleFunc("GET /healthz", h.handleHealthz)

	// Swagger UI
	mux.HandleFunc("GET /swagger/", httpSwagger.Handler())

	// Durations
	mux.HandleFunc("POST /api/v1/durations/sum", h.handleSumDurations)

	// Todos
	mux.HandleFunc("GET /api/v1/todos", h.handleListTodos)
	mux.HandleFunc("POST /api/v1/todos", h.handleCreateTodo)
	mux.HandleFunc("GET /api/v1/todos/summary", h.handleTodoSummary)
	mux.HandleFunc("POST /api/v1/todos/combine", h.handleCombineTodos)
	mux.HandleFunc("GET /api/v1/todos/{id}", h.handleGetTodo)
	mux.HandleFunc("DELETE /api/v1/todos/{id}", h.handleDeleteTodo)
	mux.HandleFunc("POST /api/v1/todos/{id}/finish", h.handleFinishTodo)

	// Calculators
	mux.HandleFunc("POST /api/v1/calculators", h.handleCreateCalculator)
	mux.HandleFunc("GET /api/v1/calculators/{id}", h.handleGetCalculator)
	mux.HandleFunc("POST /api/v1/calculators/{id}/digits", h.handlePressDigits)
	mux.HandleFunc("POST /api/v1/calculators/{id}/units/{unit}", h.handleApplyUnit)
	mux.HandleFunc("POST /api/v1/calculators/{id}/plus", h.handlePlus)
	mux.HandleFunc("POST /api/v1/calculators/{id}/equals", h.handleEquals)
	mux.HandleFunc("POST /api/v1/calculators/{id}/clear", h.handleClear)
}

// Routes returns the full HTTP handler with request logging.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	return middleware.RequestLogger(mux)
}

// handleHealthz returns 200 OK if the storage is reachable.
func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if err := h.todoService.Ping(r.Context()); err != nil {
		slog.Error("storage health check failed", "error", err)
		http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// respondError writes a standard error response.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, dto.NewErrorResponse(code, message))
}

// respondDomainError maps err and writes it as an error response.
func respondDomainError(w http.ResponseWriter, err error) {
	status, code, message := dto.MapDomainError(err)
	respondError(w, status, code, message)
}

// extractID extracts and validates the {id} path parameter.
// Returns (id, true) if valid, ("", false) if invalid (error already sent to client).
func extractID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.PathValue("id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "id is required")
		return "", false
	}

	if _, err := uuid.Parse(id); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "id must be a valid UUID")
		return "", false
	}

	return id, true
}

// decodeJSON decodes the request body into v.
// Returns false if the body is invalid (error already sent to client).
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return false
	}
	return true
}
