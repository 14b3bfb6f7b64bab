package repository

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mtlprog/timecalc/internal/domain"
)

// MemoryTodoRepository keeps todos in process memory. Used when no database
// URL is configured.
type MemoryTodoRepository struct {
	mu    sync.RWMutex
	todos map[string]domain.Todo
}

// NewMemoryTodoRepository creates an empty MemoryTodoRepository.
func NewMemoryTodoRepository() *MemoryTodoRepository {
	return &MemoryTodoRepository{todos: make(map[string]domain.Todo)}
}

// Ping always succeeds.
func (r *MemoryTodoRepository) Ping(context.Context) error {
	return nil
}

// Create stores a copy of todo under a new ID.
func (r *MemoryTodoRepository) Create(_ context.Context, todo *domain.Todo) (*domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	todo.ID = uuid.NewString()
	r.todos[todo.ID] = cloneTodo(*todo)
	return todo, nil
}

// GetByID retrieves a todo by ID.
func (r *MemoryTodoRepository) GetByID(_ context.Context, todoID string) (*domain.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	todo, ok := r.todos[todoID]
	if !ok {
		return nil, domain.ErrTodoNotFound
	}
	return ptr(cloneTodo(todo)), nil
}

// GetByIDs retrieves the todos with the given IDs, ordered by start time.
// Unknown IDs are skipped.
func (r *MemoryTodoRepository) GetByIDs(_ context.Context, todoIDs []string) ([]*domain.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	todos := []*domain.Todo{}
	seen := make(map[string]bool, len(todoIDs))
	for _, id := range todoIDs {
		todo, ok := r.todos[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		todos = append(todos, ptr(cloneTodo(todo)))
	}
	sortTodos(todos)
	return todos, nil
}

// List retrieves all todos ordered by start time.
func (r *MemoryTodoRepository) List(context.Context) ([]*domain.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	todos := make([]*domain.Todo, 0, len(r.todos))
	for _, todo := range r.todos {
		todos = append(todos, ptr(cloneTodo(todo)))
	}
	sortTodos(todos)
	return todos, nil
}

// Finish stamps FinishedAt on an open todo.
func (r *MemoryTodoRepository) Finish(_ context.Context, todoID string, finishedAt time.Time) (*domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	todo, ok := r.todos[todoID]
	if !ok {
		return nil, domain.ErrTodoNotFound
	}
	if todo.IsFinished() {
		return nil, domain.ErrTodoAlreadyFinished
	}

	todo.FinishedAt = &finishedAt
	r.todos[todoID] = todo
	return ptr(cloneTodo(todo)), nil
}

// Delete removes a todo.
func (r *MemoryTodoRepository) Delete(_ context.Context, todoID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.todos[todoID]; !ok {
		return domain.ErrTodoNotFound
	}
	delete(r.todos, todoID)
	return nil
}

// MemoryCalculatorRepository keeps calculator sessions in process memory.
type MemoryCalculatorRepository struct {
	mu          sync.Mutex
	calculators map[string]domain.Calculator
	now         func() time.Time
}

// NewMemoryCalculatorRepository creates an empty MemoryCalculatorRepository.
// now stamps UpdatedAt.
func NewMemoryCalculatorRepository(now func() time.Time) *MemoryCalculatorRepository {
	return &MemoryCalculatorRepository{
		calculators: make(map[string]domain.Calculator),
		now:         now,
	}
}

// Create stores an empty calculator session.
func (r *MemoryCalculatorRepository) Create(context.Context) (*domain.Calculator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := domain.Calculator{ID: uuid.NewString(), UpdatedAt: r.now()}
	r.calculators[c.ID] = c
	return &c, nil
}

// GetByID retrieves a calculator session by ID.
func (r *MemoryCalculatorRepository) GetByID(_ context.Context, calculatorID string) (*domain.Calculator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.calculators[calculatorID]
	if !ok {
		return nil, domain.ErrCalculatorNotFound
	}
	return &c, nil
}

// Update applies fn to the calculator under the repository lock.
// If fn returns an error nothing is written.
func (r *MemoryCalculatorRepository) Update(
	_ context.Context,
	calculatorID string,
	fn func(*domain.Calculator) error,
) (*domain.Calculator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.calculators[calculatorID]
	if !ok {
		return nil, domain.ErrCalculatorNotFound
	}
	if err := fn(&c); err != nil {
		return nil, err
	}
	c.UpdatedAt = r.now()
	r.calculators[calculatorID] = c
	return &c, nil
}

func cloneTodo(todo domain.Todo) domain.Todo {
	if todo.FinishedAt != nil {
		finishedAt := *todo.FinishedAt
		todo.FinishedAt = &finishedAt
	}
	return todo
}

func sortTodos(todos []*domain.Todo) {
	slices.SortFunc(todos, func(a, b *domain.Todo) int {
		if c := a.StartedAt.Compare(b.StartedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
}

func ptr[T any](v T) *T {
	return &v
}
