package service

import (
	"context"
	"time"

	"github.com/mtlprog/timecalc/internal/domain"
)

// TodoRepository persists todos. Implemented by repository.TodoRepository
// and repository.MemoryTodoRepository.
type TodoRepository interface {
	Ping(ctx context.Context) error
	Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error)
	GetByID(ctx context.Context, todoID string) (*domain.Todo, error)
	GetByIDs(ctx context.Context, todoIDs []string) ([]*domain.Todo, error)
	List(ctx context.Context) ([]*domain.Todo, error)
	Finish(ctx context.Context, todoID string, finishedAt time.Time) (*domain.Todo, error)
	Delete(ctx context.Context, todoID string) error
}

// CalculatorRepository persists calculator sessions.
type CalculatorRepository interface {
	Create(ctx context.Context) (*domain.Calculator, error)
	GetByID(ctx context.Context, calculatorID string) (*domain.Calculator, error)
	Update(ctx context.Context, calculatorID string, fn func(*domain.Calculator) error) (*domain.Calculator, error)
}
