package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/mtlprog/timecalc/internal/clock"
	"github.com/mtlprog/timecalc/internal/domain"
)

// TodoView is a todo together with its elapsed time at the moment it was read.
type TodoView struct {
	Todo    *domain.Todo
	Elapsed domain.Duration
}

// TodoSummary aggregates elapsed time over all todos.
type TodoSummary struct {
	Total           int
	Open            int
	Finished        int
	TotalElapsed    domain.Duration
	FinishedElapsed domain.Duration
}

// TodoService coordinates todo operations and elapsed-time aggregation.
type TodoService struct {
	repo  TodoRepository
	clock clock.Clock
}

// NewTodoService creates a new TodoService.
func NewTodoService(repo TodoRepository, clk clock.Clock) *TodoService {
	return &TodoService{repo: repo, clock: clk}
}

// Ping checks that the todo storage is reachable.
func (s *TodoService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// AddTodo starts a new todo now.
func (s *TodoService) AddTodo(ctx context.Context, description string) (*TodoView, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, domain.ErrEmptyDescription
	}

	todo, err := s.repo.Create(ctx, &domain.Todo{
		Description: description,
		StartedAt:   s.clock.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}

	slog.Info("todo added", "todo_id", todo.ID)

	return s.view(todo), nil
}

// GetTodo returns a single todo.
func (s *TodoService) GetTodo(ctx context.Context, todoID string) (*TodoView, error) {
	if !isUUID(todoID) {
		return nil, domain.ErrTodoNotFound
	}

	todo, err := s.repo.GetByID(ctx, todoID)
	if err != nil {
		return nil, err
	}
	return s.view(todo), nil
}

// ListTodos returns every todo ordered by start time.
func (s *TodoService) ListTodos(ctx context.Context) ([]TodoView, error) {
	todos, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}

	now := s.clock.Now()
	views := make([]TodoView, len(todos))
	for i, todo := range todos {
		views[i] = TodoView{Todo: todo, Elapsed: todo.Elapsed(now)}
	}
	return views, nil
}

// FinishTodo stops the todo's clock.
func (s *TodoService) FinishTodo(ctx context.Context, todoID string) (*TodoView, error) {
	if !isUUID(todoID) {
		return nil, domain.ErrTodoNotFound
	}

	todo, err := s.repo.Finish(ctx, todoID, s.clock.Now())
	if err != nil {
		return nil, err
	}

	view := s.view(todo)
	slog.Info("todo finished",
		"todo_id", todoID,
		"elapsed", view.Elapsed.String(),
	)

	return view, nil
}

// DeleteTodo removes a todo.
func (s *TodoService) DeleteTodo(ctx context.Context, todoID string) error {
	if !isUUID(todoID) {
		return domain.ErrTodoNotFound
	}

	if err := s.repo.Delete(ctx, todoID); err != nil {
		return err
	}

	slog.Info("todo deleted", "todo_id", todoID)

	return nil
}

// CombineTodos folds the selected todos into their total elapsed time and
// descriptions, in selection order. Duplicate IDs count once; any unknown ID
// fails the whole selection with ErrTodoNotFound.
func (s *TodoService) CombineTodos(ctx context.Context, todoIDs []string) (domain.Timed[[]string], error) {
	ids := make([]string, 0, len(todoIDs))
	seen := make(map[string]bool, len(todoIDs))
	for _, id := range todoIDs {
		if !isUUID(id) {
			return domain.Timed[[]string]{}, fmt.Errorf("%w: %s", domain.ErrTodoNotFound, id)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}

	todos, err := s.repo.GetByIDs(ctx, ids)
	if err != nil {
		return domain.Timed[[]string]{}, fmt.Errorf("get selected todos: %w", err)
	}

	byID := make(map[string]*domain.Todo, len(todos))
	for _, todo := range todos {
		byID[todo.ID] = todo
	}

	now := s.clock.Now()
	items := make([]domain.Timed[string], 0, len(ids))
	for _, id := range ids {
		todo, ok := byID[id]
		if !ok {
			return domain.Timed[[]string]{}, fmt.Errorf("%w: %s", domain.ErrTodoNotFound, id)
		}
		items = append(items, todo.Timed(now))
	}

	result := domain.Combine(items)

	slog.Info("todos combined",
		"count", len(result.Value),
		"total", result.Duration.String(),
	)

	return result, nil
}

// Summary counts todos and sums their elapsed time.
func (s *TodoService) Summary(ctx context.Context) (*TodoSummary, error) {
	todos, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}

	now := s.clock.Now()
	var all, finished []domain.Timed[string]
	for _, todo := range todos {
		timed := todo.Timed(now)
		all = append(all, timed)
		if todo.IsFinished() {
			finished = append(finished, timed)
		}
	}

	return &TodoSummary{
		Total:           len(todos),
		Open:            len(todos) - len(finished),
		Finished:        len(finished),
		TotalElapsed:    domain.Combine(all).Duration,
		FinishedElapsed: domain.Combine(finished).Duration,
	}, nil
}

func (s *TodoService) view(todo *domain.Todo) *TodoView {
	return &TodoView{Todo: todo, Elapsed: todo.Elapsed(s.clock.Now())}
}

func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
