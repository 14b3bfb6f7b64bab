package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mtlprog/timecalc/internal/domain"
)

// todoColumns is the shared list of columns for todo queries.
var todoColumns = []string{"id", "description", "started_at", "finished_at"}

// TodoRepository stores todos in PostgreSQL.
type TodoRepository struct {
	pool *pgxpool.Pool
}

// NewTodoRepository creates a new TodoRepository.
func NewTodoRepository(pool *pgxpool.Pool) *TodoRepository {
	return &TodoRepository{pool: pool}
}

// scanTodo scans a single row into a Todo struct.
func scanTodo(row pgx.Row) (*domain.Todo, error) {
	var todo domain.Todo
	err := row.Scan(
		&todo.ID,
		&todo.Description,
		&todo.StartedAt,
		&todo.FinishedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTodoNotFound
		}
		return nil, fmt.Errorf("scan todo: %w", err)
	}
	return &todo, nil
}

// scanTodos scans multiple rows into a slice of Todo structs.
func scanTodos(rows pgx.Rows) ([]*domain.Todo, error) {
	defer rows.Close()

	todos := []*domain.Todo{}
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return todos, nil
}

// Ping checks that the database is reachable.
func (r *TodoRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// Create inserts a todo and fills in its generated ID.
func (r *TodoRepository) Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error) {
	query, args, err := psql.
		Insert("todos").
		Columns("description", "started_at", "finished_at").
		Values(todo.Description, todo.StartedAt, todo.FinishedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Create query for todo: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&todo.ID); err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}

	return todo, nil
}

// GetByID retrieves a todo by ID.
func (r *TodoRepository) GetByID(ctx context.Context, todoID string) (*domain.Todo, error) {
	query, args, err := psql.
		Select(todoColumns...).
		From("todos").
		Where(sq.Eq{"id": todoID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByID query for todo %s: %w", todoID, err)
	}

	return scanTodo(r.pool.QueryRow(ctx, query, args...))
}

// GetByIDs retrieves the todos with the given IDs, ordered by start time.
// Unknown IDs are skipped.
func (r *TodoRepository) GetByIDs(ctx context.Context, todoIDs []string) ([]*domain.Todo, error) {
	if len(todoIDs) == 0 {
		return []*domain.Todo{}, nil
	}

	query, args, err := psql.
		Select(todoColumns...).
		From("todos").
		Where(sq.Eq{"id": todoIDs}).
		OrderBy("started_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByIDs query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query todos by id: %w", err)
	}

	return scanTodos(rows)
}

// List retrieves all todos ordered by start time.
func (r *TodoRepository) List(ctx context.Context) ([]*domain.Todo, error) {
	query, args, err := psql.
		Select(todoColumns...).
		From("todos").
		OrderBy("started_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build List query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query todos: %w", err)
	}

	return scanTodos(rows)
}

// Finish stamps finished_at on an open todo.
// Returns ErrTodoAlreadyFinished if the todo was finished before.
func (r *TodoRepository) Finish(ctx context.Context, todoID string, finishedAt time.Time) (*domain.Todo, error) {
	query, args, err := psql.
		Update("todos").
		Set("finished_at", finishedAt).
		Where(sq.Eq{
			"id":          todoID,
			"finished_at": nil,
		}).
		Suffix("RETURNING " + joinColumns(todoColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Finish query for todo %s: %w", todoID, err)
	}

	todo, err := scanTodo(r.pool.QueryRow(ctx, query, args...))
	if !errors.Is(err, domain.ErrTodoNotFound) {
		return todo, err
	}

	// No row updated: either the todo is missing or it is already finished.
	if _, err := r.GetByID(ctx, todoID); err != nil {
		return nil, err
	}
	return nil, domain.ErrTodoAlreadyFinished
}

// Delete removes a todo.
func (r *TodoRepository) Delete(ctx context.Context, todoID string) error {
	query, args, err := psql.
		Delete("todos").
		Where(sq.Eq{"id": todoID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build Delete query for todo %s: %w", todoID, err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrTodoNotFound
	}

	return nil
}
