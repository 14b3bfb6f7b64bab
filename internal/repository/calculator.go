package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mtlprog/timecalc/internal/domain"
)

var calculatorColumns = []string{
	"id", "input",
	"current_days", "current_hours", "current_minutes",
	"accumulator_days", "accumulator_hours", "accumulator_minutes",
	"updated_at",
}

// CalculatorRepository stores calculator sessions in PostgreSQL.
type CalculatorRepository struct {
	pool *pgxpool.Pool
}

// NewCalculatorRepository creates a new CalculatorRepository.
func NewCalculatorRepository(pool *pgxpool.Pool) *CalculatorRepository {
	return &CalculatorRepository{pool: pool}
}

func scanCalculator(row pgx.Row) (*domain.Calculator, error) {
	var c domain.Calculator
	err := row.Scan(
		&c.ID,
		&c.Input,
		&c.Current.Days,
		&c.Current.Hours,
		&c.Current.Minutes,
		&c.Accumulator.Days,
		&c.Accumulator.Hours,
		&c.Accumulator.Minutes,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCalculatorNotFound
		}
		return nil, fmt.Errorf("scan calculator: %w", err)
	}
	return &c, nil
}

// Create inserts an empty calculator session.
func (r *CalculatorRepository) Create(ctx context.Context) (*domain.Calculator, error) {
	query, args, err := psql.
		Insert("calculators").
		Columns("input").
		Values("").
		Suffix("RETURNING " + joinColumns(calculatorColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Create query for calculator: %w", err)
	}

	c, err := scanCalculator(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("create calculator: %w", err)
	}
	return c, nil
}

// GetByID retrieves a calculator session by ID.
func (r *CalculatorRepository) GetByID(ctx context.Context, calculatorID string) (*domain.Calculator, error) {
	query, args, err := psql.
		Select(calculatorColumns...).
		From("calculators").
		Where(sq.Eq{"id": calculatorID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByID query for calculator %s: %w", calculatorID, err)
	}

	return scanCalculator(r.pool.QueryRow(ctx, query, args...))
}

// Update locks the calculator row, applies fn and writes the result back in
// one transaction. If fn returns an error nothing is written.
func (r *CalculatorRepository) Update(
	ctx context.Context,
	calculatorID string,
	fn func(*domain.Calculator) error,
) (*domain.Calculator, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	query, args, err := psql.
		Select(calculatorColumns...).
		From("calculators").
		Where(sq.Eq{"id": calculatorID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByIDForUpdate query for calculator %s: %w", calculatorID, err)
	}

	c, err := scanCalculator(tx.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, err
	}

	if err := fn(c); err != nil {
		return nil, err
	}

	query, args, err = psql.
		Update("calculators").
		Set("input", c.Input).
		Set("current_days", c.Current.Days).
		Set("current_hours", c.Current.Hours).
		Set("current_minutes", c.Current.Minutes).
		Set("accumulator_days", c.Accumulator.Days).
		Set("accumulator_hours", c.Accumulator.Hours).
		Set("accumulator_minutes", c.Accumulator.Minutes).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": calculatorID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Update query for calculator %s: %w", calculatorID, err)
	}

	if err := tx.QueryRow(ctx, query, args...).Scan(&c.UpdatedAt); err != nil {
		return nil, fmt.Errorf("update calculator: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	return c, nil
}
