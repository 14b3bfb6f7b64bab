package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mtlprog/timecalc/internal/domain"
)

// CalculatorService runs calculator sessions.
type CalculatorService struct {
	repo CalculatorRepository
}

// NewCalculatorService creates a new CalculatorService.
func NewCalculatorService(repo CalculatorRepository) *CalculatorService {
	return &CalculatorService{repo: repo}
}

// Create starts an empty session.
func (s *CalculatorService) Create(ctx context.Context) (*domain.Calculator, error) {
	c, err := s.repo.Create(ctx)
	if err != nil {
		return nil, fmt.Errorf("create calculator: %w", err)
	}

	slog.Info("calculator created", "calculator_id", c.ID)

	return c, nil
}

// Get returns the current state of a session.
func (s *CalculatorService) Get(ctx context.Context, calculatorID string) (*domain.Calculator, error) {
	if !isUUID(calculatorID) {
		return nil, domain.ErrCalculatorNotFound
	}
	return s.repo.GetByID(ctx, calculatorID)
}

// PressDigits appends digits to the pending input.
func (s *CalculatorService) PressDigits(ctx context.Context, calculatorID, digits string) (*domain.Calculator, error) {
	return s.update(ctx, calculatorID, "digits", func(c *domain.Calculator) error {
		c.PressDigits(digits)
		return nil
	})
}

// ApplyUnit converts the pending input into days, hours or minutes.
func (s *CalculatorService) ApplyUnit(ctx context.Context, calculatorID, unit string) (*domain.Calculator, error) {
	u, err := domain.ParseUnit(unit)
	if err != nil {
		return nil, err
	}
	return s.update(ctx, calculatorID, "unit", func(c *domain.Calculator) error {
		return c.ApplyUnit(u)
	})
}

// Plus adds the current duration to the accumulator.
func (s *CalculatorService) Plus(ctx context.Context, calculatorID string) (*domain.Calculator, error) {
	return s.update(ctx, calculatorID, "plus", func(c *domain.Calculator) error {
		c.Plus()
		return nil
	})
}

// Equals adds the current duration to the accumulator.
func (s *CalculatorService) Equals(ctx context.Context, calculatorID string) (*domain.Calculator, error) {
	return s.update(ctx, calculatorID, "equals", func(c *domain.Calculator) error {
		c.Equals()
		return nil
	})
}

// Clear resets the session.
func (s *CalculatorService) Clear(ctx context.Context, calculatorID string) (*domain.Calculator, error) {
	return s.update(ctx, calculatorID, "clear", func(c *domain.Calculator) error {
		c.Clear()
		return nil
	})
}

func (s *CalculatorService) update(
	ctx context.Context,
	calculatorID string,
	action string,
	fn func(*domain.Calculator) error,
) (*domain.Calculator, error) {
	if !isUUID(calculatorID) {
		return nil, domain.ErrCalculatorNotFound
	}

	c, err := s.repo.Update(ctx, calculatorID, fn)
	if err != nil {
		return nil, err
	}

	slog.Debug("calculator updated",
		"calculator_id", calculatorID,
		"action", action,
		"current", c.Current.String(),
		"accumulator", c.Accumulator.String(),
	)

	return c, nil
}

// SumDurations parses each value and adds them up.
func SumDurations(values []string) (domain.Duration, error) {
	durations := make([]domain.Duration, 0, len(values))
	for i, v := range values {
		d, err := domain.ParseDuration(v)
		if err != nil {
			return domain.Zero, fmt.Errorf("duration %d: %w", i+1, err)
		}
		durations = append(durations, d)
	}
	return domain.Sum(durations...), nil
}
