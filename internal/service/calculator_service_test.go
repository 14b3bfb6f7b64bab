package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/mtlprog/timecalc/internal/clock"
	"github.com/mtlprog/timecalc/internal/domain"
	"github.com/mtlprog/timecalc/internal/repository"
	"github.com/mtlprog/timecalc/internal/service"
)

// CalculatorServiceTestSuite is the test suite for CalculatorService.
type CalculatorServiceTestSuite struct {
	suite.Suite
	calculatorService *service.CalculatorService
	calculatorID      string
}

// SetupTest creates a fresh session for each test.
func (s *CalculatorServiceTestSuite) SetupTest() {
	clk := clock.NewManual(time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC))
	s.calculatorService = service.NewCalculatorService(repository.NewMemoryCalculatorRepository(clk.Now))

	c, err := s.calculatorService.Create(context.Background())
	s.Require().NoError(err)
	s.calculatorID = c.ID
}

// TestSession tests a full enter, add and clear sequence.
func (s *CalculatorServiceTestSuite) TestSession() {
	ctx := context.Background()

	_, err := s.calculatorService.PressDigits(ctx, s.calculatorID, "2")
	s.Require().NoError(err)
	c, err := s.calculatorService.ApplyUnit(ctx, s.calculatorID, "h")
	s.Require().NoError(err)
	s.Equal(domain.Hours(2), c.Current)

	_, err = s.calculatorService.PressDigits(ctx, s.calculatorID, "75")
	s.Require().NoError(err)
	c, err = s.calculatorService.ApplyUnit(ctx, s.calculatorID, "m")
	s.Require().NoError(err)
	s.Equal(domain.NewDuration(0, 3, 15), c.Current)

	c, err = s.calculatorService.Plus(ctx, s.calculatorID)
	s.Require().NoError(err)
	s.Equal(domain.Zero, c.Current)
	s.Equal(domain.NewDuration(0, 3, 15), c.Accumulator)

	_, err = s.calculatorService.PressDigits(ctx, s.calculatorID, "1")
	s.Require().NoError(err)
	_, err = s.calculatorService.ApplyUnit(ctx, s.calculatorID, "d")
	s.Require().NoError(err)
	c, err = s.calculatorService.Equals(ctx, s.calculatorID)
	s.Require().NoError(err)
	s.Equal(domain.NewDuration(1, 3, 15), c.Accumulator)

	got, err := s.calculatorService.Get(ctx, s.calculatorID)
	s.Require().NoError(err)
	s.Equal(c.Accumulator, got.Accumulator)

	c, err = s.calculatorService.Clear(ctx, s.calculatorID)
	s.Require().NoError(err)
	s.Equal(domain.Zero, c.Accumulator)
}

// TestApplyUnit_WithoutInput tests that a unit press with no digits changes nothing.
func (s *CalculatorServiceTestSuite) TestApplyUnit_WithoutInput() {
	c, err := s.calculatorService.ApplyUnit(context.Background(), s.calculatorID, "h")
	s.Require().NoError(err)
	s.Equal(domain.Zero, c.Current)
}

// TestApplyUnit_InvalidUnit tests unit validation.
func (s *CalculatorServiceTestSuite) TestApplyUnit_InvalidUnit() {
	_, err := s.calculatorService.ApplyUnit(context.Background(), s.calculatorID, "weeks")
	s.ErrorIs(err, domain.ErrInvalidUnit)
}

// TestNotFound tests unknown and malformed session IDs.
func (s *CalculatorServiceTestSuite) TestNotFound() {
	ctx := context.Background()

	_, err := s.calculatorService.Get(ctx, "00000000-0000-0000-0000-000000000042")
	s.ErrorIs(err, domain.ErrCalculatorNotFound)
	_, err = s.calculatorService.Plus(ctx, "nope")
	s.ErrorIs(err, domain.ErrCalculatorNotFound)
}

// TestCalculatorServiceTestSuite runs the test suite.
func TestCalculatorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CalculatorServiceTestSuite))
}

func TestSumDurations(t *testing.T) {
	total, err := service.SumDurations([]string{"1d 2h", "23h 30m", "45m"})
	require.NoError(t, err)
	assert.Equal(t, domain.NewDuration(2, 2, 15), total)

	total, err = service.SumDurations(nil)
	require.NoError(t, err)
	assert.Equal(t, domain.Zero, total)

	_, err = service.SumDurations([]string{"1h", "soon"})
	assert.ErrorIs(t, err, domain.ErrInvalidDuration)
	assert.Contains(t, err.Error(), "duration 2")
}
