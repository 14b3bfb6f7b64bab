package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/mtlprog/timecalc/internal/database"
	"github.com/mtlprog/timecalc/internal/domain"
	"github.com/mtlprog/timecalc/internal/repository"
)

// PostgresTestSuite exercises the PostgreSQL repositories against a live
// database named by DATABASE_URL.
type PostgresTestSuite struct {
	suite.Suite
	pool           *pgxpool.Pool
	todoRepo       *repository.TodoRepository
	calculatorRepo *repository.CalculatorRepository
}

func (s *PostgresTestSuite) SetupSuite() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		s.T().Skip("DATABASE_URL not set")
	}

	ctx := context.Background()

	db, err := database.New(ctx, databaseURL)
	s.Require().NoError(err, "failed to connect to database")
	s.pool = db.Pool()

	_, err = database.RunMigrations(ctx, s.pool)
	s.Require().NoError(err, "failed to run migrations")

	s.todoRepo = repository.NewTodoRepository(s.pool)
	s.calculatorRepo = repository.NewCalculatorRepository(s.pool)
}

func (s *PostgresTestSuite) SetupTest() {
	_, err := s.pool.Exec(context.Background(), "TRUNCATE todos, calculators")
	s.Require().NoError(err, "failed to truncate tables")
}

func (s *PostgresTestSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *PostgresTestSuite) TestTodoLifecycle() {
	ctx := context.Background()
	start := time.Now().UTC().Truncate(time.Second)

	todo, err := s.todoRepo.Create(ctx, &domain.Todo{Description: "write tests", StartedAt: start})
	s.Require().NoError(err)
	s.NotEmpty(todo.ID)

	got, err := s.todoRepo.GetByID(ctx, todo.ID)
	s.Require().NoError(err)
	s.Equal("write tests", got.Description)
	s.True(start.Equal(got.StartedAt))
	s.Nil(got.FinishedAt)

	finished, err := s.todoRepo.Finish(ctx, todo.ID, start.Add(30*time.Minute))
	s.Require().NoError(err)
	s.Require().NotNil(finished.FinishedAt)
	s.Equal(domain.Minutes(30), finished.Elapsed(start.Add(time.Hour)))

	_, err = s.todoRepo.Finish(ctx, todo.ID, start.Add(time.Hour))
	s.ErrorIs(err, domain.ErrTodoAlreadyFinished)

	s.Require().NoError(s.todoRepo.Delete(ctx, todo.ID))
	_, err = s.todoRepo.GetByID(ctx, todo.ID)
	s.ErrorIs(err, domain.ErrTodoNotFound)
	_, err = s.todoRepo.Finish(ctx, todo.ID, start)
	s.ErrorIs(err, domain.ErrTodoNotFound)
	s.ErrorIs(s.todoRepo.Delete(ctx, todo.ID), domain.ErrTodoNotFound)
}

func (s *PostgresTestSuite) TestListOrdersByStart() {
	ctx := context.Background()
	start := time.Now().UTC().Truncate(time.Second)

	later, err := s.todoRepo.Create(ctx, &domain.Todo{Description: "later", StartedAt: start.Add(time.Minute)})
	s.Require().NoError(err)
	earlier, err := s.todoRepo.Create(ctx, &domain.Todo{Description: "earlier", StartedAt: start})
	s.Require().NoError(err)

	todos, err := s.todoRepo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(todos, 2)
	s.Equal(earlier.ID, todos[0].ID)
	s.Equal(later.ID, todos[1].ID)

	byID, err := s.todoRepo.GetByIDs(ctx, []string{later.ID, earlier.ID})
	s.Require().NoError(err)
	s.Require().Len(byID, 2)
	s.Equal(earlier.ID, byID[0].ID)
}

func (s *PostgresTestSuite) TestCalculatorUpdate() {
	ctx := context.Background()

	c, err := s.calculatorRepo.Create(ctx)
	s.Require().NoError(err)
	s.Equal(domain.Zero, c.Accumulator)

	updated, err := s.calculatorRepo.Update(ctx, c.ID, func(c *domain.Calculator) error {
		c.PressDigits("90")
		if err := c.ApplyUnit(domain.UnitMinutes); err != nil {
			return err
		}
		c.Plus()
		return nil
	})
	s.Require().NoError(err)
	s.Equal(domain.NewDuration(0, 1, 30), updated.Accumulator)

	got, err := s.calculatorRepo.GetByID(ctx, c.ID)
	s.Require().NoError(err)
	s.Equal(updated.Accumulator, got.Accumulator)
	s.Equal(domain.Zero, got.Current)
}

func TestPostgresTestSuite(t *testing.T) {
	suite.Run(t, new(PostgresTestSuite))
}
