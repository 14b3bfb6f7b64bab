package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtlprog/timecalc/internal/domain"
	"github.com/mtlprog/timecalc/internal/repository"
)

var baseTime = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

func TestMemoryTodoRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryTodoRepository()

	second, err := repo.Create(ctx, &domain.Todo{Description: "second", StartedAt: baseTime.Add(time.Minute)})
	require.NoError(t, err)
	first, err := repo.Create(ctx, &domain.Todo{Description: "first", StartedAt: baseTime})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)

	todos, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, "first", todos[0].Description)
	assert.Equal(t, "second", todos[1].Description)

	finished, err := repo.Finish(ctx, first.ID, baseTime.Add(time.Hour))
	require.NoError(t, err)
	require.NotNil(t, finished.FinishedAt)
	assert.Equal(t, baseTime.Add(time.Hour), *finished.FinishedAt)

	_, err = repo.Finish(ctx, first.ID, baseTime.Add(2*time.Hour))
	assert.ErrorIs(t, err, domain.ErrTodoAlreadyFinished)

	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, baseTime.Add(time.Hour), *got.FinishedAt)

	require.NoError(t, repo.Delete(ctx, first.ID))
	_, err = repo.GetByID(ctx, first.ID)
	assert.ErrorIs(t, err, domain.ErrTodoNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, first.ID), domain.ErrTodoNotFound)
	_, err = repo.Finish(ctx, first.ID, baseTime)
	assert.ErrorIs(t, err, domain.ErrTodoNotFound)
}

func TestMemoryTodoRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryTodoRepository()

	todo, err := repo.Create(ctx, &domain.Todo{Description: "copy", StartedAt: baseTime})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, todo.ID)
	require.NoError(t, err)
	got.Description = "changed"

	again, err := repo.GetByID(ctx, todo.ID)
	require.NoError(t, err)
	assert.Equal(t, "copy", again.Description)
}

func TestMemoryTodoRepository_GetByIDs(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryTodoRepository()

	a, err := repo.Create(ctx, &domain.Todo{Description: "a", StartedAt: baseTime})
	require.NoError(t, err)
	b, err := repo.Create(ctx, &domain.Todo{Description: "b", StartedAt: baseTime.Add(time.Minute)})
	require.NoError(t, err)

	todos, err := repo.GetByIDs(ctx, []string{b.ID, "missing", a.ID, b.ID})
	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, a.ID, todos[0].ID)
	assert.Equal(t, b.ID, todos[1].ID)

	todos, err = repo.GetByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestMemoryCalculatorRepository_Update(t *testing.T) {
	ctx := context.Background()
	now := baseTime
	repo := repository.NewMemoryCalculatorRepository(func() time.Time { return now })

	c, err := repo.Create(ctx)
	require.NoError(t, err)
	assert.Equal(t, baseTime, c.UpdatedAt)

	now = baseTime.Add(time.Minute)
	updated, err := repo.Update(ctx, c.ID, func(c *domain.Calculator) error {
		c.PressDigits("5")
		return c.ApplyUnit(domain.UnitHours)
	})
	require.NoError(t, err)
	assert.Equal(t, domain.Hours(5), updated.Current)
	assert.Equal(t, now, updated.UpdatedAt)

	boom := errors.New("boom")
	_, err = repo.Update(ctx, c.ID, func(c *domain.Calculator) error {
		c.Clear()
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Hours(5), got.Current)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrCalculatorNotFound)
	_, err = repo.Update(ctx, "missing", func(*domain.Calculator) error { return nil })
	assert.ErrorIs(t, err, domain.ErrCalculatorNotFound)
}
