package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mtlprog/timecalc/internal/domain"
)

func TestTodo_Elapsed(t *testing.T) {
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("open todo runs until now", func(t *testing.T) {
		todo := domain.Todo{StartedAt: start}
		now := start.Add(26*time.Hour + 5*time.Minute + 59*time.Second)
		assert.Equal(t, domain.NewDuration(1, 2, 5), todo.Elapsed(now))
		assert.False(t, todo.IsFinished())
	})

	t.Run("finished todo stops counting", func(t *testing.T) {
		finished := start.Add(45 * time.Minute)
		todo := domain.Todo{StartedAt: start, FinishedAt: &finished}
		assert.Equal(t, domain.Minutes(45), todo.Elapsed(start.Add(72*time.Hour)))
		assert.True(t, todo.IsFinished())
	})

	t.Run("clock behind start", func(t *testing.T) {
		todo := domain.Todo{StartedAt: start}
		assert.Equal(t, domain.Zero, todo.Elapsed(start.Add(-time.Hour)))
	})
}

func TestTodo_Timed(t *testing.T) {
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	todo := domain.Todo{Description: "write report", StartedAt: start}

	got := todo.Timed(start.Add(90 * time.Minute))
	assert.Equal(t, domain.NewTimed(domain.NewDuration(0, 1, 30), "write report"), got)
}
