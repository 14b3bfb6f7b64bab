package domain

import "time"

// Todo is a unit of work whose elapsed time runs from StartedAt until it is
// finished.
type Todo struct {
	ID          string
	Description string
	StartedAt   time.Time
	FinishedAt  *time.Time
}

// IsFinished returns true once the todo has been finished.
func (t *Todo) IsFinished() bool {
	return t.FinishedAt != nil
}

// Elapsed returns the time spent on the todo as of now, truncated to whole
// minutes. A finished todo stops counting at FinishedAt.
func (t *Todo) Elapsed(now time.Time) Duration {
	end := now
	if t.FinishedAt != nil {
		end = *t.FinishedAt
	}
	span := end.Sub(t.StartedAt)
	if span <= 0 {
		return Zero
	}
	return FromMinutes(int64(span / time.Minute))
}

// Timed returns the description at the cost of its elapsed time.
func (t *Todo) Timed(now time.Time) Timed[string] {
	return NewTimed(t.Elapsed(now), t.Description)
}
