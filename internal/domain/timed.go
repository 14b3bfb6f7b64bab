package domain

// Timed pairs a value with the Duration it cost to produce.
type Timed[T any] struct {
	Duration Duration
	Value    T
}

// NewTimed creates a Timed value with the given cost.
func NewTimed[T any](d Duration, value T) Timed[T] {
	return Timed[T]{Duration: d, Value: value}
}

// Pure wraps value at zero cost.
func Pure[T any](value T) Timed[T] {
	return Timed[T]{Duration: Zero, Value: value}
}

// Map transforms the carried value and keeps the duration.
func Map[T, U any](t Timed[T], f func(T) U) Timed[U] {
	return Timed[U]{Duration: t.Duration, Value: f(t.Value)}
}

// FlatMap chains a timed step after t. The durations of both steps are added.
func FlatMap[T, U any](t Timed[T], f func(T) Timed[U]) Timed[U] {
	next := f(t.Value)
	return Timed[U]{Duration: t.Duration.Add(next.Duration), Value: next.Value}
}

// Combine folds items into one Timed holding the summed duration and every
// value in input order.
func Combine[T any](items []Timed[T]) Timed[[]T] {
	acc := Pure(make([]T, 0, len(items)))
	for _, item := range items {
		acc = FlatMap(acc, func(values []T) Timed[[]T] {
			return Timed[[]T]{Duration: item.Duration, Value: append(values, item.Value)}
		})
	}
	return acc
}
