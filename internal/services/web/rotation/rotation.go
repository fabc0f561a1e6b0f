// Package rotation drives the featured-service carousel: a pure wrap-around
// index step plus a ticker whose lifetime is bound to a context.
package rotation

import (
	"context"
	"errors"
	"time"
)

// Next returns the index after current in a list of size n, wrapping to 0.
func Next(current, n int) int {
	if n <= 0 {
		return 0
	}
	return (Normalize(current, n) + 1) % n
}

// Prev returns the index before current, wrapping to n-1.
func Prev(current, n int) int {
	if n <= 0 {
		return 0
	}
	return (Normalize(current, n) + n - 1) % n
}

// Normalize maps any integer into [0, n).
func Normalize(current, n int) int {
	if n <= 0 {
		return 0
	}
	current %= n
	if current < 0 {
		current += n
	}
	return current
}

// Clock abstracts ticker creation for tests.
type Clock interface {
	NewTicker(d time.Duration) Ticker
}

// Ticker is the subset of *time.Ticker used by Run.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type realClock struct{}

type realTicker struct{ t *time.Ticker }

func (realClock) NewTicker(d time.Duration) Ticker { return realTicker{t: time.NewTicker(d)} }

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// SystemClock is backed by time.NewTicker.
var SystemClock Clock = realClock{}

// Rotator advances an index over a fixed-size list.
type Rotator struct {
	Size     int
	Interval time.Duration
	Clock    Clock
}

// Run emits the successor of start every Interval until ctx ends or emit
// fails. The ticker is stopped on every return path.
func (r Rotator) Run(ctx context.Context, start int, emit func(index int) error) error {
	if emit == nil {
		return errors.New("emit function is required")
	}
	if r.Size <= 0 {
		return errors.New("rotation size must be positive")
	}
	if r.Interval <= 0 {
		return errors.New("rotation interval must be positive")
	}
	clock := r.Clock
	if clock == nil {
		clock = SystemClock
	}

	ticker := clock.NewTicker(r.Interval)
	defer ticker.Stop()

	index := Normalize(start, r.Size)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C():
			index = Next(index, r.Size)
			if err := emit(index); err != nil {
				return err
			}
		}
	}
}
