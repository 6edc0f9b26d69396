package measure

import (
	"runtime"
	"slices"
	"time"

	"go.jacobcolvin.com/bigo/growth"
)

// Counter tallies abstract operations performed by an algorithm.
//
// A Counter is not safe for concurrent use; profiling runs are sequential.
type Counter struct {
	n uint64
}

// Inc adds one operation.
func (c *Counter) Inc() {
	c.n++
}

// Add adds n operations.
func (c *Counter) Add(n uint64) {
	c.n += n
}

// Count returns the number of operations recorded since the last reset.
func (c *Counter) Count() uint64 {
	return c.n
}

// Reset sets the count back to zero.
func (c *Counter) Reset() {
	c.n = 0
}

// Counted returns a [growth.Work] whose cost is the number of operations fn
// records on a fresh [Counter].
func Counted(fn func(n int, c *Counter)) growth.Work {
	return func(n int) float64 {
		var c Counter

		fn(n, &c)

		return float64(c.Count())
	}
}

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a [Clock] backed by [time.Now].
func SystemClock() Clock {
	return systemClock{}
}

// Timer measures wall-clock cost.
//
// Create instances with [NewTimer].
type Timer struct {
	clock   Clock
	repeats int
	warmup  int
}

// TimerOption configures a [Timer].
type TimerOption func(*Timer)

// NewTimer creates a [Timer]. By default it runs once with no warmup.
func NewTimer(opts ...TimerOption) *Timer {
	t := &Timer{
		clock:   SystemClock(),
		repeats: 1,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// WithRepeats sets the number of measured runs per size. The reported cost
// is the median. Values less than 1 are clamped to 1.
func WithRepeats(n int) TimerOption {
	return func(t *Timer) {
		t.repeats = max(1, n)
	}
}

// WithWarmup sets the number of unmeasured runs before measuring each size.
// Negative values are clamped to 0.
func WithWarmup(n int) TimerOption {
	return func(t *Timer) {
		t.warmup = max(0, n)
	}
}

// WithClock sets the [Clock] used to time runs.
func WithClock(c Clock) TimerOption {
	return func(t *Timer) {
		t.clock = c
	}
}

// Work returns a [growth.Work] whose cost is the median wall-clock duration of
// fn in nanoseconds. Runs never overlap.
func (t *Timer) Work(fn func(n int)) growth.Work {
	return func(n int) float64 {
		for range t.warmup {
			fn(n)
		}

		durations := make([]time.Duration, 0, t.repeats)
		for range t.repeats {
			start := t.clock.Now()

			fn(n)

			durations = append(durations, t.clock.Now().Sub(start))
		}

		return float64(median(durations))
	}
}

// Timed is shorthand for NewTimer(opts...).Work(fn).
func Timed(fn func(n int), opts ...TimerOption) growth.Work {
	return NewTimer(opts...).Work(fn)
}

// Allocated returns a [growth.Work] whose cost is the number of bytes the
// heap allocated while fn ran.
//
// The count comes from [runtime.ReadMemStats], so allocations made by other
// goroutines during the run are included.
func Allocated(fn func(n int)) growth.Work {
	return func(n int) float64 {
		var before, after runtime.MemStats

		runtime.GC()
		runtime.ReadMemStats(&before)

		fn(n)

		runtime.ReadMemStats(&after)

		return float64(after.TotalAlloc - before.TotalAlloc)
	}
}

func median(ds []time.Duration) time.Duration {
	if len(ds) == 0 {
		return 0
	}

	sorted := slices.Clone(ds)
	slices.Sort(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}

	return (sorted[mid-1] + sorted[mid]) / 2
}
