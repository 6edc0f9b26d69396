package growth

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
)

// Sentinel errors returned by the profiler.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInsufficientData = errors.New("insufficient data")
)

// InsufficientDataError is returned when too few samples remain after
// measurement anomalies are removed. It carries the anomalies so callers can
// still report them, and matches [ErrInsufficientData] with [errors.Is].
type InsufficientDataError struct {
	Samples   []Sample
	Anomalies []Anomaly
	Retained  int
	Required  int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s: %d of %d samples remain after removing %d anomalies, need %d",
		ErrInsufficientData, e.Retained, len(e.Samples), len(e.Anomalies), e.Required)
}

func (e *InsufficientDataError) Unwrap() error {
	return ErrInsufficientData
}

const (
	// DefaultTolerance is the default log-scale error margin within which two
	// classes are considered indistinguishable.
	DefaultTolerance = 0.1
	// MinSamples is the smallest number of samples a run may fit.
	MinSamples = 3
)

// Work measures the cost of running an algorithm at input size n.
//
// The returned cost may be an operation count, a duration in any unit, or any
// other non-negative quantity, as long as a run uses the same unit throughout.
type Work func(n int) float64

// Profiler fits measured growth to a canonical [Class].
//
// A Profiler holds only configuration; every call is independent.
//
// Create instances with [New].
type Profiler struct {
	tolerance  float64
	minSamples int
}

// Option configures a [Profiler].
type Option func(*Profiler)

// New creates a [Profiler] with the given options.
func New(opts ...Option) *Profiler {
	p := &Profiler{
		tolerance:  DefaultTolerance,
		minSamples: MinSamples,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// WithTolerance sets the log-scale error margin used to collect candidate
// classes. Negative values are clamped to zero.
func WithTolerance(tol float64) Option {
	return func(p *Profiler) {
		p.tolerance = math.Max(0, tol)
	}
}

// WithMinSamples raises the number of samples required per run. Values below
// [MinSamples] are ignored.
func WithMinSamples(n int) Option {
	return func(p *Profiler) {
		p.minSamples = max(MinSamples, n)
	}
}

// Profile is shorthand for New(opts...).Profile(work, sizes).
func Profile(work Work, sizes []int, opts ...Option) (*Result, error) {
	return New(opts...).Profile(work, sizes)
}

// Profile runs work once per size, in order, and fits the measured costs.
//
// Sizes are validated before work is called, so malformed input never
// triggers a measurement. Each call to work completes before the next begins.
// The profiler imposes no time limit; callers bound sizes for classes that
// grow super-polynomially.
func (p *Profiler) Profile(work Work, sizes []int) (*Result, error) {
	err := p.validateSizes(sizes)
	if err != nil {
		return nil, err
	}

	samples := make([]Sample, 0, len(sizes))
	for _, n := range sizes {
		cost := work(n)

		slog.Debug("sample measured",
			slog.Int("size", n),
			slog.Float64("cost", cost),
		)

		samples = append(samples, Sample{Size: n, Cost: cost})
	}

	return p.Fit(samples)
}

// Fit classifies already measured samples.
//
// Samples breaking monotonic growth are reported as anomalies and left out of
// the fit. If fewer than the minimum number of samples remain, Fit returns an
// [*InsufficientDataError] holding the anomalies.
func (p *Profiler) Fit(samples []Sample) (*Result, error) {
	sizes := make([]int, len(samples))
	for i, s := range samples {
		sizes[i] = s.Size
	}

	err := p.validateSizes(sizes)
	if err != nil {
		return nil, err
	}

	for i, s := range samples {
		if s.Cost < 0 || math.IsNaN(s.Cost) || math.IsInf(s.Cost, 0) {
			return nil, fmt.Errorf("%w: sample %d has invalid cost %v", ErrInvalidInput, i, s.Cost)
		}
	}

	return p.fit(samples)
}

func (p *Profiler) validateSizes(sizes []int) error {
	if len(sizes) < p.minSamples {
		return fmt.Errorf("%w: need at least %d sizes, got %d", ErrInvalidInput, p.minSamples, len(sizes))
	}

	for i, n := range sizes {
		if n <= 0 {
			return fmt.Errorf("%w: size %d at index %d is not positive", ErrInvalidInput, n, i)
		}

		if i > 0 && n <= sizes[i-1] {
			return fmt.Errorf("%w: sizes not strictly increasing at index %d (%d after %d)",
				ErrInvalidInput, i, n, sizes[i-1])
		}
	}

	return nil
}
