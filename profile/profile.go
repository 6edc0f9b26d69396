package profile

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"runtime/pprof"
)

// ErrProfile indicates a pprof profile could not be started or written.
var ErrProfile = errors.New("pprof")

// Capture runs fn with CPU profiling enabled when requested, then writes the
// requested snapshot profiles. The error from fn takes precedence, but
// profile errors are joined to it.
func (c *Config) Capture(fn func() error) error {
	if !c.Enabled() {
		return fn()
	}

	if c.MemProfileRate > 0 && (c.HeapProfile != "" || c.AllocsProfile != "") {
		runtime.MemProfileRate = c.MemProfileRate
	}

	stop, err := c.startCPU()
	if err != nil {
		return err
	}

	runErr := fn()

	return errors.Join(runErr, stop(), c.writeSnapshots())
}

// startCPU starts CPU profiling if a path is configured. The returned stop
// function is always non-nil.
func (c *Config) startCPU() (func() error, error) {
	if c.CPUProfile == "" {
		return func() error { return nil }, nil
	}

	f, err := os.Create(c.CPUProfile) //nolint:gosec // Profile path from CLI flag is expected.
	if err != nil {
		return nil, fmt.Errorf("%w: create cpu profile: %w", ErrProfile, err)
	}

	err = pprof.StartCPUProfile(f)
	if err != nil {
		//nolint:errcheck // The start error is more useful than the close error.
		f.Close()

		return nil, fmt.Errorf("%w: start cpu profile: %w", ErrProfile, err)
	}

	return func() error {
		pprof.StopCPUProfile()

		err := f.Close()
		if err != nil {
			return fmt.Errorf("%w: close cpu profile: %w", ErrProfile, err)
		}

		slog.Debug("wrote profile", slog.String("profile", "cpu"), slog.String("path", c.CPUProfile))

		return nil
	}, nil
}

func (c *Config) writeSnapshots() error {
	snapshots := []struct {
		name string
		path string
	}{
		{"heap", c.HeapProfile},
		{"allocs", c.AllocsProfile},
	}

	var errs []error

	for _, s := range snapshots {
		if s.path == "" {
			continue
		}

		err := writeSnapshot(s.name, s.path)
		if err != nil {
			errs = append(errs, err)

			continue
		}

		slog.Debug("wrote profile", slog.String("profile", s.name), slog.String("path", s.path))
	}

	return errors.Join(errs...)
}

func writeSnapshot(name, path string) error {
	prof := pprof.Lookup(name)
	if prof == nil {
		return fmt.Errorf("%w: unknown profile %q", ErrProfile, name)
	}

	f, err := os.Create(path) //nolint:gosec // Profile path from CLI flag is expected.
	if err != nil {
		return fmt.Errorf("%w: create %s profile: %w", ErrProfile, name, err)
	}

	err = prof.WriteTo(f, 0)
	if err != nil {
		//nolint:errcheck // The write error is more useful than the close error.
		f.Close()

		return fmt.Errorf("%w: write %s profile: %w", ErrProfile, name, err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("%w: close %s profile: %w", ErrProfile, name, err)
	}

	return nil
}
