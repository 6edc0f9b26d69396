package growth

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for profiler configuration, allowing callers to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	Sizes      string
	Tolerance  string
	MinSamples string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags: f,
	}
}

// Config holds CLI flag values for profiler configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewProfiler] to create a [Profiler].
type Config struct {
	Flags      Flags   `yaml:"-"`
	Sizes      []int   `yaml:"sizes"`
	Tolerance  float64 `yaml:"tolerance"`
	MinSamples int     `yaml:"min_samples"`
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		Sizes:      "sizes",
		Tolerance:  "tolerance",
		MinSamples: "min-samples",
	}

	return f.NewConfig()
}

// RegisterFlags adds profiler flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.IntSliceVarP(&c.Sizes, c.Flags.Sizes, "s", nil,
		"comma-separated, strictly increasing input sizes (default: chosen by the workload)")
	flags.Float64Var(&c.Tolerance, c.Flags.Tolerance, DefaultTolerance,
		"log-scale error margin within which classes are reported as candidates")
	flags.IntVar(&c.MinSamples, c.Flags.MinSamples, MinSamples,
		fmt.Sprintf("minimum number of samples per run (at least %d)", MinSamples))
}

// RegisterCompletions registers shell completions for profiler flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	for _, flag := range []string{c.Flags.Sizes, c.Flags.Tolerance, c.Flags.MinSamples} {
		err := cmd.RegisterFlagCompletionFunc(flag, noFileComp)
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", flag, err)
		}
	}

	return nil
}

// SizesOr returns the configured sizes, or fallback when none are set.
func (c *Config) SizesOr(fallback []int) []int {
	if len(c.Sizes) == 0 {
		return fallback
	}

	return c.Sizes
}

// NewProfiler creates a [Profiler] using this [Config].
func (c *Config) NewProfiler() *Profiler {
	return New(
		WithTolerance(c.Tolerance),
		WithMinSamples(c.MinSamples),
	)
}
