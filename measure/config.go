package measure

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.jacobcolvin.com/bigo/growth"
)

// Mode selects how cost is measured.
type Mode string

const (
	// ModeCount uses the operation count recorded on a [Counter].
	ModeCount Mode = "count"
	// ModeTime uses median wall-clock nanoseconds.
	ModeTime Mode = "time"
	// ModeAlloc uses bytes allocated on the heap.
	ModeAlloc Mode = "alloc"
)

// ErrUnknownMode indicates an unrecognized measurement mode string.
var ErrUnknownMode = errors.New("unknown measurement mode")

// AllModeStrings returns every supported [Mode] as a string.
func AllModeStrings() []string {
	return []string{string(ModeCount), string(ModeTime), string(ModeAlloc)}
}

// ParseMode parses a measurement mode string.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(s))
	if slices.Contains([]Mode{ModeCount, ModeTime, ModeAlloc}, m) {
		return m, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Flags holds CLI flag names for measurement configuration.
type Flags struct {
	Mode    string
	Repeats string
	Warmup  string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags: f,
	}
}

// Config holds CLI flag values for measurement configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.Work] to adapt an algorithm.
type Config struct {
	Flags   Flags  `yaml:"-"`
	Mode    string `yaml:"mode"`
	Repeats int    `yaml:"repeats"`
	Warmup  int    `yaml:"warmup"`
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		Mode:    "mode",
		Repeats: "repeats",
		Warmup:  "warmup",
	}

	return f.NewConfig()
}

// RegisterFlags adds measurement flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.Mode, c.Flags.Mode, "m", string(ModeCount),
		fmt.Sprintf("cost measurement, one of: %s", AllModeStrings()))
	flags.IntVar(&c.Repeats, c.Flags.Repeats, 5,
		"measured runs per size in time mode (median is reported)")
	flags.IntVar(&c.Warmup, c.Flags.Warmup, 1,
		"unmeasured runs per size before timing")
}

// RegisterCompletions registers shell completions for measurement flags on
// cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Mode,
		cobra.FixedCompletions(AllModeStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Mode, err)
	}

	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	for _, flag := range []string{c.Flags.Repeats, c.Flags.Warmup} {
		err = cmd.RegisterFlagCompletionFunc(flag, noFileComp)
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", flag, err)
		}
	}

	return nil
}

// Work adapts an operation-counting algorithm to a [growth.Work] using the
// configured [Mode].
func (c *Config) Work(run func(n int, ctr *Counter)) (growth.Work, error) {
	mode, err := ParseMode(c.Mode)
	if err != nil {
		return nil, err
	}

	plain := func(n int) {
		var discard Counter

		run(n, &discard)
	}

	switch mode {
	case ModeTime:
		return Timed(plain, WithRepeats(c.Repeats), WithWarmup(c.Warmup)), nil
	case ModeAlloc:
		return Allocated(plain), nil
	default:
		return Counted(run), nil
	}
}
