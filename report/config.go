package report

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for report configuration.
type Flags struct {
	Format string
	Output string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags: f,
	}
}

// Config holds CLI flag values for report configuration.
//
// An empty Format means the caller picks one, see [Config.ResolveFormat].
type Config struct {
	Flags  Flags  `yaml:"-"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		Format: "format",
		Output: "output",
	}

	return f.NewConfig()
}

// RegisterFlags adds report flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.Format, c.Flags.Format, "f", "",
		fmt.Sprintf("report format, one of: %s (default text on a terminal, json otherwise)",
			AllFormatStrings()))
	flags.StringVarP(&c.Output, c.Flags.Output, "o", "-",
		"output file path (- for stdout)")
}

// RegisterCompletions registers shell completions for report flags on cmd.
// The output flag keeps default file completion.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Format,
		cobra.FixedCompletions(AllFormatStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Format, err)
	}

	return nil
}

// ResolveFormat parses the configured format. When none is set it returns
// [FormatText] for terminals and [FormatJSON] otherwise.
func (c *Config) ResolveFormat(terminal bool) (Format, error) {
	if c.Format == "" {
		if terminal {
			return FormatText, nil
		}

		return FormatJSON, nil
	}

	return ParseFormat(c.Format)
}

// Emit writes doc to the configured output in format f.
func (c *Config) Emit(stdout io.Writer, f Format, doc Document) error {
	if c.Output == "" || c.Output == "-" {
		return Write(stdout, f, doc)
	}

	out, err := os.Create(c.Output)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	err = Write(out, f, doc)
	if err != nil {
		//nolint:errcheck // The write error is more useful than the close error.
		out.Close()

		return err
	}

	err = out.Close()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return nil
}
