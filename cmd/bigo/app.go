package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/bigo/growth"
	"go.jacobcolvin.com/bigo/log"
	"go.jacobcolvin.com/bigo/measure"
	"go.jacobcolvin.com/bigo/profile"
	"go.jacobcolvin.com/bigo/report"
	"go.jacobcolvin.com/bigo/version"
	"go.jacobcolvin.com/bigo/workload"
)

// ErrUnexpectedClass is returned by "run --check" when a workload is not
// classified as its expected class.
var ErrUnexpectedClass = errors.New("unexpected complexity class")

type app struct {
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	log     *log.Config
	growth  *growth.Config
	measure *measure.Config
	report  *report.Config
	pprof   *profile.Config

	configPath string
	check      bool
	terminal   bool
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
		log:     log.NewConfig(),
		growth:  growth.NewConfig(),
		measure: measure.NewConfig(),
		report:  report.NewConfig(),
		pprof:   profile.NewConfig(),
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bigo",
		Short: "Classify the empirical growth of an algorithm",
		Long: `bigo runs an algorithm at increasing input sizes, measures its cost and fits
the growth to the nearest complexity class: constant, logarithmic, linear,
linearithmic, quadratic, cubic, exponential or factorial.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			err := a.loadConfig(cmd.Flags())
			if err != nil {
				return err
			}

			return a.log.Install(a.stderr)
		},
	}

	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.PersistentFlags().StringVar(&a.configPath, "config", "",
		"config file (default $XDG_CONFIG_HOME/bigo/config.yaml)")
	a.log.RegisterFlags(root.PersistentFlags())

	a.mustRegister(a.log.RegisterCompletions(root))

	root.AddCommand(
		a.runCmd(),
		a.fitCmd(),
		a.classesCmd(),
		a.workloadsCmd(),
		a.schemaCmd(),
		a.versionCmd(),
	)

	return root
}

func (a *app) mustRegister(err error) {
	if err != nil {
		fmt.Fprintf(a.stderr, "register completions: %v\n", err)
	}
}

func (a *app) runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <workload>",
		Short: "Profile a built-in workload",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}

			return workload.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(_ *cobra.Command, args []string) error {
			return a.run(args[0])
		},
	}

	a.growth.RegisterFlags(cmd.Flags())
	a.measure.RegisterFlags(cmd.Flags())
	a.report.RegisterFlags(cmd.Flags())
	a.pprof.RegisterFlags(cmd.Flags())
	cmd.Flags().BoolVar(&a.check, "check", false,
		"fail unless the workload is classified as its expected class")

	a.mustRegister(a.growth.RegisterCompletions(cmd))
	a.mustRegister(a.measure.RegisterCompletions(cmd))
	a.mustRegister(a.report.RegisterCompletions(cmd))
	a.mustRegister(a.pprof.RegisterCompletions(cmd))

	return cmd
}

func (a *app) run(name string) error {
	w, err := workload.Lookup(name)
	if err != nil {
		return err
	}

	sizes := a.growth.SizesOr(w.Sizes)

	err = w.CheckSizes(sizes)
	if err != nil {
		return err
	}

	work, err := a.measure.Work(w.Run)
	if err != nil {
		return err
	}

	slog.Info("profiling workload",
		slog.String("workload", w.Name),
		slog.String("mode", a.measure.Mode),
		slog.Any("sizes", sizes),
	)

	var res *growth.Result

	err = a.pprof.Capture(func() error {
		var err error

		res, err = a.growth.NewProfiler().Profile(work, sizes)

		return err
	})
	if err != nil {
		return err
	}

	err = a.emit(report.NewDocument(w.Name, res))
	if err != nil {
		return err
	}

	if a.check && res.Class != w.Expected {
		return fmt.Errorf("%w: %s classified as %s, expected %s",
			ErrUnexpectedClass, w.Name, res.Class, w.Expected)
	}

	return nil
}

func (a *app) fitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fit [file|-]",
		Short: "Classify samples measured elsewhere",
		Long: `fit reads samples from a YAML or JSON file, or stdin when the file is "-" or
omitted. The input is a list of {size, cost} objects or a document with a
samples key, such as the JSON or YAML output of "bigo run".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := "-"
			if len(args) > 0 {
				path = args[0]
			}

			return a.fit(path)
		},
	}

	a.growth.RegisterFlags(cmd.Flags())
	a.report.RegisterFlags(cmd.Flags())

	a.mustRegister(a.growth.RegisterCompletions(cmd))
	a.mustRegister(a.report.RegisterCompletions(cmd))

	return cmd
}

func (a *app) fit(path string) error {
	var in io.Reader = a.stdin

	if path != "-" {
		f, err := os.Open(path) //nolint:gosec // Input path from CLI argument is expected.
		if err != nil {
			return fmt.Errorf("%w: %w", report.ErrReadInput, err)
		}
		defer f.Close() //nolint:errcheck // Read-only file.

		in = f
	}

	samples, err := report.ReadSamples(in)
	if err != nil {
		return err
	}

	res, err := a.growth.NewProfiler().Fit(samples)
	if err != nil {
		return err
	}

	return a.emit(report.NewDocument("", res))
}

func (a *app) emit(doc report.Document) error {
	f, err := a.report.ResolveFormat(a.terminal)
	if err != nil {
		return err
	}

	return a.report.Emit(a.stdout, f, doc)
}

func (a *app) classesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classes",
		Short: "List the canonical complexity classes",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
			for _, c := range growth.Classes() {
				fmt.Fprintf(tw, "%s\t%s\n", c, c.Notation())
			}

			return tw.Flush()
		},
	}
}

func (a *app) workloadsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "workloads",
		Short: "List the built-in workloads",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tCLASS\tSIZES\tMAX\tDESCRIPTION")

			for _, w := range workload.All() {
				sizes := make([]string, len(w.Sizes))
				for i, n := range w.Sizes {
					sizes[i] = strconv.Itoa(n)
				}

				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
					w.Name, w.Expected.Notation(), strings.Join(sizes, ","), w.MaxSize, w.Description)
			}

			return tw.Flush()
		},
	}
}

func (a *app) schemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the result document",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := report.Schema()
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(s, "", "  ")
			if err != nil {
				return fmt.Errorf("%w: %w", report.ErrWriteOutput, err)
			}

			_, err = a.stdout.Write(append(out, '\n'))
			if err != nil {
				return fmt.Errorf("%w: %w", report.ErrWriteOutput, err)
			}

			return nil
		},
	}
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(a.stdout, version.Info())

			return err
		},
	}
}
