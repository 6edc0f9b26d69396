package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"github.com/goccy/go-yaml"
	"github.com/spf13/pflag"

	"go.jacobcolvin.com/bigo/log"
	"go.jacobcolvin.com/bigo/measure"
	"go.jacobcolvin.com/bigo/report"
)

// configFile is the relative path searched under the XDG config directories.
const configFile = "bigo/config.yaml"

// ErrConfig indicates the config file could not be read or parsed.
var ErrConfig = errors.New("config file")

// fileConfig mirrors the flag configs. Zero values mean "not set", except
// for the profile tolerance where zero is a valid setting.
type fileConfig struct {
	Log     log.Config     `yaml:"log"`
	Profile profileConfig  `yaml:"profile"`
	Measure measure.Config `yaml:"measure"`
	Report  report.Config  `yaml:"report"`
}

type profileConfig struct {
	Tolerance  *float64 `yaml:"tolerance"`
	Sizes      []int    `yaml:"sizes"`
	MinSamples int      `yaml:"min_samples"`
}

// findConfig returns the config file to load, or "" when there is none.
// An explicit path must exist.
func findConfig(explicit string) (string, error) {
	if explicit != "" {
		_, err := os.Stat(explicit)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrConfig, err)
		}

		return explicit, nil
	}

	path, err := xdg.SearchConfigFile(configFile)
	if err != nil {
		return "", nil //nolint:nilerr // A missing default config is not an error.
	}

	return path, nil
}

func readConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Config path is user-provided.
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	var fc fileConfig

	err = yaml.Unmarshal(data, &fc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfig, path, err)
	}

	return &fc, nil
}

// loadConfig applies config file values to every flag that was not set on
// the command line.
func (a *app) loadConfig(flags *pflag.FlagSet) error {
	path, err := findConfig(a.configPath)
	if err != nil || path == "" {
		return err
	}

	fc, err := readConfig(path)
	if err != nil {
		return err
	}

	setString(flags, a.log.Flags.Level, &a.log.Level, fc.Log.Level)
	setString(flags, a.log.Flags.Format, &a.log.Format, fc.Log.Format)

	if len(fc.Profile.Sizes) > 0 && !flags.Changed(a.growth.Flags.Sizes) {
		a.growth.Sizes = fc.Profile.Sizes
	}

	if fc.Profile.Tolerance != nil && !flags.Changed(a.growth.Flags.Tolerance) {
		a.growth.Tolerance = *fc.Profile.Tolerance
	}

	setInt(flags, a.growth.Flags.MinSamples, &a.growth.MinSamples, fc.Profile.MinSamples)

	setString(flags, a.measure.Flags.Mode, &a.measure.Mode, fc.Measure.Mode)
	setInt(flags, a.measure.Flags.Repeats, &a.measure.Repeats, fc.Measure.Repeats)
	setInt(flags, a.measure.Flags.Warmup, &a.measure.Warmup, fc.Measure.Warmup)

	setString(flags, a.report.Flags.Format, &a.report.Format, fc.Report.Format)
	setString(flags, a.report.Flags.Output, &a.report.Output, fc.Report.Output)

	return nil
}

func setString(flags *pflag.FlagSet, name string, dst *string, v string) {
	if v != "" && !flags.Changed(name) {
		*dst = v
	}
}

func setInt(flags *pflag.FlagSet, name string, dst *int, v int) {
	if v != 0 && !flags.Changed(name) {
		*dst = v
	}
}
