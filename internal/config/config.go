package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"pkg.jsn.cam/cdrgen/pkg/cdr"
)

// Defaults for a run without flags.
const (
	DefaultCount     = 10_000_000
	DefaultOutput    = "call_data.csv"
	DefaultCatalog   = "netherlands"
	DefaultStart     = "2025-12-01T00:00"
	DefaultEnd       = "2026-01-08T23:59"
	DefaultLogFormat = "console"
)

// Accepted layouts for -start and -end, always read as UTC.
var timeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

var ErrInvalidTime = errors.New("invalid time")

// Config holds everything one run needs.
type Config struct {
	Count     int
	Start     time.Time
	End       time.Time
	Output    string
	Catalog   string
	Seed      uint64
	Progress  bool
	LogFormat string
	Verbose   bool
}

// Default returns the configuration used when no flags are given.
func Default() Config {
	start, _ := ParseTime(DefaultStart)
	end, _ := ParseTime(DefaultEnd)
	return Config{
		Count:     DefaultCount,
		Start:     start,
		End:       end,
		Output:    DefaultOutput,
		Catalog:   DefaultCatalog,
		LogFormat: DefaultLogFormat,
	}
}

// StartBound returns Start as epoch seconds.
func (c Config) StartBound() int64 {
	return c.Start.Unix()
}

// EndBound returns End as epoch seconds.
func (c Config) EndBound() int64 {
	return c.End.Unix()
}

// Parse reads flags from args. Usage and errors are written to output.
// flag.ErrHelp is returned unchanged for -h.
func Parse(args []string, output io.Writer) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("cdrgen", flag.ContinueOnError)
	fs.SetOutput(output)

	var start, end string
	fs.IntVar(&cfg.Count, "count", cfg.Count, "Number of call records to generate")
	fs.StringVar(&start, "start", DefaultStart, "Earliest call start (UTC, YYYY-MM-DDTHH:MM[:SS])")
	fs.StringVar(&end, "end", DefaultEnd, "Latest call start, exclusive (UTC, YYYY-MM-DDTHH:MM[:SS])")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "Output CSV file path")
	fs.StringVar(&cfg.Catalog, "catalog", cfg.Catalog,
		fmt.Sprintf("Tower catalog: built-in name %v or path to a JSON file", cdr.List()))
	fs.Uint64Var(&cfg.Seed, "seed", 0, "Random seed (0 derives one from the run ID)")
	fs.BoolVar(&cfg.Progress, "progress", false, "Show progress bars on stderr")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: console or json")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.resolve(fs, start, end); err != nil {
		fmt.Fprintln(output, err)
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) resolve(fs *flag.FlagSet, start, end string) error {
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	var err error
	if c.Start, err = ParseTime(start); err != nil {
		return fmt.Errorf("-start: %w", err)
	}
	if c.End, err = ParseTime(end); err != nil {
		return fmt.Errorf("-end: %w", err)
	}
	return nil
}

// ParseTime parses s as a UTC date-time in one of the accepted layouts.
func ParseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
}
