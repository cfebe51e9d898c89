package main

import (
	"errors"
	"flag"
	"os"

	"pkg.jsn.cam/cdrgen/internal/app"
	"pkg.jsn.cam/cdrgen/internal/config"
	"pkg.jsn.cam/cdrgen/internal/logging"
)

/*generates synthetic cell-tower call-detail records as CSV*/

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Parse(args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		return exitUsage
	}

	log, err := logging.New(os.Stderr, cfg.LogFormat, cfg.Verbose)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		return exitUsage
	}

	runner := &app.Runner{Config: cfg, Log: log, ProgressOut: os.Stderr}
	if _, err := runner.Run(); err != nil {
		// Already logged by the runner; the write failure is reported, not a crash.
		return exitFailure
	}
	return exitOK
}
