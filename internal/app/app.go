// Package app runs one generate-and-write cycle.
package app

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"

	"pkg.jsn.cam/cdrgen/internal/config"
	"pkg.jsn.cam/cdrgen/internal/logging"
	"pkg.jsn.cam/cdrgen/pkg/cdr"
	"pkg.jsn.cam/cdrgen/pkg/csvout"
)

// Result describes a finished run.
type Result struct {
	RunID   uuid.UUID
	Seed    uint64
	Records int
	Output  string
}

// Runner wires configuration, logging and progress output together.
type Runner struct {
	Config config.Config
	Log    zerolog.Logger

	// ProgressOut receives progress bars when Config.Progress is set.
	ProgressOut io.Writer
}

// Run generates the configured records and writes them to Config.Output.
// Errors have already been logged when they are returned.
func (r *Runner) Run() (Result, error) {
	cfg := r.Config
	runID := uuid.New()
	seed := cfg.Seed
	if seed == 0 {
		seed = SeedFromRunID(runID)
	}

	log := r.Log.With().Str("run_id", runID.String()).Logger()
	res := Result{RunID: runID, Seed: seed, Output: cfg.Output}

	catalog, err := cdr.Resolve(cfg.Catalog)
	if err != nil {
		log.Error().Err(err).Str("catalog", cfg.Catalog).Msg("Failed to load tower catalog")
		return res, err
	}

	genLog := logging.Component(log, "generator")
	genLog.Info().
		Str("count", humanize.Comma(int64(cfg.Count))).
		Time("start", cfg.Start).
		Time("end", cfg.End).
		Uint64("seed", seed).
		Int("towers", catalog.Len()).
		Msg("Generating call records")

	began := time.Now()
	var genOpts []cdr.Option
	if bar := r.progressBar(cfg.Count, "generating"); bar != nil {
		genOpts = append(genOpts, cdr.WithProgress(bar))
		defer bar.Finish()
	}
	records, err := cdr.Generate(cfg.Count, cfg.StartBound(), cfg.EndBound(), catalog, NewRand(seed), genOpts...)
	if err != nil {
		genLog.Error().Err(err).Msg("Generation failed")
		return res, err
	}
	genLog.Debug().Dur("took", time.Since(began)).Msg("Generation complete")

	writeOpts := []csvout.Option{csvout.WithLogger(logging.Component(log, "writer"))}
	if bar := r.progressBar(len(records), "writing"); bar != nil {
		writeOpts = append(writeOpts, csvout.WithProgress(bar))
		defer bar.Finish()
	}
	if err := csvout.WriteFile(cfg.Output, records, writeOpts...); err != nil {
		return res, err
	}

	res.Records = len(records)
	log.Debug().Dur("took", time.Since(began)).Msg("Run complete")
	return res, nil
}

func (r *Runner) progressBar(total int, description string) *progressbar.ProgressBar {
	if !r.Config.Progress || total <= 0 || r.ProgressOut == nil {
		return nil
	}
	return progressbar.NewOptions64(int64(total),
		progressbar.OptionSetWriter(r.ProgressOut),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("records"),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(r.ProgressOut)
		}),
	)
}

// SeedFromRunID folds the 128-bit run ID into a non-zero seed so a run
// without -seed can be reproduced from its logged seed.
func SeedFromRunID(id uuid.UUID) uint64 {
	seed := binary.BigEndian.Uint64(id[:8]) ^ binary.BigEndian.Uint64(id[8:])
	if seed == 0 {
		seed = 1
	}
	return seed
}

// NewRand returns the PCG source used for a run with the given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}
