// Package run wires discovery, date filtering, clip planning and compilation
// into a single compilation run.
package run

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/user/dashreel/locate"
	"github.com/user/dashreel/pkg/cliputil"
	"github.com/user/dashreel/planner"
)

// manifestName is the concat manifest written inside the workspace.
const manifestName = "clips.txt"

// Run defaults.
const (
	DefaultOutputDir  = "output"
	DefaultOutputName = "compiled-video.mp4"
	DefaultTarget     = 30.0
)

// Compiler joins clip files, in order, into one output file.
type Compiler interface {
	Concat(ctx context.Context, clips []string, manifest, output string) error
}

// Options describes one compilation run.
type Options struct {
	InputDir   string
	Ext        string
	Target     float64
	OutputDir  string
	OutputName string
	Range      locate.Range
	MinClip    float64
	MaxClip    float64
	Seed       uint64
}

// Result summarises a finished run.
type Result struct {
	Output     string
	Size       int64
	Plan       *planner.Plan
	Candidates int
	Filtered   locate.FilterStats
	Seed       uint64
	Elapsed    time.Duration
}

// Runner executes runs against a media backend.
type Runner struct {
	Prober    planner.Prober
	Extractor planner.Extractor
	Compiler  Compiler
	Observer  planner.Observer
	Logger    zerolog.Logger
	// TempDir is where the per-run workspace is created; empty means the
	// system temp directory.
	TempDir string
}

// Run samples clips from opts.InputDir and writes the compilation. Temporary
// clips live in a private workspace that is removed before Run returns,
// whether the run succeeded, failed or was cancelled.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	started := time.Now()
	opts = withDefaults(opts)

	if err := opts.Range.Validate(); err != nil {
		return nil, err
	}

	files, err := locate.Find(opts.InputDir, opts.Ext, r.Logger)
	if err != nil {
		return nil, err
	}
	r.Logger.Info().Int("files", len(files)).Str("dir", opts.InputDir).Msg("found candidate files")

	candidates, stats := locate.FilterByDate(files, opts.Range, r.Logger)
	if !opts.Range.IsZero() {
		r.Logger.Info().
			Stringer("range", opts.Range).
			Int("kept", stats.Kept).
			Int("dropped", stats.Dropped).
			Int("undated", stats.Undated).
			Msg("applied date filter")
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w %s", locate.ErrNoFilesInRange, opts.Range)
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	workspace, err := os.MkdirTemp(r.TempDir, "dashreel-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}
	defer r.cleanup(workspace)

	p := &planner.Planner{
		Prober:    r.Prober,
		Extractor: r.Extractor,
		Rand:      rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)),
		Observer:  r.Observer,
		Logger:    r.Logger,
	}
	plan, err := p.Plan(ctx, candidates, planner.Config{
		Target:    opts.Target,
		MinClip:   opts.MinClip,
		MaxClip:   opts.MaxClip,
		Workspace: workspace,
		Ext:       opts.Ext,
	})
	if err != nil {
		return nil, err
	}

	r.Logger.Info().
		Int("clips", len(plan.Clips)).
		Int("skipped", plan.Skipped).
		Float64("total", plan.Total).
		Float64("target", plan.Target).
		Msg("processing complete")

	output := cliputil.OutputPath(opts.OutputDir, opts.OutputName, opts.Ext)
	if err := r.Compiler.Concat(ctx, plan.Paths(), filepath.Join(workspace, manifestName), output); err != nil {
		return nil, err
	}

	var size int64
	if info, err := os.Stat(output); err == nil {
		size = info.Size()
	}

	return &Result{
		Output:     output,
		Size:       size,
		Plan:       plan,
		Candidates: len(candidates),
		Filtered:   stats,
		Seed:       opts.Seed,
		Elapsed:    time.Since(started),
	}, nil
}

// cleanup removes the workspace with every clip and manifest in it.
func (r *Runner) cleanup(workspace string) {
	if err := os.RemoveAll(workspace); err != nil {
		r.Logger.Error().Err(err).Str("workspace", workspace).Msg("failed to remove temporary clips")
		return
	}
	r.Logger.Debug().Str("workspace", workspace).Msg("removed temporary clips")
}

func withDefaults(opts Options) Options {
	if opts.Ext == "" {
		opts.Ext = locate.DefaultExt
	}
	if !strings.HasPrefix(opts.Ext, ".") {
		opts.Ext = "." + opts.Ext
	}
	if opts.MinClip == 0 && opts.MaxClip == 0 {
		opts.MinClip = planner.DefaultMinClip
		opts.MaxClip = planner.DefaultMaxClip
	}
	if opts.OutputDir == "" {
		opts.OutputDir = DefaultOutputDir
	}
	if opts.OutputName == "" {
		opts.OutputName = DefaultOutputName
	}
	return opts
}

// IsCancelled reports whether err came from an interrupted run.
func IsCancelled(err error) bool {
	return errors.Is(err, context.Canceled)
}
