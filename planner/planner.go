// Package planner decides which recordings to sample, how much of each to
// cut, and when the compilation has enough footage.
//
// Planning is strictly sequential: each selected file is probed, cut and
// re-measured before the next one is touched. The running total is checked
// after every accepted clip and sampling stops once it reaches the target.
package planner

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"os"

	"github.com/rs/zerolog"
	"github.com/user/dashreel/pkg/cliputil"
)

// ErrNoValidClips is returned when every sampled file was skipped.
var ErrNoValidClips = errors.New("no valid clips were generated")

// Clip range defaults, in seconds.
const (
	DefaultMinClip = 3.0
	DefaultMaxClip = 5.0
)

// Prober reports the playable duration of a media file in seconds.
type Prober interface {
	Duration(ctx context.Context, path string) (float64, error)
}

// Extractor cuts length seconds from src, starting at start, into dst.
type Extractor interface {
	Extract(ctx context.Context, src string, start, length float64, dst string) error
}

// Config controls a planning pass.
type Config struct {
	// Target is the minimum total duration to accumulate, in seconds.
	Target float64
	// MinClip and MaxClip bound the requested length of every clip.
	MinClip float64
	MaxClip float64
	// Workspace is the directory temporary clips are written to.
	Workspace string
	// Ext is the clip file extension, including the dot.
	Ext string
}

// Validate checks the config before any file is touched.
func (c Config) Validate() error {
	if !(c.Target > 0) {
		return fmt.Errorf("target duration must be greater than 0 seconds, got %v", c.Target)
	}
	if c.MinClip <= 0 || c.MaxClip < c.MinClip {
		return fmt.Errorf("invalid clip range [%v, %v]", c.MinClip, c.MaxClip)
	}
	if c.Workspace == "" {
		return errors.New("workspace directory is required")
	}
	return nil
}

// Planner samples clips from candidate files. Rand is the only source of
// randomness, so a seeded Rand reproduces a run exactly.
type Planner struct {
	Prober    Prober
	Extractor Extractor
	Rand      *rand.Rand
	Observer  Observer
	Logger    zerolog.Logger
}

// SampleSize estimates how many files to sample: target divided by the mean
// clip length, plus one, capped at the number of candidates.
func SampleSize(target, minClip, maxClip float64, candidates int) int {
	avg := (minClip + maxClip) / 2
	// Compare as floats: a huge target overflows the int conversion.
	est := math.Floor(target/avg) + 1
	if est >= float64(candidates) {
		return max(candidates, 0)
	}
	if !(est > 0) {
		return 0
	}
	return int(est)
}

// Sample draws n files uniformly at random without replacement. The
// candidates slice is not modified.
func Sample(r *rand.Rand, candidates []string, n int) []string {
	pool := make([]string, len(candidates))
	copy(pool, candidates)
	if n > len(pool) {
		n = len(pool)
	}
	// Partial Fisher-Yates: the first n slots end up a uniform sample.
	for i := 0; i < n; i++ {
		j := i + r.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

// Plan samples candidates until cfg.Target seconds of clips have been
// accepted or the sample is exhausted.
//
// Files that cannot be probed, are shorter than cfg.MinClip, or fail to cut
// are counted as skipped and never abort the pass. If ctx is cancelled the
// clips accepted so far are returned together with the context error, so
// the caller can remove them.
func (p *Planner) Plan(ctx context.Context, candidates []string, cfg Config) (*Plan, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	obs := p.Observer
	if obs == nil {
		obs = NopObserver{}
	}

	plan := &Plan{Target: cfg.Target}

	n := SampleSize(cfg.Target, cfg.MinClip, cfg.MaxClip, len(candidates))
	selected := Sample(p.Rand, candidates, n)
	plan.Sampled = len(selected)

	p.Logger.Info().
		Int("candidates", len(candidates)).
		Int("sampled", len(selected)).
		Float64("target", cfg.Target).
		Msg("sampling files")
	obs.OnSample(len(selected), cfg.Target)

	for i, src := range selected {
		if plan.Total >= cfg.Target {
			break
		}
		if err := ctx.Err(); err != nil {
			return plan, err
		}

		obs.OnFile(i, src)

		clip, err := p.cut(ctx, src, cliputil.ClipPath(cfg.Workspace, i+1, cfg.Ext), cfg)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return plan, ctxErr
			}
			plan.skip()
			p.Logger.Warn().Err(err).Str("file", src).Msg("skipping file")
			obs.OnSkip(src, err)
			continue
		}

		plan.accept(clip)
		p.Logger.Debug().
			Str("clip", clip.Path).
			Float64("duration", clip.Duration).
			Float64("total", plan.Total).
			Msg("added clip")
		obs.OnClip(clip, plan.Total)
	}

	if len(plan.Clips) == 0 {
		return plan, fmt.Errorf("%w (%d of %d sampled files skipped)", ErrNoValidClips, plan.Skipped, plan.Sampled)
	}
	return plan, nil
}

// cut probes src, picks a random window inside it, extracts the window to
// dst, and measures what was actually written.
func (p *Planner) cut(ctx context.Context, src, dst string, cfg Config) (Clip, error) {
	sourceDuration, err := p.Prober.Duration(ctx, src)
	if err != nil {
		return Clip{}, fmt.Errorf("could not determine video duration: %w", err)
	}
	if sourceDuration < cfg.MinClip {
		return Clip{}, &TooShortError{Path: src, Duration: sourceDuration, Min: cfg.MinClip}
	}

	length := cfg.MinClip + p.Rand.Float64()*(cfg.MaxClip-cfg.MinClip)
	start, length := cliputil.ClipBounds(sourceDuration, length, p.Rand.Float64())

	if err := p.Extractor.Extract(ctx, src, start, length, dst); err != nil {
		_ = os.Remove(dst)
		return Clip{}, err
	}

	measured, err := p.Prober.Duration(ctx, dst)
	if err != nil {
		_ = os.Remove(dst)
		return Clip{}, fmt.Errorf("could not measure extracted clip: %w", err)
	}

	return Clip{
		Source:         src,
		Path:           dst,
		Start:          start,
		Length:         length,
		Duration:       measured,
		SourceDuration: sourceDuration,
	}, nil
}
