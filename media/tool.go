// Package media drives ffprobe and ffmpeg: probing durations, cutting clips
// with stream copy, and joining clips with the concat demuxer.
package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/rs/zerolog"
	"github.com/user/dashreel/deps"
)

// DefaultTimeout bounds a single ffprobe or ffmpeg invocation.
const DefaultTimeout = 5 * time.Minute

// ErrTimeout is wrapped into errors from invocations that exceeded Timeout.
var ErrTimeout = errors.New("timed out")

// Tool runs the ffmpeg suite binaries. A zero Timeout disables the
// per-invocation deadline.
type Tool struct {
	FFmpeg  string
	FFprobe string
	Timeout time.Duration
	Logger  zerolog.Logger
}

// New resolves ffmpeg and ffprobe on PATH.
func New(logger zerolog.Logger, timeout time.Duration) (*Tool, error) {
	ffprobe, err := deps.Resolve("ffprobe")
	if err != nil {
		return nil, err
	}
	ffmpeg, err := deps.Resolve("ffmpeg")
	if err != nil {
		return nil, err
	}
	return &Tool{
		FFmpeg:  ffmpeg,
		FFprobe: ffprobe,
		Timeout: timeout,
		Logger:  logger.With().Str("component", "media").Logger(),
	}, nil
}

// run executes bin with args and returns stdout and stderr separately.
func (t *Tool) run(ctx context.Context, bin string, args ...string) (string, string, error) {
	if t.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.Timeout)
		defer cancel()
	}

	t.Logger.Debug().
		Str("cmd", bin).
		Strs("args", args).
		Msg("executing")

	cmd := exec.CommandContext(ctx, bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	t.Logger.Debug().
		Str("cmd", bin).
		Dur("elapsed", time.Since(start)).
		Err(err).
		Msg("finished")

	if err != nil {
		switch {
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			err = fmt.Errorf("%w after %s", ErrTimeout, t.Timeout)
		case ctx.Err() != nil:
			err = ctx.Err()
		}
	}
	return stdout.String(), stderr.String(), err
}
