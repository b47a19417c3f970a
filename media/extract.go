package media

import (
	"context"
	"errors"
	"os"

	"github.com/user/dashreel/pkg/timeutil"
)

// Extract cuts length seconds starting at start from src into dst using
// stream copy. A missing or empty dst counts as a failure; dst is removed
// whenever an error is returned.
func (t *Tool) Extract(ctx context.Context, src string, start, length float64, dst string) error {
	args := []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-ss", timeutil.FormatSeconds(start),
		"-t", timeutil.FormatSeconds(length),
		"-i", src,
		"-c", "copy",
		dst,
	}

	t.Logger.Debug().
		Str("source", src).
		Float64("start", start).
		Float64("length", length).
		Str("clip", dst).
		Msg("extracting clip")

	_, stderr, err := t.run(ctx, t.FFmpeg, args...)
	if err != nil {
		_ = os.Remove(dst)
		return &ExtractError{Source: src, Stderr: stderr, Err: err}
	}

	if err := nonEmpty(dst); err != nil {
		_ = os.Remove(dst)
		return &ExtractError{Source: src, Stderr: stderr, Err: err}
	}
	return nil
}

// nonEmpty verifies that path exists and holds data.
func nonEmpty(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.New("output file is missing")
		}
		return err
	}
	if info.Size() == 0 {
		return errors.New("output file is empty")
	}
	return nil
}
