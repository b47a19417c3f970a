package media

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/user/dashreel/pkg/cliputil"
)

// Concat joins clips, in order, into output without re-encoding. The concat
// manifest is written to manifest and removed before Concat returns.
func (t *Tool) Concat(ctx context.Context, clips []string, manifest, output string) error {
	if len(clips) == 0 {
		return &CompileError{Output: output, Err: errors.New("no clips to compile")}
	}

	abs := make([]string, 0, len(clips))
	for _, c := range clips {
		p, err := filepath.Abs(c)
		if err != nil {
			return &CompileError{Output: output, Err: err}
		}
		abs = append(abs, p)
	}

	if err := os.WriteFile(manifest, []byte(cliputil.ConcatManifest(abs)), 0644); err != nil {
		return &CompileError{Output: output, Err: err}
	}
	defer os.Remove(manifest)

	args := []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-f", "concat",
		"-safe", "0",
		"-i", manifest,
		"-c", "copy",
		output,
	}

	t.Logger.Info().
		Int("clips", len(clips)).
		Str("output", output).
		Msg("concatenating clips")

	_, stderr, err := t.run(ctx, t.FFmpeg, args...)
	if err != nil {
		_ = os.Remove(output)
		return &CompileError{Output: output, Stderr: stderr, Err: err}
	}

	if err := nonEmpty(output); err != nil {
		return &CompileError{Output: output, Stderr: stderr, Err: err}
	}
	return nil
}
