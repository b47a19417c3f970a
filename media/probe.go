package media

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Duration returns the playable duration of path in seconds.
func (t *Tool) Duration(ctx context.Context, path string) (float64, error) {
	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	}

	stdout, stderr, err := t.run(ctx, t.FFprobe, args...)
	if err != nil {
		return 0, &ProbeError{Path: path, Stderr: stderr, Err: err}
	}

	d, err := ParseDuration(stdout)
	if err != nil {
		return 0, &ProbeError{Path: path, Stderr: stderr, Err: err}
	}
	return d, nil
}

// ParseDuration reads the bare duration ffprobe prints for
// format=duration. "N/A", empty output, and non-positive values are errors.
func ParseDuration(out string) (float64, error) {
	s := strings.TrimSpace(out)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	if s == "" || s == "N/A" {
		return 0, fmt.Errorf("no duration reported")
	}
	d, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable duration %q", s)
	}
	if d <= 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	return d, nil
}
