package media

import (
	"fmt"
	"strings"
)

// ProbeError reports that a file's duration could not be determined.
type ProbeError struct {
	Path   string
	Stderr string
	Err    error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("probe %s: %v%s", e.Path, e.Err, stderrSuffix(e.Stderr))
}

func (e *ProbeError) Unwrap() error { return e.Err }

// ExtractError reports that a clip could not be cut from a source file, or
// that the cut produced no data.
type ExtractError struct {
	Source string
	Stderr string
	Err    error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("extract clip from %s: %v%s", e.Source, e.Err, stderrSuffix(e.Stderr))
}

func (e *ExtractError) Unwrap() error { return e.Err }

// CompileError reports that the clips could not be joined into the output.
type CompileError struct {
	Output string
	Stderr string
	Err    error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile %s: %v%s", e.Output, e.Err, stderrSuffix(e.Stderr))
}

func (e *CompileError) Unwrap() error { return e.Err }

// stderrSuffix keeps the last few lines of tool output, which is where
// ffmpeg prints the actual failure.
func stderrSuffix(stderr string) string {
	stderr = strings.TrimSpace(stderr)
	if stderr == "" {
		return ""
	}
	lines := strings.Split(stderr, "\n")
	if len(lines) > 3 {
		lines = lines[len(lines)-3:]
	}
	return "\n" + strings.Join(lines, "\n")
}
