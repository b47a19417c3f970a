package deps

import (
	"fmt"
	"os/exec"
)

const (
	FfmpegInstallURL = "https://ffmpeg.org/download.html"
)

// Tools lists the external binaries a compilation run shells out to.
var Tools = []string{"ffprobe", "ffmpeg"}

// DependencyError contains information about a missing dependency
type DependencyError struct {
	Name       string
	InstallURL string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s not found. Install from: %s", e.Name, e.InstallURL)
}

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// Resolve returns the absolute path of an ffmpeg-suite binary, or a
// DependencyError when it is not on PATH.
func Resolve(name string) (string, error) {
	path, err := lookPath(name)
	if err != nil {
		return "", &DependencyError{
			Name:       name,
			InstallURL: FfmpegInstallURL,
		}
	}
	return path, nil
}
