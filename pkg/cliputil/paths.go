package cliputil

import (
	"fmt"
	"path/filepath"
	"strings"
)

// SanitizeFilename removes path separators and other filesystem-unsafe
// characters so the name always lands directly inside the output directory.
func SanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	for _, c := range []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"} {
		name = strings.ReplaceAll(name, c, "")
	}
	return name
}

// EnsureExt appends ext to name unless name already ends with it, ignoring
// case. For example, "myvideo" becomes "myvideo.mp4" while "myvideo.MP4" is
// left alone.
func EnsureExt(name, ext string) string {
	if ext == "" {
		return name
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if strings.EqualFold(filepath.Ext(name), ext) {
		return name
	}
	return name + ext
}

// OutputPath returns the final compilation path: {outputDir}/{name}{ext}.
func OutputPath(outputDir, name, ext string) string {
	return filepath.Join(outputDir, EnsureExt(SanitizeFilename(name), ext))
}

// ClipPath returns the path of the n-th temporary clip in a workspace.
// Format: {workspace}/clip_{nnnn}{ext}
func ClipPath(workspace string, n int, ext string) string {
	return filepath.Join(workspace, fmt.Sprintf("clip_%04d%s", n, ext))
}
