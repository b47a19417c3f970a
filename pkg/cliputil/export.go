package cliputil

import (
	"fmt"
	"strings"
)

// ConcatEntry formats one line of an ffmpeg concat-demuxer manifest. Single
// quotes in the path are escaped the way a POSIX shell escapes them inside a
// single-quoted string.
func ConcatEntry(path string) string {
	escaped := strings.ReplaceAll(path, "'", `'\''`)
	return fmt.Sprintf("file '%s'\n", escaped)
}

// ConcatManifest builds the whole manifest for the given clip paths, in order.
func ConcatManifest(paths []string) string {
	var b strings.Builder
	for _, p := range paths {
		b.WriteString(ConcatEntry(p))
	}
	return b.String()
}
