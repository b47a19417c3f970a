// Package locate finds candidate recordings and narrows them by the date
// encoded in their filenames.
package locate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultExt is the media type dashcams record to.
const DefaultExt = ".mp4"

// ErrNoMatchingFiles is returned when a directory tree holds no candidates.
var ErrNoMatchingFiles = errors.New("no matching files")

// Find walks root recursively and returns every file whose extension
// matches ext, ignoring case. Unreadable subdirectories are logged and
// skipped. The result is sorted so a seeded run samples the same files.
func Find(root, ext string, logger zerolog.Logger) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("directory does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			logger.Warn().Err(err).Str("path", path).Msg("skipping unreadable path")
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if strings.ToLower(filepath.Ext(path)) == ext {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", root, err)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no %s files found in %s or its subdirectories", ErrNoMatchingFiles, ext, root)
	}

	sort.Strings(files)
	return files, nil
}
