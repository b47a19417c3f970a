package locate

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/user/dashreel/pkg/dateutil"
)

// ErrNoFilesInRange is returned when the date filter leaves nothing to sample.
var ErrNoFilesInRange = errors.New("no files in date range")

// Range is an inclusive calendar-day window. A zero Start or End leaves that
// side open.
type Range struct {
	Start time.Time
	End   time.Time
}

// IsZero reports whether neither bound is set.
func (r Range) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// Validate rejects a window whose start falls after its end.
func (r Range) Validate() error {
	if !r.Start.IsZero() && !r.End.IsZero() && r.Start.After(r.End) {
		return fmt.Errorf("start date %s is after end date %s", dateutil.Format(r.Start), dateutil.Format(r.End))
	}
	return nil
}

// Contains reports whether d lies within every bound that is set.
func (r Range) Contains(d time.Time) bool {
	if !r.Start.IsZero() && d.Before(r.Start) {
		return false
	}
	if !r.End.IsZero() && d.After(r.End) {
		return false
	}
	return true
}

// String renders the window for log output.
func (r Range) String() string {
	start, end := "*", "*"
	if !r.Start.IsZero() {
		start = dateutil.Format(r.Start)
	}
	if !r.End.IsZero() {
		end = dateutil.Format(r.End)
	}
	return start + ".." + end
}

// FilterStats summarises a FilterByDate pass.
type FilterStats struct {
	Kept    int
	Dropped int
	Undated int
}

// FilterByDate keeps files whose filename date falls inside r. Files with no
// parseable date are always kept and logged, so a naming scheme the filter
// does not understand never hides recordings.
func FilterByDate(files []string, r Range, logger zerolog.Logger) ([]string, FilterStats) {
	var stats FilterStats
	if r.IsZero() {
		stats.Kept = len(files)
		return files, stats
	}

	kept := make([]string, 0, len(files))
	for _, f := range files {
		d, ok := dateutil.FromFilename(f)
		if !ok {
			logger.Warn().Str("file", f).Msg("no date in filename, including by default")
			stats.Undated++
			kept = append(kept, f)
			continue
		}
		if !r.Contains(d) {
			stats.Dropped++
			continue
		}
		kept = append(kept, f)
	}
	stats.Kept = len(kept)
	return kept, stats
}
