package cmd

import (
	"fmt"
	"time"

	"github.com/user/dashreel/locate"
	"github.com/user/dashreel/pkg/dateutil"
	"github.com/user/dashreel/run"
	"github.com/user/dashreel/tui/forms"
)

// InputError reports a missing or invalid run setting.
type InputError struct {
	Field string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// compileFlags holds the raw flag values of the root command.
type compileFlags struct {
	inputDir    string
	duration    string
	output      string
	outputDir   string
	startDate   string
	endDate     string
	month       string
	seed        uint64
	toolTimeout time.Duration
	verbose     bool
	noProgress  bool
}

// resolveOptions validates flag values and turns them into run options.
// A --month value replaces --start-date and --end-date.
func resolveOptions(f compileFlags, now time.Time) (run.Options, error) {
	if err := forms.ValidateDirectory(f.inputDir); err != nil {
		return run.Options{}, &InputError{Field: "input directory", Err: fmt.Errorf("%s: %w", f.inputDir, err)}
	}

	target, err := forms.ParseDuration(f.duration)
	if err != nil {
		return run.Options{}, &InputError{Field: "duration", Err: err}
	}

	if err := forms.ValidateOutput(f.output); err != nil {
		return run.Options{}, &InputError{Field: "output", Err: err}
	}

	rng, err := resolveRange(f)
	if err != nil {
		return run.Options{}, err
	}

	seed := f.seed
	if seed == 0 {
		seed = uint64(now.UnixNano())
	}

	return run.Options{
		InputDir:   f.inputDir,
		Ext:        locate.DefaultExt,
		Target:     target,
		OutputDir:  f.outputDir,
		OutputName: f.output,
		Range:      rng,
		Seed:       seed,
	}, nil
}

func resolveRange(f compileFlags) (locate.Range, error) {
	var rng locate.Range

	if f.month != "" {
		first, last, err := dateutil.MonthRange(f.month)
		if err != nil {
			return rng, &InputError{Field: "month", Err: err}
		}
		return locate.Range{Start: first, End: last}, nil
	}

	if f.startDate != "" {
		d, err := dateutil.ParseBound(f.startDate, false)
		if err != nil {
			return rng, &InputError{Field: "start date", Err: err}
		}
		rng.Start = d
	}
	if f.endDate != "" {
		d, err := dateutil.ParseBound(f.endDate, true)
		if err != nil {
			return rng, &InputError{Field: "end date", Err: err}
		}
		rng.End = d
	}

	if err := rng.Validate(); err != nil {
		return rng, &InputError{Field: "date range", Err: err}
	}
	return rng, nil
}
