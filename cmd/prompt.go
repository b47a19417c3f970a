package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/user/dashreel/run"
	"github.com/user/dashreel/tui/forms"
)

// errCancelled marks a run the user aborted at a prompt.
var errCancelled = errors.New("cancelled by user")

// runForm is swapped in tests.
var runForm = func(ctx context.Context, form *huh.Form) error {
	return form.RunWithContext(ctx)
}

// missingFields reports which settings were not given as flags.
func missingFields(f compileFlags) forms.SetupFields {
	return forms.SetupFields{
		InputDir: strings.TrimSpace(f.inputDir) == "",
		Duration: strings.TrimSpace(f.duration) == "",
		Output:   strings.TrimSpace(f.output) == "",
	}
}

// promptMissing fills in settings that were not given as flags. With a
// terminal attached the user is asked, with the defaults pre-filled;
// otherwise duration and output fall back to their defaults and a missing
// input directory is an error.
func promptMissing(ctx context.Context, f *compileFlags, interactive bool) error {
	ask := missingFields(*f)
	if !ask.Any() {
		return nil
	}

	if !interactive {
		if ask.InputDir {
			return &InputError{Field: "input directory", Err: errors.New("--input-dir is required when not running in a terminal")}
		}
		if ask.Duration {
			f.duration = fmt.Sprintf("%g", run.DefaultTarget)
		}
		if ask.Output {
			f.output = run.DefaultOutputName
		}
		return nil
	}

	result := &forms.SetupResult{
		InputDir: f.inputDir,
		Duration: f.duration,
		Output:   f.output,
	}
	if ask.InputDir {
		result.InputDir = "."
	}
	if ask.Duration {
		result.Duration = fmt.Sprintf("%g", run.DefaultTarget)
	}
	if ask.Output {
		result.Output = run.DefaultOutputName
	}

	if err := runForm(ctx, forms.NewSetupForm(result, ask)); err != nil {
		if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
			return errCancelled
		}
		return err
	}

	f.inputDir = strings.TrimSpace(result.InputDir)
	f.duration = strings.TrimSpace(result.Duration)
	f.output = strings.TrimSpace(result.Output)
	return nil
}
