// Package forms provides the huh prompts used to fill in run settings that
// were not given as flags.
package forms

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/user/dashreel/pkg/cliputil"
	"github.com/user/dashreel/pkg/timeutil"
)

// SetupResult holds the values bound to the setup prompts. Fields are
// pre-filled with defaults and overwritten by the user's answers.
type SetupResult struct {
	InputDir string
	Duration string
	Output   string
}

// SetupFields selects which prompts to show.
type SetupFields struct {
	InputDir bool
	Duration bool
	Output   bool
}

// Any reports whether at least one prompt is needed.
func (f SetupFields) Any() bool {
	return f.InputDir || f.Duration || f.Output
}

// ValidateDirectory checks that s names an existing directory.
func ValidateDirectory(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("input cannot be empty")
	}
	info, err := os.Stat(s)
	if err != nil || !info.IsDir() {
		return errors.New("directory does not exist")
	}
	return nil
}

// ParseDuration parses a target duration given as seconds, MM:SS or
// HH:MM:SS and rejects anything that is not a positive, finite length.
func ParseDuration(s string) (float64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, errors.New("input cannot be empty")
	}
	d, err := timeutil.ParseTimeToSeconds(s)
	if err != nil {
		return 0, fmt.Errorf("duration must be a positive number: %w", err)
	}
	if !(d > 0) || math.IsInf(d, 0) {
		return 0, errors.New("duration must be greater than 0 seconds")
	}
	return d, nil
}

// ValidateDuration is ParseDuration shaped as a huh validator.
func ValidateDuration(s string) error {
	_, err := ParseDuration(s)
	return err
}

// ValidateOutput rejects names that are empty once unsafe characters are
// stripped.
func ValidateOutput(s string) error {
	if cliputil.SanitizeFilename(s) == "" {
		return errors.New("input cannot be empty")
	}
	return nil
}

// NewSetupForm creates a huh form asking for the fields selected in ask.
// The result pointer is bound to the form fields and will be populated on submit.
func NewSetupForm(result *SetupResult, ask SetupFields) *huh.Form {
	var fields []huh.Field

	if ask.InputDir {
		fields = append(fields, huh.NewInput().
			Title("Input directory").
			Description("Folder of dashcam recordings, searched recursively").
			Value(&result.InputDir).
			Validate(ValidateDirectory))
	}

	if ask.Duration {
		fields = append(fields, huh.NewInput().
			Title("Target duration").
			Description("Seconds, MM:SS or HH:MM:SS").
			Value(&result.Duration).
			Validate(ValidateDuration))
	}

	if ask.Output {
		fields = append(fields, huh.NewInput().
			Title("Output filename").
			Description(".mp4 is added if missing").
			Value(&result.Output).
			Validate(ValidateOutput))
	}

	return huh.NewForm(
		huh.NewGroup(fields...),
	).WithTheme(Theme())
}
