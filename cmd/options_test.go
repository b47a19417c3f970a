package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/dashreel/planner"
)

func validFlags(t *testing.T) compileFlags {
	t.Helper()
	return compileFlags{
		inputDir:  t.TempDir(),
		duration:  "60",
		output:    "trip",
		outputDir: "out",
		seed:      42,
	}
}

func TestResolveOptions_Valid(t *testing.T) {
	f := validFlags(t)

	opts, err := resolveOptions(f, time.Now())
	require.NoError(t, err)

	assert.Equal(t, f.inputDir, opts.InputDir)
	assert.Equal(t, 60.0, opts.Target)
	assert.Equal(t, "trip", opts.OutputName)
	assert.Equal(t, "out", opts.OutputDir)
	assert.Equal(t, ".mp4", opts.Ext)
	assert.Equal(t, uint64(42), opts.Seed)
	assert.True(t, opts.Range.IsZero())
}

func TestResolveOptions_DurationForms(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"30", 30},
		{"12.5", 12.5},
		{"1:30", 90},
		{"01:00:05", 3605},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			f := validFlags(t)
			f.duration = tt.in
			opts, err := resolveOptions(f, time.Now())
			require.NoError(t, err)
			assert.InDelta(t, tt.want, opts.Target, 1e-9)
		})
	}
}

func TestResolveOptions_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		mod   func(*compileFlags)
		field string
	}{
		{"missing dir", func(f *compileFlags) { f.inputDir = "/definitely/not/here" }, "input directory"},
		{"zero duration", func(f *compileFlags) { f.duration = "0" }, "duration"},
		{"negative duration", func(f *compileFlags) { f.duration = "-5" }, "duration"},
		{"word duration", func(f *compileFlags) { f.duration = "abc" }, "duration"},
		{"empty output", func(f *compileFlags) { f.output = "///" }, "output"},
		{"bad month", func(f *compileFlags) { f.month = "2024-13" }, "month"},
		{"bad start", func(f *compileFlags) { f.startDate = "yesterday" }, "start date"},
		{"bad end", func(f *compileFlags) { f.endDate = "2024-02-30" }, "end date"},
		{"reversed", func(f *compileFlags) { f.startDate = "2024-03-10"; f.endDate = "2024-03-01" }, "date range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFlags(t)
			tt.mod(&f)

			_, err := resolveOptions(f, time.Now())
			var inputErr *InputError
			require.True(t, errors.As(err, &inputErr), "got %v", err)
			assert.Equal(t, tt.field, inputErr.Field)
		})
	}
}

func TestResolveOptions_SeedFromClock(t *testing.T) {
	f := validFlags(t)
	f.seed = 0
	now := time.Unix(1700000000, 123)

	opts, err := resolveOptions(f, now)
	require.NoError(t, err)
	assert.Equal(t, uint64(now.UnixNano()), opts.Seed)
}

func TestResolveRange(t *testing.T) {
	t.Run("start and end", func(t *testing.T) {
		rng, err := resolveRange(compileFlags{startDate: "20240301", endDate: "2024-03-15"})
		require.NoError(t, err)
		assert.Equal(t, "2024-03-01..2024-03-15", rng.String())
	})

	t.Run("open end", func(t *testing.T) {
		rng, err := resolveRange(compileFlags{startDate: "2024-03-01"})
		require.NoError(t, err)
		assert.True(t, rng.End.IsZero())
		assert.False(t, rng.Start.IsZero())
	})

	t.Run("month end bound", func(t *testing.T) {
		rng, err := resolveRange(compileFlags{endDate: "2024-02"})
		require.NoError(t, err)
		assert.Equal(t, 29, rng.End.Day())
	})

	t.Run("month overrides dates", func(t *testing.T) {
		rng, err := resolveRange(compileFlags{month: "202402", startDate: "2023-01-01", endDate: "2023-01-31"})
		require.NoError(t, err)
		assert.Equal(t, "2024-02-01..2024-02-29", rng.String())
	})
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		out  string
	}{
		{"success", nil, 0, ""},
		{"prompt aborted", errCancelled, 0, "Operation cancelled by user."},
		{"interrupted", context.Canceled, 0, "Operation cancelled by user."},
		{"failure", planner.ErrNoValidClips, 1, "An error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			assert.Equal(t, tt.code, exitCode(tt.err, &buf))
			assert.Contains(t, buf.String(), tt.out)
		})
	}
}
