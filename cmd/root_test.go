package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/dashreel/deps"
)

func TestBaseLogger_PipedIsJSON(t *testing.T) {
	var buf bytes.Buffer
	l := baseLogger(&buf, false)
	l.Info().Str("file", "a.mp4").Msg("skipping file")

	assert.Contains(t, buf.String(), `"file":"a.mp4"`)
	assert.Contains(t, buf.String(), `"message":"skipping file"`)
}

func TestBaseLogger_TerminalUsesConsoleLogger(t *testing.T) {
	var console, piped bytes.Buffer
	prev := log.Logger
	defer func() { log.Logger = prev }()
	log.Logger = zerolog.New(&console)

	l := baseLogger(&piped, true)
	l.Info().Msg("hello")

	assert.Contains(t, console.String(), "hello")
	assert.Empty(t, piped.String())
}

func TestCompile_MissingToolsBeforePrompt(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	calls := stubForm(t, func(context.Context, *huh.Form) error { return nil })

	var out bytes.Buffer
	err := compile(context.Background(), &out, compileFlags{})

	var depErr *deps.DependencyError
	require.True(t, errors.As(err, &depErr), "got %v", err)
	assert.Equal(t, "ffprobe", depErr.Name)
	assert.Equal(t, 0, *calls)
	assert.Empty(t, out.String())
}
