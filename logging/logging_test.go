package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestInit_SetsLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	Init(true)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	Init(false)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestNewLogger_Writer(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)
	l.Info().Str("file", "a.mp4").Msg("skipped")

	assert.Contains(t, buf.String(), `"file":"a.mp4"`)
	assert.Contains(t, buf.String(), `"message":"skipped"`)
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	defer func() { log.Logger = prev }()

	log.Logger = zerolog.New(&buf)
	l := WithComponent("planner")
	l.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"planner"`)
}

func TestNewConsoleLogger(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	l := NewConsoleLogger(&buf)
	l.Warn().Str("file", "a.mp4").Msg("no date")

	out := buf.String()
	assert.Contains(t, out, "WRN")
	assert.Contains(t, out, "no date")
	assert.Contains(t, out, "file=a.mp4")
}
