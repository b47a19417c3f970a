package media

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBinary writes an executable shell script standing in for ffmpeg or
// ffprobe.
func fakeBinary(t *testing.T, name, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake binaries are shell scripts")
	}
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755))
	return path
}

// writeLastArg is a fake ffmpeg that writes data to its output argument.
const writeLastArg = `for last; do :; done; printf 'data' > "$last"`

func newTool(ffmpeg, ffprobe string) *Tool {
	return &Tool{FFmpeg: ffmpeg, FFprobe: ffprobe, Timeout: 5 * time.Second, Logger: zerolog.Nop()}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"10.500000\n", 10.5, false},
		{"  3\n", 3, false},
		{"60.1\n60.2\n", 60.1, false},
		{"N/A\n", 0, true},
		{"", 0, true},
		{"abc", 0, true},
		{"0", 0, true},
		{"-1.5", 0, true},
		{"inf", 0, true},
	}
	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.in), func(t *testing.T) {
			got, err := ParseDuration(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestDuration_ParsesProbeOutput(t *testing.T) {
	probe := fakeBinary(t, "ffprobe", `echo "12.345000"`)
	tool := newTool("", probe)

	d, err := tool.Duration(context.Background(), "/cam/a.mp4")
	require.NoError(t, err)
	assert.InDelta(t, 12.345, d, 1e-9)
}

func TestDuration_PassesPathAsSingleArgument(t *testing.T) {
	// Prints the argument count; a shell-split path would inflate it.
	probe := fakeBinary(t, "ffprobe", `echo "$#"`)
	tool := newTool("", probe)

	d, err := tool.Duration(context.Background(), "/cam/my clip; rm -rf x.mp4")
	require.NoError(t, err)
	assert.Equal(t, 7.0, d)
}

func TestDuration_ProbeFailure(t *testing.T) {
	probe := fakeBinary(t, "ffprobe", `echo "moov atom not found" >&2; exit 1`)
	tool := newTool("", probe)

	_, err := tool.Duration(context.Background(), "/cam/broken.mp4")
	require.Error(t, err)

	var probeErr *ProbeError
	require.True(t, errors.As(err, &probeErr))
	assert.Equal(t, "/cam/broken.mp4", probeErr.Path)
	assert.Contains(t, err.Error(), "moov atom not found")
}

func TestDuration_Unparseable(t *testing.T) {
	probe := fakeBinary(t, "ffprobe", `echo "N/A"`)
	tool := newTool("", probe)

	_, err := tool.Duration(context.Background(), "/cam/a.mp4")
	var probeErr *ProbeError
	assert.True(t, errors.As(err, &probeErr))
}

func TestDuration_Timeout(t *testing.T) {
	probe := fakeBinary(t, "ffprobe", `exec sleep 5`)
	tool := newTool("", probe)
	tool.Timeout = 100 * time.Millisecond

	_, err := tool.Duration(context.Background(), "/cam/a.mp4")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestExtract_WritesClip(t *testing.T) {
	ffmpeg := fakeBinary(t, "ffmpeg", writeLastArg)
	tool := newTool(ffmpeg, "")
	dst := filepath.Join(t.TempDir(), "clip_0001.mp4")

	require.NoError(t, tool.Extract(context.Background(), "/cam/a.mp4", 1.25, 4, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))
}

func TestExtract_EmptyOutput(t *testing.T) {
	ffmpeg := fakeBinary(t, "ffmpeg", `for last; do :; done; : > "$last"`)
	tool := newTool(ffmpeg, "")
	dst := filepath.Join(t.TempDir(), "clip_0001.mp4")

	err := tool.Extract(context.Background(), "/cam/a.mp4", 0, 3, dst)
	require.Error(t, err)

	var extractErr *ExtractError
	require.True(t, errors.As(err, &extractErr))
	assert.Contains(t, err.Error(), "empty")
	assert.NoFileExists(t, dst)
}

func TestExtract_Failure(t *testing.T) {
	ffmpeg := fakeBinary(t, "ffmpeg", `for last; do :; done; printf 'partial' > "$last"; echo "Invalid data" >&2; exit 1`)
	tool := newTool(ffmpeg, "")
	dst := filepath.Join(t.TempDir(), "clip_0001.mp4")

	err := tool.Extract(context.Background(), "/cam/a.mp4", 0, 3, dst)
	var extractErr *ExtractError
	require.True(t, errors.As(err, &extractErr))
	assert.Contains(t, extractErr.Stderr, "Invalid data")
	assert.NoFileExists(t, dst)
}

func TestConcat_WritesOutputAndRemovesManifest(t *testing.T) {
	dir := t.TempDir()
	// Copies the manifest next to the output so the test can inspect it.
	ffmpeg := fakeBinary(t, "ffmpeg", `
manifest=""
prev=""
for a; do
  if [ "$prev" = "-i" ]; then manifest="$a"; fi
  prev="$a"
  last="$a"
done
cp "$manifest" "$last.manifest"
printf 'video' > "$last"`)
	tool := newTool(ffmpeg, "")

	clips := []string{filepath.Join(dir, "clip_0001.mp4"), filepath.Join(dir, "clip_0002.mp4")}
	manifest := filepath.Join(dir, "clips.txt")
	output := filepath.Join(dir, "out.mp4")

	require.NoError(t, tool.Concat(context.Background(), clips, manifest, output))

	assert.NoFileExists(t, manifest)
	assert.FileExists(t, output)

	got, err := os.ReadFile(output + ".manifest")
	require.NoError(t, err)
	assert.Equal(t, "file '"+clips[0]+"'\nfile '"+clips[1]+"'\n", string(got))
}

func TestConcat_NoClips(t *testing.T) {
	tool := newTool("/nonexistent/ffmpeg", "")

	err := tool.Concat(context.Background(), nil, filepath.Join(t.TempDir(), "clips.txt"), "out.mp4")
	var compileErr *CompileError
	require.True(t, errors.As(err, &compileErr))
	assert.Contains(t, err.Error(), "no clips to compile")
}

func TestConcat_Failure(t *testing.T) {
	dir := t.TempDir()
	ffmpeg := fakeBinary(t, "ffmpeg", `echo "Unsafe file name" >&2; exit 1`)
	tool := newTool(ffmpeg, "")
	manifest := filepath.Join(dir, "clips.txt")

	err := tool.Concat(context.Background(), []string{filepath.Join(dir, "clip_0001.mp4")}, manifest, filepath.Join(dir, "out.mp4"))
	var compileErr *CompileError
	require.True(t, errors.As(err, &compileErr))
	assert.Contains(t, err.Error(), "Unsafe file name")
	assert.NoFileExists(t, manifest)
}

func TestStderrSuffix_KeepsTail(t *testing.T) {
	got := stderrSuffix("one\ntwo\nthree\nfour\n")
	assert.Equal(t, "\ntwo\nthree\nfour", got)
	assert.Equal(t, "", stderrSuffix("  \n"))
}
