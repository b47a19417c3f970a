package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/user/dashreel/deps"
	"github.com/user/dashreel/logging"
	"github.com/user/dashreel/media"
	"github.com/user/dashreel/run"
	"github.com/user/dashreel/tui/progress"
)

var Version = "0.1.0"

var flags compileFlags

var rootCmd = &cobra.Command{
	Use:   "dashreel",
	Short: "Compile random dashcam clips into one video",
	Long: `dashreel samples short random clips from a folder of dashcam recordings
and joins them into a single compilation of a target duration.

Features:
  - Recursive discovery of .mp4 recordings
  - Optional date filter using the YYYYMMDD prefix of dashcam filenames
  - 3-5 second clips cut and joined with ffmpeg stream copy (no re-encode)
  - Reproducible runs with --seed`,
	Example: `  dashreel --input-dir /Volumes/dashcam --duration 60 --output trip
  dashreel --input-dir ./cam --duration 2:00 --month 2024-02
  dashreel --input-dir ./cam --start-date 20240301 --end-date 2024-03-15`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return compile(cmd.Context(), cmd.OutOrStdout(), flags)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "dashreel version %s\n", Version)
	},
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check system dependencies",
	Long:  `Check that the required system dependencies (ffprobe, ffmpeg) are installed and available.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Checking dependencies...")
		fmt.Fprintln(out)

		allGood := true
		for _, name := range deps.Tools {
			path, err := deps.Resolve(name)
			if err != nil {
				fmt.Fprintf(out, "✗ %s: NOT FOUND\n", name)
				fmt.Fprintf(out, "  Install from: %s\n", deps.FfmpegInstallURL)
				allGood = false
				continue
			}
			fmt.Fprintf(out, "✓ %s: OK (%s)\n", name, path)
		}

		fmt.Fprintln(out)
		if !allGood {
			return errors.New("some dependencies are missing, please install them before compiling")
		}
		fmt.Fprintln(out, "All dependencies are installed!")
		return nil
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&flags.inputDir, "input-dir", "", "directory of recordings to sample (prompted if omitted)")
	f.StringVar(&flags.duration, "duration", "", "target duration: seconds, MM:SS or HH:MM:SS (prompted if omitted)")
	f.StringVar(&flags.output, "output", "", "output filename, .mp4 appended if missing (prompted if omitted)")
	f.StringVar(&flags.outputDir, "output-dir", run.DefaultOutputDir, "directory the compilation is written to")
	f.StringVar(&flags.startDate, "start-date", "", "earliest recording date: YYYY-MM-DD, YYYY-MM, YYYYMMDD or YYYYMM")
	f.StringVar(&flags.endDate, "end-date", "", "latest recording date: YYYY-MM-DD, YYYY-MM, YYYYMMDD or YYYYMM")
	f.StringVar(&flags.month, "month", "", "only use recordings from this month (YYYY-MM or YYYYMM); overrides start/end dates")
	f.Uint64Var(&flags.seed, "seed", 0, "random seed for a reproducible selection (0 picks one)")
	f.DurationVar(&flags.toolTimeout, "tool-timeout", media.DefaultTimeout, "time limit for each ffmpeg/ffprobe call (0 disables)")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "log every ffmpeg invocation")
	f.BoolVar(&flags.noProgress, "no-progress", false, "print log lines instead of the progress display")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(doctorCmd)
}

// compile runs one compilation with the given flags and prints the summary.
func compile(ctx context.Context, out io.Writer, f compileFlags) error {
	logging.Init(f.verbose)
	stderrTTY := isatty.IsTerminal(os.Stderr.Fd())

	base := baseLogger(os.Stderr, stderrTTY)
	logger := base.With().Str("component", "dashreel").Logger()

	tool, err := media.New(base, f.toolTimeout)
	if err != nil {
		return err
	}

	if err := promptMissing(ctx, &f, isatty.IsTerminal(os.Stdin.Fd())); err != nil {
		return err
	}

	opts, err := resolveOptions(f, time.Now())
	if err != nil {
		return err
	}

	logger.Info().
		Str("input", opts.InputDir).
		Float64("target", opts.Target).
		Str("output", opts.OutputName).
		Uint64("seed", opts.Seed).
		Msg("using settings")

	runner := &run.Runner{
		Prober:    tool,
		Extractor: tool,
		Compiler:  tool,
		Logger:    logger,
	}

	var reporter *progress.Reporter
	if !f.noProgress && stderrTTY {
		reporter = progress.Start(os.Stderr)
		runner.Observer = reporter
		display := logging.NewConsoleLogger(reporter.Writer())
		runner.Logger = display.With().Str("component", "dashreel").Logger()
		tool.Logger = display.With().Str("component", "media").Logger()
	}

	res, err := runner.Run(ctx, opts)
	if reporter != nil {
		reporter.Stop()
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, progress.RenderSummary(res, 64))
	return nil
}

// baseLogger keeps the console format on a terminal and switches to JSON
// lines when stderr is piped.
func baseLogger(stderr io.Writer, tty bool) zerolog.Logger {
	if tty {
		return logging.NewLogger(nil)
	}
	return logging.NewLogger(stderr)
}

// Execute runs the root command. Ctrl-C cancels the run in flight; temporary
// clips are removed before the process exits.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	stop()
	os.Exit(exitCode(err, os.Stderr))
}

// exitCode reports err to w and maps it to a process exit status.
// Cancellation is a clean exit.
func exitCode(err error, w io.Writer) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errCancelled) || run.IsCancelled(err):
		fmt.Fprintln(w, "\nOperation cancelled by user.")
		return 0
	default:
		fmt.Fprintf(w, "An error occurred: %v\n", err)
		return 1
	}
}
