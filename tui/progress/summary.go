package progress

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/user/dashreel/pkg/timeutil"
	"github.com/user/dashreel/run"
	"github.com/user/dashreel/tui/styles"
)

// RenderSummary renders the end-of-run report box.
func RenderSummary(res *run.Result, width int) string {
	if res == nil || res.Plan == nil {
		return ""
	}
	p := res.Plan

	row := func(label, value string) string {
		return " " + styles.SecondaryText.Render(fmt.Sprintf("%-12s", label)) + styles.Value.Render(value)
	}

	lines := []string{
		row("Clips", fmt.Sprintf("%d", len(p.Clips))),
		row("Skipped", fmt.Sprintf("%d of %d sampled", p.Skipped, p.Sampled)),
		row("Duration", fmt.Sprintf("%.1fs (target %.1fs)", p.Total, p.Target)),
		row("Candidates", fmt.Sprintf("%d", res.Candidates)),
		row("Seed", fmt.Sprintf("%d", res.Seed)),
		row("Elapsed", timeutil.FormatTime(res.Elapsed.Seconds())),
		row("Output", res.Output),
	}
	if res.Size > 0 {
		lines = append(lines, row("Size", humanize.Bytes(uint64(res.Size))))
	}
	if p.Total < p.Target {
		lines = append(lines, " "+styles.Warning.Render("Sample exhausted before reaching the target duration"))
	} else {
		lines = append(lines, " "+styles.Success.Render("Compilation saved"))
	}

	return RenderInfoBox("Summary", lines, width)
}
