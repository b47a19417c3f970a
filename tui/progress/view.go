package progress

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/user/dashreel/tui/styles"
)

// State holds what the progress display shows while clips are being cut.
type State struct {
	Active      bool
	Target      float64
	Total       float64
	Files       int
	Visited     int
	Clips       int
	Skipped     int
	CurrentFile string
	Done        bool
}

// Percent returns progress towards the target duration, capped at 100.
func (s State) Percent() int {
	if s.Target <= 0 {
		return 0
	}
	pct := int(s.Total * 100 / s.Target)
	if pct > 100 {
		pct = 100
	}
	return pct
}

// Render draws a bordered box with a bar filled by accumulated footage, the
// clip and skip counters, and the file currently being cut.
func Render(state State, width int) string {
	if !state.Active || width < 10 {
		return ""
	}

	greenStyle := lipgloss.NewStyle().Foreground(styles.Green)
	amberStyle := lipgloss.NewStyle().Foreground(styles.Amber)
	redStyle := lipgloss.NewStyle().Foreground(styles.Red)
	textStyle := lipgloss.NewStyle().Foreground(styles.LightLavender)

	// Inner width for content (box border = 2, plus 1 space padding each side)
	innerW := width - 4
	if innerW < 6 {
		innerW = 6
	}

	var contentLines []string

	pct := state.Percent()

	// Bar width: innerW minus " XXX%" label (5 chars) minus 1 space padding
	barWidth := innerW - 6
	if barWidth < 4 {
		barWidth = 4
	}
	filled := barWidth * pct / 100
	empty := barWidth - filled

	bar := greenStyle.Render(strings.Repeat("█", filled)) + amberStyle.Render(strings.Repeat("░", empty))
	contentLines = append(contentLines, " "+bar+textStyle.Render(fmt.Sprintf(" %3d%%", pct)))

	counterLine := fmt.Sprintf(" %.1fs / %.1fs  %d clips  %d/%d files", state.Total, state.Target, state.Clips, state.Visited, state.Files)
	if state.Skipped > 0 {
		counterLine = textStyle.Render(counterLine) + "  " + redStyle.Render(fmt.Sprintf("%d skipped", state.Skipped))
	} else {
		counterLine = textStyle.Render(counterLine)
	}
	contentLines = append(contentLines, counterLine)

	if state.Done {
		contentLines = append(contentLines, " "+greenStyle.Render("Sampling complete"))
	} else if state.CurrentFile != "" {
		maxFileW := innerW - 2
		fileDisplay := filepath.Base(state.CurrentFile)
		if lipgloss.Width(fileDisplay) > maxFileW {
			fileDisplay = ansi.Truncate(fileDisplay, maxFileW-3, "...")
		}
		contentLines = append(contentLines, " "+textStyle.Render(fileDisplay))
	}

	return RenderInfoBox("Sampling", contentLines, width)
}
