// Package styles provides the Lipgloss palette shared by prompts, the
// progress display and the run summary.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette. Warm, earthy tones that stay readable on dark and light terminals.
const (
	Purple        = lipgloss.Color("#5C4F4B") // borders, dim text
	BrightPurple  = lipgloss.Color("#724D7C") // focused prompt border
	Lavender      = lipgloss.Color("#AEA47A") // labels
	LightLavender = lipgloss.Color("#F3DBB2") // body text
	Pink          = lipgloss.Color("#D33061") // box and prompt titles
	Cyan          = lipgloss.Color("#3097C6") // values, paths, cursor
	Amber         = lipgloss.Color("#CC8B3F") // unfilled bar
	Red           = lipgloss.Color("#AC3835") // skips, errors
	Green         = lipgloss.Color("#A6A75D") // filled bar, success
)

var (
	PrimaryText   = lipgloss.NewStyle().Foreground(LightLavender)
	SecondaryText = lipgloss.NewStyle().Foreground(Lavender)
	Value         = lipgloss.NewStyle().Foreground(Cyan)
	Warning       = lipgloss.NewStyle().Foreground(Red).Bold(true)
	Success       = lipgloss.NewStyle().Foreground(Green).Bold(true)
)
