package forms

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/user/dashreel/tui/styles"
)

// Theme returns the huh theme for the setup prompts. The prompts are plain
// text inputs, so only titles, descriptions, input text and validation
// errors are restyled.
func Theme() *huh.Theme {
	t := huh.ThemeBase()

	fg := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}

	t.Focused.Base = t.Focused.Base.
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(styles.BrightPurple).
		PaddingLeft(1)
	t.Focused.Title = fg(styles.Pink).Bold(true)
	t.Focused.Description = styles.SecondaryText
	t.Focused.ErrorIndicator = styles.Warning
	t.Focused.ErrorMessage = fg(styles.Red)
	t.Focused.TextInput.Cursor = styles.Value
	t.Focused.TextInput.Prompt = styles.Value
	t.Focused.TextInput.Text = styles.PrimaryText
	t.Focused.TextInput.Placeholder = fg(styles.Purple)

	// Answered prompts stay visible but recede.
	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Title = styles.SecondaryText
	t.Blurred.Description = fg(styles.Purple)
	t.Blurred.TextInput.Prompt = fg(styles.Purple)
	t.Blurred.TextInput.Text = styles.SecondaryText

	t.Help.ShortKey = fg(styles.Lavender)
	t.Help.ShortDesc = fg(styles.Purple)

	return t
}
