// Package progress shows clip sampling progress in the terminal while a run
// is in flight.
package progress

import (
	tea "github.com/charmbracelet/bubbletea"
)

const defaultWidth = 60

// sampleMsg is sent once the files to visit have been drawn.
type sampleMsg struct {
	files  int
	target float64
}

// fileMsg is sent before a sampled file is probed.
type fileMsg struct {
	index int
	path  string
}

// clipMsg is sent when a clip is accepted.
type clipMsg struct {
	total float64
}

// skipMsg is sent when a file is skipped.
type skipMsg struct{}

// doneMsg ends the program after the final frame is drawn.
type doneMsg struct{}

// Model is the bubbletea model behind the progress display.
type Model struct {
	state State
	width int
}

// NewModel returns a model sized for a terminal of unknown width.
func NewModel() Model {
	return Model{width: defaultWidth}
}

// State returns the current display state.
func (m Model) State() State {
	return m.state
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if m.width > 80 {
			m.width = 80
		}
	case sampleMsg:
		m.state.Active = true
		m.state.Files = msg.files
		m.state.Target = msg.target
	case fileMsg:
		m.state.Visited = msg.index + 1
		m.state.CurrentFile = msg.path
	case clipMsg:
		m.state.Clips++
		m.state.Total = msg.total
	case skipMsg:
		m.state.Skipped++
	case doneMsg:
		m.state.Done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	view := Render(m.state, m.width)
	if view == "" {
		return ""
	}
	return view + "\n"
}
