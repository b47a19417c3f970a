package progress

import (
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/user/dashreel/planner"
)

// Reporter runs the progress display and forwards planner events to it. It
// implements planner.Observer.
type Reporter struct {
	program *tea.Program
	done    chan struct{}
}

var _ planner.Observer = (*Reporter)(nil)

// Start launches the display on out. Keyboard input is not read and signals
// are left to the caller, so Ctrl-C cancels the run rather than the display.
func Start(out io.Writer) *Reporter {
	r := &Reporter{
		program: tea.NewProgram(NewModel(),
			tea.WithOutput(out),
			tea.WithInput(nil),
			tea.WithoutSignalHandler(),
		),
		done: make(chan struct{}),
	}
	go func() {
		defer close(r.done)
		_, _ = r.program.Run()
	}()
	return r
}

// Stop draws the final frame and waits for the display to exit.
func (r *Reporter) Stop() {
	r.program.Send(doneMsg{})
	<-r.done
}

// Writer returns an io.Writer that prints each line above the display, for
// routing log output while the display is running.
func (r *Reporter) Writer() io.Writer {
	return lineWriter{r.program}
}

func (r *Reporter) OnSample(files int, target float64) {
	r.program.Send(sampleMsg{files: files, target: target})
}

func (r *Reporter) OnFile(index int, path string) {
	r.program.Send(fileMsg{index: index, path: path})
}

func (r *Reporter) OnClip(_ planner.Clip, total float64) {
	r.program.Send(clipMsg{total: total})
}

func (r *Reporter) OnSkip(string, error) {
	r.program.Send(skipMsg{})
}

type lineWriter struct {
	program *tea.Program
}

func (w lineWriter) Write(p []byte) (int, error) {
	w.program.Println(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
