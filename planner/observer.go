package planner

// Observer receives planning progress. Calls arrive on the planning
// goroutine, in order.
type Observer interface {
	// OnSample is called once, after the files to visit have been drawn.
	OnSample(files int, target float64)
	// OnFile is called before the index-th sampled file is probed.
	OnFile(index int, path string)
	// OnClip is called when a clip is accepted, with the new running total.
	OnClip(clip Clip, total float64)
	// OnSkip is called when a file is skipped.
	OnSkip(path string, err error)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) OnSample(int, float64) {}
func (NopObserver) OnFile(int, string)    {}
func (NopObserver) OnClip(Clip, float64)  {}
func (NopObserver) OnSkip(string, error)  {}
