package planner

import "fmt"

// Clip is one temporary extract cut from a source recording.
type Clip struct {
	Source string
	Path   string
	// Start and Length are the requested window, in seconds.
	Start  float64
	Length float64
	// Duration is what the extracted file actually measures.
	Duration       float64
	SourceDuration float64
}

// Plan is the outcome of a planning pass: accepted clips in the order they
// will be joined, plus bookkeeping. Total only grows and Skipped only grows.
type Plan struct {
	Clips   []Clip
	Total   float64
	Target  float64
	Sampled int
	Skipped int
}

func (p *Plan) accept(c Clip) {
	p.Clips = append(p.Clips, c)
	if c.Duration > 0 {
		p.Total += c.Duration
	}
}

func (p *Plan) skip() {
	p.Skipped++
}

// Paths returns the clip file paths in join order.
func (p *Plan) Paths() []string {
	paths := make([]string, len(p.Clips))
	for i, c := range p.Clips {
		paths[i] = c.Path
	}
	return paths
}

// TooShortError marks a source shorter than the minimum clip length.
type TooShortError struct {
	Path     string
	Duration float64
	Min      float64
}

func (e *TooShortError) Error() string {
	return fmt.Sprintf("video duration (%.1fs) is shorter than the minimum clip length (%.1fs)", e.Duration, e.Min)
}
