package core

import (
	"time"

	"github.com/spaghettifunk/anima-editor/engine/containers"
)

// DebugRegion names a timed section of the frame.
type DebugRegion int

const (
	DebugRegionFrame DebugRegion = iota
	DebugRegionGameUpdate
	DebugRegionRenderScene
	DebugRegionEditorUpdate
	DebugRegionEditorRender
	DebugRegionSwapBuffers
	NumDebugRegions
)

var debugRegionNames = [NumDebugRegions]string{
	"Frame",
	"Game update",
	"Render scene",
	"Editor update",
	"Editor render",
	"Swap buffers",
}

func (r DebugRegion) String() string {
	if r < 0 || r >= NumDebugRegions {
		return "Unknown"
	}
	return debugRegionNames[r]
}

type regionSamples struct {
	started time.Time
	open    bool
	samples *containers.RingQueue[time.Duration]
}

// Profiler collects a rolling average of each debug region's duration.
type Profiler struct {
	regions [NumDebugRegions]regionSamples
	now     func() time.Time
}

func NewProfiler() *Profiler {
	p := &Profiler{now: time.Now}
	for i := range p.regions {
		p.regions[i].samples = containers.NewRingQueue[time.Duration](int(AVG_COUNT))
	}
	return p
}

func (p *Profiler) Begin(r DebugRegion) {
	if r < 0 || r >= NumDebugRegions {
		return
	}
	p.regions[r].started = p.now()
	p.regions[r].open = true
}

// End closes a region opened with Begin. Unmatched calls are ignored.
func (p *Profiler) End(r DebugRegion) {
	if r < 0 || r >= NumDebugRegions || !p.regions[r].open {
		return
	}
	p.Record(r, p.now().Sub(p.regions[r].started))
	p.regions[r].open = false
}

func (p *Profiler) Record(r DebugRegion, d time.Duration) {
	if r < 0 || r >= NumDebugRegions {
		return
	}
	p.regions[r].samples.Push(d)
}

// AverageMS returns the average duration of r in milliseconds.
func (p *Profiler) AverageMS(r DebugRegion) float64 {
	if r < 0 || r >= NumDebugRegions {
		return 0
	}
	samples := p.regions[r].samples
	if samples.IsEmpty() {
		return 0
	}
	var sum time.Duration
	samples.Each(func(d time.Duration) { sum += d })
	return float64(sum) / float64(samples.Len()) / float64(time.Millisecond)
}
