package core

import (
	"testing"
	"time"
)

func TestProfilerAverage(t *testing.T) {
	p := NewProfiler()
	p.Record(DebugRegionRenderScene, 2*time.Millisecond)
	p.Record(DebugRegionRenderScene, 4*time.Millisecond)

	if got := p.AverageMS(DebugRegionRenderScene); got != 3 {
		t.Errorf("AverageMS = %v, want 3", got)
	}
	if got := p.AverageMS(DebugRegionEditorRender); got != 0 {
		t.Errorf("untouched region AverageMS = %v, want 0", got)
	}
}

func TestProfilerBeginEnd(t *testing.T) {
	p := NewProfiler()
	base := time.Unix(0, 0)
	ticks := []time.Time{base, base.Add(5 * time.Millisecond)}
	p.now = func() time.Time {
		next := ticks[0]
		ticks = ticks[1:]
		return next
	}

	p.Begin(DebugRegionGameUpdate)
	p.End(DebugRegionGameUpdate)
	// unmatched End is ignored
	p.End(DebugRegionGameUpdate)

	if got := p.AverageMS(DebugRegionGameUpdate); got != 5 {
		t.Errorf("AverageMS = %v, want 5", got)
	}
}

func TestProfilerRollsOver(t *testing.T) {
	p := NewProfiler()
	for i := 0; i < int(AVG_COUNT); i++ {
		p.Record(DebugRegionFrame, time.Millisecond)
	}
	for i := 0; i < int(AVG_COUNT); i++ {
		p.Record(DebugRegionFrame, 3*time.Millisecond)
	}
	if got := p.AverageMS(DebugRegionFrame); got != 3 {
		t.Errorf("AverageMS = %v, want 3", got)
	}
}

func TestDebugRegionString(t *testing.T) {
	if DebugRegionSwapBuffers.String() != "Swap buffers" {
		t.Errorf("unexpected name %q", DebugRegionSwapBuffers.String())
	}
	if NumDebugRegions.String() != "Unknown" {
		t.Errorf("out of range region should be Unknown")
	}
}
