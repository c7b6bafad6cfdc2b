package renderer

import (
	"testing"

	"github.com/spaghettifunk/anima-editor/engine/math"
)

func TestGenerateCubeConfig(t *testing.T) {
	cfg := GenerateCubeConfig(2, 4, 6, 1, 1, "box")
	if len(cfg.Vertices) != 24 || len(cfg.Indices) != 36 {
		t.Fatalf("got %d vertices %d indices", len(cfg.Vertices), len(cfg.Indices))
	}
	if cfg.Extents != math.ComputeExtents(cfg.Vertices) {
		t.Fatalf("extents %v do not match vertices %v", cfg.Extents, math.ComputeExtents(cfg.Vertices))
	}
	if cfg.Extents.Max.Y() != 2 || cfg.Extents.Min.Z() != -3 {
		t.Fatalf("extents = %v", cfg.Extents)
	}
	for i, v := range cfg.Vertices {
		if !cfg.Extents.Contains(v.Position) {
			t.Fatalf("vertex %d outside extents", i)
		}
		if l := v.Tangent.Len(); l < 0.99 || l > 1.01 {
			t.Fatalf("vertex %d tangent length %f", i, l)
		}
	}
}

func TestGenerateCubeConfigZeroSize(t *testing.T) {
	cfg := GenerateCubeConfig(0, 0, 0, 0, 0, "unit")
	if cfg.Extents.Max.X() != 0.5 {
		t.Fatalf("zero size should default to one, extents = %v", cfg.Extents)
	}
}

func TestGeneratePlaneConfig(t *testing.T) {
	cfg := GeneratePlaneConfig(10, 10, 2, 3, 1, 1, "floor")
	if len(cfg.Vertices) != 3*4 || len(cfg.Indices) != 2*3*6 {
		t.Fatalf("got %d vertices %d indices", len(cfg.Vertices), len(cfg.Indices))
	}
	for _, idx := range cfg.Indices {
		if int(idx) >= len(cfg.Vertices) {
			t.Fatalf("index %d out of range", idx)
		}
	}
	if cfg.Extents.Min.X() != -5 || cfg.Extents.Max.Z() != 5 {
		t.Fatalf("extents = %v", cfg.Extents)
	}
}
