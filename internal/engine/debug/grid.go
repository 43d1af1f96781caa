package debug

import (
	"github.com/Faultbox/shapeview/internal/engine/gfx"
	"github.com/Faultbox/shapeview/pkg/math"
)

// GridRenderer draws a reference grid on a horizontal plane.
type GridRenderer struct {
	HalfExtent int     // lines run from -HalfExtent to +HalfExtent cells
	CellSize   float64 // world units per cell
	Height     float64 // Y of the plane
}

// NewGridRenderer creates a grid with the given half extent and cell size.
func NewGridRenderer(halfExtent int, cellSize, height float64) *GridRenderer {
	return &GridRenderer{
		HalfExtent: max(halfExtent, 1),
		CellSize:   cellSize,
		Height:     height,
	}
}

// GenerateGridLines returns line endpoints for every grid line, X lines
// first. The center lines come last so they draw over the others.
func (g *GridRenderer) GenerateGridLines() (lines, axes []math.Vec3) {
	n := g.HalfExtent
	ext := float64(n) * g.CellSize
	for i := -n; i <= n; i++ {
		if i == 0 {
			continue
		}
		o := float64(i) * g.CellSize
		lines = append(lines,
			math.V3(-ext, g.Height, o), math.V3(ext, g.Height, o),
			math.V3(o, g.Height, -ext), math.V3(o, g.Height, ext),
		)
	}
	axes = []math.Vec3{
		math.V3(-ext, g.Height, 0), math.V3(ext, g.Height, 0),
		math.V3(0, g.Height, -ext), math.V3(0, g.Height, ext),
	}
	return lines, axes
}

// Draw renders the grid as unlit lines.
func (g *GridRenderer) Draw(surf gfx.Surface) {
	lines, axes := g.GenerateGridLines()

	surf.Disable(gfx.Lighting)
	surf.Color(0.3, 0.3, 0.35)
	surf.Begin(gfx.PrimLines)
	for _, p := range lines {
		surf.Vertex(p)
	}
	surf.End()

	surf.Color(0.55, 0.55, 0.6)
	surf.Begin(gfx.PrimLines)
	for _, p := range axes {
		surf.Vertex(p)
	}
	surf.End()
}
