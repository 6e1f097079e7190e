// Package render draws the sandbox as a side view (world x right, world y up) on a tcell screen
package render

import (
	"math"

	"github.com/lixenwraith/artillery/parameter"
	"github.com/lixenwraith/artillery/vmath"
)

// cellAspect compensates for terminal cells being roughly twice as tall as wide
const cellAspect = 0.5

// Viewport maps world metres to screen cells
type Viewport struct {
	OriginX int     // column of world x = 0
	OriginY int     // row of world y = 0
	Scale   float64 // columns per metre
}

// FitViewport frames span metres of ground across a width x height screen
func FitViewport(width, height int, span float64) Viewport {
	if span <= 0 {
		span = 1
	}
	return Viewport{
		OriginX: parameter.ViewMargin,
		OriginY: height - parameter.GroundRowsFromBottom,
		Scale:   math.Max(float64(width-2*parameter.ViewMargin)/span, 0.1),
	}
}

// Project returns the cell holding world point v; z is ignored
func (vp Viewport) Project(v vmath.Vec3F) (col, row int) {
	col = vp.OriginX + int(math.Round(v.X*vp.Scale))
	row = vp.OriginY - int(math.Round(v.Y*vp.Scale*cellAspect))
	return col, row
}
