package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/artillery/physics"
	"github.com/lixenwraith/artillery/vmath"
)

// setCell writes one cell, silently dropping anything off screen
func setCell(s tcell.Screen, col, row int, glyph rune, style tcell.Style) {
	w, h := s.Size()
	if col < 0 || row < 0 || col >= w || row >= h {
		return
	}
	s.SetContent(col, row, glyph, nil, style)
}

// drawLine clips a segment to the screen and rasterizes it with Bresenham's algorithm
func drawLine(s tcell.Screen, x0, y0, x1, y1 int, glyph rune, style tcell.Style) {
	w, h := s.Size()
	fx0, fy0, fx1, fy1, ok := clipSegment(float64(x0), float64(y0), float64(x1), float64(y1), float64(w-1), float64(h-1))
	if !ok {
		return
	}
	x0, y0 = int(math.Round(fx0)), int(math.Round(fy0))
	x1, y1 = int(math.Round(fx1)), int(math.Round(fy1))

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy
	for {
		setCell(s, x0, y0, glyph, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// clipSegment is Liang-Barsky against the box [0,xmax] x [0,ymax]
func clipSegment(x0, y0, x1, y1, xmax, ymax float64) (float64, float64, float64, float64, bool) {
	if xmax < 0 || ymax < 0 {
		return 0, 0, 0, 0, false
	}
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	for _, e := range [4][2]float64{{-dx, x0}, {dx, xmax - x0}, {-dy, y0}, {dy, ymax - y0}} {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, r)
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// DrawPolyline connects consecutive trajectory samples
func DrawPolyline(s tcell.Screen, vp Viewport, traj physics.Trajectory, style tcell.Style, glyph rune) {
	if len(traj) == 0 || !vmath.V3FIsFinite(traj[0]) {
		return
	}
	pc, pr := vp.Project(traj[0])
	if len(traj) == 1 {
		setCell(s, pc, pr, glyph, style)
		return
	}
	for _, p := range traj[1:] {
		if !vmath.V3FIsFinite(p) {
			return
		}
		c, r := vp.Project(p)
		drawLine(s, pc, pr, c, r, glyph, style)
		pc, pr = c, r
	}
}

// DrawBody fills the cells covered by a sphere, always at least one
func DrawBody(s tcell.Screen, vp Viewport, pos vmath.Vec3F, radius float64, style tcell.Style, glyph rune) {
	col, row := vp.Project(pos)
	rc := int(math.Floor(radius * vp.Scale))
	rr := int(math.Floor(radius * vp.Scale * cellAspect))
	if rc <= 0 && rr <= 0 {
		setCell(s, col, row, glyph, style)
		return
	}
	for dr := -rr; dr <= rr; dr++ {
		for dc := -rc; dc <= rc; dc++ {
			// Ellipse test in cell space
			fx := float64(dc) / float64(max(rc, 1))
			fy := float64(dr) / float64(max(rr, 1))
			if fx*fx+fy*fy <= 1 {
				setCell(s, col+dc, row+dr, glyph, style)
			}
		}
	}
}

// DrawGround fills the row of world height groundY across the screen
func DrawGround(s tcell.Screen, vp Viewport, groundY float64, style tcell.Style) {
	_, row := vp.Project(vmath.Vec3F{Y: groundY})
	w, _ := s.Size()
	for col := 0; col < w; col++ {
		setCell(s, col, row, '─', style)
	}
}

// DrawText writes a single line starting at col, truncated at the screen edge
func DrawText(s tcell.Screen, col, row int, text string, style tcell.Style) {
	for _, r := range text {
		setCell(s, col, row, r, style)
		col++
	}
}
