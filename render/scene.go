package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/artillery/arena"
	"github.com/lixenwraith/artillery/physics"
	"github.com/lixenwraith/artillery/vmath"
)

var (
	StyleGround     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	StylePreview    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	StyleProjectile = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	StyleTarget     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	StyleCannon     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	StyleStatus     = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// Frame is everything needed to draw one tick
type Frame struct {
	GroundY     float64
	Preview     physics.Trajectory
	Projectiles []*physics.Projectile
	Targets     []*arena.Target
	Root        vmath.Vec3F
	Muzzle      vmath.Vec3F
	Status      string
}

// Scene clears the screen, draws f back to front and shows it
func Scene(s tcell.Screen, vp Viewport, f Frame) {
	s.Clear()

	DrawGround(s, vp, f.GroundY, StyleGround)
	DrawPolyline(s, vp, f.Preview, StylePreview, '·')

	for _, t := range f.Targets {
		DrawBody(s, vp, t.Pos, t.Radius, StyleTarget, 'O')
	}
	for _, pr := range f.Projectiles {
		DrawBody(s, vp, pr.Pos(), pr.Radius(), StyleProjectile, '●')
	}

	rc, rr := vp.Project(f.Root)
	mc, mr := vp.Project(f.Muzzle)
	drawLine(s, rc, rr, mc, mr, '#', StyleCannon)
	setCell(s, rc, rr, '▲', StyleCannon)

	_, h := s.Size()
	DrawText(s, 0, h-1, f.Status, StyleStatus)

	s.Show()
}
