package physics

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/artillery/vmath"
)

// Projectile is a fired body stepped by the same model as Integrate
// Advancing it with the preview time step reproduces the preview samples exactly
type Projectile struct {
	ID      string
	State   State
	Params  Params
	Gravity vmath.Vec3F
	Age     float64 // seconds since launch
}

// NewProjectile seeds a live body from a launch state and a params snapshot
func NewProjectile(pos, vel vmath.Vec3F, p Params, gravity vmath.Vec3F) *Projectile {
	return &Projectile{
		ID:      uuid.NewString(),
		State:   State{Pos: pos, Vel: vel},
		Params:  p,
		Gravity: gravity,
	}
}

// Advance steps the body by dt
func (pr *Projectile) Advance(dt float64) {
	dt = clampTimeStep(dt)
	Step(&pr.State, pr.Params, pr.Gravity, dt)
	pr.Age += dt
}

// Pos returns the current position
func (pr *Projectile) Pos() vmath.Vec3F {
	return pr.State.Pos
}

// Radius returns the collision radius
func (pr *Projectile) Radius() float64 {
	return pr.Params.Radius()
}
