package physics

import (
	"math"

	"github.com/lixenwraith/artillery/parameter"
	"github.com/lixenwraith/artillery/vmath"
)

// State is the kinematic state advanced by Step
type State struct {
	Pos vmath.Vec3F
	Vel vmath.Vec3F
}

// Step performs semi-implicit Euler integration: v = v + a*dt; p = p + v*dt
// Velocity is updated first; swapping the order changes every sample
// Drag stiff enough to overshoot within dt is limited to stopping the relative motion
func Step(s *State, p Params, gravity vmath.Vec3F, dt float64) {
	a := stepAcceleration(s.Vel, p, gravity, dt)
	s.Vel = vmath.V3FAdd(s.Vel, vmath.V3FScale(a, dt))
	s.Pos = vmath.V3FAdd(s.Pos, vmath.V3FScale(s.Vel, dt))
}

// Trajectory is an ordered sequence of predicted positions, sample 0 is the launch point
type Trajectory []vmath.Vec3F

// Integrate predicts max(steps, 2) positions under gravity and quadratic drag
// Out-of-range steps and dt are clamped, never rejected
func Integrate(start, vel vmath.Vec3F, p Params, gravity vmath.Vec3F, steps int, dt float64) Trajectory {
	steps = clampSteps(steps)
	dt = clampTimeStep(dt)

	out := make(Trajectory, steps)
	out[0] = start

	s := State{Pos: start, Vel: vel}
	for i := 1; i < steps; i++ {
		Step(&s, p, gravity, dt)
		out[i] = s.Pos
	}
	return out
}

// IntegrateVacuum samples the closed-form drag-free path p0 + v0*t + 0.5*g*t^2 at t = i*dt
func IntegrateVacuum(start, vel, gravity vmath.Vec3F, steps int, dt float64) Trajectory {
	steps = clampSteps(steps)
	dt = clampTimeStep(dt)

	out := make(Trajectory, steps)
	out[0] = start
	for i := 1; i < steps; i++ {
		t := float64(i) * dt
		p := vmath.V3FAdd(start, vmath.V3FScale(vel, t))
		out[i] = vmath.V3FAdd(p, vmath.V3FScale(gravity, 0.5*t*t))
	}
	return out
}

func clampSteps(steps int) int {
	if steps < parameter.MinStepCount {
		return parameter.MinStepCount
	}
	return steps
}

func clampTimeStep(dt float64) float64 {
	if math.IsNaN(dt) || dt < parameter.MinTimeStep {
		return parameter.MinTimeStep
	}
	return dt
}

// Apex returns the highest sample and its index
func (t Trajectory) Apex() (vmath.Vec3F, int) {
	if len(t) == 0 {
		return vmath.Vec3F{}, -1
	}
	best := 0
	for i := 1; i < len(t); i++ {
		if t[i].Y > t[best].Y {
			best = i
		}
	}
	return t[best], best
}

// CrossingY finds the first descending segment that crosses the horizontal plane y
// Returns the interpolated crossing point and the index of the segment end sample
func (t Trajectory) CrossingY(y float64) (vmath.Vec3F, int, bool) {
	for i := 1; i < len(t); i++ {
		a, b := t[i-1], t[i]
		if a.Y >= y && b.Y < y {
			f := (a.Y - y) / (a.Y - b.Y)
			return vmath.V3FLerp(a, b, f), i, true
		}
	}
	return vmath.Vec3F{}, -1, false
}

// Length returns polyline arc length
func (t Trajectory) Length() float64 {
	var total float64
	for i := 1; i < len(t); i++ {
		total += vmath.V3FDist(t[i-1], t[i])
	}
	return total
}

// Mode selects the prediction model
type Mode uint8

const (
	ModeDrag Mode = iota
	ModeVacuum
)

func (m Mode) String() string {
	switch m {
	case ModeDrag:
		return "drag"
	case ModeVacuum:
		return "vacuum"
	}
	return "unknown"
}

// ParseMode maps "drag"/"vacuum" to a Mode, unknown names fall back to drag
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "drag", "air", "":
		return ModeDrag, true
	case "vacuum":
		return ModeVacuum, true
	}
	return ModeDrag, false
}

// Predictor holds sampling settings for preview lines
type Predictor struct {
	Steps    int
	TimeStep float64
	Gravity  vmath.Vec3F
	Mode     Mode
}

// DefaultPredictor returns the 60-point, 20ms drag preview
func DefaultPredictor() Predictor {
	return Predictor{
		Steps:    parameter.PreviewPointsCount,
		TimeStep: parameter.PreviewTimeStep,
		Gravity:  vmath.Vec3F{Y: parameter.GravityY},
		Mode:     ModeDrag,
	}
}

// Predict samples a trajectory from the launch state using the configured mode
// p is copied per call
func (pr Predictor) Predict(start, vel vmath.Vec3F, p Params) Trajectory {
	if pr.Mode == ModeVacuum {
		return IntegrateVacuum(start, vel, pr.Gravity, pr.Steps, pr.TimeStep)
	}
	return Integrate(start, vel, p, pr.Gravity, pr.Steps, pr.TimeStep)
}
