package physics

import (
	"math"

	"github.com/lixenwraith/artillery/parameter"
	"github.com/lixenwraith/artillery/vmath"
)

// Params is the projectile/environment value object read by the drag model
// Fields are only reachable through the setters so the clamps and derived area always hold
type Params struct {
	mass            float64
	radius          float64
	dragCoefficient float64
	airDensity      float64
	wind            vmath.Vec3F
	area            float64
}

// NewParams returns the default sphere in still sea-level air
func NewParams() Params {
	return NewParamsFrom(
		parameter.ProjectileMass,
		parameter.ProjectileRadius,
		parameter.ProjectileDragCoefficient,
		parameter.AirDensity,
		vmath.Vec3F{},
	)
}

// NewParamsFrom builds clamped params from raw values
func NewParamsFrom(mass, radius, cd, rho float64, wind vmath.Vec3F) Params {
	var p Params
	p.Set(mass, radius, cd, rho, wind)
	return p
}

// Set applies all clamps and re-derives the cross-sectional area
func (p *Params) Set(mass, radius, cd, rho float64, wind vmath.Vec3F) {
	p.mass = floor(mass, parameter.MinMass)
	p.radius = capRadius(radius)
	p.dragCoefficient = floor(cd, parameter.MinDragCoefficient)
	p.airDensity = floor(rho, parameter.MinAirDensity)
	p.wind = finite(wind)
	p.updateArea()
}

// SetMassRadius changes only the body, keeping air and wind
func (p *Params) SetMassRadius(mass, radius float64) {
	p.mass = floor(mass, parameter.MinMass)
	p.radius = capRadius(radius)
	p.updateArea()
}

func (p *Params) updateArea() {
	p.area = math.Pi * p.radius * p.radius
}

func (p Params) Mass() float64            { return p.mass }
func (p Params) Radius() float64          { return p.radius }
func (p Params) DragCoefficient() float64 { return p.dragCoefficient }
func (p Params) AirDensity() float64      { return p.airDensity }
func (p Params) Wind() vmath.Vec3F        { return p.wind }
func (p Params) Area() float64            { return p.area }

// floor clamps v to at least min, NaN collapses to min
func floor(v, min float64) float64 {
	if math.IsNaN(v) || v < min {
		return min
	}
	if math.IsInf(v, 1) {
		return math.MaxFloat64
	}
	return v
}

// capRadius floors the radius and bounds it so pi*r^2 stays finite
func capRadius(r float64) float64 {
	return math.Min(floor(r, parameter.MinRadius), parameter.MaxRadius)
}

// finite zeroes any NaN or infinite component
func finite(v vmath.Vec3F) vmath.Vec3F {
	fix := func(f float64) float64 {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	}
	return vmath.Vec3F{X: fix(v.X), Y: fix(v.Y), Z: fix(v.Z)}
}

// DragForce returns quadratic drag on a body moving at vel through the params' wind
// Fd = -0.5 * rho * Cd * A * |v_rel| * v_rel, zero when |v_rel| <= SpeedEpsilon or rho*Cd == 0
func DragForce(vel vmath.Vec3F, p Params) vmath.Vec3F {
	vRel, c := dragTerm(vel, p)
	if c == 0 {
		return vmath.Vec3F{}
	}
	return scaleNonZero(vRel, -c)
}

// dragTerm returns v_rel and c = 0.5*rho*Cd*A*|v_rel|, so Fd = -c*v_rel
// c is zero when drag vanishes and may be +Inf for extreme params, never NaN
func dragTerm(vel vmath.Vec3F, p Params) (vmath.Vec3F, float64) {
	vRel := vmath.V3FSub(vel, p.wind)
	if p.airDensity*p.dragCoefficient == 0 {
		return vRel, 0
	}
	speed := vmath.V3FMag(vRel)
	if !(speed > parameter.SpeedEpsilon) {
		return vRel, 0
	}
	return vRel, 0.5 * p.airDensity * p.dragCoefficient * p.area * speed
}

// scaleNonZero scales v by k leaving zero components zero, so an infinite k cannot produce NaN
func scaleNonZero(v vmath.Vec3F, k float64) vmath.Vec3F {
	mul := func(f float64) float64 {
		if f == 0 {
			return 0
		}
		return f * k
	}
	return vmath.Vec3F{X: mul(v.X), Y: mul(v.Y), Z: mul(v.Z)}
}

func massOf(p Params) float64 {
	if p.mass < parameter.MinMass {
		return parameter.MinMass
	}
	return p.mass
}

// Acceleration returns gravity plus drag force over mass
// Zero-value Params behave as massless-floor bodies in vacuum
func Acceleration(vel vmath.Vec3F, p Params, gravity vmath.Vec3F) vmath.Vec3F {
	f := DragForce(vel, p)
	m := massOf(p)
	return vmath.Vec3F{
		X: gravity.X + f.X/m,
		Y: gravity.Y + f.Y/m,
		Z: gravity.Z + f.Z/m,
	}
}

// stepAcceleration is Acceleration bounded for a step of dt: drag may at most
// cancel the relative velocity within one step, never reverse it
func stepAcceleration(vel vmath.Vec3F, p Params, gravity vmath.Vec3F, dt float64) vmath.Vec3F {
	vRel, c := dragTerm(vel, p)
	m := massOf(p)
	if c*dt <= m {
		return Acceleration(vel, p, gravity)
	}
	return vmath.V3FAdd(gravity, vmath.V3FScale(vRel, -1/dt))
}
