package arena

import (
	"math"
	"math/rand"

	"github.com/google/uuid"

	"github.com/lixenwraith/artillery/parameter"
	"github.com/lixenwraith/artillery/vmath"
)

// Target is a gravity-free sphere wandering horizontally inside a circular zone
type Target struct {
	ID     string
	Pos    vmath.Vec3F
	Vel    vmath.Vec3F
	Mass   float64
	Radius float64

	center   vmath.Vec3F
	zone     float64
	maxSpeed float64
	dead     bool
}

// TargetSpec carries the construction inputs for a target
type TargetSpec struct {
	Pos        vmath.Vec3F
	Mass       float64
	Radius     float64
	Velocity   vmath.Vec3F // vertical component is discarded
	Center     vmath.Vec3F
	ZoneRadius float64
	MaxSpeed   float64
}

// NewTarget applies the body and behaviour floors and caps the initial horizontal speed
func NewTarget(spec TargetSpec) *Target {
	// Initial cap uses the raw limit, later updates the floored one
	vel := vmath.V3FClampMagnitude(vmath.V3FFlattenY(spec.Velocity), math.Max(spec.MaxSpeed, 0))

	return &Target{
		ID:       uuid.NewString(),
		Pos:      spec.Pos,
		Vel:      vel,
		Mass:     math.Max(spec.Mass, parameter.TargetMinMass),
		Radius:   math.Max(spec.Radius, parameter.TargetMinRadius),
		center:   spec.Center,
		zone:     math.Max(spec.ZoneRadius, parameter.TargetMinZoneRadius),
		maxSpeed: math.Max(spec.MaxSpeed, parameter.TargetMinMaxSpeed),
	}
}

// Dead reports whether the target has been hit
func (t *Target) Dead() bool { return t.dead }

// Update caps speed, moves, and steers back toward the zone center once outside it
func (t *Target) Update(dt float64, rng *rand.Rand) {
	if t.dead {
		return
	}

	horiz := vmath.V3FClampMagnitude(vmath.V3FFlattenY(t.Vel), t.maxSpeed)
	t.Vel = vmath.Vec3F{X: horiz.X, Y: t.Vel.Y, Z: horiz.Z}

	t.Pos = vmath.V3FAdd(t.Pos, vmath.V3FScale(t.Vel, dt))

	offset := vmath.V3FFlattenY(vmath.V3FSub(t.Pos, t.center))
	if vmath.V3FMag(offset) > t.zone {
		home := vmath.V3FNormalize(vmath.V3FScale(offset, -1))
		j := parameter.TargetReturnJitter
		jitter := vmath.Vec3F{X: (rng.Float64()*2 - 1) * j, Z: (rng.Float64()*2 - 1) * j}
		dir := vmath.V3FNormalize(vmath.V3FAdd(home, jitter))
		t.Vel = vmath.V3FScale(dir, t.maxSpeed*parameter.TargetReturnSpeedFactor)
	}
}

// Hit marks the target dead and reports exactly once
func (t *Target) Hit(reporter HitReporter) bool {
	if t.dead {
		return false
	}
	t.dead = true
	if reporter != nil {
		reporter.RegisterHit()
	}
	return true
}
