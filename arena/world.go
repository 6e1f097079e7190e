// Package arena runs the live scene: fired projectiles, roaming targets and hit detection
package arena

import (
	"errors"
	"log"
	"math"
	"math/rand"

	"github.com/lixenwraith/artillery/parameter"
	"github.com/lixenwraith/artillery/physics"
	"github.com/lixenwraith/artillery/vmath"
)

// MaxProjectiles bounds live projectiles in one world
const MaxProjectiles = 64

// ErrWorldFull is returned by Launch when MaxProjectiles are already in flight
var ErrWorldFull = errors.New("arena: projectile limit reached")

// World owns all live bodies; it is driven from a single goroutine
type World struct {
	Gravity          vmath.Vec3F
	GroundY          float64
	MaxProjectileAge float64

	projectiles []*physics.Projectile
	targets     []*Target
	reporter    HitReporter
	rng         *rand.Rand
}

// NewWorld creates an empty world reporting hits to reporter
func NewWorld(gravity vmath.Vec3F, reporter HitReporter, rng *rand.Rand) *World {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &World{
		Gravity:          gravity,
		MaxProjectileAge: parameter.ProjectileMaxAge,
		reporter:         reporter,
		rng:              rng,
	}
}

// Launch spawns a live projectile seeded with the same state and params as the preview
func (w *World) Launch(pos, vel vmath.Vec3F, p physics.Params) (*physics.Projectile, error) {
	if len(w.projectiles) >= MaxProjectiles {
		return nil, ErrWorldFull
	}
	pr := physics.NewProjectile(pos, vel, p, w.Gravity)
	w.projectiles = append(w.projectiles, pr)
	return pr, nil
}

// AddTarget places a target in the world
func (w *World) AddTarget(t *Target) {
	w.targets = append(w.targets, t)
}

// Step advances every body by dt and resolves hits
// A projectile is consumed by the first target its swept path touches
func (w *World) Step(dt float64) {
	for _, t := range w.targets {
		t.Update(dt, w.rng)
	}
	w.resolveContacts()

	live := w.projectiles[:0]
	for _, pr := range w.projectiles {
		prev := pr.Pos()
		pr.Advance(dt)

		if w.resolveHit(pr, prev) {
			continue
		}
		if physics.BelowGround(pr.Pos(), pr.Radius(), w.GroundY) || pr.Age > w.MaxProjectileAge {
			continue
		}
		live = append(live, pr)
	}
	clear(w.projectiles[len(live):])
	w.projectiles = live

	alive := w.targets[:0]
	for _, t := range w.targets {
		if !t.Dead() {
			alive = append(alive, t)
		}
	}
	clear(w.targets[len(alive):])
	w.targets = alive
}

// resolveContacts bounces touching targets off each other on the ground plane
// Only spheres that touch in 3D interact; altitude is never changed by a contact
func (w *World) resolveContacts() {
	for i := 0; i < len(w.targets); i++ {
		a := w.targets[i]
		for _, b := range w.targets[i+1:] {
			if a.Dead() || b.Dead() {
				continue
			}
			if !physics.SpheresOverlap(a.Pos, b.Pos, a.Radius, b.Radius) {
				continue
			}
			pa, pb := vmath.V3FFlattenY(a.Pos), vmath.V3FFlattenY(b.Pos)
			if physics.Collide(&pa, &pb, &a.Vel, &b.Vel, a.Radius, b.Radius, a.Mass, b.Mass, parameter.TargetRestitution) {
				a.Pos.X, a.Pos.Z = pa.X, pa.Z
				b.Pos.X, b.Pos.Z = pb.X, pb.Z
			}
		}
	}
}

// resolveHit kills the first target the projectile reached along its swept path this step
func (w *World) resolveHit(pr *physics.Projectile, prev vmath.Vec3F) bool {
	var first *Target
	firstT := math.Inf(1)
	for _, t := range w.targets {
		if t.Dead() {
			continue
		}
		if at, ok := physics.SegmentSphereEntry(prev, pr.Pos(), t.Pos, t.Radius+pr.Radius()); ok && at < firstT {
			first, firstT = t, at
		}
	}
	if first == nil {
		return false
	}
	if first.Hit(w.reporter) {
		log.Printf("[HIT] projectile=%s target=%s at %v", pr.ID, first.ID, first.Pos)
	}
	return true
}

// Projectiles returns a snapshot of live projectiles
func (w *World) Projectiles() []*physics.Projectile {
	out := make([]*physics.Projectile, len(w.projectiles))
	copy(out, w.projectiles)
	return out
}

// Targets returns a snapshot of live targets
func (w *World) Targets() []*Target {
	out := make([]*Target, len(w.targets))
	copy(out, w.targets)
	return out
}
