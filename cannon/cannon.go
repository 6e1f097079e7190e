// Package cannon holds the player cannon: aim state, preview sampling and firing
package cannon

import (
	"log"
	"math"
	"math/rand"

	"github.com/lixenwraith/artillery/config"
	"github.com/lixenwraith/artillery/parameter"
	"github.com/lixenwraith/artillery/physics"
	"github.com/lixenwraith/artillery/vmath"
)

//go:generate go tool mockgen -destination=./mocks/launcher_mock.go -package=mocks . Launcher

// Launcher instantiates a live projectile from a launch state
type Launcher interface {
	Launch(pos, vel vmath.Vec3F, p physics.Params) (*physics.Projectile, error)
}

// Cannon is a ground cannon with yaw on the root and pitch on the barrel
type Cannon struct {
	root  vmath.Vec3F
	yaw   float64 // degrees, 0 faces +Z
	pitch float64 // degrees, positive raises the barrel

	cfg      config.Cannon
	params   physics.Params
	launcher Launcher
	rng      *rand.Rand
}

// New creates a cannon; a root placed below ground is lifted to the default height
// launcher may be nil, in which case Fire is a logged no-op
func New(cfg config.Cannon, params physics.Params, launcher Launcher, rng *rand.Rand) *Cannon {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	root := cfg.Position.Vec3F()
	if root.Y < parameter.CannonMinRootHeight {
		root.Y = parameter.CannonLiftHeight
	}
	c := &Cannon{
		root:     root,
		yaw:      cfg.Yaw,
		cfg:      cfg,
		params:   params,
		launcher: launcher,
		rng:      rng,
	}
	c.pitch = vmath.Clamp(cfg.Pitch, cfg.MinPitch, cfg.MaxPitch)
	return c
}

// Move translates the root on the ground plane in the cannon's local frame
// right/forward are input axes in [-1, 1]
func (c *Cannon) Move(right, forward, dt float64) {
	local := vmath.Vec3F{X: right, Z: forward}
	if vmath.V3FMagSq(local) <= 0.001 {
		return
	}
	local = vmath.V3FScale(vmath.V3FNormalize(local), c.cfg.MoveSpeed*dt)

	yaw := vmath.DegToRad(c.yaw)
	sin, cos := math.Sincos(yaw)
	world := vmath.Vec3F{
		X: local.X*cos + local.Z*sin,
		Z: -local.X*sin + local.Z*cos,
	}
	c.root = vmath.V3FAdd(c.root, world)
}

// Rotate turns the root around world up; dir > 0 turns right
func (c *Cannon) Rotate(dir, dt float64) {
	if math.Abs(dir) <= 0.001 {
		return
	}
	c.yaw = math.Mod(c.yaw+dir*c.cfg.YawSpeed*dt, 360)
}

// Pitch raises (dir > 0) or lowers the barrel within the configured limits
func (c *Cannon) Pitch(dir, dt float64) {
	if math.Abs(dir) <= 0.001 {
		return
	}
	c.pitch = vmath.Clamp(c.pitch+dir*c.cfg.PitchSpeed*dt, c.cfg.MinPitch, c.cfg.MaxPitch)
}

func (c *Cannon) Root() vmath.Vec3F      { return c.root }
func (c *Cannon) Yaw() float64           { return c.yaw }
func (c *Cannon) Elevation() float64     { return c.pitch }
func (c *Cannon) ShotSpeed() float64     { return c.cfg.ShotSpeed }
func (c *Cannon) Params() physics.Params { return c.params }

// SetParams replaces the projectile params used for preview and fire
func (c *Cannon) SetParams(p physics.Params) {
	c.params = p
}

// PitchFraction maps the current pitch into [0, 1] across the limits
func (c *Cannon) PitchFraction() float64 {
	return vmath.InverseLerp(c.cfg.MinPitch, c.cfg.MaxPitch, c.pitch)
}

// Forward returns the unit barrel direction
func (c *Cannon) Forward() vmath.Vec3F {
	return vmath.V3FYawPitch(vmath.DegToRad(c.yaw), vmath.DegToRad(c.pitch))
}

// Muzzle returns the launch point at the barrel tip
func (c *Cannon) Muzzle() vmath.Vec3F {
	return vmath.V3FAdd(c.root, vmath.V3FScale(c.Forward(), parameter.CannonMuzzleLength))
}

// LaunchVelocity returns the initial projectile velocity
func (c *Cannon) LaunchVelocity() vmath.Vec3F {
	return vmath.V3FScale(c.Forward(), c.cfg.ShotSpeed)
}

// Preview samples the path a shot fired now would take with the current params
func (c *Cannon) Preview(pr physics.Predictor) physics.Trajectory {
	return pr.Predict(c.Muzzle(), c.LaunchVelocity(), c.params)
}

// Fire draws a random projectile mass and radius, keeps them for the preview, and launches
// The new params persist so the next preview matches the shot just fired
func (c *Cannon) Fire() (*physics.Projectile, error) {
	mass := c.randRange(c.cfg.MassMin, c.cfg.MassMax)
	radius := c.randRange(c.cfg.RadiusMin, c.cfg.RadiusMax)
	c.params.SetMassRadius(mass, radius)

	if c.launcher == nil {
		log.Printf("[WARN] cannon: fire ignored, no launcher configured")
		return nil, nil
	}

	pos, vel := c.Muzzle(), c.LaunchVelocity()
	log.Printf("[FIRE] mass=%.3f radius=%.3f cd=%.3f rho=%.3f wind=%v vel=%v",
		c.params.Mass(), c.params.Radius(), c.params.DragCoefficient(), c.params.AirDensity(), c.params.Wind(), vel)

	return c.launcher.Launch(pos, vel, c.params)
}

func (c *Cannon) randRange(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + c.rng.Float64()*(hi-lo)
}
