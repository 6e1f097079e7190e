package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/artillery/parameter"
	"github.com/lixenwraith/artillery/physics"
	"github.com/lixenwraith/artillery/vmath"
)

// Vec is a TOML-friendly [x, y, z] triple
type Vec [3]float64

func (v Vec) Vec3F() vmath.Vec3F { return vmath.Vec3F{X: v[0], Y: v[1], Z: v[2]} }

// Projectile holds drag-model inputs
type Projectile struct {
	Mass            float64 `toml:"mass"`
	Radius          float64 `toml:"radius"`
	DragCoefficient float64 `toml:"drag_coefficient"`
	AirDensity      float64 `toml:"air_density"`
	Wind            Vec     `toml:"wind"`
}

// Params converts to a clamped physics value object
func (p Projectile) Params() physics.Params {
	return physics.NewParamsFrom(p.Mass, p.Radius, p.DragCoefficient, p.AirDensity, p.Wind.Vec3F())
}

// Preview holds trajectory sampling settings
type Preview struct {
	Points   int     `toml:"points"`
	TimeStep float64 `toml:"time_step"`
	Gravity  Vec     `toml:"gravity"`
	Mode     string  `toml:"mode"`
}

// Predictor converts to a physics predictor, unknown modes fall back to drag
func (p Preview) Predictor() physics.Predictor {
	mode, _ := physics.ParseMode(p.Mode)
	return physics.Predictor{
		Steps:    p.Points,
		TimeStep: p.TimeStep,
		Gravity:  p.Gravity.Vec3F(),
		Mode:     mode,
	}
}

// Cannon holds player cannon tuning
type Cannon struct {
	Position   Vec     `toml:"position"`
	Yaw        float64 `toml:"yaw"`
	Pitch      float64 `toml:"pitch"`
	MoveSpeed  float64 `toml:"move_speed"`
	YawSpeed   float64 `toml:"yaw_speed"`
	PitchSpeed float64 `toml:"pitch_speed"`
	MinPitch   float64 `toml:"min_pitch"`
	MaxPitch   float64 `toml:"max_pitch"`
	ShotSpeed  float64 `toml:"shot_speed"`
	MassMin    float64 `toml:"mass_min"`
	MassMax    float64 `toml:"mass_max"`
	RadiusMin  float64 `toml:"radius_min"`
	RadiusMax  float64 `toml:"radius_max"`
}

// Targets holds roaming target tuning
type Targets struct {
	Count      int     `toml:"count"`
	AreaCenter Vec     `toml:"area_center"`
	AreaSize   Vec     `toml:"area_size"`
	MassMin    float64 `toml:"mass_min"`
	MassMax    float64 `toml:"mass_max"`
	RadiusMin  float64 `toml:"radius_min"`
	RadiusMax  float64 `toml:"radius_max"`
	SpeedMin   float64 `toml:"speed_min"`
	SpeedMax   float64 `toml:"speed_max"`
	ZoneRadius float64 `toml:"zone_radius"`
	MaxSpeed   float64 `toml:"max_speed"`
}

// Audio toggles the fire sound
type Audio struct {
	Enabled bool `toml:"enabled"`
}

// Feed holds websocket trajectory service settings
type Feed struct {
	Address      string        `toml:"address"`
	ReadTimeout  time.Duration `toml:"read_timeout"`
	WriteTimeout time.Duration `toml:"write_timeout"`
	MaxSteps     int           `toml:"max_steps"`
}

// Config is the full sandbox configuration
type Config struct {
	Projectile Projectile `toml:"projectile"`
	Preview    Preview    `toml:"preview"`
	Cannon     Cannon     `toml:"cannon"`
	Targets    Targets    `toml:"targets"`
	Audio      Audio      `toml:"audio"`
	Feed       Feed       `toml:"feed"`
}

// Default returns the stock configuration
func Default() *Config {
	return &Config{
		Projectile: Projectile{
			Mass:            parameter.ProjectileMass,
			Radius:          parameter.ProjectileRadius,
			DragCoefficient: parameter.ProjectileDragCoefficient,
			AirDensity:      parameter.AirDensity,
		},
		Preview: Preview{
			Points:   parameter.PreviewPointsCount,
			TimeStep: parameter.PreviewTimeStep,
			Gravity:  Vec{0, parameter.GravityY, 0},
			Mode:     physics.ModeDrag.String(),
		},
		Cannon: Cannon{
			Position:   Vec{0, parameter.CannonLiftHeight, 0},
			Yaw:        45,
			Pitch:      20,
			MoveSpeed:  parameter.CannonMoveSpeed,
			YawSpeed:   parameter.CannonYawSpeed,
			PitchSpeed: parameter.CannonPitchSpeed,
			MinPitch:   parameter.CannonMinPitch,
			MaxPitch:   parameter.CannonMaxPitch,
			ShotSpeed:  parameter.CannonShotSpeed,
			MassMin:    parameter.CannonMassMin,
			MassMax:    parameter.CannonMassMax,
			RadiusMin:  parameter.CannonRadiusMin,
			RadiusMax:  parameter.CannonRadiusMax,
		},
		Targets: Targets{
			Count:      parameter.TargetDefaultCount,
			AreaCenter: Vec{parameter.TargetAreaCenterX, parameter.TargetAreaCenterY, parameter.TargetAreaCenterZ},
			AreaSize:   Vec{parameter.TargetAreaSizeX, parameter.TargetAreaSizeY, parameter.TargetAreaSizeZ},
			MassMin:    parameter.TargetMassMin,
			MassMax:    parameter.TargetMassMax,
			RadiusMin:  parameter.TargetRadiusMin,
			RadiusMax:  parameter.TargetRadiusMax,
			SpeedMin:   parameter.TargetHorizSpeedMin,
			SpeedMax:   parameter.TargetHorizSpeedMax,
			ZoneRadius: parameter.TargetZoneRadius,
			MaxSpeed:   parameter.TargetMaxSpeed,
		},
		Audio: Audio{Enabled: true},
		Feed: Feed{
			Address:      ":7777",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 5 * time.Second,
			MaxSteps:     4096,
		},
	}
}

// Load reads a TOML file over the defaults
// A missing file yields defaults, a malformed one is an error
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unknown keys %v", path, undecoded)
	}

	cfg.Sanitize()
	return cfg, nil
}

// Decode parses TOML text over the defaults
func Decode(data string) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config: unknown keys %v", undecoded)
	}
	cfg.Sanitize()
	return cfg, nil
}

// Sanitize clamps out-of-range values the same way the runtime setters do
func (c *Config) Sanitize() {
	p := c.Projectile.Params()
	c.Projectile.Mass = p.Mass()
	c.Projectile.Radius = p.Radius()
	c.Projectile.DragCoefficient = p.DragCoefficient()
	c.Projectile.AirDensity = p.AirDensity()
	w := p.Wind()
	c.Projectile.Wind = Vec{w.X, w.Y, w.Z}

	if c.Preview.Points < parameter.MinStepCount {
		c.Preview.Points = parameter.MinStepCount
	}
	if !(c.Preview.TimeStep >= parameter.MinTimeStep) {
		c.Preview.TimeStep = parameter.MinTimeStep
	}
	mode, _ := physics.ParseMode(c.Preview.Mode)
	c.Preview.Mode = mode.String()

	if c.Cannon.MinPitch > c.Cannon.MaxPitch {
		c.Cannon.MinPitch, c.Cannon.MaxPitch = c.Cannon.MaxPitch, c.Cannon.MinPitch
	}
	c.Cannon.ShotSpeed = math.Max(c.Cannon.ShotSpeed, 0)
	c.Cannon.MassMin, c.Cannon.MassMax = orderedRange(c.Cannon.MassMin, c.Cannon.MassMax, parameter.MinMass)
	c.Cannon.RadiusMin, c.Cannon.RadiusMax = orderedRange(c.Cannon.RadiusMin, c.Cannon.RadiusMax, parameter.MinRadius)

	if c.Targets.Count < 0 {
		c.Targets.Count = 0
	}
	c.Targets.MassMin, c.Targets.MassMax = orderedRange(c.Targets.MassMin, c.Targets.MassMax, parameter.TargetMinMass)
	c.Targets.RadiusMin, c.Targets.RadiusMax = orderedRange(c.Targets.RadiusMin, c.Targets.RadiusMax, parameter.TargetMinRadius)
	c.Targets.SpeedMin, c.Targets.SpeedMax = orderedRange(c.Targets.SpeedMin, c.Targets.SpeedMax, 0)
	c.Targets.ZoneRadius = math.Max(c.Targets.ZoneRadius, parameter.TargetMinZoneRadius)
	c.Targets.MaxSpeed = math.Max(c.Targets.MaxSpeed, parameter.TargetMinMaxSpeed)

	if c.Feed.MaxSteps < parameter.MinStepCount {
		c.Feed.MaxSteps = parameter.MinStepCount
	}
}

// orderedRange floors both ends at min and swaps inverted bounds
func orderedRange(lo, hi, min float64) (float64, float64) {
	lo = math.Max(lo, min)
	hi = math.Max(hi, min)
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}
