package arena

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/artillery/config"
	"github.com/lixenwraith/artillery/parameter"
	"github.com/lixenwraith/artillery/vmath"
)

// SpawnTargets scatters cfg.Count targets inside the spawn box and returns how many were placed
func SpawnTargets(w *World, cfg config.Targets, rng *rand.Rand) int {
	center := cfg.AreaCenter.Vec3F()
	size := cfg.AreaSize.Vec3F()

	for i := 0; i < cfg.Count; i++ {
		offset := vmath.Vec3F{
			X: uniform(rng, -size.X/2, size.X/2),
			Y: uniform(rng, parameter.TargetMinSpawnHeight, math.Max(size.Y, parameter.TargetMinSpawnHeight)),
			Z: uniform(rng, -size.Z/2, size.Z/2),
		}

		angle := rng.Float64() * 2 * math.Pi
		speed := uniform(rng, cfg.SpeedMin, cfg.SpeedMax)

		w.AddTarget(NewTarget(TargetSpec{
			Pos:        vmath.V3FAdd(center, offset),
			Mass:       uniform(rng, cfg.MassMin, cfg.MassMax),
			Radius:     uniform(rng, cfg.RadiusMin, cfg.RadiusMax),
			Velocity:   vmath.Vec3F{X: math.Cos(angle) * speed, Z: math.Sin(angle) * speed},
			Center:     center,
			ZoneRadius: cfg.ZoneRadius,
			MaxSpeed:   cfg.MaxSpeed,
		}))
	}
	return max(cfg.Count, 0)
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
