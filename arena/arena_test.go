package arena_test

import (
	"math"
	"math/rand"
	"sync"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/lixenwraith/artillery/arena"
	"github.com/lixenwraith/artillery/arena/mocks"
	"github.com/lixenwraith/artillery/cannon"
	"github.com/lixenwraith/artillery/config"
	"github.com/lixenwraith/artillery/parameter"
	"github.com/lixenwraith/artillery/physics"
	"github.com/lixenwraith/artillery/vmath"
)

var _ cannon.Launcher = (*arena.World)(nil)

var gravity = vmath.Vec3F{Y: parameter.GravityY}

func TestHitCounterConcurrent(t *testing.T) {
	var c arena.HitCounter
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.RegisterHit()
		}()
	}
	wg.Wait()
	if c.Hits() != 50 {
		t.Errorf("Hits = %d, want 50", c.Hits())
	}
}

func TestNewTargetClamps(t *testing.T) {
	tg := arena.NewTarget(arena.TargetSpec{
		Mass:       -1,
		Radius:     0,
		Velocity:   vmath.Vec3F{X: 30, Y: 7, Z: 40},
		ZoneRadius: 1,
		MaxSpeed:   5,
	})

	if tg.ID == "" {
		t.Error("expected target id")
	}
	if tg.Mass != parameter.TargetMinMass || tg.Radius != parameter.TargetMinRadius {
		t.Errorf("mass/radius = %v/%v, want floors", tg.Mass, tg.Radius)
	}
	if tg.Vel.Y != 0 {
		t.Errorf("vertical velocity = %v, want 0", tg.Vel.Y)
	}
	if got := vmath.V3FMag(tg.Vel); math.Abs(got-5) > 1e-9 {
		t.Errorf("initial speed = %v, want capped 5", got)
	}
}

func TestTargetReturnsToZone(t *testing.T) {
	center := vmath.Vec3F{X: 10, Y: 2, Z: 10}
	tg := arena.NewTarget(arena.TargetSpec{
		Pos:        vmath.Vec3F{X: 10 + 5.9, Y: 2, Z: 10},
		Mass:       1,
		Radius:     0.2,
		Velocity:   vmath.Vec3F{X: 3},
		Center:     center,
		ZoneRadius: 6,
		MaxSpeed:   3,
	})
	rng := rand.New(rand.NewSource(7))

	tg.Update(0.1, rng) // crosses the 6m boundary

	if tg.Vel.X >= 0 {
		t.Errorf("velocity after leaving zone = %v, want heading back toward -x", tg.Vel)
	}
	want := 3 * parameter.TargetReturnSpeedFactor
	if got := vmath.V3FMag(tg.Vel); math.Abs(got-want) > 1e-9 {
		t.Errorf("return speed = %v, want %v", got, want)
	}
	if tg.Pos.Y != 2 {
		t.Errorf("target drifted vertically to %v", tg.Pos.Y)
	}

	// Stays bounded over a long wander
	for i := 0; i < 5000; i++ {
		tg.Update(0.05, rng)
	}
	if d := vmath.V3FMag(vmath.V3FFlattenY(vmath.V3FSub(tg.Pos, center))); d > 6+3*0.05+1e-9 {
		t.Errorf("target escaped zone: distance %v", d)
	}
}

func TestTargetHitReportsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockHitReporter(ctrl)
	reporter.EXPECT().RegisterHit().Times(1)

	tg := arena.NewTarget(arena.TargetSpec{Mass: 1, Radius: 0.3, MaxSpeed: 3, ZoneRadius: 10})
	if !tg.Hit(reporter) {
		t.Error("first hit should register")
	}
	if tg.Hit(reporter) {
		t.Error("second hit should be ignored")
	}
	if !tg.Dead() {
		t.Error("target should be dead")
	}

	before := tg.Pos
	tg.Update(1, rand.New(rand.NewSource(1)))
	if tg.Pos != before {
		t.Error("dead target moved")
	}
}

func TestWorldLaunchMatchesPreview(t *testing.T) {
	w := arena.NewWorld(gravity, nil, nil)
	pr := physics.DefaultPredictor()
	p := physics.NewParamsFrom(2, 0.15, 0.47, 1.225, vmath.Vec3F{X: 1})
	start := vmath.Vec3F{Y: 1}
	vel := vmath.Vec3F{X: 8, Y: 12, Z: 3}

	preview := pr.Predict(start, vel, p)
	proj, err := w.Launch(start, vel, p)
	if err != nil {
		t.Fatalf("Launch: %v", err)
	}

	for i := 1; i < 20; i++ {
		w.Step(parameter.PreviewTimeStep)
		if proj.Pos() != preview[i] {
			t.Fatalf("step %d live %v != preview %v", i, proj.Pos(), preview[i])
		}
	}
}

func TestWorldHitRemovesTargetAndProjectile(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockHitReporter(ctrl)
	reporter.EXPECT().RegisterHit().Times(1)

	w := arena.NewWorld(vmath.Vec3F{}, reporter, rand.New(rand.NewSource(3)))
	w.AddTarget(arena.NewTarget(arena.TargetSpec{
		Pos: vmath.Vec3F{X: 5, Y: 2}, Mass: 1, Radius: 0.3, MaxSpeed: 0.5, ZoneRadius: 20,
	}))

	// Straight shot in zero gravity, fast enough to skip past the target within one step
	p := physics.NewParamsFrom(1, 0.05, 0, 0, vmath.Vec3F{})
	if _, err := w.Launch(vmath.Vec3F{Y: 2}, vmath.Vec3F{X: 100}, p); err != nil {
		t.Fatal(err)
	}

	w.Step(0.1)

	if n := len(w.Targets()); n != 0 {
		t.Errorf("targets = %d, want 0 after hit", n)
	}
	if n := len(w.Projectiles()); n != 0 {
		t.Errorf("projectiles = %d, want 0 after hit", n)
	}
}

func TestWorldDespawn(t *testing.T) {
	w := arena.NewWorld(gravity, nil, nil)
	p := physics.NewParams()

	if _, err := w.Launch(vmath.Vec3F{Y: 0.5}, vmath.Vec3F{Y: -10}, p); err != nil {
		t.Fatal(err)
	}
	w.Step(0.1)
	if len(w.Projectiles()) != 0 {
		t.Error("projectile below ground not removed")
	}

	w.GroundY = -1e9
	w.MaxProjectileAge = 0.05
	if _, err := w.Launch(vmath.Vec3F{Y: 10}, vmath.Vec3F{}, p); err != nil {
		t.Fatal(err)
	}
	w.Step(0.1)
	if len(w.Projectiles()) != 0 {
		t.Error("expired projectile not removed")
	}
}

func TestWorldFull(t *testing.T) {
	w := arena.NewWorld(gravity, nil, nil)
	p := physics.NewParams()
	for i := 0; i < arena.MaxProjectiles; i++ {
		if _, err := w.Launch(vmath.Vec3F{Y: 1}, vmath.Vec3F{X: 1}, p); err != nil {
			t.Fatalf("launch %d: %v", i, err)
		}
	}
	if _, err := w.Launch(vmath.Vec3F{Y: 1}, vmath.Vec3F{X: 1}, p); err != arena.ErrWorldFull {
		t.Errorf("err = %v, want ErrWorldFull", err)
	}
}

func TestSpawnTargets(t *testing.T) {
	cfg := config.Default().Targets
	w := arena.NewWorld(gravity, nil, nil)

	n := arena.SpawnTargets(w, cfg, rand.New(rand.NewSource(42)))
	targets := w.Targets()
	if n != cfg.Count || len(targets) != cfg.Count {
		t.Fatalf("spawned %d (%d in world), want %d", n, len(targets), cfg.Count)
	}

	center := cfg.AreaCenter.Vec3F()
	size := cfg.AreaSize.Vec3F()
	for i, tg := range targets {
		d := vmath.V3FSub(tg.Pos, center)
		if math.Abs(d.X) > size.X/2 || math.Abs(d.Z) > size.Z/2 {
			t.Errorf("target %d outside spawn box: %v", i, tg.Pos)
		}
		if d.Y < parameter.TargetMinSpawnHeight || d.Y > size.Y {
			t.Errorf("target %d height offset %v out of range", i, d.Y)
		}
		if tg.Mass < cfg.MassMin || tg.Mass > cfg.MassMax {
			t.Errorf("target %d mass %v out of range", i, tg.Mass)
		}
		if tg.Radius < cfg.RadiusMin || tg.Radius > cfg.RadiusMax {
			t.Errorf("target %d radius %v out of range", i, tg.Radius)
		}
		if tg.Vel.Y != 0 {
			t.Errorf("target %d has vertical velocity %v", i, tg.Vel.Y)
		}
	}

	cfg.Count = -2
	if n := arena.SpawnTargets(w, cfg, rand.New(rand.NewSource(1))); n != 0 {
		t.Errorf("negative count spawned %d", n)
	}
}

func TestWorldTargetsBounce(t *testing.T) {
	w := arena.NewWorld(gravity, nil, nil)
	a := arena.NewTarget(arena.TargetSpec{
		Pos: vmath.Vec3F{X: 9.7, Y: 2}, Mass: 1, Radius: 0.4, Velocity: vmath.Vec3F{X: 2}, ZoneRadius: 20, MaxSpeed: 3,
	})
	b := arena.NewTarget(arena.TargetSpec{
		Pos: vmath.Vec3F{X: 10.3, Y: 2.2}, Mass: 1, Radius: 0.4, Velocity: vmath.Vec3F{X: -2}, ZoneRadius: 20, MaxSpeed: 3,
	})
	w.AddTarget(a)
	w.AddTarget(b)

	w.Step(0.01)

	if a.Vel.X >= 0 || b.Vel.X <= 0 {
		t.Errorf("targets did not bounce: %v %v", a.Vel, b.Vel)
	}
	if a.Vel.Y != 0 || b.Vel.Y != 0 {
		t.Errorf("contact added vertical velocity: %v %v", a.Vel, b.Vel)
	}
	if a.Pos.Y != 2 || b.Pos.Y != 2.2 {
		t.Errorf("contact moved targets vertically: %v %v", a.Pos, b.Pos)
	}
	if d := vmath.V3FMag(vmath.V3FFlattenY(vmath.V3FSub(a.Pos, b.Pos))); d < 0.8 {
		t.Errorf("targets still overlap, distance %v", d)
	}
}

func TestWorldTargetsAtDifferentAltitudesPass(t *testing.T) {
	w := arena.NewWorld(gravity, nil, nil)
	a := arena.NewTarget(arena.TargetSpec{
		Pos: vmath.Vec3F{X: 10, Y: 0.5, Z: 10}, Mass: 1, Radius: 0.2, Velocity: vmath.Vec3F{X: 0.5}, ZoneRadius: 20, MaxSpeed: 3,
	})
	b := arena.NewTarget(arena.TargetSpec{
		Pos: vmath.Vec3F{X: 10.3, Y: 6, Z: 10}, Mass: 1, Radius: 0.2, Velocity: vmath.Vec3F{X: -0.5}, ZoneRadius: 20, MaxSpeed: 3,
	})
	w.AddTarget(a)
	w.AddTarget(b)

	w.Step(0.02)

	if a.Vel != (vmath.Vec3F{X: 0.5}) || b.Vel != (vmath.Vec3F{X: -0.5}) {
		t.Errorf("vertically separated targets interacted: %v %v", a.Vel, b.Vel)
	}
	if math.Abs(a.Pos.X-10.01) > 1e-9 || math.Abs(b.Pos.X-10.29) > 1e-9 {
		t.Errorf("vertically separated targets were pushed apart: %v %v", a.Pos, b.Pos)
	}
}

func TestWorldHitsNearestTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockHitReporter(ctrl)
	reporter.EXPECT().RegisterHit().Times(1)

	w := arena.NewWorld(vmath.Vec3F{}, reporter, rand.New(rand.NewSource(3)))
	far := arena.NewTarget(arena.TargetSpec{
		Pos: vmath.Vec3F{X: 8, Y: 2}, Mass: 1, Radius: 0.3, ZoneRadius: 20,
	})
	near := arena.NewTarget(arena.TargetSpec{
		Pos: vmath.Vec3F{X: 4, Y: 2}, Mass: 1, Radius: 0.3, ZoneRadius: 20,
	})
	// Farther target first in slice order
	w.AddTarget(far)
	w.AddTarget(near)

	p := physics.NewParamsFrom(1, 0.05, 0, 0, vmath.Vec3F{})
	if _, err := w.Launch(vmath.Vec3F{Y: 2}, vmath.Vec3F{X: 100}, p); err != nil {
		t.Fatal(err)
	}

	w.Step(0.1)

	if !near.Dead() {
		t.Error("nearer target on the path survived")
	}
	if far.Dead() {
		t.Error("farther target was hit through the nearer one")
	}
	if targets := w.Targets(); len(targets) != 1 || targets[0] != far {
		t.Errorf("remaining targets = %v, want only the far one", targets)
	}
}
