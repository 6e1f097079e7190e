// Command cannon-sandbox is a terminal artillery range: aim, watch the drag-aware preview, fire at roaming targets
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/artillery/arena"
	"github.com/lixenwraith/artillery/audio"
	"github.com/lixenwraith/artillery/cannon"
	"github.com/lixenwraith/artillery/config"
	"github.com/lixenwraith/artillery/parameter"
	"github.com/lixenwraith/artillery/physics"
	"github.com/lixenwraith/artillery/render"
)

var (
	configFlag  = flag.String("config", "", "TOML config file")
	debugFlag   = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	vacuumFlag  = flag.Bool("vacuum", false, "Start with the drag-free preview")
	targetsFlag = flag.Int("targets", -1, "Number of targets, -1 uses the config value")
	seedFlag    = flag.Int64("seed", 0, "Random seed, 0 picks one from the clock")
)

var errQuit = errors.New("quit")

func main() {
	flag.Parse()

	if f := setupLogging(*debugFlag); f != nil {
		defer f.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *targetsFlag >= 0 {
		cfg.Targets.Count = *targetsFlag
	}
	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[INFO] starting seed=%d config=%q", seed, *configFlag)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: restore the terminal before printing the crash
	crash := func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\n\x1b[31mCANNON-SANDBOX CRASHED: %v\x1b[0m\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()

	player := audio.NewPlayer(seed)
	if cfg.Audio.Enabled {
		if err := player.Init(); err != nil {
			log.Printf("[WARN] continuing without audio: %v", err)
		}
	}
	defer player.Close()

	s := newSandbox(cfg, *vacuumFlag, seed, player)

	err = run(context.Background(), screen, s, crash)
	if err != nil && !errors.Is(err, errQuit) {
		fmt.Fprintf(os.Stderr, "Sandbox error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Targets hit: %d\n", s.hits.Hits())
}

// sandbox is the simulation state owned by the tick goroutine
type sandbox struct {
	world     *arena.World
	cannon    *cannon.Cannon
	predictor physics.Predictor
	hits      *arena.HitCounter
	player    *audio.Player
	controls  controls
	acc       float64
}

func newSandbox(cfg *config.Config, vacuum bool, seed int64, player *audio.Player) *sandbox {
	rng := rand.New(rand.NewSource(seed))
	hits := &arena.HitCounter{}

	predictor := cfg.Preview.Predictor()
	if vacuum {
		predictor.Mode = physics.ModeVacuum
	}

	world := arena.NewWorld(predictor.Gravity, hits, rng)
	arena.SpawnTargets(world, cfg.Targets, rng)

	s := &sandbox{
		world:     world,
		cannon:    cannon.New(cfg.Cannon, cfg.Projectile.Params(), world, rng),
		predictor: predictor,
		hits:      hits,
		player:    player,
	}
	s.controls = controls{cannon: s.cannon, predictor: &s.predictor}
	return s
}

// tick advances the world in whole preview steps so live shots retrace the preview
// Time beyond MaxStepsPerFrame steps is dropped
func (s *sandbox) tick(elapsed float64) {
	dt := s.predictor.TimeStep
	s.acc += min(elapsed, parameter.MaxFrameTime)
	before := s.hits.Hits()
	for n := 0; s.acc >= dt; n++ {
		if n == parameter.MaxStepsPerFrame {
			s.acc = 0
			break
		}
		s.world.Step(dt)
		s.acc -= dt
	}
	if s.hits.Hits() > before {
		s.player.PlayHit()
	}
}

func (s *sandbox) fire() {
	if _, err := s.cannon.Fire(); err != nil {
		log.Printf("[WARN] fire rejected: %v", err)
		return
	}
	s.player.PlayShot()
}

func (s *sandbox) frame() render.Frame {
	p := s.cannon.Params()
	return render.Frame{
		GroundY:     s.world.GroundY,
		Preview:     s.cannon.Preview(s.predictor),
		Projectiles: s.world.Projectiles(),
		Targets:     s.world.Targets(),
		Root:        s.cannon.Root(),
		Muzzle:      s.cannon.Muzzle(),
		Status: fmt.Sprintf("hits %d | %s | yaw %.0f pitch %.0f | m %.2fkg r %.2fm | arrows/RF QE WASD space M esc",
			s.hits.Hits(), s.predictor.Mode, s.cannon.Yaw(), s.cannon.Elevation(), p.Mass(), p.Radius()),
	}
}

// run drives input polling and the frame loop until quit or a failure
func run(ctx context.Context, screen tcell.Screen, s *sandbox, crash func(any)) error {
	g, gctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 100)

	guard := func(fn func() error) func() error {
		return func() error {
			defer func() {
				if r := recover(); r != nil {
					crash(r)
				}
			}()
			return fn()
		}
	}

	// PollEvent returns nil once the screen is finalized
	g.Go(guard(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-gctx.Done():
				return nil
			}
		}
	}))

	g.Go(guard(func() error {
		defer screen.Fini()

		ticker := time.NewTicker(parameter.FrameInterval)
		defer ticker.Stop()
		last := time.Now()

		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case ev := <-events:
				switch ev := ev.(type) {
				case *tcell.EventKey:
					switch s.controls.handleKey(ev) {
					case actionQuit:
						return errQuit
					case actionFire:
						s.fire()
					}
				case *tcell.EventResize:
					screen.Sync()
				}
			case now := <-ticker.C:
				s.tick(now.Sub(last).Seconds())
				last = now
				w, h := screen.Size()
				render.Scene(screen, render.FitViewport(w, h, parameter.ViewSpan), s.frame())
			}
		}
	}))

	return g.Wait()
}
