package parameter

import "time"

// Frame loop
const (
	// FrameInterval is the render and input tick
	FrameInterval = time.Second / 60

	// MaxFrameTime caps seconds simulated in one frame after a stall
	MaxFrameTime = 0.25

	// MaxStepsPerFrame bounds world steps in one frame when the time step is tiny
	MaxStepsPerFrame = 2000

	// KeyStep is the hold time one key event stands for; terminals report repeats, not releases
	KeyStep = 0.1
)

// View
const (
	// ViewSpan is metres of ground shown across the screen
	ViewSpan = 30.0

	// ViewMargin is columns left blank at each side
	ViewMargin = 2

	// GroundRowsFromBottom leaves room under the ground line for the status bar
	GroundRowsFromBottom = 3
)
