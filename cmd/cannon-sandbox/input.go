package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/artillery/cannon"
	"github.com/lixenwraith/artillery/parameter"
	"github.com/lixenwraith/artillery/physics"
)

// action is what the loop must do after a key
type action uint8

const (
	actionNone action = iota
	actionFire
	actionQuit
)

// controls maps keys onto cannon aim and sandbox toggles
type controls struct {
	cannon    *cannon.Cannon
	predictor *physics.Predictor
}

// handleKey applies one key event and reports any follow-up action
func (c *controls) handleKey(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyUp:
		c.cannon.Pitch(1, parameter.KeyStep)
	case tcell.KeyDown:
		c.cannon.Pitch(-1, parameter.KeyStep)
	case tcell.KeyLeft:
		c.cannon.Rotate(-1, parameter.KeyStep)
	case tcell.KeyRight:
		c.cannon.Rotate(1, parameter.KeyStep)
	case tcell.KeyRune:
		return c.handleRune(ev.Rune())
	}
	return actionNone
}

func (c *controls) handleRune(r rune) action {
	switch r {
	case ' ':
		return actionFire
	case 'r', 'R':
		c.cannon.Pitch(1, parameter.KeyStep)
	case 'f', 'F':
		c.cannon.Pitch(-1, parameter.KeyStep)
	case 'q', 'Q':
		c.cannon.Rotate(-1, parameter.KeyStep)
	case 'e', 'E':
		c.cannon.Rotate(1, parameter.KeyStep)
	case 'w', 'W':
		c.cannon.Move(0, 1, parameter.KeyStep)
	case 's', 'S':
		c.cannon.Move(0, -1, parameter.KeyStep)
	case 'a', 'A':
		c.cannon.Move(-1, 0, parameter.KeyStep)
	case 'd', 'D':
		c.cannon.Move(1, 0, parameter.KeyStep)
	case 'm', 'M':
		if c.predictor.Mode == physics.ModeDrag {
			c.predictor.Mode = physics.ModeVacuum
		} else {
			c.predictor.Mode = physics.ModeDrag
		}
	}
	return actionNone
}
