package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/catlounge/internal/combat"
	"github.com/samdwyer/catlounge/internal/entity"
	"github.com/samdwyer/catlounge/internal/game"
	"github.com/samdwyer/catlounge/internal/gamedata"
	"github.com/samdwyer/catlounge/internal/world"
)

// KeyPress is the part of a tcell key event the input layer looks at.
type KeyPress struct {
	Key  tcell.Key
	Rune rune
}

// KeyPressOf extracts a KeyPress from a tcell event.
func KeyPressOf(ev *tcell.EventKey) KeyPress {
	return KeyPress{Key: ev.Key(), Rune: ev.Rune()}
}

// Input turns raw key and mouse events into game signals and tracks which
// directions count as held. Terminals deliver key repeats but no key-up
// events, so a direction stays held for a few ticks after its last press.
type Input struct {
	holdTicks int
	tick      int
	heldUntil [4]int // indexed by world.Direction
}

// NewInput creates an input translator. holdTicks below 1 is treated as 1.
func NewInput(holdTicks int) *Input {
	return &Input{holdTicks: max(holdTicks, 1)}
}

// Key translates a key press given the current mode. It reports quit when
// the player asked to leave the program.
func (in *Input) Key(k KeyPress, mode game.Mode) (sigs []game.Signal, quit bool) {
	switch k.Key {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return nil, true
	case tcell.KeyCtrlR, tcell.KeyF5:
		return []game.Signal{game.Restart}, false

	case tcell.KeyUp:
		in.press(world.DirUp)
	case tcell.KeyDown:
		in.press(world.DirDown)
	case tcell.KeyLeft:
		in.press(world.DirLeft)
	case tcell.KeyRight:
		in.press(world.DirRight)

	case tcell.KeyEnter:
		switch mode {
		case game.ModeLounge:
			return []game.Signal{game.Challenge}, false
		case game.ModeBattle:
			return []game.Signal{game.Continue}, false
		}

	case tcell.KeyRune:
		switch k.Rune {
		case ' ':
			return []game.Signal{game.Start}, false
		case 'r', 'R':
			return []game.Signal{game.Choose(combat.MoveRock)}, false
		case 'p', 'P':
			return []game.Signal{game.Choose(combat.MovePaper)}, false
		case 's', 'S':
			return []game.Signal{game.Choose(combat.MoveScissors)}, false
		case 'q', 'Q':
			return nil, true
		}
	}
	return nil, false
}

// Click translates a primary-button click at scene point (x, y). In a
// battle, clicking one of the move buttons plays that move.
func (in *Input) Click(x, y int, mode game.Mode, buttons gamedata.ButtonsDef) []game.Signal {
	if mode != game.ModeBattle {
		return nil
	}
	for i, move := range combat.Moves {
		if entity.RectFromDef(buttons.Button(i)).Contains(x, y) {
			return []game.Signal{game.Choose(move)}
		}
	}
	return nil
}

// Held returns the directions held during the current tick.
func (in *Input) Held() world.Directions {
	var dirs world.Directions
	for d := world.DirUp; d <= world.DirRight; d++ {
		if in.tick < in.heldUntil[d] {
			dirs = dirs.With(d)
		}
	}
	return dirs
}

// Advance moves the hold clock on by one tick.
func (in *Input) Advance() {
	in.tick++
}

// press holds d and releases the opposite direction.
func (in *Input) press(d world.Direction) {
	in.heldUntil[d] = in.tick + in.holdTicks
	in.heldUntil[opposite(d)] = 0
}

func opposite(d world.Direction) world.Direction {
	switch d {
	case world.DirUp:
		return world.DirDown
	case world.DirDown:
		return world.DirUp
	case world.DirLeft:
		return world.DirRight
	default:
		return world.DirLeft
	}
}
