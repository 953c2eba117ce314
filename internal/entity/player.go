package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/catlounge/internal/gamedata"
)

// Player is the token the user walks around the lounge.
type Player struct {
	Rect  Rect
	Speed int // Scene units per tick per held direction
	Color tcell.Color
	start Rect
}

// NewPlayer creates a player at the layout's starting box.
func NewPlayer(def gamedata.PlayerDef) *Player {
	r := RectFromDef(def.Rect)
	return &Player{
		Rect:  r,
		Speed: def.Speed,
		Color: gamedata.ColorOr(def.Color, tcell.ColorWhite),
		start: r,
	}
}

// Move shifts the player by the given delta.
func (p *Player) Move(dx, dy int) {
	p.Rect.X += dx
	p.Rect.Y += dy
}

// Position returns the top-left corner.
func (p *Player) Position() (int, int) {
	return p.Rect.X, p.Rect.Y
}

// Reset returns the player to the starting box.
func (p *Player) Reset() {
	p.Rect = p.start
}
