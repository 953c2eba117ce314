package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/catlounge/internal/gamedata"
)

// Opponent is a cat the player can challenge. Static opponents keep their
// layout box; the patrolling one reads its box from the Patroller.
type Opponent struct {
	Index  int
	Name   string
	Color  tcell.Color
	box    Rect
	patrol *Patroller
}

// NewOpponent creates an opponent from its definition. A non-nil patrol
// makes the opponent move with it instead of keeping def.Rect.
func NewOpponent(index int, def gamedata.OpponentDef, patrol *Patroller) *Opponent {
	return &Opponent{
		Index:  index,
		Name:   def.Name,
		Color:  gamedata.ColorOr(def.Color, tcell.ColorWhite),
		box:    RectFromDef(def.Rect),
		patrol: patrol,
	}
}

// Rect returns the opponent's current box.
func (o *Opponent) Rect() Rect {
	if o.patrol != nil {
		return o.patrol.Rect
	}
	return o.box
}

// Patrols reports whether the opponent moves.
func (o *Opponent) Patrols() bool {
	return o.patrol != nil
}
