// Package entity provides the actors that share the lounge: the player,
// the patrolling opponent and the static opponents.
package entity

import "github.com/samdwyer/catlounge/internal/gamedata"

// Rect is an axis-aligned box in scene coordinates.
type Rect struct {
	X, Y int // Top-left corner
	W, H int // Width and height
}

// RectFromDef converts a layout box.
func RectFromDef(d gamedata.RectDef) Rect {
	return Rect{X: d.X, Y: d.Y, W: d.W, H: d.H}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Overlaps returns true if the two boxes share interior area.
// Boxes that only touch along an edge do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.X+other.W &&
		r.X+r.W > other.X &&
		r.Y < other.Y+other.H &&
		r.Y+r.H > other.Y
}

// Contains returns true if the point lies inside the box, edges included.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// ClampWithin moves the box the least distance needed to lie fully inside
// a width x height area anchored at the origin.
func (r Rect) ClampWithin(width, height int) Rect {
	if r.X < 0 {
		r.X = 0
	}
	if r.X+r.W > width {
		r.X = width - r.W
	}
	if r.Y < 0 {
		r.Y = 0
	}
	if r.Y+r.H > height {
		r.Y = height - r.H
	}
	return r
}
