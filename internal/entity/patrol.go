package entity

import "github.com/samdwyer/catlounge/internal/gamedata"

// Patroller walks horizontally between two bounds, reversing at either end.
type Patroller struct {
	Rect     Rect
	Speed    int
	Dir      int // +1 moving right, -1 moving left
	Min, Max int // Patrol bounds on the x axis
	start    Rect
}

// NewPatroller creates a patroller moving right from the layout's box.
func NewPatroller(def gamedata.PatrolDef) *Patroller {
	r := RectFromDef(def.Rect)
	return &Patroller{
		Rect:  r,
		Speed: def.Speed,
		Dir:   1,
		Min:   def.Min,
		Max:   def.Max,
		start: r,
	}
}

// Step advances one tick. Once the box reaches or passes either bound the
// direction flips; the box itself is not pulled back.
func (p *Patroller) Step() {
	p.Rect.X += p.Speed * p.Dir
	if p.Rect.X <= p.Min || p.Rect.Right() >= p.Max {
		p.Dir = -p.Dir
	}
}

// Reset returns the patroller to its starting box, moving right.
func (p *Patroller) Reset() {
	p.Rect = p.start
	p.Dir = 1
}
