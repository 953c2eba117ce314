// Package world provides the lounge scene: player movement, the patrolling
// opponent and the overlap test that starts a battle.
package world

// Direction is one of the four movement inputs.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions is the set of movement inputs held during a tick.
type Directions struct {
	Up, Down, Left, Right bool
}

// With returns a copy with d held. Unknown directions are ignored.
func (ds Directions) With(d Direction) Directions {
	switch d {
	case DirUp:
		ds.Up = true
	case DirDown:
		ds.Down = true
	case DirLeft:
		ds.Left = true
	case DirRight:
		ds.Right = true
	}
	return ds
}

// Delta returns the movement vector for the held directions at the given
// speed. Opposite directions cancel out.
func (ds Directions) Delta(speed int) (dx, dy int) {
	if ds.Left {
		dx -= speed
	}
	if ds.Right {
		dx += speed
	}
	if ds.Up {
		dy -= speed
	}
	if ds.Down {
		dy += speed
	}
	return dx, dy
}
