package ui

import "github.com/samdwyer/catlounge/internal/entity"

// Viewport maps scene coordinates onto a grid of terminal cells.
type Viewport struct {
	SceneW, SceneH int
	Cols, Rows     int
}

// NewViewport fits a sceneW x sceneH scene into cols x rows cells.
// Degenerate sizes are bumped to one so that mapping never divides by zero.
func NewViewport(sceneW, sceneH, cols, rows int) Viewport {
	return Viewport{
		SceneW: max(sceneW, 1),
		SceneH: max(sceneH, 1),
		Cols:   max(cols, 1),
		Rows:   max(rows, 1),
	}
}

// ToCell returns the cell containing scene point (x, y).
func (v Viewport) ToCell(x, y int) (col, row int) {
	return floorDiv(x*v.Cols, v.SceneW), floorDiv(y*v.Rows, v.SceneH)
}

// ToScene returns the scene point at the center of a cell.
func (v Viewport) ToScene(col, row int) (x, y int) {
	x = (2*col + 1) * v.SceneW / (2 * v.Cols)
	y = (2*row + 1) * v.SceneH / (2 * v.Rows)
	return x, y
}

// RectCells returns the half-open cell span [c0,c1) x [r0,r1) covered by r.
// Any box with area covers at least one cell.
func (v Viewport) RectCells(r entity.Rect) (c0, r0, c1, r1 int) {
	c0, r0 = v.ToCell(r.X, r.Y)
	c1, r1 = v.ToCell(r.Right(), r.Bottom())
	if c1 <= c0 {
		c1 = c0 + 1
	}
	if r1 <= r0 {
		r1 = r0 + 1
	}
	return c0, r0, c1, r1
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
