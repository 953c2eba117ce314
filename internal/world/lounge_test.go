package world

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/catlounge/internal/entity"
	"github.com/samdwyer/catlounge/internal/gamedata"
)

func newTestLounge(t *testing.T) *Lounge {
	t.Helper()
	layout, err := gamedata.LoadLayout()
	if err != nil {
		t.Fatalf("LoadLayout() error = %v", err)
	}
	return NewLounge(layout)
}

func TestNewLounge(t *testing.T) {
	l := newTestLounge(t)

	if l.Width != 800 || l.Height != 600 {
		t.Errorf("scene = %dx%d, want 800x600", l.Width, l.Height)
	}
	if len(l.Opponents) != 3 {
		t.Fatalf("len(Opponents) = %d, want 3", len(l.Opponents))
	}
	for i, o := range l.Opponents {
		if o.Index != i {
			t.Errorf("Opponents[%d].Index = %d", i, o.Index)
		}
	}
	for i, o := range l.Opponents {
		if o.Patrols() != (i == 1) {
			t.Errorf("Opponents[%d].Patrols() = %v, want only index 1 to patrol", i, o.Patrols())
		}
	}
	if want := tcell.NewRGBColor(0x6A, 0x4C, 0x3B); l.Player.Color != want {
		t.Errorf("Player.Color = %v, want %v", l.Player.Color, want)
	}
	if l.Opponent(3) != nil || l.Opponent(-1) != nil {
		t.Error("Opponent() out of range should return nil")
	}
}

func TestDirectionsDelta(t *testing.T) {
	tests := []struct {
		dirs   Directions
		dx, dy int
	}{
		{Directions{}, 0, 0},
		{Directions{Up: true}, 0, -4},
		{Directions{Down: true, Right: true}, 4, 4},
		{Directions{Up: true, Left: true}, -4, -4},
		{Directions{Left: true, Right: true}, 0, 0},
	}

	for _, tt := range tests {
		dx, dy := tt.dirs.Delta(4)
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("%+v.Delta(4) = (%d, %d), want (%d, %d)", tt.dirs, dx, dy, tt.dx, tt.dy)
		}
	}

	if got := (Directions{}).With(Direction(42)); got != (Directions{}) {
		t.Errorf("With(unknown) = %+v, want no directions", got)
	}
	if got := (Directions{}).With(DirLeft).With(DirUp); got != (Directions{Left: true, Up: true}) {
		t.Errorf("With(left).With(up) = %+v", got)
	}
}

func TestAdvanceMovesPlayerAndPatrol(t *testing.T) {
	l := newTestLounge(t)

	l.Advance(Directions{Up: true, Left: true})

	if x, y := l.Player.Position(); x != 376 || y != 496 {
		t.Errorf("player at (%d, %d), want (376, 496)", x, y)
	}
	if l.Patrol.Rect.X != 362 {
		t.Errorf("patrol x = %d, want 362", l.Patrol.Rect.X)
	}
	if got := l.Opponents[1].Rect(); got != l.Patrol.Rect {
		t.Errorf("patrolling opponent rect %+v does not follow patrol %+v", got, l.Patrol.Rect)
	}
}

func TestAdvanceKeepsPlayerInBounds(t *testing.T) {
	diagonals := []Directions{
		{Up: true, Left: true},
		{Up: true, Right: true},
		{Down: true, Left: true},
		{Down: true, Right: true},
	}

	for _, dirs := range diagonals {
		l := newTestLounge(t)
		for i := 0; i < 500; i++ {
			l.Advance(dirs)
			r := l.Player.Rect
			if r.X < 0 || r.Y < 0 || r.Right() > l.Width || r.Bottom() > l.Height {
				t.Fatalf("%+v tick %d: player %+v left the scene", dirs, i, r)
			}
		}

		r := l.Player.Rect
		wantX, wantY := 0, 0
		if dirs.Right {
			wantX = l.Width - r.W
		}
		if dirs.Down {
			wantY = l.Height - r.H
		}
		if r.X != wantX || r.Y != wantY {
			t.Errorf("%+v: player ended at (%d, %d), want corner (%d, %d)", dirs, r.X, r.Y, wantX, wantY)
		}
	}
}

func TestPatrolStaysNearBounds(t *testing.T) {
	l := newTestLounge(t)

	for i := 0; i < 2000; i++ {
		l.Advance(Directions{})
		r := l.Patrol.Rect
		if r.X < l.Patrol.Min-l.Patrol.Speed || r.Right() > l.Patrol.Max+l.Patrol.Speed {
			t.Fatalf("tick %d: patrol %+v escaped [%d, %d]", i, r, l.Patrol.Min, l.Patrol.Max)
		}
	}
}

func TestFindTriggeredOpponent(t *testing.T) {
	l := newTestLounge(t)

	if idx, ok := l.FindTriggeredOpponent(); ok {
		t.Errorf("FindTriggeredOpponent() at start = %d, want none", idx)
	}

	l.Player.Rect = entity.Rect{X: 570, Y: 200, W: 40, H: 60}
	if idx, ok := l.FindTriggeredOpponent(); !ok || idx != 2 {
		t.Errorf("FindTriggeredOpponent() near opponent 3 = (%d, %v), want (2, true)", idx, ok)
	}

	// Touching the left edge of opponent 3 is not close enough.
	l.Player.Rect = entity.Rect{X: 520, Y: 150, W: 40, H: 60}
	if idx, ok := l.FindTriggeredOpponent(); ok {
		t.Errorf("FindTriggeredOpponent() touching edge = %d, want none", idx)
	}
}

func TestFindTriggeredOpponentPrefersLowestIndex(t *testing.T) {
	layout, err := gamedata.LoadLayout()
	if err != nil {
		t.Fatalf("LoadLayout() error = %v", err)
	}
	// Park the patroller on top of opponent 1's box.
	layout.Patrol.Rect.X = 200
	l := NewLounge(layout)

	l.Player.Rect = entity.Rect{X: 210, Y: 160, W: 40, H: 60}
	if !Overlaps(l.Player.Rect, l.Opponents[0].Rect()) || !Overlaps(l.Player.Rect, l.Opponents[1].Rect()) {
		t.Fatal("test setup: player should overlap opponents 0 and 1")
	}

	if idx, ok := l.FindTriggeredOpponent(); !ok || idx != 0 {
		t.Errorf("FindTriggeredOpponent() = (%d, %v), want (0, true)", idx, ok)
	}
}

func TestReset(t *testing.T) {
	l := newTestLounge(t)

	for i := 0; i < 77; i++ {
		l.Advance(Directions{Up: true, Right: true})
	}
	l.Reset(context.Background())

	if x, y := l.Player.Position(); x != 380 || y != 500 {
		t.Errorf("player after Reset at (%d, %d), want (380, 500)", x, y)
	}
	if l.Patrol.Rect.X != 360 || l.Patrol.Dir != 1 {
		t.Errorf("patrol after Reset x=%d dir=%d, want 360 and 1", l.Patrol.Rect.X, l.Patrol.Dir)
	}
}
