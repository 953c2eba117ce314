package world

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/catlounge/internal/entity"
	"github.com/samdwyer/catlounge/internal/gamedata"
	"github.com/samdwyer/catlounge/internal/telemetry"
)

// Lounge is the free-roam scene.
type Lounge struct {
	Width     int
	Height    int
	Player    *entity.Player
	Patrol    *entity.Patroller
	Opponents []*entity.Opponent
}

// NewLounge builds the scene from a validated layout.
func NewLounge(layout *gamedata.Layout) *Lounge {
	patrol := entity.NewPatroller(layout.Patrol)
	patrolIndex := layout.PatrolIndex()

	opponents := make([]*entity.Opponent, len(layout.Opponents))
	for i, def := range layout.Opponents {
		var p *entity.Patroller
		if i == patrolIndex {
			p = patrol
		}
		opponents[i] = entity.NewOpponent(i, def, p)
	}

	return &Lounge{
		Width:     layout.Scene.Width,
		Height:    layout.Scene.Height,
		Player:    entity.NewPlayer(layout.Player),
		Patrol:    patrol,
		Opponents: opponents,
	}
}

// Advance runs one lounge tick: the player moves by the held directions and
// is clamped inside the scene, then the patroller takes a step.
func (l *Lounge) Advance(dirs Directions) {
	dx, dy := dirs.Delta(l.Player.Speed)
	l.Player.Move(dx, dy)
	l.Player.Rect = l.Player.Rect.ClampWithin(l.Width, l.Height)

	l.Patrol.Step()
}

// Overlaps reports whether two boxes share interior area.
func Overlaps(a, b entity.Rect) bool {
	return a.Overlaps(b)
}

// FindTriggeredOpponent returns the lowest index of an opponent overlapping
// the player, or false if none does.
func (l *Lounge) FindTriggeredOpponent() (int, bool) {
	for i, o := range l.Opponents {
		if Overlaps(l.Player.Rect, o.Rect()) {
			return i, true
		}
	}
	return -1, false
}

// Opponent returns the opponent at index, or nil.
func (l *Lounge) Opponent(index int) *entity.Opponent {
	if index < 0 || index >= len(l.Opponents) {
		return nil
	}
	return l.Opponents[index]
}

// Reset puts the player and patroller back at their starting positions.
func (l *Lounge) Reset(ctx context.Context) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "lounge.reset")
	defer span.End()

	px, py := l.Player.Position()
	span.SetAttributes(
		attribute.Int("player.from_x", px),
		attribute.Int("player.from_y", py),
		attribute.Int("patrol.from_x", l.Patrol.Rect.X),
	)

	l.Player.Reset()
	l.Patrol.Reset()
}
