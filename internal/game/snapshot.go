package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/catlounge/internal/combat"
	"github.com/samdwyer/catlounge/internal/entity"
)

// OpponentView is an opponent as the renderer sees it.
type OpponentView struct {
	Index   int
	Name    string
	Color   tcell.Color
	Rect    entity.Rect
	Patrols bool
}

// Snapshot is a read-only copy of the game state for one frame.
type Snapshot struct {
	Tick       uint64
	TitleTicks uint64 // Ticks spent on the current title screen
	Mode       Mode
	Width      int
	Height     int

	Player      entity.Rect
	PlayerColor tcell.Color
	Opponents   []OpponentView

	Opponent     int // combat.NoOpponent outside a battle
	OpponentName string
	PlayerMove   combat.Move
	OpponentMove combat.Move
	Outcome      combat.Outcome
	Progress     float64
	Blocked      bool // A Win/Lose reveal is waiting for Continue
	Highlight    int  // Last chosen battle button, -1 for none

	Message string // Status line
	Notice  string // Set when a challenge found nobody in reach
}

// Snapshot copies the current state.
func (m *Machine) Snapshot() Snapshot {
	rec := m.round.Record()

	opponents := make([]OpponentView, len(m.lounge.Opponents))
	for i, o := range m.lounge.Opponents {
		opponents[i] = OpponentView{
			Index:   o.Index,
			Name:    o.Name,
			Color:   o.Color,
			Rect:    o.Rect(),
			Patrols: o.Patrols(),
		}
	}

	name := "none"
	if o := m.lounge.Opponent(rec.Opponent); o != nil {
		name = o.Name
	}

	return Snapshot{
		Tick:         m.tick,
		TitleTicks:   m.titleTicks,
		Mode:         m.mode,
		Width:        m.lounge.Width,
		Height:       m.lounge.Height,
		Player:       m.lounge.Player.Rect,
		PlayerColor:  m.lounge.Player.Color,
		Opponents:    opponents,
		Opponent:     rec.Opponent,
		OpponentName: name,
		PlayerMove:   rec.PlayerMove,
		OpponentMove: rec.OpponentMove,
		Outcome:      rec.Outcome,
		Progress:     rec.Progress,
		Blocked:      m.round.Blocked(),
		Highlight:    m.highlight,
		Message:      m.message,
		Notice:       m.notice,
	}
}

// ResultLabel returns the short result shown in the status line.
func (s Snapshot) ResultLabel() string {
	switch s.Outcome {
	case combat.OutcomeWin:
		return "WIN"
	case combat.OutcomeLose:
		return "LOSE"
	case combat.OutcomeTie:
		return "TIE"
	default:
		return "—"
	}
}
