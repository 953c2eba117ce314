package game

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/catlounge/internal/combat"
	"github.com/samdwyer/catlounge/internal/gamedata"
	"github.com/samdwyer/catlounge/internal/logging"
	"github.com/samdwyer/catlounge/internal/telemetry"
	"github.com/samdwyer/catlounge/internal/world"
)

// noHighlight means no battle button is highlighted.
const noHighlight = -1

// Machine holds the entire game state and is its only mutator.
// Signals may be enqueued from any goroutine; they take effect on the next
// call to Tick, which must come from a single goroutine.
type Machine struct {
	mu    sync.Mutex
	queue []Signal

	layout *gamedata.Layout
	lounge *world.Lounge
	round  *combat.Round

	mode       Mode
	message    string
	notice     string
	highlight  int
	tick       uint64
	titleTicks uint64
}

// NewMachine creates a machine on the title screen.
func NewMachine(layout *gamedata.Layout, lounge *world.Lounge, round *combat.Round) *Machine {
	return &Machine{
		layout:    layout,
		lounge:    lounge,
		round:     round,
		mode:      ModeTitle,
		message:   ModeTitle.hint(),
		highlight: noHighlight,
	}
}

// New loads the lounge layout and builds a machine seeded from cfg.
func New(ctx context.Context, cfg Config) (*Machine, error) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.init")
	defer span.End()

	layout, err := gamedata.LoadLayout()
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	seed := cfg.EffectiveSeed()
	span.SetAttributes(
		attribute.Int64("seed", seed),
		attribute.Int("scene.width", layout.Scene.Width),
		attribute.Int("scene.height", layout.Scene.Height),
		attribute.Int("opponents", len(layout.Opponents)),
	)

	return NewMachine(layout, world.NewLounge(layout), combat.NewRound(cfg.RNG(seed))), nil
}

// Layout returns the scene layout the machine was built from.
func (m *Machine) Layout() *gamedata.Layout {
	return m.layout
}

// Mode returns the current mode.
func (m *Machine) Mode() Mode {
	return m.mode
}

// Enqueue queues a signal for the next tick.
func (m *Machine) Enqueue(sig Signal) {
	m.mu.Lock()
	m.queue = append(m.queue, sig)
	m.mu.Unlock()
}

// Tick applies queued signals in arrival order, then runs the per-mode
// update with the directions held this tick.
func (m *Machine) Tick(ctx context.Context, held world.Directions) {
	m.mu.Lock()
	pending := m.queue
	m.queue = nil
	m.mu.Unlock()

	for _, sig := range pending {
		m.apply(ctx, sig)
	}

	m.tick++
	switch m.mode {
	case ModeTitle:
		m.titleTicks++
	case ModeLounge:
		m.lounge.Advance(held)
	case ModeBattle:
		m.round.TickAnimation()
	}
}

// apply runs one signal against the transition table. Signals that make no
// sense in the current mode are dropped.
func (m *Machine) apply(ctx context.Context, sig Signal) {
	if sig.Kind == SignalRestart {
		m.restart(ctx)
		return
	}

	switch m.mode {
	case ModeTitle:
		if sig.Kind == SignalStart {
			m.setMode(ModeLounge)
		}
	case ModeLounge:
		if sig.Kind == SignalChallenge {
			m.challenge(ctx)
		}
	case ModeBattle:
		switch sig.Kind {
		case SignalChoose:
			m.playRound(ctx, sig.Move)
		case SignalContinue:
			m.leaveBattle(ctx)
		}
	}
}

func (m *Machine) setMode(mode Mode) {
	m.mode = mode
	m.message = mode.hint()
	m.notice = ""
}

// challenge starts a battle with the first opponent in reach.
func (m *Machine) challenge(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "lounge.challenge")
	defer span.End()

	index, ok := m.lounge.FindTriggeredOpponent()
	span.SetAttributes(attribute.Bool("hit", ok))
	if !ok {
		m.message = NoticeMoveCloser
		m.notice = NoticeMoveCloser
		return
	}
	span.SetAttributes(attribute.Int("opponent", index))

	if err := m.round.StartBattle(index); err != nil {
		// The lounge only reports indices of its own opponents.
		span.RecordError(err)
		logging.Error("battle not started", err, logging.Fields{"opponent": index})
		return
	}
	m.highlight = noHighlight
	m.setMode(ModeBattle)

	name := m.opponentName(index)
	_, start := tracer.Start(ctx, "battle.start")
	start.SetAttributes(
		attribute.Int("opponent.index", index),
		attribute.String("opponent.name", name),
	)
	start.End()

	logging.Info("battle started", logging.Fields{
		"opponent": name,
		"session":  telemetry.SessionID(),
	})
}

func (m *Machine) playRound(ctx context.Context, move combat.Move) {
	outcome, ok := m.round.PlayRound(move)
	if !ok {
		return
	}

	rec := m.round.Record()
	for i, b := range combat.Moves {
		if b == move {
			m.highlight = i
		}
	}

	switch outcome {
	case combat.OutcomeWin:
		m.message = MessageWin
	case combat.OutcomeLose:
		m.message = MessageLose
	case combat.OutcomeTie:
		m.message = MessageTie
	}

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "battle.round")
	span.SetAttributes(
		attribute.String("player_move", rec.PlayerMove.String()),
		attribute.String("opponent_move", rec.OpponentMove.String()),
		attribute.String("outcome", outcome.String()),
		attribute.Int("round", m.round.Played()),
	)
	span.End()
}

// leaveBattle returns to the lounge once a Win or Lose has been acknowledged.
func (m *Machine) leaveBattle(ctx context.Context) {
	rec := m.round.Record()
	rounds := m.round.Played()
	if !m.round.AcceptReveal() {
		return
	}
	m.highlight = noHighlight
	m.setMode(ModeLounge)

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "battle.end")
	span.SetAttributes(
		attribute.String("outcome", rec.Outcome.String()),
		attribute.Int("opponent.index", rec.Opponent),
		attribute.Int("rounds", rounds),
	)
	span.End()

	logging.Info("battle ended", logging.Fields{
		"opponent": m.opponentName(rec.Opponent),
		"outcome":  rec.Outcome.String(),
		"rounds":   rounds,
	})
}

func (m *Machine) restart(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.restart")
	span.SetAttributes(attribute.String("from", m.mode.String()))
	defer span.End()

	from := m.mode
	m.lounge.Reset(ctx)
	m.round.Reset()
	m.highlight = noHighlight
	m.titleTicks = 0
	m.setMode(ModeTitle)

	logging.Info("game restarted", logging.Fields{"from": from.String()})
}

func (m *Machine) opponentName(index int) string {
	if o := m.lounge.Opponent(index); o != nil {
		return o.Name
	}
	return "opponent"
}
