package combat

import (
	"errors"
	"fmt"
)

// OpponentCount is the number of opponents a battle can be started against.
const OpponentCount = 3

// NoOpponent marks the absence of a current opponent.
const NoOpponent = -1

// Reveal animation progress is tracked in hundredths so that it lands on
// exactly 1 instead of drifting under float accumulation.
const (
	progressScale = 100
	// bounceStep is the per-tick increment for Win/Lose (0.04).
	bounceStep = 4
	// slideStep is the per-tick increment for Tie (0.08).
	slideStep = 8
)

// ErrInvalidOpponent is returned when a battle is started against an index
// outside [0, OpponentCount).
var ErrInvalidOpponent = errors.New("invalid opponent index")

// Chooser supplies the randomness for opponent moves. *rand.Rand satisfies it.
type Chooser interface {
	Intn(n int) int
}

// Record is the transient state of the battle in progress.
type Record struct {
	Opponent     int // Current opponent index, NoOpponent outside a battle
	PlayerMove   Move
	OpponentMove Move
	Outcome      Outcome
	Progress     float64 // Reveal animation progress in [0,1]
}

// Round runs rock/paper/scissors rounds against one opponent and tracks the
// reveal animation of the latest outcome.
type Round struct {
	chooser      Chooser
	opponent     int
	playerMove   Move
	opponentMove Move
	outcome      Outcome
	progress     int // hundredths
	played       int // rounds resolved in the current battle
}

// NewRound creates a round controller drawing opponent moves from chooser.
func NewRound(chooser Chooser) *Round {
	return &Round{
		chooser:  chooser,
		opponent: NoOpponent,
	}
}

// StartBattle makes index the current opponent and clears the record.
func (r *Round) StartBattle(index int) error {
	if index < 0 || index >= OpponentCount {
		return fmt.Errorf("start battle against %d: %w", index, ErrInvalidOpponent)
	}
	r.clear()
	r.opponent = index
	return nil
}

// Active reports whether a battle is in progress.
func (r *Round) Active() bool {
	return r.opponent != NoOpponent
}

// Blocked reports whether a Win or Lose reveal is waiting to be acknowledged.
func (r *Round) Blocked() bool {
	return r.outcome.Terminal()
}

// PlayRound plays move against a uniformly random opponent move.
// It reports false and changes nothing when no battle is active, when a
// terminal reveal is pending, or when move is not playable.
func (r *Round) PlayRound(move Move) (Outcome, bool) {
	if !r.Active() || r.Blocked() || !move.Valid() {
		return OutcomeNone, false
	}

	opp := Moves[r.chooser.Intn(len(Moves))]
	outcome := Resolve(move, opp)

	r.playerMove = move
	r.opponentMove = opp
	r.outcome = outcome
	r.progress = 0
	r.played++

	return outcome, true
}

// TickAnimation advances the reveal animation of the current outcome.
// Ties slide in twice as fast as the Win/Lose bounce.
func (r *Round) TickAnimation() {
	if r.progress >= progressScale {
		return
	}

	var step int
	switch r.outcome {
	case OutcomeWin, OutcomeLose:
		step = bounceStep
	case OutcomeTie:
		step = slideStep
	case OutcomeNone:
		return
	}

	r.progress += step
	if r.progress > progressScale {
		r.progress = progressScale
	}
}

// AcceptReveal acknowledges a Win or Lose and ends the battle.
// It reports false and does nothing for a Tie or when no round was played.
func (r *Round) AcceptReveal() bool {
	if !r.Blocked() {
		return false
	}
	r.clear()
	return true
}

// Reset drops any battle in progress.
func (r *Round) Reset() {
	r.clear()
}

// Progress returns the reveal animation progress in [0,1].
func (r *Round) Progress() float64 {
	return float64(r.progress) / progressScale
}

// Played returns the number of rounds resolved in the current battle.
func (r *Round) Played() int {
	return r.played
}

// Record returns a copy of the current round record.
func (r *Round) Record() Record {
	return Record{
		Opponent:     r.opponent,
		PlayerMove:   r.playerMove,
		OpponentMove: r.opponentMove,
		Outcome:      r.outcome,
		Progress:     r.Progress(),
	}
}

func (r *Round) clear() {
	r.opponent = NoOpponent
	r.playerMove = MoveNone
	r.opponentMove = MoveNone
	r.outcome = OutcomeNone
	r.progress = 0
	r.played = 0
}
