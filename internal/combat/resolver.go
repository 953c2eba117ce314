// Package combat provides rock/paper/scissors resolution and the round loop
// played against an opponent during a battle.
package combat

// Move is a hand played in a round. The zero value means no move.
type Move int

const (
	// MoveNone means no move has been played yet.
	MoveNone Move = iota
	MoveRock
	MovePaper
	MoveScissors
)

// Moves lists the playable moves in button order.
var Moves = [...]Move{MoveRock, MovePaper, MoveScissors}

// String returns the lower-case move name.
func (m Move) String() string {
	switch m {
	case MoveRock:
		return "rock"
	case MovePaper:
		return "paper"
	case MoveScissors:
		return "scissors"
	case MoveNone:
		return "none"
	default:
		return "unknown"
	}
}

// Valid reports whether m is one of the three playable moves.
func (m Move) Valid() bool {
	return m == MoveRock || m == MovePaper || m == MoveScissors
}

// Outcome is the result of a round from the player's point of view.
// The zero value means no round has been resolved.
type Outcome int

const (
	// OutcomeNone means no round has been resolved yet.
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
	OutcomeTie
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	case OutcomeTie:
		return "tie"
	case OutcomeNone:
		return "none"
	default:
		return "unknown"
	}
}

// Terminal reports whether the outcome ends the battle once acknowledged.
// Win and Lose are terminal, a Tie lets the player go again.
func (o Outcome) Terminal() bool {
	switch o {
	case OutcomeWin, OutcomeLose:
		return true
	default:
		return false
	}
}

// Beats reports whether a defeats b under the cyclic rule:
// rock beats scissors, paper beats rock, scissors beats paper.
func Beats(a, b Move) bool {
	switch a {
	case MoveRock:
		return b == MoveScissors
	case MovePaper:
		return b == MoveRock
	case MoveScissors:
		return b == MovePaper
	default:
		return false
	}
}

// Resolve returns the outcome of player against opponent.
func Resolve(player, opponent Move) Outcome {
	if player == opponent {
		return OutcomeTie
	}
	if Beats(player, opponent) {
		return OutcomeWin
	}
	return OutcomeLose
}
