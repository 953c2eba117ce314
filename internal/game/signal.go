package game

import "github.com/samdwyer/catlounge/internal/combat"

// SignalKind identifies a logical input.
type SignalKind int

const (
	SignalStart SignalKind = iota
	SignalChallenge
	SignalChoose
	SignalContinue
	SignalRestart
)

// String returns a human-readable signal name.
func (k SignalKind) String() string {
	switch k {
	case SignalStart:
		return "start"
	case SignalChallenge:
		return "challenge"
	case SignalChoose:
		return "choose"
	case SignalContinue:
		return "continue"
	case SignalRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Signal is a logical input queued for the next tick.
type Signal struct {
	Kind SignalKind
	Move combat.Move // Only set for SignalChoose
}

// Signals without a payload.
var (
	Start     = Signal{Kind: SignalStart}
	Challenge = Signal{Kind: SignalChallenge}
	Continue  = Signal{Kind: SignalContinue}
	Restart   = Signal{Kind: SignalRestart}
)

// Choose returns the signal for playing move.
func Choose(move combat.Move) Signal {
	return Signal{Kind: SignalChoose, Move: move}
}
