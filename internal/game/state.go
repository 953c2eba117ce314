// Package game owns the mode state machine: it decides when the player is on
// the title screen, roaming the lounge or in a battle, and is the only
// mutator of the lounge and the round record.
package game

// Mode is the top-level phase of play.
type Mode int

const (
	// ModeTitle is the start screen. It is also where restart lands.
	ModeTitle Mode = iota
	// ModeLounge is free roam; challenging an opponent in reach starts a battle.
	ModeLounge
	// ModeBattle plays rock/paper/scissors rounds against one opponent.
	ModeBattle
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeTitle:
		return "title"
	case ModeLounge:
		return "lounge"
	case ModeBattle:
		return "battle"
	default:
		return "unknown"
	}
}

// Status line texts.
const (
	MessageTitle     = "press space to start"
	MessageLounge    = "arrows = move • Enter = challenge"
	MessageBattle    = "R / P / S or click a move"
	MessageWin       = "you won • Enter = back to lounge"
	MessageLose      = "you lost • Enter = back to lounge"
	MessageTie       = "tie • pick again"
	NoticeMoveCloser = "get a bit closer to an opponent"
)

// hint returns the status line shown on entering mode.
func (m Mode) hint() string {
	switch m {
	case ModeTitle:
		return MessageTitle
	case ModeLounge:
		return MessageLounge
	case ModeBattle:
		return MessageBattle
	default:
		return ""
	}
}
