package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/catlounge/internal/combat"
	"github.com/samdwyer/catlounge/internal/game"
	"github.com/samdwyer/catlounge/internal/gamedata"
	"github.com/samdwyer/catlounge/internal/world"
)

func runeKey(r rune) KeyPress {
	return KeyPress{Key: tcell.KeyRune, Rune: r}
}

func TestKeyTranslation(t *testing.T) {
	tests := []struct {
		name  string
		key   KeyPress
		mode  game.Mode
		want  []game.Signal
		quits bool
	}{
		{"space starts", runeKey(' '), game.ModeTitle, []game.Signal{game.Start}, false},
		{"enter in lounge challenges", KeyPress{Key: tcell.KeyEnter}, game.ModeLounge, []game.Signal{game.Challenge}, false},
		{"enter in battle continues", KeyPress{Key: tcell.KeyEnter}, game.ModeBattle, []game.Signal{game.Continue}, false},
		{"enter on title does nothing", KeyPress{Key: tcell.KeyEnter}, game.ModeTitle, nil, false},
		{"r plays rock", runeKey('r'), game.ModeBattle, []game.Signal{game.Choose(combat.MoveRock)}, false},
		{"P plays paper", runeKey('P'), game.ModeBattle, []game.Signal{game.Choose(combat.MovePaper)}, false},
		{"s plays scissors", runeKey('s'), game.ModeLounge, []game.Signal{game.Choose(combat.MoveScissors)}, false},
		{"ctrl-r restarts", KeyPress{Key: tcell.KeyCtrlR}, game.ModeBattle, []game.Signal{game.Restart}, false},
		{"f5 restarts", KeyPress{Key: tcell.KeyF5}, game.ModeLounge, []game.Signal{game.Restart}, false},
		{"q quits", runeKey('q'), game.ModeLounge, nil, true},
		{"escape quits", KeyPress{Key: tcell.KeyEscape}, game.ModeTitle, nil, true},
		{"unknown rune ignored", runeKey('z'), game.ModeBattle, nil, false},
		{"arrow emits no signal", KeyPress{Key: tcell.KeyUp}, game.ModeLounge, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewInput(4)
			got, quit := in.Key(tt.key, tt.mode)
			if quit != tt.quits {
				t.Errorf("Key() quit = %v, want %v", quit, tt.quits)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Key() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Key()[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestHeldDirectionsExpire(t *testing.T) {
	in := NewInput(3)

	in.Key(KeyPress{Key: tcell.KeyLeft}, game.ModeLounge)
	in.Key(KeyPress{Key: tcell.KeyUp}, game.ModeLounge)

	for i := 0; i < 3; i++ {
		if got := in.Held(); got != (world.Directions{Left: true, Up: true}) {
			t.Fatalf("tick %d: Held() = %+v, want left+up", i, got)
		}
		in.Advance()
	}
	if got := in.Held(); got != (world.Directions{}) {
		t.Errorf("Held() after hold expired = %+v, want none", got)
	}
}

func TestKeyRepeatExtendsHold(t *testing.T) {
	in := NewInput(2)

	in.Key(KeyPress{Key: tcell.KeyRight}, game.ModeLounge)
	in.Advance()
	in.Key(KeyPress{Key: tcell.KeyRight}, game.ModeLounge)
	in.Advance()

	if got := in.Held(); !got.Right {
		t.Errorf("Held() = %+v, want right still held after repeat", got)
	}
}

func TestOppositeDirectionReleases(t *testing.T) {
	in := NewInput(10)

	in.Key(KeyPress{Key: tcell.KeyLeft}, game.ModeLounge)
	in.Key(KeyPress{Key: tcell.KeyRight}, game.ModeLounge)
	if got := in.Held(); got != (world.Directions{Right: true}) {
		t.Errorf("Held() = %+v, want right only", got)
	}

	in.Key(KeyPress{Key: tcell.KeyDown}, game.ModeLounge)
	in.Key(KeyPress{Key: tcell.KeyUp}, game.ModeLounge)
	if got := in.Held(); got != (world.Directions{Right: true, Up: true}) {
		t.Errorf("Held() = %+v, want right+up", got)
	}
}

func TestClickOnBattleButtons(t *testing.T) {
	in := NewInput(1)
	buttons := gamedata.ButtonsDef{X: 120, Y: 400, W: 140, H: 60, Gap: 30}

	tests := []struct {
		x, y int
		mode game.Mode
		want []game.Signal
	}{
		{130, 410, game.ModeBattle, []game.Signal{game.Choose(combat.MoveRock)}},
		{120, 400, game.ModeBattle, []game.Signal{game.Choose(combat.MoveRock)}},
		{350, 430, game.ModeBattle, []game.Signal{game.Choose(combat.MovePaper)}},
		{600, 460, game.ModeBattle, []game.Signal{game.Choose(combat.MoveScissors)}},
		{275, 430, game.ModeBattle, nil},
		{130, 300, game.ModeBattle, nil},
		{130, 410, game.ModeLounge, nil},
	}

	for _, tt := range tests {
		got := in.Click(tt.x, tt.y, tt.mode, buttons)
		if len(got) != len(tt.want) || (len(got) == 1 && got[0] != tt.want[0]) {
			t.Errorf("Click(%d, %d, %v) = %v, want %v", tt.x, tt.y, tt.mode, got, tt.want)
		}
	}
}
