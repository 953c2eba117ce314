package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/catlounge/internal/combat"
	"github.com/samdwyer/catlounge/internal/entity"
	"github.com/samdwyer/catlounge/internal/game"
	"github.com/samdwyer/catlounge/internal/gamedata"
)

// statusRows are the terminal rows below the scene used for the status bar.
const statusRows = 2

const restartLabel = "[restart]"

var buttonLabels = [...]string{"Rock (R)", "Paper (P)", "Scissors (S)"}

// Renderer handles drawing snapshots to the screen.
type Renderer struct {
	screen  *Screen
	colors  gamedata.Colors
	buttons gamedata.ButtonsDef
	view    Viewport
}

// NewRenderer creates a renderer for the given screen and layout.
func NewRenderer(screen *Screen, layout *gamedata.Layout, colors gamedata.Colors) *Renderer {
	return &Renderer{
		screen:  screen,
		colors:  colors,
		buttons: layout.Buttons,
		view:    NewViewport(layout.Scene.Width, layout.Scene.Height, 1, 1),
	}
}

// Viewport returns the mapping used for the last frame.
func (r *Renderer) Viewport() Viewport {
	return r.view
}

// Render draws one frame.
func (r *Renderer) Render(snap game.Snapshot) {
	cols, rows := r.screen.Size()
	r.view = NewViewport(snap.Width, snap.Height, cols, rows-statusRows)

	r.screen.Clear()
	switch snap.Mode {
	case game.ModeTitle:
		r.drawTitle(snap)
	case game.ModeLounge:
		r.drawLounge(snap)
	case game.ModeBattle:
		r.drawBattle(snap)
	}
	r.drawStatus(snap, cols, rows)

	r.screen.Show()
}

// RestartHit reports whether the cell is on the restart label.
func (r *Renderer) RestartHit(col, row int) bool {
	cols, rows := r.screen.Size()
	start := cols - textWidth(restartLabel)
	return row == rows-statusRows && col >= start && col < cols
}

func (r *Renderer) ink(bg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Background(bg).Foreground(r.colors.Ink)
}

func (r *Renderer) fillScene(bg tcell.Color) {
	r.screen.Fill(0, 0, r.view.Cols, r.view.Rows, ' ', tcell.StyleDefault.Background(bg))
}

func (r *Renderer) fillRect(rect entity.Rect, style tcell.Style) {
	c0, r0, c1, r1 := r.view.RectCells(rect)
	r.screen.Fill(c0, r0, c1, r1, ' ', style)
}

// textAt centers msg horizontally on the scene at scene height y.
func (r *Renderer) textAt(y int, msg string, style tcell.Style) {
	_, row := r.view.ToCell(0, y)
	r.screen.CenteredText(r.view.Cols/2, row, msg, style)
}

func (r *Renderer) drawTitle(snap game.Snapshot) {
	bg := r.colors.Title
	r.fillScene(bg)

	bounce := int(math.Sin(float64(snap.TitleTicks)*0.05) * 8)
	r.textAt(200+bounce, "Rock Paper Scissors", r.ink(bg).Bold(true))
	r.textAt(250+bounce, "Challenge the Cats", tcell.StyleDefault.Background(bg).Foreground(r.colors.Accent))

	button := entity.Rect{X: snap.Width/2 - 110, Y: 340, W: 220, H: 60}
	style := tcell.StyleDefault.Background(r.colors.Accent).Foreground(r.colors.Title).Bold(true)
	r.fillRect(button, style)
	r.textAt(370, "PRESS SPACE", style)

	r.textAt(480, "Use arrow keys to move • Enter to challenge", r.ink(bg))
}

func (r *Renderer) drawLounge(snap game.Snapshot) {
	bg := r.colors.Lounge
	r.fillScene(bg)
	r.textAt(30, "The Lounge", r.ink(bg).Bold(true))

	for _, o := range snap.Opponents {
		r.fillRect(o.Rect, tcell.StyleDefault.Background(o.Color))
		c0, _, c1, r1 := r.view.RectCells(o.Rect)
		r.screen.CenteredText((c0+c1)/2, r1, o.Name, r.ink(bg))
	}

	r.fillRect(snap.Player, tcell.StyleDefault.Background(snap.PlayerColor))

	r.textAt(560, "move with arrows, press Enter near an opponent", r.ink(bg))
}

func (r *Renderer) drawBattle(snap game.Snapshot) {
	bg := r.colors.Battle
	r.fillScene(bg)

	r.textAt(60, "BATTLE", r.ink(bg).Bold(true))
	r.textAt(105, "vs "+snap.OpponentName, r.ink(bg))

	portrait := tcell.StyleDefault.Background(r.colors.Lose)
	for _, o := range snap.Opponents {
		if o.Index == snap.Opponent {
			portrait = tcell.StyleDefault.Background(o.Color)
		}
	}
	r.fillRect(entity.Rect{X: snap.Width/2 - 80, Y: 140, W: 160, H: 160}, portrait)

	for i, label := range buttonLabels {
		box := entity.RectFromDef(r.buttons.Button(i))
		fill := r.colors.Title
		if snap.Highlight == i {
			fill = r.colors.Accent
		}
		style := r.ink(fill)
		r.fillRect(box, style)
		c0, r0, c1, r1 := r.view.RectCells(box)
		r.screen.CenteredText((c0+c1)/2, (r0+r1)/2, label, style)
	}

	if snap.PlayerMove != combat.MoveNone && snap.OpponentMove != combat.MoveNone {
		r.textAt(340, "You chose: "+strings.ToUpper(snap.PlayerMove.String()), r.ink(bg))
		r.textAt(365, "Opponent chose: "+strings.ToUpper(snap.OpponentMove.String()), r.ink(bg))
	}

	switch snap.Outcome {
	case combat.OutcomeWin, combat.OutcomeLose:
		r.drawVerdict(snap)
	case combat.OutcomeTie:
		r.drawTieBanner(snap)
	case combat.OutcomeNone:
	}
}

// drawVerdict scales the Win/Lose box in with a bounce.
func (r *Renderer) drawVerdict(snap game.Snapshot) {
	scale := EaseOutBack(snap.Progress)
	w := int(500 * scale)
	h := int(120 * scale)
	if w <= 0 || h <= 0 {
		return
	}

	text, fill := "YOU WON!", r.colors.Win
	if snap.Outcome == combat.OutcomeLose {
		text, fill = "GAME OVER", r.colors.Lose
	}

	box := entity.Rect{X: snap.Width/2 - w/2, Y: 290 - h/2, W: w, H: h}
	style := r.ink(fill)
	r.fillRect(box, style)
	if snap.Progress >= 0.5 {
		r.textAt(280, text, style.Bold(true))
		r.textAt(320, "Press Enter to return", style)
	}
}

// drawTieBanner slides the tie banner down from above the scene.
func (r *Renderer) drawTieBanner(snap game.Snapshot) {
	const (
		bannerW = 360
		bannerH = 70
		targetY = 270
		startY  = -bannerH - 20
	)
	y := startY + int(float64(targetY-startY)*EaseOutBack(snap.Progress))
	box := entity.Rect{X: snap.Width/2 - bannerW/2, Y: y, W: bannerW, H: bannerH}
	style := tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(r.colors.Ink).Bold(true)
	r.fillRect(box, style)
	r.textAt(y+bannerH/2, "TIE — pick again", style)
}

func (r *Renderer) drawStatus(snap game.Snapshot, cols, rows int) {
	style := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	r.screen.Fill(0, rows-statusRows, cols, rows, ' ', style)

	status := fmt.Sprintf("mode: %s  opponent: %s  result: %s", snap.Mode, snap.OpponentName, snap.ResultLabel())
	r.screen.Text(0, rows-statusRows, status, style)
	r.screen.Text(cols-textWidth(restartLabel), rows-statusRows, restartLabel, style.Foreground(tcell.ColorYellow))

	msgStyle := style
	if snap.Notice != "" {
		msgStyle = style.Foreground(tcell.ColorRed)
	}
	r.screen.Text(0, rows-1, snap.Message, msgStyle)
}

// EaseOutBack overshoots slightly past 1 before settling.
func EaseOutBack(x float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	return 1 + c3*math.Pow(x-1, 3) + c1*math.Pow(x-1, 2)
}
