package ui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/catlounge/internal/game"
	"github.com/samdwyer/catlounge/internal/gamedata"
	"github.com/samdwyer/catlounge/internal/logging"
	"github.com/samdwyer/catlounge/internal/telemetry"
)

// App runs the terminal front end around a game machine.
type App struct {
	screen   *Screen
	renderer *Renderer
	input    *Input
	machine  *game.Machine
	interval time.Duration
	running  bool
	buttons  tcell.ButtonMask // mouse buttons down after the last event
}

// NewApp opens the terminal screen for machine.
func NewApp(cfg game.Config, machine *game.Machine) (*App, error) {
	colors, err := machine.Layout().Palette.Resolve()
	if err != nil {
		return nil, err
	}

	screen, err := NewScreen()
	if err != nil {
		return nil, err
	}

	return newApp(cfg, machine, screen, colors), nil
}

func newApp(cfg game.Config, machine *game.Machine, screen *Screen, colors gamedata.Colors) *App {
	return &App{
		screen:   screen,
		renderer: NewRenderer(screen, machine.Layout(), colors),
		input:    NewInput(cfg.HoldTicks),
		machine:  machine,
		interval: cfg.TickInterval(),
		running:  true,
	}
}

// Run executes the main loop until the player quits or ctx is cancelled.
// Input events are queued on the machine as they arrive and take effect on
// the next tick; each tick is followed by one render.
func (a *App) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("ui")
	ctx, span := tracer.Start(ctx, "app.run")
	defer span.End()

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	go a.pumpEvents(events, done)

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	ticks := 0
	a.renderer.Render(a.machine.Snapshot())
	for a.running {
		select {
		case <-ctx.Done():
			a.running = false
		case ev, ok := <-events:
			if !ok {
				a.running = false
				break
			}
			a.handleEvent(ev)
		case <-ticker.C:
			a.machine.Tick(ctx, a.input.Held())
			a.input.Advance()
			a.renderer.Render(a.machine.Snapshot())
			ticks++
		}
	}

	span.SetAttributes(attribute.Int("ticks", ticks))
	logging.Info("game loop stopped", logging.Fields{"ticks": ticks})

	close(done)
	a.screen.Close()
	return nil
}

// pumpEvents forwards terminal events until the screen is closed.
func (a *App) pumpEvents(events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent processes a single input event.
func (a *App) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.handleKey(KeyPressOf(ev))
	case *tcell.EventMouse:
		col, row := ev.Position()
		a.handleMouse(col, row, ev.Buttons())
	case *tcell.EventResize:
		a.screen.Sync()
	}
}

func (a *App) handleKey(k KeyPress) {
	sigs, quit := a.input.Key(k, a.machine.Mode())
	if quit {
		a.running = false
		return
	}
	a.enqueue(sigs)
}

// handleMouse reacts to the primary button going down at a cell.
func (a *App) handleMouse(col, row int, buttons tcell.ButtonMask) {
	pressed := buttons&tcell.Button1 != 0 && a.buttons&tcell.Button1 == 0
	a.buttons = buttons
	if !pressed {
		return
	}

	if a.renderer.RestartHit(col, row) {
		a.machine.Enqueue(game.Restart)
		return
	}

	view := a.renderer.Viewport()
	if col >= view.Cols || row >= view.Rows {
		return
	}
	x, y := view.ToScene(col, row)
	a.enqueue(a.input.Click(x, y, a.machine.Mode(), a.machine.Layout().Buttons))
}

func (a *App) enqueue(sigs []game.Signal) {
	for _, sig := range sigs {
		a.machine.Enqueue(sig)
	}
}
