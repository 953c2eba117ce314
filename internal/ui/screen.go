// Package ui is the terminal front end: it draws game snapshots with tcell
// and turns key and mouse events into game signals.
package ui

import "github.com/gdamore/tcell/v2"

// Screen wraps tcell.Screen with a simplified interface.
type Screen struct {
	screen tcell.Screen
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newScreen(s)
}

// newScreen initializes s. Tests pass a simulation screen.
func newScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.EnableMouse()
	s.HideCursor()
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close finalizes the screen and restores terminal state.
// A pending PollEvent returns nil afterwards.
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent waits for and returns the next terminal event.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// Size returns the current terminal dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Sync forces a complete redraw of the screen.
func (s *Screen) Sync() {
	s.screen.Sync()
}

// Fill paints the cells [x0,x1) x [y0,y1) with r.
func (s *Screen) Fill(x0, y0, x1, y1 int, r rune, style tcell.Style) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.screen.SetContent(x, y, r, nil, style)
		}
	}
}

// Text writes msg starting at x, y. Cells past the right edge are dropped
// by tcell.
func (s *Screen) Text(x, y int, msg string, style tcell.Style) {
	i := 0
	for _, ch := range msg {
		s.screen.SetContent(x+i, y, ch, nil, style)
		i++
	}
}

// CenteredText writes msg centered on column cx.
func (s *Screen) CenteredText(cx, y int, msg string, style tcell.Style) {
	s.Text(cx-textWidth(msg)/2, y, msg, style)
}

func textWidth(msg string) int {
	return len([]rune(msg))
}
