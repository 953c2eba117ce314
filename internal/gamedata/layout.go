package gamedata

import (
	"errors"
	"fmt"
)

// OpponentSlots is the number of opponents a layout must define.
const OpponentSlots = 3

// RectDef is an axis-aligned box in scene coordinates.
type RectDef struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// SceneDef is the size of the lounge scene.
type SceneDef struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// PlayerDef is the player's starting box and movement speed.
type PlayerDef struct {
	Rect  RectDef `json:"rect"`
	Speed int     `json:"speed"` // Scene units per tick per held direction
	Color string  `json:"color"` // Hex color code
}

// PatrolDef describes the opponent that walks back and forth.
type PatrolDef struct {
	Rect  RectDef `json:"rect"`
	Speed int     `json:"speed"`
	Min   int     `json:"min"` // Left patrol bound (x)
	Max   int     `json:"max"` // Right patrol bound (x + w)
}

// OpponentDef is one challengeable opponent.
// Exactly one opponent sets Patrol and takes its box from PatrolDef.
type OpponentDef struct {
	Name   string  `json:"name"`
	Color  string  `json:"color"`
	Rect   RectDef `json:"rect"`
	Patrol bool    `json:"patrol"`
}

// ButtonsDef is the geometry of the rock/paper/scissors buttons.
type ButtonsDef struct {
	X   int `json:"x"`
	Y   int `json:"y"`
	W   int `json:"w"`
	H   int `json:"h"`
	Gap int `json:"gap"`
}

// PaletteDef holds the hex colors used by the renderer.
type PaletteDef struct {
	Title  string `json:"title"`
	Lounge string `json:"lounge"`
	Battle string `json:"battle"`
	Ink    string `json:"ink"`
	Accent string `json:"accent"`
	Win    string `json:"win"`
	Lose   string `json:"lose"`
}

// Layout represents the structure of lounge.json.
type Layout struct {
	Scene     SceneDef      `json:"scene"`
	Player    PlayerDef     `json:"player"`
	Patrol    PatrolDef     `json:"patrol"`
	Opponents []OpponentDef `json:"opponents"`
	Buttons   ButtonsDef    `json:"buttons"`
	Palette   PaletteDef    `json:"palette"`
}

// Button returns the box of the i-th battle button.
func (b ButtonsDef) Button(i int) RectDef {
	return RectDef{
		X: b.X + i*(b.W+b.Gap),
		Y: b.Y,
		W: b.W,
		H: b.H,
	}
}

// PatrolIndex returns the index of the patrolling opponent, or -1.
func (l *Layout) PatrolIndex() int {
	for i, o := range l.Opponents {
		if o.Patrol {
			return i
		}
	}
	return -1
}

// Validate checks that the layout can drive a lounge.
func (l *Layout) Validate() error {
	if l.Scene.Width <= 0 || l.Scene.Height <= 0 {
		return fmt.Errorf("scene size %dx%d must be positive", l.Scene.Width, l.Scene.Height)
	}
	if err := validateRect("player", l.Player.Rect, l.Scene); err != nil {
		return err
	}
	if l.Player.Speed <= 0 {
		return errors.New("player speed must be positive")
	}
	if err := validateRect("patrol", l.Patrol.Rect, l.Scene); err != nil {
		return err
	}
	if l.Patrol.Min >= l.Patrol.Max {
		return fmt.Errorf("patrol bounds [%d, %d] are not ordered", l.Patrol.Min, l.Patrol.Max)
	}
	if l.Patrol.Max-l.Patrol.Min <= l.Patrol.Rect.W {
		return fmt.Errorf("patrol bounds [%d, %d] too narrow for width %d", l.Patrol.Min, l.Patrol.Max, l.Patrol.Rect.W)
	}

	if len(l.Opponents) != OpponentSlots {
		return fmt.Errorf("expected %d opponents, got %d", OpponentSlots, len(l.Opponents))
	}
	patrols := 0
	for i, o := range l.Opponents {
		if o.Name == "" {
			return fmt.Errorf("opponent %d missing 'name'", i)
		}
		if o.Patrol {
			patrols++
			continue
		}
		if err := validateRect(o.Name, o.Rect, l.Scene); err != nil {
			return err
		}
	}
	if patrols != 1 {
		return fmt.Errorf("expected exactly one patrol opponent, got %d", patrols)
	}

	return nil
}

func validateRect(name string, r RectDef, scene SceneDef) error {
	if r.W <= 0 || r.H <= 0 {
		return fmt.Errorf("%s: size %dx%d must be positive", name, r.W, r.H)
	}
	if r.X < 0 || r.Y < 0 || r.X+r.W > scene.Width || r.Y+r.H > scene.Height {
		return fmt.Errorf("%s: box (%d,%d,%d,%d) outside scene", name, r.X, r.Y, r.W, r.H)
	}
	return nil
}

// LoadLayout loads the lounge layout from the embedded lounge.json file.
func LoadLayout() (*Layout, error) {
	layout, err := Load[Layout]("lounge.json")
	if err != nil {
		return nil, err
	}
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("invalid lounge.json: %w", err)
	}
	return &layout, nil
}
