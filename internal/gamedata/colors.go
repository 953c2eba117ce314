package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Colors is a PaletteDef resolved to terminal colors.
type Colors struct {
	Title  tcell.Color
	Lounge tcell.Color
	Battle tcell.Color
	Ink    tcell.Color
	Accent tcell.Color
	Win    tcell.Color
	Lose   tcell.Color
}

// Resolve parses every palette entry.
func (p PaletteDef) Resolve() (Colors, error) {
	var c Colors
	entries := []struct {
		name string
		hex  string
		dst  *tcell.Color
	}{
		{"title", p.Title, &c.Title},
		{"lounge", p.Lounge, &c.Lounge},
		{"battle", p.Battle, &c.Battle},
		{"ink", p.Ink, &c.Ink},
		{"accent", p.Accent, &c.Accent},
		{"win", p.Win, &c.Win},
		{"lose", p.Lose, &c.Lose},
	}
	for _, e := range entries {
		color, err := ParseHexColor(e.hex)
		if err != nil {
			return Colors{}, fmt.Errorf("palette %s: %w", e.name, err)
		}
		*e.dst = color
	}
	return c, nil
}

// ParseHexColor converts "#RRGGBB" or "RRGGBB" to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewRGBColor(int32(rgb>>16&0xFF), int32(rgb>>8&0xFF), int32(rgb&0xFF)), nil
}

// ColorOr parses hex, falling back when it is malformed.
func ColorOr(hex string, fallback tcell.Color) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		return fallback
	}
	return color
}
