// Package graphics holds the color and image values the screen model is built from.
package graphics

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"scoreboard/internal/side"
)

var (
	Black = color.RGBA{0, 0, 0, 255}
	White = color.RGBA{255, 255, 255, 255}
	Red   = color.RGBA{255, 0, 0, 255}
	Blue  = color.RGBA{0, 0, 255, 255}
	Gray  = color.RGBA{128, 128, 128, 255}
)

var named = map[string]color.RGBA{
	"black":  Black,
	"white":  White,
	"red":    Red,
	"blue":   Blue,
	"green":  {0, 128, 0, 255},
	"yellow": {255, 255, 0, 255},
	"orange": {255, 165, 0, 255},
	"purple": {128, 0, 128, 255},
	"gray":   Gray,
	"grey":   Gray,
	"navy":   {0, 0, 128, 255},
	"maroon": {128, 0, 0, 255},
	"gold":   {255, 215, 0, 255},
	"silver": {192, 192, 192, 255},
}

// Named returns the color for a name such as "Blue". Names are case insensitive.
func Named(name string) (color.RGBA, bool) {
	c, ok := named[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// Parse accepts either a color name or a hex string.
func Parse(v string) (color.RGBA, error) {
	if c, ok := Named(v); ok {
		return c, nil
	}
	return Hex(v)
}

// Hex parses "#rrggbb", "rrggbb" or "#rgb".
func Hex(v string) (color.RGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(v), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", v)
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", v, err)
	}
	return color.RGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 255}, nil
}

// HexString formats c as "#rrggbb".
func HexString(c color.Color) string {
	r := toRGBA(c)
	return fmt.Sprintf("#%02x%02x%02x", r.R, r.G, r.B)
}

// Contrast returns black for bright colors and white for dark ones, using
// perceptive luminance.
func Contrast(c color.Color) color.RGBA {
	r := toRGBA(c)
	luminance := (0.299*float64(r.R) + 0.587*float64(r.G) + 0.114*float64(r.B)) / 255
	if luminance > 0.5 {
		return Black
	}
	return White
}

func toRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// TeamColors are the default backgrounds of the home and away sides.
type TeamColors struct {
	Home color.RGBA
	Away color.RGBA
}

// DefaultTeamColors returns blue for home and red for away.
func DefaultTeamColors() TeamColors {
	return TeamColors{Home: Blue, Away: Red}
}

// For returns the team color of a side. Sets that are not exactly one team
// fall back to black.
func (t TeamColors) For(s side.Set) color.RGBA {
	switch s {
	case side.Home:
		return t.Home
	case side.Away:
		return t.Away
	}
	return Black
}

// With returns t with the color of s replaced.
func (t TeamColors) With(s side.Set, c color.RGBA) TeamColors {
	if s.Has(side.Home) {
		t.Home = c
	}
	if s.Has(side.Away) {
		t.Away = c
	}
	return t
}
