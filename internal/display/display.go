// Package display describes the physical monitors and the sides they carry.
package display

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"scoreboard/internal/geometry"
	"scoreboard/internal/side"
)

// ErrBadGeometry is returned for a malformed display geometry string.
var ErrBadGeometry = errors.New("bad display geometry")

// Info is one physical display.
type Info struct {
	Dimensions geometry.Rect
	Side       side.Set
	// Control marks the operator's own monitor.
	Control bool
}

// Shows reports whether the display mirrors scoreboard content.
func (i Info) Shows() bool {
	return i.Side.Overlaps(side.Home | side.Away | side.Error)
}

// Config is the display layout the previews are built from.
type Config interface {
	NumberOfDisplays() int
	DisplayDetails(index int) Info
	// Windowed makes presenters resizable windows instead of full screen.
	Windowed() bool
}

// Static is a fixed Config.
type Static struct {
	Displays []Info
	Window   bool
}

func (s *Static) NumberOfDisplays() int { return len(s.Displays) }

func (s *Static) DisplayDetails(index int) Info {
	if index < 0 || index >= len(s.Displays) {
		return Info{Side: side.Error}
	}
	return s.Displays[index]
}

func (s *Static) Windowed() bool { return s.Window }

// Assign gives each display a side. The primary display is the control
// display; when it is the only one it shows the error screen. The other
// displays get home first and away after that.
func Assign(dims []geometry.Rect, primary int) []Info {
	out := make([]Info, len(dims))
	home := true
	for i, d := range dims {
		out[i].Dimensions = d
		if i == primary {
			out[i].Control = true
			if len(dims) == 1 {
				out[i].Side = side.Error
			}
			continue
		}
		if home {
			out[i].Side = side.Home
			home = false
		} else {
			out[i].Side = side.Away
		}
	}
	if len(out) == 0 {
		out = append(out, Info{Side: side.Error, Control: true})
	}
	return out
}

// Override replaces the sides of the first len(sides) displays.
func Override(infos []Info, sides []side.Set) []Info {
	out := append([]Info(nil), infos...)
	for i := range out {
		if i < len(sides) {
			out[i].Side = sides[i]
		}
	}
	return out
}

// ParseGeometry reads "WxH" or "WxH+X+Y".
func ParseGeometry(v string) (geometry.Rect, error) {
	v = strings.TrimSpace(v)
	sizePart, offPart, hasOff := strings.Cut(v, "+")
	w, h, ok := strings.Cut(sizePart, "x")
	if !ok {
		return geometry.Rect{}, fmt.Errorf("%w: %q", ErrBadGeometry, v)
	}
	nums := []string{w, h}
	if hasOff {
		x, y, ok := strings.Cut(offPart, "+")
		if !ok {
			return geometry.Rect{}, fmt.Errorf("%w: %q", ErrBadGeometry, v)
		}
		nums = append(nums, x, y)
	} else {
		nums = append(nums, "0", "0")
	}
	vals := make([]int, len(nums))
	for i, n := range nums {
		val, err := strconv.Atoi(n)
		if err != nil {
			return geometry.Rect{}, fmt.Errorf("%w: %q", ErrBadGeometry, v)
		}
		vals[i] = val
	}
	if vals[0] <= 0 || vals[1] <= 0 {
		return geometry.Rect{}, fmt.Errorf("%w: %q", ErrBadGeometry, v)
	}
	return geometry.NewRect(vals[2], vals[3], vals[0], vals[1]), nil
}

// ParseGeometries reads a comma separated list of geometries.
func ParseGeometries(v string) ([]geometry.Rect, error) {
	var out []geometry.Rect
	for _, part := range strings.Split(v, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		r, err := ParseGeometry(part)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
