package ui

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"scoreboard/internal/format"
	"scoreboard/internal/graphics"
)

// parseIntOrDefault attempts to parse a string as an integer.
// Returns the parsed value or defaultValue if parsing fails.
func parseIntOrDefault(s string, defaultValue int) int {
	if s == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return defaultValue
	}
	return val
}

// parseFontSize parses a logical font size. Sizes outside (0, 200] fall back
// to defaultValue.
func parseFontSize(s string, defaultValue float64) float64 {
	val, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || val <= 0 || val > 200 {
		return defaultValue
	}
	return val
}

// parseColor parses a color name or hex string for the named field.
func parseColor(s, fieldName string) (color.RGBA, error) {
	if strings.TrimSpace(s) == "" {
		return color.RGBA{}, fmt.Errorf("%s cannot be empty", fieldName)
	}
	c, err := graphics.Parse(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%s: %w", fieldName, err)
	}
	return c, nil
}

// parseClock parses a clock length and rejects zero.
func parseClock(s string) (time.Duration, error) {
	if strings.TrimSpace(s) == "" {
		return 0, fmt.Errorf("clock cannot be empty")
	}
	d, err := format.ParseClock(s)
	if err != nil {
		return 0, err
	}
	if d == 0 {
		return 0, fmt.Errorf("clock must be longer than 0:00")
	}
	return d, nil
}
