// Package fontutil maps logical font sizes to pixels.
package fontutil

// Reference is the logical size that fills a display's full height.
const Reference = 75

// Scale returns the pixel size for a logical font size on a display of the
// given height. The result is never below 1.
func Scale(displayHeight int, size float64) int {
	px := int(float64(displayHeight) * size / Reference)
	if px < 1 {
		return 1
	}
	return px
}
