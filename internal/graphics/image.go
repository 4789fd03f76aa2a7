package graphics

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"scoreboard/internal/geometry"
)

// ErrorSquares is the number of checkerboard squares along the error image's height.
const ErrorSquares = 8

// Solid returns an image of the given size filled with c.
func Solid(size geometry.Size, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, max(size.Width, 0), max(size.Height, 0)))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

// ErrorImage returns the red and white checkerboard shown on displays with
// no usable side.
func ErrorImage(size geometry.Size) *image.RGBA {
	img := Solid(size, White)
	square := max(size.Height/ErrorSquares, 1)
	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			if (x/square+y/square)%2 == 0 {
				img.SetRGBA(x, y, Red)
			}
		}
	}
	return img
}

// Fit returns the largest size with src's aspect ratio that fits in bounds.
func Fit(src, bounds geometry.Size) geometry.Size {
	if src.Empty() || bounds.Empty() {
		return geometry.Size{}
	}
	if bounds.Ratio() > src.Ratio() {
		return geometry.NewSize(max(src.Width*bounds.Height/src.Height, 1), bounds.Height)
	}
	return geometry.NewSize(bounds.Width, max(src.Height*bounds.Width/src.Width, 1))
}

// FitLongest returns src resized so its larger dimension equals length,
// keeping the aspect ratio.
func FitLongest(src geometry.Size, length int) geometry.Size {
	if src.Empty() || length <= 0 {
		return geometry.Size{}
	}
	if src.Width >= src.Height {
		return geometry.NewSize(length, max(src.Height*length/src.Width, 1))
	}
	return geometry.NewSize(max(src.Width*length/src.Height, 1), length)
}

// Centered returns a rectangle of the given size centered in outer.
func Centered(size geometry.Size, outer geometry.Size) geometry.Rect {
	return geometry.NewRect((outer.Width-size.Width)/2, (outer.Height-size.Height)/2, size.Width, size.Height)
}

// SizeOf returns the extent of img.
func SizeOf(img image.Image) geometry.Size {
	if img == nil {
		return geometry.Size{}
	}
	b := img.Bounds()
	return geometry.NewSize(b.Dx(), b.Dy())
}

// ScaleTo resamples src to exactly size.
func ScaleTo(src image.Image, size geometry.Size) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, max(size.Width, 0), max(size.Height, 0)))
	if src == nil || size.Empty() {
		return dst
	}
	scaler := xdraw.Interpolator(xdraw.CatmullRom)
	if size.Width*size.Height > 1<<20 {
		scaler = xdraw.ApproxBiLinear
	}
	scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// BlendToward returns an opaque copy of src where every pixel is moved from
// bg toward its own color by alpha/255, weighted by the pixel's own alpha.
func BlendToward(src *image.NRGBA, bg color.Color, alpha uint8) *image.RGBA {
	b := toRGBA(bg)
	out := image.NewRGBA(src.Bounds())
	for y := src.Rect.Min.Y; y < src.Rect.Max.Y; y++ {
		for x := src.Rect.Min.X; x < src.Rect.Max.X; x++ {
			p := src.NRGBAAt(x, y)
			w := uint32(alpha) * uint32(p.A) / 255
			out.SetRGBA(x, y, color.RGBA{
				R: mix(b.R, p.R, w),
				G: mix(b.G, p.G, w),
				B: mix(b.B, p.B, w),
				A: 255,
			})
		}
	}
	return out
}

func mix(from, to uint8, w uint32) uint8 {
	f, t := float64(from), float64(to)
	return uint8(math.Round(f + (t-f)*float64(w)/255))
}

// DecodeImage reads any registered format: PNG, JPEG, GIF or WebP.
func DecodeImage(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// LoadImage opens and decodes an image file.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()
	return DecodeImage(f)
}
