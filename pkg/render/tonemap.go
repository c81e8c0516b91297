package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/df07/pathtracer/pkg/core"
)

// Buffer is the linear color accumulator one renderer pass writes into,
// width*height Vec3 radiance values in row-major order.
type Buffer struct {
	Width, Height int
	Pixels        []core.Vec3
}

// NewBuffer allocates a zeroed linear color buffer.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{Width: width, Height: height, Pixels: make([]core.Vec3, width*height)}
}

// Set stores the averaged radiance for pixel (x, y).
func (b *Buffer) Set(x, y int, c core.Vec3) {
	b.Pixels[y*b.Width+x] = c
}

// At returns the averaged radiance for pixel (x, y).
func (b *Buffer) At(x, y int) core.Vec3 {
	return b.Pixels[y*b.Width+x]
}

// linearToSRGB applies the piecewise linear->sRGB transfer function to a
// single channel already clamped to (0, 0.9999).
func linearToSRGB(c float64) float64 {
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}

// sRGBToLinear is linearToSRGB's inverse, used only by tests to check
// image-writer idempotence.
func sRGBToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// toneMapChannel replaces NaN with 0, clamps to (0, 0.9999), applies the
// sRGB transfer function, and quantizes to an 8-bit channel value.
func toneMapChannel(c float64) uint8 {
	if math.IsNaN(c) {
		c = 0
	}
	if c < 0 {
		c = 0
	}
	if c > 0.9999 {
		c = 0.9999
	}
	return uint8(256 * linearToSRGB(c))
}

// ToImage tone-maps the linear buffer into an 8-bit RGBA image ready for
// PNG encoding.
func (b *Buffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			c := b.At(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: toneMapChannel(c.X),
				G: toneMapChannel(c.Y),
				B: toneMapChannel(c.Z),
				A: 255,
			})
		}
	}
	return img
}

// WritePNG tone-maps the buffer and writes it to filename as an 8-bit PNG.
func WritePNG(b *Buffer, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", filename, err)
	}
	defer file.Close()

	if err := png.Encode(file, b.ToImage()); err != nil {
		return fmt.Errorf("failed to encode PNG %q: %w", filename, err)
	}
	return nil
}
