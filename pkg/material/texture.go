package material

import (
	"math"

	"github.com/df07/pathtracer/pkg/core"
)

// SolidColor is a core.Texture that returns the same color everywhere.
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a solid-color texture
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Value implements core.Texture
func (s *SolidColor) Value(u, v float64, p core.Vec3) core.Vec3 {
	return s.Color
}

// ImageTexture samples color from a decoded image, bilinearly interpolated
// and decoded from sRGB to linear light on load (srgbToLinear is applied once
// in NewImageTexture, never per-sample).
type ImageTexture struct {
	Width, Height int
	Pixels        []core.Vec3 // row-major, linear light: Pixels[y*Width+x]
}

// NewImageTexture builds an ImageTexture from sRGB-encoded pixel values in
// [0, 1] (as produced by loaders.LoadImage), converting every texel to
// linear light once up front.
func NewImageTexture(width, height int, srgbPixels []core.Vec3) *ImageTexture {
	linear := make([]core.Vec3, len(srgbPixels))
	for i, c := range srgbPixels {
		linear[i] = core.NewVec3(srgbToLinear(c.X), srgbToLinear(c.Y), srgbToLinear(c.Z))
	}
	return &ImageTexture{Width: width, Height: height, Pixels: linear}
}

func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// Value implements core.Texture, bilinearly filtering the four nearest
// texels after wrapping u/v to [0, 1).
func (t *ImageTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	u = wrapUnit(u)
	v = wrapUnit(v)

	// V=0 is the bottom of the texture, V=1 the top; image rows run
	// top-to-bottom, so flip before mapping to pixel space.
	fx := u*float64(t.Width) - 0.5
	fy := (1.0-v)*float64(t.Height) - 0.5

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	c00 := t.at(x0, y0)
	c10 := t.at(x0+1, y0)
	c01 := t.at(x0, y0+1)
	c11 := t.at(x0+1, y0+1)

	top := c00.Multiply(1 - tx).Add(c10.Multiply(tx))
	bottom := c01.Multiply(1 - tx).Add(c11.Multiply(tx))
	return top.Multiply(1 - ty).Add(bottom.Multiply(ty))
}

func (t *ImageTexture) at(x, y int) core.Vec3 {
	x = clampInt(x, 0, t.Width-1)
	y = clampInt(y, 0, t.Height-1)
	return t.Pixels[y*t.Width+x]
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func wrapUnit(x float64) float64 {
	x -= math.Floor(x)
	return x
}
