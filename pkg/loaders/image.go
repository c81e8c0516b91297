// Package loaders reads scene data from disk: texture images, OBJ/glTF
// meshes, XML scene parameters, and YAML render configuration.
package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder

	"github.com/df07/pathtracer/pkg/core"
)

// maxTextureDimension caps a loaded texture's largest side; source images
// beyond this are bilinearly downscaled on load rather than kept at full
// resolution, since nothing in this renderer mip-maps textures and an
// oversized source only costs memory and cache misses during shading.
const maxTextureDimension = 4096

// ImageData is a decoded image as a flat Vec3 buffer, still sRGB-encoded —
// material.NewImageTexture performs the linearization, so this loader can be
// reused for anything that wants raw decoded samples.
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// LoadImage loads a PNG, JPEG, BMP or TIFF image into an ImageData.
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %q: %w", filename, err)
	}
	img = downscaleIfOversized(img)

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return &ImageData{Width: width, Height: height, Pixels: pixels}, nil
}

// downscaleIfOversized bilinearly resamples img down to maxTextureDimension
// on its longest side, preserving aspect ratio, or returns img unchanged if
// it's already within bounds.
func downscaleIfOversized(img image.Image) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxTextureDimension && h <= maxTextureDimension {
		return img
	}

	scale := float64(maxTextureDimension) / float64(w)
	if hScale := float64(maxTextureDimension) / float64(h); hScale < scale {
		scale = hScale
	}
	newW := int(float64(w) * scale)
	newH := int(float64(h) * scale)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
