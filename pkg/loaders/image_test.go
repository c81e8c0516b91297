package loaders

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTempPNG(t *testing.T, name string, width, height int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp PNG: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode temp PNG: %v", err)
	}
	return path
}

func TestLoadImageDecodesPNGDimensions(t *testing.T) {
	path := writeTempPNG(t, "small.png", 8, 4)
	data, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if data.Width != 8 || data.Height != 4 {
		t.Errorf("expected 8x4, got %dx%d", data.Width, data.Height)
	}
	if len(data.Pixels) != 32 {
		t.Errorf("expected 32 pixels, got %d", len(data.Pixels))
	}
}

func TestDownscaleIfOversizedPreservesAspectRatio(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, maxTextureDimension*2, maxTextureDimension))
	scaled := downscaleIfOversized(img)
	b := scaled.Bounds()
	if b.Dx() != maxTextureDimension {
		t.Errorf("expected width capped at %d, got %d", maxTextureDimension, b.Dx())
	}
	if b.Dy() != maxTextureDimension/2 {
		t.Errorf("expected height scaled proportionally to %d, got %d", maxTextureDimension/2, b.Dy())
	}
}

func TestDownscaleIfOversizedLeavesSmallImagesUnchanged(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 32))
	result := downscaleIfOversized(img)
	if result != image.Image(img) {
		t.Error("expected an already-small image to be returned unchanged")
	}
}

func TestLoadImageMissingFileErrors(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected an error for a missing image file")
	}
}
