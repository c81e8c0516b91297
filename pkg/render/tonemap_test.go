package render

import (
	"math"
	"testing"

	"github.com/df07/pathtracer/pkg/core"
)

func TestSRGBRoundTripIsIdempotent(t *testing.T) {
	for i := 0; i <= 20; i++ {
		x := float64(i) / 20.0
		back := sRGBToLinear(linearToSRGB(x))
		if math.Abs(back-x) > 1e-6 {
			t.Errorf("round trip for %v gave %v", x, back)
		}
	}
}

func TestToneMapChannelHandlesNaNAndClamp(t *testing.T) {
	if v := toneMapChannel(math.NaN()); v != 0 {
		t.Errorf("expected NaN to tone-map to 0, got %v", v)
	}
	if v := toneMapChannel(-1.0); v != 0 {
		t.Errorf("expected negative input to clamp to 0, got %v", v)
	}
	if v := toneMapChannel(1000.0); v == 0 {
		t.Error("expected a large input to clamp to near-white, not 0")
	}
}

func TestBufferSetAndAtRoundTrip(t *testing.T) {
	buf := NewBuffer(4, 3)
	c := core.NewVec3(0.1, 0.2, 0.3)
	buf.Set(2, 1, c)
	if got := buf.At(2, 1); got != c {
		t.Errorf("expected %v, got %v", c, got)
	}
}

func TestToImageProducesCorrectDimensions(t *testing.T) {
	buf := NewBuffer(8, 5)
	img := buf.ToImage()
	bounds := img.Bounds()
	if bounds.Dx() != 8 || bounds.Dy() != 5 {
		t.Errorf("expected an 8x5 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}
