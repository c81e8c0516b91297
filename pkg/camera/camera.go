// Package camera implements the renderer's view transform: building an
// orthonormal basis from eye/lookAt/up and generating primary rays through
// pixel centers (or jittered pixel samples when enabled), with optional
// thin-lens depth of field.
package camera

import (
	"math"

	"github.com/df07/pathtracer/pkg/core"
)

// Config describes a camera's placement and lens parameters.
type Config struct {
	Center        core.Vec3 // eye position
	LookAt        core.Vec3
	Up            core.Vec3
	Width         int
	AspectRatio   float64
	VFov          float64 // vertical field of view, in degrees
	Aperture      float64 // defocus cone angle, in degrees; 0 disables depth of field
	FocusDistance float64 // 0 auto-computes from Center/LookAt distance

	// Jitter enables sub-pixel antialiasing jitter on GetRay. Off by
	// default: the zero value gives deterministic pixel-center rays.
	Jitter bool
}

// Camera generates primary rays for a fixed image plane.
type Camera struct {
	config Config
	Height int

	pixel00Loc   core.Vec3
	pixelDeltaU  core.Vec3
	pixelDeltaV  core.Vec3
	defocusDiskU core.Vec3
	defocusDiskV core.Vec3
	hasDefocus   bool
}

// New builds a Camera from config.
func New(config Config) *Camera {
	height := int(float64(config.Width) / config.AspectRatio)
	if height < 1 {
		height = 1
	}

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.Center.Subtract(config.LookAt).Length()
	}

	theta := config.VFov * math.Pi / 180
	viewportHeight := 2 * math.Tan(theta/2) * focusDistance
	viewportWidth := viewportHeight * (float64(config.Width) / float64(height))

	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Multiply(1.0 / float64(config.Width))
	pixelDeltaV := viewportV.Multiply(1.0 / float64(height))

	viewportUpperLeft := config.Center.
		Subtract(w.Multiply(focusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00Loc := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := focusDistance * math.Tan((config.Aperture/2)*math.Pi/180)

	return &Camera{
		config:       config,
		Height:       height,
		pixel00Loc:   pixel00Loc,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
		hasDefocus:   config.Aperture > 0,
	}
}

// Width returns the image width in pixels.
func (c *Camera) Width() int {
	return c.config.Width
}

// GetRay generates a primary ray through pixel (i, j): through the
// deterministic pixel center by default, or jittered within the pixel
// footprint for antialiasing when config.Jitter is enabled. If the lens
// has nonzero aperture, the ray's origin is also jittered across the lens
// for depth of field, independent of pixel jitter.
func (c *Camera) GetRay(i, j int, sampler *core.Sampler) core.Ray {
	offset := core.NewVec2(0.5, 0.5)
	if c.config.Jitter {
		offset = sampler.Vec2()
	}
	px := float64(i) + offset.X - 0.5
	py := float64(j) + offset.Y - 0.5

	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(px)).
		Add(c.pixelDeltaV.Multiply(py))

	origin := c.config.Center
	if c.hasDefocus {
		origin = c.defocusDiskSample(sampler)
	}

	direction := pixelSample.Subtract(origin).Normalize()
	return core.NewRay(origin, direction)
}

func (c *Camera) defocusDiskSample(sampler *core.Sampler) core.Vec3 {
	d := core.SampleUniformDiskConcentric(sampler.Vec2())
	return c.config.Center.Add(c.defocusDiskU.Multiply(d.X)).Add(c.defocusDiskV.Multiply(d.Y))
}
