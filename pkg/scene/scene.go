// Package scene assembles a camera, a world of shapes, and the emissive
// subset of that world (as a separate BVH for next-event estimation) into
// the aggregate the integrator and renderer operate on.
package scene

import (
	"github.com/df07/pathtracer/pkg/camera"
	"github.com/df07/pathtracer/pkg/core"
)

// Scene is everything needed to render a single image.
type Scene struct {
	Camera *camera.Camera
	World  *core.BVH // every shape, for primary/shadow-ray intersection
	Lights *core.BVH // the emissive subset only, for NEE sampling; nil if none

	Config core.SamplingConfig

	// Background is the flat color returned for rays that escape the scene
	// entirely. This is the default path; the zero value is (0,0,0).
	Background core.Vec3

	// GradientBackground, when true, replaces the flat Background with a
	// sky-gradient interpolation between BackgroundBottom and BackgroundTop
	// instead. Purely additive and off by default.
	GradientBackground bool
	BackgroundTop       core.Vec3
	BackgroundBottom    core.Vec3
}

// New builds a Scene's acceleration structures. shapes is every shape in the
// world; lights is the subset of those (or their constituent triangles, for
// a mesh where only some faces are emissive) that next-event estimation
// should sample directly. lights may be empty, in which case the integrator
// falls back to BSDF sampling alone.
func New(cam *camera.Camera, shapes []core.Shape, lights []core.Shape, config core.SamplingConfig) *Scene {
	s := &Scene{Camera: cam, Config: config, World: core.NewBVH(shapes)}
	if len(lights) > 0 {
		s.Lights = core.NewBVH(lights)
	}
	return s
}

// BackgroundColor returns the color for a ray that escapes the scene
// entirely: the flat Background color by default, or a top/bottom sky
// gradient interpolated by the ray's vertical direction when
// GradientBackground is enabled.
func (s *Scene) BackgroundColor(ray core.Ray) core.Vec3 {
	if !s.GradientBackground {
		return s.Background
	}
	unit := ray.Direction.Normalize()
	t := 0.5 * (unit.Y + 1.0)
	return s.BackgroundBottom.Multiply(1 - t).Add(s.BackgroundTop.Multiply(t))
}
