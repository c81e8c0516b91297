// Package integrator implements light transport: turning a primary ray and
// a scene into a pixel color.
package integrator

import (
	"github.com/df07/pathtracer/pkg/core"
	"github.com/df07/pathtracer/pkg/scene"
)

// Integrator computes the radiance arriving along a single ray.
type Integrator interface {
	RayColor(ray core.Ray, sc *scene.Scene, sampler *core.Sampler) core.Vec3
}
