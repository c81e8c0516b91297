package material

import (
	"github.com/df07/pathtracer/pkg/core"
)

// DiffuseLight is a pure emitter: it never scatters, only emits a constant
// radiance toward every direction above the surface.
type DiffuseLight struct {
	Emission core.Vec3
}

// NewDiffuseLight creates a diffuse area-light material
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

// Sample implements core.Material; emitters never scatter incident rays.
func (e *DiffuseLight) Sample(wo core.Vec3, hit core.HitRecord, sampler *core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// Eval implements core.Material
func (e *DiffuseLight) Eval(wo, wi core.Vec3, hit core.HitRecord) core.Vec3 {
	return core.Vec3{}
}

// PDF implements core.Material
func (e *DiffuseLight) PDF(wo, wi core.Vec3, hit core.HitRecord) float64 {
	return 0
}

// Emitted implements core.Material. Only the front face emits; looking at
// the back of an area light sees nothing.
func (e *DiffuseLight) Emitted(hit core.HitRecord) core.Vec3 {
	if !hit.FrontFace {
		return core.Vec3{}
	}
	return e.Emission
}

// SkipLightSampling implements core.Material
func (e *DiffuseLight) SkipLightSampling() bool {
	return false
}

// DebugMaterial renders the hit's world-space shading normal (remapped to
// [0,1] per channel) as emitted color instead of shading, for visualizing
// surface normals directly in a rendered image rather than through a
// separate tool.
type DebugMaterial struct{}

// NewDebugMaterial creates a normal-visualization material
func NewDebugMaterial() *DebugMaterial {
	return &DebugMaterial{}
}

// Sample implements core.Material; debug surfaces don't scatter.
func (d *DebugMaterial) Sample(wo core.Vec3, hit core.HitRecord, sampler *core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// Eval implements core.Material
func (d *DebugMaterial) Eval(wo, wi core.Vec3, hit core.HitRecord) core.Vec3 {
	return core.Vec3{}
}

// PDF implements core.Material
func (d *DebugMaterial) PDF(wo, wi core.Vec3, hit core.HitRecord) float64 {
	return 0
}

// Emitted implements core.Material, mapping the world-space normal's
// [-1, 1] components into a visible [0, 1] color.
func (d *DebugMaterial) Emitted(hit core.HitRecord) core.Vec3 {
	n := hit.Normal
	return core.NewVec3((n.X+1)*0.5, (n.Y+1)*0.5, (n.Z+1)*0.5)
}

// SkipLightSampling implements core.Material
func (d *DebugMaterial) SkipLightSampling() bool {
	return false
}
