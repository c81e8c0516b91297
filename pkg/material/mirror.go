package material

import (
	"github.com/df07/pathtracer/pkg/core"
)

// PerfectMirror is a delta-distribution specular reflector: it always
// scatters along the perfect reflection direction, with no fuzz and no PDF
// (next-event estimation is always skipped for it).
type PerfectMirror struct {
	Albedo core.Vec3
}

// NewPerfectMirror creates a perfect mirror material
func NewPerfectMirror(albedo core.Vec3) *PerfectMirror {
	return &PerfectMirror{Albedo: albedo}
}

// Sample implements core.Material. In the local shading frame the perfect
// reflection of wo about the normal (+Z) simply negates X and Y.
func (m *PerfectMirror) Sample(wo core.Vec3, hit core.HitRecord, sampler *core.Sampler) (core.ScatterResult, bool) {
	wi := core.NewVec3(-wo.X, -wo.Y, wo.Z)
	if wi.Z <= 0 {
		return core.ScatterResult{}, false
	}
	// Value carries a 1/cosθ factor so the integrator's f*cosθ/pdf weight
	// cancels to exactly Albedo, independent of the incidence angle.
	return core.ScatterResult{
		Direction: wi,
		Value:     m.Albedo.Multiply(1.0 / wi.Z),
		PDF:       1,
		Specular:  true,
	}, true
}

// Eval implements core.Material. A delta distribution contributes nothing to
// externally-chosen directions (next-event estimation toward a light sample
// almost never lands exactly on the reflection vector).
func (m *PerfectMirror) Eval(wo, wi core.Vec3, hit core.HitRecord) core.Vec3 {
	return core.Vec3{}
}

// PDF implements core.Material; a delta BSDF has no well-defined density
// against an externally chosen direction.
func (m *PerfectMirror) PDF(wo, wi core.Vec3, hit core.HitRecord) float64 {
	return 0
}

// Emitted implements core.Material
func (m *PerfectMirror) Emitted(hit core.HitRecord) core.Vec3 {
	return core.Vec3{}
}

// SkipLightSampling implements core.Material; sampling the lights BVH from a
// mirror surface wastes every sample, since the BSDF value for any direction
// other than the exact reflection vector is zero.
func (m *PerfectMirror) SkipLightSampling() bool {
	return true
}
