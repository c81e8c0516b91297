package material

import (
	"math"

	"github.com/df07/pathtracer/pkg/core"
)

// Lambertian is a perfectly diffuse material: its BSDF is a constant
// albedo/π over the hemisphere, sampled cosine-weighted.
type Lambertian struct {
	Albedo core.Texture
}

// NewLambertian creates a Lambertian material from a solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewLambertianTextured creates a Lambertian material from an arbitrary texture
func NewLambertianTextured(albedo core.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Sample implements core.Material
func (l *Lambertian) Sample(wo core.Vec3, hit core.HitRecord, sampler *core.Sampler) (core.ScatterResult, bool) {
	if wo.Z <= 0 {
		return core.ScatterResult{}, false
	}

	wi, pdf := core.SampleCosineHemisphere(sampler.Vec2())
	return core.ScatterResult{
		Direction: wi,
		Value:     l.bsdf(hit),
		PDF:       pdf,
	}, true
}

// Eval implements core.Material
func (l *Lambertian) Eval(wo, wi core.Vec3, hit core.HitRecord) core.Vec3 {
	if wi.Z <= 0 {
		return core.Vec3{}
	}
	return l.bsdf(hit)
}

// PDF implements core.Material
func (l *Lambertian) PDF(wo, wi core.Vec3, hit core.HitRecord) float64 {
	if wi.Z <= 0 {
		return 0
	}
	return core.CosineHemispherePDF(wi.Z)
}

// Emitted implements core.Material
func (l *Lambertian) Emitted(hit core.HitRecord) core.Vec3 {
	return core.Vec3{}
}

// SkipLightSampling implements core.Material
func (l *Lambertian) SkipLightSampling() bool {
	return false
}

func (l *Lambertian) bsdf(hit core.HitRecord) core.Vec3 {
	return l.Albedo.Value(hit.U, hit.V, hit.Point).Multiply(1.0 / math.Pi)
}
