package material

import (
	"math"

	"github.com/df07/pathtracer/pkg/core"
)

// phongMixtureWeights returns the diffuse/specular sampling mixture
// (pkd, pks) for a given shininess. A shininess of 1 or below collapses the
// specular lobe to a uniform hemisphere (indistinguishable from the diffuse
// lobe's own cosine-weighted sampling), so the material samples pure
// diffuse; above that it uses a fixed 0.6/0.4 split regardless of the
// material's own albedo/specular color — it does not rebalance toward
// energy conservation, matching this renderer's historical Phong
// implementation rather than a physically-normalized split.
func phongMixtureWeights(shininess float64) (pkd, pks float64) {
	if shininess <= 1 {
		return 1, 0
	}
	return 0.6, 0.4
}

// PhongReflectance is a modified Phong material: a diffuse lobe mixed with a
// specular lobe centered on the mirror reflection direction, sampled
// Lafortune-style (cos^n(α) about the reflection vector).
type PhongReflectance struct {
	Diffuse   core.Texture
	Specular  core.Vec3
	Shininess float64
}

// NewPhongReflectance creates a modified-Phong material from a solid diffuse color.
func NewPhongReflectance(diffuse, specular core.Vec3, shininess float64) *PhongReflectance {
	return &PhongReflectance{Diffuse: NewSolidColor(diffuse), Specular: specular, Shininess: shininess}
}

// NewPhongReflectanceTextured creates a modified-Phong material from an arbitrary diffuse texture.
func NewPhongReflectanceTextured(diffuse core.Texture, specular core.Vec3, shininess float64) *PhongReflectance {
	return &PhongReflectance{Diffuse: diffuse, Specular: specular, Shininess: shininess}
}

// Sample implements core.Material
func (p *PhongReflectance) Sample(wo core.Vec3, hit core.HitRecord, sampler *core.Sampler) (core.ScatterResult, bool) {
	if wo.Z <= 0 {
		return core.ScatterResult{}, false
	}

	r := reflectLocal(wo)
	pkd, _ := phongMixtureWeights(p.Shininess)
	var wi core.Vec3

	if sampler.Float64() < pkd {
		wi, _ = core.SampleCosineHemisphere(sampler.Vec2())
	} else {
		wi = p.sampleLobe(r, sampler)
	}

	if wi.Z <= 0 {
		return core.ScatterResult{}, false
	}

	pdf := p.PDF(wo, wi, hit)
	if pdf <= 0 {
		return core.ScatterResult{}, false
	}

	return core.ScatterResult{
		Direction: wi,
		Value:     p.Eval(wo, wi, hit),
		PDF:       pdf,
	}, true
}

// Eval implements core.Material, deterministically summing the diffuse and
// specular lobe contributions rather than evaluating only whichever lobe a
// random draw picked.
func (p *PhongReflectance) Eval(wo, wi core.Vec3, hit core.HitRecord) core.Vec3 {
	if wi.Z <= 0 {
		return core.Vec3{}
	}

	diffuse := p.Diffuse.Value(hit.U, hit.V, hit.Point).Multiply(1.0 / math.Pi)

	r := reflectLocal(wo)
	cosAlpha := math.Max(0, r.Dot(wi))
	n := p.Shininess
	specular := p.Specular.Multiply((n + 2) / (2 * math.Pi) * math.Pow(cosAlpha, n))

	return diffuse.Add(specular)
}

// PDF implements core.Material as the (pkd, pks) mixture of the cosine
// hemisphere PDF and the Phong lobe PDF.
func (p *PhongReflectance) PDF(wo, wi core.Vec3, hit core.HitRecord) float64 {
	if wi.Z <= 0 {
		return 0
	}
	r := reflectLocal(wo)
	pkd, pks := phongMixtureWeights(p.Shininess)
	diffusePDF := core.CosineHemispherePDF(wi.Z)
	specularPDF := phongLobePDF(r, wi, p.Shininess)
	return pkd*diffusePDF + pks*specularPDF
}

// Emitted implements core.Material
func (p *PhongReflectance) Emitted(hit core.HitRecord) core.Vec3 {
	return core.Vec3{}
}

// SkipLightSampling implements core.Material. At Shininess <= 1 the material
// samples pure diffuse, so NEE stays on; above that the specular lobe takes
// over the mixture and light sampling is skipped in favor of BSDF sampling.
func (p *PhongReflectance) SkipLightSampling() bool {
	return p.Shininess > 1
}

// reflectLocal mirrors wo about the local-frame normal (+Z).
func reflectLocal(wo core.Vec3) core.Vec3 {
	return core.NewVec3(-wo.X, -wo.Y, wo.Z)
}

// sampleLobe draws a direction from a cos^n(α) lobe centered on r.
func (p *PhongReflectance) sampleLobe(r core.Vec3, sampler *core.Sampler) core.Vec3 {
	u := sampler.Vec2()
	n := p.Shininess

	cosAlpha := math.Pow(u.X, 1/(n+1))
	sinAlpha := math.Sqrt(max(0, 1-cosAlpha*cosAlpha))
	phi := 2 * math.Pi * u.Y

	local := core.NewVec3(sinAlpha*math.Cos(phi), sinAlpha*math.Sin(phi), cosAlpha)
	frame := core.NewLocalFrame(r, core.Vec3{})
	return frame.LocalToWorld(local)
}

// phongLobePDF returns the cos^n(α) lobe's PDF for wi given lobe axis r.
func phongLobePDF(r, wi core.Vec3, n float64) float64 {
	cosAlpha := math.Max(0, r.Dot(wi))
	return (n + 1) / (2 * math.Pi) * math.Pow(cosAlpha, n)
}
