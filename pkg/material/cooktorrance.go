package material

import (
	"math"

	"github.com/df07/pathtracer/pkg/core"
)

// CookTorrance is an anisotropic GGX microfacet conductor: a Cook-Torrance
// specular BSDF using the Trowbridge-Reitz (GGX) normal distribution, Smith
// joint masking-shadowing, a complex-IOR Fresnel term, and visible-normal
// importance sampling (Heitz 2018) rather than sampling the NDF directly.
// Albedo tints the conductor's reflectance on top of the Fresnel response,
// so a textured conductor can vary color across its surface.
type CookTorrance struct {
	Albedo         core.Texture
	AlphaX, AlphaY float64   // GGX roughness along the local tangent/bitangent
	IOR, K         core.Vec3 // complex refractive index (per color channel): n + ik
}

// NewCookTorrance creates an anisotropic GGX conductor material with a solid albedo tint.
func NewCookTorrance(albedo core.Vec3, alphaX, alphaY float64, ior, k core.Vec3) *CookTorrance {
	return &CookTorrance{Albedo: NewSolidColor(albedo), AlphaX: clampAlpha(alphaX), AlphaY: clampAlpha(alphaY), IOR: ior, K: k}
}

// NewCookTorranceTextured creates an anisotropic GGX conductor material with an arbitrary albedo texture.
func NewCookTorranceTextured(albedo core.Texture, alphaX, alphaY float64, ior, k core.Vec3) *CookTorrance {
	return &CookTorrance{Albedo: albedo, AlphaX: clampAlpha(alphaX), AlphaY: clampAlpha(alphaY), IOR: ior, K: k}
}

func clampAlpha(a float64) float64 {
	return math.Max(1e-4, a)
}

// Sample implements core.Material, drawing wi by importance-sampling the
// visible normal distribution and reflecting wo about it.
func (c *CookTorrance) Sample(wo core.Vec3, hit core.HitRecord, sampler *core.Sampler) (core.ScatterResult, bool) {
	if wo.Z <= 0 {
		return core.ScatterResult{}, false
	}

	wm := c.sampleVisibleNormal(wo, sampler.Vec2())
	wi := reflectAbout(wo, wm)
	if wi.Z <= 0 {
		return core.ScatterResult{}, false
	}

	pdf := c.pdfHalfVector(wo, wm) / (4 * wo.Dot(wm))
	if pdf <= 0 {
		return core.ScatterResult{}, false
	}

	return core.ScatterResult{
		Direction: wi,
		Value:     c.eval(wo, wi, wm, hit),
		PDF:       pdf,
		Specular:  c.isNearSpecular(),
	}, true
}

// Eval implements core.Material
func (c *CookTorrance) Eval(wo, wi core.Vec3, hit core.HitRecord) core.Vec3 {
	if wo.Z <= 0 || wi.Z <= 0 {
		return core.Vec3{}
	}
	wm := wo.Add(wi).Normalize()
	return c.eval(wo, wi, wm, hit)
}

func (c *CookTorrance) eval(wo, wi, wm core.Vec3, hit core.HitRecord) core.Vec3 {
	d := c.distribution(wm)
	g := c.smithG(wo, wi)
	f := c.fresnelConductor(math.Max(0, wi.Dot(wm)))
	tint := c.Albedo.Value(hit.U, hit.V, hit.Point)

	denom := 4 * math.Abs(wo.Z) * math.Abs(wi.Z)
	if denom <= 0 {
		return core.Vec3{}
	}
	return f.MultiplyVec(tint).Multiply(d * g / denom)
}

// PDF implements core.Material, the visible-normal-sampling density
// converted from half-vector space to solid-angle-about-wi space.
func (c *CookTorrance) PDF(wo, wi core.Vec3, hit core.HitRecord) float64 {
	if wo.Z <= 0 || wi.Z <= 0 {
		return 0
	}
	wm := wo.Add(wi).Normalize()
	denom := 4 * wo.Dot(wm)
	if denom <= 0 {
		return 0
	}
	return c.pdfHalfVector(wo, wm) / denom
}

// Emitted implements core.Material
func (c *CookTorrance) Emitted(hit core.HitRecord) core.Vec3 {
	return core.Vec3{}
}

// SkipLightSampling implements core.Material; once the roughness is small
// enough that the lobe is effectively a delta distribution, next-event
// estimation toward an arbitrary light sample almost never lands inside it.
func (c *CookTorrance) SkipLightSampling() bool {
	return c.isNearSpecular()
}

func (c *CookTorrance) isNearSpecular() bool {
	return (c.AlphaX+c.AlphaY)/2 < 0.02
}

// distribution is the anisotropic Trowbridge-Reitz (GGX) normal distribution.
func (c *CookTorrance) distribution(wm core.Vec3) float64 {
	if wm.Z <= 0 {
		return 0
	}
	tan2 := (wm.X*wm.X)/(c.AlphaX*c.AlphaX) + (wm.Y*wm.Y)/(c.AlphaY*c.AlphaY)
	cos4 := wm.Z * wm.Z * wm.Z * wm.Z
	e := 1 + tan2/(wm.Z*wm.Z)
	return 1 / (math.Pi * c.AlphaX * c.AlphaY * cos4 * e * e)
}

// lambda is the Smith masking auxiliary function for direction w.
func (c *CookTorrance) lambda(w core.Vec3) float64 {
	if w.Z == 0 {
		return 0
	}
	cos2 := w.Z * w.Z
	sin2 := math.Max(0, 1-cos2)
	tan2 := sin2 / cos2
	if math.IsInf(tan2, 1) {
		return 0
	}
	alpha2 := (w.X*w.X*c.AlphaX*c.AlphaX + w.Y*w.Y*c.AlphaY*c.AlphaY) / math.Max(1e-12, w.X*w.X+w.Y*w.Y)
	return (math.Sqrt(1+alpha2*tan2) - 1) / 2
}

func (c *CookTorrance) g1(w core.Vec3) float64 {
	return 1 / (1 + c.lambda(w))
}

// smithG is the Smith joint masking-shadowing term for a reflection pair.
func (c *CookTorrance) smithG(wo, wi core.Vec3) float64 {
	return 1 / (1 + c.lambda(wo) + c.lambda(wi))
}

// pdfHalfVector is the visible-normal distribution's density over wm.
func (c *CookTorrance) pdfHalfVector(wo, wm core.Vec3) float64 {
	if wo.Z <= 0 {
		return 0
	}
	return c.g1(wo) * math.Max(0, wo.Dot(wm)) * c.distribution(wm) / wo.Z
}

// sampleVisibleNormal draws a microfacet normal from the distribution of
// normals visible from wo, per Heitz 2018 ("Sampling the GGX Distribution of
// Visible Normals"), generalized to anisotropic alpha_x/alpha_y.
func (c *CookTorrance) sampleVisibleNormal(wo core.Vec3, u core.Vec2) core.Vec3 {
	// Transform wo to the hemisphere configuration (stretch by alpha).
	wh := core.NewVec3(c.AlphaX*wo.X, c.AlphaY*wo.Y, wo.Z).Normalize()
	if wh.Z < 0 {
		wh = wh.Negate()
	}

	// Build an orthonormal basis around wh.
	t1 := core.NewVec3(0, 0, 1).Cross(wh)
	if t1.LengthSquared() < 1e-12 {
		t1 = core.NewVec3(1, 0, 0)
	} else {
		t1 = t1.Normalize()
	}
	t2 := wh.Cross(t1)

	// Sample a point on the projected disk, with a higher density toward
	// the pole that a non-squashed hemisphere sample would favor.
	r := math.Sqrt(u.X)
	phi := 2 * math.Pi * u.Y
	p1 := r * math.Cos(phi)
	p2raw := r * math.Sin(phi)
	s := 0.5 * (1 + wh.Z)
	p2 := (1-s)*math.Sqrt(max(0, 1-p1*p1)) + s*p2raw

	pz := math.Sqrt(max(0, 1-p1*p1-p2*p2))
	nh := t1.Multiply(p1).Add(t2.Multiply(p2)).Add(wh.Multiply(pz))

	// Unstretch back to the ellipsoid configuration and renormalize.
	return core.NewVec3(c.AlphaX*nh.X, c.AlphaY*nh.Y, math.Max(1e-6, nh.Z)).Normalize()
}

func reflectAbout(w, n core.Vec3) core.Vec3 {
	return n.Multiply(2 * w.Dot(n)).Subtract(w)
}

// fresnelConductor evaluates the Fresnel reflectance of a conductor with
// complex IOR n+ik at the given cosine of the incidence angle, per channel.
func (c *CookTorrance) fresnelConductor(cosTheta float64) core.Vec3 {
	return core.NewVec3(
		fresnelConductorChannel(cosTheta, c.IOR.X, c.K.X),
		fresnelConductorChannel(cosTheta, c.IOR.Y, c.K.Y),
		fresnelConductorChannel(cosTheta, c.IOR.Z, c.K.Z),
	)
}

func fresnelConductorChannel(cosTheta, n, k float64) float64 {
	cos2 := cosTheta * cosTheta
	sin2 := 1 - cos2
	n2 := n * n
	k2 := k * k

	t0 := n2 - k2 - sin2
	a2plusb2 := math.Sqrt(math.Max(0, t0*t0+4*n2*k2))
	t1 := a2plusb2 + cos2
	a := math.Sqrt(math.Max(0, 0.5*(a2plusb2+t0)))
	t2 := 2 * a * cosTheta
	rs := (t1 - t2) / (t1 + t2)

	t3 := cos2*a2plusb2 + sin2*sin2
	t4 := t2 * sin2
	rp := rs * (t3 - t4) / (t3 + t4)

	return 0.5 * (rs + rp)
}
