package core

// Logger is the narrow logging surface used throughout the renderer. The CLI
// wires a concrete implementation (stdlib log.Logger); tests and library
// callers are free to pass nil, which every logf call site treats as "don't
// log".
type Logger interface {
	Printf(format string, args ...any)
}

// Shape is anything a ray can be intersected against and that can report an
// AABB. Triangle, the TriangleMesh/PrimitiveList aggregates and BVH are the
// only implementations — there is no open shape hierarchy.
type Shape interface {
	Hit(ray Ray, tRange Interval) (HitRecord, bool)
	BoundingBox() AABB
	Area() float64

	// Sample returns a point on the shape's surface (uniform by area on a
	// Triangle; BVH, and TriangleMesh through its BVH, choose a child with
	// the sqrt(u) skew described on BVH.Sample), the outward surface normal
	// there, and the material's emitted radiance
	// at that point (zero for non-emissive shapes). Used by the BVH's
	// area-weighted light sampling, which needs the emission value without
	// re-deriving a full HitRecord for a point it already knows isn't on a
	// traced ray.
	Sample(sampler *Sampler) (point, normal, emission Vec3)
}

// HitRecord describes the geometric and material state at a ray/shape
// intersection.
type HitRecord struct {
	Point     Vec3
	Normal    Vec3 // shading normal, oriented against the incoming ray by SetFaceNormal
	T         float64
	U, V      float64
	FrontFace bool
	Material  Material
}

// SetFaceNormal orients Normal to face against the incoming ray, and records
// whether the hit was on the geometric front face. outwardNormal must be
// unit length.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// ScatterResult is what a Material's Sample produces: an outgoing direction,
// the BSDF value for that direction pair, its PDF under the material's own
// sampling strategy, and whether the lobe sampled was effectively a delta
// distribution (perfect mirror, or a near-specular Cook-Torrance lobe) for
// which next-event estimation toward area lights is wasted work.
type ScatterResult struct {
	Direction Vec3
	Value     Vec3
	PDF       float64
	Specular  bool
}

// Material is the BSDF contract every surface material implements. wo and wi
// are both expressed in the local shading frame (normal = +Z), matching the
// convention used by LocalFrame.
type Material interface {
	// Sample draws an outgoing direction proportional to the material's
	// preferred sampling strategy (importance sampling the BSDF lobe).
	// Returns ok=false if the material cannot scatter from wo (e.g. wo below
	// the local hemisphere).
	Sample(wo Vec3, hit HitRecord, sampler *Sampler) (ScatterResult, bool)

	// Eval returns the BSDF value f(wo, wi) for an externally chosen wi (used
	// by next-event estimation, where wi points toward a sampled light
	// point rather than a material-sampled direction).
	Eval(wo, wi Vec3, hit HitRecord) Vec3

	// PDF returns the probability density of Sample producing wi. The path
	// tracer adds its NEE and BSDF-sampled estimates without weighting them
	// against each other, so it does not call PDF.
	PDF(wo, wi Vec3, hit HitRecord) float64

	// Emitted returns the radiance emitted toward the viewer at hit; zero
	// for every non-emissive material.
	Emitted(hit HitRecord) Vec3

	// SkipLightSampling reports whether next-event estimation should be
	// skipped for this material (perfect mirrors and near-specular
	// microfacet lobes, where almost no light-sampled direction has nonzero
	// BSDF value).
	SkipLightSampling() bool
}

// Texture supplies a color value as a function of surface parameterization
// and world position; the latter lets procedural/solid textures avoid
// depending on UV coordinates being present.
type Texture interface {
	Value(u, v float64, p Vec3) Vec3
}
