package core

import (
	"math"
	"math/rand"
)

// Sampler produces the random numbers consumed by the integrator and BSDFs.
// Each goroutine owns its own Sampler backed by an independent *rand.Rand;
// none of this is ever shared across threads.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a Sampler seeded independently from seed. Two Samplers
// built from different seeds never share RNG state.
func NewSampler(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform random number in [0, 1)
func (s *Sampler) Float64() float64 {
	return s.rng.Float64()
}

// Vec2 returns two independent uniform samples in [0, 1)
func (s *Sampler) Vec2() Vec2 {
	return NewVec2(s.Float64(), s.Float64())
}

// RandomInUnitSphere returns a uniformly distributed point inside the unit
// ball via rejection sampling.
func (s *Sampler) RandomInUnitSphere() Vec3 {
	for {
		p := NewVec3(
			2*s.Float64()-1,
			2*s.Float64()-1,
			2*s.Float64()-1,
		)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomUnitVector returns a uniformly distributed direction on the unit
// sphere.
func (s *Sampler) RandomUnitVector() Vec3 {
	return s.RandomInUnitSphere().Normalize()
}

// SampleUniformDiskPolar returns a point uniformly distributed over the unit
// disk, sampled directly in polar coordinates.
func SampleUniformDiskPolar(u Vec2) Vec2 {
	r := math.Sqrt(u.X)
	theta := 2 * math.Pi * u.Y
	return NewVec2(r*math.Cos(theta), r*math.Sin(theta))
}

// SampleUniformDiskConcentric maps a uniform square sample to the unit disk
// using Shirley's concentric mapping, which avoids the polar method's
// distortion of sample spacing near the disk's center.
func SampleUniformDiskConcentric(u Vec2) Vec2 {
	a := 2*u.X - 1
	b := 2*u.Y - 1
	if a == 0 && b == 0 {
		return NewVec2(0, 0)
	}

	var r, theta float64
	if math.Abs(a) > math.Abs(b) {
		r = a
		theta = (math.Pi / 4) * (b / a)
	} else {
		r = b
		theta = (math.Pi / 2) - (math.Pi/4)*(a/b)
	}
	return NewVec2(r*math.Cos(theta), r*math.Sin(theta))
}

// SampleCosineHemisphere returns a direction about +Z distributed
// proportionally to cosθ, with its PDF.
func SampleCosineHemisphere(u Vec2) (Vec3, float64) {
	d := SampleUniformDiskConcentric(u)
	z := math.Sqrt(max(0, 1-d.X*d.X-d.Y*d.Y))
	dir := NewVec3(d.X, d.Y, z)
	return dir, CosineHemispherePDF(z)
}

// CosineHemispherePDF returns the PDF of the cosine-weighted hemisphere
// distribution for a direction whose local-frame z-component is cosTheta.
func CosineHemispherePDF(cosTheta float64) float64 {
	return cosTheta / math.Pi
}

// LocalFrame is an orthonormal tangent/bitangent/normal basis used to
// transform directions between world space and the local shading frame
// where the surface normal is +Z.
type LocalFrame struct {
	Tangent, Bitangent, Normal Vec3
}

// NewLocalFrame builds an orthonormal basis around normal. When a tangent
// hint is supplied (non-zero) it is used as the starting tangent direction,
// re-orthogonalized against the normal; otherwise an arbitrary tangent is
// derived from the normal alone.
func NewLocalFrame(normal Vec3, tangentHint Vec3) LocalFrame {
	n := normal.Normalize()

	var t Vec3
	if !tangentHint.IsZero() {
		t = tangentHint.Subtract(n.Multiply(n.Dot(tangentHint)))
	}
	if t.IsZero() || t.HasNaN() {
		if math.Abs(n.X) > math.Abs(n.Z) {
			t = NewVec3(-n.Y, n.X, 0)
		} else {
			t = NewVec3(0, -n.Z, n.Y)
		}
	}
	t = t.Normalize()
	b := n.Cross(t)

	return LocalFrame{Tangent: t, Bitangent: b, Normal: n}
}

// WorldToLocal transforms a world-space direction into this frame's local
// coordinates.
func (f LocalFrame) WorldToLocal(v Vec3) Vec3 {
	return NewVec3(v.Dot(f.Tangent), v.Dot(f.Bitangent), v.Dot(f.Normal))
}

// LocalToWorld transforms a local-frame direction into world space.
func (f LocalFrame) LocalToWorld(v Vec3) Vec3 {
	return f.Tangent.Multiply(v.X).Add(f.Bitangent.Multiply(v.Y)).Add(f.Normal.Multiply(v.Z))
}
