// Package geometry implements the renderer's only primitive, Triangle, plus
// the aggregates (TriangleMesh, PrimitiveList) used to assemble scenes out of
// them. There is no open shape hierarchy: everything the renderer traces is,
// at the bottom, a triangle.
package geometry

import (
	"math"

	"github.com/df07/pathtracer/pkg/core"
)

// Triangle is a single triangle defined by three vertices. Intersection uses
// the triangle's plane equation and a reciprocal-normal-length barycentric
// solve (the same algebraic form as Ray Tracing: The Next Week's quad
// primitive) rather than Möller-Trumbore.
type Triangle struct {
	V0, V1, V2    core.Vec3
	UV0, UV1, UV2 core.Vec2
	hasUVs        bool
	Material      core.Material

	normal core.Vec3 // unit geometric normal, cross(e1, e2) direction
	e1, e2 core.Vec3 // V1-V0, V2-V0
	w      core.Vec3 // planeNormal / |planeNormal|^2, for the barycentric solve
	area   float64
	bbox   core.AABB
}

// NewTriangle creates a triangle with a normal computed from winding order.
func NewTriangle(v0, v1, v2 core.Vec3, mat core.Material) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2, Material: mat}
	t.computeGeometry(nil)
	return t
}

// NewTriangleWithNormal creates a triangle with an explicit shading normal,
// overriding the one winding order would imply.
func NewTriangleWithNormal(v0, v1, v2, normal core.Vec3, mat core.Material) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2, Material: mat}
	n := normal.Normalize()
	t.computeGeometry(&n)
	return t
}

// NewTriangleWithUVs creates a triangle with per-vertex texture coordinates.
func NewTriangleWithUVs(v0, v1, v2 core.Vec3, uv0, uv1, uv2 core.Vec2, mat core.Material) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2, UV0: uv0, UV1: uv1, UV2: uv2, hasUVs: true, Material: mat}
	t.computeGeometry(nil)
	return t
}

// NewTriangleWithNormalAndUVs creates a triangle with both an explicit normal
// and per-vertex texture coordinates.
func NewTriangleWithNormalAndUVs(v0, v1, v2 core.Vec3, uv0, uv1, uv2 core.Vec2, normal core.Vec3, mat core.Material) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2, UV0: uv0, UV1: uv1, UV2: uv2, hasUVs: true, Material: mat}
	n := normal.Normalize()
	t.computeGeometry(&n)
	return t
}

func (t *Triangle) computeGeometry(explicitNormal *core.Vec3) {
	t.e1 = t.V1.Subtract(t.V0)
	t.e2 = t.V2.Subtract(t.V0)

	planeNormal := t.e1.Cross(t.e2)
	t.area = 0.5 * planeNormal.Length()

	if explicitNormal != nil {
		t.normal = *explicitNormal
	} else {
		t.normal = planeNormal.Normalize()
	}

	lenSq := planeNormal.LengthSquared()
	if lenSq > 0 {
		t.w = planeNormal.Multiply(1.0 / lenSq)
	}

	t.bbox = core.NewAABBFromPoints(t.V0, t.V1, t.V2)
}

// Hit implements core.Shape. It solves the ray/plane intersection, then
// recovers the (alpha, beta) edge-space coordinates of the hit point via the
// reciprocal plane-normal form and rejects points outside the triangle.
func (t *Triangle) Hit(ray core.Ray, tRange core.Interval) (core.HitRecord, bool) {
	planeNormal := t.e1.Cross(t.e2)
	denom := planeNormal.Dot(ray.Direction)
	if math.Abs(denom) < 1e-10 {
		return core.HitRecord{}, false
	}

	d := planeNormal.Dot(t.V0)
	tHit := (d - planeNormal.Dot(ray.Origin)) / denom
	if !tRange.Contains(tHit) {
		return core.HitRecord{}, false
	}

	p := ray.At(tHit)
	planarHit := p.Subtract(t.V0)
	alpha := t.w.Dot(planarHit.Cross(t.e2))
	beta := t.w.Dot(t.e1.Cross(planarHit))

	if alpha < 0 || beta < 0 || alpha+beta > 1 {
		return core.HitRecord{}, false
	}

	rec := core.HitRecord{
		T:        tHit,
		Point:    p,
		Material: t.Material,
	}
	if t.hasUVs {
		gamma := 1 - alpha - beta
		uv := t.UV0.Multiply(gamma).Add(t.UV1.Multiply(alpha)).Add(t.UV2.Multiply(beta))
		rec.U, rec.V = uv.X, uv.Y
	} else {
		rec.U, rec.V = alpha, beta
	}
	rec.SetFaceNormal(ray, t.normal)

	return rec, true
}

// BoundingBox implements core.Shape
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

// Area implements core.Shape
func (t *Triangle) Area() float64 {
	return t.area
}

// Sample implements core.Shape, drawing a point uniformly over the triangle
// via the standard square-root barycentric transform.
func (t *Triangle) Sample(sampler *core.Sampler) (point, normal, emission core.Vec3) {
	u := sampler.Vec2()
	su0 := math.Sqrt(u.X)
	b0 := 1 - su0
	b1 := u.Y * su0
	b2 := 1 - b0 - b1

	p := t.V0.Multiply(b0).Add(t.V1.Multiply(b1)).Add(t.V2.Multiply(b2))
	rec := core.HitRecord{Normal: t.normal, FrontFace: true}
	return p, t.normal, t.Material.Emitted(rec)
}

// Normal returns the triangle's cached geometric normal.
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}
