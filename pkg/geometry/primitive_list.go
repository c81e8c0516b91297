package geometry

import (
	"sort"

	"github.com/df07/pathtracer/pkg/core"
)

// PrimitiveList is a flat, unaccelerated collection of shapes exposing the
// same core.Shape contract as a BVH or mesh. Hit is a linear scan — it
// exists for small shape counts (e.g. a handful of emissive triangles
// gathered directly, bypassing a full BVH build) rather than as a general
// acceleration structure.
type PrimitiveList struct {
	shapes   []core.Shape
	bbox     core.AABB
	area     float64
	cumAreas []float64
}

// NewPrimitiveList builds a PrimitiveList over shapes, precomputing the
// cumulative area table used for area-proportional Sample dispatch.
func NewPrimitiveList(shapes []core.Shape) *PrimitiveList {
	bbox := core.AABB{X: core.Empty, Y: core.Empty, Z: core.Empty}
	cum := make([]float64, len(shapes))
	total := 0.0
	for i, s := range shapes {
		bbox = bbox.Union(s.BoundingBox())
		total += s.Area()
		cum[i] = total
	}
	return &PrimitiveList{shapes: shapes, bbox: bbox, area: total, cumAreas: cum}
}

// Hit implements core.Shape as a linear scan over every shape.
func (p *PrimitiveList) Hit(ray core.Ray, tRange core.Interval) (core.HitRecord, bool) {
	var closest core.HitRecord
	hitAnything := false

	for _, s := range p.shapes {
		if rec, ok := s.Hit(ray, tRange); ok {
			hitAnything = true
			tRange.Max = rec.T
			closest = rec
		}
	}
	return closest, hitAnything
}

// BoundingBox implements core.Shape
func (p *PrimitiveList) BoundingBox() core.AABB {
	return p.bbox
}

// Area implements core.Shape
func (p *PrimitiveList) Area() float64 {
	return p.area
}

// Sample implements core.Shape, choosing a shape proportional to its share of
// the list's total area via a binary search over the cumulative area table,
// then sampling a point on it.
func (p *PrimitiveList) Sample(sampler *core.Sampler) (point, normal, emission core.Vec3) {
	target := sampler.Float64() * p.area
	idx := sort.SearchFloat64s(p.cumAreas, target)
	if idx >= len(p.shapes) {
		idx = len(p.shapes) - 1
	}
	return p.shapes[idx].Sample(sampler)
}

// Shapes returns the list's underlying shapes.
func (p *PrimitiveList) Shapes() []core.Shape {
	return p.shapes
}
