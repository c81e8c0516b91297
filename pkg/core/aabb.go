package core

import "math"

// minAABBExtent is the minimum extent enforced along each axis, avoiding
// degenerate slab tests against perfectly axis-aligned geometry (e.g. a
// triangle lying exactly in the XY plane would otherwise produce a
// zero-thickness box along Z).
const minAABBExtent = 1e-4

// AABB represents an axis-aligned bounding box as three intervals.
type AABB struct {
	X, Y, Z Interval
}

// NewAABB creates a padded AABB from three intervals
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: padAxis(x), Y: padAxis(y), Z: padAxis(z)}
}

// NewAABBFromPoints creates a padded AABB bounding all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{X: Empty, Y: Empty, Z: Empty}
	}
	minV, maxV := points[0], points[0]
	for _, p := range points[1:] {
		minV = Vec3{math.Min(minV.X, p.X), math.Min(minV.Y, p.Y), math.Min(minV.Z, p.Z)}
		maxV = Vec3{math.Max(maxV.X, p.X), math.Max(maxV.Y, p.Y), math.Max(maxV.Z, p.Z)}
	}
	return NewAABB(NewInterval(minV.X, maxV.X), NewInterval(minV.Y, maxV.Y), NewInterval(minV.Z, maxV.Z))
}

func padAxis(i Interval) Interval {
	if i.Length() < minAABBExtent {
		padded := i.Expand(minAABBExtent)
		// Rounding in Expand can leave the padded length a hair under
		// minAABBExtent; widen by one ulp per side until it reaches it.
		for i.Min <= i.Max && padded.Length() < minAABBExtent {
			padded.Min = math.Nextafter(padded.Min, math.Inf(-1))
			padded.Max = math.Nextafter(padded.Max, math.Inf(1))
		}
		return padded
	}
	return i
}

// axis returns the interval for axis 0=X, 1=Y, 2=Z
func (b AABB) axis(n int) Interval {
	switch n {
	case 0:
		return b.X
	case 1:
		return b.Y
	default:
		return b.Z
	}
}

// Hit runs the slab test against ray over tRange, returning the narrowed
// overlap interval. Returns false if the overlap is empty.
func (b AABB) Hit(ray Ray, tRange Interval) (Interval, bool) {
	origin := [3]float64{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	dir := [3]float64{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}

	for axis := 0; axis < 3; axis++ {
		ax := b.axis(axis)
		d := dir[axis]

		if math.Abs(d) < 1e-8 {
			if origin[axis] < ax.Min || origin[axis] > ax.Max {
				return Interval{}, false
			}
			continue
		}

		invD := 1.0 / d
		t0 := (ax.Min - origin[axis]) * invD
		t1 := (ax.Max - origin[axis]) * invD
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		tRange.Min = math.Max(tRange.Min, t0)
		tRange.Max = math.Min(tRange.Max, t1)
		if tRange.Max < tRange.Min {
			return Interval{}, false
		}
	}

	return tRange, true
}

// Union returns an AABB bounding both this AABB and another
func (b AABB) Union(other AABB) AABB {
	return AABB{
		X: UnionInterval(b.X, other.X),
		Y: UnionInterval(b.Y, other.Y),
		Z: UnionInterval(b.Z, other.Z),
	}
}

// Center returns the center point of the AABB
func (b AABB) Center() Vec3 {
	return NewVec3((b.X.Min+b.X.Max)/2, (b.Y.Min+b.Y.Max)/2, (b.Z.Min+b.Z.Max)/2)
}

// SurfaceArea returns the surface area of the AABB
func (b AABB) SurfaceArea() float64 {
	dx, dy, dz := b.X.Length(), b.Y.Length(), b.Z.Length()
	return 2.0 * (dx*dy + dy*dz + dz*dx)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the greatest extent
func (b AABB) LongestAxis() int {
	dx, dy, dz := b.X.Length(), b.Y.Length(), b.Z.Length()
	if dx > dy && dx > dz {
		return 0
	}
	if dy > dz {
		return 1
	}
	return 2
}
