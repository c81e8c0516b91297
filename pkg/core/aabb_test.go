package core

import (
	"math"
	"testing"
)

func TestAABBHitUnitCube(t *testing.T) {
	box := NewAABB(NewInterval(0, 1), NewInterval(0, 1), NewInterval(0, 1))
	ray := NewRay(NewVec3(-1, 0.5, 0.5), NewVec3(1, 0, 0))

	hit, ok := box.Hit(ray, Interval{Min: 0, Max: math.Inf(1)})
	if !ok {
		t.Fatal("expected a hit")
	}
	if math.Abs(hit.Min-1) > 1e-9 {
		t.Errorf("expected entry t=1, got %v", hit.Min)
	}
	if math.Abs(hit.Max-2) > 1e-9 {
		t.Errorf("expected exit t=2, got %v", hit.Max)
	}
}

func TestAABBHitOriginInsideBox(t *testing.T) {
	box := NewAABB(NewInterval(-1, 1), NewInterval(-1, 1), NewInterval(-1, 1))
	ray := NewRay(NewVec3(0, 0, 0), NewVec3(0.3, 0.7, -0.2))

	_, ok := box.Hit(ray, Interval{Min: 0, Max: math.Inf(1)})
	if !ok {
		t.Error("ray originating inside the box must hit for t in [0, inf)")
	}
}

func TestAABBHitMiss(t *testing.T) {
	box := NewAABB(NewInterval(0, 1), NewInterval(0, 1), NewInterval(0, 1))
	ray := NewRay(NewVec3(-1, 5, 0.5), NewVec3(1, 0, 0))

	if _, ok := box.Hit(ray, Interval{Min: 0, Max: math.Inf(1)}); ok {
		t.Error("expected a miss for a ray passing above the box")
	}
}

func TestAABBMinimumExtent(t *testing.T) {
	flat := NewAABB(NewInterval(0, 1), NewInterval(0, 1), NewInterval(5, 5))
	if flat.Z.Length() < minAABBExtent {
		t.Errorf("expected degenerate axis padded to at least %v, got %v", minAABBExtent, flat.Z.Length())
	}
}

func TestAABBLongestAxis(t *testing.T) {
	box := NewAABB(NewInterval(0, 10), NewInterval(0, 1), NewInterval(0, 2))
	if axis := box.LongestAxis(); axis != 0 {
		t.Errorf("expected longest axis 0 (X), got %d", axis)
	}
}

func TestAABBUnionSurfaceArea(t *testing.T) {
	a := NewAABB(NewInterval(0, 1), NewInterval(0, 1), NewInterval(0, 1))
	b := NewAABB(NewInterval(2, 3), NewInterval(0, 1), NewInterval(0, 1))
	u := a.Union(b)

	if u.X.Min != 0 || u.X.Max != 3 {
		t.Errorf("expected union X=[0,3], got %v", u.X)
	}
	if u.SurfaceArea() <= a.SurfaceArea() {
		t.Error("union's surface area should exceed either input's")
	}
}
