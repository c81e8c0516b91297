package geometry

import (
	"math"
	"testing"

	"github.com/df07/pathtracer/pkg/core"
	"github.com/df07/pathtracer/pkg/material"
)

func TestPrimitiveListAreaIsSumOfShapes(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(1, 1, 1))
	a := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), mat)
	b := NewTriangle(core.NewVec3(5, 0, 0), core.NewVec3(9, 0, 0), core.NewVec3(5, 4, 0), mat)

	list := NewPrimitiveList([]core.Shape{a, b})
	want := a.Area() + b.Area()
	if math.Abs(list.Area()-want) > 1e-9 {
		t.Errorf("expected total area %v, got %v", want, list.Area())
	}
}

func TestPrimitiveListHitReturnsNearestShape(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(1, 1, 1))
	near := NewTriangle(core.NewVec3(-1, -1, 0), core.NewVec3(1, -1, 0), core.NewVec3(0, 1, 0), mat)
	far := NewTriangle(core.NewVec3(-1, -1, -5), core.NewVec3(1, -1, -5), core.NewVec3(0, 1, -5), mat)

	list := NewPrimitiveList([]core.Shape{far, near})
	ray := core.NewRay(core.NewVec3(0, 0, 10), core.NewVec3(0, 0, -1))
	rec, hit := list.Hit(ray, core.NewInterval(0, math.Inf(1)))
	if !hit {
		t.Fatal("expected a hit")
	}
	if math.Abs(rec.T-10) > 1e-9 {
		t.Errorf("expected the nearer shape at t=10, got t=%v", rec.T)
	}
}

func TestPrimitiveListSampleStaysWithinBoundingBox(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(1, 1, 1))
	a := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), mat)
	b := NewTriangle(core.NewVec3(5, 5, 0), core.NewVec3(6, 5, 0), core.NewVec3(5, 6, 0), mat)
	list := NewPrimitiveList([]core.Shape{a, b})
	box := list.BoundingBox()

	sampler := core.NewSampler(4)
	for i := 0; i < 100; i++ {
		p, _, _ := list.Sample(sampler)
		if !box.X.Contains(p.X) || !box.Y.Contains(p.Y) || !box.Z.Contains(p.Z) {
			t.Fatalf("sample %v fell outside the list bounding box %v", p, box)
		}
	}
}
