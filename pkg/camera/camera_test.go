package camera

import (
	"math"
	"testing"

	"github.com/df07/pathtracer/pkg/core"
)

func TestNewComputesHeightFromAspectRatio(t *testing.T) {
	cam := New(Config{
		Center: core.NewVec3(0, 0, 1), LookAt: core.NewVec3(0, 0, 0), Up: core.NewVec3(0, 1, 0),
		Width: 400, AspectRatio: 2.0, VFov: 40,
	})
	if cam.Height != 200 {
		t.Errorf("expected height 200 for a 2:1 aspect ratio, got %v", cam.Height)
	}
	if cam.Width() != 400 {
		t.Errorf("expected Width() 400, got %v", cam.Width())
	}
}

func TestGetRayPointsRoughlyAtLookAt(t *testing.T) {
	cam := New(Config{
		Center: core.NewVec3(0, 0, 5), LookAt: core.NewVec3(0, 0, 0), Up: core.NewVec3(0, 1, 0),
		Width: 200, AspectRatio: 1.0, VFov: 40,
	})
	sampler := core.NewSampler(1)
	ray := cam.GetRay(100, 100, sampler)

	toLookAt := core.NewVec3(0, 0, 0).Subtract(ray.Origin).Normalize()
	cosAngle := ray.Direction.Dot(toLookAt)
	if cosAngle < 0.99 {
		t.Errorf("expected the center pixel's ray to point close to LookAt, cos(angle)=%v", cosAngle)
	}
}

func TestGetRayIsDeterministicByDefault(t *testing.T) {
	cam := New(Config{
		Center: core.NewVec3(0, 0, 5), LookAt: core.NewVec3(0, 0, 0), Up: core.NewVec3(0, 1, 0),
		Width: 100, AspectRatio: 1.0, VFov: 40,
	})
	center := cam.GetRay(50, 50, core.NewSampler(1)).Direction
	for i := 0; i < 20; i++ {
		ray := cam.GetRay(50, 50, core.NewSampler(int64(i)))
		if ray.Direction.Subtract(center).Length() > 1e-12 {
			t.Errorf("expected deterministic pixel-center rays with Jitter unset, got %v vs %v", ray.Direction, center)
		}
	}
}

func TestGetRayJitterStaysWithinPixelFootprint(t *testing.T) {
	cam := New(Config{
		Center: core.NewVec3(0, 0, 5), LookAt: core.NewVec3(0, 0, 0), Up: core.NewVec3(0, 1, 0),
		Width: 100, AspectRatio: 1.0, VFov: 40, Jitter: true,
	})
	sampler := core.NewSampler(2)

	var minDot float64 = math.Inf(1)
	center := cam.GetRay(50, 50, core.NewSampler(99)).Direction
	for i := 0; i < 50; i++ {
		ray := cam.GetRay(50, 50, sampler)
		dot := ray.Direction.Dot(center)
		if dot < minDot {
			minDot = dot
		}
	}
	if minDot < 0.999 {
		t.Errorf("expected antialiasing jitter to stay close to the pixel center direction, min cos=%v", minDot)
	}
}

func TestDefocusDiskDisabledWithZeroAperture(t *testing.T) {
	cam := New(Config{
		Center: core.NewVec3(0, 0, 5), LookAt: core.NewVec3(0, 0, 0), Up: core.NewVec3(0, 1, 0),
		Width: 50, AspectRatio: 1.0, VFov: 40, Aperture: 0,
	})
	sampler := core.NewSampler(3)
	ray := cam.GetRay(25, 25, sampler)
	if ray.Origin != cam.config.Center {
		t.Errorf("expected rays to originate at the eye when aperture is 0, got origin %v", ray.Origin)
	}
}

func TestDefocusDiskSpreadsOriginsWithAperture(t *testing.T) {
	cam := New(Config{
		Center: core.NewVec3(0, 0, 5), LookAt: core.NewVec3(0, 0, 0), Up: core.NewVec3(0, 1, 0),
		Width: 50, AspectRatio: 1.0, VFov: 40, Aperture: 2.0, FocusDistance: 5,
	})
	sampler := core.NewSampler(4)
	allSame := true
	first := cam.GetRay(25, 25, sampler).Origin
	for i := 0; i < 20; i++ {
		ray := cam.GetRay(25, 25, sampler)
		if ray.Origin.Subtract(first).Length() > 1e-9 {
			allSame = false
			break
		}
	}
	if allSame {
		t.Error("expected nonzero aperture to spread ray origins across the lens")
	}
}
