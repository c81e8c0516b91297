package integrator

import (
	"fmt"
	"math"

	"github.com/df07/pathtracer/pkg/core"
	"github.com/df07/pathtracer/pkg/scene"
)

// shadowEpsilon keeps a shadow ray's far bound just short of the sampled
// light point, and its near bound just past the shading point, avoiding
// self-intersection at both ends.
const shadowEpsilon = 1e-3

// PathTracingIntegrator is a recursive path tracer combining next-event
// estimation (direct light sampling against the scene's lights BVH) with
// BSDF importance sampling, added together without a multiple-importance-
// sampling weight between the two strategies. NEE runs only when
// config.SampleLights is enabled and the hit material's SkipLightSampling
// is false (perfect mirrors and near-specular microfacet lobes skip it,
// since almost no light sample has nonzero BSDF value there).
type PathTracingIntegrator struct {
	config  core.SamplingConfig
	Verbose bool
}

// NewPathTracingIntegrator creates a path tracing integrator for config.
func NewPathTracingIntegrator(config core.SamplingConfig) *PathTracingIntegrator {
	return &PathTracingIntegrator{config: config}
}

// RayColor implements Integrator.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, sc *scene.Scene, sampler *core.Sampler) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)
	return pt.rayColorRecursive(ray, sc, sampler, pt.config.MaxDepth, throughput, true)
}

// rayColorRecursive traces one path vertex at a time. specularBounce is true
// for the primary ray and for any bounce off a material whose
// SkipLightSampling is true — both cases where next-event estimation did
// not already account for light encountered by continuing the path, so
// emitted radiance hit directly must be added here instead of being left to
// NEE.
func (pt *PathTracingIntegrator) rayColorRecursive(ray core.Ray, sc *scene.Scene, sampler *core.Sampler, depth int, throughput core.Vec3, specularBounce bool) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	terminate, compensation := pt.applyRussianRoulette(sampler.Float64())
	if terminate {
		return core.Vec3{}
	}

	hit, isHit := sc.World.Hit(ray, core.NewInterval(1e-3, math.Inf(1)))
	if !isHit {
		isPrimary := depth == pt.config.MaxDepth
		if isPrimary || specularBounce {
			return sc.BackgroundColor(ray).Multiply(compensation)
		}
		// A non-specular bounce already had its chance at this path's light
		// contribution via NEE at the previous vertex; the background
		// itself is never a light sampling target, so counting it here
		// too would only add variance without fixing a missed contribution.
		return core.Vec3{}
	}

	var emitted core.Vec3
	if depth == pt.config.MaxDepth || specularBounce {
		emitted = hit.Material.Emitted(hit)
	}

	frame := core.NewLocalFrame(hit.Normal, core.Vec3{})
	wo := frame.WorldToLocal(ray.Direction.Negate().Normalize())

	scatter, didScatter := hit.Material.Sample(wo, hit, sampler)
	if !didScatter {
		pt.logf("      pt[%d] absorbed: emitted=%v\n", pt.config.MaxDepth-depth, emitted)
		return emitted.Multiply(compensation)
	}

	var direct core.Vec3
	if pt.config.SampleLights && !hit.Material.SkipLightSampling() {
		direct = pt.sampleDirectLighting(sc, hit, frame, wo, sampler)
	}

	cosTheta := scatter.Direction.Z
	wiWorld := frame.LocalToWorld(scatter.Direction).Normalize()
	scatteredRay := core.NewRay(hit.Point, wiWorld)

	weight := scatter.Value.Multiply(cosTheta / scatter.PDF)
	newThroughput := throughput.MultiplyVec(weight)
	incoming := pt.rayColorRecursive(scatteredRay, sc, sampler, depth-1, newThroughput, scatter.Specular || hit.Material.SkipLightSampling())
	indirect := weight.MultiplyVec(incoming)

	contribution := emitted.Add(direct).Add(indirect)
	pt.logf("      pt[%d]  contribution=%v = emitted=%v + direct=%v + indirect=%v\n",
		pt.config.MaxDepth-depth, contribution, emitted, direct, indirect)

	return contribution.Multiply(compensation)
}

// sampleDirectLighting estimates the direct-lighting contribution at hit by
// sampling a point on the scene's lights tree, converting its area PDF to a
// solid-angle PDF at the shading point, and evaluating the material's BSDF
// toward it (never sampling the material's own strategy — that's handled
// separately by the BSDF-sampled recursive call).
func (pt *PathTracingIntegrator) sampleDirectLighting(sc *scene.Scene, hit core.HitRecord, frame core.LocalFrame, wo core.Vec3, sampler *core.Sampler) core.Vec3 {
	if sc.Lights == nil {
		return core.Vec3{}
	}

	lightPoint, lightNormal, emission := sc.Lights.Sample(sampler)
	if emission.IsZero() {
		return core.Vec3{}
	}

	toLight := lightPoint.Subtract(hit.Point)
	distance := toLight.Length()
	if distance < shadowEpsilon {
		return core.Vec3{}
	}
	wiWorld := toLight.Multiply(1.0 / distance)

	wi := frame.WorldToLocal(wiWorld)
	if wi.Z <= 0 {
		return core.Vec3{}
	}

	cosAtLight := lightNormal.Dot(wiWorld.Negate())
	if cosAtLight <= 0 {
		return core.Vec3{}
	}

	shadowRay := core.NewRay(hit.Point, wiWorld)
	shadowRange := core.NewInterval(shadowEpsilon, distance-shadowEpsilon)
	if shadowHit, blocked := sc.World.Hit(shadowRay, shadowRange); blocked {
		// Accept the sample only when the nearest occluder the shadow ray
		// actually finds is the light surface itself (front face, at
		// essentially the sampled distance) — anything else is a real
		// occluder and the light is shadowed.
		if !(shadowHit.FrontFace && math.Abs(shadowHit.T-distance) < shadowEpsilon*10) {
			return core.Vec3{}
		}
	}

	f := hit.Material.Eval(wo, wi, hit)
	if f.IsZero() {
		return core.Vec3{}
	}

	areaPDF := 1.0 / sc.Lights.Area()
	lightPDF := areaPDF * distance * distance / cosAtLight
	if lightPDF <= 0 {
		return core.Vec3{}
	}

	return f.MultiplyVec(emission).Multiply(wi.Z / lightPDF)
}

// applyRussianRoulette terminates the path with probability 1-q, where q is
// the configured fixed survival probability, scaling a surviving path's
// throughput by 1/q to keep the estimator unbiased.
func (pt *PathTracingIntegrator) applyRussianRoulette(u float64) (terminate bool, compensation float64) {
	q := pt.config.RussianRoulette
	if u >= q {
		return true, 0
	}
	return false, 1.0 / q
}

func (pt *PathTracingIntegrator) logf(format string, args ...interface{}) {
	if pt.Verbose {
		fmt.Printf(format, args...)
	}
}
