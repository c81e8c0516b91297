package material

import (
	"math"
	"testing"

	"github.com/df07/pathtracer/pkg/core"
)

func TestLambertianSamplePDFConsistency(t *testing.T) {
	lam := NewLambertian(core.NewVec3(0.5, 0.6, 0.7))
	sampler := core.NewSampler(1)
	wo := core.NewVec3(0, 0, 1)
	hit := core.HitRecord{}

	for i := 0; i < 200; i++ {
		scatter, ok := lam.Sample(wo, hit, sampler)
		if !ok {
			t.Fatal("expected Lambertian to always scatter for wo.Z > 0")
		}
		pdf := lam.PDF(wo, scatter.Direction, hit)
		if math.Abs(pdf-scatter.PDF) > 1e-6 {
			t.Errorf("PDF(sample.wi) = %v, want sample.pdf = %v", pdf, scatter.PDF)
		}
		f := lam.Eval(wo, scatter.Direction, hit)
		if f.Subtract(scatter.Value).Length() > 1e-9 {
			t.Errorf("Eval(sample.wi) = %v, want sample.f = %v", f, scatter.Value)
		}
	}
}

func TestLambertianRejectsLowerHemisphere(t *testing.T) {
	lam := NewLambertian(core.NewVec3(1, 1, 1))
	hit := core.HitRecord{}
	if f := lam.Eval(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -0.1), hit); !f.IsZero() {
		t.Errorf("expected zero BSDF for wi below the hemisphere, got %v", f)
	}
	if pdf := lam.PDF(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -0.1), hit); pdf != 0 {
		t.Errorf("expected zero PDF for wi below the hemisphere, got %v", pdf)
	}
}

func TestPhongSamplePDFConsistency(t *testing.T) {
	phong := NewPhongReflectance(core.NewVec3(0.5, 0.5, 0.5), core.NewVec3(0.3, 0.3, 0.3), 20)
	sampler := core.NewSampler(5)
	wo := core.NewVec3(0.1, 0.2, 0.97).Normalize()
	hit := core.HitRecord{}

	for i := 0; i < 500; i++ {
		scatter, ok := phong.Sample(wo, hit, sampler)
		if !ok {
			continue
		}
		pdf := phong.PDF(wo, scatter.Direction, hit)
		if math.Abs(pdf-scatter.PDF) > 1e-6 {
			t.Errorf("PDF(sample.wi) = %v, want sample.pdf = %v", pdf, scatter.PDF)
		}
	}
}

func TestPhongLowShininessIsPureDiffuseAndSamplesLights(t *testing.T) {
	phong := NewPhongReflectance(core.NewVec3(0.5, 0.5, 0.5), core.NewVec3(0.3, 0.3, 0.3), 1)
	if phong.SkipLightSampling() {
		t.Error("expected Shininess<=1 to keep light sampling on")
	}

	sampler := core.NewSampler(9)
	wo := core.NewVec3(0, 0, 1)
	hit := core.HitRecord{}
	for i := 0; i < 200; i++ {
		scatter, ok := phong.Sample(wo, hit, sampler)
		if !ok {
			continue
		}
		want := core.CosineHemispherePDF(scatter.Direction.Z)
		if math.Abs(scatter.PDF-want) > 1e-6 {
			t.Errorf("expected pure cosine-hemisphere PDF %v at Shininess<=1, got %v", want, scatter.PDF)
		}
	}
}

func TestPhongAboveUnityShininessSkipsLightSampling(t *testing.T) {
	phong := NewPhongReflectance(core.NewVec3(0.5, 0.5, 0.5), core.NewVec3(0.3, 0.3, 0.3), 20)
	if !phong.SkipLightSampling() {
		t.Error("expected Shininess>1 to skip light sampling")
	}
}

func TestPerfectMirrorReflectsAboutNormal(t *testing.T) {
	mirror := NewPerfectMirror(core.NewVec3(1, 1, 1))
	sampler := core.NewSampler(2)
	hit := core.HitRecord{}

	wo := core.NewVec3(0.3, 0.4, 0.8).Normalize()
	scatter, ok := mirror.Sample(wo, hit, sampler)
	if !ok {
		t.Fatal("expected mirror to always scatter")
	}
	want := core.NewVec3(-wo.X, -wo.Y, wo.Z)
	if scatter.Direction.Subtract(want).Length() > 1e-9 {
		t.Errorf("expected reflection %v, got %v", want, scatter.Direction)
	}
	if !mirror.SkipLightSampling() {
		t.Error("expected a perfect mirror to skip light sampling")
	}

	// f*cosTheta/pdf must reduce to Albedo exactly, regardless of incidence
	// angle, so grazing reflections aren't darkened.
	cosTheta := scatter.Direction.Z
	got := scatter.Value.Multiply(cosTheta / scatter.PDF)
	if got.Subtract(mirror.Albedo).Length() > 1e-9 {
		t.Errorf("expected f*cosTheta/pdf = %v, got %v", mirror.Albedo, got)
	}
}

func TestPerfectMirrorThroughputIndependentOfGrazingAngle(t *testing.T) {
	mirror := NewPerfectMirror(core.NewVec3(0.8, 0.8, 0.8))
	sampler := core.NewSampler(7)
	hit := core.HitRecord{}

	for _, wo := range []core.Vec3{
		core.NewVec3(0, 0, 1),
		core.NewVec3(0.05, 0.02, 0.998).Normalize(),
		core.NewVec3(0.6, 0.3, 0.74).Normalize(),
	} {
		scatter, ok := mirror.Sample(wo, hit, sampler)
		if !ok {
			t.Fatalf("expected mirror to scatter for wo=%v", wo)
		}
		weight := scatter.Value.Multiply(scatter.Direction.Z / scatter.PDF)
		if weight.Subtract(mirror.Albedo).Length() > 1e-9 {
			t.Errorf("wo=%v: expected cosTheta-independent weight %v, got %v", wo, mirror.Albedo, weight)
		}
	}
}

func TestDiffuseLightEmitsOnlyFrontFace(t *testing.T) {
	light := NewDiffuseLight(core.NewVec3(5, 5, 5))
	front := core.HitRecord{FrontFace: true}
	back := core.HitRecord{FrontFace: false}

	if e := light.Emitted(front); e.Subtract(core.NewVec3(5, 5, 5)).Length() > 1e-9 {
		t.Errorf("expected front-face emission (5,5,5), got %v", e)
	}
	if e := light.Emitted(back); !e.IsZero() {
		t.Errorf("expected zero emission from the back face, got %v", e)
	}
}
