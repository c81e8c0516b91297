package core

// SamplingConfig controls per-pixel sampling and path depth.
type SamplingConfig struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int

	// RussianRoulette is the fixed survival probability q applied to every
	// indirect bounce: a path survives when random_unit_01() < q, and its
	// throughput is scaled by 1/q to keep the estimator unbiased.
	RussianRoulette float64

	// SampleLights enables next-event estimation against the scene's lights
	// BVH. A material's own SkipLightSampling still gates NEE per-vertex;
	// this is the scene-wide switch on top of that.
	SampleLights bool
}
