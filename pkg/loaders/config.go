package loaders

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/df07/pathtracer/pkg/core"
)

// RenderConfig is the on-disk YAML render configuration: sampling
// parameters, the flat background color (and an optional sky-gradient
// override), and the table binding mesh material names to emissive
// radiance for scenes loaded from OBJ/glTF (those formats have no concept
// of a light, so a mesh's material name is the only hook available for
// marking a surface as emissive).
type RenderConfig struct {
	Width           int     `yaml:"width"`
	Height          int     `yaml:"height"`
	SamplesPerPixel int     `yaml:"samplesPerPixel"`
	MaxDepth        int     `yaml:"maxDepth"`
	RussianRoulette float64 `yaml:"russianRoulette"`
	SampleLights    bool    `yaml:"sampleLights"`
	Threads         int     `yaml:"threads"`

	Background         [3]float64 `yaml:"background"`
	GradientBackground bool       `yaml:"gradientBackground"`
	BackgroundTop      [3]float64 `yaml:"backgroundTop"`
	BackgroundLow      [3]float64 `yaml:"backgroundBottom"`

	Lights []MaterialRadiance `yaml:"lights"`
}

// MaterialRadiance pairs a material name (as referenced by a scene's XML
// material table) with the radiance it emits when it should act as a
// light source.
type MaterialRadiance struct {
	Material string     `yaml:"material"`
	Emission [3]float64 `yaml:"emission"`
}

// LoadRenderConfig reads a YAML render configuration from path.
func LoadRenderConfig(path string) (*RenderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read render config %q: %w", path, err)
	}

	cfg := defaultRenderConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse render config %q: %w", path, err)
	}
	return cfg, nil
}

func defaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		Width:              400,
		Height:             400,
		SamplesPerPixel:    1,
		MaxDepth:           10,
		RussianRoulette:    0.8,
		SampleLights:       true,
		Threads:            16,
		Background:         [3]float64{0, 0, 0},
		GradientBackground: false,
		BackgroundTop:      [3]float64{0.5, 0.7, 1.0},
		BackgroundLow:      [3]float64{1.0, 1.0, 1.0},
	}
}

// SamplingConfig converts the loaded YAML into the core sampling
// parameters the integrator and renderer consume.
func (c *RenderConfig) SamplingConfig() core.SamplingConfig {
	return core.SamplingConfig{
		Width:           c.Width,
		Height:          c.Height,
		SamplesPerPixel: c.SamplesPerPixel,
		MaxDepth:        c.MaxDepth,
		RussianRoulette: c.RussianRoulette,
		SampleLights:    c.SampleLights,
	}
}

// EmissionFor looks up the emissive radiance bound to a material name,
// returning false if the name isn't listed as a light in this config.
func (c *RenderConfig) EmissionFor(material string) (core.Vec3, bool) {
	for _, l := range c.Lights {
		if l.Material == material {
			return core.NewVec3(l.Emission[0], l.Emission[1], l.Emission[2]), true
		}
	}
	return core.Vec3{}, false
}
