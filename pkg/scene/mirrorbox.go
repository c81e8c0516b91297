package scene

import (
	"github.com/df07/pathtracer/pkg/camera"
	"github.com/df07/pathtracer/pkg/core"
	"github.com/df07/pathtracer/pkg/material"
)

// NewMirrorBoxScene builds a small room of perfect mirrors with a single
// diffuse light and a diffuse floor, used to exercise the "mirror echo"
// scenario: a specular bounce that must reach the light through exactly one
// reflection, with skip_light_sampling forcing the contribution through
// BSDF sampling rather than NEE.
func NewMirrorBoxScene() *Scene {
	config := camera.Config{
		Center:        core.NewVec3(278, 278, -700),
		LookAt:        core.NewVec3(278, 278, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         300,
		AspectRatio:   1.0,
		VFov:          40.0,
		Aperture:      0.0,
		FocusDistance: 0.0,
	}
	cam := camera.New(config)

	samplingConfig := core.SamplingConfig{
		Width:           config.Width,
		Height:          cam.Height,
		SamplesPerPixel: 256,
		MaxDepth:        24,
		RussianRoulette: 0.8,
		SampleLights:    true,
	}

	mirror := material.NewPerfectMirror(core.NewVec3(0.95, 0.95, 0.95))
	floor := material.NewLambertian(core.NewVec3(0.4, 0.4, 0.4))
	lightMat := material.NewDiffuseLight(core.NewVec3(25.0, 25.0, 25.0))

	boxSize := 555.0
	var shapes []core.Shape
	shapes = append(shapes, quad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), floor)...)
	shapes = append(shapes, quad(core.NewVec3(0, boxSize, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), mirror)...)
	shapes = append(shapes, quad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), mirror)...)
	shapes = append(shapes, quad(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, boxSize), core.NewVec3(0, boxSize, 0), mirror)...)
	shapes = append(shapes, quad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), mirror)...)

	lightSize := 100.0
	lightOffset := (boxSize - lightSize) / 2.0
	lightShapes := quad(
		core.NewVec3(lightOffset, boxSize-1, lightOffset),
		core.NewVec3(lightSize, 0, 0),
		core.NewVec3(0, 0, lightSize),
		lightMat,
	)
	shapes = append(shapes, lightShapes...)

	return New(cam, shapes, lightShapes, samplingConfig)
}
