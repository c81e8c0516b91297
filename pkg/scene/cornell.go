package scene

import (
	"github.com/df07/pathtracer/pkg/camera"
	"github.com/df07/pathtracer/pkg/core"
	"github.com/df07/pathtracer/pkg/geometry"
	"github.com/df07/pathtracer/pkg/material"
)

// quad builds two triangles spanning corner, corner+u, corner+u+v, corner+v.
func quad(corner, u, v core.Vec3, mat core.Material) []core.Shape {
	a := corner
	b := corner.Add(u)
	c := corner.Add(u).Add(v)
	d := corner.Add(v)
	return []core.Shape{
		geometry.NewTriangle(a, b, c, mat),
		geometry.NewTriangle(a, c, d, mat),
	}
}

// box builds six quads (as triangle pairs) spanning the axis-aligned box
// from min to max, all sharing mat, with normals facing outward.
func box(min, max core.Vec3, mat core.Material) []core.Shape {
	var shapes []core.Shape
	dx := core.NewVec3(max.X-min.X, 0, 0)
	dy := core.NewVec3(0, max.Y-min.Y, 0)
	dz := core.NewVec3(0, 0, max.Z-min.Z)

	shapes = append(shapes, quad(core.NewVec3(min.X, min.Y, min.Z), dx, dz, mat)...) // bottom
	shapes = append(shapes, quad(core.NewVec3(min.X, max.Y, min.Z), dz, dx, mat)...) // top
	shapes = append(shapes, quad(core.NewVec3(min.X, min.Y, min.Z), dz, dy, mat)...) // left (x=min)
	shapes = append(shapes, quad(core.NewVec3(max.X, min.Y, min.Z), dy, dz, mat)...) // right (x=max)
	shapes = append(shapes, quad(core.NewVec3(min.X, min.Y, min.Z), dy, dx, mat)...) // front (z=min)
	shapes = append(shapes, quad(core.NewVec3(min.X, min.Y, max.Z), dx, dy, mat)...) // back (z=max)
	return shapes
}

// NewCornellScene builds the classic Cornell box: five Lambertian walls, a
// ceiling area light, a perfect mirror block and a Cook-Torrance block,
// standing in for the original's glass and metal spheres now that the
// renderer's only primitive is the triangle.
func NewCornellScene() *Scene {
	config := camera.Config{
		Center:        core.NewVec3(278, 278, -800),
		LookAt:        core.NewVec3(278, 278, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   1.0,
		VFov:          40.0,
		Aperture:      0.0,
		FocusDistance: 0.0,
	}
	cam := camera.New(config)

	samplingConfig := core.SamplingConfig{
		Width:           config.Width,
		Height:          cam.Height,
		SamplesPerPixel: 150,
		MaxDepth:        40,
		RussianRoulette: 0.8,
		SampleLights:    true,
	}

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	lightMat := material.NewDiffuseLight(core.NewVec3(15.0, 15.0, 15.0))
	mirror := material.NewPerfectMirror(core.NewVec3(0.9, 0.9, 0.9))
	gold := material.NewCookTorrance(core.NewVec3(1, 1, 1), 0.08, 0.08, core.NewVec3(0.18, 0.42, 1.37), core.NewVec3(3.42, 2.35, 1.77))

	boxSize := 555.0
	var shapes []core.Shape

	shapes = append(shapes, quad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white)...)         // floor
	shapes = append(shapes, quad(core.NewVec3(0, boxSize, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white)...)   // ceiling
	shapes = append(shapes, quad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), white)...)   // back wall
	shapes = append(shapes, quad(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, boxSize), core.NewVec3(0, boxSize, 0), red)...)           // left wall
	shapes = append(shapes, quad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), green)...)   // right wall

	lightSize := 130.0
	lightOffset := (boxSize - lightSize) / 2.0
	lightShapes := quad(
		core.NewVec3(lightOffset, boxSize-1, lightOffset),
		core.NewVec3(lightSize, 0, 0),
		core.NewVec3(0, 0, lightSize),
		lightMat,
	)
	shapes = append(shapes, lightShapes...)

	shapes = append(shapes, box(core.NewVec3(130, 0, 100), core.NewVec3(290, 330, 260), mirror)...)
	shapes = append(shapes, box(core.NewVec3(310, 0, 300), core.NewVec3(470, 165, 460), gold)...)

	return New(cam, shapes, lightShapes, samplingConfig)
}
