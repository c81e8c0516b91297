package scene

import (
	"fmt"
	"strings"

	"github.com/df07/pathtracer/pkg/camera"
	"github.com/df07/pathtracer/pkg/core"
	"github.com/df07/pathtracer/pkg/geometry"
	"github.com/df07/pathtracer/pkg/loaders"
)

// LoadCustom builds a Scene from a mesh file (OBJ or glTF, chosen by
// extension), a companion XML scene-description document, and a YAML
// render configuration. The whole mesh shares the scene document's
// "Default" material; if that material is a light, the entire mesh also
// becomes the lights BVH. Mesh formats carry no per-face material-group
// concept the way the XML document's material table implies one exists,
// so a single bound material is the practical ceiling for this loader —
// scenes needing multiple materials on one mesh use the built-in scenes
// (NewCornellScene, NewMirrorBoxScene) instead, which assign materials
// per triangle directly in code.
func LoadCustom(meshPath, scenePath, configPath string) (*Scene, error) {
	mesh, err := loadMesh(meshPath)
	if err != nil {
		return nil, err
	}

	doc, err := loaders.LoadSceneDocument(scenePath)
	if err != nil {
		return nil, err
	}

	cfg, err := loaders.LoadRenderConfig(configPath)
	if err != nil {
		return nil, err
	}

	materials, isLight, err := doc.Materials()
	if err != nil {
		return nil, err
	}
	mat, ok := materials["Default"]
	if !ok {
		return nil, fmt.Errorf("scene document %q has no material named %q", scenePath, "Default")
	}

	aspectRatio := float64(cfg.Width) / float64(cfg.Height)
	center, lookAt, up, vfov, aperture, focusDistance, err := doc.CameraConfig(cfg.Width, aspectRatio)
	if err != nil {
		return nil, err
	}

	camConfig := camera.Config{
		Center:        center,
		LookAt:        lookAt,
		Up:            up,
		Width:         cfg.Width,
		AspectRatio:   aspectRatio,
		VFov:          vfov,
		Aperture:      aperture,
		FocusDistance: focusDistance,
	}
	cam := camera.New(camConfig)

	var opts *geometry.TriangleMeshOptions
	if len(mesh.Normals) > 0 || len(mesh.UVs) > 0 {
		opts = &geometry.TriangleMeshOptions{VertexUVs: mesh.UVs}
	}
	triMesh := geometry.NewTriangleMesh(mesh.Positions, mesh.Faces, mat, opts)

	shapes := []core.Shape{triMesh}
	var lights []core.Shape
	if isLight["Default"] {
		lights = shapes
	}

	s := New(cam, shapes, lights, cfg.SamplingConfig())
	s.Background = core.NewVec3(cfg.Background[0], cfg.Background[1], cfg.Background[2])
	s.GradientBackground = cfg.GradientBackground
	s.BackgroundTop = core.NewVec3(cfg.BackgroundTop[0], cfg.BackgroundTop[1], cfg.BackgroundTop[2])
	s.BackgroundBottom = core.NewVec3(cfg.BackgroundLow[0], cfg.BackgroundLow[1], cfg.BackgroundLow[2])
	return s, nil
}

func loadMesh(path string) (*loaders.MeshData, error) {
	if strings.HasSuffix(strings.ToLower(path), ".obj") {
		return loaders.LoadOBJ(path)
	}
	return loaders.LoadGLTF(path)
}
