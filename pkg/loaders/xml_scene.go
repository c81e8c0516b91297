package loaders

import (
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/df07/pathtracer/pkg/core"
	"github.com/df07/pathtracer/pkg/material"
)

// SceneDocument is the companion scene-description document that
// accompanies a mesh file: camera parameters and a name-to-material
// binding table the mesh's face groups reference by name. No third-party
// XML library is wired here — none of the pack repos carry one, and
// encoding/xml already covers a flat attribute-based document like this.
type SceneDocument struct {
	XMLName  xml.Name        `xml:"scene"`
	Mesh     meshRef         `xml:"mesh"`
	Camera   cameraParams    `xml:"camera"`
	Materials []materialSpec `xml:"materials>material"`
}

type meshRef struct {
	File   string `xml:"file,attr"`
	Format string `xml:"format,attr"` // "obj" or "gltf"
}

type cameraParams struct {
	Center        string  `xml:"center,attr"`
	LookAt        string  `xml:"lookat,attr"`
	Up            string  `xml:"up,attr"`
	VFov          float64 `xml:"vfov,attr"`
	Aperture      float64 `xml:"aperture,attr"`
	FocusDistance float64 `xml:"focusDistance,attr"`
}

type materialSpec struct {
	Name      string  `xml:"name,attr"`
	Type      string  `xml:"type,attr"`
	Albedo    string  `xml:"albedo,attr"`
	Emission  string  `xml:"emission,attr"`
	Specular  string  `xml:"specular,attr"`
	Shininess float64 `xml:"shininess,attr"`
	IOR       string  `xml:"ior,attr"`
	K         string  `xml:"k,attr"`
	AlphaX    float64 `xml:"alphaX,attr"`
	AlphaY    float64 `xml:"alphaY,attr"`
}

// LoadSceneDocument parses a scene-description XML file.
func LoadSceneDocument(path string) (*SceneDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene document %q: %w", path, err)
	}

	doc := &SceneDocument{}
	if err := xml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to parse scene document %q: %w", path, err)
	}
	return doc, nil
}

// CameraConfig resolves the document's camera attributes into the
// vector/scalar form camera.New expects. aspectRatio and width must be
// supplied by the caller since they come from the render config, not the
// scene document.
func (d *SceneDocument) CameraConfig(width int, aspectRatio float64) (core.Vec3, core.Vec3, core.Vec3, float64, float64, float64, error) {
	center, err := parseVec3CSV(d.Camera.Center)
	if err != nil {
		return core.Vec3{}, core.Vec3{}, core.Vec3{}, 0, 0, 0, fmt.Errorf("camera center: %w", err)
	}
	lookAt, err := parseVec3CSV(d.Camera.LookAt)
	if err != nil {
		return core.Vec3{}, core.Vec3{}, core.Vec3{}, 0, 0, 0, fmt.Errorf("camera lookat: %w", err)
	}
	up := core.NewVec3(0, 1, 0)
	if d.Camera.Up != "" {
		up, err = parseVec3CSV(d.Camera.Up)
		if err != nil {
			return core.Vec3{}, core.Vec3{}, core.Vec3{}, 0, 0, 0, fmt.Errorf("camera up: %w", err)
		}
	}
	return center, lookAt, up, d.Camera.VFov, d.Camera.Aperture, d.Camera.FocusDistance, nil
}

// Materials builds the name-to-material table the mesh loader's face
// groups index into, returning the separate subset of names that emit
// light so callers can mark the corresponding triangles for the lights
// BVH.
func (d *SceneDocument) Materials() (map[string]core.Material, map[string]bool, error) {
	byName := make(map[string]core.Material, len(d.Materials))
	isLight := make(map[string]bool, len(d.Materials))

	for _, spec := range d.Materials {
		mat, emissive, err := buildMaterial(spec)
		if err != nil {
			return nil, nil, fmt.Errorf("material %q: %w", spec.Name, err)
		}
		byName[spec.Name] = mat
		isLight[spec.Name] = emissive
	}
	return byName, isLight, nil
}

func buildMaterial(spec materialSpec) (core.Material, bool, error) {
	switch strings.ToLower(spec.Type) {
	case "lambertian":
		albedo, err := parseVec3CSVOrDefault(spec.Albedo, core.NewVec3(0.5, 0.5, 0.5))
		if err != nil {
			return nil, false, err
		}
		return material.NewLambertian(albedo), false, nil

	case "diffuselight":
		emission, err := parseVec3CSVOrDefault(spec.Emission, core.NewVec3(1, 1, 1))
		if err != nil {
			return nil, false, err
		}
		return material.NewDiffuseLight(emission), true, nil

	case "mirror":
		albedo, err := parseVec3CSVOrDefault(spec.Albedo, core.NewVec3(1, 1, 1))
		if err != nil {
			return nil, false, err
		}
		return material.NewPerfectMirror(albedo), false, nil

	case "phong":
		diffuse, err := parseVec3CSVOrDefault(spec.Albedo, core.NewVec3(0.5, 0.5, 0.5))
		if err != nil {
			return nil, false, err
		}
		specular, err := parseVec3CSVOrDefault(spec.Specular, core.NewVec3(0.5, 0.5, 0.5))
		if err != nil {
			return nil, false, err
		}
		return material.NewPhongReflectance(diffuse, specular, spec.Shininess), false, nil

	case "cooktorrance":
		albedo, err := parseVec3CSVOrDefault(spec.Albedo, core.NewVec3(1, 1, 1))
		if err != nil {
			return nil, false, err
		}
		ior, err := parseVec3CSVOrDefault(spec.IOR, core.NewVec3(1, 1, 1))
		if err != nil {
			return nil, false, err
		}
		k, err := parseVec3CSVOrDefault(spec.K, core.NewVec3(0, 0, 0))
		if err != nil {
			return nil, false, err
		}
		return material.NewCookTorrance(albedo, spec.AlphaX, spec.AlphaY, ior, k), false, nil

	case "debug":
		return material.NewDebugMaterial(), false, nil

	default:
		return nil, false, fmt.Errorf("unsupported material type %q", spec.Type)
	}
}

func parseVec3CSVOrDefault(s string, def core.Vec3) (core.Vec3, error) {
	if s == "" {
		return def, nil
	}
	return parseVec3CSV(s)
}

func parseVec3CSV(s string) (core.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return core.Vec3{}, fmt.Errorf("expected 3 comma-separated components, got %q", s)
	}
	vals := make([]float64, 3)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("invalid component %q: %w", p, err)
		}
		vals[i] = v
	}
	return core.NewVec3(vals[0], vals[1], vals[2]), nil
}
