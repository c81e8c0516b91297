package loaders

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/df07/pathtracer/pkg/core"
)

// LoadGLTF reads a glTF or GLB document and flattens every triangle
// primitive of every mesh in the document into a single MeshData (node
// transforms are not applied), the same shape LoadOBJ produces so both
// loaders feed geometry.NewTriangleMesh identically.
func LoadGLTF(path string) (*MeshData, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open glTF file %q: %w", path, err)
	}

	data := &MeshData{}
	for _, mesh := range doc.Meshes {
		for _, prim := range mesh.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				continue
			}
			if err := appendPrimitive(doc, prim, data); err != nil {
				return nil, fmt.Errorf("failed to read glTF primitive in mesh %q: %w", mesh.Name, err)
			}
		}
	}

	if len(data.Faces) == 0 {
		return nil, fmt.Errorf("no triangle primitives found in glTF file %q", path)
	}
	return data, nil
}

func appendPrimitive(doc *gltf.Document, prim *gltf.Primitive, data *MeshData) error {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil
	}

	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return fmt.Errorf("read POSITION: %w", err)
	}

	var normals [][3]float32
	if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
		normals, err = modeler.ReadNormal(doc, doc.Accessors[normIdx], nil)
		if err != nil {
			return fmt.Errorf("read NORMAL: %w", err)
		}
	}

	var uvs [][2]float32
	if uvIdx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[uvIdx], nil)
		if err != nil {
			return fmt.Errorf("read TEXCOORD_0: %w", err)
		}
	}

	base := len(data.Positions)
	hasNormals := len(normals) == len(positions)
	hasUVs := len(uvs) == len(positions)

	for i, p := range positions {
		data.Positions = append(data.Positions, core.NewVec3(float64(p[0]), float64(p[1]), float64(p[2])))
		if hasNormals {
			n := normals[i]
			data.Normals = append(data.Normals, core.NewVec3(float64(n[0]), float64(n[1]), float64(n[2])))
		}
		if hasUVs {
			uv := uvs[i]
			// glTF's UV origin is top-left; this renderer's V=0 is the bottom.
			data.UVs = append(data.UVs, core.NewVec2(float64(uv[0]), 1.0-float64(uv[1])))
		}
	}

	if prim.Indices == nil {
		for i := 0; i+2 < len(positions); i += 3 {
			data.Faces = append(data.Faces, base+i, base+i+1, base+i+2)
		}
		return nil
	}

	indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
	if err != nil {
		return fmt.Errorf("read indices: %w", err)
	}
	for i := 0; i+2 < len(indices); i += 3 {
		data.Faces = append(data.Faces, base+int(indices[i]), base+int(indices[i+1]), base+int(indices[i+2]))
	}
	return nil
}
