package geometry

import (
	"math"

	"github.com/df07/pathtracer/pkg/core"
)

// TriangleMesh is a collection of triangles built from shared vertex data
// and accelerated by its own internal BVH.
type TriangleMesh struct {
	triangles []core.Shape
	bvh       *core.BVH
	bbox      core.AABB
	area      float64
}

// TriangleMeshOptions carries the optional per-face/per-vertex data a mesh
// loader may have available; nil fields fall back to computed values.
type TriangleMeshOptions struct {
	Normals   []core.Vec3 // one per triangle, overrides the winding-derived normal
	Materials []core.Material
	Rotation  *core.Vec3
	Center    *core.Vec3
	VertexUVs []core.Vec2
}

// NewTriangleMesh builds a mesh from a vertex buffer and a flat face-index
// list (three indices per triangle).
func NewTriangleMesh(vertices []core.Vec3, faces []int, mat core.Material, options *TriangleMeshOptions) *TriangleMesh {
	if len(faces)%3 != 0 {
		panic("face indices must be a multiple of 3")
	}
	numTriangles := len(faces) / 3

	if options != nil {
		if options.Normals != nil && len(options.Normals) != numTriangles {
			panic("number of normals must match number of triangles")
		}
		if options.Materials != nil && len(options.Materials) != numTriangles {
			panic("number of materials must match number of triangles")
		}
		if options.VertexUVs != nil && len(options.VertexUVs) != len(vertices) {
			panic("number of vertex UVs must match number of vertices")
		}
	}

	workingVertices := vertices
	if options != nil && options.Rotation != nil {
		workingVertices = make([]core.Vec3, len(vertices))
		for i, v := range vertices {
			if options.Center != nil {
				v = v.Subtract(*options.Center)
			}
			v = rotateVertex(v, *options.Rotation)
			if options.Center != nil {
				v = v.Add(*options.Center)
			}
			workingVertices[i] = v
		}
	}

	triangles := make([]core.Shape, numTriangles)
	for i := 0; i < numTriangles; i++ {
		i0, i1, i2 := faces[i*3], faces[i*3+1], faces[i*3+2]
		if i0 < 0 || i1 < 0 || i2 < 0 || i0 >= len(workingVertices) || i1 >= len(workingVertices) || i2 >= len(workingVertices) {
			panic("face index out of bounds")
		}

		triMaterial := mat
		if options != nil && options.Materials != nil {
			triMaterial = options.Materials[i]
		}

		v0, v1, v2 := workingVertices[i0], workingVertices[i1], workingVertices[i2]
		hasUVs := options != nil && options.VertexUVs != nil
		hasNormals := options != nil && options.Normals != nil

		switch {
		case hasUVs && hasNormals:
			triangles[i] = NewTriangleWithNormalAndUVs(v0, v1, v2,
				options.VertexUVs[i0], options.VertexUVs[i1], options.VertexUVs[i2],
				options.Normals[i], triMaterial)
		case hasUVs:
			triangles[i] = NewTriangleWithUVs(v0, v1, v2,
				options.VertexUVs[i0], options.VertexUVs[i1], options.VertexUVs[i2], triMaterial)
		case hasNormals:
			triangles[i] = NewTriangleWithNormal(v0, v1, v2, options.Normals[i], triMaterial)
		default:
			triangles[i] = NewTriangle(v0, v1, v2, triMaterial)
		}
	}

	bbox := core.AABB{X: core.Empty, Y: core.Empty, Z: core.Empty}
	area := 0.0
	for _, tri := range triangles {
		bbox = bbox.Union(tri.BoundingBox())
		area += tri.Area()
	}

	return &TriangleMesh{
		triangles: triangles,
		bvh:       core.NewBVH(triangles),
		bbox:      bbox,
		area:      area,
	}
}

// Hit implements core.Shape via the mesh's internal BVH.
func (tm *TriangleMesh) Hit(ray core.Ray, tRange core.Interval) (core.HitRecord, bool) {
	return tm.bvh.Hit(ray, tRange)
}

// BoundingBox implements core.Shape
func (tm *TriangleMesh) BoundingBox() core.AABB {
	return tm.bbox
}

// Area implements core.Shape, the summed area of every triangle in the mesh.
func (tm *TriangleMesh) Area() float64 {
	return tm.area
}

// Sample implements core.Shape by delegating to the internal BVH's
// area-weighted sampling.
func (tm *TriangleMesh) Sample(sampler *core.Sampler) (point, normal, emission core.Vec3) {
	return tm.bvh.Sample(sampler)
}

// TriangleCount returns the number of triangles in the mesh.
func (tm *TriangleMesh) TriangleCount() int {
	return len(tm.triangles)
}

// Triangles returns the mesh's individual triangles, e.g. for extracting the
// emissive subset into a lights tree.
func (tm *TriangleMesh) Triangles() []core.Shape {
	return tm.triangles
}

// rotateVertex applies rotation around X, then Y, then Z.
func rotateVertex(v, rotation core.Vec3) core.Vec3 {
	if rotation.X != 0 {
		c, s := math.Cos(rotation.X), math.Sin(rotation.X)
		v = core.NewVec3(v.X, v.Y*c-v.Z*s, v.Y*s+v.Z*c)
	}
	if rotation.Y != 0 {
		c, s := math.Cos(rotation.Y), math.Sin(rotation.Y)
		v = core.NewVec3(v.X*c+v.Z*s, v.Y, -v.X*s+v.Z*c)
	}
	if rotation.Z != 0 {
		c, s := math.Cos(rotation.Z), math.Sin(rotation.Z)
		v = core.NewVec3(v.X*c-v.Y*s, v.X*s+v.Y*c, v.Z)
	}
	return v
}
