package loaders

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/df07/pathtracer/pkg/core"
)

// MeshData is the flattened vertex/face representation geometry.NewTriangleMesh
// consumes: one position, optional normal and UV, per unique "v/vt/vn"
// combination seen in the file, and a flat face-index list (a triple per
// triangle after fan triangulation).
type MeshData struct {
	Positions []core.Vec3
	Normals   []core.Vec3 // empty if the file had no vn lines
	UVs       []core.Vec2 // empty if the file had no vt lines
	Faces     []int
}

// LoadOBJ parses a Wavefront .obj file into a MeshData, fan-triangulating any
// face with more than three vertices and deduplicating "v/vt/vn" vertex keys
// the way most OBJ importers do.
func LoadOBJ(path string) (*MeshData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer f.Close()

	var positions, normals []core.Vec3
	var uvs []core.Vec2

	data := &MeshData{}
	vertexMap := make(map[string]int) // "v/vt/vn" -> index into data.Positions/Normals/UVs

	hasNormals, hasUVs := false, false

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "v":
			if len(parts) >= 4 {
				positions = append(positions, parseVec3(parts[1:4]))
			}
		case "vn":
			if len(parts) >= 4 {
				normals = append(normals, parseVec3(parts[1:4]))
				hasNormals = true
			}
		case "vt":
			if len(parts) >= 3 {
				u, _ := strconv.ParseFloat(parts[1], 64)
				v, _ := strconv.ParseFloat(parts[2], 64)
				uvs = append(uvs, core.NewVec2(u, v))
				hasUVs = true
			}
		case "f":
			faceVerts := make([]int, 0, len(parts)-1)
			for _, spec := range parts[1:] {
				idx, ok := vertexMap[spec]
				if !ok {
					idx = len(data.Positions)
					pos, uv, nrm := parseFaceVertex(spec, positions, uvs, normals)
					data.Positions = append(data.Positions, pos)
					if hasUVs {
						data.UVs = append(data.UVs, uv)
					}
					if hasNormals {
						data.Normals = append(data.Normals, nrm)
					}
					vertexMap[spec] = idx
				}
				faceVerts = append(faceVerts, idx)
			}
			for i := 2; i < len(faceVerts); i++ {
				data.Faces = append(data.Faces, faceVerts[0], faceVerts[i-1], faceVerts[i])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read OBJ file: %w", err)
	}

	if len(data.Faces) == 0 {
		return nil, fmt.Errorf("no faces found in OBJ file %q", path)
	}

	return data, nil
}

func parseVec3(fields []string) core.Vec3 {
	x, _ := strconv.ParseFloat(fields[0], 64)
	y, _ := strconv.ParseFloat(fields[1], 64)
	z, _ := strconv.ParseFloat(fields[2], 64)
	return core.NewVec3(x, y, z)
}

// parseFaceVertex resolves a single "v", "v/vt" or "v/vt/vn" face token
// (with OBJ's 1-based and optionally negative relative indices) against the
// position/UV/normal tables accumulated so far.
func parseFaceVertex(spec string, positions []core.Vec3, uvs []core.Vec2, normals []core.Vec3) (pos core.Vec3, uv core.Vec2, normal core.Vec3) {
	parts := strings.Split(spec, "/")

	if len(parts) >= 1 && parts[0] != "" {
		if idx := resolveIndex(parts[0], len(positions)); idx >= 0 {
			pos = positions[idx]
		}
	}
	if len(parts) >= 2 && parts[1] != "" {
		if idx := resolveIndex(parts[1], len(uvs)); idx >= 0 {
			uv = uvs[idx]
		}
	}
	if len(parts) >= 3 && parts[2] != "" {
		if idx := resolveIndex(parts[2], len(normals)); idx >= 0 {
			normal = normals[idx]
		}
	}
	return pos, uv, normal
}

func resolveIndex(s string, count int) int {
	idx, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	if idx < 0 {
		idx = count + idx + 1
	}
	if idx <= 0 || idx > count {
		return -1
	}
	return idx - 1
}
