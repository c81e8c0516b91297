package loaders

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func TestLoadOBJTriangulatesAndDedupesVertices(t *testing.T) {
	obj := `
# a unit square, quad face
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`
	path := writeTempFile(t, "square.obj", obj)
	data, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("LoadOBJ failed: %v", err)
	}
	if len(data.Positions) != 4 {
		t.Errorf("expected 4 deduplicated vertices, got %d", len(data.Positions))
	}
	if len(data.Faces) != 6 {
		t.Errorf("expected a quad to fan-triangulate into 6 face indices (2 triangles), got %d", len(data.Faces))
	}
}

func TestLoadOBJParsesNormalsAndUVs(t *testing.T) {
	obj := `
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1
`
	path := writeTempFile(t, "tri.obj", obj)
	data, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("LoadOBJ failed: %v", err)
	}
	if len(data.Normals) != 3 {
		t.Errorf("expected 3 normals (one per vertex occurrence), got %d", len(data.Normals))
	}
	if len(data.UVs) != 3 {
		t.Errorf("expected 3 UVs, got %d", len(data.UVs))
	}
	if math.Abs(data.Normals[0].Z-1) > 1e-9 {
		t.Errorf("expected normal (0,0,1), got %v", data.Normals[0])
	}
}

func TestLoadOBJErrorsOnNoFaces(t *testing.T) {
	path := writeTempFile(t, "empty.obj", "v 0 0 0\nv 1 0 0\nv 0 1 0\n")
	if _, err := LoadOBJ(path); err == nil {
		t.Error("expected an error when an OBJ file has no faces")
	}
}

func TestLoadOBJMissingFileErrors(t *testing.T) {
	if _, err := LoadOBJ(filepath.Join(t.TempDir(), "missing.obj")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
