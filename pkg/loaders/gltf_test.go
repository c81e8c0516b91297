package loaders

import (
	"path/filepath"
	"testing"
)

func TestLoadGLTFMissingFileErrors(t *testing.T) {
	if _, err := LoadGLTF(filepath.Join(t.TempDir(), "missing.gltf")); err == nil {
		t.Error("expected an error for a missing glTF file")
	}
}

func TestLoadGLTFRejectsNonGLTFContent(t *testing.T) {
	path := writeTempFile(t, "notgltf.gltf", "this is not a glTF document")
	if _, err := LoadGLTF(path); err == nil {
		t.Error("expected an error when parsing invalid glTF content")
	}
}
