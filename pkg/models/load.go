package models

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned by Load for file extensions it has no
// loader for.
var ErrUnsupportedFormat = errors.New("unsupported model format")

// IndexError reports a face that references a vertex outside the mesh.
type IndexError struct {
	Face     int
	Index    int
	Vertices int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("face %d: vertex index %d out of range [0,%d)", e.Face, e.Index, e.Vertices)
}

// Load reads a mesh from path, choosing the loader by file extension:
// .obj for Wavefront OBJ, .gltf and .glb for glTF 2.0.
func Load(path string) (*Mesh, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return LoadOBJ(path)
	case ".gltf", ".glb":
		return LoadGLTF(path)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}
