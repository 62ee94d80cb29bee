package models

import (
	"encoding/binary"
	"fmt"
	"math"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/tinyrender/pkg/math3d"
)

// LoadGLTF loads a glTF 2.0 file (.gltf or .glb) into a single mesh.
//
// Every triangle primitive of every mesh in the document is appended in
// document order. Only positions and indices are read; glTF's
// counter-clockwise front faces already match the flat shader's winding.
// Material base color factors become Materials.
func LoadGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	mesh := NewMesh(filepath.Base(path))
	mesh.Materials = readMaterials(doc)

	for _, m := range doc.Meshes {
		if err := appendPrimitives(doc, m, mesh); err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
	}

	if err := mesh.Validate(); err != nil {
		return nil, fmt.Errorf("gltf %s: %w", mesh.Name, err)
	}
	mesh.CalculateBounds()

	return mesh, nil
}

func readMaterials(doc *gltf.Document) []Material {
	mats := make([]Material, len(doc.Materials))
	for i, m := range doc.Materials {
		mats[i] = Material{Name: m.Name, BaseColor: [4]float64{1, 1, 1, 1}}
		if pbr := m.PBRMetallicRoughness; pbr != nil && pbr.BaseColorFactor != nil {
			mats[i].BaseColor = *pbr.BaseColorFactor
		}
	}
	return mats
}

// appendPrimitives extracts triangle geometry from a glTF mesh.
func appendPrimitives(doc *gltf.Document, m *gltf.Mesh, mesh *Mesh) error {
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles {
			// Skip non-triangle primitives (lines, points, strips)
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}

		positions, err := readPositions(doc, posIdx)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		material := -1
		if prim.Material != nil {
			material = *prim.Material
		}

		baseVertex := len(mesh.Vertices)
		mesh.Vertices = append(mesh.Vertices, positions...)

		var indices []int
		if prim.Indices != nil {
			indices, err = readIndices(doc, *prim.Indices)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
		} else {
			// No indices, assume sequential triangles
			indices = make([]int, len(positions))
			for i := range indices {
				indices[i] = i
			}
		}

		for i := 0; i+2 < len(indices); i += 3 {
			mesh.Faces = append(mesh.Faces, Face{
				V: [3]int{
					baseVertex + indices[i],
					baseVertex + indices[i+1],
					baseVertex + indices[i+2],
				},
				Material: material,
			})
		}
	}

	return nil
}

// accessorBytes returns the buffer backing accessor idx, the offset of its
// first element and the distance between elements.
func accessorBytes(doc *gltf.Document, idx, elemSize int) (*gltf.Accessor, []byte, int, int, error) {
	if idx < 0 || idx >= len(doc.Accessors) {
		return nil, nil, 0, 0, fmt.Errorf("accessor %d out of range", idx)
	}
	accessor := doc.Accessors[idx]
	if accessor.BufferView == nil {
		return nil, nil, 0, 0, fmt.Errorf("accessor %d has no buffer view", idx)
	}

	if v := *accessor.BufferView; v < 0 || v >= len(doc.BufferViews) {
		return nil, nil, 0, 0, fmt.Errorf("buffer view %d out of range", v)
	}
	bufferView := doc.BufferViews[*accessor.BufferView]
	if b := bufferView.Buffer; b < 0 || b >= len(doc.Buffers) {
		return nil, nil, 0, 0, fmt.Errorf("buffer %d out of range", b)
	}
	data := doc.Buffers[bufferView.Buffer].Data
	if data == nil {
		return nil, nil, 0, 0, fmt.Errorf("buffer %d has no data", bufferView.Buffer)
	}

	start := bufferView.ByteOffset + accessor.ByteOffset
	stride := bufferView.ByteStride
	if stride == 0 {
		stride = elemSize
	}
	if accessor.Count > 0 {
		if end := start + (accessor.Count-1)*stride + elemSize; end > len(data) {
			return nil, nil, 0, 0, fmt.Errorf("accessor %d overruns buffer (%d > %d bytes)", idx, end, len(data))
		}
	}
	return accessor, data, start, stride, nil
}

// readPositions reads a float VEC3 accessor.
func readPositions(doc *gltf.Document, idx int) ([]math3d.Vec3, error) {
	accessor, data, start, stride, err := accessorBytes(doc, idx, 12)
	if err != nil {
		return nil, err
	}
	if accessor.Type != gltf.AccessorVec3 || accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("expected float VEC3, got %v / %v", accessor.Type, accessor.ComponentType)
	}

	result := make([]math3d.Vec3, accessor.Count)
	for i := range result {
		offset := start + i*stride
		result[i] = math3d.V3(
			float64(readFloat32(data[offset:])),
			float64(readFloat32(data[offset+4:])),
			float64(readFloat32(data[offset+8:])),
		)
	}
	return result, nil
}

// readIndices reads an unsigned integer SCALAR accessor.
func readIndices(doc *gltf.Document, idx int) ([]int, error) {
	if idx < 0 || idx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", idx)
	}

	var size int
	switch ct := doc.Accessors[idx].ComponentType; ct {
	case gltf.ComponentUbyte:
		size = 1
	case gltf.ComponentUshort:
		size = 2
	case gltf.ComponentUint:
		size = 4
	default:
		return nil, fmt.Errorf("unexpected index type: %v", ct)
	}

	accessor, data, start, stride, err := accessorBytes(doc, idx, size)
	if err != nil {
		return nil, err
	}
	if accessor.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("expected SCALAR, got %v", accessor.Type)
	}

	result := make([]int, accessor.Count)
	for i := range result {
		b := data[start+i*stride:]
		switch size {
		case 1:
			result[i] = int(b[0])
		case 2:
			result[i] = int(binary.LittleEndian.Uint16(b))
		case 4:
			result[i] = int(binary.LittleEndian.Uint32(b))
		}
	}
	return result, nil
}

// readFloat32 reads a little-endian float32.
func readFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
