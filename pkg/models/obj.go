package models

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taigrr/tinyrender/pkg/math3d"
)

// LoadOBJ loads a Wavefront OBJ file.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()

	return ParseOBJ(f, filepath.Base(path))
}

// ParseOBJ reads the geometry of a Wavefront OBJ stream.
//
// Only "v" (position) and "f" (face) records are used; everything else,
// including texture coordinates, normals and groups, is skipped. Face
// vertices may be written as i, i/t, i//n or i/t/n; only i is kept. Negative
// indices count back from the most recent vertex. Polygons with more than
// three vertices are split into a triangle fan around their first vertex.
func ParseOBJ(r io.Reader, name string) (*Mesh, error) {
	mesh := NewMesh(name)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", name, lineNo, err)
			}
			mesh.Vertices = append(mesh.Vertices, v)
		case "f":
			if err := parseFace(mesh, fields[1:]); err != nil {
				return nil, fmt.Errorf("%s:%d: %w", name, lineNo, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}

	mesh.CalculateBounds()
	return mesh, nil
}

// parseVertex reads x y z, ignoring an optional w.
func parseVertex(fields []string) (math3d.Vec3, error) {
	if len(fields) < 3 {
		return math3d.Vec3{}, fmt.Errorf("vertex needs 3 coordinates, got %d", len(fields))
	}
	var xyz [3]float64
	for i := range xyz {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return math3d.Vec3{}, fmt.Errorf("vertex coordinate %q: %w", fields[i], err)
		}
		xyz[i] = f
	}
	return math3d.V3(xyz[0], xyz[1], xyz[2]), nil
}

func parseFace(mesh *Mesh, fields []string) error {
	if len(fields) < 3 {
		return fmt.Errorf("face needs at least 3 vertices, got %d", len(fields))
	}

	idx := make([]int, len(fields))
	for i, tok := range fields {
		v, err := resolveIndex(tok, len(mesh.Vertices))
		if err != nil {
			return err
		}
		idx[i] = v
	}

	for i := 1; i+1 < len(idx); i++ {
		mesh.AddFace(idx[0], idx[i], idx[i+1])
	}
	return nil
}

// resolveIndex turns a 1-based or negative OBJ position reference into a
// 0-based index into the n vertices read so far.
func resolveIndex(tok string, n int) (int, error) {
	pos, _, _ := strings.Cut(tok, "/")
	i, err := strconv.Atoi(pos)
	if err != nil {
		return 0, fmt.Errorf("face vertex %q: %w", tok, err)
	}

	switch {
	case i > 0 && i <= n:
		return i - 1, nil
	case i < 0 && -i <= n:
		return n + i, nil
	}
	return 0, fmt.Errorf("face vertex %q: index out of range with %d vertices", tok, n)
}
