// Package obj reads and writes the subset of Wavefront OBJ that the viewer
// needs: vertex positions and faces. Everything else (normals, texture
// coordinates, materials, groups) is skipped on read and never written.
package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"view3d/transform"
)

// Model is one loaded mesh. Vertices is the mutable point sequence the
// transform package operates on; Faces index into it, zero-based.
type Model struct {
	Vertices []transform.Point
	Faces    [][]int
}

// Decode parses an OBJ stream. Face indices may be 1-based or negative
// (relative to the vertices seen so far), and may carry /vt and /vn parts,
// which are dropped. Malformed records fail with their line number.
func Decode(r io.Reader) (*Model, error) {
	m := &Model{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			p, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			m.Vertices = append(m.Vertices, p)
		case "f":
			face, err := parseFace(fields[1:], len(m.Vertices))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			m.Faces = append(m.Faces, face)
		default:
			// vn, vt, o, g, s, mtllib, usemtl and friends.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}
	return m, nil
}

func parseVertex(fields []string) (transform.Point, error) {
	if len(fields) < 3 {
		return transform.Point{}, fmt.Errorf("vertex needs 3 coordinates, got %d", len(fields))
	}
	var p transform.Point
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return transform.Point{}, fmt.Errorf("vertex coordinate %q: %w", fields[i], err)
		}
		p[i] = v
	}
	// A fourth w coordinate, if present, is ignored.
	return p, nil
}

func parseFace(fields []string, vertexCount int) ([]int, error) {
	if len(fields) < 2 {
		return nil, fmt.Errorf("face needs at least 2 vertices, got %d", len(fields))
	}
	face := make([]int, 0, len(fields))
	for _, f := range fields {
		// "7", "7/1" and "7/1/3" all reference vertex 7.
		idxStr, _, _ := strings.Cut(f, "/")
		idx, err := strconv.Atoi(idxStr)
		if err != nil {
			return nil, fmt.Errorf("face index %q: %w", f, err)
		}
		switch {
		case idx > 0 && idx <= vertexCount:
			face = append(face, idx-1)
		case idx < 0 && -idx <= vertexCount:
			face = append(face, vertexCount+idx)
		default:
			return nil, fmt.Errorf("face index %d out of range (have %d vertices)", idx, vertexCount)
		}
	}
	return face, nil
}

// Encode writes the model back out as OBJ.
func (m *Model) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, p := range m.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", p.X(), p.Y(), p.Z())
	}
	for _, face := range m.Faces {
		bw.WriteString("f")
		for _, idx := range face {
			fmt.Fprintf(bw, " %d", idx+1)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Load reads an OBJ file from disk.
func Load(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Save writes the model to an OBJ file.
func (m *Model) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := m.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

// Edges returns the unique undirected edges of all faces, in first-seen
// order. Each face contributes the cycle of its consecutive vertices.
func (m *Model) Edges() [][2]int {
	seen := make(map[[2]int]bool)
	var edges [][2]int
	for _, face := range m.Faces {
		for i := range face {
			a, b := face[i], face[(i+1)%len(face)]
			if a == b {
				continue
			}
			if a > b {
				a, b = b, a
			}
			key := [2]int{a, b}
			if seen[key] {
				continue
			}
			seen[key] = true
			edges = append(edges, key)
		}
	}
	return edges
}

// Bounds returns the axis-aligned bounding box of the vertex set. An empty
// model reports a zero box.
func (m *Model) Bounds() (min, max transform.Point) {
	if len(m.Vertices) == 0 {
		return min, max
	}
	min, max = m.Vertices[0], m.Vertices[0]
	for _, p := range m.Vertices[1:] {
		for i := 0; i < 3; i++ {
			if p[i] < min[i] {
				min[i] = p[i]
			}
			if p[i] > max[i] {
				max[i] = p[i]
			}
		}
	}
	return min, max
}

// Center returns the center of the bounding box.
func (m *Model) Center() transform.Point {
	min, max := m.Bounds()
	return min.Add(max).Mul(0.5)
}
