// Package models imports triangle meshes (Wavefront OBJ and glTF) as shape
// groups.
package models

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/mmap"

	"prism/pkg/geometry"
	"prism/pkg/material"
	"prism/pkg/math"
)

// DefaultGroupName holds faces declared before the first `g` statement.
const DefaultGroupName = "__default"

// ErrorKind classifies OBJ parsing failures.
type ErrorKind int

const (
	// MissingValue reports a statement with too few fields.
	MissingValue ErrorKind = iota
	// InvalidValue reports an unparsable number.
	InvalidValue
	// InsufficientVertices reports a face referencing vertices before three
	// were defined.
	InsufficientVertices
)

func (k ErrorKind) String() string {
	switch k {
	case MissingValue:
		return "missing value"
	case InvalidValue:
		return "invalid value"
	case InsufficientVertices:
		return "insufficient vertices"
	default:
		return "unknown error"
	}
}

// ParseError is an OBJ parsing failure with its source line number.
type ParseError struct {
	Line int
	Kind ErrorKind
	Data string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Kind, e.Data)
}

// Model is a parsed OBJ file: named triangle groups over a shared vertex
// list.
type Model struct {
	groups []namedGroup
}

type namedGroup struct {
	name  string
	group *geometry.Group
}

// Group wraps the model's named groups into a single parent group.
func (m *Model) Group() *geometry.Group {
	root := geometry.NewGroup(math.Identity())
	for _, g := range m.groups {
		root.Push(g.group)
	}
	return root
}

// GroupNames returns the group names in declaration order.
func (m *Model) GroupNames() []string {
	names := make([]string, len(m.groups))
	for i, g := range m.groups {
		names[i] = g.name
	}
	return names
}

// LoadOBJ parses an OBJ file into a group of triangles carrying the given
// material. The file is memory-mapped, which keeps large models off the
// heap while scanning.
func LoadOBJ(path string, m material.Material) (*geometry.Group, error) {
	reader, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open model file: %w", err)
	}
	defer reader.Close()

	model, err := ParseOBJ(io.NewSectionReader(reader, 0, int64(reader.Len())), m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return model.Group(), nil
}

// ParseOBJ reads OBJ statements: `v`, `vn`, `f` (with `v`, `v/vt/vn` and
// `v//vn` reference forms, fan-triangulated for polygons), and `g`.
// Unrecognized statements are ignored. Faces over collinear vertices are
// skipped silently.
func ParseOBJ(r io.Reader, m material.Material) (*Model, error) {
	parser := objParser{
		material: m,
		current:  DefaultGroupName,
	}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		if err := parser.statement(line, scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read model: %w", err)
	}

	return &Model{groups: parser.groups}, nil
}

type objParser struct {
	material material.Material

	vertices []math.Tuple
	normals  []math.Tuple

	groups  []namedGroup
	current string
}

func (p *objParser) statement(line int, raw string) error {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "v":
		point, err := parsePoint(line, raw, fields[1:])
		if err != nil {
			return err
		}
		p.vertices = append(p.vertices, point)
	case "vn":
		normal, err := parsePoint(line, raw, fields[1:])
		if err != nil {
			return err
		}
		normal.W = 0
		p.normals = append(p.normals, normal)
	case "f":
		return p.face(line, raw, fields[1:])
	case "g":
		name := DefaultGroupName
		if len(fields) > 1 {
			name = fields[1]
		}
		p.current = name
	}

	return nil
}

func parsePoint(line int, raw string, fields []string) (math.Tuple, error) {
	if len(fields) < 3 {
		return math.Tuple{}, &ParseError{Line: line, Kind: MissingValue, Data: raw}
	}

	var coords [3]float64
	for i := 0; i < 3; i++ {
		value, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return math.Tuple{}, &ParseError{Line: line, Kind: InvalidValue, Data: raw}
		}
		coords[i] = value
	}

	return math.NewPoint(coords[0], coords[1], coords[2]), nil
}

type faceVertex struct {
	point     math.Tuple
	normal    math.Tuple
	hasNormal bool
}

func (p *objParser) face(line int, raw string, fields []string) error {
	if len(p.vertices) < 3 {
		return &ParseError{Line: line, Kind: InsufficientVertices, Data: raw}
	}

	var polygon []faceVertex
	for _, field := range fields {
		vertex, ok, err := p.faceVertex(line, raw, field)
		if err != nil {
			return err
		}
		if ok {
			polygon = append(polygon, vertex)
		}
	}

	// Fan triangulation from the first vertex.
	for i := 2; i < len(polygon); i++ {
		p.pushTriangle(polygon[0], polygon[i-1], polygon[i])
	}

	return nil
}

// faceVertex resolves one `v`, `v/vt/vn` or `v//vn` reference. References
// to undefined vertices resolve to nothing and drop out of the polygon.
func (p *objParser) faceVertex(line int, raw, field string) (faceVertex, bool, error) {
	parts := strings.Split(field, "/")

	index, err := strconv.Atoi(parts[0])
	if err != nil || index < 1 {
		return faceVertex{}, false, &ParseError{Line: line, Kind: InvalidValue, Data: raw}
	}
	if index > len(p.vertices) {
		return faceVertex{}, false, nil
	}

	vertex := faceVertex{point: p.vertices[index-1]}

	if len(parts) == 3 && parts[2] != "" {
		normalIndex, err := strconv.Atoi(parts[2])
		if err != nil || normalIndex < 1 {
			return faceVertex{}, false, &ParseError{Line: line, Kind: InvalidValue, Data: raw}
		}
		if normalIndex <= len(p.normals) {
			vertex.normal = p.normals[normalIndex-1]
			vertex.hasNormal = true
		}
	}

	return vertex, true, nil
}

// pushTriangle adds one triangle to the current group, smooth when all
// three vertices carry normals. Collinear triangles are dropped, matching
// the fan-triangulation treatment of degenerate polygon slices.
func (p *objParser) pushTriangle(a, b, c faceVertex) {
	var (
		shape geometry.Shape
		err   error
	)

	if a.hasNormal && b.hasNormal && c.hasNormal {
		shape, err = geometry.NewSmoothTriangle(p.material,
			[3]math.Tuple{a.point, b.point, c.point},
			[3]math.Tuple{a.normal, b.normal, c.normal})
	} else {
		shape, err = geometry.NewTriangle(p.material,
			[3]math.Tuple{a.point, b.point, c.point})
	}
	if err != nil {
		return
	}

	p.currentGroup().Push(shape)
}

func (p *objParser) currentGroup() *geometry.Group {
	for _, g := range p.groups {
		if g.name == p.current {
			return g.group
		}
	}

	group := geometry.NewGroup(math.Identity())
	p.groups = append(p.groups, namedGroup{name: p.current, group: group})
	return group
}
