package models

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"prism/pkg/geometry"
	"prism/pkg/material"
	"prism/pkg/math"
)

// LoadGLTF imports the triangle primitives of a glTF/GLB file as a group of
// triangles carrying the given material. Primitives with vertex normals
// become smooth triangles. Non-triangle primitives (points, lines) are
// skipped.
func LoadGLTF(path string, m material.Material) (*geometry.Group, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open gltf file: %w", err)
	}

	root := geometry.NewGroup(math.Identity())

	for _, mesh := range doc.Meshes {
		group, err := meshGroup(doc, mesh, m)
		if err != nil {
			return nil, fmt.Errorf("mesh %q: %w", mesh.Name, err)
		}
		if len(group.Children()) > 0 {
			root.Push(group)
		}
	}

	return root, nil
}

func meshGroup(doc *gltf.Document, mesh *gltf.Mesh, m material.Material) (*geometry.Group, error) {
	group := geometry.NewGroup(math.Identity())

	for _, prim := range mesh.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			continue
		}

		posIndex, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIndex], nil)
		if err != nil {
			return nil, fmt.Errorf("read positions: %w", err)
		}

		var normals [][3]float32
		if normalIndex, ok := prim.Attributes[gltf.NORMAL]; ok {
			normals, err = modeler.ReadNormal(doc, doc.Accessors[normalIndex], nil)
			if err != nil {
				return nil, fmt.Errorf("read normals: %w", err)
			}
		}

		var indices []uint32
		if prim.Indices != nil {
			indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return nil, fmt.Errorf("read indices: %w", err)
			}
		} else {
			indices = make([]uint32, len(positions))
			for i := range indices {
				indices[i] = uint32(i)
			}
		}

		for i := 0; i+2 < len(indices); i += 3 {
			pushGLTFTriangle(group, m, positions, normals, indices[i], indices[i+1], indices[i+2])
		}
	}

	return group, nil
}

func pushGLTFTriangle(group *geometry.Group, m material.Material, positions, normals [][3]float32, i0, i1, i2 uint32) {
	vertices := [3]math.Tuple{
		gltfPoint(positions[i0]),
		gltfPoint(positions[i1]),
		gltfPoint(positions[i2]),
	}

	var (
		shape geometry.Shape
		err   error
	)

	if int(i0) < len(normals) && int(i1) < len(normals) && int(i2) < len(normals) {
		shape, err = geometry.NewSmoothTriangle(m, vertices, [3]math.Tuple{
			gltfVector(normals[i0]),
			gltfVector(normals[i1]),
			gltfVector(normals[i2]),
		})
	} else {
		shape, err = geometry.NewTriangle(m, vertices)
	}
	if err != nil {
		// Degenerate triangles are dropped like their OBJ counterparts.
		return
	}

	group.Push(shape)
}

func gltfPoint(v [3]float32) math.Tuple {
	return math.NewPoint(float64(v[0]), float64(v[1]), float64(v[2]))
}

func gltfVector(v [3]float32) math.Tuple {
	return math.NewVector(float64(v[0]), float64(v[1]), float64(v[2]))
}
