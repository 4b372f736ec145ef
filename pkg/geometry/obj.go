package geometry

import (
	"fmt"

	"github.com/fogleman/fauxgl"

	"github.com/macroing/go-geometry-kernel/pkg/core"
)

// LoadOBJ reads a Wavefront OBJ file and returns its triangles. Vertices keep
// their per-vertex normals and texture coordinates; triangles whose file
// carries no normals get the flat face normal on all three vertices.
func LoadOBJ(path string) ([]*Triangle, error) {
	mesh, err := fauxgl.LoadOBJ(path)
	if err != nil {
		return nil, fmt.Errorf("load obj %q: %w", path, err)
	}

	triangles := make([]*Triangle, 0, len(mesh.Triangles))
	for _, ft := range mesh.Triangles {
		a := objVertex(ft.V1)
		b := objVertex(ft.V2)
		c := objVertex(ft.V3)

		triangle := NewTriangle(a, b, c)
		if a.Normal.LengthSquared() == 0 || b.Normal.LengthSquared() == 0 || c.Normal.LengthSquared() == 0 {
			face := triangle.FaceNormal()
			a.Normal, b.Normal, c.Normal = face, face, face
			triangle = NewTriangle(a, b, c)
		}

		triangles = append(triangles, triangle)
	}
	return triangles, nil
}

func objVertex(v fauxgl.Vertex) Vertex {
	return Vertex{
		Position: core.NewVec3(v.Position.X, v.Position.Y, v.Position.Z),
		Normal:   core.NewVec3(v.Normal.X, v.Normal.Y, v.Normal.Z),
		UV:       core.NewVec2(v.Texture.X, v.Texture.Y),
	}
}
