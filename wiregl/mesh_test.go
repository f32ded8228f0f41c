package wiregl

import "testing"

func TestMeshTopology(t *testing.T) {
	cases := []struct {
		shape    Shape
		vertices int
		edges    int
	}{
		{ShapeCube, 8, 12},
		{ShapePyramid, 5, 8},
		{ShapeOctahedron, 6, 12},
	}
	for _, tc := range cases {
		m := tc.shape.Mesh()
		if len(m.Vertices) != tc.vertices {
			t.Fatalf("%v: %d vertices, want %d", tc.shape, len(m.Vertices), tc.vertices)
		}
		if len(m.Edges) != tc.edges {
			t.Fatalf("%v: %d edges, want %d", tc.shape, len(m.Edges), tc.edges)
		}
		for _, e := range m.Edges {
			if e[0] < 0 || e[0] >= len(m.Vertices) || e[1] < 0 || e[1] >= len(m.Vertices) {
				t.Fatalf("%v: edge %v out of bounds", tc.shape, e)
			}
		}
	}
}

func TestCubeEdgeLength(t *testing.T) {
	m := ShapeCube.Mesh()
	for _, e := range m.Edges {
		d := Len(m.Vertices[e[1]].Sub(m.Vertices[e[0]]))
		if !scalarNear(d, 2) {
			t.Fatalf("edge %v has length %v, want 2", e, d)
		}
	}
}

func TestCubeVerticesOnUnitCorners(t *testing.T) {
	for i, v := range ShapeCube.Mesh().Vertices {
		for _, c := range []Scalar{v.X, v.Y, v.Z} {
			if c != 1 && c != -1 {
				t.Fatalf("vertex %d = %v, want ±1 components", i, v)
			}
		}
	}
}

func TestShapeString(t *testing.T) {
	if ShapeCube.String() != "cube" || ShapePyramid.String() != "pyramid" || ShapeOctahedron.String() != "octahedron" {
		t.Fatalf("unexpected shape names")
	}
	if Shape(99).String() != "unknown" {
		t.Fatalf("out-of-range shape should stringify as unknown")
	}
}
