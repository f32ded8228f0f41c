package wiregl

// Shape identifies one of the built-in polyhedra.
//
// The set is closed: shapes are compile-time data and there is no way to
// register new ones at runtime.
type Shape uint8

const (
	ShapeCube Shape = iota
	ShapePyramid
	ShapeOctahedron

	numShapes
)

// NumShapes is the number of built-in shapes.
const NumShapes = int(numShapes)

func (s Shape) String() string {
	switch s {
	case ShapeCube:
		return "cube"
	case ShapePyramid:
		return "pyramid"
	case ShapeOctahedron:
		return "octahedron"
	}
	return "unknown"
}

// Mesh is vertex positions in object space plus edge index pairs.
//
// Meshes are immutable once constructed; every edge index is within bounds
// of Vertices by construction and is never re-checked at draw time.
type Mesh struct {
	Vertices []Vec3
	Edges    [][2]int
}

// Mesh returns the shared mesh data for the shape. Callers must not mutate it.
func (s Shape) Mesh() *Mesh {
	switch s {
	case ShapePyramid:
		return &pyramidMesh
	case ShapeOctahedron:
		return &octahedronMesh
	default:
		return &cubeMesh
	}
}

// Unit cube centered at the origin: 8 vertices, 12 edges.
var cubeMesh = Mesh{
	Vertices: []Vec3{
		{-1, -1, -1},
		{1, -1, -1},
		{1, 1, -1},
		{-1, 1, -1},
		{-1, -1, 1},
		{1, -1, 1},
		{1, 1, 1},
		{-1, 1, 1},
	},
	Edges: [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, // bottom
		{4, 5}, {5, 6}, {6, 7}, {7, 4}, // top
		{0, 4}, {1, 5}, {2, 6}, {3, 7}, // sides
	},
}

// Apex plus square base: 5 vertices, 8 edges.
var pyramidMesh = Mesh{
	Vertices: []Vec3{
		{0, 1, 0}, // apex
		{-1, -1, -1},
		{1, -1, -1},
		{1, -1, 1},
		{-1, -1, 1},
	},
	Edges: [][2]int{
		{1, 2}, {2, 3}, {3, 4}, {4, 1}, // base
		{0, 1}, {0, 2}, {0, 3}, {0, 4}, // sides
	},
}

// Two poles plus four equatorial points: 6 vertices, 12 edges.
var octahedronMesh = Mesh{
	Vertices: []Vec3{
		{0, 1, 0},
		{0, -1, 0},
		{-1, 0, 0},
		{1, 0, 0},
		{0, 0, -1},
		{0, 0, 1},
	},
	Edges: [][2]int{
		{0, 2}, {0, 3}, {0, 4}, {0, 5}, // top
		{1, 2}, {1, 3}, {1, 4}, {1, 5}, // bottom
		{2, 4}, {4, 3}, {3, 5}, {5, 2}, // equator
	},
}
