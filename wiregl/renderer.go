package wiregl

// Camera describes the fixed perspective view: a symmetric frustum looking
// down -Z with the object pushed Distance units in front of it.
type Camera struct {
	FOVYRad  Scalar
	Near     Scalar
	Far      Scalar
	Distance Scalar
}

// Renderer draws one wireframe shape per frame into a Target.
//
// It holds configuration only; the animation angle and the active shape are
// passed into RenderFrame each tick, so a frame is a pure function of its
// arguments and the renderer can be shared across targets of any size.
type Renderer struct {
	ClearColor Color
	EdgeColor  Color
	Camera     Camera

	// SpinXRate scales the X-axis rotation relative to the Y-axis angle,
	// producing a tumble instead of a single-axis spin.
	SpinXRate Scalar
}

// NewRenderer returns a renderer with the stock scene parameters:
// 60° vertical FOV, near 0.1, far 100, camera distance 5, black background,
// white edges, X spin at 1.3x the Y angle.
func NewRenderer() *Renderer {
	return &Renderer{
		ClearColor: RGB(0, 0, 0),
		EdgeColor:  RGB(0xFF, 0xFF, 0xFF),
		Camera: Camera{
			FOVYRad:  defaultFOVYRad,
			Near:     0.1,
			Far:      100,
			Distance: 5,
		},
		SpinXRate: 1.3,
	}
}

const defaultFOVYRad = Scalar(1.0471976) // π/3

// RenderFrame clears the target and draws the shape's edges rotated by
// angle. Runs to completion with no suspension points; the target is owned
// exclusively by the renderer for the duration of the call.
func (r *Renderer) RenderFrame(t Target, shape Shape, angle Scalar) {
	if r == nil || t == nil {
		return
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}
	t.Clear(r.ClearColor)

	aspect := Scalar(w) / Scalar(h)
	proj := Mat4Perspective(r.Camera.FOVYRad, aspect, r.Camera.Near, r.Camera.Far)
	model := Mat4Mul(Mat4RotateX(angle*r.SpinXRate), Mat4RotateY(angle))

	mesh := shape.Mesh()
	for _, e := range mesh.Edges {
		x0, y0 := r.projectVertex(mesh.Vertices[e[0]], model, proj, w, h)
		x1, y1 := r.projectVertex(mesh.Vertices[e[1]], model, proj, w, h)
		DrawLine(t, x0, y0, x1, y1, r.EdgeColor)
	}
}

// projectVertex runs one vertex through the full pipeline:
// rotation → view offset → projection → NDC → screen coordinates.
// Screen Y is flipped because the buffer origin is top-left.
func (r *Renderer) projectVertex(v Vec3, model, proj Mat4, w, h int) (int, int) {
	rot := TransformPoint(model, v)
	view := Vec3{X: rot.X, Y: rot.Y, Z: rot.Z - r.Camera.Distance}
	ndc := TransformPoint(proj, view)
	sx := int((ndc.X + 1) * 0.5 * Scalar(w))
	sy := int((1 - ndc.Y) * 0.5 * Scalar(h))
	return sx, sy
}
