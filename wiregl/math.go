package wiregl

import "math"

// Scalar is the numeric type used by wiregl math operations.
type Scalar = float32

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z Scalar
}

// Vec4 is a 4D (homogeneous) vector.
type Vec4 struct {
	X, Y, Z, W Scalar
}

// Mat4 is a row-major 4x4 matrix: m[row*4+col].
//
// Points are applied as row vectors (TransformPoint reads matrix columns),
// so in a product Mat4Mul(a, b) the matrix b acts on the point first.
type Mat4 [16]Scalar

func V3(x, y, z Scalar) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3   { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3   { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(s Scalar) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func Dot(a, b Vec3) Scalar { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func Len(v Vec3) Scalar {
	return Scalar(math.Sqrt(float64(Dot(v, v))))
}

func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4Mul returns the row-by-column product a*b. Not commutative.
func Mat4Mul(a, b Mat4) Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[row*4+col] =
				a[row*4+0]*b[0*4+col] +
					a[row*4+1]*b[1*4+col] +
					a[row*4+2]*b[2*4+col] +
					a[row*4+3]*b[3*4+col]
		}
	}
	return out
}

// Mat4MulV4 applies m to a homogeneous vector (row-vector convention).
func Mat4MulV4(m Mat4, v Vec4) Vec4 {
	return Vec4{
		X: v.X*m[0] + v.Y*m[4] + v.Z*m[8] + v.W*m[12],
		Y: v.X*m[1] + v.Y*m[5] + v.Z*m[9] + v.W*m[13],
		Z: v.X*m[2] + v.Y*m[6] + v.Z*m[10] + v.W*m[14],
		W: v.X*m[3] + v.Y*m[7] + v.Z*m[11] + v.W*m[15],
	}
}

func Mat4RotateX(rad Scalar) Mat4 {
	c := Scalar(math.Cos(float64(rad)))
	s := Scalar(math.Sin(float64(rad)))
	m := Mat4Identity()
	m[5] = c
	m[6] = -s
	m[9] = s
	m[10] = c
	return m
}

func Mat4RotateY(rad Scalar) Mat4 {
	c := Scalar(math.Cos(float64(rad)))
	s := Scalar(math.Sin(float64(rad)))
	m := Mat4Identity()
	m[0] = c
	m[2] = s
	m[8] = -s
	m[10] = c
	return m
}

func Mat4RotateZ(rad Scalar) Mat4 {
	c := Scalar(math.Cos(float64(rad)))
	s := Scalar(math.Sin(float64(rad)))
	m := Mat4Identity()
	m[0] = c
	m[1] = -s
	m[4] = s
	m[5] = c
	return m
}

func Mat4Translate(v Vec3) Mat4 {
	m := Mat4Identity()
	m[12] = v.X
	m[13] = v.Y
	m[14] = v.Z
	return m
}

// Mat4Perspective returns a symmetric-frustum projection matrix.
//
// fovYRad is the vertical field of view in radians, aspect is width/height.
// Degenerate inputs (near == far, aspect == 0, fov at 0 or π) are a caller
// precondition violation: the result propagates non-finite values instead of
// returning an error.
func Mat4Perspective(fovYRad, aspect, near, far Scalar) Mat4 {
	f := Scalar(1) / Scalar(math.Tan(float64(fovYRad)/2))
	m := Mat4Identity()
	m[0] = f / aspect
	m[5] = f
	m[10] = (far + near) / (near - far)
	m[11] = -1
	m[14] = (2 * far * near) / (near - far)
	m[15] = 0
	return m
}

// TransformPoint applies m to v as a homogeneous point (w=1) and performs
// the perspective divide. If the resulting w is exactly zero the undivided
// x/y/z are returned; the point is geometrically meaningless but finite,
// and downstream clipping discards it.
func TransformPoint(m Mat4, v Vec3) Vec3 {
	p := Mat4MulV4(m, Vec4{X: v.X, Y: v.Y, Z: v.Z, W: 1})
	if p.W == 0 {
		return Vec3{X: p.X, Y: p.Y, Z: p.Z}
	}
	inv := 1 / p.W
	return Vec3{X: p.X * inv, Y: p.Y * inv, Z: p.Z * inv}
}
