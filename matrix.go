package linmath

import (
	"fmt"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

// Matrix2 is a 2×2 matrix stored in column-major order: X and Y are the
// columns, not the rows.
type Matrix2[S Float] struct {
	X Vector2[S]
	Y Vector2[S]
}

// Matrix3 is a 3×3 matrix stored in column-major order.
type Matrix3[S Float] struct {
	X Vector3[S]
	Y Vector3[S]
	Z Vector3[S]
}

// Matrix4 is a 4×4 matrix stored in column-major order.
type Matrix4[S Float] struct {
	X Vector4[S]
	Y Vector4[S]
	Z Vector4[S]
	W Vector4[S]
}

// Mat2 returns a matrix from its elements, listed column by column.
func Mat2[S Float](c0r0, c0r1, c1r0, c1r1 S) Matrix2[S] {
	return Matrix2[S]{
		Vector2[S]{c0r0, c0r1},
		Vector2[S]{c1r0, c1r1},
	}
}

// Mat3 returns a matrix from its elements, listed column by column.
func Mat3[S Float](
	c0r0, c0r1, c0r2,
	c1r0, c1r1, c1r2,
	c2r0, c2r1, c2r2 S,
) Matrix3[S] {
	return Matrix3[S]{
		Vector3[S]{c0r0, c0r1, c0r2},
		Vector3[S]{c1r0, c1r1, c1r2},
		Vector3[S]{c2r0, c2r1, c2r2},
	}
}

// Mat4 returns a matrix from its elements, listed column by column.
func Mat4[S Float](
	c0r0, c0r1, c0r2, c0r3,
	c1r0, c1r1, c1r2, c1r3,
	c2r0, c2r1, c2r2, c2r3,
	c3r0, c3r1, c3r2, c3r3 S,
) Matrix4[S] {
	return Matrix4[S]{
		Vector4[S]{c0r0, c0r1, c0r2, c0r3},
		Vector4[S]{c1r0, c1r1, c1r2, c1r3},
		Vector4[S]{c2r0, c2r1, c2r2, c2r3},
		Vector4[S]{c3r0, c3r1, c3r2, c3r3},
	}
}

func Matrix2FromCols[S Float](x, y Vector2[S]) Matrix2[S] {
	return Matrix2[S]{x, y}
}

func Matrix3FromCols[S Float](x, y, z Vector3[S]) Matrix3[S] {
	return Matrix3[S]{x, y, z}
}

func Matrix4FromCols[S Float](x, y, z, w Vector4[S]) Matrix4[S] {
	return Matrix4[S]{x, y, z, w}
}

// Matrix2FromValue returns the matrix with f on the diagonal and zeros
// elsewhere.
func Matrix2FromValue[S Float](f S) Matrix2[S] {
	return Mat2(f, 0, 0, f)
}

// Matrix3FromValue returns the matrix with f on the diagonal and zeros
// elsewhere.
func Matrix3FromValue[S Float](f S) Matrix3[S] {
	return Mat3(
		f, 0, 0,
		0, f, 0,
		0, 0, f,
	)
}

// Matrix4FromValue returns the matrix with f on the diagonal and zeros
// elsewhere.
func Matrix4FromValue[S Float](f S) Matrix4[S] {
	return Mat4(
		f, 0, 0, 0,
		0, f, 0, 0,
		0, 0, f, 0,
		0, 0, 0, f,
	)
}

func Matrix2Identity[S Float]() Matrix2[S] { return Matrix2FromValue[S](1) }
func Matrix3Identity[S Float]() Matrix3[S] { return Matrix3FromValue[S](1) }
func Matrix4Identity[S Float]() Matrix4[S] { return Matrix4FromValue[S](1) }

// Matrix2FromAngle returns the matrix that rotates by theta, turning the
// positive X axis toward the positive Y axis.
func Matrix2FromAngle[S Float](theta Rad[S]) Matrix2[S] {
	s, c := theta.SinCos()
	return Mat2(c, s, -s, c)
}

// Matrix2LookAt returns the rotation that maps dir onto the Y axis. The
// result is only a rotation when dir and up are orthonormal.
func Matrix2LookAt[S Float](dir, up Vector2[S]) Matrix2[S] {
	return Matrix2FromCols(up, dir).Transpose()
}

// Matrix3FromAngleX returns the matrix that rotates by theta about the X
// axis.
func Matrix3FromAngleX[S Float](theta Rad[S]) Matrix3[S] {
	s, c := theta.SinCos()
	return Mat3(
		1, 0, 0,
		0, c, s,
		0, -s, c,
	)
}

// Matrix3FromAngleY returns the matrix that rotates by theta about the Y
// axis.
func Matrix3FromAngleY[S Float](theta Rad[S]) Matrix3[S] {
	s, c := theta.SinCos()
	return Mat3(
		c, 0, -s,
		0, 1, 0,
		s, 0, c,
	)
}

// Matrix3FromAngleZ returns the matrix that rotates by theta about the Z
// axis.
func Matrix3FromAngleZ[S Float](theta Rad[S]) Matrix3[S] {
	s, c := theta.SinCos()
	return Mat3(
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	)
}

// Matrix3FromAxisAngle returns the matrix that rotates by angle about axis.
// Axis must be normalized.
func Matrix3FromAxisAngle[S Float](axis Vector3[S], angle Rad[S]) Matrix3[S] {
	s, c := angle.SinCos()
	c1 := 1 - c
	x, y, z := axis.Splat()
	return Mat3(
		c1*x*x+c, c1*x*y+s*z, c1*x*z-s*y,
		c1*x*y-s*z, c1*y*y+c, c1*y*z+s*x,
		c1*x*z+s*y, c1*y*z-s*x, c1*z*z+c,
	)
}

// Matrix3FromEuler returns the rotation matrix of the quaternion built by
// [QuaternionFromEuler] from the same angles.
func Matrix3FromEuler[S Float](x, y, z Rad[S]) Matrix3[S] {
	return QuaternionFromEuler(x, y, z).Matrix3()
}

// Matrix3LookAt returns the rotation that maps dir onto the Z axis while
// keeping up in the YZ plane.
func Matrix3LookAt[S Float](dir, up Vector3[S]) Matrix3[S] {
	dir = dir.Normalize()
	side := up.Cross(dir).Normalize()
	up = dir.Cross(side).Normalize()
	return Matrix3FromCols(side, up, dir).Transpose()
}

// Matrix4FromTranslation returns the matrix that translates by v.
func Matrix4FromTranslation[S Float](v Vector3[S]) Matrix4[S] {
	m := Matrix4Identity[S]()
	m.W = v.Extend(1)
	return m
}

// Matrix4FromScale returns the matrix that scales uniformly by f.
func Matrix4FromScale[S Float](f S) Matrix4[S] {
	return Matrix4FromNonUniformScale(f, f, f)
}

// Matrix4FromNonUniformScale returns the matrix that scales each axis
// separately.
func Matrix4FromNonUniformScale[S Float](x, y, z S) Matrix4[S] {
	return Mat4(
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	)
}

// Matrix4LookAt returns a right-handed view matrix for a camera at eye
// looking at center.
func Matrix4LookAt[S Float](eye, center Point3[S], up Vector3[S]) Matrix4[S] {
	f := center.SubP(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)
	e := eye.ToVec()
	return Mat4(
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-e.Dot(s), -e.Dot(u), e.Dot(f), 1,
	)
}

// Perspective returns a perspective projection with vertical field of view
// fovy. Depth is mapped to [-1, 1].
func Perspective[S Float](fovy Rad[S], aspect, near, far S) Matrix4[S] {
	f := 1 / fovy.Div(2).Tan()
	return Mat4(
		f/aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far+near)/(near-far), -1,
		0, 0, 2*far*near/(near-far), 0,
	)
}

// Frustum returns a perspective projection for the given view frustum.
func Frustum[S Float](left, right, bottom, top, near, far S) Matrix4[S] {
	return Mat4(
		2*near/(right-left), 0, 0, 0,
		0, 2*near/(top-bottom), 0, 0,
		(right+left)/(right-left), (top+bottom)/(top-bottom), -(far+near)/(far-near), -1,
		0, 0, -2*far*near/(far-near), 0,
	)
}

// Ortho returns an orthographic projection.
func Ortho[S Float](left, right, bottom, top, near, far S) Matrix4[S] {
	return Mat4(
		2/(right-left), 0, 0, 0,
		0, 2/(top-bottom), 0, 0,
		0, 0, -2/(far-near), 0,
		-(right+left)/(right-left), -(top+bottom)/(top-bottom), -(far+near)/(far-near), 1,
	)
}

func (m Matrix2[S]) String() string {
	return fmt.Sprintf("[%s, %s]", m.X, m.Y)
}

// Col returns the i'th column. It panics if i is out of range.
func (m Matrix2[S]) Col(i int) Vector2[S] {
	return [2]Vector2[S]{m.X, m.Y}[i]
}

// Row returns the i'th row. It panics if i is out of range.
func (m Matrix2[S]) Row(i int) Vector2[S] {
	return Vector2[S]{m.X.Index(i), m.Y.Index(i)}
}

// Array returns the elements in column-major order.
func (m Matrix2[S]) Array() [4]S {
	return [4]S{m.X.X, m.X.Y, m.Y.X, m.Y.Y}
}

// Matrix2FromArray is the inverse of [Matrix2.Array].
func Matrix2FromArray[S Float](a [4]S) Matrix2[S] {
	return Mat2(a[0], a[1], a[2], a[3])
}

func (m Matrix2[S]) Transpose() Matrix2[S] {
	return Mat2(
		m.X.X, m.Y.X,
		m.X.Y, m.Y.Y,
	)
}

// Mul computes the matrix product m·o. Applying the result to a vector
// applies o first.
func (m Matrix2[S]) Mul(o Matrix2[S]) Matrix2[S] {
	return Matrix2[S]{m.MulVec(o.X), m.MulVec(o.Y)}
}

func (m Matrix2[S]) MulVec(v Vector2[S]) Vector2[S] {
	return m.X.Mul(v.X).Add(m.Y.Mul(v.Y))
}

func (m Matrix2[S]) MulScalar(f S) Matrix2[S] {
	return Matrix2[S]{m.X.Mul(f), m.Y.Mul(f)}
}

func (m Matrix2[S]) DivScalar(f S) Matrix2[S] {
	return Matrix2[S]{m.X.Div(f), m.Y.Div(f)}
}

func (m Matrix2[S]) Add(o Matrix2[S]) Matrix2[S] {
	return Matrix2[S]{m.X.Add(o.X), m.Y.Add(o.Y)}
}

func (m Matrix2[S]) Sub(o Matrix2[S]) Matrix2[S] {
	return Matrix2[S]{m.X.Sub(o.X), m.Y.Sub(o.Y)}
}

func (m Matrix2[S]) Neg() Matrix2[S] {
	return Matrix2[S]{m.X.Neg(), m.Y.Neg()}
}

func (m Matrix2[S]) Determinant() S {
	return m.X.X*m.Y.Y - m.Y.X*m.X.Y
}

func (m Matrix2[S]) Trace() S {
	return m.X.X + m.Y.Y
}

// Invert returns the inverse of m. It returns false if the determinant is
// approximately zero.
func (m Matrix2[S]) Invert() (Matrix2[S], bool) {
	det := m.Determinant()
	if ApproxEq(det, 0) {
		return Matrix2[S]{}, false
	}
	return Mat2(
		m.Y.Y, -m.X.Y,
		-m.Y.X, m.X.X,
	).DivScalar(det), true
}

func (m Matrix2[S]) IsInvertible() bool {
	return !ApproxEq(m.Determinant(), 0)
}

func (m Matrix2[S]) IsIdentity() bool {
	return m.ApproxEq(Matrix2Identity[S]())
}

func (m Matrix2[S]) IsDiagonal() bool {
	return ApproxEq(m.X.Y, 0) && ApproxEq(m.Y.X, 0)
}

// ToMatrix3 embeds m in the upper left corner of the 3×3 identity.
func (m Matrix2[S]) ToMatrix3() Matrix3[S] {
	return Matrix3[S]{
		m.X.Extend(0),
		m.Y.Extend(0),
		Vector3[S]{0, 0, 1},
	}
}

func (m Matrix2[S]) ApproxEq(o Matrix2[S]) bool {
	return m.X.ApproxEq(o.X) && m.Y.ApproxEq(o.Y)
}

func (m Matrix2[S]) ApproxEqEps(o Matrix2[S], epsilon S) bool {
	return m.X.ApproxEqEps(o.X, epsilon) && m.Y.ApproxEqEps(o.Y, epsilon)
}

func (m Matrix3[S]) String() string {
	return fmt.Sprintf("[%s, %s, %s]", m.X, m.Y, m.Z)
}

// Col returns the i'th column. It panics if i is out of range.
func (m Matrix3[S]) Col(i int) Vector3[S] {
	return [3]Vector3[S]{m.X, m.Y, m.Z}[i]
}

// Row returns the i'th row. It panics if i is out of range.
func (m Matrix3[S]) Row(i int) Vector3[S] {
	return Vector3[S]{m.X.Index(i), m.Y.Index(i), m.Z.Index(i)}
}

// Array returns the elements in column-major order.
func (m Matrix3[S]) Array() [9]S {
	return [9]S{
		m.X.X, m.X.Y, m.X.Z,
		m.Y.X, m.Y.Y, m.Y.Z,
		m.Z.X, m.Z.Y, m.Z.Z,
	}
}

// Matrix3FromArray is the inverse of [Matrix3.Array].
func Matrix3FromArray[S Float](a [9]S) Matrix3[S] {
	return Mat3(
		a[0], a[1], a[2],
		a[3], a[4], a[5],
		a[6], a[7], a[8],
	)
}

func (m Matrix3[S]) Transpose() Matrix3[S] {
	return Matrix3[S]{m.Row(0), m.Row(1), m.Row(2)}
}

// Mul computes the matrix product m·o. Applying the result to a vector
// applies o first.
func (m Matrix3[S]) Mul(o Matrix3[S]) Matrix3[S] {
	return Matrix3[S]{m.MulVec(o.X), m.MulVec(o.Y), m.MulVec(o.Z)}
}

func (m Matrix3[S]) MulVec(v Vector3[S]) Vector3[S] {
	return m.X.Mul(v.X).Add(m.Y.Mul(v.Y)).Add(m.Z.Mul(v.Z))
}

func (m Matrix3[S]) MulScalar(f S) Matrix3[S] {
	return Matrix3[S]{m.X.Mul(f), m.Y.Mul(f), m.Z.Mul(f)}
}

func (m Matrix3[S]) DivScalar(f S) Matrix3[S] {
	return Matrix3[S]{m.X.Div(f), m.Y.Div(f), m.Z.Div(f)}
}

func (m Matrix3[S]) Add(o Matrix3[S]) Matrix3[S] {
	return Matrix3[S]{m.X.Add(o.X), m.Y.Add(o.Y), m.Z.Add(o.Z)}
}

func (m Matrix3[S]) Sub(o Matrix3[S]) Matrix3[S] {
	return Matrix3[S]{m.X.Sub(o.X), m.Y.Sub(o.Y), m.Z.Sub(o.Z)}
}

func (m Matrix3[S]) Neg() Matrix3[S] {
	return Matrix3[S]{m.X.Neg(), m.Y.Neg(), m.Z.Neg()}
}

func (m Matrix3[S]) Determinant() S {
	return m.X.Dot(m.Y.Cross(m.Z))
}

func (m Matrix3[S]) Trace() S {
	return m.X.X + m.Y.Y + m.Z.Z
}

// Invert returns the inverse of m. It returns false if the determinant is
// approximately zero.
func (m Matrix3[S]) Invert() (Matrix3[S], bool) {
	det := m.Determinant()
	if ApproxEq(det, 0) {
		return Matrix3[S]{}, false
	}
	return Matrix3FromCols(
		m.Y.Cross(m.Z),
		m.Z.Cross(m.X),
		m.X.Cross(m.Y),
	).DivScalar(det).Transpose(), true
}

func (m Matrix3[S]) IsInvertible() bool {
	return !ApproxEq(m.Determinant(), 0)
}

func (m Matrix3[S]) IsIdentity() bool {
	return m.ApproxEq(Matrix3Identity[S]())
}

func (m Matrix3[S]) IsDiagonal() bool {
	return ApproxEq(m.X.Y, 0) && ApproxEq(m.X.Z, 0) &&
		ApproxEq(m.Y.X, 0) && ApproxEq(m.Y.Z, 0) &&
		ApproxEq(m.Z.X, 0) && ApproxEq(m.Z.Y, 0)
}

// ToMatrix4 embeds m in the upper left corner of the 4×4 identity.
func (m Matrix3[S]) ToMatrix4() Matrix4[S] {
	return Matrix4[S]{
		m.X.Extend(0),
		m.Y.Extend(0),
		m.Z.Extend(0),
		Vector4[S]{0, 0, 0, 1},
	}
}

func (m Matrix3[S]) ApproxEq(o Matrix3[S]) bool {
	return m.X.ApproxEq(o.X) && m.Y.ApproxEq(o.Y) && m.Z.ApproxEq(o.Z)
}

func (m Matrix3[S]) ApproxEqEps(o Matrix3[S], epsilon S) bool {
	return m.X.ApproxEqEps(o.X, epsilon) &&
		m.Y.ApproxEqEps(o.Y, epsilon) &&
		m.Z.ApproxEqEps(o.Z, epsilon)
}

// F32 converts m to a golang.org/x/image matrix. Those are stored in
// row-major order.
func (m Matrix3[S]) F32() f32.Mat3 {
	var out f32.Mat3
	for i, f := range m.Transpose().Array() {
		out[i] = float32(f)
	}
	return out
}

// F64 converts m to a golang.org/x/image matrix. Those are stored in
// row-major order.
func (m Matrix3[S]) F64() f64.Mat3 {
	var out f64.Mat3
	for i, f := range m.Transpose().Array() {
		out[i] = float64(f)
	}
	return out
}

func Matrix3FromF32[S Float](a f32.Mat3) Matrix3[S] {
	var arr [9]S
	for i, f := range a {
		arr[i] = S(f)
	}
	return Matrix3FromArray(arr).Transpose()
}

func Matrix3FromF64[S Float](a f64.Mat3) Matrix3[S] {
	var arr [9]S
	for i, f := range a {
		arr[i] = S(f)
	}
	return Matrix3FromArray(arr).Transpose()
}

func (m Matrix4[S]) String() string {
	return fmt.Sprintf("[%s, %s, %s, %s]", m.X, m.Y, m.Z, m.W)
}

// Col returns the i'th column. It panics if i is out of range.
func (m Matrix4[S]) Col(i int) Vector4[S] {
	return [4]Vector4[S]{m.X, m.Y, m.Z, m.W}[i]
}

// Row returns the i'th row. It panics if i is out of range.
func (m Matrix4[S]) Row(i int) Vector4[S] {
	return Vector4[S]{m.X.Index(i), m.Y.Index(i), m.Z.Index(i), m.W.Index(i)}
}

// Array returns the elements in column-major order.
func (m Matrix4[S]) Array() [16]S {
	return [16]S{
		m.X.X, m.X.Y, m.X.Z, m.X.W,
		m.Y.X, m.Y.Y, m.Y.Z, m.Y.W,
		m.Z.X, m.Z.Y, m.Z.Z, m.Z.W,
		m.W.X, m.W.Y, m.W.Z, m.W.W,
	}
}

// Matrix4FromArray is the inverse of [Matrix4.Array].
func Matrix4FromArray[S Float](a [16]S) Matrix4[S] {
	return Mat4(
		a[0], a[1], a[2], a[3],
		a[4], a[5], a[6], a[7],
		a[8], a[9], a[10], a[11],
		a[12], a[13], a[14], a[15],
	)
}

func (m Matrix4[S]) Transpose() Matrix4[S] {
	return Matrix4[S]{m.Row(0), m.Row(1), m.Row(2), m.Row(3)}
}

// Mul computes the matrix product m·o. Applying the result to a vector
// applies o first.
func (m Matrix4[S]) Mul(o Matrix4[S]) Matrix4[S] {
	return Matrix4[S]{m.MulVec(o.X), m.MulVec(o.Y), m.MulVec(o.Z), m.MulVec(o.W)}
}

func (m Matrix4[S]) MulVec(v Vector4[S]) Vector4[S] {
	return m.X.Mul(v.X).Add(m.Y.Mul(v.Y)).Add(m.Z.Mul(v.Z)).Add(m.W.Mul(v.W))
}

func (m Matrix4[S]) MulScalar(f S) Matrix4[S] {
	return Matrix4[S]{m.X.Mul(f), m.Y.Mul(f), m.Z.Mul(f), m.W.Mul(f)}
}

func (m Matrix4[S]) DivScalar(f S) Matrix4[S] {
	return Matrix4[S]{m.X.Div(f), m.Y.Div(f), m.Z.Div(f), m.W.Div(f)}
}

func (m Matrix4[S]) Add(o Matrix4[S]) Matrix4[S] {
	return Matrix4[S]{m.X.Add(o.X), m.Y.Add(o.Y), m.Z.Add(o.Z), m.W.Add(o.W)}
}

func (m Matrix4[S]) Sub(o Matrix4[S]) Matrix4[S] {
	return Matrix4[S]{m.X.Sub(o.X), m.Y.Sub(o.Y), m.Z.Sub(o.Z), m.W.Sub(o.W)}
}

func (m Matrix4[S]) Neg() Matrix4[S] {
	return Matrix4[S]{m.X.Neg(), m.Y.Neg(), m.Z.Neg(), m.W.Neg()}
}

// adjugate returns the transposed cofactor matrix of m, in column-major
// order, and the determinant.
func (m Matrix4[S]) adjugate() ([16]S, S) {
	a := m.Array()
	var inv [16]S
	inv[0] = a[5]*a[10]*a[15] - a[5]*a[11]*a[14] - a[9]*a[6]*a[15] + a[9]*a[7]*a[14] + a[13]*a[6]*a[11] - a[13]*a[7]*a[10]
	inv[4] = -a[4]*a[10]*a[15] + a[4]*a[11]*a[14] + a[8]*a[6]*a[15] - a[8]*a[7]*a[14] - a[12]*a[6]*a[11] + a[12]*a[7]*a[10]
	inv[8] = a[4]*a[9]*a[15] - a[4]*a[11]*a[13] - a[8]*a[5]*a[15] + a[8]*a[7]*a[13] + a[12]*a[5]*a[11] - a[12]*a[7]*a[9]
	inv[12] = -a[4]*a[9]*a[14] + a[4]*a[10]*a[13] + a[8]*a[5]*a[14] - a[8]*a[6]*a[13] - a[12]*a[5]*a[10] + a[12]*a[6]*a[9]
	inv[1] = -a[1]*a[10]*a[15] + a[1]*a[11]*a[14] + a[9]*a[2]*a[15] - a[9]*a[3]*a[14] - a[13]*a[2]*a[11] + a[13]*a[3]*a[10]
	inv[5] = a[0]*a[10]*a[15] - a[0]*a[11]*a[14] - a[8]*a[2]*a[15] + a[8]*a[3]*a[14] + a[12]*a[2]*a[11] - a[12]*a[3]*a[10]
	inv[9] = -a[0]*a[9]*a[15] + a[0]*a[11]*a[13] + a[8]*a[1]*a[15] - a[8]*a[3]*a[13] - a[12]*a[1]*a[11] + a[12]*a[3]*a[9]
	inv[13] = a[0]*a[9]*a[14] - a[0]*a[10]*a[13] - a[8]*a[1]*a[14] + a[8]*a[2]*a[13] + a[12]*a[1]*a[10] - a[12]*a[2]*a[9]
	inv[2] = a[1]*a[6]*a[15] - a[1]*a[7]*a[14] - a[5]*a[2]*a[15] + a[5]*a[3]*a[14] + a[13]*a[2]*a[7] - a[13]*a[3]*a[6]
	inv[6] = -a[0]*a[6]*a[15] + a[0]*a[7]*a[14] + a[4]*a[2]*a[15] - a[4]*a[3]*a[14] - a[12]*a[2]*a[7] + a[12]*a[3]*a[6]
	inv[10] = a[0]*a[5]*a[15] - a[0]*a[7]*a[13] - a[4]*a[1]*a[15] + a[4]*a[3]*a[13] + a[12]*a[1]*a[7] - a[12]*a[3]*a[5]
	inv[14] = -a[0]*a[5]*a[14] + a[0]*a[6]*a[13] + a[4]*a[1]*a[14] - a[4]*a[2]*a[13] - a[12]*a[1]*a[6] + a[12]*a[2]*a[5]
	inv[3] = -a[1]*a[6]*a[11] + a[1]*a[7]*a[10] + a[5]*a[2]*a[11] - a[5]*a[3]*a[10] - a[9]*a[2]*a[7] + a[9]*a[3]*a[6]
	inv[7] = a[0]*a[6]*a[11] - a[0]*a[7]*a[10] - a[4]*a[2]*a[11] + a[4]*a[3]*a[10] + a[8]*a[2]*a[7] - a[8]*a[3]*a[6]
	inv[11] = -a[0]*a[5]*a[11] + a[0]*a[7]*a[9] + a[4]*a[1]*a[11] - a[4]*a[3]*a[9] - a[8]*a[1]*a[7] + a[8]*a[3]*a[5]
	inv[15] = a[0]*a[5]*a[10] - a[0]*a[6]*a[9] - a[4]*a[1]*a[10] + a[4]*a[2]*a[9] + a[8]*a[1]*a[6] - a[8]*a[2]*a[5]
	det := a[0]*inv[0] + a[1]*inv[4] + a[2]*inv[8] + a[3]*inv[12]
	return inv, det
}

func (m Matrix4[S]) Determinant() S {
	_, det := m.adjugate()
	return det
}

func (m Matrix4[S]) Trace() S {
	return m.X.X + m.Y.Y + m.Z.Z + m.W.W
}

// Invert returns the inverse of m. It returns false if the determinant is
// approximately zero.
func (m Matrix4[S]) Invert() (Matrix4[S], bool) {
	adj, det := m.adjugate()
	if ApproxEq(det, 0) {
		return Matrix4[S]{}, false
	}
	return Matrix4FromArray(adj).DivScalar(det), true
}

func (m Matrix4[S]) IsInvertible() bool {
	return !ApproxEq(m.Determinant(), 0)
}

func (m Matrix4[S]) IsIdentity() bool {
	return m.ApproxEq(Matrix4Identity[S]())
}

func (m Matrix4[S]) IsDiagonal() bool {
	for c := range 4 {
		col := m.Col(c)
		for r := range 4 {
			if r != c && !ApproxEq(col.Index(r), 0) {
				return false
			}
		}
	}
	return true
}

// Matrix3 returns the upper left 3×3 block of m.
func (m Matrix4[S]) Matrix3() Matrix3[S] {
	return Matrix3[S]{m.X.Truncate(), m.Y.Truncate(), m.Z.Truncate()}
}

func (m Matrix4[S]) ApproxEq(o Matrix4[S]) bool {
	return m.X.ApproxEq(o.X) && m.Y.ApproxEq(o.Y) &&
		m.Z.ApproxEq(o.Z) && m.W.ApproxEq(o.W)
}

func (m Matrix4[S]) ApproxEqEps(o Matrix4[S], epsilon S) bool {
	return m.X.ApproxEqEps(o.X, epsilon) &&
		m.Y.ApproxEqEps(o.Y, epsilon) &&
		m.Z.ApproxEqEps(o.Z, epsilon) &&
		m.W.ApproxEqEps(o.W, epsilon)
}

// F32 converts m to a golang.org/x/image matrix. Those are stored in
// row-major order.
func (m Matrix4[S]) F32() f32.Mat4 {
	var out f32.Mat4
	for i, f := range m.Transpose().Array() {
		out[i] = float32(f)
	}
	return out
}

// F64 converts m to a golang.org/x/image matrix. Those are stored in
// row-major order.
func (m Matrix4[S]) F64() f64.Mat4 {
	var out f64.Mat4
	for i, f := range m.Transpose().Array() {
		out[i] = float64(f)
	}
	return out
}

func Matrix4FromF32[S Float](a f32.Mat4) Matrix4[S] {
	var arr [16]S
	for i, f := range a {
		arr[i] = S(f)
	}
	return Matrix4FromArray(arr).Transpose()
}

func Matrix4FromF64[S Float](a f64.Mat4) Matrix4[S] {
	var arr [16]S
	for i, f := range a {
		arr[i] = S(f)
	}
	return Matrix4FromArray(arr).Transpose()
}
