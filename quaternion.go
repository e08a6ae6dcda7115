package linmath

import (
	"fmt"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

// Quaternion is a hypercomplex number w + xi + yj + zk, stored as a scalar
// part W and a vector part V.
//
// Quaternions of unit magnitude represent rotations in 3D space. Nothing
// enforces unit magnitude: callers must use [Quaternion.Normalize] before
// treating an arbitrary quaternion as a rotation, and the rotation-specific
// methods produce meaningless results otherwise.
type Quaternion[S Float] struct {
	W S
	V Vector3[S]
}

var _ Rotation3[float64, Quaternion[float64]] = Quaternion[float64]{}

// Quat returns the quaternion w + xi + yj + zk.
func Quat[S Float](w, x, y, z S) Quaternion[S] {
	return Quaternion[S]{W: w, V: Vector3[S]{x, y, z}}
}

// QuaternionFromSV returns the quaternion with scalar part w and vector
// part v.
func QuaternionFromSV[S Float](w S, v Vector3[S]) Quaternion[S] {
	return Quaternion[S]{W: w, V: v}
}

// QuaternionIdentity returns the multiplicative identity 1 + 0i + 0j + 0k,
// which is also the rotation by zero.
func QuaternionIdentity[S Float]() Quaternion[S] {
	return Quaternion[S]{W: 1}
}

// QuaternionFromAxisAngle returns a rotation by angle about axis.
//
// The axis components are applied in reverse order, (z, y, x), so that the
// result agrees with the pitch, yaw, and roll ordering of
// [QuaternionFromEuler]. A rotation about a true axis can be built with
// [QuaternionFromSV].
func QuaternionFromAxisAngle[S Float](axis Vector3[S], angle Rad[S]) Quaternion[S] {
	s, c := angle.Mul(0.5).SinCos()
	axis = Vector3[S]{axis.Z, axis.Y, axis.X}
	return QuaternionFromSV(c, axis.Mul(s))
}

// QuaternionFromEuler returns the rotation for the Euler angles x (pitch),
// y (yaw), and z (roll).
//
// See http://www.euclideanspace.com/maths/geometry/rotations/conversions/eulerToQuaternion/index.htm
func QuaternionFromEuler[S Float](x, y, z Rad[S]) Quaternion[S] {
	sx, cx := x.Mul(0.5).SinCos()
	sy, cy := y.Mul(0.5).SinCos()
	sz, cz := z.Mul(0.5).SinCos()
	return Quat(
		cy*cx*cz-sy*sx*sz,
		sy*sx*cz+cy*cx*sz,
		sy*cx*cz+cy*sx*sz,
		cy*sx*cz-sy*cx*sz,
	)
}

// QuaternionBetweenVectors returns the shortest rotation that turns the
// direction of a into the direction of b. Both must be normalized.
func QuaternionBetweenVectors[S Float](a, b Vector3[S]) Quaternion[S] {
	return QuaternionFromSV(1+a.Dot(b), a.Cross(b)).Normalize()
}

// QuaternionLookAt returns the rotation computed by [Matrix3LookAt].
func QuaternionLookAt[S Float](dir, up Vector3[S]) Quaternion[S] {
	return Matrix3LookAt(dir, up).Quaternion()
}

// Splat returns w, x, y, and z.
func (q Quaternion[S]) Splat() (S, S, S, S) {
	return q.W, q.V.X, q.V.Y, q.V.Z
}

func (q Quaternion[S]) String() string {
	return fmt.Sprintf("%g + %gi + %gj + %gk", q.W, q.V.X, q.V.Y, q.V.Z)
}

// Array returns [w, x, y, z].
func (q Quaternion[S]) Array() [4]S {
	return [4]S{q.W, q.V.X, q.V.Y, q.V.Z}
}

// QuaternionFromArray is the inverse of [Quaternion.Array].
func QuaternionFromArray[S Float](a [4]S) Quaternion[S] {
	return Quat(a[0], a[1], a[2], a[3])
}

// Index returns the i'th element of [Quaternion.Array]. It panics if i is
// out of range.
func (q Quaternion[S]) Index(i int) S {
	return q.Array()[i]
}

// F32 returns [w, x, y, z] as a golang.org/x/image vector.
func (q Quaternion[S]) F32() f32.Vec4 {
	return f32.Vec4{float32(q.W), float32(q.V.X), float32(q.V.Y), float32(q.V.Z)}
}

// F64 returns [w, x, y, z] as a golang.org/x/image vector.
func (q Quaternion[S]) F64() f64.Vec4 {
	return f64.Vec4{float64(q.W), float64(q.V.X), float64(q.V.Y), float64(q.V.Z)}
}

func QuaternionFromF32[S Float](a f32.Vec4) Quaternion[S] {
	return Quat(S(a[0]), S(a[1]), S(a[2]), S(a[3]))
}

func QuaternionFromF64[S Float](a f64.Vec4) Quaternion[S] {
	return Quat(S(a[0]), S(a[1]), S(a[2]), S(a[3]))
}

func (q Quaternion[S]) Dot(o Quaternion[S]) S {
	return q.W*o.W + q.V.Dot(o.V)
}

func (q Quaternion[S]) Conjugate() Quaternion[S] {
	return Quaternion[S]{q.W, q.V.Neg()}
}

// Magnitude2 returns the squared magnitude of q.
func (q Quaternion[S]) Magnitude2() S {
	return q.Dot(q)
}

func (q Quaternion[S]) Magnitude() S {
	return sqrt(q.Magnitude2())
}

// Normalize scales q to unit magnitude. This produces a NaN quaternion if
// the magnitude is 0.
func (q Quaternion[S]) Normalize() Quaternion[S] {
	return q.MulScalar(1 / q.Magnitude())
}

// NormalizeSelf normalizes q in place.
func (q *Quaternion[S]) NormalizeSelf() {
	*q = q.Normalize()
}

func (q Quaternion[S]) Add(o Quaternion[S]) Quaternion[S] {
	return Quaternion[S]{q.W + o.W, q.V.Add(o.V)}
}

func (q Quaternion[S]) Sub(o Quaternion[S]) Quaternion[S] {
	return Quaternion[S]{q.W - o.W, q.V.Sub(o.V)}
}

func (q Quaternion[S]) Neg() Quaternion[S] {
	return Quaternion[S]{-q.W, q.V.Neg()}
}

func (q Quaternion[S]) MulScalar(f S) Quaternion[S] {
	return Quaternion[S]{q.W * f, q.V.Mul(f)}
}

func (q Quaternion[S]) DivScalar(f S) Quaternion[S] {
	return Quaternion[S]{q.W / f, q.V.Div(f)}
}

// Mul computes the Hamilton product q·o. As a rotation, the result applies o
// first and q second.
func (q Quaternion[S]) Mul(o Quaternion[S]) Quaternion[S] {
	return Quat(
		q.W*o.W-q.V.X*o.V.X-q.V.Y*o.V.Y-q.V.Z*o.V.Z,
		q.W*o.V.X+q.V.X*o.W+q.V.Y*o.V.Z-q.V.Z*o.V.Y,
		q.W*o.V.Y+q.V.Y*o.W+q.V.Z*o.V.X-q.V.X*o.V.Z,
		q.W*o.V.Z+q.V.Z*o.W+q.V.X*o.V.Y-q.V.Y*o.V.X,
	)
}

// One returns the identity rotation. The receiver is ignored.
func (Quaternion[S]) One() Quaternion[S] {
	return QuaternionIdentity[S]()
}

// LookAt returns [QuaternionLookAt](dir, up). The receiver is ignored.
func (Quaternion[S]) LookAt(dir, up Vector3[S]) Quaternion[S] {
	return QuaternionLookAt(dir, up)
}

// RotateVector rotates v by q, which must be a unit quaternion.
func (q Quaternion[S]) RotateVector(v Vector3[S]) Vector3[S] {
	tmp := q.V.Cross(v).Add(v.Mul(q.W))
	return q.V.Cross(tmp).Mul(2).Add(v)
}

// RotatePoint rotates pt about the origin.
func (q Quaternion[S]) RotatePoint(pt Point3[S]) Point3[S] {
	return Point3FromVec(q.RotateVector(pt.ToVec()))
}

// Concat returns the rotation that applies o first and q second.
func (q Quaternion[S]) Concat(o Quaternion[S]) Quaternion[S] {
	return q.Mul(o)
}

// ConcatSelf sets q to q.Concat(o).
func (q *Quaternion[S]) ConcatSelf(o Quaternion[S]) {
	*q = q.Concat(o)
}

// Invert returns the multiplicative inverse of q. For unit quaternions this
// equals the conjugate.
func (q Quaternion[S]) Invert() Quaternion[S] {
	return q.Conjugate().DivScalar(q.Magnitude2())
}

// InvertSelf sets q to q.Invert().
func (q *Quaternion[S]) InvertSelf() {
	*q = q.Invert()
}

// Nlerp linearly interpolates between q and o and normalizes the result.
func (q Quaternion[S]) Nlerp(o Quaternion[S], t S) Quaternion[S] {
	return q.MulScalar(1 - t).Add(o.MulScalar(t)).Normalize()
}

// Slerp spherically interpolates between q and o, which should both be
// normalized.
//
// Quaternions that are very close together are interpolated with
// [Quaternion.Nlerp] instead. Slerp does not pick the shorter of the two
// arcs; negate one of the inputs if their dot product is negative and the
// short way around is wanted.
func (q Quaternion[S]) Slerp(o Quaternion[S], t S) Quaternion[S] {
	dot := q.Dot(o)
	if dot > 0.9995 {
		return q.Nlerp(o, t)
	}
	theta := Acos(Clamp(dot, -1, 1))
	scale1 := theta.Mul(1 - t).Sin()
	scale2 := theta.Mul(t).Sin()
	return q.MulScalar(scale1).Add(o.MulScalar(scale2)).MulScalar(1 / theta.Sin())
}

// Euler converts q to Euler angles, returned in the order taken by
// [QuaternionFromEuler]: the rotation about X (pitch), about Y (yaw), and
// about Z (roll).
//
// The conversion is aware of the singularities at the poles. When
// x·y + z·w is greater than 0.499 times the squared magnitude, or less than
// -0.499 times it, the X angle is exactly ±π/2, the Y angle is zero, and the
// Z angle is 2·atan2(qx, qw), carrying the whole remaining rotation. The
// comparison is strict, so a value of exactly 0.499 takes the general path.
//
// See http://www.euclideanspace.com/maths/geometry/rotations/conversions/quaternionToEuler/
func (q Quaternion[S]) Euler() (Rad[S], Rad[S], Rad[S]) {
	const sig = 0.499
	qw, qx, qy, qz := q.Splat()
	sqw, sqx, sqy, sqz := qw*qw, qx*qx, qy*qy, qz*qz

	unit := sqx + sqy + sqz + sqw
	test := qx*qy + qz*qw

	switch {
	case test > sig*unit:
		return Rad[S]{}.TurnDiv4(), Rad[S]{}, Atan2(qx, qw).Mul(2)
	case test < -sig*unit:
		return Rad[S]{}.TurnDiv4().Neg(), Rad[S]{}, Atan2(qx, qw).Mul(2)
	default:
		return Asin(2 * (qx*qy + qz*qw)),
			Atan2(2*(qy*qw-qx*qz), 1-2*(sqy+sqz)),
			Atan2(2*(qx*qw-qy*qz), 1-2*(sqx+sqz))
	}
}

// Matrix3 returns the rotation matrix of q, which must be a unit quaternion.
func (q Quaternion[S]) Matrix3() Matrix3[S] {
	x2 := q.V.X + q.V.X
	y2 := q.V.Y + q.V.Y
	z2 := q.V.Z + q.V.Z

	xx2 := x2 * q.V.X
	xy2 := x2 * q.V.Y
	xz2 := x2 * q.V.Z

	yy2 := y2 * q.V.Y
	yz2 := y2 * q.V.Z
	zz2 := z2 * q.V.Z

	sy2 := y2 * q.W
	sz2 := z2 * q.W
	sx2 := x2 * q.W

	return Mat3(
		1-yy2-zz2, xy2+sz2, xz2-sy2,
		xy2-sz2, 1-xx2-zz2, yz2+sx2,
		xz2+sy2, yz2-sx2, 1-xx2-yy2,
	)
}

// Matrix4 returns the rotation matrix of q embedded in a 4×4 matrix.
func (q Quaternion[S]) Matrix4() Matrix4[S] {
	return q.Matrix3().ToMatrix4()
}

// Quaternion converts the rotation matrix m to a unit quaternion.
//
// See http://www.euclideanspace.com/maths/geometry/rotations/conversions/matrixToQuaternion/
func (m Matrix3[S]) Quaternion() Quaternion[S] {
	trace := m.Trace()
	switch {
	case trace >= 0:
		s := sqrt(1 + trace)
		w := 0.5 * s
		s = 0.5 / s
		return Quat(
			w,
			(m.Y.Z-m.Z.Y)*s,
			(m.Z.X-m.X.Z)*s,
			(m.X.Y-m.Y.X)*s,
		)
	case m.X.X > m.Y.Y && m.X.X > m.Z.Z:
		s := sqrt(1+m.X.X-m.Y.Y-m.Z.Z) * 2
		return Quat(
			(m.Y.Z-m.Z.Y)/s,
			0.25*s,
			(m.X.Y+m.Y.X)/s,
			(m.Z.X+m.X.Z)/s,
		)
	case m.Y.Y > m.Z.Z:
		s := sqrt(1+m.Y.Y-m.X.X-m.Z.Z) * 2
		return Quat(
			(m.Z.X-m.X.Z)/s,
			(m.X.Y+m.Y.X)/s,
			0.25*s,
			(m.Y.Z+m.Z.Y)/s,
		)
	default:
		s := sqrt(1+m.Z.Z-m.X.X-m.Y.Y) * 2
		return Quat(
			(m.X.Y-m.Y.X)/s,
			(m.Z.X+m.X.Z)/s,
			(m.Y.Z+m.Z.Y)/s,
			0.25*s,
		)
	}
}

func (q Quaternion[S]) IsNaN() bool {
	return isNaN(q.W) || q.V.IsNaN()
}

func (q Quaternion[S]) ApproxEq(o Quaternion[S]) bool {
	return ApproxEq(q.W, o.W) && q.V.ApproxEq(o.V)
}

func (q Quaternion[S]) ApproxEqEps(o Quaternion[S], epsilon S) bool {
	return AbsDiffEq(q.W, o.W, epsilon) && q.V.ApproxEqEps(o.V, epsilon)
}

// CastQuaternion converts the components of q to T.
func CastQuaternion[T, S Float](q Quaternion[S]) Quaternion[T] {
	return Quaternion[T]{T(q.W), CastVector3[T](q.V)}
}
