package linmath

import "fmt"

// Rotation2 describes rotations in two-dimensional space. R is the
// implementing type itself. Methods that construct rotations, such as One
// and LookAt, ignore their receiver, so they can be called on the zero
// value.
type Rotation2[S Float, R any] interface {
	Approxer[R, S]

	One() R
	LookAt(dir, up Vector2[S]) R
	RotateVector(v Vector2[S]) Vector2[S]
	RotatePoint(pt Point2[S]) Point2[S]
	// Concat returns the rotation that applies the argument first and the
	// receiver second.
	Concat(o R) R
	Invert() R
	Matrix2() Matrix2[S]
}

// Rotation3 describes rotations in three-dimensional space. See
// [Rotation2].
type Rotation3[S Float, R any] interface {
	Approxer[R, S]

	One() R
	LookAt(dir, up Vector3[S]) R
	RotateVector(v Vector3[S]) Vector3[S]
	RotatePoint(pt Point3[S]) Point3[S]
	Concat(o R) R
	Invert() R
	Matrix3() Matrix3[S]
}

var (
	_ Rotation2[float64, Basis2[float64]] = Basis2[float64]{}
	_ Rotation3[float64, Basis3[float64]] = Basis3[float64]{}
)

// Basis2 is a rotation in 2D space stored as an orthonormal 2×2 matrix.
// Only the constructors in this package guarantee orthonormality.
type Basis2[S Float] struct {
	Mat Matrix2[S]
}

// Basis2FromAngle returns the rotation by theta.
func Basis2FromAngle[S Float](theta Rad[S]) Basis2[S] {
	return Basis2[S]{Matrix2FromAngle(theta)}
}

// Basis2BetweenVectors returns the rotation that turns the direction of a
// into the direction of b.
func Basis2BetweenVectors[S Float](a, b Vector2[S]) Basis2[S] {
	return Basis2FromAngle(a.Angle(b))
}

func (b Basis2[S]) String() string {
	return fmt.Sprintf("Basis2(%s)", b.Mat)
}

func (Basis2[S]) One() Basis2[S] {
	return Basis2[S]{Matrix2Identity[S]()}
}

func (Basis2[S]) LookAt(dir, up Vector2[S]) Basis2[S] {
	return Basis2[S]{Matrix2LookAt(dir, up)}
}

func (b Basis2[S]) RotateVector(v Vector2[S]) Vector2[S] {
	return b.Mat.MulVec(v)
}

func (b Basis2[S]) RotatePoint(pt Point2[S]) Point2[S] {
	return Point2FromVec(b.RotateVector(pt.ToVec()))
}

func (b Basis2[S]) Concat(o Basis2[S]) Basis2[S] {
	return Basis2[S]{b.Mat.Mul(o.Mat)}
}

// Invert returns the inverse rotation. The inverse of an orthonormal matrix
// is its transpose.
func (b Basis2[S]) Invert() Basis2[S] {
	return Basis2[S]{b.Mat.Transpose()}
}

func (b Basis2[S]) Matrix2() Matrix2[S] {
	return b.Mat
}

func (b Basis2[S]) ApproxEq(o Basis2[S]) bool {
	return b.Mat.ApproxEq(o.Mat)
}

func (b Basis2[S]) ApproxEqEps(o Basis2[S], epsilon S) bool {
	return b.Mat.ApproxEqEps(o.Mat, epsilon)
}

// Basis3 is a rotation in 3D space stored as an orthonormal 3×3 matrix.
// Only the constructors in this package guarantee orthonormality.
type Basis3[S Float] struct {
	Mat Matrix3[S]
}

func Basis3FromQuaternion[S Float](q Quaternion[S]) Basis3[S] {
	return Basis3[S]{q.Matrix3()}
}

// Basis3FromAxisAngle returns the rotation by angle about the normalized
// axis. Unlike [QuaternionFromAxisAngle], the axis is used as given.
func Basis3FromAxisAngle[S Float](axis Vector3[S], angle Rad[S]) Basis3[S] {
	return Basis3[S]{Matrix3FromAxisAngle(axis, angle)}
}

func Basis3FromEuler[S Float](x, y, z Rad[S]) Basis3[S] {
	return Basis3[S]{Matrix3FromEuler(x, y, z)}
}

func Basis3BetweenVectors[S Float](a, b Vector3[S]) Basis3[S] {
	return Basis3FromQuaternion(QuaternionBetweenVectors(a, b))
}

func (b Basis3[S]) String() string {
	return fmt.Sprintf("Basis3(%s)", b.Mat)
}

// Quaternion converts b to a unit quaternion.
func (b Basis3[S]) Quaternion() Quaternion[S] {
	return b.Mat.Quaternion()
}

func (Basis3[S]) One() Basis3[S] {
	return Basis3[S]{Matrix3Identity[S]()}
}

func (Basis3[S]) LookAt(dir, up Vector3[S]) Basis3[S] {
	return Basis3[S]{Matrix3LookAt(dir, up)}
}

func (b Basis3[S]) RotateVector(v Vector3[S]) Vector3[S] {
	return b.Mat.MulVec(v)
}

func (b Basis3[S]) RotatePoint(pt Point3[S]) Point3[S] {
	return Point3FromVec(b.RotateVector(pt.ToVec()))
}

func (b Basis3[S]) Concat(o Basis3[S]) Basis3[S] {
	return Basis3[S]{b.Mat.Mul(o.Mat)}
}

// Invert returns the inverse rotation. The inverse of an orthonormal matrix
// is its transpose.
func (b Basis3[S]) Invert() Basis3[S] {
	return Basis3[S]{b.Mat.Transpose()}
}

func (b Basis3[S]) Matrix3() Matrix3[S] {
	return b.Mat
}

func (b Basis3[S]) ApproxEq(o Basis3[S]) bool {
	return b.Mat.ApproxEq(o.Mat)
}

func (b Basis3[S]) ApproxEqEps(o Basis3[S], epsilon S) bool {
	return b.Mat.ApproxEqEps(o.Mat, epsilon)
}
