package linmath

import (
	"fmt"
	"iter"

	"golang.org/x/image/math/f64"
)

// Transform2 describes affine transforms of two-dimensional space. T is the
// implementing type itself.
type Transform2[S Float, T any] interface {
	TransformVector(v Vector2[S]) Vector2[S]
	TransformPoint(pt Point2[S]) Point2[S]
	// TransformAsPoint transforms v as if it were the point v points to from
	// the origin.
	TransformAsPoint(v Vector2[S]) Vector2[S]
	// Concat returns the transform that applies the argument first and the
	// receiver second.
	Concat(o T) T
	// Invert returns the inverse transform. It returns false if the
	// transform is not invertible.
	Invert() (T, bool)
	Matrix3() Matrix3[S]
}

// Transform3 describes affine transforms of three-dimensional space. See
// [Transform2].
type Transform3[S Float, T any] interface {
	TransformVector(v Vector3[S]) Vector3[S]
	TransformPoint(pt Point3[S]) Point3[S]
	TransformAsPoint(v Vector3[S]) Vector3[S]
	Concat(o T) T
	Invert() (T, bool)
	Matrix4() Matrix4[S]
}

var (
	_ Transform2[float64, Decomposed2[float64, Basis2[float64]]]     = Decomposed2[float64, Basis2[float64]]{}
	_ Transform3[float64, Decomposed3[float64, Quaternion[float64]]] = Decomposed3[float64, Quaternion[float64]]{}
	_ Transform3[float64, Decomposed3[float64, Basis3[float64]]]     = Decomposed3[float64, Basis3[float64]]{}
	_ Transform3[float64, AffineMatrix3[float64]]                    = AffineMatrix3[float64]{}
)

// Decomposed3 is an affine transform of 3D space made of a uniform scale,
// followed by a rotation, followed by a displacement.
type Decomposed3[S Float, R Rotation3[S, R]] struct {
	Scale S
	Rot   R
	Disp  Vector3[S]
}

// Decomposed2 is the 2D equivalent of [Decomposed3].
type Decomposed2[S Float, R Rotation2[S, R]] struct {
	Scale S
	Rot   R
	Disp  Vector2[S]
}

// IdentityDecomposed3 returns the transform that leaves every point and
// vector unchanged.
func IdentityDecomposed3[S Float, R Rotation3[S, R]]() Decomposed3[S, R] {
	var r R
	return Decomposed3[S, R]{
		Scale: 1,
		Rot:   r.One(),
	}
}

// IdentityDecomposed2 returns the transform that leaves every point and
// vector unchanged.
func IdentityDecomposed2[S Float, R Rotation2[S, R]]() Decomposed2[S, R] {
	var r R
	return Decomposed2[S, R]{
		Scale: 1,
		Rot:   r.One(),
	}
}

// Decomposed3LookAt returns a view transform for a camera at eye looking at
// center. The rotation type has to be specified explicitly:
//
//	Decomposed3LookAt[linmath.Quaternion[float64]](eye, center, up)
func Decomposed3LookAt[R Rotation3[S, R], S Float](eye, center Point3[S], up Vector3[S]) Decomposed3[S, R] {
	var r R
	rot := r.LookAt(center.SubP(eye), up)
	return Decomposed3[S, R]{
		Scale: 1,
		Rot:   rot,
		Disp:  rot.RotateVector(Origin3[S]().SubP(eye)),
	}
}

// Decomposed2LookAt is the 2D equivalent of [Decomposed3LookAt].
func Decomposed2LookAt[R Rotation2[S, R], S Float](eye, center Point2[S], up Vector2[S]) Decomposed2[S, R] {
	var r R
	rot := r.LookAt(center.SubP(eye), up)
	return Decomposed2[S, R]{
		Scale: 1,
		Rot:   rot,
		Disp:  rot.RotateVector(Origin2[S]().SubP(eye)),
	}
}

// One returns the identity transform. The receiver is ignored.
func (Decomposed3[S, R]) One() Decomposed3[S, R] {
	return IdentityDecomposed3[S, R]()
}

func (d Decomposed3[S, R]) String() string {
	return fmt.Sprintf("(scale(%g), rot(%v), disp%s)", d.Scale, d.Rot, d.Disp)
}

func (d Decomposed3[S, R]) TransformVector(v Vector3[S]) Vector3[S] {
	return d.Rot.RotateVector(v.Mul(d.Scale))
}

func (d Decomposed3[S, R]) TransformPoint(pt Point3[S]) Point3[S] {
	return d.Rot.RotatePoint(pt.Mul(d.Scale)).AddV(d.Disp)
}

func (d Decomposed3[S, R]) TransformAsPoint(v Vector3[S]) Vector3[S] {
	return d.TransformPoint(Point3FromVec(v)).ToVec()
}

func (d Decomposed3[S, R]) Concat(o Decomposed3[S, R]) Decomposed3[S, R] {
	return Decomposed3[S, R]{
		Scale: d.Scale * o.Scale,
		Rot:   d.Rot.Concat(o.Rot),
		Disp:  d.TransformAsPoint(o.Disp),
	}
}

// ConcatSelf sets d to d.Concat(o).
func (d *Decomposed3[S, R]) ConcatSelf(o Decomposed3[S, R]) {
	*d = d.Concat(o)
}

// Invert returns the inverse transform. It returns false if the scale is
// approximately zero.
func (d Decomposed3[S, R]) Invert() (Decomposed3[S, R], bool) {
	if ApproxEq(d.Scale, 0) {
		return Decomposed3[S, R]{}, false
	}
	s := 1 / d.Scale
	r := d.Rot.Invert()
	return Decomposed3[S, R]{
		Scale: s,
		Rot:   r,
		Disp:  r.RotateVector(d.Disp).Mul(-s),
	}, true
}

// InvertSelf replaces d with its inverse. If d is not invertible, it is left
// unchanged and InvertSelf returns false.
func (d *Decomposed3[S, R]) InvertSelf() bool {
	inv, ok := d.Invert()
	if ok {
		*d = inv
	}
	return ok
}

// Decompose returns the scale, rotation, and translation of d. The scale is
// returned per axis, and always uniform.
func (d Decomposed3[S, R]) Decompose() (Vector3[S], R, Vector3[S]) {
	return Vec3FromValue(d.Scale), d.Rot, d.Disp
}

// Matrix4 returns the homogeneous matrix of d.
func (d Decomposed3[S, R]) Matrix4() Matrix4[S] {
	m := d.Rot.Matrix3().MulScalar(d.Scale).ToMatrix4()
	m.W = d.Disp.Extend(1)
	return m
}

// AffineMatrix3 returns d as a matrix transform.
func (d Decomposed3[S, R]) AffineMatrix3() AffineMatrix3[S] {
	return AffineMatrix3[S]{d.Matrix4()}
}

func (d Decomposed3[S, R]) ApproxEq(o Decomposed3[S, R]) bool {
	return ApproxEq(d.Scale, o.Scale) && d.Rot.ApproxEq(o.Rot) && d.Disp.ApproxEq(o.Disp)
}

func (d Decomposed3[S, R]) ApproxEqEps(o Decomposed3[S, R], epsilon S) bool {
	return AbsDiffEq(d.Scale, o.Scale, epsilon) &&
		d.Rot.ApproxEqEps(o.Rot, epsilon) &&
		d.Disp.ApproxEqEps(o.Disp, epsilon)
}

// One returns the identity transform. The receiver is ignored.
func (Decomposed2[S, R]) One() Decomposed2[S, R] {
	return IdentityDecomposed2[S, R]()
}

func (d Decomposed2[S, R]) String() string {
	return fmt.Sprintf("(scale(%g), rot(%v), disp%s)", d.Scale, d.Rot, d.Disp)
}

func (d Decomposed2[S, R]) TransformVector(v Vector2[S]) Vector2[S] {
	return d.Rot.RotateVector(v.Mul(d.Scale))
}

func (d Decomposed2[S, R]) TransformPoint(pt Point2[S]) Point2[S] {
	return d.Rot.RotatePoint(pt.Mul(d.Scale)).AddV(d.Disp)
}

func (d Decomposed2[S, R]) TransformAsPoint(v Vector2[S]) Vector2[S] {
	return d.TransformPoint(Point2FromVec(v)).ToVec()
}

func (d Decomposed2[S, R]) Concat(o Decomposed2[S, R]) Decomposed2[S, R] {
	return Decomposed2[S, R]{
		Scale: d.Scale * o.Scale,
		Rot:   d.Rot.Concat(o.Rot),
		Disp:  d.TransformAsPoint(o.Disp),
	}
}

// ConcatSelf sets d to d.Concat(o).
func (d *Decomposed2[S, R]) ConcatSelf(o Decomposed2[S, R]) {
	*d = d.Concat(o)
}

// Invert returns the inverse transform. It returns false if the scale is
// approximately zero.
func (d Decomposed2[S, R]) Invert() (Decomposed2[S, R], bool) {
	if ApproxEq(d.Scale, 0) {
		return Decomposed2[S, R]{}, false
	}
	s := 1 / d.Scale
	r := d.Rot.Invert()
	return Decomposed2[S, R]{
		Scale: s,
		Rot:   r,
		Disp:  r.RotateVector(d.Disp).Mul(-s),
	}, true
}

// InvertSelf replaces d with its inverse. If d is not invertible, it is left
// unchanged and InvertSelf returns false.
func (d *Decomposed2[S, R]) InvertSelf() bool {
	inv, ok := d.Invert()
	if ok {
		*d = inv
	}
	return ok
}

// Decompose returns the scale, rotation, and translation of d.
func (d Decomposed2[S, R]) Decompose() (Vector2[S], R, Vector2[S]) {
	return Vec2FromValue(d.Scale), d.Rot, d.Disp
}

// Matrix3 returns the homogeneous matrix of d.
func (d Decomposed2[S, R]) Matrix3() Matrix3[S] {
	m := d.Rot.Matrix2().MulScalar(d.Scale).ToMatrix3()
	m.Z = d.Disp.Extend(1)
	return m
}

// Aff3 converts d to a golang.org/x/image affine transform, which stores the
// top two rows of the homogeneous matrix in row-major order.
func (d Decomposed2[S, R]) Aff3() f64.Aff3 {
	m := d.Matrix3()
	return f64.Aff3{
		float64(m.X.X), float64(m.Y.X), float64(m.Z.X),
		float64(m.X.Y), float64(m.Y.Y), float64(m.Z.Y),
	}
}

func (d Decomposed2[S, R]) ApproxEq(o Decomposed2[S, R]) bool {
	return ApproxEq(d.Scale, o.Scale) && d.Rot.ApproxEq(o.Rot) && d.Disp.ApproxEq(o.Disp)
}

func (d Decomposed2[S, R]) ApproxEqEps(o Decomposed2[S, R], epsilon S) bool {
	return AbsDiffEq(d.Scale, o.Scale, epsilon) &&
		d.Rot.ApproxEqEps(o.Rot, epsilon) &&
		d.Disp.ApproxEqEps(o.Disp, epsilon)
}

// TransformPoints2 lazily applies t to every point of seq.
func TransformPoints2[S Float, T interface{ TransformPoint(Point2[S]) Point2[S] }](seq iter.Seq[Point2[S]], t T) iter.Seq[Point2[S]] {
	return func(yield func(Point2[S]) bool) {
		for pt := range seq {
			if !yield(t.TransformPoint(pt)) {
				break
			}
		}
	}
}

// TransformPoints3 lazily applies t to every point of seq.
func TransformPoints3[S Float, T interface{ TransformPoint(Point3[S]) Point3[S] }](seq iter.Seq[Point3[S]], t T) iter.Seq[Point3[S]] {
	return func(yield func(Point3[S]) bool) {
		for pt := range seq {
			if !yield(t.TransformPoint(pt)) {
				break
			}
		}
	}
}
