package linmath

import (
	"fmt"

	"golang.org/x/image/math/f64"
)

// AffineMatrix3 is an affine transform of 3D space stored as a homogeneous
// 4×4 matrix.
//
// The bottom row of Mat is expected to be (0, 0, 0, 1), but this is not
// enforced. Transforms compose like matrices, so that
// a.Concat(b).TransformPoint(p) == a.TransformPoint(b.TransformPoint(p)).
type AffineMatrix3[S Float] struct {
	Mat Matrix4[S]
}

// AffineMatrix3Identity returns the identity transform.
func AffineMatrix3Identity[S Float]() AffineMatrix3[S] {
	return AffineMatrix3[S]{Matrix4Identity[S]()}
}

// AffineMatrix3LookAt returns the view transform computed by
// [Matrix4LookAt].
func AffineMatrix3LookAt[S Float](eye, center Point3[S], up Vector3[S]) AffineMatrix3[S] {
	return AffineMatrix3[S]{Matrix4LookAt(eye, center, up)}
}

// AffineScale creates an affine transform representing non-uniform scaling
// with different scale values for x, y, and z.
func AffineScale[S Float](x, y, z S) AffineMatrix3[S] {
	return AffineMatrix3[S]{Matrix4FromNonUniformScale(x, y, z)}
}

// AffineTranslate creates an affine transform representing translation.
func AffineTranslate[S Float](v Vector3[S]) AffineMatrix3[S] {
	return AffineMatrix3[S]{Matrix4FromTranslation(v)}
}

// AffineRotate creates an affine transform representing the rotation matrix
// m, as returned by [Quaternion.Matrix3] or [Basis3.Matrix3].
func AffineRotate[S Float](m Matrix3[S]) AffineMatrix3[S] {
	return AffineMatrix3[S]{m.ToMatrix4()}
}

// AffineRotateAbout creates an affine transform representing the rotation m
// about center.
func AffineRotateAbout[S Float](m Matrix3[S], center Point3[S]) AffineMatrix3[S] {
	c := center.ToVec()
	return AffineTranslate(c.Neg()).ThenRotate(m).ThenTranslate(c)
}

// AffineReflect creates an affine transform that represents reflection about
// the plane through pt with the given normal.
func AffineReflect[S Float](pt Point3[S], normal Vector3[S]) AffineMatrix3[S] {
	n := normal.Normalize()

	// Householder reflection I - 2nnᵀ.
	m := Matrix3Identity[S]().Sub(Matrix3FromCols(
		n.Mul(2*n.X),
		n.Mul(2*n.Y),
		n.Mul(2*n.Z),
	))
	c := pt.ToVec()
	return AffineTranslate(c.Neg()).ThenRotate(m).ThenTranslate(c)
}

func (a AffineMatrix3[S]) String() string {
	return fmt.Sprintf("AffineMatrix3(%s)", a.Mat)
}

// One returns the identity transform. The receiver is ignored.
func (AffineMatrix3[S]) One() AffineMatrix3[S] {
	return AffineMatrix3Identity[S]()
}

func (a AffineMatrix3[S]) TransformVector(v Vector3[S]) Vector3[S] {
	return a.Mat.MulVec(v.Extend(0)).Truncate()
}

// TransformPoint transforms pt, dividing by the resulting w component.
func (a AffineMatrix3[S]) TransformPoint(pt Point3[S]) Point3[S] {
	return Point3FromHomogeneous(a.Mat.MulVec(pt.ToHomogeneous()))
}

func (a AffineMatrix3[S]) TransformAsPoint(v Vector3[S]) Vector3[S] {
	return a.TransformPoint(Point3FromVec(v)).ToVec()
}

// Concat returns the transform that applies o first and a second.
func (a AffineMatrix3[S]) Concat(o AffineMatrix3[S]) AffineMatrix3[S] {
	return AffineMatrix3[S]{a.Mat.Mul(o.Mat)}
}

// ConcatSelf sets a to a.Concat(o).
func (a *AffineMatrix3[S]) ConcatSelf(o AffineMatrix3[S]) {
	*a = a.Concat(o)
}

// PreRotate creates a rotation by m followed by a.
//
// Equivalent to "a * m"
func (a AffineMatrix3[S]) PreRotate(m Matrix3[S]) AffineMatrix3[S] {
	return a.Concat(AffineRotate(m))
}

// ThenRotate creates a followed by a rotation by m.
//
// Equivalent to "m * a"
func (a AffineMatrix3[S]) ThenRotate(m Matrix3[S]) AffineMatrix3[S] {
	return AffineRotate(m).Concat(a)
}

// PreScale creates a scale by (x, y, z) followed by a.
//
// Equivalent to "a * AffineScale(x, y, z)"
func (a AffineMatrix3[S]) PreScale(x, y, z S) AffineMatrix3[S] {
	return a.Concat(AffineScale(x, y, z))
}

// ThenScale creates a followed by a scale of (x, y, z).
//
// Equivalent to "AffineScale(x, y, z) * a"
func (a AffineMatrix3[S]) ThenScale(x, y, z S) AffineMatrix3[S] {
	return AffineScale(x, y, z).Concat(a)
}

// PreTranslate creates a translation of v followed by a.
//
// Equivalent to "a * AffineTranslate(v)"
func (a AffineMatrix3[S]) PreTranslate(v Vector3[S]) AffineMatrix3[S] {
	return a.Concat(AffineTranslate(v))
}

// ThenTranslate creates a followed by a translation of v.
//
// Equivalent to "AffineTranslate(v) * a"
func (a AffineMatrix3[S]) ThenTranslate(v Vector3[S]) AffineMatrix3[S] {
	return AffineTranslate(v).Concat(a)
}

// Determinant computes the determinant.
func (a AffineMatrix3[S]) Determinant() S {
	return a.Mat.Determinant()
}

// Invert computes the inverse transform. It returns false if the matrix is
// singular.
func (a AffineMatrix3[S]) Invert() (AffineMatrix3[S], bool) {
	m, ok := a.Mat.Invert()
	return AffineMatrix3[S]{m}, ok
}

// InvertSelf replaces a with its inverse. If a is not invertible, it is left
// unchanged and InvertSelf returns false.
func (a *AffineMatrix3[S]) InvertSelf() bool {
	inv, ok := a.Invert()
	if ok {
		*a = inv
	}
	return ok
}

func (a AffineMatrix3[S]) Matrix4() Matrix4[S] {
	return a.Mat
}

// Translation returns the translation component of this affine
// transformation.
func (a AffineMatrix3[S]) Translation() Vector3[S] {
	return a.Mat.W.Truncate()
}

// WithTranslation replaces the translation portion of this affine
// transformation.
func (a AffineMatrix3[S]) WithTranslation(v Vector3[S]) AffineMatrix3[S] {
	a.Mat.W = v.Extend(a.Mat.W.W)
	return a
}

func (a AffineMatrix3[S]) IsInf() bool {
	return a.Mat.X.IsInf() ||
		a.Mat.Y.IsInf() ||
		a.Mat.Z.IsInf() ||
		a.Mat.W.IsInf()
}

func (a AffineMatrix3[S]) IsNaN() bool {
	return a.Mat.X.IsNaN() ||
		a.Mat.Y.IsNaN() ||
		a.Mat.Z.IsNaN() ||
		a.Mat.W.IsNaN()
}

func (a AffineMatrix3[S]) ApproxEq(o AffineMatrix3[S]) bool {
	return a.Mat.ApproxEq(o.Mat)
}

func (a AffineMatrix3[S]) ApproxEqEps(o AffineMatrix3[S], epsilon S) bool {
	return a.Mat.ApproxEqEps(o.Mat, epsilon)
}

// Aff4 converts a to a golang.org/x/image affine transform, which stores the
// top three rows of the homogeneous matrix in row-major order.
func (a AffineMatrix3[S]) Aff4() f64.Aff4 {
	var out f64.Aff4
	for r := range 3 {
		row := a.Mat.Row(r)
		out[4*r+0] = float64(row.X)
		out[4*r+1] = float64(row.Y)
		out[4*r+2] = float64(row.Z)
		out[4*r+3] = float64(row.W)
	}
	return out
}

// AffineMatrix3FromAff4 is the inverse of [AffineMatrix3.Aff4].
func AffineMatrix3FromAff4[S Float](aff f64.Aff4) AffineMatrix3[S] {
	return AffineMatrix3[S]{Mat4(
		S(aff[0]), S(aff[4]), S(aff[8]), 0,
		S(aff[1]), S(aff[5]), S(aff[9]), 0,
		S(aff[2]), S(aff[6]), S(aff[10]), 0,
		S(aff[3]), S(aff[7]), S(aff[11]), 1,
	)}
}
