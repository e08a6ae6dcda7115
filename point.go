package linmath

import (
	"fmt"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

// Point2 is a position in two-dimensional space.
//
// Points and vectors share a layout but not an algebra: the difference of
// two points is a [Vector2], a point plus a vector is a point, and two
// points cannot be added.
type Point2[S Float] struct {
	X S
	Y S
}

// Point3 is a position in three-dimensional space. See [Point2].
type Point3[S Float] struct {
	X S
	Y S
	Z S
}

// Pt2 returns the point (x, y).
func Pt2[S Float](x, y S) Point2[S] {
	return Point2[S]{X: x, Y: y}
}

// Pt3 returns the point (x, y, z).
func Pt3[S Float](x, y, z S) Point3[S] {
	return Point3[S]{X: x, Y: y, Z: z}
}

// Origin2 returns the point (0, 0).
func Origin2[S Float]() Point2[S] {
	return Point2[S]{}
}

// Origin3 returns the point (0, 0, 0).
func Origin3[S Float]() Point3[S] {
	return Point3[S]{}
}

// Point2FromVec returns the point that v points to from the origin.
func Point2FromVec[S Float](v Vector2[S]) Point2[S] {
	return Point2[S](v)
}

// Point3FromVec returns the point that v points to from the origin.
func Point3FromVec[S Float](v Vector3[S]) Point3[S] {
	return Point3[S](v)
}

// Point3FromHomogeneous divides the x, y, and z components of v by w. The
// result is infinite or NaN if w is 0.
func Point3FromHomogeneous[S Float](v Vector4[S]) Point3[S] {
	return Point3FromVec(v.Truncate().Mul(1 / v.W))
}

func (pt Point2[S]) Splat() (S, S) {
	return pt.X, pt.Y
}

func (pt Point2[S]) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// ToVec returns the vector from the origin to pt.
func (pt Point2[S]) ToVec() Vector2[S] {
	return Vector2[S](pt)
}

// AddV translates pt by v.
func (pt Point2[S]) AddV(v Vector2[S]) Point2[S] {
	return Point2[S]{
		X: pt.X + v.X,
		Y: pt.Y + v.Y,
	}
}

// SubP computes pt−o.
// To subtract a vector from pt, use AddV and negate the vector.
func (pt Point2[S]) SubP(o Point2[S]) Vector2[S] {
	return Vector2[S]{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

func (pt Point2[S]) Mul(f S) Point2[S] {
	return Point2[S](pt.ToVec().Mul(f))
}

func (pt Point2[S]) Div(f S) Point2[S] {
	return Point2[S](pt.ToVec().Div(f))
}

func (pt Point2[S]) Rem(f S) Point2[S] {
	return Point2[S](pt.ToVec().Rem(f))
}

// Dot returns the dot product of pt's coordinates and v, as used for the
// distance of a point from a plane.
func (pt Point2[S]) Dot(v Vector2[S]) S {
	return pt.ToVec().Dot(v)
}

// Min returns the component-wise minimum of two points.
func (pt Point2[S]) Min(o Point2[S]) Point2[S] {
	return Point2[S]{
		X: partialMin(pt.X, o.X),
		Y: partialMin(pt.Y, o.Y),
	}
}

// Max returns the component-wise maximum of two points.
func (pt Point2[S]) Max(o Point2[S]) Point2[S] {
	return Point2[S]{
		X: partialMax(pt.X, o.X),
		Y: partialMax(pt.Y, o.Y),
	}
}

func (pt Point2[S]) Sum() S     { return pt.ToVec().Sum() }
func (pt Point2[S]) Product() S { return pt.ToVec().Product() }
func (pt Point2[S]) MinElem() S { return pt.ToVec().MinElem() }
func (pt Point2[S]) MaxElem() S { return pt.ToVec().MaxElem() }

// Lerp linearly interpolates between two points.
func (pt Point2[S]) Lerp(o Point2[S], t S) Point2[S] {
	return Point2[S](pt.ToVec().Lerp(o.ToVec(), t))
}

// Midpoint returns the midpoint of two points.
func (pt Point2[S]) Midpoint(o Point2[S]) Point2[S] {
	return Point2[S]{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point2[S]) Distance(o Point2[S]) S {
	return pt.SubP(o).Length()
}

// Distance2 returns the squared euclidean distance between two points.
func (pt Point2[S]) Distance2(o Point2[S]) S {
	return pt.SubP(o).Length2()
}

// Array returns the coordinates as an array, in field order.
func (pt Point2[S]) Array() [2]S {
	return pt.ToVec().Array()
}

// Pt2FromArray is the inverse of [Point2.Array].
func Pt2FromArray[S Float](a [2]S) Point2[S] {
	return Point2[S]{a[0], a[1]}
}

// Index returns the i'th coordinate. It panics if i is out of range.
func (pt Point2[S]) Index(i int) S {
	return pt.Array()[i]
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point2[S]) IsInf() bool {
	return pt.ToVec().IsInf()
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point2[S]) IsNaN() bool {
	return pt.ToVec().IsNaN()
}

func (pt Point2[S]) ApproxEq(o Point2[S]) bool {
	return pt.ToVec().ApproxEq(o.ToVec())
}

func (pt Point2[S]) ApproxEqEps(o Point2[S], epsilon S) bool {
	return pt.ToVec().ApproxEqEps(o.ToVec(), epsilon)
}

func (pt Point2[S]) F32() f32.Vec2 { return pt.ToVec().F32() }
func (pt Point2[S]) F64() f64.Vec2 { return pt.ToVec().F64() }

// CastPoint2 converts the coordinates of pt to T.
func CastPoint2[T, S Float](pt Point2[S]) Point2[T] {
	return Point2[T]{T(pt.X), T(pt.Y)}
}

func (pt Point3[S]) Splat() (S, S, S) {
	return pt.X, pt.Y, pt.Z
}

func (pt Point3[S]) String() string {
	return fmt.Sprintf("(%g, %g, %g)", pt.X, pt.Y, pt.Z)
}

// ToVec returns the vector from the origin to pt.
func (pt Point3[S]) ToVec() Vector3[S] {
	return Vector3[S](pt)
}

// ToHomogeneous returns pt in homogeneous coordinates, with w = 1.
func (pt Point3[S]) ToHomogeneous() Vector4[S] {
	return Vector4[S]{pt.X, pt.Y, pt.Z, 1}
}

// AddV translates pt by v.
func (pt Point3[S]) AddV(v Vector3[S]) Point3[S] {
	return Point3[S]{
		X: pt.X + v.X,
		Y: pt.Y + v.Y,
		Z: pt.Z + v.Z,
	}
}

// SubP computes pt−o.
// To subtract a vector from pt, use AddV and negate the vector.
func (pt Point3[S]) SubP(o Point3[S]) Vector3[S] {
	return Vector3[S]{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
		Z: pt.Z - o.Z,
	}
}

func (pt Point3[S]) Mul(f S) Point3[S] {
	return Point3[S](pt.ToVec().Mul(f))
}

func (pt Point3[S]) Div(f S) Point3[S] {
	return Point3[S](pt.ToVec().Div(f))
}

func (pt Point3[S]) Rem(f S) Point3[S] {
	return Point3[S](pt.ToVec().Rem(f))
}

// Dot returns the dot product of pt's coordinates and v, as used for the
// distance of a point from a plane.
func (pt Point3[S]) Dot(v Vector3[S]) S {
	return pt.ToVec().Dot(v)
}

// Min returns the component-wise minimum of two points.
func (pt Point3[S]) Min(o Point3[S]) Point3[S] {
	return Point3[S]{
		X: partialMin(pt.X, o.X),
		Y: partialMin(pt.Y, o.Y),
		Z: partialMin(pt.Z, o.Z),
	}
}

// Max returns the component-wise maximum of two points.
func (pt Point3[S]) Max(o Point3[S]) Point3[S] {
	return Point3[S]{
		X: partialMax(pt.X, o.X),
		Y: partialMax(pt.Y, o.Y),
		Z: partialMax(pt.Z, o.Z),
	}
}

func (pt Point3[S]) Sum() S     { return pt.ToVec().Sum() }
func (pt Point3[S]) Product() S { return pt.ToVec().Product() }
func (pt Point3[S]) MinElem() S { return pt.ToVec().MinElem() }
func (pt Point3[S]) MaxElem() S { return pt.ToVec().MaxElem() }

// Lerp linearly interpolates between two points.
func (pt Point3[S]) Lerp(o Point3[S], t S) Point3[S] {
	return Point3[S](pt.ToVec().Lerp(o.ToVec(), t))
}

// Midpoint returns the midpoint of two points.
func (pt Point3[S]) Midpoint(o Point3[S]) Point3[S] {
	return Point3[S]{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
		Z: 0.5 * (pt.Z + o.Z),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point3[S]) Distance(o Point3[S]) S {
	return pt.SubP(o).Length()
}

// Distance2 returns the squared euclidean distance between two points.
func (pt Point3[S]) Distance2(o Point3[S]) S {
	return pt.SubP(o).Length2()
}

// Array returns the coordinates as an array, in field order.
func (pt Point3[S]) Array() [3]S {
	return pt.ToVec().Array()
}

// Pt3FromArray is the inverse of [Point3.Array].
func Pt3FromArray[S Float](a [3]S) Point3[S] {
	return Point3[S]{a[0], a[1], a[2]}
}

// Index returns the i'th coordinate. It panics if i is out of range.
func (pt Point3[S]) Index(i int) S {
	return pt.Array()[i]
}

// IsInf reports whether at least one coordinate is infinite.
func (pt Point3[S]) IsInf() bool {
	return pt.ToVec().IsInf()
}

// IsNaN reports whether at least one coordinate is NaN.
func (pt Point3[S]) IsNaN() bool {
	return pt.ToVec().IsNaN()
}

func (pt Point3[S]) ApproxEq(o Point3[S]) bool {
	return pt.ToVec().ApproxEq(o.ToVec())
}

func (pt Point3[S]) ApproxEqEps(o Point3[S], epsilon S) bool {
	return pt.ToVec().ApproxEqEps(o.ToVec(), epsilon)
}

func (pt Point3[S]) F32() f32.Vec3 { return pt.ToVec().F32() }
func (pt Point3[S]) F64() f64.Vec3 { return pt.ToVec().F64() }

// CastPoint3 converts the coordinates of pt to T.
func CastPoint3[T, S Float](pt Point3[S]) Point3[T] {
	return Point3[T]{T(pt.X), T(pt.Y), T(pt.Z)}
}
