package linmath

import (
	"fmt"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

// Vector is the behavior shared by [Vector2], [Vector3], and [Vector4]. It
// exists for code that is generic over the dimension, such as interpolation.
type Vector[S Float, V any] interface {
	Add(o V) V
	Sub(o V) V
	Mul(f S) V
	Div(f S) V
	Neg() V
	Dot(o V) S
	Length2() S
	Length() S
	Normalize() V
	Lerp(o V, t S) V

	ApproxEq(o V) bool
	ApproxEqEps(o V, epsilon S) bool
}

var (
	_ Vector[float64, Vector2[float64]] = Vector2[float64]{}
	_ Vector[float64, Vector3[float64]] = Vector3[float64]{}
	_ Vector[float64, Vector4[float64]] = Vector4[float64]{}
)

// Vector2 is a two-dimensional vector: a direction and a magnitude, as
// opposed to a position, which is a [Point2].
type Vector2[S Float] struct {
	X S
	Y S
}

// Vector3 is a three-dimensional vector.
type Vector3[S Float] struct {
	X S
	Y S
	Z S
}

// Vector4 is a four-dimensional vector.
type Vector4[S Float] struct {
	X S
	Y S
	Z S
	W S
}

// Vec2 returns the vector ⟨x, y⟩.
func Vec2[S Float](x, y S) Vector2[S] {
	return Vector2[S]{X: x, Y: y}
}

// Vec3 returns the vector ⟨x, y, z⟩.
func Vec3[S Float](x, y, z S) Vector3[S] {
	return Vector3[S]{X: x, Y: y, Z: z}
}

// Vec4 returns the vector ⟨x, y, z, w⟩.
func Vec4[S Float](x, y, z, w S) Vector4[S] {
	return Vector4[S]{X: x, Y: y, Z: z, W: w}
}

// Vec2FromValue returns a vector with every component set to f.
func Vec2FromValue[S Float](f S) Vector2[S] { return Vector2[S]{f, f} }

// Vec3FromValue returns a vector with every component set to f.
func Vec3FromValue[S Float](f S) Vector3[S] { return Vector3[S]{f, f, f} }

// Vec4FromValue returns a vector with every component set to f.
func Vec4FromValue[S Float](f S) Vector4[S] { return Vector4[S]{f, f, f, f} }

func Vec2UnitX[S Float]() Vector2[S] { return Vector2[S]{1, 0} }
func Vec2UnitY[S Float]() Vector2[S] { return Vector2[S]{0, 1} }

func Vec3UnitX[S Float]() Vector3[S] { return Vector3[S]{1, 0, 0} }
func Vec3UnitY[S Float]() Vector3[S] { return Vector3[S]{0, 1, 0} }
func Vec3UnitZ[S Float]() Vector3[S] { return Vector3[S]{0, 0, 1} }

func Vec4UnitX[S Float]() Vector4[S] { return Vector4[S]{1, 0, 0, 0} }
func Vec4UnitY[S Float]() Vector4[S] { return Vector4[S]{0, 1, 0, 0} }
func Vec4UnitZ[S Float]() Vector4[S] { return Vector4[S]{0, 0, 1, 0} }
func Vec4UnitW[S Float]() Vector4[S] { return Vector4[S]{0, 0, 0, 1} }

// Splat returns the vector's components.
func (v Vector2[S]) Splat() (S, S) {
	return v.X, v.Y
}

func (v Vector2[S]) String() string {
	return fmt.Sprintf("[%g, %g]", v.X, v.Y)
}

// Array returns the components as an array, in field order.
func (v Vector2[S]) Array() [2]S {
	return [2]S{v.X, v.Y}
}

// Vec2FromArray is the inverse of [Vector2.Array].
func Vec2FromArray[S Float](a [2]S) Vector2[S] {
	return Vector2[S]{a[0], a[1]}
}

// Index returns the i'th component. It panics if i is out of range.
func (v Vector2[S]) Index(i int) S {
	return v.Array()[i]
}

// SetIndex sets the i'th component. It panics if i is out of range.
func (v *Vector2[S]) SetIndex(i int, f S) {
	a := v.Array()
	a[i] = f
	*v = Vec2FromArray(a)
}

// Add adds two vectors and returns the resulting vector.
func (v Vector2[S]) Add(o Vector2[S]) Vector2[S] {
	return Vector2[S]{
		X: v.X + o.X,
		Y: v.Y + o.Y,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vector2[S]) Sub(o Vector2[S]) Vector2[S] {
	return Vector2[S]{
		X: v.X - o.X,
		Y: v.Y - o.Y,
	}
}

// MulElem multiplies two vectors component-wise.
func (v Vector2[S]) MulElem(o Vector2[S]) Vector2[S] {
	return Vector2[S]{
		X: v.X * o.X,
		Y: v.Y * o.Y,
	}
}

// DivElem divides two vectors component-wise.
func (v Vector2[S]) DivElem(o Vector2[S]) Vector2[S] {
	return Vector2[S]{
		X: v.X / o.X,
		Y: v.Y / o.Y,
	}
}

// RemElem computes the component-wise remainder of two vectors.
func (v Vector2[S]) RemElem(o Vector2[S]) Vector2[S] {
	return Vector2[S]{
		X: mod(v.X, o.X),
		Y: mod(v.Y, o.Y),
	}
}

func (v Vector2[S]) AddScalar(f S) Vector2[S] {
	return Vector2[S]{
		X: v.X + f,
		Y: v.Y + f,
	}
}

func (v Vector2[S]) SubScalar(f S) Vector2[S] {
	return Vector2[S]{
		X: v.X - f,
		Y: v.Y - f,
	}
}

func (v Vector2[S]) Mul(f S) Vector2[S] {
	return Vector2[S]{
		X: v.X * f,
		Y: v.Y * f,
	}
}

func (v Vector2[S]) Div(f S) Vector2[S] {
	return Vector2[S]{
		X: v.X / f,
		Y: v.Y / f,
	}
}

func (v Vector2[S]) Rem(f S) Vector2[S] {
	return Vector2[S]{
		X: mod(v.X, f),
		Y: mod(v.Y, f),
	}
}

// Neg returns a new vector with the signs of all components flipped.
func (v Vector2[S]) Neg() Vector2[S] {
	return Vector2[S]{
		X: -v.X,
		Y: -v.Y,
	}
}

// Dot returns the dot product of v and o.
func (v Vector2[S]) Dot(o Vector2[S]) S {
	return v.X*o.X + v.Y*o.Y
}

// PerpDot returns the perpendicular dot product of v and o, which is the z
// component of the cross product of the vectors extended to three
// dimensions.
func (v Vector2[S]) PerpDot(o Vector2[S]) S {
	return v.X*o.Y - v.Y*o.X
}

// Extend returns a Vector3 with the x and y components of v and the
// provided z.
func (v Vector2[S]) Extend(z S) Vector3[S] {
	return Vector3[S]{v.X, v.Y, z}
}

func (v Vector2[S]) Sum() S     { return v.X + v.Y }
func (v Vector2[S]) Product() S { return v.X * v.Y }
func (v Vector2[S]) MinElem() S { return partialMin(v.X, v.Y) }
func (v Vector2[S]) MaxElem() S { return partialMax(v.X, v.Y) }

// Length2 returns the squared length of the vector.
//
// This function is more efficient than squaring the result of
// [Vector2.Length].
func (v Vector2[S]) Length2() S {
	return v.Dot(v)
}

// Length returns the length of the vector.
func (v Vector2[S]) Length() S {
	return sqrt(v.Length2())
}

// Normalize returns a vector of length 1 with the same direction as v.
// This produces a NaN vector if the length is 0.
func (v Vector2[S]) Normalize() Vector2[S] {
	return v.NormalizeTo(1)
}

// NormalizeTo returns a vector of length l with the same direction as v.
func (v Vector2[S]) NormalizeTo(l S) Vector2[S] {
	return v.Mul(l / v.Length())
}

// NormalizeSelf normalizes v in place.
func (v *Vector2[S]) NormalizeSelf() {
	*v = v.Normalize()
}

// Lerp linearly interpolates between two vectors.
func (v Vector2[S]) Lerp(o Vector2[S], t S) Vector2[S] {
	// v + t * (o-v)
	return v.Add(o.Sub(v).Mul(t))
}

// Angle returns the signed angle from v to o. It is positive if o is
// anti-clockwise of v in a y-up coordinate system.
func (v Vector2[S]) Angle(o Vector2[S]) Rad[S] {
	return Atan2(v.PerpDot(o), v.Dot(o))
}

// IsPerpendicular reports whether the dot product of v and o is
// approximately zero.
func (v Vector2[S]) IsPerpendicular(o Vector2[S]) bool {
	return ApproxEq(v.Dot(o), 0)
}

// IsInf reports whether at least one component is infinite.
func (v Vector2[S]) IsInf() bool {
	return isInf(v.X) || isInf(v.Y)
}

// IsNaN reports whether at least one component is NaN.
func (v Vector2[S]) IsNaN() bool {
	return isNaN(v.X) || isNaN(v.Y)
}

func (v Vector2[S]) ApproxEq(o Vector2[S]) bool {
	return ApproxEq(v.X, o.X) && ApproxEq(v.Y, o.Y)
}

func (v Vector2[S]) ApproxEqEps(o Vector2[S], epsilon S) bool {
	return AbsDiffEq(v.X, o.X, epsilon) && AbsDiffEq(v.Y, o.Y, epsilon)
}

// F32 converts v to a golang.org/x/image vector.
func (v Vector2[S]) F32() f32.Vec2 {
	return f32.Vec2{float32(v.X), float32(v.Y)}
}

// F64 converts v to a golang.org/x/image vector.
func (v Vector2[S]) F64() f64.Vec2 {
	return f64.Vec2{float64(v.X), float64(v.Y)}
}

func Vec2FromF32[S Float](a f32.Vec2) Vector2[S] {
	return Vector2[S]{S(a[0]), S(a[1])}
}

func Vec2FromF64[S Float](a f64.Vec2) Vector2[S] {
	return Vector2[S]{S(a[0]), S(a[1])}
}

// CastVector2 converts the components of v to T.
func CastVector2[T, S Float](v Vector2[S]) Vector2[T] {
	return Vector2[T]{T(v.X), T(v.Y)}
}

// Splat returns the vector's components.
func (v Vector3[S]) Splat() (S, S, S) {
	return v.X, v.Y, v.Z
}

func (v Vector3[S]) String() string {
	return fmt.Sprintf("[%g, %g, %g]", v.X, v.Y, v.Z)
}

// Array returns the components as an array, in field order.
func (v Vector3[S]) Array() [3]S {
	return [3]S{v.X, v.Y, v.Z}
}

// Vec3FromArray is the inverse of [Vector3.Array].
func Vec3FromArray[S Float](a [3]S) Vector3[S] {
	return Vector3[S]{a[0], a[1], a[2]}
}

// Index returns the i'th component. It panics if i is out of range.
func (v Vector3[S]) Index(i int) S {
	return v.Array()[i]
}

// SetIndex sets the i'th component. It panics if i is out of range.
func (v *Vector3[S]) SetIndex(i int, f S) {
	a := v.Array()
	a[i] = f
	*v = Vec3FromArray(a)
}

// Add adds two vectors and returns the resulting vector.
func (v Vector3[S]) Add(o Vector3[S]) Vector3[S] {
	return Vector3[S]{
		X: v.X + o.X,
		Y: v.Y + o.Y,
		Z: v.Z + o.Z,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vector3[S]) Sub(o Vector3[S]) Vector3[S] {
	return Vector3[S]{
		X: v.X - o.X,
		Y: v.Y - o.Y,
		Z: v.Z - o.Z,
	}
}

// MulElem multiplies two vectors component-wise.
func (v Vector3[S]) MulElem(o Vector3[S]) Vector3[S] {
	return Vector3[S]{
		X: v.X * o.X,
		Y: v.Y * o.Y,
		Z: v.Z * o.Z,
	}
}

// DivElem divides two vectors component-wise.
func (v Vector3[S]) DivElem(o Vector3[S]) Vector3[S] {
	return Vector3[S]{
		X: v.X / o.X,
		Y: v.Y / o.Y,
		Z: v.Z / o.Z,
	}
}

// RemElem computes the component-wise remainder of two vectors.
func (v Vector3[S]) RemElem(o Vector3[S]) Vector3[S] {
	return Vector3[S]{
		X: mod(v.X, o.X),
		Y: mod(v.Y, o.Y),
		Z: mod(v.Z, o.Z),
	}
}

func (v Vector3[S]) AddScalar(f S) Vector3[S] {
	return Vector3[S]{
		X: v.X + f,
		Y: v.Y + f,
		Z: v.Z + f,
	}
}

func (v Vector3[S]) SubScalar(f S) Vector3[S] {
	return Vector3[S]{
		X: v.X - f,
		Y: v.Y - f,
		Z: v.Z - f,
	}
}

func (v Vector3[S]) Mul(f S) Vector3[S] {
	return Vector3[S]{
		X: v.X * f,
		Y: v.Y * f,
		Z: v.Z * f,
	}
}

func (v Vector3[S]) Div(f S) Vector3[S] {
	return Vector3[S]{
		X: v.X / f,
		Y: v.Y / f,
		Z: v.Z / f,
	}
}

func (v Vector3[S]) Rem(f S) Vector3[S] {
	return Vector3[S]{
		X: mod(v.X, f),
		Y: mod(v.Y, f),
		Z: mod(v.Z, f),
	}
}

// Neg returns a new vector with the signs of all components flipped.
func (v Vector3[S]) Neg() Vector3[S] {
	return Vector3[S]{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}

// Dot returns the dot product of v and o.
func (v Vector3[S]) Dot(o Vector3[S]) S {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the right-handed cross product of v and o, so that the
// cross product of the x and y unit vectors is the z unit vector.
func (v Vector3[S]) Cross(o Vector3[S]) Vector3[S] {
	return Vector3[S]{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// CrossSelf sets v to the cross product of v and o.
func (v *Vector3[S]) CrossSelf(o Vector3[S]) {
	*v = v.Cross(o)
}

// Extend returns a Vector4 with the components of v and the provided w.
func (v Vector3[S]) Extend(w S) Vector4[S] {
	return Vector4[S]{v.X, v.Y, v.Z, w}
}

// Truncate returns a Vector2 with the z component dropped.
func (v Vector3[S]) Truncate() Vector2[S] {
	return Vector2[S]{v.X, v.Y}
}

func (v Vector3[S]) Sum() S     { return v.X + v.Y + v.Z }
func (v Vector3[S]) Product() S { return v.X * v.Y * v.Z }
func (v Vector3[S]) MinElem() S { return partialMin(partialMin(v.X, v.Y), v.Z) }
func (v Vector3[S]) MaxElem() S { return partialMax(partialMax(v.X, v.Y), v.Z) }

// Length2 returns the squared length of the vector.
//
// This function is more efficient than squaring the result of
// [Vector3.Length].
func (v Vector3[S]) Length2() S {
	return v.Dot(v)
}

// Length returns the length of the vector.
func (v Vector3[S]) Length() S {
	return sqrt(v.Length2())
}

// Normalize returns a vector of length 1 with the same direction as v.
// This produces a NaN vector if the length is 0.
func (v Vector3[S]) Normalize() Vector3[S] {
	return v.NormalizeTo(1)
}

// NormalizeTo returns a vector of length l with the same direction as v.
func (v Vector3[S]) NormalizeTo(l S) Vector3[S] {
	return v.Mul(l / v.Length())
}

// NormalizeSelf normalizes v in place.
func (v *Vector3[S]) NormalizeSelf() {
	*v = v.Normalize()
}

// Lerp linearly interpolates between two vectors.
func (v Vector3[S]) Lerp(o Vector3[S], t S) Vector3[S] {
	return v.Add(o.Sub(v).Mul(t))
}

// Angle returns the unsigned angle between v and o, in the range [0, π].
func (v Vector3[S]) Angle(o Vector3[S]) Rad[S] {
	return Atan2(v.Cross(o).Length(), v.Dot(o))
}

// IsPerpendicular reports whether the dot product of v and o is
// approximately zero.
func (v Vector3[S]) IsPerpendicular(o Vector3[S]) bool {
	return ApproxEq(v.Dot(o), 0)
}

// IsInf reports whether at least one component is infinite.
func (v Vector3[S]) IsInf() bool {
	return isInf(v.X) || isInf(v.Y) || isInf(v.Z)
}

// IsNaN reports whether at least one component is NaN.
func (v Vector3[S]) IsNaN() bool {
	return isNaN(v.X) || isNaN(v.Y) || isNaN(v.Z)
}

func (v Vector3[S]) ApproxEq(o Vector3[S]) bool {
	return ApproxEq(v.X, o.X) && ApproxEq(v.Y, o.Y) && ApproxEq(v.Z, o.Z)
}

func (v Vector3[S]) ApproxEqEps(o Vector3[S], epsilon S) bool {
	return AbsDiffEq(v.X, o.X, epsilon) &&
		AbsDiffEq(v.Y, o.Y, epsilon) &&
		AbsDiffEq(v.Z, o.Z, epsilon)
}

// F32 converts v to a golang.org/x/image vector.
func (v Vector3[S]) F32() f32.Vec3 {
	return f32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

// F64 converts v to a golang.org/x/image vector.
func (v Vector3[S]) F64() f64.Vec3 {
	return f64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}

func Vec3FromF32[S Float](a f32.Vec3) Vector3[S] {
	return Vector3[S]{S(a[0]), S(a[1]), S(a[2])}
}

func Vec3FromF64[S Float](a f64.Vec3) Vector3[S] {
	return Vector3[S]{S(a[0]), S(a[1]), S(a[2])}
}

// CastVector3 converts the components of v to T.
func CastVector3[T, S Float](v Vector3[S]) Vector3[T] {
	return Vector3[T]{T(v.X), T(v.Y), T(v.Z)}
}

// Splat returns the vector's components.
func (v Vector4[S]) Splat() (S, S, S, S) {
	return v.X, v.Y, v.Z, v.W
}

func (v Vector4[S]) String() string {
	return fmt.Sprintf("[%g, %g, %g, %g]", v.X, v.Y, v.Z, v.W)
}

// Array returns the components as an array, in field order.
func (v Vector4[S]) Array() [4]S {
	return [4]S{v.X, v.Y, v.Z, v.W}
}

// Vec4FromArray is the inverse of [Vector4.Array].
func Vec4FromArray[S Float](a [4]S) Vector4[S] {
	return Vector4[S]{a[0], a[1], a[2], a[3]}
}

// Index returns the i'th component. It panics if i is out of range.
func (v Vector4[S]) Index(i int) S {
	return v.Array()[i]
}

// SetIndex sets the i'th component. It panics if i is out of range.
func (v *Vector4[S]) SetIndex(i int, f S) {
	a := v.Array()
	a[i] = f
	*v = Vec4FromArray(a)
}

// Add adds two vectors and returns the resulting vector.
func (v Vector4[S]) Add(o Vector4[S]) Vector4[S] {
	return Vector4[S]{
		X: v.X + o.X,
		Y: v.Y + o.Y,
		Z: v.Z + o.Z,
		W: v.W + o.W,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vector4[S]) Sub(o Vector4[S]) Vector4[S] {
	return Vector4[S]{
		X: v.X - o.X,
		Y: v.Y - o.Y,
		Z: v.Z - o.Z,
		W: v.W - o.W,
	}
}

// MulElem multiplies two vectors component-wise.
func (v Vector4[S]) MulElem(o Vector4[S]) Vector4[S] {
	return Vector4[S]{
		X: v.X * o.X,
		Y: v.Y * o.Y,
		Z: v.Z * o.Z,
		W: v.W * o.W,
	}
}

// DivElem divides two vectors component-wise.
func (v Vector4[S]) DivElem(o Vector4[S]) Vector4[S] {
	return Vector4[S]{
		X: v.X / o.X,
		Y: v.Y / o.Y,
		Z: v.Z / o.Z,
		W: v.W / o.W,
	}
}

// RemElem computes the component-wise remainder of two vectors.
func (v Vector4[S]) RemElem(o Vector4[S]) Vector4[S] {
	return Vector4[S]{
		X: mod(v.X, o.X),
		Y: mod(v.Y, o.Y),
		Z: mod(v.Z, o.Z),
		W: mod(v.W, o.W),
	}
}

func (v Vector4[S]) AddScalar(f S) Vector4[S] {
	return Vector4[S]{
		X: v.X + f,
		Y: v.Y + f,
		Z: v.Z + f,
		W: v.W + f,
	}
}

func (v Vector4[S]) SubScalar(f S) Vector4[S] {
	return Vector4[S]{
		X: v.X - f,
		Y: v.Y - f,
		Z: v.Z - f,
		W: v.W - f,
	}
}

func (v Vector4[S]) Mul(f S) Vector4[S] {
	return Vector4[S]{
		X: v.X * f,
		Y: v.Y * f,
		Z: v.Z * f,
		W: v.W * f,
	}
}

func (v Vector4[S]) Div(f S) Vector4[S] {
	return Vector4[S]{
		X: v.X / f,
		Y: v.Y / f,
		Z: v.Z / f,
		W: v.W / f,
	}
}

func (v Vector4[S]) Rem(f S) Vector4[S] {
	return Vector4[S]{
		X: mod(v.X, f),
		Y: mod(v.Y, f),
		Z: mod(v.Z, f),
		W: mod(v.W, f),
	}
}

// Neg returns a new vector with the signs of all components flipped.
func (v Vector4[S]) Neg() Vector4[S] {
	return Vector4[S]{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
		W: -v.W,
	}
}

// Dot returns the dot product of v and o.
func (v Vector4[S]) Dot(o Vector4[S]) S {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

// Truncate returns a Vector3 with the w component dropped.
func (v Vector4[S]) Truncate() Vector3[S] {
	return Vector3[S]{v.X, v.Y, v.Z}
}

// TruncateN returns a Vector3 with the n'th component dropped. It panics if
// n is not in [0, 3].
func (v Vector4[S]) TruncateN(n int) Vector3[S] {
	switch n {
	case 0:
		return Vector3[S]{v.Y, v.Z, v.W}
	case 1:
		return Vector3[S]{v.X, v.Z, v.W}
	case 2:
		return Vector3[S]{v.X, v.Y, v.W}
	case 3:
		return Vector3[S]{v.X, v.Y, v.Z}
	default:
		panic(fmt.Sprintf("linmath: Vector4.TruncateN: %d is out of range", n))
	}
}

func (v Vector4[S]) Sum() S     { return v.X + v.Y + v.Z + v.W }
func (v Vector4[S]) Product() S { return v.X * v.Y * v.Z * v.W }

func (v Vector4[S]) MinElem() S {
	return partialMin(partialMin(partialMin(v.X, v.Y), v.Z), v.W)
}

func (v Vector4[S]) MaxElem() S {
	return partialMax(partialMax(partialMax(v.X, v.Y), v.Z), v.W)
}

// Length2 returns the squared length of the vector.
//
// This function is more efficient than squaring the result of
// [Vector4.Length].
func (v Vector4[S]) Length2() S {
	return v.Dot(v)
}

// Length returns the length of the vector.
func (v Vector4[S]) Length() S {
	return sqrt(v.Length2())
}

// Normalize returns a vector of length 1 with the same direction as v.
// This produces a NaN vector if the length is 0.
func (v Vector4[S]) Normalize() Vector4[S] {
	return v.NormalizeTo(1)
}

// NormalizeTo returns a vector of length l with the same direction as v.
func (v Vector4[S]) NormalizeTo(l S) Vector4[S] {
	return v.Mul(l / v.Length())
}

// NormalizeSelf normalizes v in place.
func (v *Vector4[S]) NormalizeSelf() {
	*v = v.Normalize()
}

// Lerp linearly interpolates between two vectors.
func (v Vector4[S]) Lerp(o Vector4[S], t S) Vector4[S] {
	return v.Add(o.Sub(v).Mul(t))
}

// Angle returns the unsigned angle between v and o. The result is NaN if
// either vector has length 0.
func (v Vector4[S]) Angle(o Vector4[S]) Rad[S] {
	return Acos(v.Dot(o) / (v.Length() * o.Length()))
}

// IsPerpendicular reports whether the dot product of v and o is
// approximately zero.
func (v Vector4[S]) IsPerpendicular(o Vector4[S]) bool {
	return ApproxEq(v.Dot(o), 0)
}

// IsInf reports whether at least one component is infinite.
func (v Vector4[S]) IsInf() bool {
	return isInf(v.X) || isInf(v.Y) || isInf(v.Z) || isInf(v.W)
}

// IsNaN reports whether at least one component is NaN.
func (v Vector4[S]) IsNaN() bool {
	return isNaN(v.X) || isNaN(v.Y) || isNaN(v.Z) || isNaN(v.W)
}

func (v Vector4[S]) ApproxEq(o Vector4[S]) bool {
	return ApproxEq(v.X, o.X) &&
		ApproxEq(v.Y, o.Y) &&
		ApproxEq(v.Z, o.Z) &&
		ApproxEq(v.W, o.W)
}

func (v Vector4[S]) ApproxEqEps(o Vector4[S], epsilon S) bool {
	return AbsDiffEq(v.X, o.X, epsilon) &&
		AbsDiffEq(v.Y, o.Y, epsilon) &&
		AbsDiffEq(v.Z, o.Z, epsilon) &&
		AbsDiffEq(v.W, o.W, epsilon)
}

// F32 converts v to a golang.org/x/image vector.
func (v Vector4[S]) F32() f32.Vec4 {
	return f32.Vec4{float32(v.X), float32(v.Y), float32(v.Z), float32(v.W)}
}

// F64 converts v to a golang.org/x/image vector.
func (v Vector4[S]) F64() f64.Vec4 {
	return f64.Vec4{float64(v.X), float64(v.Y), float64(v.Z), float64(v.W)}
}

func Vec4FromF32[S Float](a f32.Vec4) Vector4[S] {
	return Vector4[S]{S(a[0]), S(a[1]), S(a[2]), S(a[3])}
}

func Vec4FromF64[S Float](a f64.Vec4) Vector4[S] {
	return Vector4[S]{S(a[0]), S(a[1]), S(a[2]), S(a[3])}
}

// CastVector4 converts the components of v to T.
func CastVector4[T, S Float](v Vector4[S]) Vector4[T] {
	return Vector4[T]{T(v.X), T(v.Y), T(v.Z), T(v.W)}
}
