package linmath

import (
	"fmt"
	"math"
)

// Angle is the capability shared by the angle units [Rad] and [Deg].
//
// The methods that construct constants, such as FullTurn, ignore their
// receiver; call them on the zero value:
//
//	quarter := Deg[float64]{}.TurnDiv4() // 90°
//
// Trigonometric functions convert to radians first. No method normalizes an
// angle into a range such as [0, 2π).
type Angle[S Float, A any] interface {
	Zero() A
	FullTurn() A
	TurnDiv2() A
	TurnDiv3() A
	TurnDiv4() A
	TurnDiv6() A

	// FromRad converts a radian angle into the receiver's unit.
	FromRad(r Rad[S]) A
	// ToRad converts the angle to radians.
	ToRad() Rad[S]

	Add(o A) A
	Sub(o A) A
	Neg() A
	Mul(f S) A
	Div(f S) A
	// Ratio returns the unitless quotient of two angles.
	Ratio(o A) S
	Rem(o A) A

	Sin() S
	Cos() S
	Tan() S
	SinCos() (S, S)

	ApproxEq(o A) bool
	ApproxEqEps(o A, epsilon S) bool
}

var (
	_ Angle[float64, Rad[float64]] = Rad[float64]{}
	_ Angle[float32, Deg[float32]] = Deg[float32]{}
)

// Rad is an angle in radians.
type Rad[S Float] struct {
	Radians S
}

// Deg is an angle in degrees.
type Deg[S Float] struct {
	Degrees S
}

// NewRad returns the angle of x radians.
func NewRad[S Float](x S) Rad[S] {
	return Rad[S]{x}
}

// NewDeg returns the angle of x degrees.
func NewDeg[S Float](x S) Deg[S] {
	return Deg[S]{x}
}

// Deg converts r to degrees.
func (r Rad[S]) Deg() Deg[S] {
	return Deg[S]{r.Radians * S(180/math.Pi)}
}

// Rad converts d to radians.
func (d Deg[S]) Rad() Rad[S] {
	return Rad[S]{d.Degrees * S(math.Pi/180)}
}

func (Rad[S]) Zero() Rad[S] {
	return Rad[S]{}
}

func (Rad[S]) FullTurn() Rad[S] {
	return Rad[S]{S(2 * math.Pi)}
}

func (r Rad[S]) TurnDiv2() Rad[S] {
	return r.FullTurn().Div(2)
}

func (r Rad[S]) TurnDiv3() Rad[S] {
	return r.FullTurn().Div(3)
}

func (r Rad[S]) TurnDiv4() Rad[S] {
	return r.FullTurn().Div(4)
}

func (r Rad[S]) TurnDiv6() Rad[S] {
	return r.FullTurn().Div(6)
}

func (Rad[S]) FromRad(o Rad[S]) Rad[S] {
	return o
}

func (r Rad[S]) ToRad() Rad[S] {
	return r
}

func (r Rad[S]) Add(o Rad[S]) Rad[S] {
	return Rad[S]{r.Radians + o.Radians}
}

func (r Rad[S]) Sub(o Rad[S]) Rad[S] {
	return Rad[S]{r.Radians - o.Radians}
}

func (r Rad[S]) Neg() Rad[S] {
	return Rad[S]{-r.Radians}
}

func (r Rad[S]) Mul(f S) Rad[S] {
	return Rad[S]{r.Radians * f}
}

func (r Rad[S]) Div(f S) Rad[S] {
	return Rad[S]{r.Radians / f}
}

func (r Rad[S]) Ratio(o Rad[S]) S {
	return r.Radians / o.Radians
}

func (r Rad[S]) Rem(o Rad[S]) Rad[S] {
	return Rad[S]{mod(r.Radians, o.Radians)}
}

func (r Rad[S]) Sin() S {
	return sin(r.Radians)
}

func (r Rad[S]) Cos() S {
	return cos(r.Radians)
}

func (r Rad[S]) Tan() S {
	return tan(r.Radians)
}

func (r Rad[S]) SinCos() (S, S) {
	return sincos(r.Radians)
}

func (r Rad[S]) ApproxEq(o Rad[S]) bool {
	return ApproxEq(r.Radians, o.Radians)
}

func (r Rad[S]) ApproxEqEps(o Rad[S], epsilon S) bool {
	return AbsDiffEq(r.Radians, o.Radians, epsilon)
}

func (r Rad[S]) String() string {
	return fmt.Sprintf("%g rad", r.Radians)
}

func (Deg[S]) Zero() Deg[S] {
	return Deg[S]{}
}

func (Deg[S]) FullTurn() Deg[S] {
	return Deg[S]{360}
}

func (d Deg[S]) TurnDiv2() Deg[S] {
	return d.FullTurn().Div(2)
}

func (d Deg[S]) TurnDiv3() Deg[S] {
	return d.FullTurn().Div(3)
}

func (d Deg[S]) TurnDiv4() Deg[S] {
	return d.FullTurn().Div(4)
}

func (d Deg[S]) TurnDiv6() Deg[S] {
	return d.FullTurn().Div(6)
}

func (Deg[S]) FromRad(r Rad[S]) Deg[S] {
	return r.Deg()
}

func (d Deg[S]) ToRad() Rad[S] {
	return d.Rad()
}

func (d Deg[S]) Add(o Deg[S]) Deg[S] {
	return Deg[S]{d.Degrees + o.Degrees}
}

func (d Deg[S]) Sub(o Deg[S]) Deg[S] {
	return Deg[S]{d.Degrees - o.Degrees}
}

func (d Deg[S]) Neg() Deg[S] {
	return Deg[S]{-d.Degrees}
}

func (d Deg[S]) Mul(f S) Deg[S] {
	return Deg[S]{d.Degrees * f}
}

func (d Deg[S]) Div(f S) Deg[S] {
	return Deg[S]{d.Degrees / f}
}

func (d Deg[S]) Ratio(o Deg[S]) S {
	return d.Degrees / o.Degrees
}

func (d Deg[S]) Rem(o Deg[S]) Deg[S] {
	return Deg[S]{mod(d.Degrees, o.Degrees)}
}

func (d Deg[S]) Sin() S {
	return d.Rad().Sin()
}

func (d Deg[S]) Cos() S {
	return d.Rad().Cos()
}

func (d Deg[S]) Tan() S {
	return d.Rad().Tan()
}

func (d Deg[S]) SinCos() (S, S) {
	return d.Rad().SinCos()
}

func (d Deg[S]) ApproxEq(o Deg[S]) bool {
	return ApproxEq(d.Degrees, o.Degrees)
}

func (d Deg[S]) ApproxEqEps(o Deg[S], epsilon S) bool {
	return AbsDiffEq(d.Degrees, o.Degrees, epsilon)
}

func (d Deg[S]) String() string {
	return fmt.Sprintf("%g°", d.Degrees)
}

// Asin returns the arcsine of x as an angle.
func Asin[S Float](x S) Rad[S] {
	return Rad[S]{asin(x)}
}

// Acos returns the arccosine of x as an angle.
func Acos[S Float](x S) Rad[S] {
	return Rad[S]{acos(x)}
}

// Atan returns the arctangent of x as an angle.
func Atan[S Float](x S) Rad[S] {
	return Rad[S]{atan(x)}
}

// Atan2 returns the arctangent of y/x as an angle, using the signs of both
// to determine the quadrant.
func Atan2[S Float](y, x S) Rad[S] {
	return Rad[S]{atan2(y, x)}
}

// AngleFrom converts r into the unit A. It is the generic form of
// [Rad.Deg] and friends:
//
//	d := AngleFrom[Deg[float64]](Asin(0.5)) // 30°
func AngleFrom[A Angle[S, A], S Float](r Rad[S]) A {
	var a A
	return a.FromRad(r)
}
