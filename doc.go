// Package linmath provides the linear algebra primitives of 2D and 3D
// graphics: vectors, points, square matrices, quaternions, angles, and
// affine transforms. Every type is generic over its scalar, which is either
// float32 or float64.
//
// # cgmath
//
// This package follows the design of the [cgmath] Rust crate, in particular
// its separation of points and vectors, its typed angle units, and its
// decomposition of transforms into scale, rotation, and displacement. Where
// cgmath relies on operator overloading, this package uses methods named
// after the operation (Add, Sub, Mul, and so on).
//
// # Values
//
// All types are small structs that are passed and returned by value.
// Operations never modify their receiver; methods with a Self suffix, such
// as [Vector3.NormalizeSelf], are conveniences that assign the result of the
// corresponding operation to the receiver.
//
// Matrices are stored in column-major order: the fields X, Y, Z, and W of
// [Matrix4] are its columns. The arrays returned by their Array methods use
// the same order, which is also the order expected by OpenGL and glTF.
// Conversions to and from golang.org/x/image/math/f32 and f64, which store
// matrices in row-major order, transpose accordingly.
//
// # Points and vectors
//
// [Point2] and [Point3] are positions, [Vector2], [Vector3], and [Vector4]
// are displacements. The difference of two points is a vector, a point plus a
// vector is a point, and points cannot be added to each other. Transforms
// treat the two differently: translation moves points but not vectors.
//
// # Angles
//
// [Rad] and [Deg] wrap a scalar to give it a unit. Functions that take
// angles take [Rad], and [Deg.Rad] converts. Angles are never normalized to
// a range; a full turn plus a quarter turn stays 450°.
//
// # Rotations and transforms
//
// [Rotation2] and [Rotation3] describe rotations, which are implemented by
// [Quaternion], [Basis2], and [Basis3]. [Transform2] and [Transform3]
// describe affine transforms, which are implemented by [Decomposed2],
// [Decomposed3], and [AffineMatrix3]. Concatenating transforms follows
// matrix multiplication: a.Concat(b) applies b first.
//
// Inverting a transform can fail, for example when a decomposed transform
// has a scale of zero. Invert methods report this with a second, boolean
// return value instead of returning infinities.
//
// # Floating point
//
// Operations do not check their inputs. Normalizing a zero vector produces
// NaNs, dividing by a zero scalar produces infinities, and NaNs propagate
// through all arithmetic. Use the IsNaN and IsInf methods to check results.
//
// Comparing computed values for exact equality is rarely useful. [ApproxEq]
// compares scalars and every type has ApproxEq and ApproxEqEps methods.
// See [AbsDiffEq], [RelativeEq], and [ULPsEq] for the individual
// comparisons.
//
// # Subpackages
//
// Package [honnef.co/go/linmath/gltfnode] converts glTF node transforms to
// and from [Decomposed3] and [AffineMatrix3]. Package
// [honnef.co/go/linmath/tween] animates vectors, angles, rotations, and
// transforms with easing functions.
//
// [cgmath]: https://github.com/rustgd/cgmath
package linmath
