// Package gltfnode converts between the local transforms of glTF nodes and
// linmath transforms.
//
// A glTF node stores its transform either as a column-major 4×4 matrix or as
// separate translation, rotation, and scale properties. Rotations are unit
// quaternions in (x, y, z, w) order.
package gltfnode

import (
	"errors"
	"fmt"

	"github.com/qmuntal/gltf"
	"honnef.co/go/linmath"
)

var (
	// ErrNonUniformScale is returned when a node scales its axes by different
	// amounts, which a [Transform] cannot represent.
	ErrNonUniformScale = errors.New("gltfnode: non-uniform scale")
	ErrNodeIndex       = errors.New("gltfnode: node index out of range")
	ErrCycle           = errors.New("gltfnode: cycle in node hierarchy")

	// ErrDegenerateMatrix is returned for node matrices that collapse at
	// least one axis to zero length, which have no rotation.
	ErrDegenerateMatrix = errors.New("gltfnode: degenerate matrix")
)

// SkipChildren can be returned by a [WalkFunc] to skip the children of the
// current node.
//
//lint:ignore ST1012 named after fs.SkipDir, which plays the same role
var SkipChildren = errors.New("skip children")

// Transform is the decomposed form of a node's local transform.
type Transform = linmath.Decomposed3[float64, linmath.Quaternion[float64]]

// scaleTolerance is the relative difference allowed between the scales of
// the three axes.
const scaleTolerance = 1e-6

var identityMatrix = linmath.Matrix4Identity[float64]().Array()

// hasMatrix reports whether n specifies its transform as a matrix. Unset
// matrices are the zero array for nodes built in Go and the identity for
// nodes decoded from files.
func hasMatrix(n *gltf.Node) bool {
	return n.MatrixOrDefault() != identityMatrix
}

// trs returns the translation, rotation, and scale properties of n, with
// zero rotations and scales replaced by the glTF defaults.
func trs(n *gltf.Node) (scale linmath.Vector3[float64], rot linmath.Quaternion[float64], disp linmath.Vector3[float64]) {
	t := n.TranslationOrDefault()
	s := n.ScaleOrDefault()
	r := n.RotationOrDefault()
	return linmath.Vec3(s[0], s[1], s[2]),
		linmath.Quat(r[3], r[0], r[1], r[2]),
		linmath.Vec3(t[0], t[1], t[2])
}

// decompose splits an affine matrix into per-axis scale, rotation, and
// translation. Matrices that mirror space get negative scales. It returns
// false if an axis has zero length.
func decompose(m linmath.Matrix4[float64]) (linmath.Vector3[float64], linmath.Quaternion[float64], linmath.Vector3[float64], bool) {
	r := m.Matrix3()
	scale := linmath.Vec3(r.X.Length(), r.Y.Length(), r.Z.Length())
	if linmath.ApproxEq(scale.MinElem(), 0) {
		return scale, linmath.Quaternion[float64]{}, m.W.Truncate(), false
	}
	if r.Determinant() < 0 {
		scale = scale.Neg()
	}
	rot := linmath.Matrix3FromCols(r.X.Div(scale.X), r.Y.Div(scale.Y), r.Z.Div(scale.Z))
	return scale, rot.Quaternion().Normalize(), m.W.Truncate(), true
}

func uniform(s linmath.Vector3[float64]) bool {
	eps := linmath.DefaultEpsilon[float64]()
	return linmath.RelativeEq(s.X, s.Y, eps, scaleTolerance) &&
		linmath.RelativeEq(s.X, s.Z, eps, scaleTolerance)
}

// FromNode returns the local transform of n. It uses the node's matrix if it
// has one and its translation, rotation, and scale otherwise. It returns an
// error wrapping [ErrNonUniformScale] if the scale isn't uniform and one
// wrapping [ErrDegenerateMatrix] if the matrix flattens an axis.
func FromNode(n *gltf.Node) (Transform, error) {
	var (
		scale, disp linmath.Vector3[float64]
		rot         linmath.Quaternion[float64]
	)
	if hasMatrix(n) {
		var ok bool
		scale, rot, disp, ok = decompose(linmath.Matrix4FromArray(n.Matrix))
		if !ok {
			return Transform{}, fmt.Errorf("node %q: %w", n.Name, ErrDegenerateMatrix)
		}
	} else {
		scale, rot, disp = trs(n)
	}
	if !uniform(scale) {
		return Transform{}, fmt.Errorf("node %q: scale %s: %w", n.Name, scale, ErrNonUniformScale)
	}
	return Transform{Scale: scale.X, Rot: rot, Disp: disp}, nil
}

// ToNode returns a new node with the transform t.
func ToNode(t Transform) *gltf.Node {
	n := new(gltf.Node)
	SetTransform(n, t)
	return n
}

// SetTransform stores t in the translation, rotation, and scale properties
// of n and resets its matrix to the identity.
func SetTransform(n *gltf.Node, t Transform) {
	r := t.Rot.Normalize()
	n.Matrix = identityMatrix
	n.Translation = [3]float64{t.Disp.X, t.Disp.Y, t.Disp.Z}
	n.Rotation = [4]float64{r.V.X, r.V.Y, r.V.Z, r.W}
	n.Scale = [3]float64{t.Scale, t.Scale, t.Scale}
}

// MatrixFromNode returns the local transform of n as a matrix. Unlike
// [FromNode], it supports non-uniform scales.
func MatrixFromNode(n *gltf.Node) linmath.AffineMatrix3[float64] {
	if hasMatrix(n) {
		return linmath.AffineMatrix3[float64]{Mat: linmath.Matrix4FromArray(n.Matrix)}
	}
	scale, rot, disp := trs(n)
	return linmath.AffineScale(scale.X, scale.Y, scale.Z).
		ThenRotate(rot.Matrix3()).
		ThenTranslate(disp)
}

// SetMatrix stores a in the matrix of n and resets its translation,
// rotation, and scale properties, which glTF doesn't allow alongside a
// matrix.
func SetMatrix(n *gltf.Node, a linmath.AffineMatrix3[float64]) {
	n.Matrix = a.Mat.Array()
	n.Translation = [3]float64{}
	n.Rotation = [4]float64{0, 0, 0, 1}
	n.Scale = [3]float64{1, 1, 1}
}
