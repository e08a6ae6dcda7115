package gltfnode

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/require"
	"honnef.co/go/linmath"
)

const epsilon = 1e-9

func requireNear[T interface{ ApproxEqEps(T, float64) bool }](t *testing.T, got, want T) {
	t.Helper()
	require.Truef(t, got.ApproxEqEps(want, epsilon), "got %v, want %v", got, want)
}

func testTransform() Transform {
	axis := linmath.Vec3(1.0, 1, 0).Normalize()
	return Transform{
		Scale: 3,
		Rot:   linmath.Basis3FromAxisAngle(axis, linmath.NewDeg(60.0).Rad()).Quaternion(),
		Disp:  linmath.Vec3(1.0, -2, 0.5),
	}
}

func TestFromNodeTRS(t *testing.T) {
	n := &gltf.Node{
		Translation: [3]float64{1, 2, 3},
		Rotation:    [4]float64{0, 0, math.Sqrt2 / 2, math.Sqrt2 / 2},
		Scale:       [3]float64{2, 2, 2},
	}
	got, err := FromNode(n)
	require.NoError(t, err)
	require.Equal(t, 2.0, got.Scale)
	require.Equal(t, linmath.Vec3(1.0, 2, 3), got.Disp)
	requireNear(t, got.Rot, linmath.Quat(math.Sqrt2/2, 0, 0, math.Sqrt2/2))
	requireNear(t, got.TransformPoint(linmath.Pt3(1.0, 0, 0)), linmath.Pt3(1.0, 4, 3))
}

func TestFromNodeDefaults(t *testing.T) {
	got, err := FromNode(&gltf.Node{})
	require.NoError(t, err)
	require.Equal(t, linmath.IdentityDecomposed3[float64, linmath.Quaternion[float64]](), got)
}

func TestFromNodeMatrix(t *testing.T) {
	want := testTransform()
	n := new(gltf.Node)
	SetMatrix(n, want.AffineMatrix3())
	require.Equal(t, [4]float64{0, 0, 0, 1}, n.Rotation)

	got, err := FromNode(n)
	require.NoError(t, err)
	requireNear(t, got, want)

	// Mirroring by a uniform scale
	SetMatrix(n, linmath.AffineScale(-2.0, -2, -2).ThenTranslate(linmath.Vec3(0.0, 1, 0)))
	got, err = FromNode(n)
	require.NoError(t, err)
	require.InDelta(t, -2, got.Scale, epsilon)
	requireNear(t, got.Rot, linmath.QuaternionIdentity[float64]())
	requireNear(t, got.TransformPoint(linmath.Pt3(1.0, 1, 1)), linmath.Pt3(-2.0, -1, -2))
}

func TestFromNodeNonUniform(t *testing.T) {
	_, err := FromNode(&gltf.Node{Name: "squash", Scale: [3]float64{1, 2, 1}})
	require.ErrorIs(t, err, ErrNonUniformScale)
	require.Contains(t, err.Error(), `"squash"`)

	n := new(gltf.Node)
	SetMatrix(n, linmath.AffineScale(1.0, 1, 4))
	_, err = FromNode(n)
	require.ErrorIs(t, err, ErrNonUniformScale)
}

func TestFromNodeDegenerate(t *testing.T) {
	n := &gltf.Node{Name: "flat"}
	SetMatrix(n, linmath.AffineScale(0.0, 0, 0).ThenTranslate(linmath.Vec3(1.0, 0, 0)))
	_, err := FromNode(n)
	require.ErrorIs(t, err, ErrDegenerateMatrix)
	require.Contains(t, err.Error(), `"flat"`)

	SetMatrix(n, linmath.AffineScale(2.0, 0, 2))
	_, err = FromNode(n)
	require.ErrorIs(t, err, ErrDegenerateMatrix)
}

func TestToNode(t *testing.T) {
	want := testTransform()
	n := ToNode(want)
	require.Equal(t, [3]float64{3, 3, 3}, n.Scale)
	require.Equal(t, [3]float64{1, -2, 0.5}, n.Translation)
	require.Equal(t, linmath.Matrix4Identity[float64]().Array(), n.Matrix)
	require.InDelta(t, want.Rot.W, n.Rotation[3], epsilon)

	got, err := FromNode(n)
	require.NoError(t, err)
	requireNear(t, got, want)
}

func TestMatrixFromNode(t *testing.T) {
	want := testTransform()
	requireNear(t, MatrixFromNode(ToNode(want)), want.AffineMatrix3())

	n := &gltf.Node{
		Translation: [3]float64{0, 0, 1},
		Scale:       [3]float64{1, 2, 3},
	}
	m := MatrixFromNode(n)
	requireNear(t, m.TransformPoint(linmath.Pt3(1.0, 1, 1)), linmath.Pt3(1.0, 2, 4))

	SetMatrix(n, m)
	require.Equal(t, m, MatrixFromNode(n))
}

const hierarchy = `{
	"asset": {"version": "2.0"},
	"scene": 0,
	"scenes": [{"nodes": [0]}],
	"nodes": [
		{"name": "root", "translation": [1, 0, 0], "scale": [2, 2, 2], "children": [1, 2]},
		{"name": "spin", "rotation": [0, 0, 0.7071067811865476, 0.7071067811865476], "children": [3]},
		{"name": "lift", "matrix": [1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 5, 0, 1]},
		{"name": "leaf", "translation": [0, 0, 3]}
	]
}`

func decode(t *testing.T, s string) *gltf.Document {
	t.Helper()
	doc := new(gltf.Document)
	require.NoError(t, gltf.NewDecoder(strings.NewReader(s)).Decode(doc))
	return doc
}

func TestWalk(t *testing.T) {
	doc := decode(t, hierarchy)

	var names []string
	world := map[string]linmath.Point3[float64]{}
	err := WalkScene(doc, 0, func(index int, n *gltf.Node, tr Transform) error {
		names = append(names, n.Name)
		world[n.Name] = tr.TransformPoint(linmath.Origin3[float64]())
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"root", "spin", "leaf", "lift"}, names)

	requireNear(t, world["root"], linmath.Pt3(1.0, 0, 0))
	requireNear(t, world["spin"], linmath.Pt3(1.0, 0, 0))
	requireNear(t, world["leaf"], linmath.Pt3(1.0, 0, 6))
	requireNear(t, world["lift"], linmath.Pt3(1.0, 10, 0))
}

func TestWalkSkipChildren(t *testing.T) {
	doc := decode(t, hierarchy)

	var names []string
	err := Walk(doc, 0, func(index int, n *gltf.Node, tr Transform) error {
		names = append(names, n.Name)
		if n.Name == "spin" {
			return SkipChildren
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"root", "spin", "lift"}, names)

	stop := errors.New("stop")
	err = Walk(doc, 0, func(int, *gltf.Node, Transform) error { return stop })
	require.ErrorIs(t, err, stop)
}

func TestWalkErrors(t *testing.T) {
	doc := decode(t, `{
		"asset": {"version": "2.0"},
		"nodes": [
			{"name": "a", "children": [1]},
			{"name": "b", "children": [0]},
			{"name": "c", "scale": [1, 1, 2]}
		]
	}`)
	nop := func(int, *gltf.Node, Transform) error { return nil }

	require.ErrorIs(t, Walk(doc, 0, nop), ErrCycle)
	require.ErrorIs(t, Walk(doc, 2, nop), ErrNonUniformScale)
	require.ErrorIs(t, Walk(doc, 3, nop), ErrNodeIndex)
	require.ErrorIs(t, WalkScene(doc, 0, nop), ErrNodeIndex)
}
