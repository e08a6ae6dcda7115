package tween

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"
	"honnef.co/go/linmath"
)

func TestEase(t *testing.T) {
	assert.Equal(t, float32(0.25), Ease(ease.Linear, 0.25))
	assert.Equal(t, float32(0.25), Ease(ease.InQuad, 0.5))
	assert.Equal(t, float32(1), Ease(ease.Linear, 2))
	assert.Equal(t, float32(0), Ease(ease.Linear, -1))
}

func TestVector(t *testing.T) {
	tw := Vector3(linmath.Vec3[float32](0, 0, 0), linmath.Vec3[float32](2, 4, 8), 2, ease.Linear)

	v, done := tw.Update(0.5)
	assert.False(t, done)
	assert.Equal(t, linmath.Vec3[float32](0.5, 1, 2), v)

	v, done = tw.Update(0.5)
	assert.False(t, done)
	assert.Equal(t, linmath.Vec3[float32](1, 2, 4), v)

	v, done = tw.Update(5)
	assert.True(t, done)
	assert.Equal(t, tw.To, v)

	tw.Reset()
	v, done = tw.Update(0)
	assert.False(t, done)
	assert.Equal(t, tw.From, v)

	tw2 := Vector2(linmath.Vec2(0.0, 0), linmath.Vec2(1.0, -1), 1, ease.InQuad)
	v2, _ := tw2.Update(0.5)
	assert.InDelta(t, 0.25, v2.X, 1e-6)
	assert.InDelta(t, -0.25, v2.Y, 1e-6)
}

func TestPoint(t *testing.T) {
	tw := Point3(linmath.Pt3(0.0, 0, 0), linmath.Pt3(4.0, 0, -4), 1, ease.Linear)
	p, done := tw.Update(0.25)
	assert.False(t, done)
	assert.Equal(t, linmath.Pt3(1.0, 0, -1), p)
}

func TestAngle(t *testing.T) {
	tw := AngleDeg(linmath.NewDeg[float32](-170), linmath.NewDeg[float32](170), 1, ease.Linear)
	a, _ := tw.Update(0.5)
	assert.InDelta(t, 0, a.Degrees, 1e-4)

	tr := Angle(linmath.NewRad(0.0), linmath.NewRad(math.Pi), 4, ease.Linear)
	r, _ := tr.Update(1)
	assert.InDelta(t, math.Pi/4, r.Radians, 1e-6)
}

func TestRotation(t *testing.T) {
	to := linmath.Basis3FromAxisAngle(linmath.Vec3UnitZ[float64](), linmath.NewRad(math.Pi/2)).Quaternion()
	tw := Rotation(linmath.QuaternionIdentity[float64](), to, 1, ease.Linear)

	q, done := tw.Update(0.5)
	require.False(t, done)
	want := linmath.Basis3FromAxisAngle(linmath.Vec3UnitZ[float64](), linmath.NewRad(math.Pi/4)).Quaternion()
	require.Truef(t, q.ApproxEqEps(want, 1e-6), "got %v, want %v", q, want)
	require.InDelta(t, 1, q.Magnitude(), 1e-6)

	q, done = tw.Update(1)
	require.True(t, done)
	require.Equal(t, to, q)
}

func TestRotationShorterArc(t *testing.T) {
	// The quarter turn about Z, stored in the opposite hemisphere.
	to := linmath.Quat(-math.Sqrt2/2, 0, 0, -math.Sqrt2/2)
	tw := Rotation(linmath.QuaternionIdentity[float64](), to, 1, ease.Linear)

	q, _ := tw.Update(0.5)
	v := q.RotateVector(linmath.Vec3UnitX[float64]())
	require.InDelta(t, math.Pi/4, math.Atan2(v.Y, v.X), 1e-9)
	require.InDelta(t, 0, v.Z, 1e-12)

	tr := Transform(
		linmath.IdentityDecomposed3[float64, linmath.Quaternion[float64]](),
		linmath.Decomposed3[float64, linmath.Quaternion[float64]]{Scale: 1, Rot: to},
		1, ease.Linear)
	d, _ := tr.Update(0.25)
	want := linmath.Basis3FromAxisAngle(linmath.Vec3UnitZ[float64](), linmath.NewRad(math.Pi/8)).Quaternion()
	require.Truef(t, d.Rot.ApproxEqEps(want, 1e-9), "got %v, want %v", d.Rot, want)
}

func TestTransform(t *testing.T) {
	type transform = linmath.Decomposed3[float64, linmath.Quaternion[float64]]
	from := linmath.IdentityDecomposed3[float64, linmath.Quaternion[float64]]()
	to := transform{
		Scale: 3,
		Rot:   linmath.Basis3FromAxisAngle(linmath.Vec3UnitX[float64](), linmath.NewRad(math.Pi/2)).Quaternion(),
		Disp:  linmath.Vec3(2.0, 0, 0),
	}
	tw := Transform(from, to, 1, ease.Linear)

	d, done := tw.Update(0.5)
	require.False(t, done)
	require.InDelta(t, 2, d.Scale, 1e-6)
	require.InDelta(t, 1, d.Disp.X, 1e-6)
	want := linmath.Basis3FromAxisAngle(linmath.Vec3UnitX[float64](), linmath.NewRad(math.Pi/4)).Quaternion()
	require.Truef(t, d.Rot.ApproxEqEps(want, 1e-6), "got %v, want %v", d.Rot, want)

	// The tween drives a transform applied to a point.
	p := d.TransformPoint(linmath.Pt3(0.0, 1, 0))
	require.InDelta(t, 1, p.X, 1e-6)
	require.InDelta(t, math.Sqrt2, p.Y, 1e-6)
	require.InDelta(t, math.Sqrt2, p.Z, 1e-6)
}
