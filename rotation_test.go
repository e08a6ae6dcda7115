package linmath

import (
	"math"
	"testing"
)

func TestBasis2(t *testing.T) {
	const epsilon = 1e-12
	quarter := Basis2FromAngle(NewRad(math.Pi / 2))
	x := Vec2(1.0, 0.0)
	y := Vec2(0.0, 1.0)

	assertNear(t, quarter.RotateVector(x), y, epsilon)
	assertNear(t, quarter.RotatePoint(Pt2(0.0, 2.0)), Pt2(-2.0, 0.0), epsilon)
	assertNear(t, quarter.Invert().RotateVector(y), x, epsilon)
	assertNear(t, quarter.Concat(quarter), Basis2FromAngle(NewRad(math.Pi)), epsilon)
	assertNear(t, quarter.Concat(quarter.Invert()), quarter.One(), epsilon)
	assertNear(t, Basis2BetweenVectors(x, y), quarter, epsilon)
	assertNear(t, Basis2BetweenVectors(y, x), quarter.Invert(), epsilon)

	dir := Vec2(1.0, 1.0).Normalize()
	up := Vec2(-1.0, 1.0).Normalize()
	look := Basis2[float64]{}.LookAt(dir, up)
	assertNear(t, look.RotateVector(dir), y, epsilon)
	diff(t, look.Mat, look.Matrix2())
}

func TestBasis3(t *testing.T) {
	const epsilon = 1e-12
	b := Basis3FromQuaternion(quarterZ)
	v := Vec3(1.0, 2.0, 3.0)

	assertNear(t, b.RotateVector(v), quarterZ.RotateVector(v), epsilon)
	assertNear(t, b.RotatePoint(Pt3(1.0, 0, 0)), Pt3(0.0, 1, 0), epsilon)
	assertNear(t, b.Quaternion(), quarterZ, epsilon)
	assertNear(t, b.Invert().Quaternion(), quarterZ.Invert(), epsilon)
	assertNear(t, b.Concat(b.Invert()), Basis3[float64]{}.One(), epsilon)

	// Unlike QuaternionFromAxisAngle, the axis is used as given.
	assertNear(t, Basis3FromAxisAngle(Vec3UnitZ[float64](), NewRad(math.Pi/2)), b, epsilon)

	x, y, z := NewRad(0.3), NewRad(-0.2), NewRad(1.1)
	assertNear(t, Basis3FromEuler(x, y, z).Quaternion(), QuaternionFromEuler(x, y, z), epsilon)

	from := Vec3(1.0, 0, 0)
	to := Vec3(0.0, 0, 1)
	assertNear(t, Basis3BetweenVectors(from, to).RotateVector(from), to, epsilon)

	dir := Vec3(0.0, 1.0, 1.0).Normalize()
	look := Basis3[float64]{}.LookAt(dir, Vec3UnitY[float64]())
	assertNear(t, look.RotateVector(dir), Vec3UnitZ[float64](), epsilon)
	assertNear(t, look.Quaternion().RotateVector(dir), Vec3UnitZ[float64](), epsilon)
}

func rotateAll[R Rotation3[S, R], S Float](r R, vs []Vector3[S]) []Vector3[S] {
	out := make([]Vector3[S], len(vs))
	for i, v := range vs {
		out[i] = r.RotateVector(v)
	}
	return out
}

func TestRotationImplementationsAgree(t *testing.T) {
	vs := []Vector3[float64]{
		Vec3(1.0, 0, 0),
		Vec3(0.0, 1, 0),
		Vec3(0.3, -0.4, 2),
	}
	q := QuaternionFromEuler(NewRad(0.4), NewRad(1.3), NewRad(-0.9))
	b := Basis3FromQuaternion(q)
	diff(t, rotateAll(q, vs), rotateAll(b, vs), approx)

	var zero Quaternion[float64]
	diff(t, QuaternionIdentity[float64](), zero.One())
	diff(t, Matrix3Identity[float64](), Basis3[float64]{}.One().Matrix3())
}
