package linmath

import (
	"math"
	"testing"

	"golang.org/x/image/math/f64"
)

var (
	testMat2 = Mat2(1.0, 2.0, 3.0, 4.0)
	testMat3 = Mat3(
		2.0, 0.0, 1.0,
		1.0, 3.0, 0.0,
		0.0, 1.0, 4.0,
	)
	testMat4 = Mat4(
		2.0, 0.0, 0.0, 1.0,
		1.0, 3.0, 0.0, 0.0,
		0.0, 1.0, 4.0, 0.0,
		5.0, -2.0, 1.0, 1.0,
	)
)

func TestMatrixLayout(t *testing.T) {
	// Columns come first.
	diff(t, Vec2(1.0, 2.0), testMat2.Col(0))
	diff(t, Vec2(1.0, 3.0), testMat2.Row(0))
	diff(t, Mat2(1.0, 3.0, 2.0, 4.0), testMat2.Transpose())
	diff(t, [4]float64{1, 2, 3, 4}, testMat2.Array())
	diff(t, testMat4, Matrix4FromArray(testMat4.Array()))
	diff(t, testMat4, testMat4.Transpose().Transpose())
	diff(t, Vec4(5.0, -2.0, 1.0, 1.0), testMat4.Col(3))
	diff(t, Vec4(1.0, 0.0, 0.0, 1.0), testMat4.Row(3))

	defer func() {
		if recover() == nil {
			t.Error("Col(2) did not panic")
		}
	}()
	testMat2.Col(2)
}

func TestMatrixMul(t *testing.T) {
	// [1 3] [5 7]   [23 31]
	// [2 4] [6 8] = [34 46]
	a := testMat2
	b := Mat2(5.0, 6.0, 7.0, 8.0)
	diff(t, Mat2(23.0, 34.0, 31.0, 46.0), a.Mul(b))
	diff(t, Vec2(4.0, 6.0), a.MulVec(Vec2(1.0, 1.0)))

	v := Vec4(1.0, 2.0, 3.0, 1.0)
	diff(t, testMat4.MulVec(testMat4.MulVec(v)), testMat4.Mul(testMat4).MulVec(v))
	diff(t, testMat3, testMat3.Mul(Matrix3Identity[float64]()))
	diff(t, testMat3, Matrix3Identity[float64]().Mul(testMat3))
}

func TestMatrixElementwise(t *testing.T) {
	diff(t, Mat2(2.0, 4.0, 6.0, 8.0), testMat2.MulScalar(2))
	diff(t, Mat2(0.5, 1.0, 1.5, 2.0), testMat2.DivScalar(2))
	diff(t, Mat2(2.0, 4.0, 6.0, 8.0), testMat2.Add(testMat2))
	diff(t, Matrix2[float64]{}, testMat2.Sub(testMat2))
	diff(t, Mat2(-1.0, -2.0, -3.0, -4.0), testMat2.Neg())
}

func TestMatrixDeterminant(t *testing.T) {
	diff(t, -2.0, testMat2.Determinant())
	diff(t, 25.0, testMat3.Determinant())
	diff(t, 1.0, Matrix4Identity[float64]().Determinant())
	diff(t, 24.0, Matrix4FromNonUniformScale(2.0, 3.0, 4.0).Determinant())
	diff(t, 5.0, testMat2.Trace())
	diff(t, 9.0, testMat3.Trace())
	diff(t, 10.0, testMat4.Trace())
}

func TestMatrixInvert(t *testing.T) {
	inv2, ok := testMat2.Invert()
	if !ok {
		t.Fatal("testMat2 should be invertible")
	}
	if !testMat2.Mul(inv2).IsIdentity() {
		t.Errorf("m·m⁻¹ = %v", testMat2.Mul(inv2))
	}

	inv3, ok := testMat3.Invert()
	if !ok {
		t.Fatal("testMat3 should be invertible")
	}
	assertNear(t, testMat3.Mul(inv3), Matrix3Identity[float64](), 1e-12)
	assertNear(t, inv3.Mul(testMat3), Matrix3Identity[float64](), 1e-12)

	inv4, ok := testMat4.Invert()
	if !ok {
		t.Fatal("testMat4 should be invertible")
	}
	assertNear(t, testMat4.Mul(inv4), Matrix4Identity[float64](), 1e-12)
	assertNear(t, inv4.Mul(testMat4), Matrix4Identity[float64](), 1e-12)

	singular := Mat3(
		1.0, 2.0, 3.0,
		2.0, 4.0, 6.0,
		0.0, 1.0, 0.0,
	)
	if _, ok := singular.Invert(); ok {
		t.Error("singular matrix should not be invertible")
	}
	if singular.IsInvertible() {
		t.Error("IsInvertible reported true for a singular matrix")
	}
	if _, ok := (Matrix4[float64]{}).Invert(); ok {
		t.Error("zero matrix should not be invertible")
	}
	if _, ok := Mat2(1.0, 2.0, 2.0, 4.0).Invert(); ok {
		t.Error("singular 2×2 matrix should not be invertible")
	}
}

func TestMatrixPredicates(t *testing.T) {
	if !Matrix4FromScale(3.0).IsDiagonal() {
		t.Error("scale matrix should be diagonal")
	}
	if testMat4.IsDiagonal() {
		t.Error("testMat4 should not be diagonal")
	}
	if !Matrix2Identity[float32]().IsIdentity() {
		t.Error("identity should be the identity")
	}
	if testMat3.IsIdentity() {
		t.Error("testMat3 should not be the identity")
	}
}

func TestMatrixRotations(t *testing.T) {
	const epsilon = 1e-12
	quarter := NewRad(math.Pi / 2)

	assertNear(t, Matrix2FromAngle(quarter).MulVec(Vec2(1.0, 0.0)), Vec2(0.0, 1.0), epsilon)
	assertNear(t, Matrix3FromAngleX(quarter).MulVec(Vec3(0.0, 1.0, 0.0)), Vec3(0.0, 0.0, 1.0), epsilon)
	assertNear(t, Matrix3FromAngleY(quarter).MulVec(Vec3(0.0, 0.0, 1.0)), Vec3(1.0, 0.0, 0.0), epsilon)
	assertNear(t, Matrix3FromAngleZ(quarter).MulVec(Vec3(1.0, 0.0, 0.0)), Vec3(0.0, 1.0, 0.0), epsilon)

	axes := []struct {
		axis Vector3[float64]
		want Matrix3[float64]
	}{
		{Vec3UnitX[float64](), Matrix3FromAngleX(NewRad(0.7))},
		{Vec3UnitY[float64](), Matrix3FromAngleY(NewRad(0.7))},
		{Vec3UnitZ[float64](), Matrix3FromAngleZ(NewRad(0.7))},
	}
	for _, tt := range axes {
		assertNear(t, Matrix3FromAxisAngle(tt.axis, NewRad(0.7)), tt.want, epsilon)
	}

	m := Matrix3FromAxisAngle(Vec3(1.0, 2.0, 3.0).Normalize(), NewRad(1.1))
	assertNear(t, m.Mul(m.Transpose()), Matrix3Identity[float64](), epsilon)
	diff(t, 1.0, m.Determinant(), approx)
}

func TestMatrixLookAt(t *testing.T) {
	const epsilon = 1e-12
	dir := Vec3(1.0, 1.0, 0.0).Normalize()
	m := Matrix3LookAt(dir, Vec3UnitZ[float64]())
	assertNear(t, m.MulVec(dir), Vec3UnitZ[float64](), epsilon)
	assertNear(t, m.Mul(m.Transpose()), Matrix3Identity[float64](), epsilon)

	m2 := Matrix2LookAt(Vec2(0.0, -1.0), Vec2(1.0, 0.0))
	diff(t, Vec2(0.0, 1.0), m2.MulVec(Vec2(0.0, -1.0)))

	view := Matrix4LookAt(Pt3(0.0, 0.0, 5.0), Pt3(0.0, 0.0, 0.0), Vec3UnitY[float64]())
	// The camera looks down -Z, so the target ends up 5 units in front of it.
	assertNear(t, view.MulVec(Vec4(0.0, 0.0, 0.0, 1.0)), Vec4(0.0, 0.0, -5.0, 1.0), epsilon)
	assertNear(t, view.MulVec(Vec4(0.0, 0.0, 5.0, 1.0)), Vec4(0.0, 0.0, 0.0, 1.0), epsilon)
}

func TestMatrixTranslationScale(t *testing.T) {
	m := Matrix4FromTranslation(Vec3(1.0, 2.0, 3.0))
	diff(t, Vec4(2.0, 3.0, 4.0, 1.0), m.MulVec(Vec4(1.0, 1.0, 1.0, 1.0)))
	diff(t, Vec4(1.0, 1.0, 1.0, 0.0), m.MulVec(Vec4(1.0, 1.0, 1.0, 0.0)))
	diff(t, Vec4(2.0, 6.0, 12.0, 1.0), Matrix4FromNonUniformScale(2.0, 3.0, 4.0).MulVec(Vec4(1.0, 2.0, 3.0, 1.0)))
	diff(t, testMat3, testMat3.ToMatrix4().Matrix3())
}

func TestProjection(t *testing.T) {
	const epsilon = 1e-12
	p := Perspective(NewRad(math.Pi/2), 1.0, 1.0, 10.0)
	// Points on the near and far planes map to -1 and 1 after the divide.
	near := Point3FromHomogeneous(p.MulVec(Vec4(0.0, 0.0, -1.0, 1.0)))
	far := Point3FromHomogeneous(p.MulVec(Vec4(0.0, 0.0, -10.0, 1.0)))
	diff(t, -1.0, near.Z, approx)
	diff(t, 1.0, far.Z, approx)

	assertNear(t, Frustum(-1.0, 1.0, -1.0, 1.0, 1.0, 10.0), p, epsilon)

	o := Ortho(-2.0, 2.0, -1.0, 1.0, 0.0, 10.0)
	assertNear(t, o.MulVec(Vec4(2.0, 1.0, -10.0, 1.0)), Vec4(1.0, 1.0, 1.0, 1.0), epsilon)
	assertNear(t, o.MulVec(Vec4(-2.0, -1.0, 0.0, 1.0)), Vec4(-1.0, -1.0, -1.0, 1.0), epsilon)
}

func TestMatrixInterop(t *testing.T) {
	want := f64.Mat3{
		2, 1, 0,
		0, 3, 1,
		1, 0, 4,
	}
	diff(t, want, testMat3.F64())
	diff(t, testMat3, Matrix3FromF64[float64](testMat3.F64()))
	diff(t, testMat4, Matrix4FromF32[float64](testMat4.F32()))

	m := testMat4.F64()
	// Row-major: the translation column ends up at indices 3, 7, and 11.
	diff(t, [3]float64{5, -2, 1}, [3]float64{m[3], m[7], m[11]})
}

func TestMatrixString(t *testing.T) {
	diff(t, "[[1, 2], [3, 4]]", testMat2.String())
}
