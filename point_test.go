package linmath

import (
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt2(-10.0, 0), Pt2(0.0, 0).AddV(Vec2(-10.0, 0)))
	diff(t, Vec3(1.0, 2.0, 3.0), Pt3(2.0, 4.0, 6.0).SubP(Pt3(1.0, 2.0, 3.0)))
	diff(t, Pt3(2.0, 4.0, 6.0), Pt3(1.0, 2.0, 3.0).Mul(2))
	diff(t, Pt3(0.5, 1.0, 1.5), Pt3(1.0, 2.0, 3.0).Div(2))
	diff(t, Pt2(1.0, 0.0), Pt2(3.0, 4.0).Rem(2))
	diff(t, 14.0, Pt3(1.0, 2.0, 3.0).Dot(Vec3(1.0, 2.0, 3.0)))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt2(0.0, 10)
	p2 := Pt2(0.0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt2(-11.0, 1)
	p4 := Pt2(-7.0, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := Pt3(1.0, 2, 3).Distance2(Pt3(2.0, 4, 5)); d != 9 {
		t.Errorf("got squared distance %v, want 9", d)
	}
}

func TestPointMinMax(t *testing.T) {
	a := Pt3(1.0, 5.0, -2.0)
	b := Pt3(3.0, 0.0, -4.0)
	diff(t, Pt3(1.0, 0.0, -4.0), a.Min(b))
	diff(t, Pt3(3.0, 5.0, -2.0), a.Max(b))
	diff(t, 4.0, a.Sum())
	diff(t, -10.0, a.Product())
	diff(t, -2.0, a.MinElem())
	diff(t, 5.0, a.MaxElem())
	diff(t, Pt3(2.0, 2.5, -3.0), a.Midpoint(b))
	diff(t, Pt3(2.0, 2.5, -3.0), a.Lerp(b, 0.5))
}

func TestPointHomogeneous(t *testing.T) {
	p := Pt3(1.0, 2.0, 3.0)
	diff(t, Vec4(1.0, 2.0, 3.0, 1.0), p.ToHomogeneous())
	diff(t, p, Point3FromHomogeneous(p.ToHomogeneous()))
	diff(t, Pt3(0.5, 1.0, 1.5), Point3FromHomogeneous(Vec4(1.0, 2.0, 3.0, 2.0)))

	if q := Point3FromHomogeneous(Vec4(1.0, 0, 0, 0)); !q.IsInf() {
		t.Errorf("w = 0 should produce infinities, got %v", q)
	}
}

func TestPointConversion(t *testing.T) {
	v := Vec2(1.0, 2.0)
	diff(t, Pt2(1.0, 2.0), Point2FromVec(v))
	diff(t, v, Point2FromVec(v).ToVec())
	diff(t, Origin3[float64](), Point3FromVec(Vector3[float64]{}))
	diff(t, [3]float64{1, 2, 3}, Pt3(1.0, 2.0, 3.0).Array())
	diff(t, Pt3(1.0, 2.0, 3.0), Pt3FromArray([3]float64{1, 2, 3}))
	diff(t, 2.0, Pt3(1.0, 2.0, 3.0).Index(1))
	diff(t, Pt2[float32](1, 2), CastPoint2[float32](Pt2(1.0, 2.0)))
	diff(t, "(1, 2)", Pt2(1.0, 2.0).String())
	diff(t, "(1, 2, 3.5)", Pt3(1.0, 2.0, 3.5).String())
}
