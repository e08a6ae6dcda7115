// Package tween animates linmath values over time.
//
// Progress is tracked by a [gween.Tween] running from 0 to 1, so every easing
// function from github.com/tanema/gween/ease can be used. The eased progress
// is then used to interpolate between two values: linearly for vectors and
// angles, spherically for rotations.
package tween

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"honnef.co/go/linmath"
)

// Ease evaluates fn at t, with t clamped to [0, 1]. The result is usually in
// [0, 1] but may overshoot for easings such as [ease.OutBack].
func Ease(fn ease.TweenFunc, t float32) float32 {
	return fn(linmath.Clamp(t, 0, 1), 0, 1, 1)
}

// Tween interpolates from one value of type T to another over a duration.
type Tween[T any] struct {
	From, To T

	duration float32
	easing   ease.TweenFunc
	lerp     func(from, to T, t float32) T
	tw       *gween.Tween
}

// New returns a tween from one value to another over duration, using lerp
// to interpolate between them.
func New[T any](from, to T, duration float32, easing ease.TweenFunc, lerp func(from, to T, t float32) T) *Tween[T] {
	return &Tween[T]{
		From:     from,
		To:       to,
		duration: duration,
		easing:   easing,
		lerp:     lerp,
		tw:       gween.New(0, 1, duration, easing),
	}
}

// Update advances the tween by dt and returns the current value. Once the
// duration has elapsed, Update returns the final value and true.
func (tw *Tween[T]) Update(dt float32) (T, bool) {
	p, done := tw.tw.Update(dt)
	if done {
		return tw.To, true
	}
	return tw.lerp(tw.From, tw.To, p), false
}

// Reset rewinds the tween to its start.
func (tw *Tween[T]) Reset() {
	tw.tw = gween.New(0, 1, tw.duration, tw.easing)
}

func lerpVector[V linmath.Vector[S, V], S linmath.Float](from, to V, t float32) V {
	return from.Lerp(to, S(t))
}

func lerpAngle[A linmath.Angle[S, A], S linmath.Float](from, to A, t float32) A {
	return from.Add(to.Sub(from).Mul(S(t)))
}

// Vector2 returns a tween that linearly interpolates between two vectors.
func Vector2[S linmath.Float](from, to linmath.Vector2[S], duration float32, easing ease.TweenFunc) *Tween[linmath.Vector2[S]] {
	return New(from, to, duration, easing, lerpVector[linmath.Vector2[S], S])
}

// Vector3 returns a tween that linearly interpolates between two vectors.
func Vector3[S linmath.Float](from, to linmath.Vector3[S], duration float32, easing ease.TweenFunc) *Tween[linmath.Vector3[S]] {
	return New(from, to, duration, easing, lerpVector[linmath.Vector3[S], S])
}

// Point3 returns a tween that linearly interpolates between two points.
func Point3[S linmath.Float](from, to linmath.Point3[S], duration float32, easing ease.TweenFunc) *Tween[linmath.Point3[S]] {
	return New(from, to, duration, easing, func(from, to linmath.Point3[S], t float32) linmath.Point3[S] {
		return from.Lerp(to, S(t))
	})
}

// Angle returns a tween that linearly interpolates between two angles. It
// does not wrap around: tweening from -170° to 170° passes through 0°.
func Angle[S linmath.Float](from, to linmath.Rad[S], duration float32, easing ease.TweenFunc) *Tween[linmath.Rad[S]] {
	return New(from, to, duration, easing, lerpAngle[linmath.Rad[S], S])
}

// AngleDeg is like [Angle] but for angles in degrees.
func AngleDeg[S linmath.Float](from, to linmath.Deg[S], duration float32, easing ease.TweenFunc) *Tween[linmath.Deg[S]] {
	return New(from, to, duration, easing, lerpAngle[linmath.Deg[S], S])
}

// slerpShort spherically interpolates from q to o along the shorter arc.
// q and -q are the same rotation, so o is negated when the two lie in
// opposite hemispheres.
func slerpShort[S linmath.Float](q, o linmath.Quaternion[S], t S) linmath.Quaternion[S] {
	if q.Dot(o) < 0 {
		o = o.Neg()
	}
	return q.Slerp(o, t)
}

// Rotation returns a tween that spherically interpolates between two unit
// quaternions along the shorter arc.
func Rotation[S linmath.Float](from, to linmath.Quaternion[S], duration float32, easing ease.TweenFunc) *Tween[linmath.Quaternion[S]] {
	return New(from, to, duration, easing, func(from, to linmath.Quaternion[S], t float32) linmath.Quaternion[S] {
		return slerpShort(from, to, S(t))
	})
}

// Transform returns a tween between two decomposed transforms. Scales and
// displacements are interpolated linearly and rotations spherically.
func Transform[S linmath.Float](from, to linmath.Decomposed3[S, linmath.Quaternion[S]], duration float32, easing ease.TweenFunc) *Tween[linmath.Decomposed3[S, linmath.Quaternion[S]]] {
	return New(from, to, duration, easing, func(from, to linmath.Decomposed3[S, linmath.Quaternion[S]], t float32) linmath.Decomposed3[S, linmath.Quaternion[S]] {
		s := S(t)
		return linmath.Decomposed3[S, linmath.Quaternion[S]]{
			Scale: from.Scale + (to.Scale-from.Scale)*s,
			Rot:   slerpShort(from.Rot, to.Rot, s),
			Disp:  from.Disp.Lerp(to.Disp, s),
		}
	})
}
