package linmath

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrShortBuffer is returned by the UnmarshalBinary methods when the input
// holds fewer bytes than the value's fields.
var ErrShortBuffer = errors.New("linmath: short buffer")

// The binary encoding of every type in this package is its fields in
// declaration order, each stored as a little-endian IEEE 754 number of the
// scalar's width, without padding.

func scalarSize[S Float]() int {
	if is32[S]() {
		return 4
	}
	return 8
}

func appendScalars[S Float](b []byte, fs ...S) []byte {
	for _, f := range fs {
		if is32[S]() {
			b = binary.LittleEndian.AppendUint32(b, math.Float32bits(float32(f)))
		} else {
			b = binary.LittleEndian.AppendUint64(b, math.Float64bits(float64(f)))
		}
	}
	return b
}

func decodeScalars[S Float](data []byte, typ any, dst ...*S) error {
	size := scalarSize[S]()
	if len(data) < size*len(dst) {
		return fmt.Errorf("decoding %T: have %d bytes, need %d: %w", typ, len(data), size*len(dst), ErrShortBuffer)
	}
	for i, f := range dst {
		b := data[i*size:]
		if size == 4 {
			*f = S(math.Float32frombits(binary.LittleEndian.Uint32(b)))
		} else {
			*f = S(math.Float64frombits(binary.LittleEndian.Uint64(b)))
		}
	}
	return nil
}

func (r Rad[S]) MarshalBinary() ([]byte, error) {
	return appendScalars(nil, r.Radians), nil
}

func (r *Rad[S]) UnmarshalBinary(data []byte) error {
	return decodeScalars(data, *r, &r.Radians)
}

func (d Deg[S]) MarshalBinary() ([]byte, error) {
	return appendScalars(nil, d.Degrees), nil
}

func (d *Deg[S]) UnmarshalBinary(data []byte) error {
	return decodeScalars(data, *d, &d.Degrees)
}

func (v Vector2[S]) MarshalBinary() ([]byte, error) {
	return appendScalars(nil, v.X, v.Y), nil
}

func (v *Vector2[S]) UnmarshalBinary(data []byte) error {
	return decodeScalars(data, *v, &v.X, &v.Y)
}

func (v Vector3[S]) MarshalBinary() ([]byte, error) {
	return appendScalars(nil, v.X, v.Y, v.Z), nil
}

func (v *Vector3[S]) UnmarshalBinary(data []byte) error {
	return decodeScalars(data, *v, &v.X, &v.Y, &v.Z)
}

func (v Vector4[S]) MarshalBinary() ([]byte, error) {
	return appendScalars(nil, v.X, v.Y, v.Z, v.W), nil
}

func (v *Vector4[S]) UnmarshalBinary(data []byte) error {
	return decodeScalars(data, *v, &v.X, &v.Y, &v.Z, &v.W)
}

func (pt Point2[S]) MarshalBinary() ([]byte, error) {
	return appendScalars(nil, pt.X, pt.Y), nil
}

func (pt *Point2[S]) UnmarshalBinary(data []byte) error {
	return decodeScalars(data, *pt, &pt.X, &pt.Y)
}

func (pt Point3[S]) MarshalBinary() ([]byte, error) {
	return appendScalars(nil, pt.X, pt.Y, pt.Z), nil
}

func (pt *Point3[S]) UnmarshalBinary(data []byte) error {
	return decodeScalars(data, *pt, &pt.X, &pt.Y, &pt.Z)
}

// MarshalBinary encodes q as w, x, y, z.
func (q Quaternion[S]) MarshalBinary() ([]byte, error) {
	return appendScalars(nil, q.W, q.V.X, q.V.Y, q.V.Z), nil
}

func (q *Quaternion[S]) UnmarshalBinary(data []byte) error {
	return decodeScalars(data, *q, &q.W, &q.V.X, &q.V.Y, &q.V.Z)
}

// MarshalBinary encodes the columns of m in order.
func (m Matrix4[S]) MarshalBinary() ([]byte, error) {
	a := m.Array()
	return appendScalars(nil, a[:]...), nil
}

func (m *Matrix4[S]) UnmarshalBinary(data []byte) error {
	var a [16]S
	dst := make([]*S, len(a))
	for i := range a {
		dst[i] = &a[i]
	}
	if err := decodeScalars(data, *m, dst...); err != nil {
		return err
	}
	*m = Matrix4FromArray(a)
	return nil
}
