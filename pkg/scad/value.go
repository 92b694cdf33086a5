package scad

import (
	"math"
	"strconv"
	"strings"
)

// Value is anything with an OpenSCAD literal form.
type Value interface {
	// WriteCode appends the literal to b.
	WriteCode(b *strings.Builder)
}

// Code returns the OpenSCAD literal for v.
func Code(v Value) string {
	var b strings.Builder
	v.WriteCode(&b)
	return b.String()
}

// ---------------------------------------------------------------------------
// Scalars
// ---------------------------------------------------------------------------

// Float is a float32 number.
type Float float32

func (f Float) WriteCode(b *strings.Builder) { writeFloat(b, float32(f)) }

// Int is a signed integer.
type Int int64

func (i Int) WriteCode(b *strings.Builder) { b.WriteString(strconv.FormatInt(int64(i), 10)) }

// Uint is an unsigned integer.
type Uint uint64

func (u Uint) WriteCode(b *strings.Builder) { b.WriteString(strconv.FormatUint(uint64(u), 10)) }

// Bool renders as true or false.
type Bool bool

func (v Bool) WriteCode(b *strings.Builder) { b.WriteString(strconv.FormatBool(bool(v))) }

// Str is a double-quoted string literal.
type Str string

func (s Str) WriteCode(b *strings.Builder) { b.WriteString(strconv.Quote(string(s))) }

// Undef is the OpenSCAD undefined value.
type Undef struct{}

func (Undef) WriteCode(b *strings.Builder) { b.WriteString("undef") }

// writeFloat writes the shortest decimal that reads back as the same float32.
// Non-finite values have no literal form, so they are written as the
// division that produces them.
func writeFloat(b *strings.Builder, f float32) {
	switch {
	case math.IsNaN(float64(f)):
		b.WriteString("(0/0)")
	case math.IsInf(float64(f), 1):
		b.WriteString("(1/0)")
	case math.IsInf(float64(f), -1):
		b.WriteString("(-1/0)")
	default:
		b.WriteString(strconv.FormatFloat(float64(f), 'f', -1, 32))
	}
}

// ---------------------------------------------------------------------------
// Vectors
// ---------------------------------------------------------------------------

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 is a 4D vector, used for RGBA colours.
type Vec4 struct {
	X, Y, Z, W float32
}

// V2 returns Vec2{x, y}.
func V2(x, y float32) Vec2 { return Vec2{x, y} }

// V3 returns Vec3{x, y, z}.
func V3(x, y, z float32) Vec3 { return Vec3{x, y, z} }

// V4 returns Vec4{x, y, z, w}.
func V4(x, y, z, w float32) Vec4 { return Vec4{x, y, z, w} }

func (v Vec2) WriteCode(b *strings.Builder) { writeVector(b, v.X, v.Y) }
func (v Vec3) WriteCode(b *strings.Builder) { writeVector(b, v.X, v.Y, v.Z) }
func (v Vec4) WriteCode(b *strings.Builder) { writeVector(b, v.X, v.Y, v.Z, v.W) }

// InUnitRange reports whether every component lies in [0,1].
func (v Vec3) InUnitRange() bool {
	return inUnit(v.X) && inUnit(v.Y) && inUnit(v.Z)
}

// InUnitRange reports whether every component lies in [0,1].
func (v Vec4) InUnitRange() bool {
	return inUnit(v.X) && inUnit(v.Y) && inUnit(v.Z) && inUnit(v.W)
}

func inUnit(f float32) bool { return f >= 0 && f <= 1 }

// writeVector writes fixed-size vectors: no trailing comma.
func writeVector(b *strings.Builder, xs ...float32) {
	b.WriteByte('[')
	for i, x := range xs {
		if i > 0 {
			b.WriteByte(',')
		}
		writeFloat(b, x)
	}
	b.WriteByte(']')
}

// ---------------------------------------------------------------------------
// Sequences
// ---------------------------------------------------------------------------

// List is an OpenSCAD list literal. Every element is followed by a comma,
// including the last one: [1,2,3,]. An empty list renders as [].
type List[T Value] []T

func (l List[T]) WriteCode(b *strings.Builder) {
	writeList(b, l, func(b *strings.Builder, v T) { v.WriteCode(b) })
}

// writeList is the single place list literals are produced.
func writeList[T any](b *strings.Builder, xs []T, write func(*strings.Builder, T)) {
	b.WriteByte('[')
	for _, x := range xs {
		write(b, x)
		b.WriteByte(',')
	}
	b.WriteByte(']')
}

func writeInts[T ~int | ~int32 | ~int64](b *strings.Builder, xs []T) {
	writeList(b, xs, func(b *strings.Builder, x T) { Int(x).WriteCode(b) })
}
