package scad

import (
	"fmt"
	"strings"
)

// Element describes a single OpenSCAD module call. The set of variants is
// closed; most carry the same name as their OpenSCAD counterpart.
type Element interface {
	element() // marker method restricting implementations to this package
}

// ---------------------------------------------------------------------------
// Transforms
// ---------------------------------------------------------------------------

// Translate moves children by V.
type Translate struct{ V Vec3 }

// Scale scales children by V.
type Scale struct{ V Vec3 }

// Resize resizes children to V; Auto scales zero components proportionally.
type Resize struct {
	V    Vec3
	Auto bool
}

// Rotate rotates children by Angle degrees around Axis.
type Rotate struct {
	Angle float32
	Axis  Vec3
}

// RotateVec rotates children by the Euler angles in V.
type RotateVec struct{ V Vec3 }

// Mirror mirrors children in the plane through the origin with normal V.
type Mirror struct{ V Vec3 }

// LinearExtrude extrudes 2D children along Z.
type LinearExtrude struct{ Params LinearExtrudeParams }

// RotateExtrude sweeps 2D children around Z.
type RotateExtrude struct{ Params RotateExtrudeParams }

func (Translate) element()     {}
func (Scale) element()         {}
func (Resize) element()        {}
func (Rotate) element()        {}
func (RotateVec) element()     {}
func (Mirror) element()        {}
func (LinearExtrude) element() {}
func (RotateExtrude) element() {}

// ---------------------------------------------------------------------------
// Combinators
// ---------------------------------------------------------------------------

// Boolean combinators take no arguments and act on their children.
type (
	Difference   struct{}
	Union        struct{}
	Hull         struct{}
	Intersection struct{}
	Minkowski    struct{}
)

func (Difference) element()   {}
func (Union) element()        {}
func (Hull) element()         {}
func (Intersection) element() {}
func (Minkowski) element()    {}

// ---------------------------------------------------------------------------
// 3D primitives
// ---------------------------------------------------------------------------

// Cube is a box with one corner at the origin.
type Cube struct{ Size Vec3 }

// CenteredCube is a box centred on the origin.
type CenteredCube struct{ Size Vec3 }

// Cylinder has the same size at both ends.
type Cylinder struct {
	Height float32
	Size   Size
}

// Sphere is a sphere centred on the origin.
type Sphere struct{ Size Size }

// Cone is a cylinder with distinct bottom and top sizes.
type Cone struct {
	Height      float32
	Bottom, Top Size
}

// Polyhedron is a solid described by its points and faces; each face lists
// point indices.
type Polyhedron struct {
	Points []Vec3
	Faces  [][]int32
}

// Import loads an external mesh or drawing file.
type Import struct{ Path string }

func (Cube) element()         {}
func (CenteredCube) element() {}
func (Cylinder) element()     {}
func (Sphere) element()       {}
func (Cone) element()         {}
func (Polyhedron) element()   {}
func (Import) element()       {}

// ---------------------------------------------------------------------------
// 2D
// ---------------------------------------------------------------------------

// Square is a rectangle with one corner at the origin.
type Square struct{ Size Vec2 }

// Circle is a circle centred on the origin.
type Circle struct{ Size Size }

// Polygon is a 2D outline.
type Polygon struct{ Params PolygonParams }

// Offset grows or shrinks 2D children.
type Offset struct {
	Amount  OffsetAmount
	Chamfer bool
}

// Projection projects 3D children onto the XY plane.
type Projection struct{ Cut bool }

// Rotate2D rotates 2D children by Angle degrees.
type Rotate2D struct{ Angle float32 }

// Translate2D moves 2D children by V.
type Translate2D struct{ V Vec2 }

// Scale2D scales 2D children by V.
type Scale2D struct{ V Vec2 }

func (Square) element()      {}
func (Circle) element()      {}
func (Polygon) element()     {}
func (Offset) element()      {}
func (Projection) element()  {}
func (Rotate2D) element()    {}
func (Translate2D) element() {}
func (Scale2D) element()     {}

// ---------------------------------------------------------------------------
// Colour
// ---------------------------------------------------------------------------

// Color is an RGB colour; components must lie in [0,1].
type Color struct{ RGB Vec3 }

// ColorAlpha is an RGBA colour; components must lie in [0,1].
type ColorAlpha struct{ RGBA Vec4 }

// NamedColor is an SVG/CSS colour name such as "aqua".
type NamedColor struct{ Name string }

func (Color) element()      {}
func (ColorAlpha) element() {}
func (NamedColor) element() {}

// CheckColor returns an error if a Color or ColorAlpha has a component
// outside [0,1]. Rendering such an element panics.
func CheckColor(e Element) error {
	switch e := e.(type) {
	case Color:
		if !e.RGB.InUnitRange() {
			return fmt.Errorf("color %s: components must be in [0,1]", Code(e.RGB))
		}
	case ColorAlpha:
		if !e.RGBA.InUnitRange() {
			return fmt.Errorf("color %s: components must be in [0,1]", Code(e.RGBA))
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Code generation
// ---------------------------------------------------------------------------

// ElementCode returns the call syntax for e, without a trailing ';'.
func ElementCode(e Element) string {
	var b strings.Builder
	writeElement(&b, e)
	return b.String()
}

// call writes name(<args>).
func call(b *strings.Builder, name string, args func()) {
	b.WriteString(name)
	b.WriteByte('(')
	if args != nil {
		args()
	}
	b.WriteByte(')')
}

func callValue(b *strings.Builder, name string, v Value) {
	call(b, name, func() { v.WriteCode(b) })
}

func writeElement(b *strings.Builder, e Element) {
	switch e := e.(type) {
	case Translate:
		callValue(b, "translate", e.V)
	case Scale:
		callValue(b, "scale", e.V)
	case Resize:
		call(b, "resize", func() {
			e.V.WriteCode(b)
			b.WriteString(", auto = ")
			Bool(e.Auto).WriteCode(b)
		})
	case Rotate:
		call(b, "rotate", func() {
			writeFloat(b, e.Angle)
			b.WriteByte(',')
			e.Axis.WriteCode(b)
		})
	case RotateVec:
		callValue(b, "rotate", e.V)
	case Mirror:
		callValue(b, "mirror", e.V)
	case LinearExtrude:
		callValue(b, "linear_extrude", e.Params)
	case RotateExtrude:
		callValue(b, "rotate_extrude", e.Params)

	case Difference:
		call(b, "difference", nil)
	case Union:
		call(b, "union", nil)
	case Hull:
		call(b, "hull", nil)
	case Intersection:
		call(b, "intersection", nil)
	case Minkowski:
		call(b, "minkowski", nil)

	case Cube:
		callValue(b, "cube", e.Size)
	case CenteredCube:
		call(b, "cube", func() {
			e.Size.WriteCode(b)
			b.WriteString(", center = true")
		})
	case Cylinder:
		call(b, "cylinder", func() {
			b.WriteString("h=")
			writeFloat(b, e.Height)
			b.WriteByte(',')
			writeSize(b, e.Size, "")
		})
	case Sphere:
		call(b, "sphere", func() { writeSize(b, e.Size, "") })
	case Cone:
		call(b, "cylinder", func() {
			b.WriteString("h=")
			writeFloat(b, e.Height)
			b.WriteByte(',')
			writeSize(b, e.Bottom, "1")
			b.WriteByte(',')
			writeSize(b, e.Top, "2")
		})
	case Polyhedron:
		call(b, "polyhedron", func() {
			b.WriteString("points=")
			List[Vec3](e.Points).WriteCode(b)
			b.WriteString(",faces=")
			writeList(b, e.Faces, writeInts[int32])
		})
	case Import:
		callValue(b, "import", Str(e.Path))

	case Square:
		callValue(b, "square", e.Size)
	case Circle:
		call(b, "circle", func() { writeSize(b, e.Size, "") })
	case Polygon:
		callValue(b, "polygon", e.Params)
	case Offset:
		call(b, "offset", func() {
			key, v := e.Amount.offsetArg()
			b.WriteString(key)
			b.WriteByte('=')
			writeFloat(b, v)
			b.WriteString(",chamfer=")
			Bool(e.Chamfer).WriteCode(b)
		})
	case Projection:
		call(b, "projection", func() {
			b.WriteString("cut=")
			Bool(e.Cut).WriteCode(b)
		})
	case Rotate2D:
		callValue(b, "rotate", Float(e.Angle))
	case Translate2D:
		callValue(b, "translate", e.V)
	case Scale2D:
		callValue(b, "scale", e.V)

	case Color:
		if !e.RGB.InUnitRange() {
			panic(fmt.Sprintf("scad: color %s out of range [0,1]", Code(e.RGB)))
		}
		callValue(b, "color", e.RGB)
	case ColorAlpha:
		if !e.RGBA.InUnitRange() {
			panic(fmt.Sprintf("scad: color %s out of range [0,1]", Code(e.RGBA)))
		}
		callValue(b, "color", e.RGBA)
	case NamedColor:
		callValue(b, "color", Str(e.Name))

	default:
		panic(fmt.Sprintf("scad: unknown element %T", e))
	}
}
