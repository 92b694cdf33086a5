package scad

import "strings"

// ---------------------------------------------------------------------------
// Circle sizes
// ---------------------------------------------------------------------------

// Size picks between the r= and d= forms OpenSCAD accepts for round shapes.
// Implemented by Radius and Diameter.
type Size interface {
	sizeArg() (key string, v float32)
}

// Radius renders as r=<v>. It is both a Size and an OffsetAmount.
type Radius float32

// Diameter renders as d=<v>.
type Diameter float32

func (r Radius) sizeArg() (string, float32)   { return "r", float32(r) }
func (d Diameter) sizeArg() (string, float32) { return "d", float32(d) }

// writeSize writes key<suffix>=value, e.g. r1=7 for suffix "1".
func writeSize(b *strings.Builder, s Size, suffix string) {
	key, v := s.sizeArg()
	b.WriteString(key)
	b.WriteString(suffix)
	b.WriteByte('=')
	writeFloat(b, v)
}

// ---------------------------------------------------------------------------
// Offset
// ---------------------------------------------------------------------------

// OffsetAmount is the distance argument of offset(): Delta or Radius.
type OffsetAmount interface {
	offsetArg() (key string, v float32)
}

// Delta renders as delta=<v>.
type Delta float32

func (d Delta) offsetArg() (string, float32)  { return "delta", float32(d) }
func (r Radius) offsetArg() (string, float32) { return "r", float32(r) }

// ---------------------------------------------------------------------------
// linear_extrude
// ---------------------------------------------------------------------------

// LinearExtrudeParams are the arguments of linear_extrude().
type LinearExtrudeParams struct {
	Height    float32
	Center    bool
	Convexity int32
	Twist     float32
	Slices    int32
}

// DefaultLinearExtrude returns height=1, convexity=10, slices=1.
func DefaultLinearExtrude() LinearExtrudeParams {
	return LinearExtrudeParams{
		Height:    1,
		Convexity: 10,
		Slices:    1,
	}
}

func (p LinearExtrudeParams) WriteCode(b *strings.Builder) {
	b.WriteString("height=")
	writeFloat(b, p.Height)
	b.WriteString(",center=")
	Bool(p.Center).WriteCode(b)
	b.WriteString(",convexity=")
	Int(p.Convexity).WriteCode(b)
	b.WriteString(",twist=")
	writeFloat(b, p.Twist)
	b.WriteString(",slices=")
	Int(p.Slices).WriteCode(b)
}

// ---------------------------------------------------------------------------
// rotate_extrude
// ---------------------------------------------------------------------------

// RotateExtrudeParams are the arguments of rotate_extrude().
type RotateExtrudeParams struct {
	Angle     float32
	Convexity uint
}

// DefaultRotateExtrude returns angle=360, convexity=10.
func DefaultRotateExtrude() RotateExtrudeParams {
	return RotateExtrudeParams{Angle: 360, Convexity: 10}
}

func (p RotateExtrudeParams) WriteCode(b *strings.Builder) {
	b.WriteString("angle=")
	writeFloat(b, p.Angle)
	b.WriteString(",convexity=")
	Uint(p.Convexity).WriteCode(b)
}

// ---------------------------------------------------------------------------
// polygon
// ---------------------------------------------------------------------------

// PolygonParams are the arguments of polygon(). Build with NewPolygonParams
// and the With* methods; paths default to undef and convexity to 10.
type PolygonParams struct {
	Points    []Vec2
	Path      []int   // single path, used when Paths is nil
	Paths     [][]int // multiple paths
	Convexity uint64
}

// NewPolygonParams returns params for the given outline.
func NewPolygonParams(points []Vec2) PolygonParams {
	return PolygonParams{Points: points, Convexity: 10}
}

// WithPath sets a single point-index path, replacing any previous path.
func (p PolygonParams) WithPath(path []int) PolygonParams {
	p.Path, p.Paths = path, nil
	return p
}

// WithPaths sets multiple point-index paths (outline plus holes).
func (p PolygonParams) WithPaths(paths [][]int) PolygonParams {
	p.Path, p.Paths = nil, paths
	return p
}

// WithConvexity sets the convexity hint.
func (p PolygonParams) WithConvexity(c uint64) PolygonParams {
	p.Convexity = c
	return p
}

func (p PolygonParams) WriteCode(b *strings.Builder) {
	b.WriteString("points=")
	List[Vec2](p.Points).WriteCode(b)
	b.WriteString(",paths=")
	switch {
	case p.Paths != nil:
		writeList(b, p.Paths, writeInts[int])
	case p.Path != nil:
		writeInts(b, p.Path)
	default:
		Undef{}.WriteCode(b)
	}
	b.WriteString(",convexity=")
	Uint(p.Convexity).WriteCode(b)
}
