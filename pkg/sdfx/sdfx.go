// Package sdfx converts geometry built with the github.com/deadsy/sdfx
// CAD library into scad values and elements, so shapes designed with sdfx
// can be placed in an OpenSCAD document.
package sdfx

import (
	"fmt"

	"github.com/chazu/scadgen/pkg/scad"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// DefaultMeshCells is the marching cubes resolution used by Solid when
// cells is not positive.
const DefaultMeshCells = 100

// FromV2 converts an sdfx 2D vector.
func FromV2(v v2.Vec) scad.Vec2 {
	return scad.V2(float32(v.X), float32(v.Y))
}

// FromV3 converts an sdfx 3D vector.
func FromV3(v v3.Vec) scad.Vec3 {
	return scad.V3(float32(v.X), float32(v.Y), float32(v.Z))
}

// Polygon returns a polygon element with the vertices of p in order.
func Polygon(p *sdf.Polygon) scad.Polygon {
	verts := p.Vertices()
	points := make([]scad.Vec2, len(verts))
	for i, v := range verts {
		points[i] = FromV2(v)
	}
	return scad.Polygon{Params: scad.NewPolygonParams(points)}
}

// meshBuilder collects triangles into a shared vertex list.
type meshBuilder struct {
	index  map[scad.Vec3]int32
	points []scad.Vec3
	faces  [][]int32

	// dropDegenerate skips triangles whose corners merge after float32
	// conversion.
	dropDegenerate bool
}

func newMeshBuilder(n int) *meshBuilder {
	return &meshBuilder{
		index: make(map[scad.Vec3]int32, n),
		faces: make([][]int32, 0, n),
	}
}

// vertex returns the index of p, adding it on first sight.
func (m *meshBuilder) vertex(p scad.Vec3) int32 {
	if i, ok := m.index[p]; ok {
		return i
	}
	i := int32(len(m.points))
	m.index[p] = i
	m.points = append(m.points, p)
	return i
}

// triangle adds one face. OpenSCAD wants faces wound clockwise when seen
// from outside, sdfx emits them counter-clockwise, so the order is reversed.
func (m *meshBuilder) triangle(a, b, c v3.Vec) {
	pa, pb, pc := FromV3(a), FromV3(b), FromV3(c)
	if m.dropDegenerate && (pa == pb || pb == pc || pa == pc) {
		return
	}
	ia, ib, ic := m.vertex(pa), m.vertex(pb), m.vertex(pc)
	m.faces = append(m.faces, []int32{ia, ic, ib})
}

func (m *meshBuilder) polyhedron() scad.Polyhedron {
	return scad.Polyhedron{Points: m.points, Faces: m.faces}
}

// Polyhedron returns a polyhedron with one face per triangle, wound for
// OpenSCAD. Shared vertices are stored once, in first-seen order.
func Polyhedron(triangles []*sdf.Triangle3) scad.Polyhedron {
	m := newMeshBuilder(len(triangles))
	for _, t := range triangles {
		m.triangle(t[0], t[1], t[2])
	}
	return m.polyhedron()
}

// Solid tessellates s with uniform marching cubes and returns the mesh as
// a polyhedron. cells is the number of cells along the longest side of
// the bounding box.
func Solid(s sdf.SDF3, cells int) (scad.Polyhedron, error) {
	if s == nil {
		return scad.Polyhedron{}, fmt.Errorf("sdfx: nil solid")
	}
	if cells <= 0 {
		cells = DefaultMeshCells
	}
	triangles := render.ToTriangles(s, render.NewMarchingCubesUniform(cells))
	if len(triangles) == 0 {
		return scad.Polyhedron{}, fmt.Errorf("sdfx: solid produced no triangles at %d cells", cells)
	}
	m := newMeshBuilder(len(triangles))
	m.dropDegenerate = true
	for _, t := range triangles {
		m.triangle(t[0], t[1], t[2])
	}
	return m.polyhedron(), nil
}
