package scad

import (
	"strings"
	"testing"
)

func TestElementCode(t *testing.T) {
	tests := []struct {
		name string
		e    Element
		want string
	}{
		// transforms
		{"translate", Translate{V3(1, 2, 3)}, "translate([1,2,3])"},
		{"scale", Scale{V3(2, 2, 2)}, "scale([2,2,2])"},
		{"resize", Resize{V3(10, 0, 0), true}, "resize([10,0,0], auto = true)"},
		{"rotate axis", Rotate{45, V3(0, 0, 1)}, "rotate(45,[0,0,1])"},
		{"rotate vec", RotateVec{V3(90, 0, 0)}, "rotate([90,0,0])"},
		{"mirror", Mirror{V3(1, 0, 0)}, "mirror([1,0,0])"},
		{
			"linear extrude",
			LinearExtrude{DefaultLinearExtrude()},
			"linear_extrude(height=1,center=false,convexity=10,twist=0,slices=1)",
		},
		{"rotate extrude", RotateExtrude{DefaultRotateExtrude()}, "rotate_extrude(angle=360,convexity=10)"},

		// combinators
		{"difference", Difference{}, "difference()"},
		{"union", Union{}, "union()"},
		{"hull", Hull{}, "hull()"},
		{"intersection", Intersection{}, "intersection()"},
		{"minkowski", Minkowski{}, "minkowski()"},

		// 3D
		{"cube", Cube{V3(1, 1, 1)}, "cube([1,1,1])"},
		{"centered cube", CenteredCube{V3(0.04, 0.24, 1.04)}, "cube([0.04,0.24,1.04], center = true)"},
		{"cylinder radius", Cylinder{10, Radius(2)}, "cylinder(h=10,r=2)"},
		{"cylinder diameter", Cylinder{10, Diameter(4)}, "cylinder(h=10,d=4)"},
		{"sphere diameter", Sphere{Diameter(7)}, "sphere(d=7)"},
		{"sphere radius", Sphere{Radius(0.05)}, "sphere(r=0.05)"},
		{"cone radius", Cone{5, Radius(7), Radius(14)}, "cylinder(h=5,r1=7,r2=14)"},
		{"cone diameter", Cone{5, Diameter(7), Diameter(14)}, "cylinder(h=5,d1=7,d2=14)"},
		{"cone mixed", Cone{5, Radius(7), Diameter(14)}, "cylinder(h=5,r1=7,d2=14)"},
		{
			"polyhedron",
			Polyhedron{
				Points: []Vec3{V3(0, 0, 0), V3(1, 0, 0), V3(0, 1, 0), V3(0, 0, 1)},
				Faces:  [][]int32{{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2}},
			},
			"polyhedron(points=[[0,0,0],[1,0,0],[0,1,0],[0,0,1],],faces=[[0,1,2,],[0,3,1,],[0,2,3,],[1,3,2,],])",
		},
		{"import", Import{"hello_world.stl"}, `import("hello_world.stl")`},

		// 2D
		{"square", Square{V2(3, 4)}, "square([3,4])"},
		{"circle radius", Circle{Radius(10)}, "circle(r=10)"},
		{"circle diameter", Circle{Diameter(10)}, "circle(d=10)"},
		{
			"polygon",
			Polygon{NewPolygonParams([]Vec2{V2(1, 1)})},
			"polygon(points=[[1,1],],paths=undef,convexity=10)",
		},
		{"offset delta", Offset{Delta(5), false}, "offset(delta=5,chamfer=false)"},
		{"offset radius", Offset{Radius(1.5), true}, "offset(r=1.5,chamfer=true)"},
		{"projection", Projection{true}, "projection(cut=true)"},
		{"rotate 2d", Rotate2D{90}, "rotate(90)"},
		{"translate 2d", Translate2D{V2(1, 1)}, "translate([1,1])"},
		{"scale 2d", Scale2D{V2(1, 1)}, "scale([1,1])"},

		// colour
		{"color", Color{V3(0, 0, 0)}, "color([0,0,0])"},
		{"color alpha", ColorAlpha{V4(0, 1, 1, 0.5)}, "color([0,1,1,0.5])"},
		{"named color", NamedColor{"aqua"}, `color("aqua")`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ElementCode(tt.e); got != tt.want {
				t.Errorf("ElementCode(%#v) =\n  %q\nwant\n  %q", tt.e, got, tt.want)
			}
		})
	}
}

func TestLinearExtrudeParams(t *testing.T) {
	if got := Code(DefaultLinearExtrude()); got != "height=1,center=false,convexity=10,twist=0,slices=1" {
		t.Errorf("default params = %q", got)
	}

	p := DefaultLinearExtrude()
	p.Twist = 720
	if got := Code(p); got != "height=1,center=false,convexity=10,twist=720,slices=1" {
		t.Errorf("twisted params = %q", got)
	}
}

func TestPolygonParams(t *testing.T) {
	base := NewPolygonParams([]Vec2{V2(1, 1)})

	tests := []struct {
		name string
		p    PolygonParams
		want string
	}{
		{"default", base, "points=[[1,1],],paths=undef,convexity=10"},
		{"single path", base.WithConvexity(5).WithPath([]int{1}), "points=[[1,1],],paths=[1,],convexity=5"},
		{
			"multiple paths",
			base.WithPaths([][]int{{0, 1, 2}, {3, 4, 5}}),
			"points=[[1,1],],paths=[[0,1,2,],[3,4,5,],],convexity=10",
		},
		{"paths replace path", base.WithPath([]int{0}).WithPaths([][]int{{1}}), "points=[[1,1],],paths=[[1,],],convexity=10"},
		{"path replaces paths", base.WithPaths([][]int{{1}}).WithPath([]int{0}), "points=[[1,1],],paths=[0,],convexity=10"},
		{"empty path", base.WithPath([]int{}), "points=[[1,1],],paths=[],convexity=10"},
		{"no points", NewPolygonParams(nil), "points=[],paths=undef,convexity=10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Code(tt.p); got != tt.want {
				t.Errorf("Code = %q, want %q", got, tt.want)
			}
		})
	}

	// With* methods return copies.
	if got := Code(base); got != "points=[[1,1],],paths=undef,convexity=10" {
		t.Errorf("base params modified: %q", got)
	}
}

func TestColorOutOfRangePanics(t *testing.T) {
	tests := []struct {
		name string
		e    Element
	}{
		{"red above one", Color{V3(1.1, 0, 0)}},
		{"blue negative", Color{V3(0, 0, -1)}},
		{"alpha above one", ColorAlpha{V4(0, 0, 0, 1.5)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("expected panic for out-of-range color")
				}
				if msg, ok := r.(string); !ok || !strings.Contains(msg, "out of range") {
					t.Errorf("unexpected panic value: %v", r)
				}
			}()
			ElementCode(tt.e)
		})
	}
}

func TestCheckColor(t *testing.T) {
	if err := CheckColor(Color{V3(1, 0.5, 0)}); err != nil {
		t.Errorf("valid color: %v", err)
	}
	if err := CheckColor(Color{V3(1.1, 0, 0)}); err == nil {
		t.Error("expected error for red > 1")
	}
	if err := CheckColor(ColorAlpha{V4(0, 0, 0, -0.5)}); err == nil {
		t.Error("expected error for negative alpha")
	}
	if err := CheckColor(Cube{V3(5, 5, 5)}); err != nil {
		t.Errorf("non-color element: %v", err)
	}
}
