package scad

import (
	"strings"
	"testing"
)

func TestObjectCode(t *testing.T) {
	obj := NewObject(Translate{V3(0, 0, 0)})
	if got := obj.Code(); got != "translate([0,0,0]);" {
		t.Errorf("leaf = %q", got)
	}

	obj.AddChild(NewObject(Cube{V3(1, 1, 1)}))
	if got := obj.Code(); got != "translate([0,0,0])\n{\n\tcube([1,1,1]);\n}" {
		t.Errorf("with child = %q", got)
	}

	obj.MarkImportant()
	if got := obj.Code(); got != "!translate([0,0,0])\n{\n\tcube([1,1,1]);\n}" {
		t.Errorf("important = %q", got)
	}

	if got := NewObject(Union{}).Important().Code(); got != "!union();" {
		t.Errorf("important union = %q", got)
	}
}

func TestObjectNesting(t *testing.T) {
	obj := New(Union{},
		New(Difference{},
			New(Color{V3(1, 1, 1)}, NewObject(Cube{V3(10, 0.2, 2.5)})),
			New(Translate{V3(3, -0.01, 1)}, NewObject(Cube{V3(1, 0.22, 1)})),
		),
		NewObject(Sphere{Radius(0.05)}),
	)

	want := strings.Join([]string{
		"union()",
		"{",
		"\tdifference()",
		"\t{",
		"\t\tcolor([1,1,1])",
		"\t\t{",
		"\t\t\tcube([10,0.2,2.5]);",
		"\t\t}",
		"\t\ttranslate([3,-0.01,1])",
		"\t\t{",
		"\t\t\tcube([1,0.22,1]);",
		"\t\t}",
		"\t}",
		"\tsphere(r=0.05);",
		"}",
	}, "\n")

	if got := obj.Code(); got != want {
		t.Errorf("nested code:\n%s\nwant:\n%s", got, want)
	}
}

func TestObjectChildOrder(t *testing.T) {
	obj := NewObject(Union{})
	for i := 1; i <= 3; i++ {
		obj.AddChild(NewObject(Cube{V3(float32(i), 1, 1)}))
	}
	want := "union()\n{\n\tcube([1,1,1]);\n\tcube([2,1,1]);\n\tcube([3,1,1]);\n}"
	if got := obj.Code(); got != want {
		t.Errorf("code = %q, want %q", got, want)
	}
	if len(obj.Children()) != 3 {
		t.Errorf("children = %d, want 3", len(obj.Children()))
	}
}

func TestObjectImportantOnlyPrefixes(t *testing.T) {
	build := func() *Object {
		return New(Hull{}, NewObject(Circle{Diameter(3)}), NewObject(Square{V2(2, 2)}))
	}
	plain := build().Code()
	marked := build()
	marked.MarkImportant()
	marked.MarkImportant() // idempotent

	if got := marked.Code(); got != "!"+plain {
		t.Errorf("important code = %q, want %q", got, "!"+plain)
	}
	if !marked.IsImportant() {
		t.Error("IsImportant = false after MarkImportant")
	}
}

func TestImportantChild(t *testing.T) {
	obj := New(Union{}, NewObject(Cube{V3(1, 1, 1)}).Important())
	want := "union()\n{\n\t!cube([1,1,1]);\n}"
	if got := obj.Code(); got != want {
		t.Errorf("code = %q, want %q", got, want)
	}
}

func TestLeafHasNoBraces(t *testing.T) {
	leaves := []Element{
		Cube{V3(1, 2, 3)},
		Sphere{Radius(1)},
		Import{"a.stl"},
		Polygon{NewPolygonParams([]Vec2{V2(0, 0), V2(1, 0), V2(0, 1)})},
		NamedColor{"red"},
	}
	for _, e := range leaves {
		got := NewObject(e).Code()
		if !strings.HasSuffix(got, ";") {
			t.Errorf("%T: %q does not end in ';'", e, got)
		}
		if strings.ContainsAny(got, "{}") {
			t.Errorf("%T: %q contains braces", e, got)
		}
	}
}

func TestChildIndentation(t *testing.T) {
	// Each nesting level adds exactly one tab.
	obj := NewObject(Cube{V3(1, 1, 1)})
	for depth := 1; depth <= 4; depth++ {
		obj = New(Union{}, obj)
	}
	for _, line := range strings.Split(obj.Code(), "\n") {
		if strings.HasPrefix(line, strings.Repeat("\t", 4)+"cube") {
			return
		}
	}
	t.Errorf("deepest child not indented by 4 tabs:\n%s", obj.Code())
}

func TestRenderIsIdempotent(t *testing.T) {
	obj := New(Translate{V3(1, 2, 3)}, NewObject(Cube{V3(1, 1, 1)}))
	first := obj.Code()
	if second := obj.Code(); second != first {
		t.Errorf("second render %q differs from first %q", second, first)
	}

	// Later mutation changes later renders.
	obj.AddChild(NewObject(Sphere{Radius(1)}))
	if obj.Code() == first {
		t.Error("render did not reflect added child")
	}
}

func TestClone(t *testing.T) {
	orig := New(Translate{V3(1, 0, 0)}, NewObject(Cube{V3(1, 1, 1)})).Important()
	c := orig.Clone()

	if c.Code() != orig.Code() {
		t.Fatalf("clone code %q != original %q", c.Code(), orig.Code())
	}

	c.AddChild(NewObject(Sphere{Radius(2)}))
	c.Children()[0].AddChild(NewObject(Cube{V3(2, 2, 2)}))
	if len(orig.Children()) != 1 {
		t.Errorf("original gained children: %d", len(orig.Children()))
	}
	if len(orig.Children()[0].Children()) != 0 {
		t.Error("original grandchild list modified through clone")
	}
}

func TestWalkAndCount(t *testing.T) {
	obj := New(Union{},
		New(Translate{V3(1, 0, 0)}, NewObject(Cube{V3(1, 1, 1)})),
		NewObject(Sphere{Radius(1)}),
	)

	if n := Count(obj); n != 4 {
		t.Errorf("Count = %d, want 4", n)
	}

	var names []string
	var depths []int
	Walk(obj, func(o *Object, depth int) bool {
		names = append(names, ElementCode(o.Element()))
		depths = append(depths, depth)
		return true
	})
	wantNames := []string{"union()", "translate([1,0,0])", "cube([1,1,1])", "sphere(r=1)"}
	wantDepths := []int{0, 1, 2, 1}
	for i := range wantNames {
		if names[i] != wantNames[i] || depths[i] != wantDepths[i] {
			t.Errorf("visit %d = %s@%d, want %s@%d", i, names[i], depths[i], wantNames[i], wantDepths[i])
		}
	}

	// Returning false prunes the subtree.
	visited := 0
	Walk(obj, func(o *Object, depth int) bool {
		visited++
		_, isTranslate := o.Element().(Translate)
		return !isTranslate
	})
	if visited != 3 {
		t.Errorf("pruned walk visited %d, want 3", visited)
	}
}
