package scad

import "strings"

// Object is a single Element followed by any number of child objects:
//
//	translate([1,2,3])
//	{
//		cube([3,5,1]);
//	}
//
// A parent owns its children. AddChild takes ownership of the child; use
// Clone when the same subtree has to appear in more than one place.
type Object struct {
	element  Element
	children []*Object

	// important objects are prefixed with '!', telling OpenSCAD to draw
	// only that subtree.
	important bool
}

// NewObject returns an object with no children.
func NewObject(e Element) *Object {
	return &Object{element: e}
}

// New returns an object with the given children, in order.
func New(e Element, children ...*Object) *Object {
	o := NewObject(e)
	for _, c := range children {
		o.AddChild(c)
	}
	return o
}

// AddChild appends c to the children of o. Any element may have any
// children; OpenSCAD decides what makes sense.
func (o *Object) AddChild(c *Object) {
	o.children = append(o.children, c)
}

// MarkImportant prefixes the object's code with '!'.
func (o *Object) MarkImportant() {
	o.important = true
}

// Important marks o as important and returns it, for use in expressions.
func (o *Object) Important() *Object {
	o.MarkImportant()
	return o
}

// IsImportant reports whether o is marked important.
func (o *Object) IsImportant() bool { return o.important }

// Element returns the object's element.
func (o *Object) Element() Element { return o.element }

// Children returns the object's children. The slice must not be modified.
func (o *Object) Children() []*Object { return o.children }

// Clone returns a deep copy of o.
func (o *Object) Clone() *Object {
	c := &Object{element: o.element, important: o.important}
	if len(o.children) > 0 {
		c.children = make([]*Object, len(o.children))
		for i, child := range o.children {
			c.children[i] = child.Clone()
		}
	}
	return c
}

// Code returns the OpenSCAD code for o and its children.
func (o *Object) Code() string {
	return Code(o)
}

// WriteCode writes the element followed by ';' if there are no children,
// otherwise by the children in a brace block, each indented one tab.
func (o *Object) WriteCode(b *strings.Builder) {
	if o.important {
		b.WriteByte('!')
	}
	writeElement(b, o.element)

	if len(o.children) == 0 {
		b.WriteByte(';')
		return
	}

	b.WriteString("\n{\n")
	for _, c := range o.children {
		b.WriteByte('\t')
		b.WriteString(strings.ReplaceAll(c.Code(), "\n", "\n\t"))
		b.WriteByte('\n')
	}
	b.WriteByte('}')
}

// Walk calls fn for o and each descendant in depth-first pre-order.
// depth is 0 for o. Returning false from fn skips that object's children.
func Walk(o *Object, fn func(o *Object, depth int) bool) {
	walk(o, 0, fn)
}

func walk(o *Object, depth int, fn func(*Object, int) bool) {
	if !fn(o, depth) {
		return
	}
	for _, c := range o.children {
		walk(c, depth+1, fn)
	}
}

// Count returns the number of objects in the tree rooted at o.
func Count(o *Object) int {
	n := 0
	Walk(o, func(*Object, int) bool {
		n++
		return true
	})
	return n
}
