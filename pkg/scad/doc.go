// Package scad builds OpenSCAD programs as a tree of objects and renders
// them to source text.
//
// An Object wraps one Element (a module call such as cube or translate)
// and owns its children. Rendering is a pure function of the tree:
//
//	obj := scad.New(scad.Translate{V: scad.V3(0, 0, 0)},
//		scad.NewObject(scad.Cube{Size: scad.V3(1, 1, 1)}))
//	obj.Code() // "translate([0,0,0])\n{\n\tcube([1,1,1]);\n}"
//
// Values (numbers, vectors, lists, strings) implement Value and write
// their literal form into a strings.Builder.
package scad
