package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/chazu/scadgen/pkg/scad"
	zygo "github.com/glycerine/zygomys/zygo"
	"go.uber.org/zap"
)

// ---------------------------------------------------------------------------
// Custom Sexp type for passing objects through the zygomys environment
// ---------------------------------------------------------------------------

// sexpObject wraps a scad.Object so it can be bound, passed to other
// builtins and attached as a child.
type sexpObject struct {
	obj *scad.Object
}

func (s *sexpObject) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(scad %s)", scad.ElementCode(s.obj.Element()))
}
func (s *sexpObject) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Document builder
// ---------------------------------------------------------------------------

// builder collects the objects a script creates. Attaching an object to a
// parent appends a clone, so one binding can be used in several places.
// Once attached, an object can no longer be changed with important or
// add-child. Every object that is never attached becomes a top-level object
// of the document, in creation order.
type builder struct {
	doc      *scad.Document
	created  []*scad.Object
	attached map[*scad.Object]bool
	log      *zap.Logger
}

func newBuilder(log *zap.Logger) *builder {
	return &builder{
		doc:      scad.NewDocument(),
		attached: make(map[*scad.Object]bool),
		log:      log,
	}
}

// add creates an object for e with clones of children attached.
func (b *builder) add(e scad.Element, children []*scad.Object) *sexpObject {
	obj := scad.NewObject(e)
	b.attach(obj, children)
	b.created = append(b.created, obj)
	return &sexpObject{obj: obj}
}

func (b *builder) attach(parent *scad.Object, children []*scad.Object) {
	for _, c := range children {
		b.attached[c] = true
		parent.AddChild(c.Clone())
	}
}

// finish moves the unattached objects into the document and returns it.
func (b *builder) finish() *scad.Document {
	for _, obj := range b.created {
		if !b.attached[obj] {
			b.doc.Add(obj)
		}
	}
	b.log.Debug("document built",
		zap.Int("created", len(b.created)),
		zap.Int("top_level", len(b.doc.Objects())),
		zap.Int("detail", b.doc.Detail))
	return b.doc
}

// objects flattens args into objects. Arrays and lists of objects are
// spliced in place; nil is skipped so (map ...) results can be passed
// straight through.
func objects(args []zygo.Sexp) ([]*scad.Object, error) {
	var out []*scad.Object
	for _, arg := range args {
		switch v := arg.(type) {
		case *sexpObject:
			out = append(out, v.obj)
		case *zygo.SexpArray, *zygo.SexpPair:
			items, err := sexpListToSlice(v)
			if err != nil {
				return nil, err
			}
			nested, err := objects(items)
			if err != nil {
				return nil, err
			}
			out = append(out, nested...)
		case *zygo.SexpSentinel:
			if v != zygo.SexpNull {
				return nil, fmt.Errorf("expected object, got %s", sexpString(arg))
			}
		default:
			return nil, fmt.Errorf("expected object, got %T (%s)", arg, sexpString(arg))
		}
	}
	return out, nil
}

// elementFunc builds an element from parsed arguments and returns the
// positional arguments it did not consume.
type elementFunc func(a kwArgs) (scad.Element, []zygo.Sexp, error)

// leaf registers a primitive that takes no children.
func (b *builder) leaf(env *zygo.Zlisp, name string, fn elementFunc) {
	env.AddFunction(snakeName(name), func(env *zygo.Zlisp, _ string, args []zygo.Sexp) (zygo.Sexp, error) {
		a := parseArgs(args)
		e, rest, err := fn(a)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: %w", name, err)
		}
		if unknown := a.unread(); len(unknown) > 0 {
			return zygo.SexpNull, fmt.Errorf("%s: unknown keyword :%s", name, unknown[0])
		}
		if len(rest) > 0 {
			return zygo.SexpNull, fmt.Errorf("%s: unexpected argument %s", name, sexpString(rest[0]))
		}
		if err := scad.CheckColor(e); err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: %w", name, err)
		}
		return b.add(e, nil), nil
	})
}

// node registers an operation whose remaining positional arguments are
// its children.
func (b *builder) node(env *zygo.Zlisp, name string, fn elementFunc) {
	env.AddFunction(snakeName(name), func(env *zygo.Zlisp, _ string, args []zygo.Sexp) (zygo.Sexp, error) {
		a := parseArgs(args)
		e, rest, err := fn(a)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: %w", name, err)
		}
		if unknown := a.unread(); len(unknown) > 0 {
			return zygo.SexpNull, fmt.Errorf("%s: unknown keyword :%s", name, unknown[0])
		}
		if err := scad.CheckColor(e); err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: %w", name, err)
		}
		children, err := objects(rest)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: %w", name, err)
		}
		return b.add(e, children), nil
	})
}

// first returns the keyword argument name if present, otherwise the first
// positional argument. The remaining positional arguments are returned
// alongside.
func (a kwArgs) first(name string) (zygo.Sexp, []zygo.Sexp) {
	if v, ok := a.get(name); ok {
		return v, a.positional
	}
	if len(a.positional) == 0 {
		return nil, nil
	}
	return a.positional[0], a.positional[1:]
}

// isNumberSeq reports whether s is a non-empty array or list of numbers.
func isNumberSeq(s zygo.Sexp) bool {
	if !isSequence(s) {
		return false
	}
	items, err := sexpListToSlice(s)
	if err != nil || len(items) == 0 {
		return false
	}
	for _, item := range items {
		if _, err := toFloat64(item); err != nil {
			return false
		}
	}
	return true
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the modelling builtins into env. Objects they
// create are recorded in b.
//
// Source must be preprocessed with preprocessSource so that :keyword
// tokens reach the builtins as keyword strings.
func registerBuiltins(env *zygo.Zlisp, b *builder) {

	// -----------------------------------------------------------------------
	// 3D primitives
	// -----------------------------------------------------------------------

	// (cube 2) (cube [1 2 3]) (cube [1 2 3] :center true)
	b.leaf(env, "cube", func(a kwArgs) (scad.Element, []zygo.Sexp, error) {
		arg, rest := a.first("size")
		if arg == nil {
			return nil, nil, errors.New("size required")
		}
		size, err := toSize3(arg)
		if err != nil {
			return nil, nil, fmt.Errorf("size: %w", err)
		}
		center, err := a.boolean("center", false)
		if err != nil {
			return nil, nil, err
		}
		if center {
			return scad.CenteredCube{Size: size}, rest, nil
		}
		return scad.Cube{Size: size}, rest, nil
	})

	// (sphere 1) (sphere :r 1) (sphere :d 2)
	b.leaf(env, "sphere", func(a kwArgs) (scad.Element, []zygo.Sexp, error) {
		size, rest, err := roundSize(a)
		if err != nil {
			return nil, nil, err
		}
		return scad.Sphere{Size: size}, rest, nil
	})

	// (cylinder :h 10 :r 2) (cylinder :h 10 :r1 2 :r2 1)
	b.leaf(env, "cylinder", func(a kwArgs) (scad.Element, []zygo.Sexp, error) {
		h, err := height(a)
		if err != nil {
			return nil, nil, err
		}
		bottom, hasBottom, err := a.size("r1", "d1")
		if err != nil {
			return nil, nil, err
		}
		top, hasTop, err := a.size("r2", "d2")
		if err != nil {
			return nil, nil, err
		}
		if hasBottom || hasTop {
			if !hasBottom || !hasTop {
				return nil, nil, errors.New("tapered cylinder needs both ends (:r1/:d1 and :r2/:d2)")
			}
			return scad.Cone{Height: h, Bottom: bottom, Top: top}, a.positional, nil
		}
		size, ok, err := a.size("r", "d")
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			return nil, nil, errors.New(":r or :d required")
		}
		return scad.Cylinder{Height: h, Size: size}, a.positional, nil
	})

	// (cone :h 5 :r1 7 :r2 14)
	b.leaf(env, "cone", func(a kwArgs) (scad.Element, []zygo.Sexp, error) {
		h, err := height(a)
		if err != nil {
			return nil, nil, err
		}
		bottom, ok, err := a.size("r1", "d1")
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			return nil, nil, errors.New(":r1 or :d1 required")
		}
		top, ok, err := a.size("r2", "d2")
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			return nil, nil, errors.New(":r2 or :d2 required")
		}
		return scad.Cone{Height: h, Bottom: bottom, Top: top}, a.positional, nil
	})

	// (polyhedron :points [[0 0 0] ...] :faces [[0 1 2] ...])
	b.leaf(env, "polyhedron", func(a kwArgs) (scad.Element, []zygo.Sexp, error) {
		pv, ok := a.get("points")
		if !ok {
			return nil, nil, errors.New(":points required")
		}
		points, err := toVec3List(pv)
		if err != nil {
			return nil, nil, fmt.Errorf("points: %w", err)
		}
		fv, ok := a.get("faces")
		if !ok {
			return nil, nil, errors.New(":faces required")
		}
		lists, err := toIntLists(fv)
		if err != nil {
			return nil, nil, fmt.Errorf("faces: %w", err)
		}
		faces := make([][]int32, len(lists))
		for i, l := range lists {
			if err := checkIndices(l, len(points)); err != nil {
				return nil, nil, fmt.Errorf("faces: face %d: %w", i, err)
			}
			face := make([]int32, len(l))
			for j, idx := range l {
				face[j] = int32(idx)
			}
			faces[i] = face
		}
		return scad.Polyhedron{Points: points, Faces: faces}, a.positional, nil
	})

	// (import-file "part.stl")
	b.leaf(env, "import-file", func(a kwArgs) (scad.Element, []zygo.Sexp, error) {
		arg, rest := a.first("file")
		if arg == nil {
			return nil, nil, errors.New("file name required")
		}
		path, err := toString(arg)
		if err != nil {
			return nil, nil, err
		}
		return scad.Import{Path: path}, rest, nil
	})

	// -----------------------------------------------------------------------
	// 2D primitives
	// -----------------------------------------------------------------------

	// (square 2) (square [3 4])
	b.leaf(env, "square", func(a kwArgs) (scad.Element, []zygo.Sexp, error) {
		arg, rest := a.first("size")
		if arg == nil {
			return nil, nil, errors.New("size required")
		}
		if f, err := toFloat32(arg); err == nil {
			return scad.Square{Size: scad.V2(f, f)}, rest, nil
		}
		v, err := toVec2(arg)
		if err != nil {
			return nil, nil, fmt.Errorf("size: %w", err)
		}
		return scad.Square{Size: v}, rest, nil
	})

	// (circle 10) (circle :d 20)
	b.leaf(env, "circle", func(a kwArgs) (scad.Element, []zygo.Sexp, error) {
		size, rest, err := roundSize(a)
		if err != nil {
			return nil, nil, err
		}
		return scad.Circle{Size: size}, rest, nil
	})

	// (polygon [[0 0] [1 0] [0 1]] :paths [[0 1 2]] :convexity 4)
	b.leaf(env, "polygon", func(a kwArgs) (scad.Element, []zygo.Sexp, error) {
		arg, rest := a.first("points")
		if arg == nil {
			return nil, nil, errors.New("points required")
		}
		points, err := toVec2List(arg)
		if err != nil {
			return nil, nil, fmt.Errorf("points: %w", err)
		}
		p := scad.NewPolygonParams(points)
		pathv, hasPath := a.get("path")
		pathsv, hasPaths := a.get("paths")
		switch {
		case hasPath && hasPaths:
			return nil, nil, errors.New("both :path and :paths given")
		case hasPath:
			path, err := toInts(pathv)
			if err != nil {
				return nil, nil, fmt.Errorf("path: %w", err)
			}
			if err := checkIndices(path, len(points)); err != nil {
				return nil, nil, fmt.Errorf("path: %w", err)
			}
			p = p.WithPath(path)
		case hasPaths:
			paths, err := toIntLists(pathsv)
			if err != nil {
				return nil, nil, fmt.Errorf("paths: %w", err)
			}
			for i, path := range paths {
				if err := checkIndices(path, len(points)); err != nil {
					return nil, nil, fmt.Errorf("paths: path %d: %w", i, err)
				}
			}
			p = p.WithPaths(paths)
		}
		c, err := a.integer("convexity", 10)
		if err != nil {
			return nil, nil, err
		}
		if c < 0 {
			return nil, nil, fmt.Errorf("convexity: must not be negative, got %d", c)
		}
		return scad.Polygon{Params: p.WithConvexity(uint64(c))}, rest, nil
	})

	// (offset :delta 2 :chamfer true child...) (offset :r 1 child...)
	b.node(env, "offset", func(a kwArgs) (scad.Element, []zygo.Sexp, error) {
		_, hasDelta := a.get("delta")
		_, hasR := a.get("r")
		var amount scad.OffsetAmount
		switch {
		case hasDelta && hasR:
			return nil, nil, errors.New("both :delta and :r given")
		case hasDelta:
			d, err := a.float("delta", 0)
			if err != nil {
				return nil, nil, err
			}
			amount = scad.Delta(d)
		case hasR:
			r, err := a.float("r", 0)
			if err != nil {
				return nil, nil, err
			}
			amount = scad.Radius(r)
		default:
			return nil, nil, errors.New(":delta or :r required")
		}
		chamfer, err := a.boolean("chamfer", false)
		if err != nil {
			return nil, nil, err
		}
		return scad.Offset{Amount: amount, Chamfer: chamfer}, a.positional, nil
	})

	// (projection :cut true child...)
	b.node(env, "projection", func(a kwArgs) (scad.Element, []zygo.Sexp, error) {
		cut, err := a.boolean("cut", false)
		if err != nil {
			return nil, nil, err
		}
		return scad.Projection{Cut: cut}, a.positional, nil
	})

	// -----------------------------------------------------------------------
	// Transforms
	// -----------------------------------------------------------------------

	// (translate [x y z] child...) (translate [x y] child...)
	b.node(env, "translate", func(a kwArgs) (scad.Element, []zygo.Sexp, error) {
		return vectorOp(a, "v",
			func(v scad.Vec2) scad.Element { return scad.Translate2D{V: v} },
			func(v scad.Vec3) scad.Element { return scad.Translate{V: v} })
	})

	// (scale 2 child...) (scale [x y z] child...) (scale [x y] child...)
	b.node(env, "scale", func(a kwArgs) (scad.Element, []zygo.Sexp, error) {
		if arg, rest := a.first("v"); arg != nil {
			if f, err := toFloat32(arg); err == nil {
				return scad.Scale{V: scad.V3(f, f, f)}, rest, nil
			}
		}
		return vectorOp(a, "v",
			func(v scad.Vec2) scad.Element { return scad.Scale2D{V: v} },
			func(v scad.Vec3) scad.Element { return scad.Scale{V: v} })
	})

	// (resize [x y z] :auto true child...)
	b.node(env, "resize", func(a kwArgs) (scad.Element, []zygo.Sexp, error) {
		arg, rest := a.first("v")
		if arg == nil {
			return nil, nil, errors.New("vector required")
		}
		v, err := toVec3(arg)
		if err != nil {
			return nil, nil, err
		}
		auto, err := a.boolean("auto", false)
		if err != nil {
			return nil, nil, err
		}
		return scad.Resize{V: v, Auto: auto}, rest, nil
	})

	// (rotate 45 child...) (rotate 45 [0 0 1] child...) (rotate [90 0 0] child...)
	b.node(env, "rotate", func(a kwArgs) (scad.Element, []zygo.Sexp, error) {
		arg, rest := a.first("a")
		if arg == nil {
			return nil, nil, errors.New("angle required")
		}
		if isNumberSeq(arg) {
			v, err := toVec3(arg)
			if err != nil {
				return nil, nil, err
			}
			return scad.RotateVec{V: v}, rest, nil
		}
		angle, err := toFloat32(arg)
		if err != nil {
			return nil, nil, fmt.Errorf("angle: %w", err)
		}
		if axis, ok := a.get("v"); ok {
			v, err := toVec3(axis)
			if err != nil {
				return nil, nil, fmt.Errorf("axis: %w", err)
			}
			return scad.Rotate{Angle: angle, Axis: v}, rest, nil
		}
		if len(rest) > 0 && isNumberSeq(rest[0]) {
			v, err := toVec3(rest[0])
			if err != nil {
				return nil, nil, fmt.Errorf("axis: %w", err)
			}
			return scad.Rotate{Angle: angle, Axis: v}, rest[1:], nil
		}
		return scad.Rotate2D{Angle: angle}, rest, nil
	})

	// (mirror [1 0 0] child...)
	b.node(env, "mirror", func(a kwArgs) (scad.Element, []zygo.Sexp, error) {
		arg, rest := a.first("v")
		if arg == nil {
			return nil, nil, errors.New("normal vector required")
		}
		v, err := toVec3(arg)
		if err != nil {
			return nil, nil, err
		}
		return scad.Mirror{V: v}, rest, nil
	})

	// (linear-extrude :height 10 :twist 90 :slices 20 child...)
	b.node(env, "linear-extrude", func(a kwArgs) (scad.Element, []zygo.Sexp, error) {
		p := scad.DefaultLinearExtrude()
		var err error
		if p.Height, err = a.float("height", p.Height); err != nil {
			return nil, nil, err
		}
		if p.Center, err = a.boolean("center", p.Center); err != nil {
			return nil, nil, err
		}
		if p.Twist, err = a.float("twist", p.Twist); err != nil {
			return nil, nil, err
		}
		if p.Convexity, err = a.bounded("convexity", p.Convexity, 0, math.MaxInt32); err != nil {
			return nil, nil, err
		}
		if p.Slices, err = a.bounded("slices", p.Slices, 0, math.MaxInt32); err != nil {
			return nil, nil, err
		}
		return scad.LinearExtrude{Params: p}, a.positional, nil
	})

	// (rotate-extrude :angle 180 child...)
	b.node(env, "rotate-extrude", func(a kwArgs) (scad.Element, []zygo.Sexp, error) {
		p := scad.DefaultRotateExtrude()
		var err error
		if p.Angle, err = a.float("angle", p.Angle); err != nil {
			return nil, nil, err
		}
		convexity, err := a.integer("convexity", int64(p.Convexity))
		if err != nil {
			return nil, nil, err
		}
		if convexity < 0 {
			return nil, nil, fmt.Errorf("convexity: must not be negative, got %d", convexity)
		}
		p.Convexity = uint(convexity)
		return scad.RotateExtrude{Params: p}, a.positional, nil
	})

	// -----------------------------------------------------------------------
	// Boolean combinators: every argument is a child.
	// -----------------------------------------------------------------------

	combinators := map[string]scad.Element{
		"union":        scad.Union{},
		"difference":   scad.Difference{},
		"intersection": scad.Intersection{},
		"hull":         scad.Hull{},
		"minkowski":    scad.Minkowski{},
	}
	for name, e := range combinators {
		b.node(env, name, func(a kwArgs) (scad.Element, []zygo.Sexp, error) {
			if len(a.kw) > 0 {
				return nil, nil, errors.New("keyword arguments not accepted")
			}
			return e, a.positional, nil
		})
	}

	// -----------------------------------------------------------------------
	// (color [r g b] child...) (color [r g b a] child...) (color "red" child...)
	// (color [r g b] :alpha 0.5 child...)
	// -----------------------------------------------------------------------
	b.node(env, "color", func(a kwArgs) (scad.Element, []zygo.Sexp, error) {
		arg, rest := a.first("c")
		if arg == nil {
			return nil, nil, errors.New("colour required")
		}
		if name, err := toString(arg); err == nil {
			return scad.NamedColor{Name: name}, rest, nil
		}
		fs, err := toFloats(arg)
		if err != nil {
			return nil, nil, fmt.Errorf("colour: %w", err)
		}
		switch len(fs) {
		case 3:
			rgb := scad.V3(fs[0], fs[1], fs[2])
			if _, ok := a.get("alpha"); ok {
				alpha, err := a.float("alpha", 1)
				if err != nil {
					return nil, nil, err
				}
				return scad.ColorAlpha{RGBA: scad.V4(rgb.X, rgb.Y, rgb.Z, alpha)}, rest, nil
			}
			return scad.Color{RGB: rgb}, rest, nil
		case 4:
			return scad.ColorAlpha{RGBA: scad.V4(fs[0], fs[1], fs[2], fs[3])}, rest, nil
		}
		return nil, nil, fmt.Errorf("colour: expected 3 or 4 components, got %d", len(fs))
	})

	// -----------------------------------------------------------------------
	// Object modifiers
	// -----------------------------------------------------------------------

	// (important obj) marks obj with the ! modifier and returns it.
	env.AddFunction("important", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("important: expected 1 object, got %d arguments", len(args))
		}
		obj, ok := args[0].(*sexpObject)
		if !ok {
			return zygo.SexpNull, fmt.Errorf("important: expected object, got %T (%s)", args[0], sexpString(args[0]))
		}
		if b.attached[obj.obj] {
			return zygo.SexpNull, errors.New("important: object is already a child; mark it before attaching it")
		}
		obj.obj.MarkImportant()
		return obj, nil
	})

	// (add-child parent child...) attaches more children to parent.
	env.AddFunction("add_child", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 1 {
			return zygo.SexpNull, errors.New("add-child: parent required")
		}
		parent, ok := args[0].(*sexpObject)
		if !ok {
			return zygo.SexpNull, fmt.Errorf("add-child: parent: expected object, got %T (%s)", args[0], sexpString(args[0]))
		}
		children, err := objects(args[1:])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("add-child: %w", err)
		}
		if b.attached[parent.obj] {
			return zygo.SexpNull, errors.New("add-child: parent is already a child; add children before attaching it")
		}
		for _, c := range children {
			if c == parent.obj {
				return zygo.SexpNull, errors.New("add-child: object cannot be its own child")
			}
		}
		b.attach(parent.obj, children)
		return parent, nil
	})

	// (detail 50) writes $fn=50; at the top of the document.
	env.AddFunction("detail", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("detail: expected 1 argument, got %d", len(args))
		}
		n, err := toInt64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("detail: %w", err)
		}
		if n < 0 {
			return zygo.SexpNull, fmt.Errorf("detail: must not be negative, got %d", n)
		}
		b.doc.SetDetail(int(n))
		return args[0], nil
	})
}

// ---------------------------------------------------------------------------
// Argument shapes shared by several builtins
// ---------------------------------------------------------------------------

// checkIndices reports the first index outside [0, n).
func checkIndices(indices []int, n int) error {
	for _, idx := range indices {
		if idx < 0 || idx >= n {
			return fmt.Errorf("index %d out of range for %d points", idx, n)
		}
	}
	return nil
}

// toSize3 reads a cube size: a single number for all sides or a vector.
func toSize3(s zygo.Sexp) (scad.Vec3, error) {
	if f, err := toFloat32(s); err == nil {
		return scad.V3(f, f, f), nil
	}
	return toVec3(s)
}

// roundSize reads the size of a sphere or circle: a positional radius,
// :r, or :d.
func roundSize(a kwArgs) (scad.Size, []zygo.Sexp, error) {
	size, ok, err := a.size("r", "d")
	if err != nil {
		return nil, nil, err
	}
	if ok {
		return size, a.positional, nil
	}
	if len(a.positional) == 0 {
		return nil, nil, errors.New("radius required (positional, :r or :d)")
	}
	r, err := toFloat32(a.positional[0])
	if err != nil {
		return nil, nil, fmt.Errorf("radius: %w", err)
	}
	return scad.Radius(r), a.positional[1:], nil
}

// height reads :h (or :height).
func height(a kwArgs) (float32, error) {
	v, ok := a.get("h")
	if !ok {
		v, ok = a.get("height")
	}
	if !ok {
		return 0, errors.New(":h required")
	}
	h, err := toFloat32(v)
	if err != nil {
		return 0, fmt.Errorf("h: %w", err)
	}
	return h, nil
}

// vectorOp builds the 2D or 3D variant of a transform depending on the
// length of its vector argument.
func vectorOp(
	a kwArgs,
	name string,
	flat func(scad.Vec2) scad.Element,
	solid func(scad.Vec3) scad.Element,
) (scad.Element, []zygo.Sexp, error) {
	arg, rest := a.first(name)
	if arg == nil {
		return nil, nil, errors.New("vector required")
	}
	fs, err := toFloats(arg)
	if err != nil {
		return nil, nil, err
	}
	switch len(fs) {
	case 2:
		return flat(scad.V2(fs[0], fs[1])), rest, nil
	case 3:
		return solid(scad.V3(fs[0], fs[1], fs[2])), rest, nil
	}
	return nil, nil, fmt.Errorf("expected 2 or 3 numbers, got %d", len(fs))
}
