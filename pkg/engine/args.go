package engine

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/chazu/scadgen/pkg/scad"
	zygo "github.com/glycerine/zygomys/zygo"
)

// isKW reports whether s is a preprocessed keyword and returns its name.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp

	// read records the keywords a builtin looked up.
	read map[string]bool
}

// get returns the keyword value and marks the keyword as read.
func (a kwArgs) get(name string) (zygo.Sexp, bool) {
	a.read[name] = true
	v, ok := a.kw[name]
	return v, ok
}

// unread returns the keywords that were given but never looked up, sorted.
func (a kwArgs) unread() []string {
	var names []string
	for name := range a.kw {
		if !a.read[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// parseArgs separates args into keyword and positional arguments.
// A keyword at the end of the list has the value SexpNull.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp), read: make(map[string]bool)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if !ok {
			result.positional = append(result.positional, args[i])
			i++
			continue
		}
		if i+1 < len(args) {
			result.kw[name] = args[i+1]
			i += 2
		} else {
			result.kw[name] = zygo.SexpNull
			i++
		}
	}
	return result
}

// float returns the keyword value as a float32, or def when absent.
func (a kwArgs) float(name string, def float32) (float32, error) {
	v, ok := a.get(name)
	if !ok {
		return def, nil
	}
	f, err := toFloat32(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return f, nil
}

func (a kwArgs) boolean(name string, def bool) (bool, error) {
	v, ok := a.get(name)
	if !ok {
		return def, nil
	}
	b, err := toBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", name, err)
	}
	return b, nil
}

// bounded returns the keyword value as an int32 in [lo, hi], or def when
// absent.
func (a kwArgs) bounded(name string, def, lo, hi int32) (int32, error) {
	n, err := a.integer(name, int64(def))
	if err != nil {
		return 0, err
	}
	if n < int64(lo) || n > int64(hi) {
		return 0, fmt.Errorf("%s: must be in [%d,%d], got %d", name, lo, hi, n)
	}
	return int32(n), nil
}

func (a kwArgs) integer(name string, def int64) (int64, error) {
	v, ok := a.get(name)
	if !ok {
		return def, nil
	}
	n, err := toInt64(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return n, nil
}

// size reads a radius or diameter given as :<r> or :<d>. The bool reports
// whether either was given; giving both is an error.
func (a kwArgs) size(r, d string) (scad.Size, bool, error) {
	rv, hasR := a.get(r)
	dv, hasD := a.get(d)
	switch {
	case hasR && hasD:
		return nil, false, fmt.Errorf("both :%s and :%s given", r, d)
	case hasR:
		f, err := toFloat32(rv)
		if err != nil {
			return nil, false, fmt.Errorf("%s: %w", r, err)
		}
		return scad.Radius(f), true, nil
	case hasD:
		f, err := toFloat32(dv)
		if err != nil {
			return nil, false, fmt.Errorf("%s: %w", d, err)
		}
		return scad.Diameter(f), true, nil
	}
	return nil, false, nil
}

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, sexpString(s))
}

func toFloat32(s zygo.Sexp) (float32, error) {
	f, err := toFloat64(s)
	return float32(f), err
}

// toInt64 accepts integers and integral floats within the int64 range.
func toInt64(s zygo.Sexp) (int64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return v.Val, nil
	case *zygo.SexpFloat:
		if v.Val == math.Trunc(v.Val) && math.Abs(v.Val) < 1<<63 {
			return int64(v.Val), nil
		}
	}
	return 0, fmt.Errorf("expected integer, got %T (%s)", s, sexpString(s))
}

func toBool(s zygo.Sexp) (bool, error) {
	if b, ok := s.(*zygo.SexpBool); ok {
		return b.Val, nil
	}
	return false, fmt.Errorf("expected true or false, got %T (%s)", s, sexpString(s))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, sexpString(s))
}

// sexpListToSlice converts a SexpPair (Lisp list) or SexpArray to a Go slice.
func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected list or array, got %T", s)
}

// isSequence reports whether s is an array or a non-empty list.
func isSequence(s zygo.Sexp) bool {
	switch s.(type) {
	case *zygo.SexpArray, *zygo.SexpPair:
		return true
	}
	return false
}

// toFloats reads a sequence of numbers.
func toFloats(s zygo.Sexp) ([]float32, error) {
	items, err := sexpListToSlice(s)
	if err != nil {
		return nil, err
	}
	out := make([]float32, len(items))
	for i, item := range items {
		f, err := toFloat32(item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = f
	}
	return out, nil
}

// toVec reads a vector of exactly n numbers.
func toVec(s zygo.Sexp, n int) ([]float32, error) {
	fs, err := toFloats(s)
	if err != nil {
		return nil, err
	}
	if len(fs) != n {
		return nil, fmt.Errorf("expected %d numbers, got %d", n, len(fs))
	}
	return fs, nil
}

func toVec2(s zygo.Sexp) (scad.Vec2, error) {
	fs, err := toVec(s, 2)
	if err != nil {
		return scad.Vec2{}, err
	}
	return scad.V2(fs[0], fs[1]), nil
}

func toVec3(s zygo.Sexp) (scad.Vec3, error) {
	fs, err := toVec(s, 3)
	if err != nil {
		return scad.Vec3{}, err
	}
	return scad.V3(fs[0], fs[1], fs[2]), nil
}

// toVec2List reads a sequence of 2D points.
func toVec2List(s zygo.Sexp) ([]scad.Vec2, error) {
	items, err := sexpListToSlice(s)
	if err != nil {
		return nil, err
	}
	out := make([]scad.Vec2, len(items))
	for i, item := range items {
		v, err := toVec2(item)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

func toVec3List(s zygo.Sexp) ([]scad.Vec3, error) {
	items, err := sexpListToSlice(s)
	if err != nil {
		return nil, err
	}
	out := make([]scad.Vec3, len(items))
	for i, item := range items {
		v, err := toVec3(item)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// toInts reads a sequence of integer indices.
func toInts(s zygo.Sexp) ([]int, error) {
	items, err := sexpListToSlice(s)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(items))
	for i, item := range items {
		n, err := toInt64(item)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = int(n)
	}
	return out, nil
}

// toIntLists reads a sequence of index sequences.
func toIntLists(s zygo.Sexp) ([][]int, error) {
	items, err := sexpListToSlice(s)
	if err != nil {
		return nil, err
	}
	out := make([][]int, len(items))
	for i, item := range items {
		ns, err := toInts(item)
		if err != nil {
			return nil, fmt.Errorf("list %d: %w", i, err)
		}
		out[i] = ns
	}
	return out, nil
}

func sexpString(s zygo.Sexp) string {
	if s == nil {
		return "nil"
	}
	return s.SexpString(nil)
}
