// Package defines resolves name=expression pairs into numeric globals for
// parametric scripts. Expressions are evaluated with expr-lang/expr and
// may refer to other defines regardless of the order they are given in.
package defines

import (
	"fmt"
	"sort"
	"strings"

	"github.com/expr-lang/expr"
)

// Define is one name=expr pair.
type Define struct {
	Name string
	Expr string
}

// Parse splits "name=expr".
func Parse(s string) (Define, error) {
	name, src, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	src = strings.TrimSpace(src)
	if !ok || name == "" || src == "" {
		return Define{}, fmt.Errorf("define %q: expected name=expr", s)
	}
	return Define{Name: name, Expr: src}, nil
}

// FromMap returns the entries of m sorted by name.
func FromMap(m map[string]string) []Define {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]Define, len(names))
	for i, name := range names {
		out[i] = Define{Name: name, Expr: m[name]}
	}
	return out
}

// Resolve evaluates defs. A later define with the same name replaces an
// earlier one. Each pass evaluates every define whose references are
// already known; resolution fails when a pass makes no progress.
func Resolve(defs []Define) (map[string]float64, error) {
	latest := make(map[string]int, len(defs))
	for i, d := range defs {
		latest[d.Name] = i
	}
	var pending []Define
	for i, d := range defs {
		if latest[d.Name] == i {
			pending = append(pending, d)
		}
	}

	values := make(map[string]float64, len(pending))
	for len(pending) > 0 {
		env := make(map[string]any, len(values))
		for k, v := range values {
			env[k] = v
		}

		var next []Define
		var firstErr error
		for _, d := range pending {
			v, err := eval(d, env)
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				next = append(next, d)
				continue
			}
			values[d.Name] = v
		}
		if len(next) == len(pending) {
			return nil, firstErr
		}
		pending = next
	}
	return values, nil
}

func eval(d Define, env map[string]any) (float64, error) {
	prg, err := expr.Compile(d.Expr, expr.Env(env))
	if err != nil {
		return 0, fmt.Errorf("define %s: %w", d.Name, err)
	}
	out, err := expr.Run(prg, env)
	if err != nil {
		return 0, fmt.Errorf("define %s: %w", d.Name, err)
	}
	f, err := toFloat(out)
	if err != nil {
		return 0, fmt.Errorf("define %s: %w", d.Name, err)
	}
	return f, nil
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("expected a number, got %T (%v)", v, v)
}
