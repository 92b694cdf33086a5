package scad

import (
	"math"
	"strconv"
	"strings"
	"testing"
)

func TestValueCode(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"zero vec3", V3(0, 0, 0), "[0,0,0]"},
		{"negative vec3", V3(-5, 0, 0), "[-5,0,0]"},
		{"vec3", V3(1, 2, 3), "[1,2,3]"},
		{"vec2 fraction", V2(1, 3.3), "[1,3.3]"},
		{"vec4", V4(0, 1, 1, 0.5), "[0,1,1,0.5]"},
		{"int list", List[Int]{1, 2, 3, 4, 5, 6}, "[1,2,3,4,5,6,]"},
		{"single element list", List[Int]{7}, "[7,]"},
		{"empty list", List[Int]{}, "[]"},
		{"nil list", List[Int](nil), "[]"},
		{"nested list", List[List[Int]]{{0, 1}, {}}, "[[0,1,],[],]"},
		{"vec2 list", List[Vec2]{V2(1, 1)}, "[[1,1],]"},
		{"float one", Float(1), "1"},
		{"float fraction", Float(3.3), "3.3"},
		{"float negative", Float(-5), "-5"},
		{"float small", Float(1e-7), "0.0000001"},
		{"float large", Float(1e20), "100000000000000000000"},
		{"int", Int(-42), "-42"},
		{"uint", Uint(18446744073709551615), "18446744073709551615"},
		{"true", Bool(true), "true"},
		{"false", Bool(false), "false"},
		{"string", Str("hello_world.stl"), `"hello_world.stl"`},
		{"string escapes", Str(`a "b" \c`), `"a \"b\" \\c"`},
		{"string newline", Str("a\nb"), `"a\nb"`},
		{"undef", Undef{}, "undef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Code(tt.v); got != tt.want {
				t.Errorf("Code(%#v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

func TestFloatRoundTrip(t *testing.T) {
	values := []float32{
		0, 1, -1, 0.1, 0.2, 0.3, 3.3, -5, 1.5, 2.25, 100, 1234.5678,
		1e-3, 1e-7, 1e10, 3.4028235e38, 1.4e-45, math.Pi, -math.E, 0.04, 1.04,
	}
	for _, v := range values {
		s := Code(Float(v))
		got, err := strconv.ParseFloat(s, 32)
		if err != nil {
			t.Errorf("Code(%v) = %q does not parse: %v", v, s, err)
			continue
		}
		if float32(got) != v {
			t.Errorf("Code(%v) = %q reads back as %v", v, s, float32(got))
		}
		if strings.ContainsAny(s, "eE") {
			t.Errorf("Code(%v) = %q uses exponent form", v, s)
		}
		if strings.Contains(s, ".") && strings.HasSuffix(s, "0") {
			t.Errorf("Code(%v) = %q has trailing zeros", v, s)
		}
		if strings.HasSuffix(s, ".") {
			t.Errorf("Code(%v) = %q ends in a decimal point", v, s)
		}
	}
}

func TestFloatNonFinite(t *testing.T) {
	tests := []struct {
		v    float32
		want string
	}{
		{float32(math.Inf(1)), "(1/0)"},
		{float32(math.Inf(-1)), "(-1/0)"},
		{float32(math.NaN()), "(0/0)"},
	}
	for _, tt := range tests {
		if got := Code(Float(tt.v)); got != tt.want {
			t.Errorf("Code(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
	if got := Code(V3(0, float32(math.Inf(1)), 0)); got != "[0,(1/0),0]" {
		t.Errorf("vector with Inf = %q", got)
	}
}

func TestListTrailingComma(t *testing.T) {
	for n := 1; n <= 5; n++ {
		l := make(List[Int], n)
		s := Code(l)
		if !strings.HasSuffix(s, ",]") {
			t.Errorf("list of %d = %q, want trailing ,]", n, s)
		}
		if c := strings.Count(s, ","); c != n {
			t.Errorf("list of %d has %d commas, want %d", n, c, n)
		}
	}
}

func TestInUnitRange(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
		got  bool
	}{
		{"zero", true, V3(0, 0, 0).InUnitRange()},
		{"one", true, V3(1, 1, 1).InUnitRange()},
		{"above", false, V3(1.1, 0, 0).InUnitRange()},
		{"below", false, V3(0, -0.01, 0).InUnitRange()},
		{"nan", false, V3(0, 0, float32(math.NaN())).InUnitRange()},
		{"alpha", true, V4(0, 1, 1, 0.5).InUnitRange()},
		{"alpha above", false, V4(0, 0, 0, 2).InUnitRange()},
	}
	for _, tt := range tests {
		if tt.got != tt.ok {
			t.Errorf("%s: InUnitRange = %v, want %v", tt.name, tt.got, tt.ok)
		}
	}
}
