package pigment

import (
	"math"
	"testing"
)

// Verify at compile time that the leaf types implement Source.
var (
	_ Source = Color{}
	_ Source = (*Image)(nil)
)

func absDiff(a, b float64) float64 {
	return math.Abs(a - b)
}

func colorsClose(a, b Color, tol float64) bool {
	return absDiff(a.R, b.R) <= tol &&
		absDiff(a.G, b.G) <= tol &&
		absDiff(a.B, b.B) <= tol &&
		absDiff(a.A, b.A) <= tol
}

func TestColor_Overlay(t *testing.T) {
	tests := []struct {
		name      string
		base, top Color
		want      Color
	}{
		{
			name: "opaque top replaces rgb",
			base: Color{1, 0, 0, 1},
			top:  Color{0, 0, 1, 1},
			want: Color{0, 0, 1, 1},
		},
		{
			name: "half alpha top mixes halfway",
			base: Color{1, 0, 0, 1},
			top:  Color{0, 0, 1, 0.5},
			want: Color{0.5, 0, 0.5, 1},
		},
		{
			name: "transparent top leaves base",
			base: Color{0.2, 0.4, 0.6, 0.8},
			top:  Color{},
			want: Color{0.2, 0.4, 0.6, 0.8},
		},
		{
			name: "alpha is max not porter-duff",
			base: Color{0, 0, 0, 0.3},
			top:  Color{1, 1, 1, 0.2},
			want: Color{0.2, 0.2, 0.2, 0.3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.base.Overlay(tt.top)
			if !colorsClose(got, tt.want, 1e-12) {
				t.Errorf("Overlay() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// Overlay must equal a + t*(b-a) per rgb channel with t = top alpha, and
// max for the alpha channel itself, over arbitrary channel values.
func TestColor_OverlayFormula(t *testing.T) {
	base := Color{0.13, 0.57, 0.91, 0.42}
	top := Color{0.88, 0.04, 0.33, 0.66}

	got := base.Overlay(top)
	want := Color{
		R: base.R + top.A*(top.R-base.R),
		G: base.G + top.A*(top.G-base.G),
		B: base.B + top.A*(top.B-base.B),
		A: math.Max(base.A, top.A),
	}
	if got != want {
		t.Errorf("Overlay() = %+v, want %+v", got, want)
	}
}

func TestColor_LerpEndpoints(t *testing.T) {
	a := Color{0.1, 0.2, 0.3, 0.4}
	b := Color{0.9, 0.8, 0.7, 0.6}

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(b, 0) = %+v, want %+v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(b, 1) = %+v, want %+v", got, b)
	}
	mid := a.Lerp(b, 0.5)
	if !colorsClose(mid, Color{0.5, 0.5, 0.5, 0.5}, 1e-12) {
		t.Errorf("Lerp(b, 0.5) = %+v", mid)
	}
}

func TestColor_Bytes(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want [4]uint8
	}{
		{"black transparent", Color{}, [4]uint8{0, 0, 0, 0}},
		{"white opaque", Color{1, 1, 1, 1}, [4]uint8{255, 255, 255, 255}},
		// 0.5*255 = 127.5 truncates to 127: no rounding.
		{"half truncates", Color{0.5, 0.5, 0.5, 0.5}, [4]uint8{127, 127, 127, 127}},
		{"just below one", Color{0.999, 0, 0, 1}, [4]uint8{254, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Bytes(); got != tt.want {
				t.Errorf("Bytes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColor_FromUint32(t *testing.T) {
	tests := []struct {
		name string
		v    uint32
		want Color
	}{
		{"opaque red", 0xFF0000FF, Color{1, 0, 0, 1}},
		{"opaque green", 0x00FF00FF, Color{0, 1, 0, 1}},
		{"transparent blue", 0x0000FF00, Color{0, 0, 1, 0}},
		{"zero", 0, Color{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColorFromUint32(tt.v); got != tt.want {
				t.Errorf("ColorFromUint32(%#x) = %+v, want %+v", tt.v, got, tt.want)
			}
		})
	}
}

func TestColor_FromFloats(t *testing.T) {
	// Channels pass through untouched, including values outside [0, 1].
	tests := []struct {
		name       string
		r, g, b, a float64
		want       Color
	}{
		{"opaque red", 1, 0, 0, 1, Color{1, 0, 0, 1}},
		{"translucent gray", 0.5, 0.5, 0.5, 0.25, Color{0.5, 0.5, 0.5, 0.25}},
		{"out of range", 2.5, -1, 0.75, 1.5, Color{2.5, -1, 0.75, 1.5}},
		{"zero", 0, 0, 0, 0, Color{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColorFromFloats(tt.r, tt.g, tt.b, tt.a); got != tt.want {
				t.Errorf("ColorFromFloats(%v, %v, %v, %v) = %+v, want %+v",
					tt.r, tt.g, tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestColor_ByteRoundtrip(t *testing.T) {
	in := [4]uint8{12, 200, 3, 254}
	c := ColorFromBytes(in[0], in[1], in[2], in[3])
	if got := c.Bytes(); got != in {
		t.Errorf("roundtrip: %v -> %+v -> %v", in, c, got)
	}
}

func TestColor_Visibility(t *testing.T) {
	if Transparent.IsVisible() {
		t.Error("Transparent.IsVisible() = true")
	}
	if !Red.IsVisible() {
		t.Error("Red.IsVisible() = false")
	}
	if Red.IsTransparent() {
		t.Error("opaque red reported transparent")
	}
	if !(Color{1, 0, 0, 0.99}).IsTransparent() {
		t.Error("0.99 alpha not reported transparent")
	}
}

func TestColor_Arithmetic(t *testing.T) {
	a := Color{0.25, 0.5, 0.75, 1}
	b := Color{0.5, 0.5, 0.5, 0.5}

	if got, want := a.Add(b), (Color{0.75, 1, 1.25, 1.5}); !colorsClose(got, want, 1e-12) {
		t.Errorf("Add() = %+v, want %+v", got, want)
	}
	if got, want := a.Mul(b), (Color{0.125, 0.25, 0.375, 0.5}); !colorsClose(got, want, 1e-12) {
		t.Errorf("Mul() = %+v, want %+v", got, want)
	}
	if got, want := a.Scale(2), (Color{0.5, 1, 1.5, 2}); !colorsClose(got, want, 1e-12) {
		t.Errorf("Scale(2) = %+v, want %+v", got, want)
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want Color
	}{
		{"rrggbb", "#ff0000", Red},
		{"no hash", "00ff00", Green},
		{"short", "#00f", Blue},
		{"with alpha", "#ffffff80", Color{1, 1, 1, float64(0x80) / 255}},
		{"invalid", "nope", Color{A: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hex(tt.hex); !colorsClose(got, tt.want, 1e-9) {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestColor_AsSource(t *testing.T) {
	c := Color{0.1, 0.2, 0.3, 0.4}
	for _, pos := range [][2]int32{{0, 0}, {-100, 50}, {math.MaxInt32, math.MinInt32}} {
		if got := c.Sample(pos[0], pos[1]); got != c {
			t.Errorf("Sample(%d, %d) = %+v, want %+v", pos[0], pos[1], got, c)
		}
	}
	if _, ok := c.Borders(); ok {
		t.Error("constant color reported borders")
	}
}
