package sprig

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want color.NRGBA
	}{
		{"packed white", 0xFFFFFFFF, color.NRGBA{255, 255, 255, 255}},
		{"packed json float", float64(0xFF0000FF), color.NRGBA{255, 0, 0, 255}},
		{"packed uint32 half alpha", uint32(0x00FF0080), color.NRGBA{0, 255, 0, 128}},
		{"zero is clear", 0, color.NRGBA{}},
		{"named", "navy", color.NRGBA{0, 0, 128, 255}},
		{"named mixed case", "DarkGray", color.NRGBA{169, 169, 169, 255}},
		{"clear", "clear", color.NRGBA{}},
		{"transparent", "transparent", color.NRGBA{}},
		{"hex short", "#f00", color.NRGBA{255, 0, 0, 255}},
		{"hex long", "#0000ff", color.NRGBA{0, 0, 255, 255}},
		{"hex with alpha", "#00ff0040", color.NRGBA{0, 255, 0, 0x40}},
		{"color.Color", color.RGBA{R: 10, G: 20, B: 30, A: 255}, color.NRGBA{10, 20, 30, 255}},
		{"nrgba passthrough", color.NRGBA{1, 2, 3, 4}, color.NRGBA{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseColor(tt.in)
			if !ok {
				t.Fatalf("ParseColor(%v) failed", tt.in)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorRejects(t *testing.T) {
	for _, in := range []any{nil, "no-such-color", "#12", "#zzzzzz", "#ff0000zz", -1, 1e12, true} {
		if _, ok := ParseColor(in); ok {
			t.Errorf("ParseColor(%v) should fail", in)
		}
	}
}

func TestPackColorRoundTrip(t *testing.T) {
	c := color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0x78}
	if got := PackColor(c); got != 0x12345678 {
		t.Errorf("PackColor = %#x, want 0x12345678", got)
	}
	if got := unpackRGBA(0x12345678); got != c {
		t.Errorf("unpackRGBA = %v, want %v", got, c)
	}
}

func TestPropsColor(t *testing.T) {
	p := Props{"color": "red", "bad": "nope"}
	if c, ok := p.Color("color"); !ok || c != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("Color(color) = %v, %v", c, ok)
	}
	if _, ok := p.Color("bad"); ok {
		t.Error("Color(bad) should fail")
	}
	if _, ok := p.Color("missing"); ok {
		t.Error("Color(missing) should fail")
	}
}
