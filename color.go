package sprig

import (
	"image/color"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ColorClear is fully transparent black, the color of the scene root.
var ColorClear = color.NRGBA{}

// ParseColor converts a color property value into a straight-alpha color.
//
// Accepted forms:
//   - numbers in 0xRRGGBBAA layout (any Go numeric kind, including JSON float64)
//   - CSS color names, case-insensitive ("navy", "darkGray"), plus "clear" and
//     "transparent"
//   - hex strings "#rgb", "#rrggbb" and "#rrggbbaa"
//   - color.Color values
func ParseColor(v any) (color.NRGBA, bool) {
	switch c := v.(type) {
	case nil:
		return color.NRGBA{}, false
	case color.NRGBA:
		return c, true
	case color.Color:
		return color.NRGBAModel.Convert(c).(color.NRGBA), true
	case string:
		return parseColorString(c)
	}
	f, ok := toFloat(v)
	if !ok || f < 0 || f > 0xFFFFFFFF {
		return color.NRGBA{}, false
	}
	return unpackRGBA(uint32(f)), true
}

// PackColor returns c in 0xRRGGBBAA layout.
func PackColor(c color.NRGBA) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

func unpackRGBA(v uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
}

func parseColorString(s string) (color.NRGBA, bool) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s)
	}
	name := strings.ToLower(s)
	switch name {
	case "clear", "transparent":
		return ColorClear, true
	}
	if c, ok := colornames.Map[name]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, true
	}
	return color.NRGBA{}, false
}

func parseHexColor(s string) (color.NRGBA, bool) {
	alpha := uint8(0xFF)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, false
		}
		alpha = uint8(a)
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, false
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, true
}
