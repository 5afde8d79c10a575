package sprig

import "image/color"

// Props is a bag of visual properties handed to the render engine. Keys follow
// the engine's own property names (x, y, width, height, color, alpha, zIndex,
// text, fontSize, ...). Values are kept as given; use the typed readers to
// normalize them.
type Props map[string]any

// Has reports whether name is present, even with a nil value.
func (p Props) Has(name string) bool {
	_, ok := p[name]
	return ok
}

// Clone returns a shallow copy. Cloning a nil Props yields nil.
func (p Props) Clone() Props {
	if p == nil {
		return nil
	}
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Float reads name as a float64. Any Go integer or float kind is accepted.
func (p Props) Float(name string) (float64, bool) {
	return toFloat(p[name])
}

// FloatOr is Float with a fallback for missing or non-numeric values.
func (p Props) FloatOr(name string, def float64) float64 {
	if f, ok := p.Float(name); ok {
		return f
	}
	return def
}

// String reads name as a string.
func (p Props) String(name string) (string, bool) {
	s, ok := p[name].(string)
	return s, ok
}

// Color reads name with ParseColor.
func (p Props) Color(name string) (color.NRGBA, bool) {
	v, ok := p[name]
	if !ok {
		return color.NRGBA{}, false
	}
	return ParseColor(v)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
