package ebitenengine

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/sprig"
)

const (
	// DefaultFontFamily names the built-in Go Regular face. Text nodes without
	// a fontFamily, or naming an unregistered one, use it.
	DefaultFontFamily = "sans"

	defaultFontSize = 32
)

type faceKey struct {
	family string
	size   float64
}

// fontRegistry holds parsed font sources by family and caches one face per
// family and size.
type fontRegistry struct {
	sources map[string]*text.GoTextFaceSource
	faces   map[faceKey]*text.GoTextFace
}

func (r *fontRegistry) register(family string, ttf []byte) error {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return fmt.Errorf("ebitenengine: parse font %q: %w", family, err)
	}
	if r.sources == nil {
		r.sources = make(map[string]*text.GoTextFaceSource)
	}
	r.sources[family] = source
	for k := range r.faces {
		if k.family == family {
			delete(r.faces, k)
		}
	}
	return nil
}

// face returns the face for family at size, falling back to the default
// family when family is empty or unknown.
func (r *fontRegistry) face(family string, size float64) (*text.GoTextFace, error) {
	if _, ok := r.sources[family]; !ok {
		if family != "" {
			sprig.Logger().Debug("ebitenengine: unknown font family, using default", "family", family)
		}
		family = DefaultFontFamily
		if _, ok := r.sources[family]; !ok {
			if err := r.register(family, goregular.TTF); err != nil {
				return nil, err
			}
		}
	}
	if size <= 0 {
		size = defaultFontSize
	}
	key := faceKey{family: family, size: size}
	if f, ok := r.faces[key]; ok {
		return f, nil
	}
	f := &text.GoTextFace{Source: r.sources[family], Size: size}
	if r.faces == nil {
		r.faces = make(map[faceKey]*text.GoTextFace)
	}
	r.faces[key] = f
	return f, nil
}

// RegisterFont makes a TrueType or OpenType font available to text nodes
// under family. Registering a family again replaces it.
func (e *Engine) RegisterFont(family string, ttf []byte) error {
	return e.fonts.register(family, ttf)
}

// MeasureText returns the size s would occupy when drawn with family at size.
func (e *Engine) MeasureText(s, family string, size float64) (width, height float64, err error) {
	face, err := e.fonts.face(family, size)
	if err != nil {
		return 0, 0, err
	}
	w, h := text.Measure(s, face, lineHeight(face))
	return w, h, nil
}

// lineHeight computes the distance between baselines from face metrics.
func lineHeight(face *text.GoTextFace) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// textString renders a text property value. Numbers are formatted without
// trailing zeros so {"text": 42} draws "42".
func textString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
