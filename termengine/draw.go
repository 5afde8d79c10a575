package termengine

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/phanxgames/sprig"
)

// frame is the accumulated placement of a node: its origin in pixels, its
// scale and its alpha.
type frame struct {
	x, y  float64
	scale float64
	alpha float64
}

var rootFrame = frame{scale: 1, alpha: 1}

// draw clears the screen and draws the whole tree.
func (e *Engine) draw() {
	if e.screen == nil {
		return
	}
	e.screen.Clear()
	e.drawNode(e.RootNode(), rootFrame)
	e.screen.Show()
}

func (e *Engine) drawNode(n *sprig.RetainedNode, parent frame) {
	s := n.Float("scale", 1)
	f := frame{
		x:     parent.x + parent.scale*(n.Float("x", 0)-n.Float("pivotX", 0)*s),
		y:     parent.y + parent.scale*(n.Float("y", 0)-n.Float("pivotY", 0)*s),
		scale: parent.scale * s,
		alpha: parent.alpha * clamp01(n.Float("alpha", 1)),
	}
	if f.alpha <= 0 {
		return
	}
	if n.IsText() {
		e.drawText(n, f)
	} else {
		e.drawRect(n, f)
	}
	for _, c := range n.DrawOrder() {
		e.drawNode(c, f)
	}
}

// cellRange converts a pixel span to the half-open range of cells it covers.
func cellRange(start, length, cell float64) (int, int) {
	return int(math.Floor(start / cell)), int(math.Ceil((start + length) / cell))
}

func (e *Engine) drawRect(n *sprig.RetainedNode, f frame) {
	w := n.Float("width", 0) * f.scale
	h := n.Float("height", 0) * f.scale
	if w <= 0 || h <= 0 {
		return
	}
	c := nodeColor(n)
	if c.A == 0 {
		return
	}
	sw, sh := e.screen.Size()
	c0, c1 := cellRange(f.x, w, e.cfg.CellWidth)
	r0, r1 := cellRange(f.y, h, e.cfg.CellHeight)
	for row := max(r0, 0); row < min(r1, sh); row++ {
		for col := max(c0, 0); col < min(c1, sw); col++ {
			_, _, under, _ := e.screen.GetContent(col, row)
			_, bg, _ := under.Decompose()
			style := tcell.StyleDefault.Background(blend(bg, c, f.alpha))
			e.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func (e *Engine) drawText(n *sprig.RetainedNode, f frame) {
	v, _ := n.Get("text")
	s := textString(v)
	if s == "" {
		return
	}
	c := nodeColor(n)
	sw, sh := e.screen.Size()
	col0 := int(math.Floor(f.x / e.cfg.CellWidth))
	row := int(math.Floor(f.y / e.cfg.CellHeight))
	for _, line := range strings.Split(s, "\n") {
		if row >= sh {
			return
		}
		if row >= 0 {
			col := col0
			for _, r := range line {
				if col >= sw {
					break
				}
				if col >= 0 {
					_, _, under, _ := e.screen.GetContent(col, row)
					_, bg, _ := under.Decompose()
					style := tcell.StyleDefault.Background(bg).Foreground(blend(bg, c, f.alpha))
					e.screen.SetContent(col, row, r, nil, style)
				}
				col++
			}
		}
		row++
	}
}

// defaultColor is used when a node has no parsable color.
var defaultColor = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

func nodeColor(n *sprig.RetainedNode) color.NRGBA {
	v, ok := n.Get("color")
	if !ok {
		return defaultColor
	}
	if c, ok := sprig.ParseColor(v); ok {
		return c
	}
	return defaultColor
}

// blend composites c at alpha over the terminal color under. The terminal's
// default color is treated as black.
func blend(under tcell.Color, c color.NRGBA, alpha float64) tcell.Color {
	a := alpha * float64(c.A) / 255
	top := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	if a < 1 {
		var base colorful.Color
		if under != tcell.ColorDefault {
			r, g, b := under.RGB()
			base = colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
		}
		top = base.BlendRgb(top, a)
	}
	r, g, b := top.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func textString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
