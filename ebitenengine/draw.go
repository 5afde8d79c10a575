package ebitenengine

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/phanxgames/sprig"
)

// defaultColor is used when a node has no parsable color.
var defaultColor = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// whitePixel is a 1x1 white image scaled to draw solid rectangles. Created on
// first draw so the package can be used without a graphics context.
var whitePixel *ebiten.Image

func solidImage() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// drawNode draws n and its subtree depth-first. Siblings draw in DrawOrder so
// later ones land on top.
func (e *Engine) drawNode(dst *ebiten.Image, n *sprig.RetainedNode, parent [6]float64, parentAlpha float64) {
	world := multiplyAffine(parent, localTransform(n))
	alpha := worldAlpha(n, parentAlpha)
	if alpha <= 0 {
		return
	}
	if n.IsText() {
		e.drawText(dst, n, world, alpha)
	} else {
		drawRect(dst, n, world, alpha)
	}
	for _, c := range n.DrawOrder() {
		e.drawNode(dst, c, world, alpha)
	}
}

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

// drawRect fills the node's width x height box. Nodes without a size or with
// a transparent color draw nothing.
func drawRect(dst *ebiten.Image, n *sprig.RetainedNode, world [6]float64, alpha float64) {
	w := n.Float("width", 0)
	h := n.Float("height", 0)
	if w <= 0 || h <= 0 {
		return
	}
	c := nodeColor(n)
	if c.A == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Concat(geoM(world))
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(float32(alpha))
	dst.DrawImage(solidImage(), op)
}

// drawText draws the node's text with its fontFamily and fontSize.
func (e *Engine) drawText(dst *ebiten.Image, n *sprig.RetainedNode, world [6]float64, alpha float64) {
	v, _ := n.Get("text")
	s := textString(v)
	if s == "" {
		return
	}
	family := ""
	if f, ok := n.Get("fontFamily"); ok {
		family, _ = f.(string)
	}
	face, err := e.fonts.face(family, n.Float("fontSize", defaultFontSize))
	if err != nil {
		sprig.Logger().Warn("ebitenengine: no font face", "family", family, "error", err)
		return
	}
	op := &text.DrawOptions{}
	op.LineSpacing = lineHeight(face)
	op.GeoM.Concat(geoM(world))
	op.ColorScale.ScaleWithColor(nodeColor(n))
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(dst, s, face, op)
}
