package ebitenengine

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/sprig"
)

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// localTransform computes the local affine matrix from the node's transform
// properties. Returns [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Translate(-pivotX, -pivotY) -> Scale -> Rotate -> Translate(x, y)
func localTransform(n *sprig.RetainedNode) [6]float64 {
	s := n.Float("scale", 1)
	sin, cos := math.Sincos(n.Float("rotation", 0))
	px := n.Float("pivotX", 0)
	py := n.Float("pivotY", 0)

	// After Scale * Translate(-pivot):
	//   a=s, b=0, c=0, d=s, tx=-px*s, ty=-py*s
	preTx := -px * s
	preTy := -py * s

	return [6]float64{
		cos * s, sin * s,
		-sin * s, cos * s,
		cos*preTx - sin*preTy + n.Float("x", 0),
		sin*preTx + cos*preTy + n.Float("y", 0),
	}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// geoM converts an affine matrix to an ebiten.GeoM.
func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// worldAlpha multiplies a node's alpha into its parent's, clamped to [0, 1].
func worldAlpha(n *sprig.RetainedNode, parentAlpha float64) float64 {
	a := parentAlpha * n.Float("alpha", 1)
	switch {
	case a < 0:
		return 0
	case a > 1:
		return 1
	}
	return a
}
