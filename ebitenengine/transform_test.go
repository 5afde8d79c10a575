package ebitenengine

import (
	"math"
	"testing"

	"github.com/phanxgames/sprig"
)

const epsilon = 1e-9

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

func primitive(t *testing.T, props sprig.Props) *sprig.RetainedNode {
	t.Helper()
	p, err := sprig.NewRetainedEngine().CreateNode(nil, props)
	if err != nil {
		t.Fatal(err)
	}
	return p.(*sprig.RetainedNode)
}

func TestLocalTransformIdentity(t *testing.T) {
	got := localTransform(primitive(t, sprig.Props{}))
	assertMatrix(t, "identity", got, identityTransform)
}

func TestLocalTransformTranslation(t *testing.T) {
	got := localTransform(primitive(t, sprig.Props{"x": 10, "y": 20}))
	assertMatrix(t, "translation", got, [6]float64{1, 0, 0, 1, 10, 20})
}

func TestLocalTransformScale(t *testing.T) {
	got := localTransform(primitive(t, sprig.Props{"scale": 2}))
	assertMatrix(t, "scale", got, [6]float64{2, 0, 0, 2, 0, 0})
}

func TestLocalTransformRotation90(t *testing.T) {
	got := localTransform(primitive(t, sprig.Props{"rotation": math.Pi / 2}))
	// cos(90)=0, sin(90)=1 → a=0, b=1, c=-1, d=0
	assertMatrix(t, "rot90", got, [6]float64{0, 1, -1, 0, 0, 0})
}

func TestLocalTransformPivot(t *testing.T) {
	got := localTransform(primitive(t, sprig.Props{"x": 100, "y": 200, "pivotX": 16, "pivotY": 16}))
	// T(100,200) * T(-16,-16) = [1,0,0,1, 84, 184]
	assertMatrix(t, "pivot", got, [6]float64{1, 0, 0, 1, 84, 184})
}

func TestLocalTransformPivotRotation(t *testing.T) {
	n := primitive(t, sprig.Props{"x": 50, "y": 50, "pivotX": 10, "pivotY": 0, "rotation": math.Pi})
	m := localTransform(n)
	// The pivot itself lands on (x, y).
	px, py := transformPoint(m, 10, 0)
	if math.Abs(px-50) > 1e-9 || math.Abs(py-50) > 1e-9 {
		t.Errorf("pivot maps to (%v, %v), want (50, 50)", px, py)
	}
	// A point 10px right of the pivot ends up 10px left after a half turn.
	qx, _ := transformPoint(m, 20, 0)
	if math.Abs(qx-40) > 1e-9 {
		t.Errorf("qx = %v, want 40", qx)
	}
}

func TestMultiplyAffineComposesParentTranslation(t *testing.T) {
	parent := [6]float64{2, 0, 0, 2, 100, 0}
	child := [6]float64{1, 0, 0, 1, 5, 5}
	got := multiplyAffine(parent, child)
	assertMatrix(t, "composed", got, [6]float64{2, 0, 0, 2, 110, 10})
}

func TestGeoMMatchesAffine(t *testing.T) {
	m := [6]float64{0, 1, -1, 0, 30, 40}
	g := geoM(m)
	gx, gy := g.Apply(3, 4)
	wx, wy := transformPoint(m, 3, 4)
	if math.Abs(gx-wx) > 1e-9 || math.Abs(gy-wy) > 1e-9 {
		t.Errorf("GeoM.Apply = (%v, %v), want (%v, %v)", gx, gy, wx, wy)
	}
}

func TestWorldAlpha(t *testing.T) {
	tests := []struct {
		alpha  any
		parent float64
		want   float64
	}{
		{nil, 1, 1},
		{0.5, 1, 0.5},
		{0.5, 0.5, 0.25},
		{2, 1, 1},
		{-1, 1, 0},
	}
	for _, tt := range tests {
		props := sprig.Props{}
		if tt.alpha != nil {
			props["alpha"] = tt.alpha
		}
		if got := worldAlpha(primitive(t, props), tt.parent); math.Abs(got-tt.want) > epsilon {
			t.Errorf("worldAlpha(%v, %v) = %v, want %v", tt.alpha, tt.parent, got, tt.want)
		}
	}
}
