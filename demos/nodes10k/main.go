// nodes10k renders 10,000 template nodes and keeps every one of them tweening
// between random positions, sizes and alphas. A stress test for parse, the
// animator and the ebiten draw path. Enter reshuffles, Escape quits.
package main

import (
	"log"
	"math/rand/v2"
	"strconv"
	"time"

	"golang.org/x/image/colornames"

	"github.com/phanxgames/sprig"
	"github.com/phanxgames/sprig/ebitenengine"
)

const (
	screenW = 1280
	screenH = 720
	count   = 10_000
)

var easings = []string{"linear", "ease-in-out", "out-quad", "in-out-sine", "out-back"}

func buildTemplate(rng *rand.Rand) sprig.Template {
	cells := make([]sprig.Entry, 0, count)
	for i := 0; i < count; i++ {
		cells = append(cells, sprig.Leaf("n"+strconv.Itoa(i), sprig.Props{
			"x":      rng.Float64() * screenW,
			"y":      rng.Float64() * screenH,
			"width":  4 + rng.Float64()*8,
			"height": 4 + rng.Float64()*8,
			"color":  colornames.Names[rng.IntN(len(colornames.Names))],
			"alpha":  0.3 + rng.Float64()*0.7,
		}))
	}
	return sprig.Template{
		sprig.Leaf("bg", sprig.Props{"width": screenW, "height": screenH, "color": "#0f0f17"}),
		sprig.Container("field", sprig.Props{}, cells...),
		sprig.Leaf("label", sprig.Props{"x": 16, "y": 680, "text": "10,000 nodes", "fontSize": 20, "zIndex": 1}),
	}
}

type stress struct {
	rng   *rand.Rand
	nodes []*sprig.Node
	anims []sprig.Animation
}

// shuffle starts a fresh tween on every node, replacing any in flight.
func (s *stress) shuffle() {
	for i, n := range s.nodes {
		if s.anims[i] != nil {
			s.anims[i].Stop()
		}
		a := n.Animate(sprig.Props{
			"x":     s.rng.Float64() * screenW,
			"y":     s.rng.Float64() * screenH,
			"alpha": 0.2 + s.rng.Float64()*0.8,
		}, sprig.AnimationConfig{
			Duration: time.Duration(800+s.rng.IntN(2200)) * time.Millisecond,
			Delay:    time.Duration(s.rng.IntN(400)) * time.Millisecond,
			Easing:   easings[s.rng.IntN(len(easings))],
		})
		a.Start()
		s.anims[i] = a
	}
}

func main() {
	rng := rand.New(rand.NewPCG(1, 2))

	engine := ebitenengine.New(ebitenengine.Config{
		Title:   "Sprig 10k Nodes",
		Width:   screenW,
		Height:  screenH,
		ShowFPS: true,
	})
	ctx := sprig.NewContext()
	if err := ctx.Init(engine, engine.Keys()); err != nil {
		log.Fatal(err)
	}

	start := time.Now()
	scene := sprig.NewScene(ctx, buildTemplate(rng), nil)
	if err := scene.Render(); err != nil {
		log.Fatal(err)
	}
	log.Printf("rendered %d nodes in %v", count, time.Since(start))

	nodes := scene.Find("field").Children()
	s := &stress{rng: rng, nodes: nodes, anims: make([]sprig.Animation, len(nodes))}
	s.shuffle()

	scene.On(sprig.EventEnter, s.shuffle)
	scene.On(sprig.EventExit, engine.Quit)

	if err := engine.Run(); err != nil {
		log.Fatal(err)
	}
}
