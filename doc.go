// Package sprig is a declarative scene layer for retained-mode render engines.
//
// Sprig lets you describe a tree of visual nodes as a nested template, then
// materializes that template into live engine primitives, tracks the
// parent/child relationships the engine itself does not expose, finds any node
// by its key, and turns raw keyboard input into a small set of navigation
// events.
//
// # Quick start
//
// Create a [Context], initialize it with an [Engine] and a [KeySource], then
// render a [Template] through a [Scene]:
//
//	ctx := sprig.NewContext()
//	engine := ebitenengine.New(ebitenengine.Config{Width: 1900, Height: 1080})
//	if err := ctx.Init(engine, engine.Keys()); err != nil {
//		log.Fatal(err)
//	}
//
//	scene := sprig.NewScene(ctx, sprig.Template{
//		sprig.Leaf("bg", sprig.Props{"x": 0, "y": 0, "width": 1900, "height": 1080, "color": "black"}),
//		sprig.Leaf("title", sprig.Props{"x": 100, "y": 100, "text": "Hello World", "fontSize": 50}),
//		sprig.Container("row", sprig.Props{"x": 60, "y": 200},
//			sprig.Leaf("dot", sprig.Props{"width": 20, "height": 20, "color": "red"}),
//		),
//	}, nil)
//	if err := scene.Render(); err != nil {
//		log.Fatal(err)
//	}
//
// # Templates
//
// A [Template] is an ordered list of entries. A [Leaf] carries a property bag,
// a [Container] carries its own properties plus nested entries. The JSON form
// uses a reserved "props" key to mark containers:
//
//	{
//	  "bg":  {"x": 0, "y": 0, "width": 1900, "height": 1080, "color": "black"},
//	  "row": {"props": {"x": 60, "y": 200}, "dot": {"width": 20, "height": 20}}
//	}
//
// A nested object without "props" is a container missing its marker: it is
// skipped and a warning is logged.
//
// # Nodes
//
// Every entry becomes a [Node] wrapping one engine [Primitive]. Properties the
// wrapper does not define itself are forwarded to the primitive through
// [Node.Prop] and [Node.SetProp]. Entries whose props contain "text" are created
// as text primitives.
//
// # Navigation events
//
// [Scene.On] registers listeners for the semantic events up, down, left,
// right, enter, exit and back, mapped from the raw keys ArrowUp, ArrowDown,
// ArrowLeft, ArrowRight, Enter, Escape and Backspace.
//
// Sprig is single-threaded: parse, property access and dispatch all run on the
// host's event loop. Engines expose an Enqueue method to hop onto that loop.
package sprig
