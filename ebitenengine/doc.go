// Package ebitenengine draws a sprig scene in an Ebitengine window.
//
// The Engine embeds a [sprig.RetainedEngine]: sprig creates primitives on it
// and the engine draws the resulting tree every frame, children in insertion
// order stable-sorted by zIndex. Keyboard input is polled each tick and fed
// to the engine's [sprig.KeyBus] as raw key names ("ArrowUp", "Enter", ...).
//
// Visual properties:
//
//	x, y            position relative to the parent, in pixels
//	width, height   rectangle size; nodes without a size draw nothing
//	color           fill or text color, see sprig.ParseColor
//	alpha           opacity multiplied down the tree
//	scale, rotation uniform scale and rotation in radians
//	pivotX, pivotY  transform origin in local pixels
//	text, fontSize  text content and size, drawn with fontFamily
//
// Usage:
//
//	engine := ebitenengine.New(ebitenengine.Config{Title: "demo", Width: 1280, Height: 720})
//	ctx := sprig.NewContext()
//	ctx.Init(engine, engine.Keys())
//	scene := sprig.NewScene(ctx, tmpl, nil)
//	scene.Render()
//	log.Fatal(engine.Run())
package ebitenengine
