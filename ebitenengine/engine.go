package ebitenengine

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/sprig"
)

// Config holds window and loop settings. Zero fields take the defaults noted
// on each field.
type Config struct {
	Title  string // window title, default "sprig"
	Width  int    // logical screen width, default 1280
	Height int    // logical screen height, default 720
	TPS    int    // ticks per second, default 60

	ShowFPS   bool
	Resizable bool

	// ClearColor fills the screen before each frame. Nil leaves ebiten's
	// default black.
	ClearColor color.Color

	// ScreenshotDir is where Screenshot writes PNGs, default "screenshots".
	ScreenshotDir string
}

func (c Config) withDefaults() Config {
	if c.Title == "" {
		c.Title = "sprig"
	}
	if c.Width <= 0 {
		c.Width = 1280
	}
	if c.Height <= 0 {
		c.Height = 720
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = "screenshots"
	}
	return c
}

// Engine is a sprig.Engine that draws its primitives in an Ebitengine window.
// It implements ebiten.Game and sprig.ScriptHost.
//
// Everything that touches the scene must run on the game loop: from key
// listeners, from the script, or through Enqueue.
type Engine struct {
	*sprig.RetainedEngine

	cfg   Config
	keys  *sprig.KeyBus
	tasks sprig.TaskQueue

	injected sprig.KeyQueue
	script   *sprig.ScriptRunner

	fonts           fontRegistry
	fps             fpsOverlay
	screenshotQueue []string

	pressed []ebiten.Key
	quit    bool
}

// New returns an engine for cfg. No window is opened until Run.
func New(cfg Config) *Engine {
	return &Engine{
		RetainedEngine: sprig.NewRetainedEngine(),
		cfg:            cfg.withDefaults(),
		keys:           sprig.NewKeyBus(),
	}
}

// Config returns the effective configuration, defaults applied.
func (e *Engine) Config() Config {
	return e.cfg
}

// Keys returns the key source fed from the window's keyboard. Pass it to
// sprig.Context.Init.
func (e *Engine) Keys() *sprig.KeyBus {
	return e.keys
}

// Enqueue schedules fn to run at the start of the next tick. Safe to call from
// any goroutine.
func (e *Engine) Enqueue(fn func()) {
	e.tasks.Enqueue(fn)
}

// SetScript attaches a key script that runs one step per tick. When the
// script finishes the window stays open unless the script quits.
func (e *Engine) SetScript(r *sprig.ScriptRunner) {
	e.script = r
}

// InjectKey queues a synthetic key press, delivered on a later tick.
func (e *Engine) InjectKey(raw string) {
	e.injected.Push(raw)
}

// PendingKeys reports how many injected keys are still queued.
func (e *Engine) PendingKeys() int {
	return e.injected.Len()
}

// Quit ends Run after the current tick.
func (e *Engine) Quit() {
	e.quit = true
}

// Run opens the window and blocks until it is closed or Quit is called.
func (e *Engine) Run() error {
	ebiten.SetWindowTitle(e.cfg.Title)
	ebiten.SetWindowSize(e.cfg.Width, e.cfg.Height)
	ebiten.SetTPS(e.cfg.TPS)
	if e.cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if err := ebiten.RunGame(e); err != nil {
		return fmt.Errorf("ebitenengine: %w", err)
	}
	return nil
}

// Update implements ebiten.Game. It forwards newly pressed keys to the key bus
// and then advances the engine by one tick.
func (e *Engine) Update() error {
	e.pressed = inpututil.AppendJustPressedKeys(e.pressed[:0])
	for _, k := range e.pressed {
		e.keys.Dispatch(rawKeyName(k))
	}
	e.tick(1 / float32(e.cfg.TPS))
	if e.quit {
		return ebiten.Termination
	}
	return nil
}

// tick runs queued tasks, the script and one injected key, then advances
// animations by dt seconds.
func (e *Engine) tick(dt float32) {
	e.tasks.Drain()
	if e.script != nil {
		e.script.Step(e)
	}
	if k, ok := e.injected.Pop(); ok {
		e.keys.Dispatch(k)
	}
	e.Advance(dt)
	if e.cfg.ShowFPS {
		e.fps.update(dt)
	}
}

// Draw implements ebiten.Game.
func (e *Engine) Draw(screen *ebiten.Image) {
	if e.cfg.ClearColor != nil {
		screen.Fill(e.cfg.ClearColor)
	}
	e.drawNode(screen, e.RootNode(), identityTransform, 1)
	if e.cfg.ShowFPS {
		e.fps.draw(screen)
	}
	e.flushScreenshots(screen)
}

// Layout implements ebiten.Game with a fixed logical size.
func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.cfg.Width, e.cfg.Height
}
