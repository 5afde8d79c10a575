package termengine

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/sprig"
)

// Config holds terminal settings. Zero fields take the defaults noted on each
// field.
type Config struct {
	// Screen to draw on. Nil opens the controlling terminal in Run.
	Screen tcell.Screen

	CellWidth  float64 // pixels per column, default 10
	CellHeight float64 // pixels per row, default 20
	TPS        int     // ticks per second, default 30
}

func (c Config) withDefaults() Config {
	if c.CellWidth <= 0 {
		c.CellWidth = 10
	}
	if c.CellHeight <= 0 {
		c.CellHeight = 20
	}
	if c.TPS <= 0 {
		c.TPS = 30
	}
	return c
}

// Engine is a sprig.Engine that draws its primitives on a tcell screen. It
// implements sprig.ScriptHost. Screenshots are not supported in a terminal;
// Screenshot only logs the label.
type Engine struct {
	*sprig.RetainedEngine

	cfg    Config
	screen tcell.Screen
	keys   *sprig.KeyBus
	tasks  sprig.TaskQueue

	injected sprig.KeyQueue
	script   *sprig.ScriptRunner
	quit     bool
}

// New returns an engine for cfg. The screen is initialized in Run.
func New(cfg Config) *Engine {
	cfg = cfg.withDefaults()
	return &Engine{
		RetainedEngine: sprig.NewRetainedEngine(),
		cfg:            cfg,
		screen:         cfg.Screen,
		keys:           sprig.NewKeyBus(),
	}
}

// Keys returns the key source fed from the terminal. Pass it to
// sprig.Context.Init.
func (e *Engine) Keys() *sprig.KeyBus {
	return e.keys
}

// Enqueue schedules fn to run at the start of the next tick. Safe to call from
// any goroutine.
func (e *Engine) Enqueue(fn func()) {
	e.tasks.Enqueue(fn)
}

// SetScript attaches a key script that runs one step per tick.
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

// Screenshot logs label; terminals have no frame buffer to capture.
func (e *Engine) Screenshot(label string) {
	sprig.Logger().Info("termengine: screenshot not supported", "label", label)
}

// Quit ends Run after the current tick or event.
func (e *Engine) Quit() {
	e.quit = true
}

// Run initializes the screen and runs the input and draw loop until ctx is
// done, Ctrl-C is pressed or Quit is called. The screen is restored on return.
func (e *Engine) Run(ctx context.Context) error {
	if e.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("termengine: open terminal: %w", err)
		}
		e.screen = s
	}
	if err := e.screen.Init(); err != nil {
		return fmt.Errorf("termengine: init screen: %w", err)
	}
	defer e.screen.Fini()

	events := make(chan tcell.Event, 16)
	stop := make(chan struct{})
	defer close(stop)
	go e.screen.ChannelEvents(events, stop)

	interval := time.Second / time.Duration(e.cfg.TPS)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	dt := float32(interval.Seconds())

	e.draw()
	for !e.quit {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			e.handleEvent(ev)
		case <-ticker.C:
			e.tick(dt)
			e.draw()
		}
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
}

func (e *Engine) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			e.quit = true
			return
		}
		e.keys.Dispatch(rawKeyName(ev))
	case *tcell.EventResize:
		if e.screen != nil {
			e.screen.Sync()
		}
	}
}
