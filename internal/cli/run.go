package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/phanxgames/sprig"
	"github.com/phanxgames/sprig/ebitenengine"
	"github.com/phanxgames/sprig/termengine"
)

func (a *app) runCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <template.json>",
		Short: "Render a template and handle navigation keys",
		Long: `Render a template in a window (--backend ebiten) or the terminal
(--backend term). Escape quits. With --watch the template is reloaded
whenever the file changes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), args[0])
		},
	}
	f := cmd.Flags()
	f.String("backend", backendEbiten, "render backend: ebiten or term")
	f.String("title", "sprig", "window title")
	f.Int("width", 1280, "logical screen width in pixels")
	f.Int("height", 720, "logical screen height in pixels")
	f.Int("tps", 60, "ticks per second")
	f.Bool("show-fps", false, "draw an FPS overlay (ebiten)")
	f.Bool("watch", false, "reload the template when the file changes")
	f.String("script", "", "JSON key script to play back")
	f.String("screenshot-dir", "screenshots", "directory for script screenshots (ebiten)")
	f.Float64("cell-width", 10, "pixels per terminal column (term)")
	f.Float64("cell-height", 20, "pixels per terminal row (term)")
	return cmd
}

// backend is what run needs from an engine beyond sprig.Engine.
type backend interface {
	sprig.Engine
	Keys() *sprig.KeyBus
	Enqueue(fn func())
	SetScript(r *sprig.ScriptRunner)
	Quit()
}

func (a *app) newBackend() (backend, func(context.Context) error) {
	cfg := a.cfg
	switch cfg.Backend {
	case backendTerm:
		e := termengine.New(termengine.Config{
			CellWidth:  cfg.CellWidth,
			CellHeight: cfg.CellHeight,
			TPS:        cfg.TPS,
		})
		return e, e.Run
	default:
		e := ebitenengine.New(ebitenengine.Config{
			Title:         cfg.Title,
			Width:         cfg.Width,
			Height:        cfg.Height,
			TPS:           cfg.TPS,
			ShowFPS:       cfg.ShowFPS,
			ScreenshotDir: cfg.ScreenshotDir,
		})
		return e, func(ctx context.Context) error {
			stop := context.AfterFunc(ctx, func() { e.Enqueue(e.Quit) })
			defer stop()
			return e.Run()
		}
	}
}

func (a *app) run(ctx context.Context, path string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	tmpl, err := loadTemplateFile(path)
	if err != nil {
		return err
	}
	var script *sprig.ScriptRunner
	if a.cfg.Script != "" {
		data, err := os.ReadFile(a.cfg.Script)
		if err != nil {
			return err
		}
		if script, err = sprig.LoadScript(data); err != nil {
			return fmt.Errorf("%s: %w", a.cfg.Script, err)
		}
	}

	engine, loop := a.newBackend()
	sctx := sprig.NewContext()
	if err := sctx.Init(engine, engine.Keys()); err != nil {
		return err
	}
	defer sctx.Close()

	p := &player{ctx: sctx, quit: engine.Quit}
	if err := p.show(tmpl); err != nil {
		return err
	}
	if script != nil {
		engine.SetScript(script)
	}
	if a.cfg.Watch {
		w, err := watchFile(path, func() {
			engine.Enqueue(func() { p.reload(path) })
		})
		if err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		defer w.Close()
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	return loop(ctx)
}
