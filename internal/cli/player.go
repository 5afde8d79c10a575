package cli

import (
	"fmt"
	"os"

	"github.com/phanxgames/sprig"
)

func loadTemplateFile(path string) (sprig.Template, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tmpl, err := sprig.LoadTemplate(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tmpl, nil
}

// player owns the scene currently shown. Reloading replaces the scene with a
// new one built from the new template; exit quits.
type player struct {
	ctx   *sprig.Context
	scene *sprig.Scene
	quit  func()
}

func (p *player) show(tmpl sprig.Template) error {
	next := sprig.NewScene(p.ctx, tmpl, nil)
	if p.scene != nil {
		p.scene.Destroy()
	}
	if err := next.Render(); err != nil {
		next.Destroy()
		p.scene = nil
		return err
	}
	next.On(sprig.EventExit, p.quit)
	p.scene = next
	return nil
}

// reload reads path again and shows it. On error the current scene stays.
func (p *player) reload(path string) {
	tmpl, err := loadTemplateFile(path)
	if err != nil {
		sprig.Logger().Error("reload template", "path", path, "error", err)
		return
	}
	if err := p.show(tmpl); err != nil {
		sprig.Logger().Error("reload template", "path", path, "error", err)
		return
	}
	sprig.Logger().Info("template reloaded", "path", path)
}
