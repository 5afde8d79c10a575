package ebitenengine

import (
	"reflect"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/phanxgames/sprig"
)

func newRenderedScene(t *testing.T, e *Engine, tmpl sprig.Template) *sprig.Scene {
	t.Helper()
	ctx := sprig.NewContext()
	if err := ctx.Init(e, e.Keys()); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s := sprig.NewScene(ctx, tmpl, nil)
	if err := s.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return s
}

func TestConfigDefaults(t *testing.T) {
	cfg := New(Config{}).Config()
	if cfg.Title != "sprig" || cfg.Width != 1280 || cfg.Height != 720 || cfg.TPS != 60 {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want screenshots", cfg.ScreenshotDir)
	}
	if w, h := New(Config{Width: 640, Height: 480}).Layout(1, 1); w != 640 || h != 480 {
		t.Errorf("Layout = %dx%d, want 640x480", w, h)
	}
}

func TestEngineImplementsInterfaces(t *testing.T) {
	var _ sprig.Engine = New(Config{})
	var _ sprig.ScriptHost = New(Config{})
	var _ ebiten.Game = New(Config{})
}

func TestInjectedKeysDeliveredOnePerTick(t *testing.T) {
	e := New(Config{})
	s := newRenderedScene(t, e, sprig.Template{sprig.Leaf("a", sprig.Props{})})
	var got []string
	s.On(sprig.EventUp, func() { got = append(got, "up") })
	s.On(sprig.EventEnter, func() { got = append(got, "enter") })

	e.InjectKey("ArrowUp")
	e.InjectKey("Enter")
	if e.PendingKeys() != 2 {
		t.Fatalf("PendingKeys = %d, want 2", e.PendingKeys())
	}

	e.tick(0)
	if !reflect.DeepEqual(got, []string{"up"}) {
		t.Errorf("after one tick got %v, want [up]", got)
	}
	e.tick(0)
	if !reflect.DeepEqual(got, []string{"up", "enter"}) {
		t.Errorf("after two ticks got %v, want [up enter]", got)
	}
}

func TestScriptDrivesEngine(t *testing.T) {
	e := New(Config{})
	s := newRenderedScene(t, e, sprig.Template{sprig.Leaf("a", sprig.Props{})})
	exits := 0
	s.On(sprig.EventExit, func() { exits++ })

	runner, err := sprig.LoadScript([]byte(`{"steps": [
		{"action": "key", "key": "Escape"},
		{"action": "quit"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	e.SetScript(runner)

	for i := 0; i < 4 && !e.quit; i++ {
		e.tick(0)
	}
	if exits != 1 {
		t.Errorf("exits = %d, want 1", exits)
	}
	if !e.quit {
		t.Error("script quit should stop the engine")
	}
}

func TestEnqueueRunsOnTick(t *testing.T) {
	e := New(Config{})
	ran := false
	e.Enqueue(func() { ran = true })
	if ran {
		t.Fatal("task should not run before tick")
	}
	e.tick(0)
	if !ran {
		t.Error("task should run on tick")
	}
}

func TestTickAdvancesAnimations(t *testing.T) {
	e := New(Config{})
	s := newRenderedScene(t, e, sprig.Template{sprig.Leaf("box", sprig.Props{"x": 0})})
	box := s.Find("box")
	box.Animate(sprig.Props{"x": 100}, sprig.AnimationConfig{Duration: 1e9}).Start()

	e.tick(0.5)
	e.tick(0.5)

	if x, _ := box.Float("x"); x < 99.5 {
		t.Errorf("x = %v, want ~100", x)
	}
}

func TestRawKeyName(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want string
	}{
		{ebiten.KeyArrowUp, "ArrowUp"},
		{ebiten.KeyArrowDown, "ArrowDown"},
		{ebiten.KeyArrowLeft, "ArrowLeft"},
		{ebiten.KeyArrowRight, "ArrowRight"},
		{ebiten.KeyEnter, "Enter"},
		{ebiten.KeyNumpadEnter, "Enter"},
		{ebiten.KeyEscape, "Escape"},
		{ebiten.KeyBackspace, "Backspace"},
	}
	for _, tt := range tests {
		if got := rawKeyName(tt.key); got != tt.want {
			t.Errorf("rawKeyName(%v) = %q, want %q", tt.key, got, tt.want)
		}
	}
	if got := rawKeyName(ebiten.KeyA); got != ebiten.KeyA.String() {
		t.Errorf("rawKeyName(KeyA) = %q, want %q", got, ebiten.KeyA.String())
	}
}

// --- Fonts ---

func TestDefaultFontFace(t *testing.T) {
	e := New(Config{})
	face, err := e.fonts.face("", 0)
	if err != nil {
		t.Fatalf("face: %v", err)
	}
	if face.Size != defaultFontSize {
		t.Errorf("Size = %v, want %v", face.Size, defaultFontSize)
	}
	again, _ := e.fonts.face(DefaultFontFamily, defaultFontSize)
	if again != face {
		t.Error("faces should be cached per family and size")
	}
}

func TestRegisterFont(t *testing.T) {
	e := New(Config{})
	if err := e.RegisterFont("mono", gomono.TTF); err != nil {
		t.Fatalf("RegisterFont: %v", err)
	}
	mono, err := e.fonts.face("mono", 20)
	if err != nil {
		t.Fatal(err)
	}
	sans, _ := e.fonts.face("", 20)
	if mono.Source == sans.Source {
		t.Error("registered family should not use the default source")
	}
	unknown, _ := e.fonts.face("nope", 20)
	if unknown.Source != sans.Source {
		t.Error("unknown family should fall back to the default")
	}
}

func TestRegisterFontInvalid(t *testing.T) {
	e := New(Config{})
	if err := e.RegisterFont("bad", []byte("not a font")); err == nil {
		t.Error("expected error for invalid font data")
	}
}

func TestMeasureText(t *testing.T) {
	e := New(Config{})
	w1, h1, err := e.MeasureText("Hi", "", 20)
	if err != nil {
		t.Fatal(err)
	}
	w2, _, _ := e.MeasureText("Hi there", "", 20)
	if w1 <= 0 || h1 <= 0 {
		t.Errorf("MeasureText = %vx%v, want positive", w1, h1)
	}
	if w2 <= w1 {
		t.Errorf("longer text should measure wider: %v <= %v", w2, w1)
	}
}

func TestTextString(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"Hello", "Hello"},
		{float64(42), "42"},
		{1.5, "1.5"},
		{7, "7"},
	}
	for _, tt := range tests {
		if got := textString(tt.in); got != tt.want {
			t.Errorf("textString(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
