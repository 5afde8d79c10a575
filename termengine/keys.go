package termengine

import (
	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/sprig"
)

var keyNames = map[tcell.Key]string{
	tcell.KeyUp:         sprig.KeyArrowUp,
	tcell.KeyDown:       sprig.KeyArrowDown,
	tcell.KeyLeft:       sprig.KeyArrowLeft,
	tcell.KeyRight:      sprig.KeyArrowRight,
	tcell.KeyEnter:      sprig.KeyEnter,
	tcell.KeyEscape:     sprig.KeyEscape,
	tcell.KeyBackspace:  sprig.KeyBackspace,
	tcell.KeyBackspace2: sprig.KeyBackspace,
}

// rawKeyName translates a tcell key event into the raw name delivered to the
// KeyBus. Printable keys are delivered as their rune.
func rawKeyName(ev *tcell.EventKey) string {
	if name, ok := keyNames[ev.Key()]; ok {
		return name
	}
	if ev.Key() == tcell.KeyRune {
		return string(ev.Rune())
	}
	return ev.Name()
}
