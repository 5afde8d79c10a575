package ebitenengine

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/sprig"
)

// keyNames maps Ebitengine key codes to the raw names sprig's navigation
// table understands. Other keys are forwarded under ebiten's own name.
var keyNames = map[ebiten.Key]string{
	ebiten.KeyArrowUp:     sprig.KeyArrowUp,
	ebiten.KeyArrowDown:   sprig.KeyArrowDown,
	ebiten.KeyArrowLeft:   sprig.KeyArrowLeft,
	ebiten.KeyArrowRight:  sprig.KeyArrowRight,
	ebiten.KeyEnter:       sprig.KeyEnter,
	ebiten.KeyNumpadEnter: sprig.KeyEnter,
	ebiten.KeyEscape:      sprig.KeyEscape,
	ebiten.KeyBackspace:   sprig.KeyBackspace,
}

// rawKeyName returns the raw key name delivered to the KeyBus for k.
func rawKeyName(k ebiten.Key) string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return k.String()
}
