// Package hostio adapts host input/output facilities (ebiten) to the
// emulation core's decoupled interfaces, keeping internal/controller
// and internal/ppu free of any dependency on a specific windowing
// toolkit.
package hostio

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/nescore/gonen/internal/controller"
)

// defaultKeymap maps the canonical button order to ebiten keys.
var defaultKeymap = [8]ebiten.Key{
	controller.ButtonA:      ebiten.KeyA,
	controller.ButtonB:      ebiten.KeyB,
	controller.ButtonSelect: ebiten.KeySpace,
	controller.ButtonStart:  ebiten.KeyEnter,
	controller.ButtonUp:     ebiten.KeyUp,
	controller.ButtonDown:   ebiten.KeyDown,
	controller.ButtonLeft:   ebiten.KeyLeft,
	controller.ButtonRight:  ebiten.KeyRight,
}

// PollKeyboard reports ebiten's current key state into pad via
// SetButton. Called once per host frame from ebiten's Update.
func PollKeyboard(pad *controller.Controller, keymap [8]ebiten.Key) {
	for b, key := range keymap {
		pad.SetButton(controller.Button(b), ebiten.IsKeyPressed(key))
	}
}

// DefaultKeymap returns the standard single-player key bindings.
func DefaultKeymap() [8]ebiten.Key { return defaultKeymap }
