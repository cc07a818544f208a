// Package input publishes ebiten keyboard edges as controller key events.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/venge/controller"
	"github.com/milk9111/venge/event"
)

// Keyboard polls ebiten once per Update and publishes one event per key
// that went down or up since the previous frame.
type Keyboard struct {
	bus      *event.Bus[controller.KeyEvent]
	pressed  []ebiten.Key
	released []ebiten.Key
}

func NewKeyboard() *Keyboard {
	return &Keyboard{bus: event.NewBus[controller.KeyEvent]()}
}

func (k *Keyboard) Subscribe(fn func(controller.KeyEvent)) func() {
	return k.bus.Subscribe(fn)
}

// Update must run on the game loop before the controller ticks.
func (k *Keyboard) Update() {
	k.pressed = inpututil.AppendJustPressedKeys(k.pressed[:0])
	k.released = inpututil.AppendJustReleasedKeys(k.released[:0])

	for _, key := range k.pressed {
		k.bus.Publish(controller.KeyEvent{Code: Code(key), Pressed: true})
	}
	for _, key := range k.released {
		k.bus.Publish(controller.KeyEvent{Code: Code(key), Pressed: false})
	}
}

// Code converts an ebiten key to the name used in bindings.
func Code(key ebiten.Key) controller.KeyCode {
	return controller.KeyCode(key.String())
}
