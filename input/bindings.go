package input

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/venge/controller"
	"github.com/milk9111/venge/prefabs"
)

// Bindings converts a bindings spec into controller bindings, rejecting key
// names ebiten does not know.
func Bindings(spec prefabs.BindingsSpec) (controller.Bindings, error) {
	out := make(controller.Bindings)
	groups := []struct {
		intent controller.Intent
		keys   []string
	}{
		{controller.IntentForward, spec.Forward},
		{controller.IntentBackward, spec.Backward},
		{controller.IntentLeft, spec.Left},
		{controller.IntentRight, spec.Right},
		{controller.IntentJump, spec.Jump},
	}
	for _, g := range groups {
		for _, name := range g.keys {
			var key ebiten.Key
			if err := key.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
				return nil, fmt.Errorf("input: %s binding %q: %w", g.intent, name, err)
			}
			code := Code(key)
			if prev, ok := out[code]; ok && prev != g.intent {
				return nil, fmt.Errorf("input: key %q bound to both %s and %s: %w", name, prev, g.intent, prefabs.ErrInvalidSpec)
			}
			out[code] = g.intent
		}
	}
	return out, nil
}
