package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/milk9111/venge/controller"
)

// step is one scripted key edge delivered before the given tick runs.
type step struct {
	tick  int
	event controller.KeyEvent
}

// parseScript reads entries of the form "tick:Key+" (press) or "tick:Key-"
// (release), separated by commas. Steps come back ordered by tick, keeping
// the written order within a tick.
func parseScript(s string) ([]step, error) {
	var steps []step
	for _, raw := range strings.Split(s, ",") {
		entry := strings.TrimSpace(raw)
		if entry == "" {
			continue
		}
		at, key, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("script entry %q: missing ':'", entry)
		}
		tick, err := strconv.Atoi(strings.TrimSpace(at))
		if err != nil || tick < 0 {
			return nil, fmt.Errorf("script entry %q: bad tick", entry)
		}
		key = strings.TrimSpace(key)
		if len(key) < 2 {
			return nil, fmt.Errorf("script entry %q: missing key", entry)
		}

		var pressed bool
		switch key[len(key)-1] {
		case '+':
			pressed = true
		case '-':
			pressed = false
		default:
			return nil, fmt.Errorf("script entry %q: key must end in + or -", entry)
		}
		steps = append(steps, step{
			tick:  tick,
			event: controller.KeyEvent{Code: controller.KeyCode(key[:len(key)-1]), Pressed: pressed},
		})
	}

	sort.SliceStable(steps, func(i, j int) bool { return steps[i].tick < steps[j].tick })
	return steps, nil
}
