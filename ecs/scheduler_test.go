package ecs

import "testing"

func TestScheduler_RunsInOrder(t *testing.T) {
	var order []string
	step := func(name string) System {
		return SystemFunc(func(w *World, dt float64) {
			if dt != 0.5 {
				t.Fatalf("%s: dt = %g, want 0.5", name, dt)
			}
			order = append(order, name)
		})
	}

	s := NewScheduler(step("input"), nil, step("look"))
	s.Add(nil)
	s.Add(step("tick"))

	if got := len(s.Systems()); got != 3 {
		t.Fatalf("systems = %d, want 3", got)
	}

	s.Update(NewWorld(), 0.5)

	want := []string{"input", "look", "tick"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}
