package ecs

import (
	"testing"

	"github.com/milk9111/venge/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			if len(w.Entities()) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(w.Entities()))
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false for a dead entity")
				}
				if len(w.Entities()) != c.create-1 {
					t.Fatalf("expected %d live entities, got %d", c.create-1, len(w.Entities()))
				}
			}
		})
	}
}

func TestSlotReuseBumpsGeneration(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := w.CreateEntity()
	if err := Add(w, old, h, 7); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	w.DestroyEntity(old)

	reused := w.CreateEntity()
	if reused.id() != old.id() {
		t.Fatalf("expected slot %d to be reused, got %d", old.id(), reused.id())
	}
	if reused == old {
		t.Fatalf("reused entity must carry a new generation")
	}
	if _, ok := Get(w, reused, h); ok {
		t.Fatalf("components must not survive destruction")
	}
	if err := Add(w, old, h, 1); err == nil {
		t.Fatalf("adding to a stale handle should fail")
	}
}

func TestComponentsAndQueries(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()
	h3 := component.NewComponent[float64]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1, 10) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1)
				if !ok || v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove(w, e1, h1) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, h2, "a"); err != nil {
					return err
				}
				return Add(w, e2, h2, "b")
			},
			check: func(t *testing.T) {
				if !Has(w, e1, h2) || !Has(w, e2, h2) {
					t.Fatalf("expected both entities to have string component")
				}
				if got := w.Query(h2.Kind()); len(got) != 2 {
					t.Fatalf("expected 2 results, got %v", got)
				}
			},
			teardown: func() bool { return Remove(w, e1, h2) },
		},
		{
			name:  "add_float_and_remove",
			setup: func() error { return Add(w, e1, h3, 1.23) },
			check: func(t *testing.T) {
				if _, ok := Get(w, e1, h3); !ok {
					t.Fatalf("expected float present")
				}
			},
			teardown: func() bool { return Remove(w, e1, h3) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestForEach2(t *testing.T) {
	w := NewWorld()
	ha := component.NewComponent[int]()
	hb := component.NewComponent[string]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()

	for _, err := range []error{
		Add(w, e1, ha, 1),
		Add(w, e2, ha, 2),
		Add(w, e2, hb, "two"),
		Add(w, e3, hb, "three"),
	} {
		if err != nil {
			t.Fatal(err)
		}
	}

	var got []Entity
	ForEach2(w, ha, hb, func(e Entity, a int, b string) {
		if a != 2 || b != "two" {
			t.Fatalf("unexpected values %d %q", a, b)
		}
		got = append(got, e)
	})
	if len(got) != 1 || got[0] != e2 {
		t.Fatalf("expected only e2, got %v", got)
	}

	count := 0
	ForEach(w, ha, func(Entity, int) { count++ })
	if count != 2 {
		t.Fatalf("ForEach visited %d, want 2", count)
	}

	w.DestroyEntity(e2)
	got = got[:0]
	ForEach2(w, ha, hb, func(e Entity, _ int, _ string) { got = append(got, e) })
	if len(got) != 0 {
		t.Fatalf("expected empty result after destroy, got %v", got)
	}
}

func TestQueryMissingStore(t *testing.T) {
	w := NewWorld()
	w.CreateEntity()
	h := component.NewComponent[int]()
	if got := w.Query(h.Kind()); got != nil {
		t.Fatalf("expected nil for unknown component, got %v", got)
	}
	if _, ok := w.First(h.Kind()); ok {
		t.Fatalf("First should report false")
	}
}

func TestSparseSetSwapRemove(t *testing.T) {
	w := NewWorld()
	a, b, c := w.CreateEntity(), w.CreateEntity(), w.CreateEntity()
	s := &SparseSet{}
	s.Set(a, "a")
	s.Set(b, "b")
	s.Set(c, "c")

	if !s.Remove(a) {
		t.Fatalf("remove a failed")
	}
	if s.Has(a) || !s.Has(b) || !s.Has(c) {
		t.Fatalf("membership wrong after remove")
	}
	if s.Get(c) != "c" || s.Get(b) != "b" {
		t.Fatalf("values moved incorrectly")
	}
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
}
