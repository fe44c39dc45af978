package ecs

import "testing"

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroyed", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			if w.EntityCount() != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, w.EntityCount())
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false for dead entity")
				}
			}
		})
	}
}

func TestEntityGenerationReuse(t *testing.T) {
	w := NewWorld()
	e1 := w.CreateEntity()
	w.DestroyEntity(e1)

	e2 := w.CreateEntity()
	if e1 == e2 {
		t.Fatalf("recycled id should carry a new generation")
	}
	if w.IsAlive(e1) {
		t.Fatalf("stale handle should not be alive")
	}
	if !w.IsAlive(e2) {
		t.Fatalf("new handle should be alive")
	}
}

func TestComponentTable(t *testing.T) {
	w := NewWorld()

	ints := NewComponent[int]()
	strs := NewComponent[string]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()

	iv := 10
	if err := Add(w, e1, ints, &iv); err != nil {
		t.Fatalf("Add int: %v", err)
	}
	got, ok := Get(w, e1, ints)
	if !ok || *got != 10 {
		t.Fatalf("expected 10, got %v ok=%v", got, ok)
	}

	*got = 11
	again, _ := Get(w, e1, ints)
	if *again != 11 {
		t.Fatalf("components should be shared by pointer, got %d", *again)
	}

	if Has(w, e2, ints) {
		t.Fatalf("e2 should not have int component")
	}

	sv := "a"
	if err := Add(w, e2, strs, &sv); err != nil {
		t.Fatalf("Add string: %v", err)
	}
	if !Remove(w, e2, strs) {
		t.Fatalf("Remove should return true when component present")
	}
	if Remove(w, e2, strs) {
		t.Fatalf("Remove should return false when component absent")
	}

	if err := Add(w, e1, ints, nil); err != ErrNilComponent {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	w.DestroyEntity(e1)
	if err := Add(w, e1, ints, &iv); err != ErrEntityNotAlive {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
	var bad Handle[int]
	if err := Add(w, e2, bad, &iv); err != ErrInvalidComponent {
		t.Fatalf("expected ErrInvalidComponent, got %v", err)
	}
}

func TestQuery(t *testing.T) {
	w := NewWorld()
	tags := NewComponent[struct{}]()

	var tagged []Entity
	for i := 0; i < 4; i++ {
		e := w.CreateEntity()
		if i%2 == 0 {
			Add(w, e, tags, &struct{}{})
			tagged = append(tagged, e)
		}
	}

	got := Query(w, tags)
	if len(got) != len(tagged) {
		t.Fatalf("expected %d entities, got %d", len(tagged), len(got))
	}
	for i, e := range tagged {
		if got[i] != e {
			t.Fatalf("query order should follow insertion order")
		}
	}

	w.DestroyEntity(tagged[0])
	if got := Query(w, tags); len(got) != len(tagged)-1 {
		t.Fatalf("destroyed entity should drop out of queries, got %d", len(got))
	}
}
