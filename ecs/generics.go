package ecs

// Add attaches a component to a live entity. Components are stored by
// pointer so systems mutate them in place.
func Add[T any](w *World, e Entity, h Handle[T], v *T) error {
	if v == nil {
		return ErrNilComponent
	}
	if !h.Valid() {
		return ErrInvalidComponent
	}
	if !w.entities.isAlive(e) {
		return ErrEntityNotAlive
	}
	w.storage(h.ID(), true).Set(e.id(), v)
	return nil
}

// Get returns the component of kind h for e, if present.
func Get[T any](w *World, e Entity, h Handle[T]) (*T, bool) {
	if !w.entities.isAlive(e) {
		return nil, false
	}
	s := w.storage(h.ID(), false)
	if s == nil {
		return nil, false
	}
	v := s.Get(e.id())
	if v == nil {
		return nil, false
	}
	cast, ok := v.(*T)
	return cast, ok
}

// Has reports whether e carries a component of kind h.
func Has[T any](w *World, e Entity, h Handle[T]) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	return w.storage(h.ID(), false).Has(e.id())
}

// Remove detaches the component of kind h from e.
func Remove[T any](w *World, e Entity, h Handle[T]) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	return w.storage(h.ID(), false).Remove(e.id())
}

// Query returns the live entities carrying a component of kind h, in
// storage (insertion) order.
func Query[T any](w *World, h Handle[T]) []Entity {
	s := w.storage(h.ID(), false)
	if s == nil {
		return nil
	}
	ids := s.ids()
	out := make([]Entity, 0, len(ids))
	for _, id := range ids {
		if e := w.entities.entityFor(id); e.Valid() {
			out = append(out, e)
		}
	}
	return out
}
