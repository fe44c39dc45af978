package ecs

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive   = errors.New("ecs: entity not alive")
	ErrNilComponent     = errors.New("ecs: component is nil")
	ErrInvalidComponent = errors.New("ecs: invalid component handle")
)

// ComponentID identifies a component kind at runtime.
type ComponentID uint32

var nextComponentID atomic.Uint32

// Handle is a typed token for one component kind. Handles are created
// once at package init via NewComponent and passed to the generic
// accessors; the type parameter keeps Add/Get calls type-safe without
// reflection.
type Handle[T any] struct {
	id ComponentID
}

// NewComponent registers a new component kind.
func NewComponent[T any]() Handle[T] {
	return Handle[T]{id: ComponentID(nextComponentID.Add(1))}
}

func (h Handle[T]) ID() ComponentID {
	return h.id
}

func (h Handle[T]) Valid() bool {
	return h.id != 0
}
