package system

import (
	"math"

	"github.com/milk9111/doorsim/ecs"
	"github.com/milk9111/doorsim/ecs/component"
)

// SpawnSystem decomposes newly created doors into movable leaf
// entities. A door is resolved exactly once: resolution tags it with
// DoorResolved and later ticks skip it.
type SpawnSystem struct{}

// NewSpawnSystem creates a SpawnSystem.
func NewSpawnSystem() *SpawnSystem {
	return &SpawnSystem{}
}

// Update resolves every unresolved door in the world.
func (s *SpawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, e := range ecs.Query(w, component.DoorComponent) {
		if ecs.Has(w, e, component.DoorResolvedComponent) {
			continue
		}
		ResolveDoor(w, e)
	}
}

// ResolveDoor spawns the leaves for one door entity. Calling it again
// for an already-resolved door is a no-op.
func ResolveDoor(w *ecs.World, door ecs.Entity) []ecs.Entity {
	if w == nil || ecs.Has(w, door, component.DoorResolvedComponent) {
		return nil
	}
	d, ok := ecs.Get(w, door, component.DoorComponent)
	if !ok {
		return nil
	}
	base := component.Pose{}
	if tr, ok := ecs.Get(w, door, component.TransformComponent); ok {
		base = tr.Base
	}

	var leaves []ecs.Entity
	switch d.Type {
	case component.SingleSliding, component.SingleSwinging:
		leaves = append(leaves,
			spawnLeaf(w, door, d.SwingValue, d.Type.Kind(), base, d.Dims))

	case component.DoubleSliding:
		// Two half-length panels sliding apart from the shared
		// centerline, one in each direction.
		half := math.Abs(d.SwingValue) / 2
		dims := d.Dims
		dims.Length /= 2
		leaves = append(leaves,
			spawnLeaf(w, door, -half, component.MotionSliding, base, dims),
			spawnLeaf(w, door, half, component.MotionSliding,
				base.Translated(d.Dims.Length/2), dims))

	case component.DoubleSwinging:
		// Mirrored halves hinged at opposite jambs. The second leaf is
		// placed at the far jamb facing backwards so both halves swing
		// away from each other.
		dims := d.Dims
		dims.Length /= 2
		leaves = append(leaves,
			spawnLeaf(w, door, d.SwingValue, component.MotionSwinging, base, dims),
			spawnLeaf(w, door, -d.SwingValue, component.MotionSwinging,
				base.Translated(d.Dims.Length).Rotated(math.Pi), dims))
	}

	ecs.Add(w, door, component.DoorResolvedComponent, &component.DoorResolved{})
	return leaves
}

func spawnLeaf(w *ecs.World, owner ecs.Entity, swing float64, kind component.MotionKind, base component.Pose, dims component.Dimensions) ecs.Entity {
	e := w.CreateEntity()
	leaf := component.NewLeaf(swing, kind, owner, dims)
	ecs.Add(w, e, component.LeafComponent, &leaf)
	ecs.Add(w, e, component.TransformComponent, &component.Transform{Base: base})
	return e
}
