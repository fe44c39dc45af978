package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/doorsim/ecs"
	"github.com/milk9111/doorsim/ecs/component"
	"github.com/milk9111/doorsim/prefabs"
)

// NewDoor creates a door entity from its creation record. The door is
// inert until a spawn pass resolves it into leaves.
func NewDoor(w *ecs.World, name string, swing float64, doorType component.DoorType, dims component.Dimensions, base component.Pose) (ecs.Entity, error) {
	if name == "" {
		return 0, fmt.Errorf("entity: door needs a name")
	}
	e := w.CreateEntity()
	door := component.Door{
		Name:       name,
		SwingValue: swing,
		Type:       doorType,
		Dims:       dims,
	}
	if err := ecs.Add(w, e, component.DoorComponent, &door); err != nil {
		return 0, fmt.Errorf("entity: door %q: %w", name, err)
	}
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{Base: base}); err != nil {
		return 0, fmt.Errorf("entity: door %q: %w", name, err)
	}
	return e, nil
}

// NewDoorFromSpec creates a door entity from a prefab spec entry.
func NewDoorFromSpec(w *ecs.World, spec prefabs.DoorSpec) (ecs.Entity, error) {
	doorType, err := component.ParseDoorType(spec.Type)
	if err != nil {
		return 0, fmt.Errorf("entity: door %q: %w", spec.Name, err)
	}
	dims := component.Dimensions{
		Length:    spec.Length,
		Height:    spec.Height,
		Thickness: spec.Thickness,
	}
	base := component.Pose{
		Position: cp.Vector{X: spec.Transform.X, Y: spec.Transform.Y},
		Angle:    spec.Transform.Rotation,
	}
	return NewDoor(w, spec.Name, spec.Swing, doorType, dims, base)
}
