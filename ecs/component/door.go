package component

import (
	"fmt"

	"github.com/milk9111/doorsim/ecs"
)

// DoorType determines how many leaves a door decomposes into and how
// they move.
type DoorType uint8

const (
	SingleSliding DoorType = iota
	DoubleSliding
	SingleSwinging
	DoubleSwinging
)

var doorTypeNames = map[DoorType]string{
	SingleSliding:  "single_sliding",
	DoubleSliding:  "double_sliding",
	SingleSwinging: "single_swinging",
	DoubleSwinging: "double_swinging",
}

func (t DoorType) String() string {
	if name, ok := doorTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("door_type(%d)", uint8(t))
}

// ParseDoorType converts a spec-file type string into a DoorType.
func ParseDoorType(s string) (DoorType, error) {
	for t, name := range doorTypeNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("component: unknown door type %q", s)
}

// Kind returns the motion kind the type's leaves use.
func (t DoorType) Kind() MotionKind {
	if t == SingleSwinging || t == DoubleSwinging {
		return MotionSwinging
	}
	return MotionSliding
}

// Double reports whether the type decomposes into two leaves.
func (t DoorType) Double() bool {
	return t == DoubleSliding || t == DoubleSwinging
}

// Dimensions holds a door panel's extents in world units.
type Dimensions struct {
	Length    float64
	Height    float64
	Thickness float64
}

// Door is the logical named door. It is immutable after creation and is
// never animated itself; motion belongs to the leaves spawned from it.
type Door struct {
	Name       string
	SwingValue float64
	Type       DoorType
	Dims       Dimensions
}

// DoorResolved tags a door whose leaves have been spawned, so topology
// resolution fires exactly once per door.
type DoorResolved struct{}

var (
	DoorComponent         = ecs.NewComponent[Door]()
	DoorResolvedComponent = ecs.NewComponent[DoorResolved]()
)
