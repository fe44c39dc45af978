package system

import (
	"math"

	"github.com/milk9111/doorsim/common"
	"github.com/milk9111/doorsim/ecs"
	"github.com/milk9111/doorsim/ecs/component"
)

// MoveStep is the per-tick travel increment. SnapTolerance is the
// distance from the closed position inside which a closing leaf snaps
// shut. Both apply verbatim to sliding leaves (length units) and
// swinging leaves (radians); the unit conflation is a fixed design
// constant of the door model, not something to derive per kind.
const (
	MoveStep      = 0.01
	SnapTolerance = 0.02
)

type stepFunc func(leaf *component.Leaf, tr *component.Transform)

// stepTable is indexed by MotionKind, chosen per leaf at creation time.
var stepTable = [...]stepFunc{
	component.MotionSliding:  stepSliding,
	component.MotionSwinging: stepSwinging,
}

// MotionSystem advances every unsatisfied leaf toward its goal by one
// fixed increment, updating the observed state and snapping exactly
// onto the target when within tolerance. Leaves already satisfying
// their goal are skipped without a single write.
type MotionSystem struct{}

// NewMotionSystem creates a MotionSystem.
func NewMotionSystem() *MotionSystem {
	return &MotionSystem{}
}

// Update integrates all pending leaf motion for one tick.
func (s *MotionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, e := range ecs.Query(w, component.LeafComponent) {
		leaf, ok := ecs.Get(w, e, component.LeafComponent)
		if !ok || leaf.State.Satisfies(leaf.Goal) {
			continue
		}
		tr, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}
		stepTable[leaf.Kind](leaf, tr)
	}
}

func stepSliding(leaf *component.Leaf, tr *component.Transform) {
	switch leaf.Goal {
	case component.GoalClosed:
		if math.Abs(tr.Offset) <= SnapTolerance {
			tr.Offset = 0
			leaf.State = component.StateClosed
		} else {
			leaf.State = component.StateClosing
			tr.Offset -= MoveStep * common.Sign(leaf.SwingValue)
		}
	case component.GoalOpen:
		if math.Abs(tr.Offset) >= math.Abs(leaf.SwingValue) {
			tr.Offset = leaf.SwingValue
			leaf.State = component.StateOpen
		} else {
			leaf.State = component.StateOpening
			tr.Offset += MoveStep * common.Sign(leaf.SwingValue)
		}
	}
}

func stepSwinging(leaf *component.Leaf, tr *component.Transform) {
	switch leaf.Goal {
	case component.GoalClosed:
		if math.Abs(tr.Angle) <= SnapTolerance {
			tr.Angle = 0
			leaf.State = component.StateClosed
		} else {
			leaf.State = component.StateClosing
			tr.Angle -= MoveStep * common.Sign(leaf.SwingValue)
		}
	case component.GoalOpen:
		if math.Abs(tr.Angle) >= math.Abs(leaf.SwingValue) {
			tr.Angle = leaf.SwingValue
			leaf.State = component.StateOpen
		} else {
			leaf.State = component.StateOpening
			tr.Angle += MoveStep * common.Sign(leaf.SwingValue)
		}
	}
}
