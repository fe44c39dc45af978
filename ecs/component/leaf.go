package component

import "github.com/milk9111/doorsim/ecs"

// MotionKind selects the integration behavior for a leaf. It is fixed
// at leaf creation; systems never re-derive it from the owning door.
type MotionKind uint8

const (
	MotionSliding MotionKind = iota
	MotionSwinging
)

func (k MotionKind) String() string {
	if k == MotionSwinging {
		return "swinging"
	}
	return "sliding"
}

// State is a leaf's observed condition.
type State uint8

const (
	StateClosed State = iota
	StateOpen
	StateOpening
	StateClosing
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateOpening:
		return "opening"
	case StateClosing:
		return "closing"
	default:
		return "closed"
	}
}

// Goal is a leaf's desired terminal state.
type Goal uint8

const (
	GoalClosed Goal = iota
	GoalOpen
)

func (g Goal) String() string {
	if g == GoalOpen {
		return "open"
	}
	return "closed"
}

// Satisfies reports whether the state already meets the goal. The
// transitional states satisfy nothing, which keeps the motion
// integrator running until a terminal state is reached.
func (s State) Satisfies(g Goal) bool {
	switch s {
	case StateOpen:
		return g == GoalOpen
	case StateClosed:
		return g == GoalClosed
	default:
		return false
	}
}

// Leaf is a single movable door panel. SwingValue's magnitude is the
// travel distance (sliding) or rotation angle in radians (swinging);
// its sign is the direction of travel. Owner points at the entity
// carrying the Door component and is never mutated after creation.
type Leaf struct {
	SwingValue float64
	Kind       MotionKind
	State      State
	Goal       Goal
	Owner      ecs.Entity
	Dims       Dimensions
}

// NewLeaf builds a leaf in its initial condition. Every leaf starts
// Closed with a Closed goal; this is an invariant, not a default.
func NewLeaf(swing float64, kind MotionKind, owner ecs.Entity, dims Dimensions) Leaf {
	return Leaf{
		SwingValue: swing,
		Kind:       kind,
		State:      StateClosed,
		Goal:       GoalClosed,
		Owner:      owner,
		Dims:       dims,
	}
}

var LeafComponent = ecs.NewComponent[Leaf]()
