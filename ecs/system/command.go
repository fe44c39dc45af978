package system

import (
	"fmt"
	"log"

	"github.com/milk9111/doorsim/ecs"
	"github.com/milk9111/doorsim/ecs/component"
)

// Command is an open/close request addressed by door name.
type Command struct {
	Name string
	Goal component.Goal
}

// Open builds a command asking the named door to open.
func Open(name string) Command {
	return Command{Name: name, Goal: component.GoalOpen}
}

// Close builds a command asking the named door to close.
func Close(name string) Command {
	return Command{Name: name, Goal: component.GoalClosed}
}

// CommandQueue buffers commands between ticks. Producers push at any
// point in the frame; CommandSystem drains the whole queue once per
// tick. The zero value is ready to use.
type CommandQueue struct {
	items []Command
}

// Push appends a command.
func (q *CommandQueue) Push(c Command) {
	if q == nil {
		return
	}
	q.items = append(q.items, c)
}

// Len returns the number of pending commands.
func (q *CommandQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *CommandQueue) drain() []Command {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// CommandSystem routes pending commands to the leaves of the named
// door, converting each into a goal update gated by the leaf's current
// state. Commands naming no door, or arriving while the leaf is
// mid-transition or already at the requested state, are dropped.
type CommandSystem struct {
	queue *CommandQueue
}

// NewCommandSystem creates a CommandSystem draining the given queue.
func NewCommandSystem(queue *CommandQueue) *CommandSystem {
	return &CommandSystem{queue: queue}
}

// Update drains the queue and applies every command to every matching leaf.
func (s *CommandSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	cmds := s.queue.drain()
	if len(cmds) == 0 {
		return
	}
	leaves := ecs.Query(w, component.LeafComponent)
	for _, cmd := range cmds {
		for _, e := range leaves {
			leaf, ok := ecs.Get(w, e, component.LeafComponent)
			if !ok {
				continue
			}
			door, ok := ecs.Get(w, leaf.Owner, component.DoorComponent)
			if !ok {
				// Leaves only exist alongside their door; a missing
				// owner means the world is corrupt.
				panic(fmt.Sprintf("doorsim: leaf %v has no owning door", e))
			}
			if door.Name != cmd.Name {
				continue
			}
			switch cmd.Goal {
			case component.GoalOpen:
				if leaf.State == component.StateClosed {
					log.Printf("door: opening %q", door.Name)
					leaf.Goal = component.GoalOpen
				}
			case component.GoalClosed:
				if leaf.State == component.StateOpen {
					log.Printf("door: closing %q", door.Name)
					leaf.Goal = component.GoalClosed
				}
			}
		}
	}
}
