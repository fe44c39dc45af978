package system

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/doorsim/ecs"
	"github.com/milk9111/doorsim/prefabs"
)

// A scenario script defines `tick := func(t) { ... }` returning an
// array of `{name: ..., goal: "open"|"close"}` requests for tick t.
// The dispatch line below is appended so the compiled program leaves
// the result in a global we can read back.
const scenarioDispatchScript = `
__requests := tick(__tick)
`

// ScenarioSystem drives doors from a tengo script instead of (or in
// addition to) live input, pushing the script's requests into the
// shared command queue each tick.
type ScenarioSystem struct {
	queue    *CommandQueue
	compiled *tengo.Compiled
	tick     int64
}

// NewScenarioSystem compiles the named script from the prefabs tree.
func NewScenarioSystem(queue *CommandQueue, scriptPath string) (*ScenarioSystem, error) {
	if queue == nil {
		return nil, fmt.Errorf("scenario: nil command queue")
	}
	src, err := prefabs.LoadScript(scriptPath)
	if err != nil {
		return nil, fmt.Errorf("scenario: load %s: %w", scriptPath, err)
	}

	script := tengo.NewScript(append(src, []byte(scenarioDispatchScript)...))
	_ = script.Add("__tick", int64(0))
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("scenario: compile %s: %w", scriptPath, err)
	}

	return &ScenarioSystem{queue: queue, compiled: compiled}, nil
}

// Update runs the script for the current tick and queues its requests.
func (s *ScenarioSystem) Update(w *ecs.World) {
	if s == nil || s.compiled == nil {
		return
	}
	t := s.tick
	s.tick++

	if err := s.compiled.Set("__tick", t); err != nil {
		log.Printf("scenario: tick=%d set error: %v", t, err)
		return
	}
	if err := s.compiled.Run(); err != nil {
		log.Printf("scenario: tick=%d run error: %v", t, err)
		return
	}

	for _, item := range s.compiled.Get("__requests").Array() {
		req, ok := item.(map[string]any)
		if !ok {
			continue
		}
		name, _ := req["name"].(string)
		goal, _ := req["goal"].(string)
		if name == "" {
			continue
		}
		switch goal {
		case "open":
			s.queue.Push(Open(name))
		case "close":
			s.queue.Push(Close(name))
		default:
			log.Printf("scenario: tick=%d unknown goal %q for %q", t, goal, name)
		}
	}
}
