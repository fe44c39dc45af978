package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/doorsim/ecs"
	"github.com/milk9111/doorsim/ecs/component"
	"github.com/milk9111/doorsim/ecs/entity"
	"github.com/milk9111/doorsim/ecs/system"
	"github.com/milk9111/doorsim/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

// Game hosts the simulation: it ticks the scheduler, feeds keyboard
// commands into the queue, and draws a top-down view of every leaf.
type Game struct {
	frames int

	world *ecs.World
	sched *ecs.Scheduler
	queue *system.CommandQueue

	doorNames []string
	wantOpen  map[string]bool

	scenario string
	watcher  *prefabs.Watcher
}

func NewGame(scenario string, watch bool) (*Game, error) {
	g := &Game{scenario: scenario, queue: &system.CommandQueue{}}
	if err := g.reload(); err != nil {
		return nil, err
	}
	if watch {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("game: watch prefabs: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// reload rebuilds the world from doors.yaml. The command queue
// survives a reload so a command pushed just before one is not lost.
func (g *Game) reload() error {
	spec, err := prefabs.LoadDoorsSpec()
	if err != nil {
		return err
	}

	world := ecs.NewWorld()
	names := make([]string, 0, len(spec.Doors))
	for _, d := range spec.Doors {
		if _, err := entity.NewDoorFromSpec(world, d); err != nil {
			return err
		}
		names = append(names, d.Name)
	}

	// Pass order is fixed: topology resolution, then command routing,
	// then motion integration, all within one tick.
	sched := ecs.NewScheduler(system.NewSpawnSystem())
	if g.scenario != "" {
		sc, err := system.NewScenarioSystem(g.queue, g.scenario)
		if err != nil {
			return err
		}
		sched.Add(sc)
	}
	sched.Add(system.NewCommandSystem(g.queue))
	sched.Add(system.NewMotionSystem())

	g.world = world
	g.sched = sched
	g.doorNames = names
	g.wantOpen = map[string]bool{}
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++

	if g.watcher != nil {
		select {
		case name, ok := <-g.watcher.Events:
			if ok {
				log.Printf("game: %s changed, reloading", name)
				if err := g.reload(); err != nil {
					log.Printf("game: reload: %v", err)
				}
			}
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("game: watch: %v", err)
			}
		default:
		}
	}

	g.handleInput()
	g.sched.Update(g.world)
	return nil
}

// handleInput maps digit keys to doors in spec order: pressing a
// door's key toggles between requesting open and requesting close.
func (g *Game) handleInput() {
	for i, name := range g.doorNames {
		if i >= 9 {
			break
		}
		if !inpututil.IsKeyJustPressed(ebiten.KeyDigit1 + ebiten.Key(i)) {
			continue
		}
		if g.wantOpen[name] {
			g.queue.Push(system.Close(name))
		} else {
			g.queue.Push(system.Open(name))
		}
		g.wantOpen[name] = !g.wantOpen[name]
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawDoors(screen, g.world)
	ebitenutil.DebugPrint(screen, g.statusText())
}

func (g *Game) statusText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Frames: %d    FPS: %.2f\n", g.frames, ebiten.ActualFPS())

	states := map[string][]string{}
	for _, e := range ecs.Query(g.world, component.LeafComponent) {
		leaf, ok := ecs.Get(g.world, e, component.LeafComponent)
		if !ok {
			continue
		}
		door, ok := ecs.Get(g.world, leaf.Owner, component.DoorComponent)
		if !ok {
			continue
		}
		states[door.Name] = append(states[door.Name], leaf.State.String())
	}
	for i, name := range g.doorNames {
		fmt.Fprintf(&b, "[%d] %s: %s\n", i+1, name, strings.Join(states[name], ", "))
	}
	return b.String()
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
