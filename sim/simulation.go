// Package sim runs the pursuit loop: one agent steered by a PD controller
// toward one target that relocates every time it is reached.
package sim

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pursuit/ecs"
	"github.com/milk9111/pursuit/ecs/component"
	"github.com/milk9111/pursuit/ecs/entity"
	"github.com/milk9111/pursuit/ecs/system"
	"github.com/milk9111/pursuit/prefabs"
)

var ErrNilRand = errors.New("sim: random source is nil")

type Config struct {
	Tuning prefabs.Tuning
	// Debug logs every eat and respawn.
	Debug bool
}

// Simulation owns the world and the one agent, target and game state it
// was built with. The handles never change, so systems address them
// directly instead of querying.
type Simulation struct {
	world     *ecs.World
	scheduler *ecs.Scheduler

	agent  ecs.Entity
	target ecs.Entity
	state  ecs.Entity

	ticks uint64
}

// New builds the world and spawns the target for the first time. rng is
// used for every target placement, so a seeded source gives a repeatable
// run.
func New(cfg Config, rng *rand.Rand) (*Simulation, error) {
	if rng == nil {
		return nil, ErrNilRand
	}
	if err := cfg.Tuning.Rules.Validate(); err != nil {
		return nil, fmt.Errorf("sim: rules: %w", err)
	}

	w := ecs.NewWorld()
	state, err := entity.NewGameState(w, cfg.Tuning.Rules)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	agent, err := entity.NewAgent(w, cfg.Tuning.Agent)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	target, err := entity.NewTarget(w, cfg.Tuning.Target, state, rng)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	s := &Simulation{
		world:  w,
		agent:  agent,
		target: target,
		state:  state,
	}
	// Eat must precede pursuit, respawn and score; pursuit and respawn
	// touch disjoint data so their relative order does not matter.
	s.scheduler = ecs.NewScheduler(
		system.NewMotionSystem(),
		system.NewEatSystem(agent, state),
		system.NewPursuitSystem(agent, state),
		system.NewRespawnSystem(target, state, rng, cfg.Debug),
		system.NewScoreSystem(state),
	)
	return s, nil
}

// Tick runs every phase once in order. Events raised during the tick are
// dropped when it ends.
func (s *Simulation) Tick() {
	s.scheduler.Update(s.world)
	s.ticks++
}

// World exposes the ECS world for rendering.
func (s *Simulation) World() *ecs.World {
	return s.world
}

func (s *Simulation) Ticks() uint64 {
	return s.ticks
}

func (s *Simulation) Score() uint32 {
	return ecs.MustGet(s.world, s.state, component.GameStateComponent.Kind()).Score
}

// ScoreText is the HUD label as of the last tick.
func (s *Simulation) ScoreText() string {
	return ecs.MustGet(s.world, s.state, component.ScoreLabelComponent.Kind()).Text
}

func (s *Simulation) AgentPosition() cp.Vector {
	return ecs.MustGet(s.world, s.agent, component.TransformComponent.Kind()).Position
}

func (s *Simulation) AgentVelocity() cp.Vector {
	return ecs.MustGet(s.world, s.agent, component.VelocityComponent.Kind()).Vector
}

// TargetPosition reports the target position recorded in the game state.
func (s *Simulation) TargetPosition() (cp.Vector, bool) {
	gs := ecs.MustGet(s.world, s.state, component.GameStateComponent.Kind())
	return gs.TargetPos, gs.HasTarget
}

// Controller returns a copy of the agent's controller memory.
func (s *Simulation) Controller() component.Controller {
	return *ecs.MustGet(s.world, s.agent, component.ControllerComponent.Kind())
}

// ApplyTuning swaps in new gains, rules and shapes. Positions, velocity,
// score and the controller's error history are kept. Call it between ticks.
func (s *Simulation) ApplyTuning(t prefabs.Tuning) error {
	if err := t.Rules.Validate(); err != nil {
		return fmt.Errorf("sim: rules: %w", err)
	}

	rules := ecs.MustGet(s.world, s.state, component.RulesComponent.Kind())
	*rules = entity.RulesFromSpec(t.Rules)

	ctrl := ecs.MustGet(s.world, s.agent, component.ControllerComponent.Kind())
	next := entity.ControllerFromSpec(t.Agent.Controller)
	ctrl.P, ctrl.I, ctrl.IAcc, ctrl.D = next.P, next.I, next.IAcc, next.D

	*ecs.MustGet(s.world, s.agent, component.ShapeComponent.Kind()) = entity.ShapeFromSpec(t.Agent.Shape)
	*ecs.MustGet(s.world, s.target, component.ShapeComponent.Kind()) = entity.ShapeFromSpec(t.Target.Shape)
	return nil
}
