package entity

import (
	"fmt"
	"math/rand"

	"github.com/milk9111/pursuit/common"
	"github.com/milk9111/pursuit/ecs"
	"github.com/milk9111/pursuit/ecs/component"
	"github.com/milk9111/pursuit/prefabs"
)

// NewTarget creates the target at its startup position. The startup spawn
// uses the rules' SpawnRange, which is wider than the range used by later
// respawns, and publishes the position to the game state.
func NewTarget(w *ecs.World, spec prefabs.TargetSpec, state ecs.Entity, rng *rand.Rand) (ecs.Entity, error) {
	gs, ok := ecs.Get(w, state, component.GameStateComponent.Kind())
	if !ok {
		return 0, fmt.Errorf("target: game state %s has no GameState", state)
	}
	rules, ok := ecs.Get(w, state, component.RulesComponent.Kind())
	if !ok {
		return 0, fmt.Errorf("target: game state %s has no Rules", state)
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TargetTagComponent.Kind(), &component.TargetTag{}); err != nil {
		return 0, fmt.Errorf("target: add tag: %w", err)
	}
	pos := common.RandomPoint(rng, rules.SpawnRange)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos}); err != nil {
		return 0, fmt.Errorf("target: add transform: %w", err)
	}
	shape := ShapeFromSpec(spec.Shape)
	if err := ecs.Add(w, e, component.ShapeComponent.Kind(), &shape); err != nil {
		return 0, fmt.Errorf("target: add shape: %w", err)
	}

	gs.SetTarget(pos)
	return e, nil
}
