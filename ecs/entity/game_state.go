package entity

import (
	"fmt"

	"github.com/milk9111/pursuit/ecs"
	"github.com/milk9111/pursuit/ecs/component"
	"github.com/milk9111/pursuit/prefabs"
)

// NewGameState creates the entity holding the score, the target position,
// the shared rules and the score label. No target exists yet.
func NewGameState(w *ecs.World, spec prefabs.RulesSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.GameStateComponent.Kind(), &component.GameState{}); err != nil {
		return 0, fmt.Errorf("game state: add state: %w", err)
	}
	rules := RulesFromSpec(spec)
	if err := ecs.Add(w, e, component.RulesComponent.Kind(), &rules); err != nil {
		return 0, fmt.Errorf("game state: add rules: %w", err)
	}
	if err := ecs.Add(w, e, component.ScoreLabelComponent.Kind(), &component.ScoreLabel{}); err != nil {
		return 0, fmt.Errorf("game state: add score label: %w", err)
	}
	return e, nil
}

func RulesFromSpec(spec prefabs.RulesSpec) component.Rules {
	return component.Rules{
		EatRadius:    spec.EatRadius,
		Damping:      spec.Damping,
		PursuitScale: spec.PursuitScale,
		MaxSpeed:     spec.MaxSpeed,
		SpawnRange:   spec.SpawnRange,
		RespawnRange: spec.RespawnRange,
	}
}
