package system

import (
	"log"
	"math/rand"

	"github.com/milk9111/pursuit/common"
	"github.com/milk9111/pursuit/ecs"
	"github.com/milk9111/pursuit/ecs/component"
)

// RespawnSystem moves the target to a new random spot whenever it was eaten
// this tick and records the new position in the game state.
type RespawnSystem struct {
	target ecs.Entity
	state  ecs.Entity
	rng    *rand.Rand
	debug  bool
}

func NewRespawnSystem(target, state ecs.Entity, rng *rand.Rand, debug bool) *RespawnSystem {
	return &RespawnSystem{target: target, state: state, rng: rng, debug: debug}
}

func (s *RespawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	t := ecs.MustGet(w, s.target, component.TransformComponent.Kind())
	state := ecs.MustGet(w, s.state, component.GameStateComponent.Kind())
	rules := ecs.MustGet(w, s.state, component.RulesComponent.Kind())

	if !w.Events().Has(ecs.EventEaten) {
		return
	}

	t.Position = common.RandomPoint(s.rng, rules.RespawnRange)
	state.SetTarget(t.Position)

	if s.debug {
		log.Printf("respawn: target eaten, score=%d, new target=(%.1f, %.1f)", state.Score, t.Position.X, t.Position.Y)
	}
}
