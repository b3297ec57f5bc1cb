package system

import (
	"github.com/milk9111/pursuit/ecs"
	"github.com/milk9111/pursuit/ecs/component"
)

// EatSystem checks whether the agent reached the target. On a hit it bumps
// the score and raises EventEaten for the rest of the tick.
type EatSystem struct {
	agent ecs.Entity
	state ecs.Entity
}

func NewEatSystem(agent, state ecs.Entity) *EatSystem {
	return &EatSystem{agent: agent, state: state}
}

func (s *EatSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	t := ecs.MustGet(w, s.agent, component.TransformComponent.Kind())
	state := ecs.MustGet(w, s.state, component.GameStateComponent.Kind())
	rules := ecs.MustGet(w, s.state, component.RulesComponent.Kind())

	if !state.HasTarget {
		return
	}
	if t.Position.Distance(state.TargetPos) >= rules.EatRadius {
		return
	}

	state.Score++
	w.Events().Push(ecs.Event{Type: ecs.EventEaten, Data: state.Score})
}
