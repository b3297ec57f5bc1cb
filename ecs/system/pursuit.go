package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pursuit/ecs"
	"github.com/milk9111/pursuit/ecs/component"
)

// PursuitSystem steers the agent toward the target with a damped PD law.
// It must run after EatSystem so an eat in this tick resets the derivative
// history before the new velocity is computed.
type PursuitSystem struct {
	agent ecs.Entity
	state ecs.Entity
}

func NewPursuitSystem(agent, state ecs.Entity) *PursuitSystem {
	return &PursuitSystem{agent: agent, state: state}
}

func (s *PursuitSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	t := ecs.MustGet(w, s.agent, component.TransformComponent.Kind())
	vel := ecs.MustGet(w, s.agent, component.VelocityComponent.Kind())
	ctrl := ecs.MustGet(w, s.agent, component.ControllerComponent.Kind())
	state := ecs.MustGet(w, s.state, component.GameStateComponent.Kind())
	rules := ecs.MustGet(w, s.state, component.RulesComponent.Kind())

	vel.Vector = vel.Vector.Mult(rules.Damping)

	if w.Events().Has(ecs.EventEaten) {
		ctrl.ResetError()
	}

	if !state.HasTarget {
		return
	}

	vel.Vector = steer(ctrl, vel.Vector, t.Position, state.TargetPos, rules)
}

// steer applies one PD update to v and returns the clamped result. ctrl's
// previous error is replaced with the current distance.
func steer(ctrl *component.Controller, v, pos, target cp.Vector, rules *component.Rules) cp.Vector {
	delta := pos.Sub(target)
	dist := delta.Length()

	// On top of the target the direction is undefined; steer with nothing.
	var dir cp.Vector
	if dist > 0 {
		dir = delta.Mult(1 / dist).Mult(rules.PursuitScale)
	}

	pResp := dist * ctrl.P
	dResp := 0.0
	if ctrl.HasPrevErr {
		dResp = (dist - ctrl.PrevErr) * ctrl.D
	}
	ctrl.SetError(dist)

	v = v.Sub(dir.Mult(pResp + dResp))
	v.X = math.Min(v.X, rules.MaxSpeed)
	v.Y = math.Min(v.Y, rules.MaxSpeed)
	return v
}
