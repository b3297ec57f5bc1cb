package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pursuit/ecs"
	"github.com/milk9111/pursuit/ecs/component"
	"github.com/milk9111/pursuit/prefabs"
)

// NewAgent creates the pursuing agent: at rest at its prefab position with
// no derivative history.
func NewAgent(w *ecs.World, spec prefabs.AgentSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.AgentTagComponent.Kind(), &component.AgentTag{}); err != nil {
		return 0, fmt.Errorf("agent: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		Position: cp.Vector{X: spec.Transform.X, Y: spec.Transform.Y},
	}); err != nil {
		return 0, fmt.Errorf("agent: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return 0, fmt.Errorf("agent: add velocity: %w", err)
	}
	ctrl := ControllerFromSpec(spec.Controller)
	if err := ecs.Add(w, e, component.ControllerComponent.Kind(), &ctrl); err != nil {
		return 0, fmt.Errorf("agent: add controller: %w", err)
	}
	shape := ShapeFromSpec(spec.Shape)
	if err := ecs.Add(w, e, component.ShapeComponent.Kind(), &shape); err != nil {
		return 0, fmt.Errorf("agent: add shape: %w", err)
	}
	return e, nil
}

func ControllerFromSpec(spec prefabs.ControllerSpec) component.Controller {
	return component.Controller{
		P:    spec.P,
		I:    spec.I,
		IAcc: spec.IAcc,
		D:    spec.D,
	}
}

func ShapeFromSpec(spec prefabs.ShapeSpec) component.Shape {
	shape := component.Shape{Size: spec.Size, Layer: spec.Layer}
	if spec.Color != nil {
		shape.Color = spec.Color.Color
	}
	return shape
}
