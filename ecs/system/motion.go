package system

import (
	"github.com/milk9111/pursuit/ecs"
	"github.com/milk9111/pursuit/ecs/component"
)

// MotionSystem advances every moving entity by its velocity. There are no
// world bounds.
type MotionSystem struct{}

func NewMotionSystem() *MotionSystem { return &MotionSystem{} }

func (s *MotionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.VelocityComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, v *component.Velocity, t *component.Transform) {
		t.Position = t.Position.Add(v.Vector)
	})
}
