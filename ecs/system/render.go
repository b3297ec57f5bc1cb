package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/pursuit/ecs"
	"github.com/milk9111/pursuit/ecs/component"
)

// RenderSystem draws every entity with a Shape. World coordinates have the
// origin at the screen center and +Y up.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

type drawItem struct {
	e     ecs.Entity
	pos   component.Transform
	shape component.Shape
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}

	var items []drawItem
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.ShapeComponent.Kind(), func(e ecs.Entity, t *component.Transform, s *component.Shape) {
		if s.Color == nil || s.Size <= 0 {
			return
		}
		items = append(items, drawItem{e: e, pos: *t, shape: *s})
	})
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].shape.Layer != items[j].shape.Layer {
			return items[i].shape.Layer < items[j].shape.Layer
		}
		return uint64(items[i].e) < uint64(items[j].e)
	})

	b := screen.Bounds()
	for _, it := range items {
		sx, sy := toScreen(it.pos.Position.X, it.pos.Position.Y, b.Dx(), b.Dy())
		vector.FillCircle(screen, float32(sx), float32(sy), float32(it.shape.Size/2), it.shape.Color, true)
	}
}

func toScreen(x, y float64, width, height int) (float64, float64) {
	return float64(width)/2 + x, float64(height)/2 - y
}
