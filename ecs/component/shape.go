package component

import "image/color"

// Shape is how an entity is drawn: a filled circle of the given diameter.
type Shape struct {
	Size  float64
	Color color.Color
	Layer int
}

var ShapeComponent = NewComponent[Shape]()
