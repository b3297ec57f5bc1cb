package component

import "github.com/jakecoffman/cp"

// Transform is a world-space position with +Y up and the origin at the
// center of the view.
type Transform struct {
	Position cp.Vector
}

var TransformComponent = NewComponent[Transform]()
