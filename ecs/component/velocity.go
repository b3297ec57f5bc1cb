package component

import "github.com/jakecoffman/cp"

// Velocity is the per-tick displacement applied by the motion system.
type Velocity struct {
	cp.Vector
}

var VelocityComponent = NewComponent[Velocity]()
