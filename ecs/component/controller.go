package component

// Controller is the pursuit controller memory carried by the agent.
//
// I and IAcc are part of the controller state but the control law only
// uses the proportional and derivative terms; they are loaded and shown in
// debug output and otherwise left untouched.
type Controller struct {
	P    float64
	I    float64
	IAcc float64
	D    float64

	// PrevErr is the distance to the target seen on the previous update.
	// It is only meaningful while HasPrevErr is set.
	PrevErr    float64
	HasPrevErr bool
}

// ResetError forgets the derivative history so the next update starts a
// fresh pursuit.
func (c *Controller) ResetError() {
	c.PrevErr = 0
	c.HasPrevErr = false
}

func (c *Controller) SetError(dist float64) {
	c.PrevErr = dist
	c.HasPrevErr = true
}

var ControllerComponent = NewComponent[Controller]()
