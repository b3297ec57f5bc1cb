package component

import "github.com/jakecoffman/cp"

// GameState is the shared per-run state: the score and where the target
// currently is. HasTarget is false only until the first target spawn and
// never goes back to false.
type GameState struct {
	Score     uint32
	TargetPos cp.Vector
	HasTarget bool
}

// SetTarget records a new target position.
func (s *GameState) SetTarget(pos cp.Vector) {
	s.TargetPos = pos
	s.HasTarget = true
}

var GameStateComponent = NewComponent[GameState]()
