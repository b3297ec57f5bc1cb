package system

import (
	"fmt"

	"github.com/milk9111/pursuit/ecs"
	"github.com/milk9111/pursuit/ecs/component"
)

const scoreLabelFormat = "Food eaten %d"

// ScoreSystem mirrors the score into the HUD label. It runs after EatSystem
// so the label includes an eat from the current tick.
type ScoreSystem struct {
	state ecs.Entity
}

func NewScoreSystem(state ecs.Entity) *ScoreSystem { return &ScoreSystem{state: state} }

func (s *ScoreSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	state := ecs.MustGet(w, s.state, component.GameStateComponent.Kind())
	label := ecs.MustGet(w, s.state, component.ScoreLabelComponent.Kind())

	if label.Text != "" && label.Score == state.Score {
		return
	}
	label.Score = state.Score
	label.Text = fmt.Sprintf(scoreLabelFormat, state.Score)
}
