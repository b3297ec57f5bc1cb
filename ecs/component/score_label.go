package component

// ScoreLabel is the text the HUD shows for the current score. Text is only
// rebuilt when Score changes.
type ScoreLabel struct {
	Score uint32
	Text  string
}

var ScoreLabelComponent = NewComponent[ScoreLabel]()
