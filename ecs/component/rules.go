package component

// Rules holds the tuning shared by the pursuit systems.
type Rules struct {
	// EatRadius is the exclusive distance under which the agent eats.
	EatRadius float64
	// Damping scales the velocity at the start of every controller update.
	Damping float64
	// PursuitScale is the length of the steering direction vector.
	PursuitScale float64
	// MaxSpeed caps each velocity axis from above only.
	MaxSpeed float64
	// SpawnRange is the half extent of the initial target spawn square.
	SpawnRange float64
	// RespawnRange is the half extent used when the target relocates.
	RespawnRange float64
}

func DefaultRules() Rules {
	return Rules{
		EatRadius:    10,
		Damping:      0.9,
		PursuitScale: 0.05,
		MaxSpeed:     10,
		SpawnRange:   300,
		RespawnRange: 200,
	}
}

var RulesComponent = NewComponent[Rules]()
