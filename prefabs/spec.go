package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	AgentFile  = "agent.yaml"
	TargetFile = "target.yaml"
	RulesFile  = "rules.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type AgentSpec struct {
	Name       string         `yaml:"name"`
	Transform  TransformSpec  `yaml:"transform"`
	Shape      ShapeSpec      `yaml:"shape"`
	Controller ControllerSpec `yaml:"controller"`
}

type TargetSpec struct {
	Name  string    `yaml:"name"`
	Shape ShapeSpec `yaml:"shape"`
}

type ControllerSpec struct {
	P    float64 `yaml:"p"`
	I    float64 `yaml:"i"`
	IAcc float64 `yaml:"i_acc"`
	D    float64 `yaml:"d"`
}

type RulesSpec struct {
	EatRadius    float64 `yaml:"eat_radius"`
	Damping      float64 `yaml:"damping"`
	PursuitScale float64 `yaml:"pursuit_scale"`
	MaxSpeed     float64 `yaml:"max_speed"`
	SpawnRange   float64 `yaml:"spawn_range"`
	RespawnRange float64 `yaml:"respawn_range"`
}

type TransformSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type ShapeSpec struct {
	Size  float64    `yaml:"size"`
	Color *YAMLColor `yaml:"color"`
	Layer int        `yaml:"layer"`
}

// Tuning is everything the simulation reads from prefab files.
type Tuning struct {
	Agent  AgentSpec
	Target TargetSpec
	Rules  RulesSpec
}

// LoadTuning reads and validates the agent, target and rules prefabs.
func LoadTuning() (Tuning, error) {
	var (
		t   Tuning
		err error
	)
	if t.Agent, err = LoadSpec[AgentSpec](AgentFile); err != nil {
		return Tuning{}, err
	}
	if t.Target, err = LoadSpec[TargetSpec](TargetFile); err != nil {
		return Tuning{}, err
	}
	if t.Rules, err = LoadSpec[RulesSpec](RulesFile); err != nil {
		return Tuning{}, err
	}
	if err := t.Rules.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("prefabs: %s: %w", RulesFile, err)
	}
	return t, nil
}

var (
	ErrNonPositive = errors.New("must be positive")
	ErrDamping     = errors.New("damping must be within [0, 1]")
)

func (r RulesSpec) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"eat_radius", r.EatRadius},
		{"pursuit_scale", r.PursuitScale},
		{"max_speed", r.MaxSpeed},
		{"spawn_range", r.SpawnRange},
		{"respawn_range", r.RespawnRange},
	}
	for _, f := range positive {
		if f.v <= 0 {
			return fmt.Errorf("%s %w, got %v", f.name, ErrNonPositive, f.v)
		}
	}
	if r.Damping < 0 || r.Damping > 1 {
		return fmt.Errorf("%w, got %v", ErrDamping, r.Damping)
	}
	return nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
