package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

const (
	PlayerFile   = "player.yaml"
	ArenaFile    = "arena.yaml"
	BindingsFile = "bindings.yaml"
	LoopFile     = "loop.yaml"
	LookFile     = "look.yaml"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

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

// PlayerSpec holds the movement tuning for the first-person player.
type PlayerSpec struct {
	Height       float64  `yaml:"height"`
	Speed        float64  `yaml:"speed"`
	JumpImpulse  float64  `yaml:"jump_impulse"`
	Gravity      float64  `yaml:"gravity"`
	ProbeEpsilon float64  `yaml:"probe_epsilon"`
	ProbeMargin  float64  `yaml:"probe_margin"`
	Spawn        Vec3Spec `yaml:"spawn"`
}

func (s PlayerSpec) Validate() error {
	switch {
	case s.Height <= 0:
		return fmt.Errorf("%w: player height must be positive, got %g", ErrInvalidSpec, s.Height)
	case s.Speed < 0:
		return fmt.Errorf("%w: player speed must not be negative, got %g", ErrInvalidSpec, s.Speed)
	case s.JumpImpulse < 0:
		return fmt.Errorf("%w: jump impulse must not be negative, got %g", ErrInvalidSpec, s.JumpImpulse)
	case s.Gravity >= 0:
		return fmt.Errorf("%w: gravity must be negative, got %g", ErrInvalidSpec, s.Gravity)
	case s.ProbeEpsilon < 0 || s.ProbeMargin < 0:
		return fmt.Errorf("%w: probe epsilon and margin must not be negative", ErrInvalidSpec)
	}
	return nil
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](PlayerFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", PlayerFile, err)
	}
	return &spec, nil
}

type ArenaSpec struct {
	Size          float64     `yaml:"size"`
	WallHeight    float64     `yaml:"wall_height"`
	WallThickness float64     `yaml:"wall_thickness"`
	FloorColor    YAMLColor   `yaml:"floor_color"`
	WallColor     YAMLColor   `yaml:"wall_color"`
	GridColor     YAMLColor   `yaml:"grid_color"`
	Lights        []LightSpec `yaml:"lights"`
}

type LightSpec struct {
	Kind       string    `yaml:"kind"`
	Color      YAMLColor `yaml:"color"`
	Intensity  float64   `yaml:"intensity"`
	Position   Vec3Spec  `yaml:"position"`
	CastShadow bool      `yaml:"cast_shadow"`
}

func (s ArenaSpec) Validate() error {
	switch {
	case s.Size <= 0:
		return fmt.Errorf("%w: arena size must be positive, got %g", ErrInvalidSpec, s.Size)
	case s.WallHeight < 0 || s.WallThickness < 0:
		return fmt.Errorf("%w: wall dimensions must not be negative", ErrInvalidSpec)
	}
	for i, l := range s.Lights {
		if l.Kind != "ambient" && l.Kind != "directional" {
			return fmt.Errorf("%w: light %d has unknown kind %q", ErrInvalidSpec, i, l.Kind)
		}
	}
	return nil
}

func LoadArenaSpec() (*ArenaSpec, error) {
	spec, err := LoadSpec[ArenaSpec](ArenaFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", ArenaFile, err)
	}
	return &spec, nil
}

// BindingsSpec lists key names, as ebiten prints them, for each intent.
type BindingsSpec struct {
	Forward  []string `yaml:"forward"`
	Backward []string `yaml:"backward"`
	Left     []string `yaml:"left"`
	Right    []string `yaml:"right"`
	Jump     []string `yaml:"jump"`
}

func LoadBindingsSpec() (*BindingsSpec, error) {
	spec, err := LoadSpec[BindingsSpec](BindingsFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type LoopSpec struct {
	TPS      int     `yaml:"tps"`
	MaxDelta float64 `yaml:"max_delta"`
}

func LoadLoopSpec() (*LoopSpec, error) {
	spec, err := LoadSpec[LoopSpec](LoopFile)
	if err != nil {
		return nil, err
	}
	if spec.TPS < 0 || spec.MaxDelta < 0 {
		return nil, fmt.Errorf("prefabs: %s: %w: tps and max_delta must not be negative", LoopFile, ErrInvalidSpec)
	}
	return &spec, nil
}

type LookSpec struct {
	Sensitivity float64 `yaml:"sensitivity"`
}

func LoadLookSpec() (*LookSpec, error) {
	spec, err := LoadSpec[LookSpec](LookFile)
	if err != nil {
		return nil, err
	}
	if spec.Sensitivity <= 0 {
		return nil, fmt.Errorf("prefabs: %s: %w: sensitivity must be positive", LookFile, ErrInvalidSpec)
	}
	return &spec, nil
}

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3Spec) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

type YAMLColor struct {
	color.RGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(strings.TrimPrefix(value.Value, "#"), "0x")

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

	c.RGBA = color.RGBA{R: r, G: g, B: b, A: a}
	return nil
}
