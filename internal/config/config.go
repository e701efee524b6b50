// Package config handles simulator configuration loading and validation.
package config

import (
	"errors"
	"fmt"

	"GopherWater/internal/water"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all simulator settings.
type Config struct {
	Water      WaterConfig      `yaml:"water"`
	Shape      ShapeConfig      `yaml:"shape"`
	Simulation SimulationConfig `yaml:"simulation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// WaterConfig holds the wobble tuning forwarded to the shader.
type WaterConfig struct {
	MaxAngle      float32 `yaml:"max_angle"`
	MaxWobble     float32 `yaml:"max_wobble"`
	WobbleSpeed   float32 `yaml:"wobble_speed"`
	RecoverySpeed float32 `yaml:"recovery_speed"`
	WrapAngles    bool    `yaml:"wrap_angles"`
}

// ShapeConfig selects how the height range is sampled.
type ShapeConfig struct {
	UseRealHeightRange bool       `yaml:"use_real_height_range"`
	MeshFile           string     `yaml:"mesh_file"` // empty uses the generated grid
	SubMesh            int        `yaml:"sub_mesh"`
	GridSize           float32    `yaml:"grid_size"`
	GridResolution     int        `yaml:"grid_resolution"`
	BoxCenter          [3]float32 `yaml:"box_center"`
	BoxSize            [3]float32 `yaml:"box_size"`
}

// SimulationConfig drives the headless frame loop.
type SimulationConfig struct {
	Frames     int            `yaml:"frames"`
	DeltaTime  float32        `yaml:"delta_time"`
	FixedEvery int            `yaml:"fixed_every"`
	Scripts    []ScriptConfig `yaml:"scripts"`
}

// ScriptConfig attaches a registered motion script to the water object.
type ScriptConfig struct {
	Name  string         `yaml:"name"`
	Props map[string]any `yaml:"props"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	params := water.DefaultParams()
	return &Config{
		Water: WaterConfig{
			MaxAngle:      params.MaxAngle,
			MaxWobble:     params.MaxWobble,
			WobbleSpeed:   params.WobbleSpeed,
			RecoverySpeed: params.RecoverySpeed,
		},
		Shape: ShapeConfig{
			GridSize:       10,
			GridResolution: 32,
			BoxSize:        [3]float32{1, 1, 1},
		},
		Simulation: SimulationConfig{
			Frames:     600,
			DeltaTime:  1.0 / 60.0,
			FixedEvery: 2,
			Scripts: []ScriptConfig{
				{Name: "BounceScript", Props: map[string]any{"height": 0.5, "speed": 2.0}},
			},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports the first out-of-range setting.
func (c *Config) Validate() error {
	switch {
	case c.Water.MaxAngle < 0 || c.Water.MaxAngle > 90:
		return fmt.Errorf("%w: water.max_angle %v outside [0, 90]", ErrInvalidConfig, c.Water.MaxAngle)
	case c.Water.MaxWobble < 0:
		return fmt.Errorf("%w: water.max_wobble %v is negative", ErrInvalidConfig, c.Water.MaxWobble)
	case c.Water.WobbleSpeed < 0:
		return fmt.Errorf("%w: water.wobble_speed %v is negative", ErrInvalidConfig, c.Water.WobbleSpeed)
	case c.Water.RecoverySpeed < 0:
		return fmt.Errorf("%w: water.recovery_speed %v is negative", ErrInvalidConfig, c.Water.RecoverySpeed)
	case c.Shape.SubMesh < 0:
		return fmt.Errorf("%w: shape.sub_mesh %d is negative", ErrInvalidConfig, c.Shape.SubMesh)
	case c.Shape.BoxSize[0] < 0 || c.Shape.BoxSize[1] < 0 || c.Shape.BoxSize[2] < 0:
		return fmt.Errorf("%w: shape.box_size %v has a negative extent", ErrInvalidConfig, c.Shape.BoxSize)
	case c.Shape.MeshFile == "" && c.Shape.GridSize <= 0:
		return fmt.Errorf("%w: shape.grid_size %v must be positive", ErrInvalidConfig, c.Shape.GridSize)
	case c.Simulation.Frames <= 0:
		return fmt.Errorf("%w: simulation.frames %d must be positive", ErrInvalidConfig, c.Simulation.Frames)
	case c.Simulation.DeltaTime <= 0:
		return fmt.Errorf("%w: simulation.delta_time %v must be positive", ErrInvalidConfig, c.Simulation.DeltaTime)
	case c.Simulation.FixedEvery <= 0:
		return fmt.Errorf("%w: simulation.fixed_every %d must be positive", ErrInvalidConfig, c.Simulation.FixedEvery)
	}
	for i, s := range c.Simulation.Scripts {
		if s.Name == "" {
			return fmt.Errorf("%w: simulation.scripts[%d] has no name", ErrInvalidConfig, i)
		}
	}
	return nil
}

// Params converts the water section to integrator parameters.
func (c *Config) Params() water.Params {
	return water.Params{
		MaxAngle:      c.Water.MaxAngle,
		MaxWobble:     c.Water.MaxWobble,
		WobbleSpeed:   c.Water.WobbleSpeed,
		RecoverySpeed: c.Water.RecoverySpeed,
		WrapAngles:    c.Water.WrapAngles,
	}
}

// Box returns the configured local-space box.
func (c *Config) Box() water.Box {
	return water.Box{
		Center: mgl32.Vec3(c.Shape.BoxCenter),
		Size:   mgl32.Vec3(c.Shape.BoxSize),
	}
}
