package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/holonomy/trajgen/geom"
	"github.com/holonomy/trajgen/kinematics"
)

// ErrModuleCount is returned when a holonomic settings file does not list
// exactly four module positions.
var ErrModuleCount = errors.New("holonomic settings need exactly 4 module positions")

// moduleYAML is one swerve module position in a settings file.
type moduleYAML struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// settingsYAML is the on-disk robot settings schema.
type settingsYAML struct {
	Topology        string       `yaml:"topology"`
	ModulePositions []moduleYAML `yaml:"module_positions"`
	TrackWidth      float64      `yaml:"track_width"`

	MaxWheelSpeed          float64 `yaml:"max_wheel_speed"`
	MaxVelocity            float64 `yaml:"max_velocity"`
	MaxAcceleration        float64 `yaml:"max_acceleration"`
	MaxAngularVelocity     float64 `yaml:"max_angular_velocity"`
	MaxAngularAcceleration float64 `yaml:"max_angular_acceleration"`
	MaxCentripetalAccel    float64 `yaml:"max_centripetal_accel"`

	ScaleRotation bool `yaml:"scale_rotation_on_desaturation"`
}

// Load reads a robot settings YAML file, builds the kinematics it describes,
// and returns a validated RobotConfig.
func Load(path string) (RobotConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return RobotConfig{}, fmt.Errorf("read settings: %w", err)
	}
	var s settingsYAML
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return RobotConfig{}, fmt.Errorf("parse settings: %w", err)
	}
	return s.build()
}

func (s settingsYAML) build() (RobotConfig, error) {
	cfg := RobotConfig{
		MaxWheelSpeed:          s.MaxWheelSpeed,
		MaxVelocity:            s.MaxVelocity,
		MaxAcceleration:        s.MaxAcceleration,
		MaxAngularVelocity:     s.MaxAngularVelocity,
		MaxAngularAcceleration: s.MaxAngularAcceleration,
		MaxCentripetalAccel:    s.MaxCentripetalAccel,
	}
	if s.ScaleRotation {
		cfg.Desaturation = kinematics.ScaleAll
	} else {
		cfg.Desaturation = kinematics.PreserveRotation
	}

	switch s.Topology {
	case "holonomic":
		cfg.Topology = Holonomic
		if len(s.ModulePositions) != kinematics.SwerveWheelCount {
			return RobotConfig{}, fmt.Errorf("%w: got %d", ErrModuleCount, len(s.ModulePositions))
		}
		var modules [kinematics.SwerveWheelCount]geom.Translation
		for i, m := range s.ModulePositions {
			modules[i] = geom.XY(m.X, m.Y)
		}
		k, err := kinematics.NewSwerve(modules)
		if err != nil {
			return RobotConfig{}, fmt.Errorf("swerve kinematics: %w", err)
		}
		cfg.Kinematics = k
	case "differential":
		cfg.Topology = Differential
		k, err := kinematics.NewDifferential(s.TrackWidth)
		if err != nil {
			return RobotConfig{}, fmt.Errorf("differential kinematics: %w", err)
		}
		cfg.Kinematics = k
	default:
		return RobotConfig{}, fmt.Errorf("%w: %q", ErrTopologyUnknown, s.Topology)
	}

	return New(cfg)
}
