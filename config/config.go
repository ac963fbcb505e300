// Package config describes the physical robot a trajectory is generated for:
// drivetrain topology, kinematics, and motion limits.
//
// A RobotConfig is validated once, at construction or load time. Trajectory
// generation assumes a valid configuration and never re-discovers
// configuration problems mid-generation.
package config

import (
	"errors"
	"fmt"

	"github.com/holonomy/trajgen/kinematics"
)

// Topology is the drivetrain category.
type Topology int

const (
	// Holonomic is a drivetrain with independently steerable, driven wheels
	// (four swerve modules). Body heading is independent of the direction of
	// travel.
	Holonomic Topology = iota + 1

	// Differential is a two-wheel drivetrain without independent steering.
	// Body heading always follows the path tangent.
	Differential
)

func (t Topology) String() string {
	switch t {
	case Holonomic:
		return "holonomic"
	case Differential:
		return "differential"
	default:
		return fmt.Sprintf("Topology(%d)", int(t))
	}
}

// wheelCount returns the wheel count the topology requires, or 0 for an
// unknown topology.
func (t Topology) wheelCount() int {
	switch t {
	case Holonomic:
		return kinematics.SwerveWheelCount
	case Differential:
		return kinematics.DifferentialWheelCount
	default:
		return 0
	}
}

// Validation errors.
var (
	ErrTopologyUnknown    = errors.New("unknown drivetrain topology")
	ErrKinematicsNil      = errors.New("kinematics must not be nil")
	ErrWheelCountMismatch = errors.New("kinematics wheel count does not match topology")
	ErrLimitNotPositive   = errors.New("motion limit must be positive")
)

// RobotConfig describes the robot's drivetrain and motion limits. All speeds
// are m/s, accelerations m/s², angular rates rad/s and rad/s².
type RobotConfig struct {
	Topology   Topology
	Kinematics kinematics.Kinematics

	// MaxWheelSpeed is the physical speed limit of a single wheel or module.
	MaxWheelSpeed float64

	MaxVelocity            float64
	MaxAcceleration        float64
	MaxAngularVelocity     float64
	MaxAngularAcceleration float64

	// MaxCentripetalAccel bounds the lateral acceleration used to derive
	// curvature velocity ceilings. Zero means "use MaxAcceleration".
	MaxCentripetalAccel float64

	// Desaturation selects how wheel-speed desaturation treats the
	// rotational component.
	Desaturation kinematics.DesaturationMode
}

// New validates cfg and returns it. Any malformed kinematics pairing is
// rejected here, never during trajectory generation.
func New(cfg RobotConfig) (RobotConfig, error) {
	if err := cfg.Validate(); err != nil {
		return RobotConfig{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration is well-formed: a known topology, a
// kinematics capability whose wheel count matches it, and positive limits.
func (c RobotConfig) Validate() error {
	want := c.Topology.wheelCount()
	if want == 0 {
		return fmt.Errorf("%w: %d", ErrTopologyUnknown, int(c.Topology))
	}
	if c.Kinematics == nil {
		return ErrKinematicsNil
	}
	if got := c.Kinematics.WheelCount(); got != want {
		return fmt.Errorf("%w: topology %v wants %d, kinematics has %d", ErrWheelCountMismatch, c.Topology, want, got)
	}
	for name, v := range map[string]float64{
		"max_wheel_speed":          c.MaxWheelSpeed,
		"max_velocity":             c.MaxVelocity,
		"max_acceleration":         c.MaxAcceleration,
		"max_angular_velocity":     c.MaxAngularVelocity,
		"max_angular_acceleration": c.MaxAngularAcceleration,
	} {
		if v <= 0 {
			return fmt.Errorf("%w: %s = %g", ErrLimitNotPositive, name, v)
		}
	}
	if c.MaxCentripetalAccel < 0 {
		return fmt.Errorf("%w: max_centripetal_accel = %g", ErrLimitNotPositive, c.MaxCentripetalAccel)
	}
	return nil
}

// CentripetalLimit returns the lateral acceleration bound used for curvature
// velocity ceilings.
func (c RobotConfig) CentripetalLimit() float64 {
	if c.MaxCentripetalAccel > 0 {
		return c.MaxCentripetalAccel
	}
	return c.MaxAcceleration
}
