// Package kinematics converts between chassis-level speeds and per-wheel
// states for the supported drivetrain layouts, and provides wheel-speed
// desaturation.
//
// The Kinematics interface is the capability the trajectory generator is
// handed via the robot configuration. Both implementations validate their
// geometry at construction, so conversions never fail on geometry once a
// value has been built.
package kinematics

import (
	"errors"
	"fmt"
	"math"

	"github.com/holonomy/trajgen/geom"
)

var (
	// ErrSingularLayout is returned when a swerve module layout admits no
	// forward kinematics solution (all modules at the same point).
	ErrSingularLayout = errors.New("swerve module layout is singular")

	// ErrTrackWidth is returned for a non-positive differential track width.
	ErrTrackWidth = errors.New("track width must be positive")

	// ErrWheelCount is returned when a wheel-state slice does not match the
	// drivetrain's wheel count.
	ErrWheelCount = errors.New("wheel state count mismatch")
)

// ChassisSpeeds is the robot-relative velocity of the chassis: forward VX
// (m/s), leftward VY (m/s), and counter-clockwise Omega (rad/s).
type ChassisSpeeds struct {
	VX    float64
	VY    float64
	Omega float64
}

// TranslationSpeed returns the magnitude of the translational component.
func (cs ChassisSpeeds) TranslationSpeed() float64 {
	return math.Hypot(cs.VX, cs.VY)
}

// WheelState is a single wheel's commanded speed (m/s, signed along Angle)
// and the heading of its rolling direction.
type WheelState struct {
	Speed float64
	Angle geom.Rotation
}

// Kinematics converts between chassis speeds and per-wheel states for one
// drivetrain layout. Implementations are immutable once constructed.
type Kinematics interface {
	// ToWheelStates decomposes chassis speeds into per-wheel states. The
	// returned slice has WheelCount elements.
	ToWheelStates(speeds ChassisSpeeds) []WheelState

	// ToChassisSpeeds recombines per-wheel states into chassis speeds.
	// Returns ErrWheelCount if states does not have WheelCount elements.
	ToChassisSpeeds(states []WheelState) (ChassisSpeeds, error)

	// WheelCount returns the number of wheels of the drivetrain.
	WheelCount() int
}

func checkWheelCount(states []WheelState, want int) error {
	if len(states) != want {
		return fmt.Errorf("%w: got %d, want %d", ErrWheelCount, len(states), want)
	}
	return nil
}
