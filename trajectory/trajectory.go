// Package trajectory turns a path and a robot configuration into a
// time-parameterized, kinematically feasible trajectory, and answers "what is
// the target state at time t" over the result.
//
// Generation is a single synchronous computation: the path is discretized,
// a forward acceleration pass and a reverse deceleration pass shape the
// velocity profile (both clipped through wheel-speed desaturation), and
// trapezoidal time integration produces the final states. A built Trajectory
// is immutable and safe for concurrent reads from any number of goroutines.
package trajectory

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/holonomy/trajgen/config"
	"github.com/holonomy/trajgen/geom"
	"github.com/holonomy/trajgen/kinematics"
	"github.com/holonomy/trajgen/path"
)

// ErrIndexOutOfRange is returned by State for an index outside the state
// sequence. It signals an integration bug in the caller, so it is an error
// rather than a clamp.
var ErrIndexOutOfRange = errors.New("state index out of range")

// Event is a scheduled action on the trajectory timeline. The handle is
// opaque to this core; the caller's scheduler resolves and invokes it.
type Event struct {
	Time   float64
	Handle uuid.UUID
	Name   string
}

// Trajectory is an ordered, immutable sequence of target states plus the
// time-sorted schedule of path events. Callers must not modify the slices
// returned by its accessors.
type Trajectory struct {
	states []State
	events []Event
}

// New generates the trajectory for a path.
//
// startSpeeds are the robot-relative chassis speeds at the start of the
// path and startHeading is the starting field-relative body heading. The
// configuration and path are validated up front; no partially built
// trajectory is ever returned.
func New(p *path.Path, cfg config.RobotConfig, startSpeeds kinematics.ChassisSpeeds, startHeading geom.Rotation) (*Trajectory, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("robot config: %w", err)
	}
	if p == nil {
		return nil, path.ErrNoWaypoints
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	pts := samplePath(p, cfg, startHeading)
	forwardPass(pts, cfg, startSpeeds, startHeading)
	reversePass(pts, cfg, p.Goal.Velocity)
	states := integrate(pts, cfg)

	return &Trajectory{
		states: states,
		events: scheduleEvents(p, pts, states),
	}, nil
}

// States returns all states of the trajectory in time order.
func (t *Trajectory) States() []State {
	return t.states
}

// State returns the state at the given index.
func (t *Trajectory) State(index int) (State, error) {
	if index < 0 || index >= len(t.states) {
		return State{}, fmt.Errorf("%w: %d with %d states", ErrIndexOutOfRange, index, len(t.states))
	}
	return t.states[index], nil
}

// InitialState returns the first state of the trajectory.
func (t *Trajectory) InitialState() State {
	return t.states[0]
}

// EndState returns the last state of the trajectory.
func (t *Trajectory) EndState() State {
	return t.states[len(t.states)-1]
}

// TotalTime returns the total run time of the trajectory in seconds.
func (t *Trajectory) TotalTime() float64 {
	return t.EndState().Time
}

// InitialPose returns the robot pose at the start of the trajectory.
func (t *Trajectory) InitialPose() geom.Pose {
	return t.InitialState().Pose
}

// Events returns the scheduled (time, handle) pairs, sorted by time.
func (t *Trajectory) Events() []Event {
	return t.events
}
