// Package path defines the geometric input of trajectory generation: an
// ordered sequence of Bézier waypoints with per-range constraint zones,
// heading targets, event markers, and a mandatory goal end state.
//
// A Path is authored elsewhere (by an editor or by Load from a path file);
// this package only represents it and discretizes it into the dense point
// sequence the trajectory generator consumes.
package path

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/holonomy/trajgen/geom"
)

// Validation errors.
var (
	ErrNoWaypoints      = errors.New("path has no waypoints")
	ErrTooFewWaypoints  = errors.New("path needs at least two waypoints")
	ErrMissingControl   = errors.New("waypoint is missing a control point")
	ErrZoneOutOfRange   = errors.New("constraint zone range is invalid")
	ErrTargetOutOfRange = errors.New("rotation target position is out of range")
	ErrMarkerOutOfRange = errors.New("event marker position is out of range")
	ErrGoalVelocity     = errors.New("goal end-state velocity must not be negative")
)

// Waypoint is one anchor of the path's Bézier spline. PrevControl is nil for
// the first waypoint and NextControl is nil for the last one; every interior
// waypoint has both.
type Waypoint struct {
	Anchor      geom.Translation
	PrevControl *geom.Translation
	NextControl *geom.Translation
}

// Constraints are the kinematic limits in force over a stretch of path.
type Constraints struct {
	MaxVelocity            float64
	MaxAcceleration        float64
	MaxAngularVelocity     float64
	MaxAngularAcceleration float64
}

// ConstraintZone applies its constraints over a waypoint-relative position
// range. Positions count waypoints: 1.5 is halfway between the second and
// third waypoint.
type ConstraintZone struct {
	MinPosition float64
	MaxPosition float64
	Constraints Constraints
}

// RotationTarget pairs a waypoint-relative position with a desired body
// heading. Only holonomic drivetrains use rotation targets.
type RotationTarget struct {
	Position float64
	Rotation geom.Rotation
}

// EventMarker schedules an opaque action at a waypoint-relative position.
// The handle is resolved and invoked by the caller's scheduler; this core
// only carries it through to a (time, handle) pair on the trajectory.
type EventMarker struct {
	Handle   uuid.UUID
	Name     string
	Position float64
}

// GoalEndState is the required state at the end of the path. It is a
// mandatory part of every Path: the reverse acceleration pass always reads
// its velocity, there is no implicit default.
type GoalEndState struct {
	Velocity float64
	Rotation geom.Rotation
}

// Path is an ordered sequence of Bézier waypoints plus the constraint zones,
// rotation targets, and event markers that apply along it. RotationTargets
// must be sorted by position; Validate checks this.
type Path struct {
	Waypoints         []Waypoint
	GlobalConstraints Constraints
	Zones             []ConstraintZone
	RotationTargets   []RotationTarget
	EventMarkers      []EventMarker
	Goal              GoalEndState
}

// New validates and returns a path over the given waypoints.
func New(waypoints []Waypoint, constraints Constraints, goal GoalEndState) (*Path, error) {
	p := &Path{
		Waypoints:         waypoints,
		GlobalConstraints: constraints,
		Goal:              goal,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// FromPoses builds a path through the given poses, with each pose's heading
// used as the travel direction through its anchor. Control points are placed
// a third of the inter-anchor distance along the headings, which yields
// straight segments whenever consecutive headings line up with the
// displacement between anchors.
func FromPoses(poses []geom.Pose, constraints Constraints, goal GoalEndState) (*Path, error) {
	waypoints := make([]Waypoint, len(poses))
	for i, pose := range poses {
		waypoints[i].Anchor = pose.Translation
	}
	for i := 0; i < len(poses)-1; i++ {
		d := poses[i+1].Translation.Distance(poses[i].Translation) / 3
		next := poses[i].Translation.Add(geom.XY(poses[i].Rotation.Cos(), poses[i].Rotation.Sin()).Mul(d))
		prev := poses[i+1].Translation.Sub(geom.XY(poses[i+1].Rotation.Cos(), poses[i+1].Rotation.Sin()).Mul(d))
		waypoints[i].NextControl = &next
		waypoints[i+1].PrevControl = &prev
	}
	return New(waypoints, constraints, goal)
}

// Validate checks the structural invariants of the path.
func (p *Path) Validate() error {
	switch len(p.Waypoints) {
	case 0:
		return ErrNoWaypoints
	case 1:
		return ErrTooFewWaypoints
	}
	maxPos := float64(len(p.Waypoints) - 1)
	for i, wp := range p.Waypoints {
		if i > 0 && wp.PrevControl == nil {
			return fmt.Errorf("%w: waypoint %d has no prev control", ErrMissingControl, i)
		}
		if i < len(p.Waypoints)-1 && wp.NextControl == nil {
			return fmt.Errorf("%w: waypoint %d has no next control", ErrMissingControl, i)
		}
	}
	for i, z := range p.Zones {
		if z.MinPosition < 0 || z.MaxPosition > maxPos || z.MinPosition >= z.MaxPosition {
			return fmt.Errorf("%w: zone %d [%g, %g]", ErrZoneOutOfRange, i, z.MinPosition, z.MaxPosition)
		}
	}
	if !sort.SliceIsSorted(p.RotationTargets, func(i, j int) bool {
		return p.RotationTargets[i].Position < p.RotationTargets[j].Position
	}) {
		return fmt.Errorf("%w: rotation targets not sorted by position", ErrTargetOutOfRange)
	}
	for i, rt := range p.RotationTargets {
		if rt.Position < 0 || rt.Position > maxPos {
			return fmt.Errorf("%w: target %d at %g", ErrTargetOutOfRange, i, rt.Position)
		}
	}
	for i, m := range p.EventMarkers {
		if m.Position < 0 || m.Position > maxPos {
			return fmt.Errorf("%w: marker %q (%d) at %g", ErrMarkerOutOfRange, m.Name, i, m.Position)
		}
	}
	if p.Goal.Velocity < 0 {
		return fmt.Errorf("%w: %g", ErrGoalVelocity, p.Goal.Velocity)
	}
	return nil
}

// ConstraintsAt returns the constraints in force at a waypoint-relative
// position: the innermost zone covering it, or the global constraints.
func (p *Path) ConstraintsAt(pos float64) Constraints {
	for _, z := range p.Zones {
		if pos >= z.MinPosition && pos <= z.MaxPosition {
			return z.Constraints
		}
	}
	return p.GlobalConstraints
}
