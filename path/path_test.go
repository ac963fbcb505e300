package path

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holonomy/trajgen/geom"
)

func testConstraints() Constraints {
	return Constraints{
		MaxVelocity:            3,
		MaxAcceleration:        2,
		MaxAngularVelocity:     6,
		MaxAngularAcceleration: 10,
	}
}

func straightLine(t *testing.T, length float64) *Path {
	t.Helper()
	p, err := FromPoses([]geom.Pose{
		geom.NewPose(0, 0, geom.Deg(0)),
		geom.NewPose(length, 0, geom.Deg(0)),
	}, testConstraints(), GoalEndState{})
	require.NoError(t, err)
	return p
}

func TestValidateRejectsMalformedPaths(t *testing.T) {
	anchor := geom.XY(1, 1)
	tests := []struct {
		name    string
		path    Path
		wantErr error
	}{
		{"no waypoints", Path{}, ErrNoWaypoints},
		{"one waypoint", Path{Waypoints: []Waypoint{{Anchor: anchor}}}, ErrTooFewWaypoints},
		{
			"missing control",
			Path{Waypoints: []Waypoint{{Anchor: geom.XY(0, 0)}, {Anchor: anchor}}},
			ErrMissingControl,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.path.Validate(), tt.wantErr)
		})
	}
}

func TestValidateRanges(t *testing.T) {
	p := straightLine(t, 4)

	p.Zones = []ConstraintZone{{MinPosition: 0.8, MaxPosition: 0.2}}
	assert.ErrorIs(t, p.Validate(), ErrZoneOutOfRange)
	p.Zones = nil

	p.RotationTargets = []RotationTarget{{Position: 5, Rotation: geom.Deg(90)}}
	assert.ErrorIs(t, p.Validate(), ErrTargetOutOfRange)
	p.RotationTargets = []RotationTarget{
		{Position: 0.8, Rotation: geom.Deg(90)},
		{Position: 0.2, Rotation: geom.Deg(0)},
	}
	assert.ErrorIs(t, p.Validate(), ErrTargetOutOfRange, "targets must be sorted")
	p.RotationTargets = nil

	p.EventMarkers = []EventMarker{{Name: "intake", Position: -1}}
	assert.ErrorIs(t, p.Validate(), ErrMarkerOutOfRange)
	p.EventMarkers = nil

	p.Goal.Velocity = -0.5
	assert.ErrorIs(t, p.Validate(), ErrGoalVelocity)
}

func TestConstraintsAt(t *testing.T) {
	p := straightLine(t, 4)
	slow := Constraints{MaxVelocity: 1, MaxAcceleration: 1, MaxAngularVelocity: 2, MaxAngularAcceleration: 4}
	p.Zones = []ConstraintZone{{MinPosition: 0.25, MaxPosition: 0.5, Constraints: slow}}
	require.NoError(t, p.Validate())

	assert.Equal(t, p.GlobalConstraints, p.ConstraintsAt(0.1))
	assert.Equal(t, slow, p.ConstraintsAt(0.3))
	assert.Equal(t, p.GlobalConstraints, p.ConstraintsAt(0.9))
}

func TestFromPosesControlPlacement(t *testing.T) {
	p := straightLine(t, 3)
	require.Len(t, p.Waypoints, 2)

	first, last := p.Waypoints[0], p.Waypoints[1]
	assert.Nil(t, first.PrevControl)
	assert.Nil(t, last.NextControl)
	require.NotNil(t, first.NextControl)
	require.NotNil(t, last.PrevControl)

	// Controls sit a third of the way along the headings.
	assert.InDelta(t, 1.0, first.NextControl.X, 1e-9)
	assert.InDelta(t, 0.0, first.NextControl.Y, 1e-9)
	assert.InDelta(t, 2.0, last.PrevControl.X, 1e-9)
	assert.InDelta(t, 0.0, last.PrevControl.Y, 1e-9)
}
