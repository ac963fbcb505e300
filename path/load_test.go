package path

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holonomy/trajgen/geom"
)

const samplePathFile = `{
  "waypoints": [
    {"anchor": {"x": 0, "y": 0}, "prevControl": null, "nextControl": {"x": 1, "y": 0}},
    {"anchor": {"x": 3, "y": 0}, "prevControl": {"x": 2, "y": 0}, "nextControl": null}
  ],
  "globalConstraints": {
    "maxVelocity": 3,
    "maxAcceleration": 2,
    "maxAngularVelocity": 6,
    "maxAngularAcceleration": 10
  },
  "constraintZones": [
    {
      "minWaypointRelativePos": 0.25,
      "maxWaypointRelativePos": 0.5,
      "constraints": {"maxVelocity": 1, "maxAcceleration": 1, "maxAngularVelocity": 2, "maxAngularAcceleration": 4}
    }
  ],
  "rotationTargets": [
    {"waypointRelativePos": 0.5, "rotationDegrees": 90}
  ],
  "eventMarkers": [
    {"name": "intake", "waypointRelativePos": 0.75}
  ],
  "goalEndState": {"velocity": 0, "rotationDegrees": 180}
}`

func writePathFile(t *testing.T, contents string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "test.path")
	require.NoError(t, os.WriteFile(file, []byte(contents), 0o644))
	return file
}

func TestLoad(t *testing.T) {
	p, err := Load(writePathFile(t, samplePathFile))
	require.NoError(t, err)

	require.Len(t, p.Waypoints, 2)
	if diff := cmp.Diff(geom.XY(1, 0), *p.Waypoints[0].NextControl); diff != "" {
		t.Errorf("next control mismatch (-want +got):\n%s", diff)
	}
	assert.Nil(t, p.Waypoints[0].PrevControl)

	want := Constraints{MaxVelocity: 3, MaxAcceleration: 2, MaxAngularVelocity: 6, MaxAngularAcceleration: 10}
	if diff := cmp.Diff(want, p.GlobalConstraints); diff != "" {
		t.Errorf("global constraints mismatch (-want +got):\n%s", diff)
	}

	require.Len(t, p.Zones, 1)
	assert.Equal(t, 0.25, p.Zones[0].MinPosition)
	assert.Equal(t, 1.0, p.Zones[0].Constraints.MaxVelocity)

	require.Len(t, p.RotationTargets, 1)
	assert.InDelta(t, 90, p.RotationTargets[0].Rotation.Degrees(), 1e-9)

	require.Len(t, p.EventMarkers, 1)
	assert.Equal(t, "intake", p.EventMarkers[0].Name)
	assert.NotEqual(t, uuid.Nil, p.EventMarkers[0].Handle, "markers get opaque handles")

	assert.Equal(t, 0.0, p.Goal.Velocity)
	assert.InDelta(t, 180, p.Goal.Rotation.Degrees(), 1e-9)
}

func TestLoadRejectsEmptyPath(t *testing.T) {
	_, err := Load(writePathFile(t, `{"waypoints": []}`))
	assert.ErrorIs(t, err, ErrNoWaypoints)
}

func TestLoadRejectsGarbage(t *testing.T) {
	_, err := Load(writePathFile(t, "not json"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.path"))
	assert.Error(t, err)
}
