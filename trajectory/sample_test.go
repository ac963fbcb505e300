package trajectory

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holonomy/trajgen/geom"
	"github.com/holonomy/trajgen/kinematics"
)

func trapezoidTrajectory(t *testing.T) *Trajectory {
	t.Helper()
	traj, err := New(straightPath(t, 6, 3, 2), diffConfig(t, 3, 2), kinematics.ChassisSpeeds{}, geom.Rotation{})
	require.NoError(t, err)
	return traj
}

func TestSampleClampsOutOfRange(t *testing.T) {
	traj := trapezoidTrajectory(t)

	assert.Equal(t, traj.InitialState(), traj.Sample(-1), "times before the start return the initial state")
	assert.Equal(t, traj.InitialState(), traj.Sample(0))
	assert.Equal(t, traj.EndState(), traj.Sample(traj.TotalTime()+5), "times past the end return the end state")
	assert.Equal(t, traj.EndState(), traj.Sample(traj.TotalTime()))
}

func TestSampleExactTimestamps(t *testing.T) {
	traj := trapezoidTrajectory(t)

	for _, i := range []int{0, 1, 7, len(traj.States()) / 2, len(traj.States()) - 1} {
		s := traj.States()[i]
		assert.Equal(t, s, traj.Sample(s.Time), "state %d returned unmodified, no interpolation drift", i)
	}
}

func TestSampleInterpolatesWithinBrackets(t *testing.T) {
	traj := trapezoidTrajectory(t)
	states := traj.States()

	lo, hi := states[10], states[11]
	mid := traj.Sample((lo.Time + hi.Time) / 2)

	// Every interpolated quantity lies within the convex hull of the
	// bracketing states.
	between := func(x, a, b float64) bool {
		return x >= math.Min(a, b)-1e-9 && x <= math.Max(a, b)+1e-9
	}
	assert.True(t, between(mid.Velocity, lo.Velocity, hi.Velocity))
	assert.True(t, between(mid.Pose.Translation.X, lo.Pose.Translation.X, hi.Pose.Translation.X))
	assert.True(t, between(mid.AngularVelocity, lo.AngularVelocity, hi.AngularVelocity))
	assert.True(t, between(mid.Curvature, lo.Curvature, hi.Curvature))
	require.Len(t, mid.WheelStates, len(lo.WheelStates))
	for i := range mid.WheelStates {
		assert.True(t, between(mid.WheelStates[i].Speed, lo.WheelStates[i].Speed, hi.WheelStates[i].Speed), "wheel %d", i)
	}

	assert.InDelta(t, (lo.Time+hi.Time)/2, mid.Time, 1e-12)
	assert.InDelta(t, (lo.Velocity+hi.Velocity)/2, mid.Velocity, 1e-9)
}

func TestSampleIsDeterministic(t *testing.T) {
	traj := trapezoidTrajectory(t)

	for _, tm := range []float64{-3, 0, 0.123, 1.75, 3.1, traj.TotalTime(), 99} {
		first := traj.Sample(tm)
		second := traj.Sample(tm)
		assert.Equal(t, first, second, "t = %v", tm)
	}

	// Sampling must not mutate stored states.
	before := traj.States()[5]
	_ = traj.Sample(before.Time + 0.001)
	assert.Equal(t, before, traj.States()[5])
}
