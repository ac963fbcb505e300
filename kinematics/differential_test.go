package kinematics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDifferentialTrackWidth(t *testing.T) {
	_, err := NewDifferential(0)
	assert.ErrorIs(t, err, ErrTrackWidth)
	_, err = NewDifferential(-0.5)
	assert.ErrorIs(t, err, ErrTrackWidth)
}

func TestDifferentialRoundTrip(t *testing.T) {
	k, err := NewDifferential(0.55)
	require.NoError(t, err)
	assert.Equal(t, DifferentialWheelCount, k.WheelCount())

	tests := []struct {
		name   string
		speeds ChassisSpeeds
	}{
		{"straight", ChassisSpeeds{VX: 1.5}},
		{"spin in place", ChassisSpeeds{Omega: 4}},
		{"arc", ChassisSpeeds{VX: 1, Omega: -2}},
		{"reverse", ChassisSpeeds{VX: -0.8, Omega: 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			states := k.ToWheelStates(tt.speeds)
			require.Len(t, states, DifferentialWheelCount)

			got, err := k.ToChassisSpeeds(states)
			require.NoError(t, err)
			assert.InDelta(t, tt.speeds.VX, got.VX, 1e-9)
			assert.InDelta(t, 0, got.VY, 1e-9, "a differential drivetrain cannot strafe")
			assert.InDelta(t, tt.speeds.Omega, got.Omega, 1e-9)
		})
	}
}

func TestDifferentialArcWheelSplit(t *testing.T) {
	trackWidth := 0.6
	k, err := NewDifferential(trackWidth)
	require.NoError(t, err)

	states := k.ToWheelStates(ChassisSpeeds{VX: 2, Omega: 1})
	assert.InDelta(t, 2-trackWidth/2, states[0].Speed, 1e-9, "left wheel")
	assert.InDelta(t, 2+trackWidth/2, states[1].Speed, 1e-9, "right wheel")
}
