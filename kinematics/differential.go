package kinematics

import "github.com/holonomy/trajgen/geom"

// DifferentialWheelCount is the number of wheels of a differential drivetrain.
const DifferentialWheelCount = 2

// Differential implements Kinematics for a two-wheel differential drivetrain.
// Wheel order is left, right. Wheels cannot steer, so wheel angles are always
// zero and the VY component of chassis speeds is ignored.
type Differential struct {
	trackWidth float64
}

var _ Kinematics = (*Differential)(nil)

// NewDifferential builds differential kinematics for the given track width
// (distance between the wheels, in meters). Returns ErrTrackWidth if the
// track width is not positive.
func NewDifferential(trackWidth float64) (*Differential, error) {
	if trackWidth <= 0 {
		return nil, ErrTrackWidth
	}
	return &Differential{trackWidth: trackWidth}, nil
}

func (d *Differential) WheelCount() int { return DifferentialWheelCount }

func (d *Differential) ToWheelStates(speeds ChassisSpeeds) []WheelState {
	half := d.trackWidth / 2
	return []WheelState{
		{Speed: speeds.VX - speeds.Omega*half, Angle: geom.Rotation{}},
		{Speed: speeds.VX + speeds.Omega*half, Angle: geom.Rotation{}},
	}
}

func (d *Differential) ToChassisSpeeds(states []WheelState) (ChassisSpeeds, error) {
	if err := checkWheelCount(states, DifferentialWheelCount); err != nil {
		return ChassisSpeeds{}, err
	}
	left, right := states[0].Speed, states[1].Speed
	return ChassisSpeeds{
		VX:    (left + right) / 2,
		Omega: (right - left) / d.trackWidth,
	}, nil
}
