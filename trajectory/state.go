package trajectory

import (
	"github.com/holonomy/trajgen/geom"
	"github.com/holonomy/trajgen/kinematics"
)

// State is the target state of the robot at one instant of the trajectory.
type State struct {
	// Time is the elapsed time since the start of the trajectory, seconds.
	Time float64

	// Pose is the field position and body heading.
	Pose geom.Pose

	// Velocity is the translational speed along the path tangent, m/s.
	Velocity float64

	// Acceleration is the translational acceleration, m/s².
	Acceleration float64

	// AngularVelocity is the body heading rate, rad/s.
	AngularVelocity float64

	// Curvature is the path curvature at this state, 1/m.
	Curvature float64

	// WheelStates are the per-wheel targets realizing this state. The wheel
	// count is fixed per trajectory by the drivetrain topology.
	WheelStates []kinematics.WheelState
}

// interpolate blends two states at fraction frac ∈ [0, 1]: position by
// linear blend, headings and wheel angles along the shortest arc, scalars
// linearly.
func (s State) interpolate(end State, frac float64) State {
	out := State{
		Time:            geom.Lerp(s.Time, end.Time, frac),
		Pose:            s.Pose.Lerp(end.Pose, frac),
		Velocity:        geom.Lerp(s.Velocity, end.Velocity, frac),
		Acceleration:    geom.Lerp(s.Acceleration, end.Acceleration, frac),
		AngularVelocity: geom.Lerp(s.AngularVelocity, end.AngularVelocity, frac),
		Curvature:       geom.Lerp(s.Curvature, end.Curvature, frac),
	}
	if len(s.WheelStates) == len(end.WheelStates) {
		out.WheelStates = make([]kinematics.WheelState, len(s.WheelStates))
		for i := range s.WheelStates {
			out.WheelStates[i] = kinematics.WheelState{
				Speed: geom.Lerp(s.WheelStates[i].Speed, end.WheelStates[i].Speed, frac),
				Angle: s.WheelStates[i].Angle.Lerp(end.WheelStates[i].Angle, frac),
			}
		}
	}
	return out
}
