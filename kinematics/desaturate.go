package kinematics

import "math"

// DesaturationMode selects how Desaturate treats the rotational component
// when wheel speeds exceed the wheel maximum.
type DesaturationMode int

const (
	// ScaleAll scales the translational and rotational components together,
	// preserving the full chassis motion direction.
	ScaleAll DesaturationMode = iota

	// PreserveRotation holds the rotational component fixed and scales only
	// the translational component.
	PreserveRotation
)

// Desaturate scales chassis speeds down so that no wheel produced by k
// exceeds maxWheelSpeed. The translational magnitude is first clamped to
// maxTranslationSpeed and the rotational component to maxRotationSpeed; then,
// if the largest wheel speed still exceeds maxWheelSpeed, the chassis speeds
// are scaled by maxWheelSpeed over the largest wheel speed in a single pass.
// Per-wheel speed ratios are preserved, so wheel directions do not change.
//
// Returns the feasible chassis speeds and the wheel states they decompose
// into.
func Desaturate(speeds ChassisSpeeds, k Kinematics, maxWheelSpeed, maxTranslationSpeed, maxRotationSpeed float64, mode DesaturationMode) (ChassisSpeeds, []WheelState) {
	if v := speeds.TranslationSpeed(); v > maxTranslationSpeed && v > 0 {
		f := maxTranslationSpeed / v
		speeds.VX *= f
		speeds.VY *= f
	}
	if math.Abs(speeds.Omega) > maxRotationSpeed {
		speeds.Omega = math.Copysign(maxRotationSpeed, speeds.Omega)
	}

	states := k.ToWheelStates(speeds)
	top := 0.0
	for _, st := range states {
		if s := math.Abs(st.Speed); s > top {
			top = s
		}
	}
	if top <= maxWheelSpeed || top == 0 {
		return speeds, states
	}

	f := maxWheelSpeed / top
	speeds.VX *= f
	speeds.VY *= f
	if mode == ScaleAll {
		speeds.Omega *= f
	}
	return speeds, k.ToWheelStates(speeds)
}
