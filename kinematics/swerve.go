package kinematics

import (
	"math"

	"github.com/holonomy/trajgen/geom"
)

// SwerveWheelCount is the number of modules of a swerve drivetrain.
const SwerveWheelCount = 4

// Swerve implements Kinematics for a four-module swerve (holonomic)
// drivetrain. Module positions are robot-relative, +X forward, +Y left.
type Swerve struct {
	modules [SwerveWheelCount]geom.Translation
	// inv is the inverse of the normal-equation matrix of the stacked
	// per-module velocity equations, precomputed so that forward kinematics
	// is a single matrix-vector product.
	inv [3][3]float64
}

var _ Kinematics = (*Swerve)(nil)

// NewSwerve builds swerve kinematics for the given module positions.
// Returns ErrSingularLayout if the layout admits no forward kinematics
// solution, which happens when all modules sit at the same point.
func NewSwerve(modules [SwerveWheelCount]geom.Translation) (*Swerve, error) {
	// Normal-equation matrix AᵀA for the 8×3 system
	//   vxᵢ = VX − Ω·yᵢ
	//   vyᵢ = VY + Ω·xᵢ
	var sumX, sumY, sumSq float64
	for _, m := range modules {
		sumX += m.X
		sumY += m.Y
		sumSq += m.X*m.X + m.Y*m.Y
	}
	n := float64(SwerveWheelCount)
	a := [3][3]float64{
		{n, 0, -sumY},
		{0, n, sumX},
		{-sumY, sumX, sumSq},
	}
	inv, ok := invert3(a)
	if !ok {
		return nil, ErrSingularLayout
	}
	return &Swerve{modules: modules, inv: inv}, nil
}

func (s *Swerve) WheelCount() int { return SwerveWheelCount }

func (s *Swerve) ToWheelStates(speeds ChassisSpeeds) []WheelState {
	states := make([]WheelState, SwerveWheelCount)
	for i, m := range s.modules {
		vx := speeds.VX - speeds.Omega*m.Y
		vy := speeds.VY + speeds.Omega*m.X
		states[i] = WheelState{
			Speed: math.Hypot(vx, vy),
			Angle: geom.XY(vx, vy).Angle(),
		}
	}
	return states
}

func (s *Swerve) ToChassisSpeeds(states []WheelState) (ChassisSpeeds, error) {
	if err := checkWheelCount(states, SwerveWheelCount); err != nil {
		return ChassisSpeeds{}, err
	}
	// Least-squares solve of the stacked module equations: accumulate Aᵀb,
	// then apply the precomputed (AᵀA)⁻¹.
	var b [3]float64
	for i, st := range states {
		vx := st.Speed * st.Angle.Cos()
		vy := st.Speed * st.Angle.Sin()
		m := s.modules[i]
		b[0] += vx
		b[1] += vy
		b[2] += m.X*vy - m.Y*vx
	}
	var u [3]float64
	for r := 0; r < 3; r++ {
		u[r] = s.inv[r][0]*b[0] + s.inv[r][1]*b[1] + s.inv[r][2]*b[2]
	}
	return ChassisSpeeds{VX: u[0], VY: u[1], Omega: u[2]}, nil
}

// invert3 inverts a 3×3 matrix by cofactor expansion. Reports false when the
// matrix is singular.
func invert3(a [3][3]float64) ([3][3]float64, bool) {
	c00 := a[1][1]*a[2][2] - a[1][2]*a[2][1]
	c01 := a[1][2]*a[2][0] - a[1][0]*a[2][2]
	c02 := a[1][0]*a[2][1] - a[1][1]*a[2][0]
	det := a[0][0]*c00 + a[0][1]*c01 + a[0][2]*c02
	if math.Abs(det) < 1e-12 {
		return [3][3]float64{}, false
	}
	d := 1 / det
	return [3][3]float64{
		{c00 * d, (a[0][2]*a[2][1] - a[0][1]*a[2][2]) * d, (a[0][1]*a[1][2] - a[0][2]*a[1][1]) * d},
		{c01 * d, (a[0][0]*a[2][2] - a[0][2]*a[2][0]) * d, (a[0][2]*a[1][0] - a[0][0]*a[1][2]) * d},
		{c02 * d, (a[0][1]*a[2][0] - a[0][0]*a[2][1]) * d, (a[0][0]*a[1][1] - a[0][1]*a[1][0]) * d},
	}, true
}
