package geom

import (
	"fmt"
	"math"
)

// Rotation is a heading on the field, stored in radians and normalized to
// (−π, π].
type Rotation struct {
	Radians float64
}

// Rad returns the rotation of the given angle in radians.
func Rad(radians float64) Rotation {
	return Rotation{Radians: wrapAngle(radians)}
}

// Deg returns the rotation of the given angle in degrees.
func Deg(degrees float64) Rotation {
	return Rad(degrees * math.Pi / 180)
}

func (r Rotation) String() string {
	return fmt.Sprintf("%g°", r.Degrees())
}

// Degrees returns the angle in degrees.
func (r Rotation) Degrees() float64 {
	return r.Radians * 180 / math.Pi
}

func (r Rotation) Cos() float64 {
	return math.Cos(r.Radians)
}

func (r Rotation) Sin() float64 {
	return math.Sin(r.Radians)
}

// Add composes two rotations and returns the normalized result.
func (r Rotation) Add(o Rotation) Rotation {
	return Rad(r.Radians + o.Radians)
}

// Sub computes the signed shortest rotation from o to r. The result is in
// (−π, π], so Sub is the finite difference to use when differentiating a
// heading signal.
func (r Rotation) Sub(o Rotation) Rotation {
	return Rad(r.Radians - o.Radians)
}

// Lerp interpolates between two rotations along the shortest arc.
// frac = 0 returns r, frac = 1 returns o.
func (r Rotation) Lerp(o Rotation, frac float64) Rotation {
	return Rad(r.Radians + o.Sub(r).Radians*frac)
}

// IsNaN reports whether the angle is NaN.
func (r Rotation) IsNaN() bool {
	return math.IsNaN(r.Radians)
}

// wrapAngle normalizes an angle in radians to (−π, π].
func wrapAngle(radians float64) float64 {
	wrapped := math.Mod(radians, 2*math.Pi)
	if wrapped > math.Pi {
		wrapped -= 2 * math.Pi
	} else if wrapped <= -math.Pi {
		wrapped += 2 * math.Pi
	}
	return wrapped
}
