package geom

import (
	"fmt"
	"math"
)

// Translation is a 2D position or displacement on the field, in meters.
type Translation struct {
	X float64
	Y float64
}

// XY returns the translation (x, y).
func XY(x, y float64) Translation {
	return Translation{X: x, Y: y}
}

func (t Translation) String() string {
	return fmt.Sprintf("(%g, %g)", t.X, t.Y)
}

// Add adds two translations and returns the resulting translation.
func (t Translation) Add(o Translation) Translation {
	return Translation{
		X: t.X + o.X,
		Y: t.Y + o.Y,
	}
}

// Sub computes t−o.
func (t Translation) Sub(o Translation) Translation {
	return Translation{
		X: t.X - o.X,
		Y: t.Y - o.Y,
	}
}

func (t Translation) Mul(f float64) Translation {
	return Translation{
		X: t.X * f,
		Y: t.Y * f,
	}
}

// Dot returns the dot product of t and o.
func (t Translation) Dot(o Translation) float64 {
	return t.X*o.X + t.Y*o.Y
}

// Cross returns the cross product of t and o.
func (t Translation) Cross(o Translation) float64 {
	return t.X*o.Y - t.Y*o.X
}

// Norm returns the magnitude of the translation.
func (t Translation) Norm() float64 {
	return math.Hypot(t.X, t.Y)
}

// Angle returns the direction of the translation as a rotation.
// This is atan2(y, x).
func (t Translation) Angle() Rotation {
	return Rad(math.Atan2(t.Y, t.X))
}

// RotateBy rotates the translation around the origin by r.
func (t Translation) RotateBy(r Rotation) Translation {
	c, s := r.Cos(), r.Sin()
	return Translation{
		X: t.X*c - t.Y*s,
		Y: t.X*s + t.Y*c,
	}
}

// Lerp linearly interpolates between two translations.
func (t Translation) Lerp(o Translation, frac float64) Translation {
	// t + frac * (o-t)
	return t.Add(o.Sub(t).Mul(frac))
}

// Distance returns the euclidean distance between two translations.
func (t Translation) Distance(o Translation) float64 {
	return math.Hypot(t.X-o.X, t.Y-o.Y)
}

// IsNaN reports whether at least one of x and y is NaN.
func (t Translation) IsNaN() bool {
	return math.IsNaN(t.X) || math.IsNaN(t.Y)
}
