package geom

import "fmt"

// Pose is a field position paired with a body heading.
type Pose struct {
	Translation Translation
	Rotation    Rotation
}

// NewPose returns the pose at (x, y) with heading r.
func NewPose(x, y float64, r Rotation) Pose {
	return Pose{Translation: XY(x, y), Rotation: r}
}

func (p Pose) String() string {
	return fmt.Sprintf("%v @ %v", p.Translation, p.Rotation)
}

// Lerp interpolates between two poses: the position by linear blend, the
// heading along the shortest arc.
func (p Pose) Lerp(o Pose, frac float64) Pose {
	return Pose{
		Translation: p.Translation.Lerp(o.Translation, frac),
		Rotation:    p.Rotation.Lerp(o.Rotation, frac),
	}
}

// Lerp linearly interpolates between two scalars.
func Lerp(a, b, frac float64) float64 {
	return a + (b-a)*frac
}
