package path

import (
	"math"

	"github.com/holonomy/trajgen/geom"
)

// cubic is one cubic Bézier segment of the path spline.
type cubic struct {
	p0, p1, p2, p3 geom.Translation
}

// segment returns the cubic between waypoint i and waypoint i+1. The path
// must have been validated.
func (p *Path) segment(i int) cubic {
	return cubic{
		p0: p.Waypoints[i].Anchor,
		p1: *p.Waypoints[i].NextControl,
		p2: *p.Waypoints[i+1].PrevControl,
		p3: p.Waypoints[i+1].Anchor,
	}
}

func (c cubic) eval(t float64) geom.Translation {
	mt := 1 - t
	a := c.p0.Mul(mt * mt * mt)
	b := c.p1.Mul(mt * mt * 3)
	cc := c.p2.Mul(mt * 3)
	return a.Add(b.Add(cc.Add(c.p3.Mul(t)).Mul(t)).Mul(t))
}

// deriv evaluates the first derivative with respect to t.
func (c cubic) deriv(t float64) geom.Translation {
	mt := 1 - t
	d0 := c.p1.Sub(c.p0).Mul(3 * mt * mt)
	d1 := c.p2.Sub(c.p1).Mul(6 * mt * t)
	d2 := c.p3.Sub(c.p2).Mul(3 * t * t)
	return d0.Add(d1).Add(d2)
}

// deriv2 evaluates the second derivative with respect to t.
func (c cubic) deriv2(t float64) geom.Translation {
	mt := 1 - t
	d0 := c.p2.Sub(c.p1.Mul(2)).Add(c.p0).Mul(6 * mt)
	d1 := c.p3.Sub(c.p2.Mul(2)).Add(c.p1).Mul(6 * t)
	return d0.Add(d1)
}

// curvature returns the signed curvature at t: cross(c′, c″) / |c′|³.
// Returns 0 near a derivative singularity instead of blowing up.
func (c cubic) curvature(t float64) float64 {
	d1 := c.deriv(t)
	norm := d1.Norm()
	if norm < 1e-9 {
		return 0
	}
	return d1.Cross(c.deriv2(t)) / (norm * norm * norm)
}

// lengthEstimate approximates the segment's arc length as the average of the
// chord and the control polygon length. The estimate is only used to choose
// a sample count; exact distances come from accumulating sampled chords.
func (c cubic) lengthEstimate() float64 {
	chord := c.p3.Distance(c.p0)
	poly := c.p1.Distance(c.p0) + c.p2.Distance(c.p1) + c.p3.Distance(c.p2)
	return (chord + poly) / 2
}

// tangent returns the direction of travel at t, falling back to the chord
// direction when the derivative vanishes (coincident control points).
func (c cubic) tangent(t float64) geom.Rotation {
	d := c.deriv(t)
	if d.Norm() < 1e-9 {
		d = c.p3.Sub(c.p0)
	}
	if d.Norm() < 1e-9 {
		return geom.Rotation{}
	}
	return d.Angle()
}

// sampleCount returns how many sub-samples keep spacing along the segment at
// or below maxSpacing.
func (c cubic) sampleCount(maxSpacing float64) int {
	n := int(math.Ceil(c.lengthEstimate() / maxSpacing))
	return max(n, 1)
}
