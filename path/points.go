package path

import "github.com/holonomy/trajgen/geom"

// Point is one sample of the discretized path.
type Point struct {
	// Position is the field position of the sample.
	Position geom.Translation

	// Distance is the arc length from the start of the path, accumulated
	// over sampled chords.
	Distance float64

	// WaypointPos is the waypoint-relative position of the sample: segment
	// index plus parameter, so 1.5 is halfway (in parameter space) between
	// the second and third waypoint.
	WaypointPos float64

	// Tangent is the direction of travel at the sample.
	Tangent geom.Rotation

	// Curvature is the signed curvature at the sample, 0 on straights.
	Curvature float64

	// Constraints are the limits in force at the sample.
	Constraints Constraints
}

// AllPoints discretizes the path into an ordered point sequence whose
// spacing along the spline stays at or below maxSpacing. The first point is
// the first anchor and the last point is the last anchor. The path must have
// been validated.
func (p *Path) AllPoints(maxSpacing float64) []Point {
	var points []Point
	distance := 0.0
	var prev geom.Translation
	for seg := 0; seg < len(p.Waypoints)-1; seg++ {
		c := p.segment(seg)
		n := c.sampleCount(maxSpacing)
		// Skip t=0 on every segment after the first; it coincides with the
		// previous segment's t=1 sample.
		start := 0
		if seg > 0 {
			start = 1
		}
		for i := start; i <= n; i++ {
			t := float64(i) / float64(n)
			pos := c.eval(t)
			if len(points) > 0 {
				distance += pos.Distance(prev)
			}
			wpPos := float64(seg) + t
			points = append(points, Point{
				Position:    pos,
				Distance:    distance,
				WaypointPos: wpPos,
				Tangent:     c.tangent(t),
				Curvature:   c.curvature(t),
				Constraints: p.ConstraintsAt(wpPos),
			})
			prev = pos
		}
	}
	return points
}
