package trajectory

import (
	"math"
	"sort"

	"github.com/holonomy/trajgen/config"
	"github.com/holonomy/trajgen/geom"
	"github.com/holonomy/trajgen/kinematics"
	"github.com/holonomy/trajgen/path"
)

const (
	// maxSampleSpacing is the discretization spacing along the path, in
	// meters. Fine enough that curvature and constraint changes are captured
	// between consecutive samples.
	maxSampleSpacing = 0.05

	// straightCurvature is the curvature magnitude below which a sample is
	// treated as straight, with no centripetal velocity ceiling.
	straightCurvature = 1e-6

	eps = 1e-9
)

// point carries one discretized path sample through the generation passes.
type point struct {
	path.Point

	// heading is the target body heading at the sample.
	heading geom.Rotation

	// dThetaDs is the signed heading change per meter of arc length, used to
	// estimate the angular velocity a chassis speed implies before time
	// exists.
	dThetaDs float64

	// maxVelocity is the pointwise velocity ceiling from constraints and
	// curvature.
	maxVelocity float64

	// velocity is the profile value, refined by the passes.
	velocity float64
}

// samplePath discretizes the path and attaches, per point, the target body
// heading and the curvature/constraint velocity ceiling.
func samplePath(p *path.Path, cfg config.RobotConfig, startHeading geom.Rotation) []point {
	raw := p.AllPoints(maxSampleSpacing)
	pts := make([]point, len(raw))
	for i, rp := range raw {
		pts[i].Point = rp
	}

	if cfg.Topology == config.Holonomic {
		attachRotationTargets(p, pts, startHeading)
	} else {
		// A differential drivetrain cannot steer its body independently of
		// its direction of travel.
		for i := range pts {
			pts[i].heading = pts[i].Tangent
		}
	}

	for i := range pts {
		if i > 0 {
			ds := pts[i].Distance - pts[i-1].Distance
			if ds > eps {
				pts[i].dThetaDs = pts[i].heading.Sub(pts[i-1].heading).Radians / ds
			}
		}

		mv := math.Min(pts[i].Constraints.MaxVelocity, cfg.MaxVelocity)
		if k := math.Abs(pts[i].Curvature); k > straightCurvature {
			mv = math.Min(mv, math.Sqrt(cfg.CentripetalLimit()/k))
		}
		pts[i].maxVelocity = mv
	}
	return pts
}

// indexedTarget is a rotation target resolved to a sample index.
type indexedTarget struct {
	idx int
	rot geom.Rotation
}

// attachRotationTargets fills in the body heading of every sample by easing
// between the bracketing rotation targets. The starting field heading acts as
// the target before the first one; after the last target, its heading holds.
func attachRotationTargets(p *path.Path, pts []point, startHeading geom.Rotation) {
	var targets []indexedTarget
	scan := 0
	for _, rt := range p.RotationTargets {
		for scan < len(pts)-1 && pts[scan].WaypointPos < rt.Position {
			scan++
		}
		targets = append(targets, indexedTarget{idx: scan, rot: rt.Rotation})
	}

	prevIdx, prevRot := 0, startHeading
	ti := 0
	for i := range pts {
		for ti < len(targets) && targets[ti].idx < i {
			prevIdx, prevRot = targets[ti].idx, targets[ti].rot
			ti++
		}
		switch {
		case ti >= len(targets):
			pts[i].heading = prevRot
		case targets[ti].idx == i:
			pts[i].heading = targets[ti].rot
		default:
			t := float64(i-prevIdx) / float64(targets[ti].idx-prevIdx)
			pts[i].heading = cosineInterpolate(prevRot, targets[ti].rot, t)
		}
	}
}

// cosineInterpolate eases a shortest-arc rotation blend with
// t2 = (1 − cos(t·π)) / 2.
func cosineInterpolate(start, end geom.Rotation, t float64) geom.Rotation {
	t2 := (1 - math.Cos(t*math.Pi)) / 2
	return start.Lerp(end, t2)
}

// chassisSpeedsAt returns the robot-relative chassis speeds that moving at
// speed v through pt implies.
func chassisSpeedsAt(pt point, v float64) kinematics.ChassisSpeeds {
	// Direction of travel in the body frame.
	rel := pt.Tangent.Sub(pt.heading)
	return kinematics.ChassisSpeeds{
		VX:    v * rel.Cos(),
		VY:    v * rel.Sin(),
		Omega: v * pt.dThetaDs,
	}
}

// clipToWheelLimits returns the largest speed not above v at pt that keeps
// every wheel within the configured wheel maximum.
func clipToWheelLimits(pt point, v float64, cfg config.RobotConfig) float64 {
	feasible, _ := kinematics.Desaturate(chassisSpeedsAt(pt, v), cfg.Kinematics,
		cfg.MaxWheelSpeed, cfg.MaxVelocity, cfg.MaxAngularVelocity, cfg.Desaturation)
	return math.Min(v, feasible.TranslationSpeed())
}

// forwardPass sweeps the samples start→end, bounding each velocity by what
// is reachable from the previous sample under the acceleration limit, the
// pointwise ceiling, and the wheel speed limit.
func forwardPass(pts []point, cfg config.RobotConfig, startSpeeds kinematics.ChassisSpeeds, startHeading geom.Rotation) {
	fieldVel := geom.XY(startSpeeds.VX, startSpeeds.VY).RotateBy(startHeading)
	tangent := geom.XY(pts[0].Tangent.Cos(), pts[0].Tangent.Sin())
	v0 := math.Max(fieldVel.Dot(tangent), 0)
	pts[0].velocity = clipToWheelLimits(pts[0], math.Min(v0, pts[0].maxVelocity), cfg)

	for i := 1; i < len(pts); i++ {
		v := pts[i-1].velocity
		ds := pts[i].Distance - pts[i-1].Distance
		if ds > eps {
			aMax := math.Min(pts[i].Constraints.MaxAcceleration, cfg.MaxAcceleration)
			v = math.Sqrt(v*v + 2*aMax*ds)
		}
		v = math.Min(v, pts[i].maxVelocity)
		pts[i].velocity = clipToWheelLimits(pts[i], v, cfg)
	}
}

// reversePass sweeps the samples end→start, bounding each velocity by what
// still allows decelerating to the next sample's velocity. Combined with the
// forward pass this makes the profile simultaneously reachable from the start
// and safely decelerable to the goal velocity at every sample.
func reversePass(pts []point, cfg config.RobotConfig, goalVelocity float64) {
	last := len(pts) - 1
	pts[last].velocity = math.Min(pts[last].velocity, goalVelocity)

	for i := last - 1; i >= 0; i-- {
		v := pts[i+1].velocity
		ds := pts[i+1].Distance - pts[i].Distance
		if ds > eps {
			aMax := math.Min(pts[i].Constraints.MaxAcceleration, cfg.MaxAcceleration)
			v = math.Sqrt(v*v + 2*aMax*ds)
		}
		v = math.Min(pts[i].velocity, v)
		pts[i].velocity = clipToWheelLimits(pts[i], v, cfg)
	}
}

// integrate converts the finalized velocity-per-distance profile into
// timestamped states: trapezoidal time integration, finite-difference
// acceleration and angular velocity, and per-wheel states from the final
// chassis speeds.
func integrate(pts []point, cfg config.RobotConfig) []State {
	states := make([]State, len(pts))
	elapsed := 0.0
	for i := range pts {
		if i > 0 {
			ds := pts[i].Distance - pts[i-1].Distance
			avg := (pts[i-1].velocity + pts[i].velocity) / 2
			if ds > eps && avg > eps {
				elapsed += ds / avg
			}
		}
		_, wheels := kinematics.Desaturate(chassisSpeedsAt(pts[i], pts[i].velocity), cfg.Kinematics,
			cfg.MaxWheelSpeed, cfg.MaxVelocity, cfg.MaxAngularVelocity, cfg.Desaturation)
		states[i] = State{
			Time:        elapsed,
			Pose:        geom.Pose{Translation: pts[i].Position, Rotation: pts[i].heading},
			Velocity:    pts[i].velocity,
			Curvature:   pts[i].Curvature,
			WheelStates: wheels,
		}
	}

	for i := 1; i < len(states); i++ {
		dt := states[i].Time - states[i-1].Time
		if dt <= eps {
			states[i].AngularVelocity = states[i-1].AngularVelocity
			continue
		}
		states[i].Acceleration = (states[i].Velocity - states[i-1].Velocity) / dt
		states[i].AngularVelocity = states[i].Pose.Rotation.Sub(states[i-1].Pose.Rotation).Radians / dt
	}
	if len(states) > 1 {
		states[0].Acceleration = states[1].Acceleration
		states[0].AngularVelocity = states[1].AngularVelocity
	}
	return states
}

// scheduleEvents resolves each event marker's waypoint-relative position to
// the timestamp of the nearest sample at or after it. The result is sorted
// by time.
func scheduleEvents(p *path.Path, pts []point, states []State) []Event {
	if len(p.EventMarkers) == 0 {
		return nil
	}
	events := make([]Event, 0, len(p.EventMarkers))
	for _, m := range p.EventMarkers {
		idx := sort.Search(len(pts), func(i int) bool {
			return pts[i].WaypointPos >= m.Position
		})
		if idx >= len(pts) {
			idx = len(pts) - 1
		}
		events = append(events, Event{
			Time:   states[idx].Time,
			Handle: m.Handle,
			Name:   m.Name,
		})
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Time < events[j].Time })
	return events
}
