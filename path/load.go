package path

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/holonomy/trajgen/geom"
)

// pointJSON is an (x, y) pair in a path file.
type pointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type waypointJSON struct {
	Anchor      pointJSON  `json:"anchor"`
	PrevControl *pointJSON `json:"prevControl"`
	NextControl *pointJSON `json:"nextControl"`
}

type constraintsJSON struct {
	MaxVelocity            float64 `json:"maxVelocity"`
	MaxAcceleration        float64 `json:"maxAcceleration"`
	MaxAngularVelocity     float64 `json:"maxAngularVelocity"`
	MaxAngularAcceleration float64 `json:"maxAngularAcceleration"`
}

type zoneJSON struct {
	MinWaypointRelativePos float64         `json:"minWaypointRelativePos"`
	MaxWaypointRelativePos float64         `json:"maxWaypointRelativePos"`
	Constraints            constraintsJSON `json:"constraints"`
}

type rotationTargetJSON struct {
	WaypointRelativePos float64 `json:"waypointRelativePos"`
	RotationDegrees     float64 `json:"rotationDegrees"`
}

type eventMarkerJSON struct {
	Name                string  `json:"name"`
	WaypointRelativePos float64 `json:"waypointRelativePos"`
}

type goalEndStateJSON struct {
	Velocity        float64 `json:"velocity"`
	RotationDegrees float64 `json:"rotationDegrees"`
}

// pathJSON is the on-disk path file schema.
type pathJSON struct {
	Waypoints         []waypointJSON       `json:"waypoints"`
	GlobalConstraints constraintsJSON      `json:"globalConstraints"`
	ConstraintZones   []zoneJSON           `json:"constraintZones"`
	RotationTargets   []rotationTargetJSON `json:"rotationTargets"`
	EventMarkers      []eventMarkerJSON    `json:"eventMarkers"`
	GoalEndState      goalEndStateJSON     `json:"goalEndState"`
}

// Load reads a path file and returns the validated Path it describes. Event
// markers are assigned fresh opaque handles; resolving a handle to a concrete
// action is the caller's job.
func Load(file string) (*Path, error) {
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read path file: %w", err)
	}
	var pj pathJSON
	if err := json.Unmarshal(raw, &pj); err != nil {
		return nil, fmt.Errorf("parse path file: %w", err)
	}

	p := &Path{
		GlobalConstraints: pj.GlobalConstraints.constraints(),
		Goal: GoalEndState{
			Velocity: pj.GoalEndState.Velocity,
			Rotation: geom.Deg(pj.GoalEndState.RotationDegrees),
		},
	}
	for _, wj := range pj.Waypoints {
		wp := Waypoint{Anchor: geom.XY(wj.Anchor.X, wj.Anchor.Y)}
		if wj.PrevControl != nil {
			t := geom.XY(wj.PrevControl.X, wj.PrevControl.Y)
			wp.PrevControl = &t
		}
		if wj.NextControl != nil {
			t := geom.XY(wj.NextControl.X, wj.NextControl.Y)
			wp.NextControl = &t
		}
		p.Waypoints = append(p.Waypoints, wp)
	}
	for _, zj := range pj.ConstraintZones {
		p.Zones = append(p.Zones, ConstraintZone{
			MinPosition: zj.MinWaypointRelativePos,
			MaxPosition: zj.MaxWaypointRelativePos,
			Constraints: zj.Constraints.constraints(),
		})
	}
	for _, rj := range pj.RotationTargets {
		p.RotationTargets = append(p.RotationTargets, RotationTarget{
			Position: rj.WaypointRelativePos,
			Rotation: geom.Deg(rj.RotationDegrees),
		})
	}
	for _, mj := range pj.EventMarkers {
		p.EventMarkers = append(p.EventMarkers, EventMarker{
			Handle:   uuid.New(),
			Name:     mj.Name,
			Position: mj.WaypointRelativePos,
		})
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("path file %s: %w", file, err)
	}
	return p, nil
}

func (c constraintsJSON) constraints() Constraints {
	return Constraints{
		MaxVelocity:            c.MaxVelocity,
		MaxAcceleration:        c.MaxAcceleration,
		MaxAngularVelocity:     c.MaxAngularVelocity,
		MaxAngularAcceleration: c.MaxAngularAcceleration,
	}
}
