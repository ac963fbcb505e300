package trajectory

import "sort"

// Sample returns the target state at the given elapsed time in seconds.
//
// The time is clamped to [0, TotalTime]: times at or below zero return the
// initial state and times at or beyond the total time return the end state,
// so control loops may sample before the start and after completion without
// error. A time equal to a stored timestamp returns that state unmodified;
// any other in-range time interpolates between the two bracketing states.
// Sample never mutates the trajectory and is safe to call concurrently.
func (t *Trajectory) Sample(time float64) State {
	if time <= 0 {
		return t.InitialState()
	}
	if time >= t.TotalTime() {
		return t.EndState()
	}

	// First state with Time >= time; time is strictly inside the covered
	// range, so 0 < idx < len(states).
	idx := sort.Search(len(t.states), func(i int) bool {
		return t.states[i].Time >= time
	})
	hi := t.states[idx]
	if hi.Time == time {
		return hi
	}
	lo := t.states[idx-1]
	dt := hi.Time - lo.Time
	if dt <= 0 {
		return hi
	}
	return lo.interpolate(hi, (time-lo.Time)/dt)
}
