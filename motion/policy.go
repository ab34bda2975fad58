package motion

// Next returns the state produced by stepping in d from cur, and whether the
// step is legal at all.
//
//   - From Initial every direction is legal and starts a run of 1.
//   - Reversing is never legal.
//   - Continuing straight is legal while Run < MaxRun.
//   - Turning 90° is legal once Run ≥ MinRun, and resets the run to 1.
func (p Policy) Next(cur State, d Direction) (State, bool) {
	if cur.IsInitial() {
		return State{dir: d, run: 1}, true
	}
	switch {
	case d.IsReverseOf(cur.dir):
		return State{}, false
	case d == cur.dir:
		if cur.run >= p.MaxRun {
			return State{}, false
		}
		return State{dir: d, run: cur.run + 1}, true
	default:
		if cur.run < p.MinRun {
			return State{}, false
		}
		return State{dir: d, run: 1}, true
	}
}

// CanStop reports whether a walk in state s may end where it is.
// A walk that has not moved may always stop; otherwise the current run must
// have reached MinRun.
func (p Policy) CanStop(s State) bool {
	return s.IsInitial() || s.run >= p.MinRun
}

// MaxStates returns how many distinct non-initial states a cell can be
// reached in under p, or 0 when MaxRun is Unbounded.
func (p Policy) MaxStates() int {
	if p.MaxRun == Unbounded {
		return 0
	}

	return len(All) * p.MaxRun
}
