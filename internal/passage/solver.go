package passage

import "math"

// Unreachable marks a state with no positive-rate path in the relaxation
// fixed point. It is an expected outcome, not an error.
var Unreachable = math.Inf(1)

// IsUnreachable reports whether t is the unreachable sentinel.
func IsUnreachable(t float64) bool { return math.IsInf(t, 1) }

// Solve returns the expected first-passage time from initial to target
// under the relaxation of [Times]. A self-target is 0 by definition;
// Unreachable is returned when no positive-rate path exists.
func Solve(m Matrix, initial, target int) (float64, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	if err := m.checkState("initial", initial); err != nil {
		return 0, err
	}
	if err := m.checkState("target", target); err != nil {
		return 0, err
	}
	if initial == target {
		return 0, nil
	}

	times := relax(m, target)
	return times[initial], nil
}

// Times returns the first-passage time estimate for every state toward
// target. Entries are Unreachable where no positive-rate path exists;
// times[target] is always 0.
//
// The estimate is a label-correcting relaxation with edge cost 1/rate,
// in the manner of Bellman-Ford: starting from times[target] = 0, every
// pair (i, j) with a finite times[i] and m[i][j] > 0 proposes
// times[i] + 1/m[i][j] for state j, and passes repeat until a full pass
// makes no improvement. Note this is NOT the textbook expected hitting
// time of a continuous-time chain, which solves a linear system over
// competing exit rates; the relaxation propagates a minimum accumulated
// 1/rate cost instead and is kept for compatibility with existing
// outputs.
func Times(m Matrix, target int) ([]float64, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if err := m.checkState("target", target); err != nil {
		return nil, err
	}
	return relax(m, target), nil
}

// relax runs the fixed-point iteration. The pass order is pinned (i then
// j, both ascending) so results are bit-for-bit reproducible. Estimates
// only ever decrease, and each decrease is strict, so the loop reaches a
// fixed point; n*n full passes is a hard cap in the manner of Bellman-
// Ford's n-1 rounds.
func relax(m Matrix, target int) []float64 {
	return relaxObserved(m, target, nil)
}

// relaxObserved is relax with an optional per-pass snapshot callback,
// used by tests to assert the estimates decrease monotonically.
func relaxObserved(m Matrix, target int, onPass func(times []float64)) []float64 {
	n := len(m)
	times := make([]float64, n)
	for i := range times {
		times[i] = Unreachable
	}
	times[target] = 0

	for pass := 0; pass < n*n; pass++ {
		changed := false
		for i := 0; i < n; i++ {
			if IsUnreachable(times[i]) {
				continue
			}
			for j := 0; j < n; j++ {
				if j == target || m[i][j] <= 0 {
					continue
				}
				if candidate := times[i] + 1/m[i][j]; candidate < times[j] {
					times[j] = candidate
					changed = true
				}
			}
		}
		if onPass != nil {
			snap := make([]float64, n)
			copy(snap, times)
			onPass(snap)
		}
		if !changed {
			break
		}
	}
	return times
}
