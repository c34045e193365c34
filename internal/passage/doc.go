// Package passage estimates expected first-passage (hitting) times for a
// finite-state Markov jump process described by a transition-rate matrix.
//
// The estimate is a shortest-path-style relaxation treating 1/rate as an
// edge cost, not the closed-form hitting-time linear system of a
// continuous-time chain; see [Times] for the exact semantics and the
// rationale for keeping them.
//
// # Example
//
//	m := passage.Matrix{
//	    {0.4, 0.3, 0.3},
//	    {0.2, 0.5, 0.3},
//	    {0.1, 0.7, 0.2},
//	}
//	t, err := passage.Solve(m, 0, 2)
//	if passage.IsUnreachable(t) {
//	    // no positive-rate path from 0 to 2
//	}
package passage
