// Package forward solves the Kolmogorov forward (Fokker-Planck) equation
// on a uniform 1-D grid with an explicit finite-difference scheme.
//
// The scheme is first-order in time and second-order in space, reading
// every term from the previous time row (FTCS). It is conditionally
// stable; [StabilityBound] exposes the timestep limit and [Solve]
// enforces it by default.
//
// # Example
//
//	cfg := forward.Config{XMin: -2, XMax: 2, TMax: 1, Dx: 0.05, Dt: 0.001}
//	grid, _ := forward.NewGrid(cfg)
//	initial := stochastic.SampleField(stochastic.Gaussian(0, 0.3), grid.X)
//	res, err := forward.Solve(ctx, stochastic.Zero(), stochastic.Const(0.5), initial, cfg)
package forward
