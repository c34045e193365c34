// Package stochastic provides shared primitives for the solvers and
// simulators in this repository:
//
//   - [Density]: probability density sampled on a uniform grid
//   - [Field]: scalar coefficient (drift, diffusion) evaluated pointwise
//   - sentinel errors shared by the forward and passage solvers
//
// # Example
//
//	initial := stochastic.SampleField(stochastic.Gaussian(0, 0.2), grid.X)
//	drift := stochastic.Zero()
//	diffusion := stochastic.Const(0.5)
package stochastic
