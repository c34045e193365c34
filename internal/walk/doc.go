// Package walk provides Monte Carlo path simulators for scalar
// stochastic processes:
//
//   - [Brownian]: arithmetic Brownian motion
//   - [OrnsteinUhlenbeck]: mean-reverting diffusion
//   - [EstimateHittingTime]: first-crossing time by simulation
//
// All simulators use a first-order Euler-Maruyama step and draw normal
// increments from an injected [randvar.Source], so runs are reproducible
// for a fixed seed.
package walk
