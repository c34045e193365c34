package forward

import "github.com/san-kum/stochlab/internal/stochastic"

// StabilityBound returns the largest timestep for which the explicit
// scheme remains stable on the given grid:
//
//	dt <= dx^2 / (2 * max_j diffusion(x_j))
//
// The second return value is false when the diffusion field is zero (or
// negative) everywhere on the grid, in which case the diffusion term
// imposes no constraint.
func StabilityBound(diffusion stochastic.Field, grid *Grid) (float64, bool) {
	maxD := 0.0
	for _, x := range grid.X {
		if d := diffusion(x); d > maxD {
			maxD = d
		}
	}
	if maxD == 0 {
		return 0, false
	}
	return grid.Dx * grid.Dx / (2 * maxD), true
}
