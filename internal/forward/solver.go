package forward

import (
	"context"
	"fmt"

	"github.com/san-kum/stochlab/internal/stochastic"
)

// Result holds the fully populated density table of a forward solve.
// Density[i][j] is the density at time T[i], position X[j].
type Result struct {
	Grid     *Grid
	Density  []stochastic.Density
	Warnings []error
}

// Solve advances the initial density through time under the given drift
// and diffusion fields using the explicit forward-time centered-space
// scheme. Every interior update reads only the previous time row:
//
//	du/dt = -drift(x) * du/dx + diffusion(x) * d2u/dx2
//
// The two boundary columns are never written by the stencil and retain
// the initial condition for all time. That is a fixed (Dirichlet-style)
// boundary by construction; callers wanting zero-flux or periodic
// boundaries need a different scheme.
//
// The scheme is conditionally stable. Unless cfg.AllowUnstable is set,
// Solve fails with ErrUnstableScheme when dt exceeds
// dx^2 / (2 * max diffusion on the grid); see [StabilityBound].
//
// ctx is checked once per time row.
func Solve(ctx context.Context, drift, diffusion stochastic.Field, initial stochastic.Density, cfg Config) (*Result, error) {
	grid, err := NewGrid(cfg)
	if err != nil {
		return nil, err
	}

	m := len(grid.X)
	if len(initial) != m {
		return nil, fmt.Errorf("%w: got %d points, grid has %d", stochastic.ErrInvalidGrid, len(initial), m)
	}

	result := &Result{Grid: grid}

	if bound, ok := StabilityBound(diffusion, grid); ok && cfg.Dt > bound {
		err := fmt.Errorf("%w: dt=%g exceeds %g", stochastic.ErrUnstableScheme, cfg.Dt, bound)
		if !cfg.AllowUnstable {
			return nil, err
		}
		result.Warnings = append(result.Warnings, err)
	}

	// Evaluate the fields once per column; they are constant in time.
	a := stochastic.SampleField(drift, grid.X)
	b := stochastic.SampleField(diffusion, grid.X)

	n := len(grid.T)
	u := make([]stochastic.Density, n)
	u[0] = initial.Clone()

	dx2 := grid.Dx * grid.Dx
	for i := 1; i < n; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		prev := u[i-1]
		row := prev.Clone()
		for j := 1; j < m-1; j++ {
			adv := -a[j] * (prev[j+1] - prev[j-1]) / (2 * grid.Dx)
			dif := b[j] * (prev[j+1] - 2*prev[j] + prev[j-1]) / dx2
			row[j] = prev[j] + (adv+dif)*grid.Dt
		}
		u[i] = row
	}

	result.Density = u
	return result, nil
}

// Final returns the density at the last computed time row.
func (r *Result) Final() stochastic.Density {
	if len(r.Density) == 0 {
		return nil
	}
	return r.Density[len(r.Density)-1]
}
