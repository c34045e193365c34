package walk

import (
	"fmt"

	"github.com/san-kum/stochlab/internal/randvar"
	"github.com/san-kum/stochlab/internal/stochastic"
)

// Path is a single simulated trajectory sampled at uniform time steps.
type Path struct {
	T []float64
	X []float64
}

// Final returns the last position of the path.
func (p Path) Final() float64 {
	if len(p.X) == 0 {
		return 0
	}
	return p.X[len(p.X)-1]
}

// Process is a scalar stochastic process advanced one Euler-Maruyama
// step at a time.
type Process interface {
	Step(x, t, dt float64, src randvar.Source) float64
}

// Simulate advances the process from x0 over the given horizon and
// returns the sampled trajectory.
func Simulate(p Process, src randvar.Source, x0, dt, duration float64) (Path, error) {
	if dt <= 0 {
		return Path{}, fmt.Errorf("%w: dt must be positive, got %g", stochastic.ErrInvalidParameter, dt)
	}
	if duration <= 0 {
		return Path{}, fmt.Errorf("%w: duration must be positive, got %g", stochastic.ErrInvalidParameter, duration)
	}

	steps := int(duration / dt)
	path := Path{
		T: make([]float64, 0, steps+1),
		X: make([]float64, 0, steps+1),
	}

	x, t := x0, 0.0
	path.T = append(path.T, t)
	path.X = append(path.X, x)

	for i := 0; i < steps; i++ {
		x = p.Step(x, t, dt, src)
		t += dt
		path.T = append(path.T, t)
		path.X = append(path.X, x)
	}

	return path, nil
}
