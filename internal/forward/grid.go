package forward

import (
	"fmt"
	"math"

	"github.com/san-kum/stochlab/internal/stochastic"
)

// Grid is a uniform discretization of the strip [XMin, XMax] x [0, TMax].
type Grid struct {
	X  []float64
	T  []float64
	Dx float64
	Dt float64
}

// NewGrid derives the spatial and temporal axes from a validated Config.
// The spatial axis has floor((XMax-XMin)/Dx)+1 points, the temporal axis
// floor(TMax/Dt)+1 points.
func NewGrid(cfg Config) (*Grid, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	m := int(math.Floor((cfg.XMax-cfg.XMin)/cfg.Dx)) + 1
	n := int(math.Floor(cfg.TMax/cfg.Dt)) + 1

	g := &Grid{
		X:  make([]float64, m),
		T:  make([]float64, n),
		Dx: cfg.Dx,
		Dt: cfg.Dt,
	}
	for j := range g.X {
		g.X[j] = cfg.XMin + float64(j)*cfg.Dx
	}
	for i := range g.T {
		g.T[i] = float64(i) * cfg.Dt
	}
	return g, nil
}

// Config holds the discretization parameters for a forward solve.
type Config struct {
	XMin float64
	XMax float64
	TMax float64
	Dx   float64
	Dt   float64

	// AllowUnstable downgrades a stability-bound violation from an error
	// to a warning recorded on the Result.
	AllowUnstable bool
}

func (c Config) validate() error {
	if c.Dx <= 0 {
		return fmt.Errorf("%w: dx must be positive, got %g", stochastic.ErrInvalidParameter, c.Dx)
	}
	if c.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %g", stochastic.ErrInvalidParameter, c.Dt)
	}
	if c.TMax <= 0 {
		return fmt.Errorf("%w: t_max must be positive, got %g", stochastic.ErrInvalidParameter, c.TMax)
	}
	if c.XMax <= c.XMin {
		return fmt.Errorf("%w: x_max (%g) must exceed x_min (%g)", stochastic.ErrInvalidParameter, c.XMax, c.XMin)
	}
	return nil
}
