package stochastic

import "math"

// Density is a probability density sampled on a uniform spatial grid.
type Density []float64

func (d Density) Clone() Density {
	c := make(Density, len(d))
	copy(c, d)
	return c
}

func (d Density) IsValid() bool {
	for _, v := range d {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (d Density) Max() float64 {
	if len(d) == 0 {
		return 0
	}
	m := d[0]
	for _, v := range d[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func (d Density) Min() float64 {
	if len(d) == 0 {
		return 0
	}
	m := d[0]
	for _, v := range d[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// Sum returns the unnormalized total mass of the density.
func (d Density) Sum() float64 {
	sum := 0.0
	for _, v := range d {
		sum += v
	}
	return sum
}

// Mass returns the trapezoidal integral of the density over spacing dx.
func (d Density) Mass(dx float64) float64 {
	if len(d) < 2 {
		return 0
	}
	sum := 0.0
	for i := 0; i < len(d)-1; i++ {
		sum += 0.5 * (d[i] + d[i+1]) * dx
	}
	return sum
}

// Field evaluates a scalar coefficient at a spatial point, e.g. the drift
// or diffusion term of a stochastic differential equation.
type Field func(x float64) float64

// Const returns a field with the same value everywhere.
func Const(v float64) Field {
	return func(float64) float64 { return v }
}

// Zero is the identically-zero field.
func Zero() Field {
	return func(float64) float64 { return 0 }
}

// Gaussian returns an unnormalized bell curve centered at mu with width
// sigma, a common initial condition for forward-equation runs.
func Gaussian(mu, sigma float64) Field {
	return func(x float64) float64 {
		z := (x - mu) / sigma
		return math.Exp(-0.5 * z * z)
	}
}

// SampleField evaluates f at each of the given points.
func SampleField(f Field, points []float64) Density {
	d := make(Density, len(points))
	for i, x := range points {
		d[i] = f(x)
	}
	return d
}
