package walk

import (
	"math"

	"github.com/san-kum/stochlab/internal/randvar"
)

// Brownian is arithmetic Brownian motion with constant drift and
// volatility: dX = mu dt + sigma dW.
type Brownian struct {
	Mu    float64
	Sigma float64
}

func NewBrownian() *Brownian {
	return &Brownian{Mu: 0.0, Sigma: 1.0}
}

func (b *Brownian) Step(x, _ float64, dt float64, src randvar.Source) float64 {
	return x + b.Mu*dt + b.Sigma*math.Sqrt(dt)*src.Sample()
}
