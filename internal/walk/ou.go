package walk

import (
	"math"

	"github.com/san-kum/stochlab/internal/randvar"
)

// OrnsteinUhlenbeck reverts toward a long-run mean:
// dX = theta (mu - X) dt + sigma dW.
type OrnsteinUhlenbeck struct {
	Theta float64
	Mu    float64
	Sigma float64
}

func NewOrnsteinUhlenbeck() *OrnsteinUhlenbeck {
	return &OrnsteinUhlenbeck{Theta: 1.0, Mu: 0.0, Sigma: 0.5}
}

func (o *OrnsteinUhlenbeck) Step(x, _ float64, dt float64, src randvar.Source) float64 {
	return x + o.Theta*(o.Mu-x)*dt + o.Sigma*math.Sqrt(dt)*src.Sample()
}
