package walk

import (
	"fmt"

	"github.com/san-kum/stochlab/internal/randvar"
	"github.com/san-kum/stochlab/internal/stochastic"
)

// HittingEstimate is a Monte Carlo estimate of the time a process first
// reaches a level. Hits counts the trials that reached the level before
// the horizon; Mean averages over those trials only.
type HittingEstimate struct {
	Mean   float64
	Hits   int
	Trials int
}

// HitRate is the fraction of trials that reached the level.
func (h HittingEstimate) HitRate() float64 {
	if h.Trials == 0 {
		return 0
	}
	return float64(h.Hits) / float64(h.Trials)
}

// EstimateHittingTime simulates trials of the process from x0 and
// records the first time each trial crosses level (from either side).
// Trials that never cross within the horizon are counted but excluded
// from the mean.
func EstimateHittingTime(p Process, src randvar.Source, x0, level, dt, horizon float64, trials int) (HittingEstimate, error) {
	if dt <= 0 || horizon <= 0 {
		return HittingEstimate{}, fmt.Errorf("%w: dt and horizon must be positive", stochastic.ErrInvalidParameter)
	}
	if trials <= 0 {
		return HittingEstimate{}, fmt.Errorf("%w: trials must be positive, got %d", stochastic.ErrInvalidParameter, trials)
	}

	est := HittingEstimate{Trials: trials}
	steps := int(horizon / dt)
	above := x0 >= level

	sum := 0.0
	for trial := 0; trial < trials; trial++ {
		x, t := x0, 0.0
		for i := 0; i < steps; i++ {
			x = p.Step(x, t, dt, src)
			t += dt
			if (x >= level) != above {
				sum += t
				est.Hits++
				break
			}
		}
	}

	if est.Hits > 0 {
		est.Mean = sum / float64(est.Hits)
	}
	return est, nil
}
