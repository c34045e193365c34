package walk

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/stochlab/internal/randvar"
	"github.com/san-kum/stochlab/internal/stochastic"
)

func TestSimulateLengths(t *testing.T) {
	src := randvar.NewBoxMuller(1)
	path, err := Simulate(NewBrownian(), src, 0, 0.01, 1.0)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}
	if len(path.T) != 101 || len(path.X) != 101 {
		t.Errorf("expected 101 samples, got %d/%d", len(path.T), len(path.X))
	}
	if path.T[0] != 0 || path.X[0] != 0 {
		t.Errorf("path must start at (0, x0)")
	}
}

func TestSimulateInvalidParams(t *testing.T) {
	src := randvar.NewBoxMuller(1)
	if _, err := Simulate(NewBrownian(), src, 0, 0, 1.0); !errors.Is(err, stochastic.ErrInvalidParameter) {
		t.Errorf("zero dt: expected ErrInvalidParameter, got %v", err)
	}
	if _, err := Simulate(NewBrownian(), src, 0, 0.01, -1); !errors.Is(err, stochastic.ErrInvalidParameter) {
		t.Errorf("negative duration: expected ErrInvalidParameter, got %v", err)
	}
}

func TestBrownianDrift(t *testing.T) {
	b := &Brownian{Mu: 2.0, Sigma: 0.1}

	// Average the endpoint over many paths; it should track mu*T.
	const trials = 500
	src := randvar.NewBoxMuller(99)
	sum := 0.0
	for i := 0; i < trials; i++ {
		path, err := Simulate(b, src, 0, 0.01, 1.0)
		if err != nil {
			t.Fatal(err)
		}
		sum += path.Final()
	}
	mean := sum / trials
	if math.Abs(mean-2.0) > 0.05 {
		t.Errorf("mean endpoint = %g; want ~2.0", mean)
	}
}

func TestOrnsteinUhlenbeckReverts(t *testing.T) {
	o := &OrnsteinUhlenbeck{Theta: 5.0, Mu: 1.0, Sigma: 0.05}
	src := randvar.NewPolar(3)

	path, err := Simulate(o, src, 10.0, 0.001, 5.0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(path.Final()-1.0) > 0.2 {
		t.Errorf("final = %g; strong reversion should pull it near 1.0", path.Final())
	}
}

func TestEstimateHittingTime(t *testing.T) {
	// Strong upward drift, low noise: every trial should cross quickly,
	// around t = level/mu.
	b := &Brownian{Mu: 1.0, Sigma: 0.05}
	src := randvar.NewBoxMuller(7)

	est, err := EstimateHittingTime(b, src, 0, 0.5, 0.001, 5.0, 200)
	if err != nil {
		t.Fatal(err)
	}
	if est.Hits != est.Trials {
		t.Errorf("expected every trial to hit, got %d/%d", est.Hits, est.Trials)
	}
	if math.Abs(est.Mean-0.5) > 0.1 {
		t.Errorf("mean hitting time = %g; want ~0.5", est.Mean)
	}
	if est.HitRate() != 1.0 {
		t.Errorf("hit rate = %g; want 1", est.HitRate())
	}
}

func TestEstimateHittingTimeNeverHits(t *testing.T) {
	// Drift away from the level: essentially no trial should cross.
	b := &Brownian{Mu: -5.0, Sigma: 0.01}
	src := randvar.NewBoxMuller(11)

	est, err := EstimateHittingTime(b, src, 0, 1.0, 0.01, 1.0, 50)
	if err != nil {
		t.Fatal(err)
	}
	if est.Hits != 0 {
		t.Errorf("expected no hits, got %d", est.Hits)
	}
	if est.Mean != 0 {
		t.Errorf("mean should stay zero with no hits, got %g", est.Mean)
	}
}
