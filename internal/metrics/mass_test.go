package metrics

import (
	"testing"

	"github.com/san-kum/stochlab/internal/stochastic"
)

func TestMassDriftConstantRows(t *testing.T) {
	m := NewMassDrift(0.5)

	row := stochastic.Density{0.2, 0.6, 0.2}
	for i := 0; i < 5; i++ {
		m.Observe(row, float64(i))
	}

	if m.Value() != 0 {
		t.Errorf("identical rows should have zero drift, got %g", m.Value())
	}
}

func TestMassDriftDetectsLoss(t *testing.T) {
	m := NewMassDrift(1.0)

	m.Observe(stochastic.Density{1, 1, 1}, 0)
	m.Observe(stochastic.Density{0.5, 0.5, 0.5}, 1)

	if m.Value() != 0.5 {
		t.Errorf("expected 50%% drift, got %g", m.Value())
	}
}

func TestPositivity(t *testing.T) {
	p := NewPositivity()

	p.Observe(stochastic.Density{0.1, 0.9}, 0)
	p.Observe(stochastic.Density{0.2, -0.1}, 1)
	p.Observe(stochastic.Density{0.3, 0.7}, 2)
	p.Observe(stochastic.Density{0.4, 0.6}, 3)

	if p.Value() != 0.75 {
		t.Errorf("expected 0.75, got %g", p.Value())
	}

	p.Reset()
	if p.Value() != 1.0 {
		t.Errorf("reset metric should report 1.0, got %g", p.Value())
	}
}

func TestObserveAndCollect(t *testing.T) {
	ms := []Metric{NewMassDrift(1.0), NewPositivity()}
	times := []float64{0, 1}
	rows := []stochastic.Density{{1, 1}, {1, 1}}

	Observe(ms, times, rows)
	got := Collect(ms)

	if got["mass_drift"] != 0 {
		t.Errorf("mass_drift = %g; want 0", got["mass_drift"])
	}
	if got["positivity"] != 1 {
		t.Errorf("positivity = %g; want 1", got["positivity"])
	}
}
