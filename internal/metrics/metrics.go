package metrics

import "github.com/san-kum/stochlab/internal/stochastic"

// Metric accumulates a diagnostic over the time rows of a solve.
type Metric interface {
	Name() string
	Observe(row stochastic.Density, t float64)
	Value() float64
	Reset()
}

// Observe runs every metric over every time row of a density table.
func Observe(ms []Metric, times []float64, rows []stochastic.Density) {
	for _, m := range ms {
		m.Reset()
	}
	for i, row := range rows {
		for _, m := range ms {
			m.Observe(row, times[i])
		}
	}
}

// Collect returns the final value of each metric by name.
func Collect(ms []Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
