package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
)

const (
	plotWidth  = 80
	plotHeight = 12
)

// PlotSeries renders one series as an ASCII graph with a caption.
func PlotSeries(data []float64, caption string) string {
	if len(data) == 0 {
		return ""
	}
	return asciigraph.Plot(data,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}

// PlotDensity renders a density over its spatial axis.
func PlotDensity(x, density []float64, t float64) string {
	if len(x) == 0 {
		return ""
	}
	caption := fmt.Sprintf("density at t=%.3f over [%.2f, %.2f]", t, x[0], x[len(x)-1])
	return PlotSeries(density, caption)
}

// PlotPath renders a simulated trajectory over time.
func PlotPath(times, values []float64, name string) string {
	caption := name
	if len(times) > 0 {
		caption = fmt.Sprintf("%s over [0, %.2f]", name, times[len(times)-1])
	}
	return PlotSeries(values, caption)
}
