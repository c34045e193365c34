package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSeriesToSVG(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{0, 1, 0, -1}

	svg := SeriesToSVG(xs, ys, 400, 200, "#00ff88")
	if !strings.HasPrefix(svg, `<?xml`) {
		t.Error("missing XML header")
	}
	if !strings.Contains(svg, `stroke="#00ff88"`) {
		t.Error("stroke color not applied")
	}
	if !strings.Contains(svg, "<path") {
		t.Error("missing path element")
	}
}

func TestSeriesToSVGDegenerate(t *testing.T) {
	if SeriesToSVG([]float64{0}, []float64{1}, 100, 100, "red") != "" {
		t.Error("single point should produce no output")
	}
	if SeriesToSVG([]float64{0, 1}, []float64{1}, 100, 100, "red") != "" {
		t.Error("mismatched lengths should produce no output")
	}
}

func TestWriteSeriesSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.svg")

	err := WriteSeriesSVG(path, []float64{0, 1, 2}, []float64{1, 2, 1}, 300, 150, "#00ccff")
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "</svg>") {
		t.Error("file is not a complete SVG document")
	}
}
