package stochastic

import (
	"math"
	"testing"
)

func TestDensityClone(t *testing.T) {
	d := Density{1, 2, 3}
	c := d.Clone()
	c[0] = 9

	if d[0] != 1 {
		t.Error("clone should not alias the original")
	}
}

func TestDensityIsValid(t *testing.T) {
	if !(Density{0, 1, 2}).IsValid() {
		t.Error("finite density should be valid")
	}
	if (Density{0, math.NaN()}).IsValid() {
		t.Error("NaN should be invalid")
	}
	if (Density{math.Inf(1)}).IsValid() {
		t.Error("Inf should be invalid")
	}
}

func TestDensityMass(t *testing.T) {
	d := Density{1, 1, 1}
	if got := d.Mass(0.5); got != 1.0 {
		t.Errorf("mass = %g; want 1.0", got)
	}
	if (Density{1}).Mass(0.5) != 0 {
		t.Error("single point has no trapezoid to integrate")
	}
}

func TestSampleField(t *testing.T) {
	points := []float64{-1, 0, 1}
	d := SampleField(Gaussian(0, 1), points)

	if len(d) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(d))
	}
	if d[1] != 1.0 {
		t.Errorf("peak of unnormalized gaussian should be 1, got %g", d[1])
	}
	if d[0] != d[2] {
		t.Error("gaussian centered at 0 should be symmetric")
	}
	if d[0] >= d[1] {
		t.Error("tails should sit below the peak")
	}
}

func TestConstAndZero(t *testing.T) {
	if Const(2.5)(123.0) != 2.5 {
		t.Error("const field should ignore its argument")
	}
	if Zero()(7.0) != 0 {
		t.Error("zero field should be 0 everywhere")
	}
}
