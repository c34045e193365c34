package randvar

import (
	"math"
	"math/rand"
)

// Source produces standard normal variates. Both generators here are
// deterministic for a fixed seed.
type Source interface {
	Sample() float64
}

// BoxMuller transforms pairs of uniform variates into pairs of standard
// normals; the second variate of each pair is cached for the next call.
type BoxMuller struct {
	src      *rand.Rand
	spare    float64
	hasSpare bool
}

func NewBoxMuller(seed int64) *BoxMuller {
	return &BoxMuller{src: rand.New(rand.NewSource(seed))}
}

func (b *BoxMuller) Sample() float64 {
	if b.hasSpare {
		b.hasSpare = false
		return b.spare
	}

	// u1 must be strictly positive for the log.
	u1 := b.src.Float64()
	for u1 == 0 {
		u1 = b.src.Float64()
	}
	u2 := b.src.Float64()

	r := math.Sqrt(-2 * math.Log(u1))
	b.spare = r * math.Sin(2*math.Pi*u2)
	b.hasSpare = true
	return r * math.Cos(2*math.Pi*u2)
}

// Polar is Marsaglia's polar method: rejection-sample the unit disk,
// then scale, avoiding the trigonometric calls of Box-Muller.
type Polar struct {
	src      *rand.Rand
	spare    float64
	hasSpare bool
}

func NewPolar(seed int64) *Polar {
	return &Polar{src: rand.New(rand.NewSource(seed))}
}

func (p *Polar) Sample() float64 {
	if p.hasSpare {
		p.hasSpare = false
		return p.spare
	}

	var u, v, s float64
	for {
		u = 2*p.src.Float64() - 1
		v = 2*p.src.Float64() - 1
		s = u*u + v*v
		if s > 0 && s < 1 {
			break
		}
	}

	f := math.Sqrt(-2 * math.Log(s) / s)
	p.spare = v * f
	p.hasSpare = true
	return u * f
}
