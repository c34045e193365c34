package passage

import (
	"fmt"

	"github.com/san-kum/stochlab/internal/stochastic"
)

// Matrix is an n x n table of transition intensities. A strictly positive
// entry m[i][j] is a traversable edge from state i to state j; zero means
// no direct transition. States are implicitly {0..n-1}.
type Matrix [][]float64

// Validate checks that the matrix is square with non-negative entries.
func (m Matrix) Validate() error {
	n := len(m)
	for i, row := range m {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d columns, want %d", stochastic.ErrInvalidMatrix, i, len(row), n)
		}
		for j, v := range row {
			if v < 0 {
				return fmt.Errorf("%w: m[%d][%d] = %g", stochastic.ErrNegativeRate, i, j, v)
			}
		}
	}
	return nil
}

// States returns the number of states described by the matrix.
func (m Matrix) States() int { return len(m) }

func (m Matrix) checkState(name string, s int) error {
	if s < 0 || s >= len(m) {
		return fmt.Errorf("%w: %s state %d, matrix has %d states", stochastic.ErrStateOutOfRange, name, s, len(m))
	}
	return nil
}
