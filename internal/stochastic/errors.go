package stochastic

import "errors"

// Domain errors for solver operations.
var (
	// ErrInvalidParameter indicates a non-positive step size or horizon,
	// or an inverted spatial interval.
	ErrInvalidParameter = errors.New("stochastic: invalid parameter")

	// ErrInvalidGrid indicates an initial density whose length does not
	// match the derived spatial grid.
	ErrInvalidGrid = errors.New("stochastic: initial density does not match grid")

	// ErrUnstableScheme indicates a timestep above the explicit-scheme
	// stability bound dt <= dx^2 / (2 * max diffusion).
	ErrUnstableScheme = errors.New("stochastic: timestep violates stability bound")

	// ErrInvalidMatrix indicates a non-square transition-rate matrix.
	ErrInvalidMatrix = errors.New("stochastic: rate matrix is not square")

	// ErrNegativeRate indicates a negative transition-rate entry.
	ErrNegativeRate = errors.New("stochastic: negative transition rate")

	// ErrStateOutOfRange indicates a state index outside {0..n-1}.
	ErrStateOutOfRange = errors.New("stochastic: state index out of range")
)

// SolveError wraps an error with the grid position where it was detected.
type SolveError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *SolveError) Error() string {
	return e.Wrapped.Error()
}

func (e *SolveError) Unwrap() error {
	return e.Wrapped
}
