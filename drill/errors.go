package drill

import "errors"

var (
	// ErrInvalidGeometry reports targets, KOP or spacing that cannot form a trajectory.
	ErrInvalidGeometry = errors.New("invalid well geometry")

	// ErrOptimizerNonConvergence reports a pad-force solve that produced no usable point.
	ErrOptimizerNonConvergence = errors.New("pad force optimizer did not converge")

	// ErrEmptyCandidateSet reports an empty component catalog handed to a selector.
	ErrEmptyCandidateSet = errors.New("empty component catalog")

	// ErrNoPenetration reports a simulation step whose axial ROP would not advance the bit.
	ErrNoPenetration = errors.New("bit is not advancing")

	// ErrInvalidConfig reports a configuration value outside its accepted range.
	ErrInvalidConfig = errors.New("invalid configuration")
)
