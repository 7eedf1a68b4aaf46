package rss

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/optimize"

	"github.com/wellsim/wellsim/drill"
)

// padDirections are unit vectors (east, north) of the pads at 0, 120 and 240 degrees from
// east. Written out so that equal magnitudes cancel exactly.
var padDirections = [3][2]float64{
	{1, 0},
	{-0.5, math.Sqrt(3) / 2},
	{-0.5, -math.Sqrt(3) / 2},
}

// PadOffset returns the horizontal displacement produced by three pads with the given
// magnitudes.
func PadOffset(mags [3]float64) (east, north float64) {
	for i, m := range mags {
		east += m * padDirections[i][0]
		north += m * padDirections[i][1]
	}
	return east, north
}

// PadSolver finds pad magnitudes within [lo, hi] that move the bit horizontally as close
// as possible to a target.
type PadSolver struct {
	lo, hi float64
	guess  [3]float64
}

// NewPadSolver creates a PadSolver from the RSS bounds. The configured initial guess is
// clipped into the bounds.
func NewPadSolver(cfg drill.RSSConfig) *PadSolver {
	s := &PadSolver{lo: cfg.MinPadForce, hi: cfg.MaxPadForce}
	for i, g := range cfg.InitialPadGuess {
		s.guess[i] = math.Max(s.lo, math.Min(s.hi, g))
	}
	return s
}

// Guess returns the clipped starting magnitudes.
func (s *PadSolver) Guess() [3]float64 { return s.guess }

// Solve returns the pad magnitudes minimizing the horizontal distance between
// from + PadOffset(mags) and to. Only East and North are used.
func (s *PadSolver) Solve(from, to drill.Point3D) ([3]float64, error) {
	dx, dy := to.East-from.East, to.North-from.North
	objective := func(mags [3]float64) float64 {
		e, n := PadOffset(mags)
		return (e-dx)*(e-dx) + (n-dy)*(n-dy)
	}

	// A degenerate range has a single feasible point.
	if s.hi == s.lo {
		return s.guess, nil
	}
	if objective(s.guess) == 0 {
		return s.guess, nil
	}

	u0 := make([]float64, 3)
	for i, g := range s.guess {
		u0[i] = s.toUnbounded(g)
	}
	problem := optimize.Problem{
		Func: func(u []float64) float64 { return objective(s.toBounded(u)) },
	}
	settings := &optimize.Settings{
		Converger:       &optimize.FunctionConverge{Absolute: 1e-12, Iterations: 200},
		MajorIterations: 5000,
	}
	result, err := optimize.Minimize(problem, u0, settings, &optimize.NelderMead{SimplexSize: 0.5})
	if err != nil {
		return [3]float64{}, fmt.Errorf("%w: %v", drill.ErrOptimizerNonConvergence, err)
	}
	if result == nil || math.IsNaN(result.F) || math.IsInf(result.F, 0) {
		return [3]float64{}, fmt.Errorf("%w: non-finite objective", drill.ErrOptimizerNonConvergence)
	}
	if result.Status != optimize.FunctionConvergence {
		logrus.Debugf("rss: pad solve stopped with %v after %d iterations, residual %g", result.Status, result.MajorIterations, math.Sqrt(result.F))
	}
	mags := s.toBounded(result.X)
	for _, m := range mags {
		if math.IsNaN(m) {
			return [3]float64{}, fmt.Errorf("%w: non-finite pad magnitude", drill.ErrOptimizerNonConvergence)
		}
	}
	return mags, nil
}

// toBounded maps an unconstrained point into the box, so every iterate is feasible.
func (s *PadSolver) toBounded(u []float64) [3]float64 {
	var x [3]float64
	for i := range x {
		x[i] = s.lo + (s.hi-s.lo)*(1+math.Sin(u[i]))/2
	}
	return x
}

func (s *PadSolver) toUnbounded(x float64) float64 {
	r := 2*(x-s.lo)/(s.hi-s.lo) - 1
	return math.Asin(math.Max(-1, math.Min(1, r)))
}
